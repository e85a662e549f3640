package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"

	"github.com/christejab07/Parking/internal/domain"
	"github.com/christejab07/Parking/internal/service/ports"
)

const minPasswordLen = 6

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type AuthService struct {
	users     ports.UserRepo
	jwtSecret []byte
	tokenTTL  time.Duration
	logger    logger.Logger
}

func NewAuthService(users ports.UserRepo, jwtSecret string, tokenTTL time.Duration, logger logger.Logger) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

func (s *AuthService) Register(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	if input.Username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if !emailPattern.MatchString(input.Email) {
		return nil, fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}
	if len(input.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// Admins are promoted out of band; registration always yields a plain user.
	user := &domain.User{
		Username:       input.Username,
		Email:          input.Email,
		PasswordHash:   string(hash),
		Role:           domain.RoleUser,
		TelegramChatID: input.TelegramChatID,
	}

	if err = s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user registered",
		logger.Int64("user_id", user.ID),
		logger.String("username", user.Username),
	)

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(user.ID, 10),
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	s.logger.Info("user logged in",
		logger.Int64("user_id", user.ID),
	)

	return token, user, nil
}

// ParseToken resolves a bearer token to the caller's identity and role.
func (s *AuthService) ParseToken(tokenString string) (int64, domain.Role, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return 0, "", fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return 0, "", errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, "", errors.New("token has no subject")
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || userID <= 0 {
		return 0, "", errors.New("invalid token subject")
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return 0, "", errors.New("token has no role")
	}
	role := domain.Role(roleStr)
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return 0, "", errors.New("invalid token role")
	}

	return userID, role, nil
}
