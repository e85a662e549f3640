package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/christejab07/Parking/internal/domain"
)

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (username, email, password_hash, role, telegram_chat_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	user.CreatedAt = time.Now().UTC()

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		user.Username, user.Email, user.PasswordHash,
		user.Role, user.TelegramChatID, user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	if err = row.Scan(&user.ID); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if pgErr.Constraint == "users_email_key" {
				return domain.ErrEmailTaken
			}
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT id, username, email, password_hash, role, telegram_chat_id, created_at
			  FROM users
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, username, email, password_hash, role, telegram_chat_id, created_at
			  FROM users
			  WHERE email = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return scanUser(row)
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.TelegramChatID, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}
