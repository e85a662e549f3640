package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/christejab07/Parking/internal/domain"
)

type fakeTokenParser struct {
	userID int64
	role   domain.Role
	err    error

	gotToken string
}

func (f *fakeTokenParser) ParseToken(token string) (int64, domain.Role, error) {
	f.gotToken = token
	return f.userID, f.role, f.err
}

func authTestRouter(parser TokenParser, extra ...ginext.HandlerFunc) http.Handler {
	r := ginext.New("test")
	handlers := append([]ginext.HandlerFunc{Auth(parser)}, extra...)
	handlers = append(handlers, func(c *ginext.Context) {
		userID := c.GetInt64(UserIDKey)
		c.JSON(http.StatusOK, ginext.H{"userId": userID})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuth_ValidToken(t *testing.T) {
	parser := &fakeTokenParser{userID: 42, role: domain.RoleUser}
	r := authTestRouter(parser)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "some-token", parser.gotToken)
	assert.JSONEq(t, `{"userId": 42}`, w.Body.String())
}

func TestAuth_MissingHeader(t *testing.T) {
	r := authTestRouter(&fakeTokenParser{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	r := authTestRouter(&fakeTokenParser{})

	cases := []string{
		"some-token",
		"Basic dXNlcjpwYXNz",
		"Bearer",
		"Bearer one two",
	}
	for _, header := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	parser := &fakeTokenParser{err: errors.New("token is expired")}
	r := authTestRouter(parser)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_Admin(t *testing.T) {
	parser := &fakeTokenParser{userID: 1, role: domain.RoleAdmin}
	r := authTestRouter(parser, RequireRole(domain.RoleAdmin))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_Forbidden(t *testing.T) {
	parser := &fakeTokenParser{userID: 7, role: domain.RoleUser}
	r := authTestRouter(parser, RequireRole(domain.RoleAdmin))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_NoIdentity(t *testing.T) {
	r := ginext.New("test")
	r.GET("/admin", RequireRole(domain.RoleAdmin), func(c *ginext.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
