package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"evently-service/internal/domain/account"
	xerrors "evently-service/internal/pkg/errors"
	"evently-service/internal/pkg/password"
	"evently-service/internal/pkg/token"
	authUsecase "evently-service/internal/service/auth"
)

type stubAccountRepo struct {
	account *account.Account
}

func (r *stubAccountRepo) Create(context.Context, *account.Account) error { return nil }

func (r *stubAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*account.Account, error) {
	if r.account != nil && r.account.ID == id {
		return r.account.Sanitized(), nil
	}
	return nil, xerrors.ErrNotFound
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*account.Account, error) {
	if r.account != nil && r.account.Email == email {
		cp := *r.account
		return &cp, nil
	}
	return nil, xerrors.ErrNotFound
}

func (r *stubAccountRepo) FindByUsername(_ context.Context, username string) (*account.Account, error) {
	if r.account != nil && r.account.Username == username {
		cp := *r.account
		return &cp, nil
	}
	return nil, xerrors.ErrNotFound
}

func (r *stubAccountRepo) List(context.Context, int, int) ([]*account.Account, int64, error) {
	return nil, 0, nil
}

func (r *stubAccountRepo) UpdateRole(context.Context, uuid.UUID, account.Role) error { return nil }
func (r *stubAccountRepo) SetActive(context.Context, uuid.UUID, bool) error          { return nil }
func (r *stubAccountRepo) Delete(context.Context, uuid.UUID) error                   { return nil }

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := token.Config{Secret: "test-secret", Issuer: "evently-api", Audience: "evently-users", TTL: time.Hour}
	issuer, err := token.NewIssuer(cfg)
	require.NoError(t, err)
	verifier, err := token.NewVerifier(cfg)
	require.NoError(t, err)

	hash, err := password.Hash("correct-pw")
	require.NoError(t, err)

	repo := &stubAccountRepo{account: &account.Account{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		Username:     "alice",
		Role:         account.RoleUser,
		PasswordHash: hash,
		IsActive:     true,
	}}

	svc := authUsecase.NewAuthService(repo, issuer, verifier, nil, zap.NewNop())
	handler := NewAuthHandler(svc, zap.NewNop())

	router := gin.New()
	router.POST("/api/v1/auth/login", handler.Login)
	return router
}

func postLogin(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLoginSuccess(t *testing.T) {
	router := setupRouter(t)

	rec := postLogin(router, `{"username":"alice","password":"correct-pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"token"`)
	require.Contains(t, rec.Body.String(), `"expires_at"`)
	require.Contains(t, rec.Body.String(), `"alice"`)
	require.NotContains(t, rec.Body.String(), "password")
}

func TestLoginWrongPassword(t *testing.T) {
	router := setupRouter(t)

	rec := postLogin(router, `{"username":"alice","password":"wrong-pw"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotContains(t, rec.Body.String(), `"token"`)
}

func TestLoginUnknownAccount(t *testing.T) {
	router := setupRouter(t)

	rec := postLogin(router, `{"username":"nobody","password":"correct-pw"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginMissingPassword(t *testing.T) {
	router := setupRouter(t)

	rec := postLogin(router, `{"username":"alice"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginMalformedBody(t *testing.T) {
	router := setupRouter(t)

	rec := postLogin(router, `{not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
