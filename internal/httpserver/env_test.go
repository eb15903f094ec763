package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"product-manager/internal/currency"
	authmw "product-manager/internal/middleware/auth"
	"product-manager/internal/models"
	"product-manager/internal/repo"
	"product-manager/internal/service"
	"product-manager/pkg/hash"
	"product-manager/pkg/logging"
	"product-manager/pkg/tokens"
)

var testJWTSecret = []byte("test-jwt-secret")

type testEnv struct {
	E     *echo.Echo
	Store *repo.GormRepo
	Svc   *service.ProductService
}

type stubRate struct {
	rate float64
}

func (s stubRate) UsdPrice(_ context.Context, priceEur float64) float64 {
	return currency.Round2(priceEur * s.rate)
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.Product{}, &models.User{}, &models.CodeSequence{}))

	store := repo.NewGormRepo(gdb)
	require.NoError(t, store.EnsureCodeSequence(context.Background()))

	productSvc := &service.ProductService{Repo: store, Currency: stubRate{rate: 1.2}}
	authSvc := &service.AuthService{Repo: store, JWTSecret: testJWTSecret, TokenTTL: time.Hour}

	log := logging.New("error")
	e := NewServer(&Deps{
		Log:     log,
		Auth:    &AuthHTTP{Svc: authSvc},
		Product: &ProductHTTP{Svc: productSvc},
		Guard:   &authmw.RoleGuard{Repo: store, JWTSecret: testJWTSecret},
	})

	return &testEnv{E: e, Store: store, Svc: productSvc}
}

func (env *testEnv) createUser(t *testing.T, username, role string) string {
	t.Helper()

	pwHash, err := hash.HashPassword("password1")
	require.NoError(t, err)
	require.NoError(t, env.Store.CreateUser(context.Background(), &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: pwHash,
		Role:         role,
		Enabled:      true,
	}))

	token, err := tokens.NewAccessToken(username, testJWTSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func (env *testEnv) doJSON(t *testing.T, method, target string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
