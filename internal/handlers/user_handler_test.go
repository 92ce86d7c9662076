package handlers_test

import (
	"MemoryApp/internal/config"
	"MemoryApp/internal/handlers"
	"MemoryApp/internal/metrics"
	"MemoryApp/internal/model"
	"MemoryApp/internal/repo"
	"MemoryApp/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Minimal mocks
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	args := m.Called(ctx, login)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

// --- Helpers ---
func newUserTestRouter(t *testing.T, ur repo.UserRepository) http.Handler {
	t.Helper()
	cfg := &config.Config{AuthSecret: "test-secret", UploadDir: t.TempDir(), UploadMaxMB: 1}
	logger := zap.NewNop().Sugar()

	// для user‑тестов остальные сервисы не используются
	h := handlers.NewHandler(
		service.NewUserService(ur),
		service.NewCategoryService(nil, nil),
		service.NewMemoryService(nil, logger),
		service.NewFileService(cfg.UploadDir, cfg.UploadMaxBytes(), logger),
		metrics.NewCollector("test"),
		logger,
		cfg,
	)
	return h.Router
}

func hasAuthCookie(rr *httptest.ResponseRecorder) bool {
	for _, c := range rr.Result().Cookies() {
		if c.Name == "auth_token" && c.Value != "" {
			return true
		}
	}
	return false
}

func postJSON(router http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// --- Tests ---
func TestUser_Register(t *testing.T) {
	m := new(mockUserRepo)
	router := newUserTestRouter(t, m)

	t.Run("ok", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByLogin", mock.Anything, "john").Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()
		created := &model.User{ID: 42, Login: "john"}
		m.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool { return u.Login == "john" && u.Password != "" })).Return(created, nil).Once()

		rr := postJSON(router, "/api/user/register", `{"login":"john","password":"p"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, hasAuthCookie(rr), "Set-Cookie auth_token expected")
		assert.Equal(t, "john", decodeBody[map[string]any](t, rr)["login"])
		m.AssertExpectations(t)
	})

	t.Run("conflict", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByLogin", mock.Anything, "john").Return(&model.User{ID: 1, Login: "john"}, nil).Once()

		rr := postJSON(router, "/api/user/register", `{"login":"john","password":"p"}`)

		assert.Equal(t, http.StatusConflict, rr.Code)
		m.AssertExpectations(t)
	})

	t.Run("missing password", func(t *testing.T) {
		m.ExpectedCalls = nil
		rr := postJSON(router, "/api/user/register", `{"login":"john"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "password is required", decodeBody[errorBody](t, rr).Error)
	})
}

func TestUser_Login(t *testing.T) {
	m := new(mockUserRepo)
	router := newUserTestRouter(t, m)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)

	t.Run("ok", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByLogin", mock.Anything, "alice").Return(&model.User{ID: 2, Login: "alice", Password: string(hash)}, nil).Once()

		rr := postJSON(router, "/api/user/login", `{"login":"alice","password":"secret"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, hasAuthCookie(rr))
		m.AssertExpectations(t)
	})

	t.Run("unauthorized", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByLogin", mock.Anything, "alice").Return(&model.User{ID: 2, Login: "alice", Password: string(hash)}, nil).Once()

		rr := postJSON(router, "/api/user/login", `{"login":"alice","password":"bad"}`)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		m.AssertExpectations(t)
	})

	t.Run("unknown login", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByLogin", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound).Once()

		rr := postJSON(router, "/api/user/login", `{"login":"ghost","password":"x"}`)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		m.AssertExpectations(t)
	})
}

func TestUser_MeAndLogout(t *testing.T) {
	m := new(mockUserRepo)
	router := newUserTestRouter(t, m)

	t.Run("me", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetByID", mock.Anything, int64(77)).Return(&model.User{ID: 77, Login: "neo"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
		addAuthCookie(t, req, 77, "test-secret")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		body := decodeBody[map[string]any](t, rr)
		assert.Equal(t, float64(77), body["id"])
		assert.Equal(t, "neo", body["login"])
		m.AssertExpectations(t)
	})

	t.Run("me for deleted user", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetByID", mock.Anything, int64(5)).Return(nil, gorm.ErrRecordNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
		addAuthCookie(t, req, 5, "test-secret")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("logout clears cookie", func(t *testing.T) {
		rr := postJSON(router, "/api/user/logout", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		cookies := rr.Result().Cookies()
		if assert.Len(t, cookies, 1) {
			assert.Equal(t, "auth_token", cookies[0].Name)
			assert.Less(t, cookies[0].MaxAge, 0)
		}
	})
}
