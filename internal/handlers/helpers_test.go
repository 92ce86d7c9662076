package handlers_test

import (
	"MemoryApp/internal/config"
	"MemoryApp/internal/handlers"
	"MemoryApp/internal/metrics"
	"MemoryApp/internal/middleware"
	"MemoryApp/internal/model"
	"MemoryApp/internal/repo"
	"MemoryApp/internal/service"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// testEnv — полный стек (хендлеры, сервисы, репозитории) поверх in-memory SQLite.
type testEnv struct {
	router  http.Handler
	cfg     *config.Config
	db      *gorm.DB
	metrics *metrics.Collector
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := zap.NewNop().Sugar()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := repo.InitDB(dsn, logger)
	require.NoError(t, err)
	sqlDB, _ := db.DB()
	t.Cleanup(func() { _ = sqlDB.Close() })

	cfg := &config.Config{
		AuthSecret:  "test-secret",
		UploadDir:   t.TempDir(),
		UploadMaxMB: 1,
		CORSOrigins: "http://localhost:3000",
	}
	categories := repo.NewCategoryRepository(db)
	memories := repo.NewMemoryRepository(db)
	collector := metrics.NewCollector("test")

	h := handlers.NewHandler(
		service.NewUserService(repo.NewUserRepository(db)),
		service.NewCategoryService(categories, memories),
		service.NewMemoryService(memories, logger),
		service.NewFileService(cfg.UploadDir, cfg.UploadMaxBytes(), logger),
		collector,
		logger,
		cfg,
	)
	return &testEnv{router: h.Router, cfg: cfg, db: db, metrics: collector}
}

// user создаёт пользователя напрямую в БД
func (e *testEnv) user(t *testing.T, login string) int64 {
	t.Helper()
	u, err := repo.NewUserRepository(e.db).CreateUser(context.Background(), &model.User{Login: login, Password: "hash"})
	require.NoError(t, err)
	return u.ID
}

// do выполняет запрос; userID == 0 — анонимный запрос
func (e *testEnv) do(t *testing.T, method, path, body string, userID int64) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != 0 {
		addAuthCookie(t, req, userID, e.cfg.AuthSecret)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func addAuthCookie(t *testing.T, req *http.Request, userID int64, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, secret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

type memoryJSON struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Content          string  `json:"content"`
	Type             string  `json:"type"`
	URL              *string `json:"url"`
	FileURL          *string `json:"fileUrl"`
	OriginalFileName *string `json:"originalFileName"`
	IsFavorite       bool    `json:"isFavorite"`
	CategoryID       string  `json:"categoryId"`
	Category         *struct {
		Name  string `json:"name"`
		Icon  string `json:"icon"`
		Color string `json:"color"`
	} `json:"category"`
}

type categoryJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	MemoryCount int64  `json:"memoryCount"`
}

type errorBody struct {
	Error string `json:"error"`
}

// mkCategory создаёт категорию через API
func (e *testEnv) mkCategory(t *testing.T, userID int64, name string) categoryJSON {
	t.Helper()
	rr := e.do(t, http.MethodPost, "/api/categories", `{"name":"`+name+`","icon":"✈️","color":"#3B82F6"}`, userID)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decodeBody[categoryJSON](t, rr)
}

// mkMemory создаёт воспоминание через API
func (e *testEnv) mkMemory(t *testing.T, userID int64, categoryID, title string) memoryJSON {
	t.Helper()
	body := fmt.Sprintf(`{"title":%q,"content":"body of %s","type":"text","categoryId":%q}`, title, title, categoryID)
	rr := e.do(t, http.MethodPost, "/api/memories", body, userID)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decodeBody[memoryJSON](t, rr)
}
