package handlers_test

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// countStatements считает обращения к БД на чтение, изменение и удаление.
func countStatements(t *testing.T, db *gorm.DB) *atomic.Int64 {
	t.Helper()
	var n atomic.Int64
	hook := func(*gorm.DB) { n.Add(1) }
	require.NoError(t, db.Callback().Query().Before("gorm:query").Register("test:count_query", hook))
	require.NoError(t, db.Callback().Update().Before("gorm:update").Register("test:count_update", hook))
	require.NoError(t, db.Callback().Delete().Before("gorm:delete").Register("test:count_delete", hook))
	return &n
}

// Id не в формате uuid — 404 без обращения к хранилищу (postgres отверг бы такой запрос).
func TestMalformedIDs_AreNotFound(t *testing.T) {
	env := newTestEnv(t)
	alice := env.user(t, "alice")
	cat := env.mkCategory(t, alice, "Travel")
	m := env.mkMemory(t, alice, cat.ID, "Paris")

	statements := countStatements(t, env.db)

	tests := []struct {
		name    string
		method  string
		path    string
		body    string
		wantErr string
	}{
		{"get category", http.MethodGet, "/api/categories/not-a-uuid", "", "Category not found"},
		{"update category", http.MethodPut, "/api/categories/not-a-uuid", `{"name":"x","icon":"y","color":"#FFFFFF"}`, "Category not found"},
		{"delete category", http.MethodDelete, "/api/categories/not-a-uuid", "", "Category not found"},
		{"category page", http.MethodGet, "/api/categories/not-a-uuid/memories", "", "Category not found"},
		{"delete memory", http.MethodDelete, "/api/memories?id=zzz", "", "Memory not found"},
		{"update memory", http.MethodPut, "/api/memories",
			fmt.Sprintf(`{"id":"zzz","title":"t","content":"c","type":"text","categoryId":%q}`, cat.ID), "Memory not found"},
		{"update memory category", http.MethodPut, "/api/memories",
			fmt.Sprintf(`{"id":%q,"title":"t","content":"c","type":"text","categoryId":"zzz"}`, m.ID), "Category not found"},
		{"create memory", http.MethodPost, "/api/memories",
			`{"title":"t","content":"c","type":"text","categoryId":"zzz"}`, "Category not found"},
		{"toggle favorite", http.MethodPatch, "/api/favorites", `{"memoryId":"zzz","isFavorite":true}`, "Memory not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := statements.Load()
			rr := env.do(t, tt.method, tt.path, tt.body, alice)
			assert.Equal(t, http.StatusNotFound, rr.Code, rr.Body.String())
			assert.Equal(t, tt.wantErr, decodeBody[errorBody](t, rr).Error)
			assert.Equal(t, before, statements.Load(), "malformed id must not reach the store")
		})
	}

	// корректный id доходит до хранилища как раньше
	rr := env.do(t, http.MethodGet, "/api/categories/"+cat.ID, "", alice)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Positive(t, statements.Load())
}
