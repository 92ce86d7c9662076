package repo

import (
	"MemoryApp/internal/model"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// newTestDB инициализирует отдельную in-memory SQLite (modernc.org/sqlite) на каждый тест
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	db, err := gorm.Open(dial, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	sqlDB, _ := db.DB()
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// mkUser создаёт пользователя напрямую в БД и возвращает его id
func mkUser(t *testing.T, db *gorm.DB, login string) int64 {
	t.Helper()
	u, err := NewUserRepository(db).CreateUser(context.Background(), &model.User{Login: login, Password: "hash"})
	if err != nil {
		t.Fatalf("create user %q: %v", login, err)
	}
	return u.ID
}

// mkCategory создаёт категорию пользователя
func mkCategory(t *testing.T, db *gorm.DB, userID int64, name string) *model.Category {
	t.Helper()
	c := &model.Category{ID: uuid.NewString(), UserID: userID, Name: name, Icon: "📁", Color: "#3B82F6"}
	if err := NewCategoryRepository(db).Create(context.Background(), c); err != nil {
		t.Fatalf("create category %q: %v", name, err)
	}
	return c
}
