package service

import (
	"MemoryApp/internal/model"
	"MemoryApp/internal/repo"
	"context"

	"github.com/stretchr/testify/mock"
)

// мок для repo.UserRepository
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

// мок для repo.MemoryRepository
type mockMemoryRepo struct{ mock.Mock }

func (m *mockMemoryRepo) List(ctx context.Context, userID int64, f repo.MemoryFilter) ([]model.Memory, error) {
	args := m.Called(ctx, userID, f)
	if v, ok := args.Get(0).([]model.Memory); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockMemoryRepo) GetByID(ctx context.Context, userID int64, id string) (*model.Memory, error) {
	args := m.Called(ctx, userID, id)
	if v, ok := args.Get(0).(*model.Memory); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockMemoryRepo) Create(ctx context.Context, mem *model.Memory) error {
	return m.Called(ctx, mem).Error(0)
}
func (m *mockMemoryRepo) Update(ctx context.Context, userID int64, id, categoryID string, updates map[string]any) (*model.Memory, error) {
	args := m.Called(ctx, userID, id, categoryID, updates)
	if v, ok := args.Get(0).(*model.Memory); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockMemoryRepo) SetFavorite(ctx context.Context, userID int64, id string, favorite bool) (*model.Memory, error) {
	args := m.Called(ctx, userID, id, favorite)
	if v, ok := args.Get(0).(*model.Memory); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockMemoryRepo) Delete(ctx context.Context, userID int64, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

var _ repo.MemoryRepository = (*mockMemoryRepo)(nil)

// мок для repo.CategoryRepository
type mockCategoryRepo struct{ mock.Mock }

func (m *mockCategoryRepo) ListWithCounts(ctx context.Context, userID int64) ([]model.CategoryWithCount, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.CategoryWithCount); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCategoryRepo) GetByID(ctx context.Context, userID int64, id string) (*model.Category, error) {
	args := m.Called(ctx, userID, id)
	if v, ok := args.Get(0).(*model.Category); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCategoryRepo) Create(ctx context.Context, c *model.Category) error {
	return m.Called(ctx, c).Error(0)
}
func (m *mockCategoryRepo) Update(ctx context.Context, userID int64, id string, updates map[string]any) (*model.Category, error) {
	args := m.Called(ctx, userID, id, updates)
	if v, ok := args.Get(0).(*model.Category); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCategoryRepo) Delete(ctx context.Context, userID int64, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

var _ repo.CategoryRepository = (*mockCategoryRepo)(nil)

// хелперы
func ptrBool(v bool) *bool    { return &v }
func ptrStr(s string) *string { return &s }
