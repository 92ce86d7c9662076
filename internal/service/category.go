package service

import (
	"MemoryApp/internal/model"
	"MemoryApp/internal/repo"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryInput — поля категории, приходящие от клиента.
type CategoryInput struct {
	Name  string
	Icon  string
	Color string
}

// CategoryService инкапсулирует работу с категориями пользователя.
type CategoryService struct {
	categories repo.CategoryRepository
	memories   repo.MemoryRepository
}

func NewCategoryService(c repo.CategoryRepository, m repo.MemoryRepository) *CategoryService {
	return &CategoryService{categories: c, memories: m}
}

func (s *CategoryService) List(ctx context.Context, userID int64) ([]model.CategoryWithCount, error) {
	list, err := s.categories.ListWithCounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return list, nil
}

func (s *CategoryService) Create(ctx context.Context, userID int64, in CategoryInput) (*model.Category, error) {
	c := &model.Category{
		ID:     uuid.NewString(),
		UserID: userID,
		Name:   in.Name,
		Icon:   in.Icon,
		Color:  in.Color,
	}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

func (s *CategoryService) Get(ctx context.Context, userID int64, id string) (*model.Category, error) {
	c, err := s.categories.GetByID(ctx, userID, id)
	if err != nil {
		return nil, categoryErr("get category", err)
	}
	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, userID int64, id string, in CategoryInput) (*model.Category, error) {
	c, err := s.categories.Update(ctx, userID, id, map[string]any{
		"name":  in.Name,
		"icon":  in.Icon,
		"color": in.Color,
	})
	if err != nil {
		return nil, categoryErr("update category", err)
	}
	return c, nil
}

// Delete удаляет категорию и все её воспоминания.
func (s *CategoryService) Delete(ctx context.Context, userID int64, id string) error {
	if err := s.categories.Delete(ctx, userID, id); err != nil {
		return categoryErr("delete category", err)
	}
	return nil
}

// Page возвращает категорию и её воспоминания (новые первыми).
func (s *CategoryService) Page(ctx context.Context, userID int64, id string) (*model.Category, []model.Memory, error) {
	c, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, nil, err
	}
	list, err := s.memories.List(ctx, userID, repo.MemoryFilter{CategoryID: id})
	if err != nil {
		return nil, nil, fmt.Errorf("list category memories: %w", err)
	}
	return c, list, nil
}

func categoryErr(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCategoryNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
