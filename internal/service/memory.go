package service

import (
	"MemoryApp/internal/model"
	"MemoryApp/internal/repo"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MemoryInput — поля воспоминания от клиента.
// Опциональные поля: nil — «не передано», пустая строка — очистить значение.
type MemoryInput struct {
	Title      string
	Content    string
	Type       string
	CategoryID string

	FileURL          *string
	OriginalFileName *string
	URL              *string
	IsFavorite       *bool
}

// MemoryService инкапсулирует бизнес-логику работы с воспоминаниями.
type MemoryService struct {
	repo   repo.MemoryRepository
	logger *zap.SugaredLogger
}

func NewMemoryService(r repo.MemoryRepository, logger *zap.SugaredLogger) *MemoryService {
	return &MemoryService{repo: r, logger: logger}
}

// List возвращает все воспоминания пользователя.
func (s *MemoryService) List(ctx context.Context, userID int64) ([]model.Memory, error) {
	list, err := s.repo.List(ctx, userID, repo.MemoryFilter{})
	if err != nil {
		return nil, fmt.Errorf("list memories: %w", err)
	}
	return list, nil
}

// Favorites возвращает избранные воспоминания пользователя.
func (s *MemoryService) Favorites(ctx context.Context, userID int64) ([]model.Memory, error) {
	list, err := s.repo.List(ctx, userID, repo.MemoryFilter{FavoritesOnly: true})
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return list, nil
}

// Create создаёт воспоминание в категории пользователя.
func (s *MemoryService) Create(ctx context.Context, userID int64, in MemoryInput) (*model.Memory, error) {
	m := &model.Memory{
		ID:               uuid.NewString(),
		UserID:           userID,
		CategoryID:       in.CategoryID,
		Title:            in.Title,
		Content:          in.Content,
		Type:             in.Type,
		FileURL:          optional(in.FileURL),
		OriginalFileName: optional(in.OriginalFileName),
		URL:              optional(in.URL),
	}
	if in.IsFavorite != nil {
		m.IsFavorite = *in.IsFavorite
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, memoryErr("create memory", err)
	}
	s.logger.Debugw("memory created", "user_id", userID, "id", m.ID, "category_id", m.CategoryID)
	return m, nil
}

// Update полностью обновляет воспоминание. Флаг избранного и вложения
// сохраняются, если клиент их не передал.
func (s *MemoryService) Update(ctx context.Context, userID int64, id string, in MemoryInput) (*model.Memory, error) {
	updates := map[string]any{
		"title":       in.Title,
		"content":     in.Content,
		"type":        in.Type,
		"category_id": in.CategoryID,
	}
	if in.FileURL != nil {
		updates["file_url"] = optional(in.FileURL)
	}
	if in.OriginalFileName != nil {
		updates["original_file_name"] = optional(in.OriginalFileName)
	}
	if in.URL != nil {
		updates["url"] = optional(in.URL)
	}
	if in.IsFavorite != nil {
		updates["is_favorite"] = *in.IsFavorite
	}

	m, err := s.repo.Update(ctx, userID, id, in.CategoryID, updates)
	if err != nil {
		return nil, memoryErr("update memory", err)
	}
	return m, nil
}

// SetFavorite меняет флаг избранного.
func (s *MemoryService) SetFavorite(ctx context.Context, userID int64, id string, favorite bool) (*model.Memory, error) {
	m, err := s.repo.SetFavorite(ctx, userID, id, favorite)
	if err != nil {
		return nil, memoryErr("set favorite", err)
	}
	return m, nil
}

// Delete удаляет воспоминание пользователя.
func (s *MemoryService) Delete(ctx context.Context, userID int64, id string) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return memoryErr("delete memory", err)
	}
	return nil
}

func memoryErr(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrMemoryNotFound
	case errors.Is(err, repo.ErrCategoryNotFound):
		return ErrCategoryNotFound
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// optional превращает пустую строку в NULL.
func optional(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	s := *v
	return &s
}
