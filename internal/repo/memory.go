package repo

import (
	"MemoryApp/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// MemoryFilter сужает выборку воспоминаний пользователя.
type MemoryFilter struct {
	FavoritesOnly bool
	CategoryID    string
}

// MemoryRepository определяет контракт доступа к воспоминаниям.
// Запись всегда возвращается с подгруженной категорией.
type MemoryRepository interface {
	// List возвращает воспоминания пользователя, новые первыми.
	List(ctx context.Context, userID int64, f MemoryFilter) ([]model.Memory, error)

	GetByID(ctx context.Context, userID int64, id string) (*model.Memory, error)

	// Create проверяет принадлежность категории и создаёт запись в одной транзакции.
	// Возвращает ErrCategoryNotFound, если категория чужая или отсутствует.
	Create(ctx context.Context, m *model.Memory) error

	// Update проверяет запись (gorm.ErrRecordNotFound) и категорию (ErrCategoryNotFound),
	// затем выполняет условный UPDATE ... WHERE id AND user_id.
	Update(ctx context.Context, userID int64, id, categoryID string, updates map[string]any) (*model.Memory, error)

	// SetFavorite меняет флаг избранного одним условным UPDATE.
	SetFavorite(ctx context.Context, userID int64, id string, favorite bool) (*model.Memory, error)

	// Delete удаляет запись владельца; gorm.ErrRecordNotFound если удалять нечего.
	Delete(ctx context.Context, userID int64, id string) error
}

type memoryRepo struct {
	db *gorm.DB
}

// NewMemoryRepository создаёт реализацию репозитория для Memory.
func NewMemoryRepository(db *gorm.DB) MemoryRepository {
	return &memoryRepo{db: db}
}

func (r *memoryRepo) List(ctx context.Context, userID int64, f MemoryFilter) ([]model.Memory, error) {
	q := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID)
	if f.FavoritesOnly {
		q = q.Where("is_favorite = ?", true)
	}
	if f.CategoryID != "" {
		q = q.Where("category_id = ?", f.CategoryID)
	}

	var out []model.Memory
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *memoryRepo) GetByID(ctx context.Context, userID int64, id string) (*model.Memory, error) {
	return loadMemory(r.db.WithContext(ctx), userID, id)
}

func (r *memoryRepo) Create(ctx context.Context, m *model.Memory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureCategory(tx, m.UserID, m.CategoryID); err != nil {
			return err
		}
		if err := tx.Omit("Category", "User").Create(m).Error; err != nil {
			return err
		}
		var c model.Category
		if err := tx.Where("id = ?", m.CategoryID).First(&c).Error; err != nil {
			return err
		}
		m.Category = &c
		return nil
	})
}

func (r *memoryRepo) Update(ctx context.Context, userID int64, id, categoryID string, updates map[string]any) (*model.Memory, error) {
	var out *model.Memory
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&model.Memory{}).
			Where("id = ? AND user_id = ?", id, userID).
			Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := ensureCategory(tx, userID, categoryID); err != nil {
			return err
		}

		res := tx.Model(&model.Memory{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		// запись могла быть удалена между проверкой и UPDATE
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		m, err := loadMemory(tx, userID, id)
		if err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *memoryRepo) SetFavorite(ctx context.Context, userID int64, id string, favorite bool) (*model.Memory, error) {
	var out *model.Memory
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Memory{}).
			Where("id = ? AND user_id = ?", id, userID).
			Update("is_favorite", favorite)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		m, err := loadMemory(tx, userID, id)
		if err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *memoryRepo) Delete(ctx context.Context, userID int64, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Memory{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func loadMemory(db *gorm.DB, userID int64, id string) (*model.Memory, error) {
	var m model.Memory
	if err := db.Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// ensureCategory проверяет, что категория принадлежит пользователю.
func ensureCategory(tx *gorm.DB, userID int64, categoryID string) error {
	var c model.Category
	err := tx.Select("id").Where("id = ? AND user_id = ?", categoryID, userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCategoryNotFound
	}
	return err
}
