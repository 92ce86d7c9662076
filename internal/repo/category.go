package repo

import (
	"MemoryApp/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrCategoryNotFound — категория, на которую ссылается запись, не найдена у пользователя.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository определяет контракт доступа к категориям.
// Все методы ограничены владельцем: чужая категория неотличима от несуществующей.
type CategoryRepository interface {
	// ListWithCounts возвращает категории пользователя по имени вместе с числом воспоминаний.
	ListWithCounts(ctx context.Context, userID int64) ([]model.CategoryWithCount, error)

	GetByID(ctx context.Context, userID int64, id string) (*model.Category, error)

	Create(ctx context.Context, c *model.Category) error

	// Update обновляет поля категории одним условным UPDATE ... WHERE id AND user_id.
	Update(ctx context.Context, userID int64, id string, updates map[string]any) (*model.Category, error)

	// Delete удаляет категорию вместе с её воспоминаниями в одной транзакции.
	Delete(ctx context.Context, userID int64, id string) error
}

type categoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepository создаёт реализацию репозитория для Category.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) ListWithCounts(ctx context.Context, userID int64) ([]model.CategoryWithCount, error) {
	var cats []model.Category
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&cats).Error; err != nil {
		return nil, err
	}

	var counts []struct {
		CategoryID string
		N          int64
	}
	if err := r.db.WithContext(ctx).
		Model(&model.Memory{}).
		Select("category_id, COUNT(*) AS n").
		Where("user_id = ?", userID).
		Group("category_id").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]int64, len(counts))
	for _, c := range counts {
		byID[c.CategoryID] = c.N
	}

	res := make([]model.CategoryWithCount, 0, len(cats))
	for _, c := range cats {
		res = append(res, model.CategoryWithCount{Category: c, MemoryCount: byID[c.ID]})
	}
	return res, nil
}

func (r *categoryRepo) GetByID(ctx context.Context, userID int64, id string) (*model.Category, error) {
	var c model.Category
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) Create(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepo) Update(ctx context.Context, userID int64, id string, updates map[string]any) (*model.Category, error) {
	var out model.Category
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Category{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("id = ? AND user_id = ?", id, userID).First(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *categoryRepo) Delete(ctx context.Context, userID int64, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ? AND user_id = ?", id, userID).
			Delete(&model.Memory{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Category{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
