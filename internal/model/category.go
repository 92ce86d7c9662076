package model

import "time"

// Category — пользовательская группа воспоминаний.
type Category struct {
	ID     string `gorm:"primaryKey;type:uuid"`
	UserID int64  `gorm:"not null;index"` // ссылка на users.id

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Name  string `gorm:"not null"`
	Icon  string `gorm:"not null"`
	Color string `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// CategoryWithCount — категория вместе с количеством воспоминаний в ней.
type CategoryWithCount struct {
	Category
	MemoryCount int64
}
