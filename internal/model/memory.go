package model

import (
	"strings"
	"time"
)

// Типы содержимого воспоминания.
const (
	MemoryTypeText     = "text"
	MemoryTypeImage    = "image"
	MemoryTypeDocument = "document"
	MemoryTypeAudio    = "audio"
)

// Memory — запись дневника пользователя.
type Memory struct {
	ID     string `gorm:"primaryKey;type:uuid"`
	UserID int64  `gorm:"not null;index"` // ссылка на users.id

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CategoryID string    `gorm:"type:uuid;not null;index"`
	Category   *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Title   string `gorm:"not null"`
	Content string `gorm:"not null"`
	Type    string `gorm:"not null"`

	FileURL          *string
	OriginalFileName *string
	URL              *string

	IsFavorite bool `gorm:"not null;default:false;index"`

	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// MemoryType сопоставляет MIME-тип загруженного файла с типом воспоминания.
func MemoryType(mime string) string {
	switch {
	case strings.HasPrefix(mime, "image/"):
		return MemoryTypeImage
	case mime == "application/pdf" || strings.Contains(mime, "document"):
		return MemoryTypeDocument
	case strings.HasPrefix(mime, "audio/"):
		return MemoryTypeAudio
	default:
		return MemoryTypeDocument
	}
}
