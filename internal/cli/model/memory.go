package model

import "time"

// CategoryRef — краткие данные категории, приходящие вместе с воспоминанием.
type CategoryRef struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Memory — воспоминание в том виде, в котором его отдаёт сервер.
type Memory struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Content          string       `json:"content"`
	Type             string       `json:"type"`
	FileURL          *string      `json:"fileUrl,omitempty"`
	OriginalFileName *string      `json:"originalFileName,omitempty"`
	URL              *string      `json:"url,omitempty"`
	IsFavorite       bool         `json:"isFavorite"`
	CategoryID       string       `json:"categoryId"`
	CreatedAt        time.Time    `json:"createdAt"`
	Category         *CategoryRef `json:"category,omitempty"`
}

// MemoryInput — тело запросов создания/обновления.
type MemoryInput struct {
	ID               string  `json:"id,omitempty"`
	Title            string  `json:"title"`
	Content          string  `json:"content"`
	Type             string  `json:"type"`
	CategoryID       string  `json:"categoryId"`
	FileURL          *string `json:"fileUrl,omitempty"`
	OriginalFileName *string `json:"originalFileName,omitempty"`
	URL              *string `json:"url,omitempty"`
	IsFavorite       *bool   `json:"isFavorite,omitempty"`
}

// Category — категория со счётчиком воспоминаний (в списке).
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	MemoryCount int64  `json:"memoryCount"`
}

// CategoryPage — ответ ленты категории.
type CategoryPage struct {
	Category Category `json:"category"`
	Memories []Memory `json:"memories"`
}

// Upload — результат загрузки файла.
type Upload struct {
	Filename     string `json:"filename"`
	FileURL      string `json:"fileUrl"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	Type         string `json:"type"`
}

// User — текущий пользователь сессии.
type User struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
}
