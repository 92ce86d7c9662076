package handlers

import (
	"MemoryApp/internal/model"
	"time"
)

type categoryRef struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type memoryDTO struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Content          string       `json:"content"`
	Type             string       `json:"type"`
	FileURL          *string      `json:"fileUrl"`
	OriginalFileName *string      `json:"originalFileName"`
	URL              *string      `json:"url"`
	IsFavorite       bool         `json:"isFavorite"`
	CategoryID       string       `json:"categoryId"`
	UserID           int64        `json:"userId"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
	Category         *categoryRef `json:"category,omitempty"`
}

type categoryDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type categoryListItem struct {
	categoryDTO
	MemoryCount int64 `json:"memoryCount"`
}

type categoryPage struct {
	Category categoryDTO `json:"category"`
	Memories []memoryDTO `json:"memories"`
}

func toMemoryDTO(m *model.Memory) memoryDTO {
	dto := memoryDTO{
		ID:               m.ID,
		Title:            m.Title,
		Content:          m.Content,
		Type:             m.Type,
		FileURL:          m.FileURL,
		OriginalFileName: m.OriginalFileName,
		URL:              m.URL,
		IsFavorite:       m.IsFavorite,
		CategoryID:       m.CategoryID,
		UserID:           m.UserID,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
	if m.Category != nil {
		dto.Category = &categoryRef{Name: m.Category.Name, Icon: m.Category.Icon, Color: m.Category.Color}
	}
	return dto
}

func toMemoryDTOs(list []model.Memory) []memoryDTO {
	out := make([]memoryDTO, 0, len(list))
	for i := range list {
		out = append(out, toMemoryDTO(&list[i]))
	}
	return out
}

func toCategoryDTO(c *model.Category) categoryDTO {
	return categoryDTO{
		ID:        c.ID,
		Name:      c.Name,
		Icon:      c.Icon,
		Color:     c.Color,
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
