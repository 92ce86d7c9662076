package handlers

import (
	"MemoryApp/internal/metrics"
	"MemoryApp/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// MemoryHandler обрабатывает воспоминания и избранное.
type MemoryHandler struct {
	MemoryService *service.MemoryService
	Metrics       *metrics.Collector
	Logger        *zap.SugaredLogger
}

func NewMemoryHandler(memoryService *service.MemoryService, collector *metrics.Collector, logger *zap.SugaredLogger) *MemoryHandler {
	return &MemoryHandler{MemoryService: memoryService, Metrics: collector, Logger: logger}
}

// memoryRequest — тело POST/PUT. Для POST id игнорируется.
type memoryRequest struct {
	ID               string  `json:"id"`
	Title            string  `json:"title" validate:"required"`
	Content          string  `json:"content" validate:"required"`
	Type             string  `json:"type" validate:"required,oneof=text image document audio"`
	CategoryID       string  `json:"categoryId" validate:"required"`
	FileURL          *string `json:"fileUrl"`
	OriginalFileName *string `json:"originalFileName"`
	URL              *string `json:"url"`
	IsFavorite       *bool   `json:"isFavorite"`
}

func (req *memoryRequest) input() service.MemoryInput {
	return service.MemoryInput{
		Title:            req.Title,
		Content:          req.Content,
		Type:             req.Type,
		CategoryID:       req.CategoryID,
		FileURL:          req.FileURL,
		OriginalFileName: req.OriginalFileName,
		URL:              req.URL,
		IsFavorite:       req.IsFavorite,
	}
}

type favoriteRequest struct {
	MemoryID   string `json:"memoryId" validate:"required"`
	IsFavorite *bool  `json:"isFavorite" validate:"required"`
}

func (h *MemoryHandler) readRequest(w http.ResponseWriter, r *http.Request) (*memoryRequest, bool) {
	var req memoryRequest
	if err := decodeJSON(r, &req); err != nil {
		h.Logger.Warnw("memory: invalid request body", "error", err)
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if err := validateStruct(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	// пустая строка очищает ссылку, непустая должна быть абсолютным URL
	if req.URL != nil {
		trimmed := strings.TrimSpace(*req.URL)
		req.URL = &trimmed
		if trimmed != "" && validate.Var(trimmed, "url") != nil {
			errorJSON(w, http.StatusBadRequest, "url must be a valid URL")
			return nil, false
		}
	}
	return &req, true
}

// List все воспоминания пользователя, новые первыми
func (h *MemoryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	list, err := h.MemoryService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.Logger, "ListMemories", userID, err)
		return
	}
	writeJSON(w, http.StatusOK, toMemoryDTOs(list))
}

// Create новое воспоминание в категории пользователя
func (h *MemoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	req, ok := h.readRequest(w, r)
	if !ok {
		return
	}
	if !isID(req.CategoryID) {
		errorJSON(w, http.StatusNotFound, "Category not found")
		return
	}
	m, err := h.MemoryService.Create(r.Context(), userID, req.input())
	if err != nil {
		writeServiceError(w, h.Logger, "CreateMemory", userID, err)
		return
	}
	h.Metrics.MemoriesCreated.Inc()
	writeJSON(w, http.StatusCreated, toMemoryDTO(m))
}

// Update полное обновление воспоминания
func (h *MemoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	req, ok := h.readRequest(w, r)
	if !ok {
		return
	}
	if req.ID == "" {
		errorJSON(w, http.StatusBadRequest, "id is required")
		return
	}
	if !isID(req.ID) {
		errorJSON(w, http.StatusNotFound, "Memory not found")
		return
	}
	if !isID(req.CategoryID) {
		errorJSON(w, http.StatusNotFound, "Category not found")
		return
	}
	m, err := h.MemoryService.Update(r.Context(), userID, req.ID, req.input())
	if err != nil {
		writeServiceError(w, h.Logger, "UpdateMemory", userID, err)
		return
	}
	writeJSON(w, http.StatusOK, toMemoryDTO(m))
}

// Delete удаление воспоминания по ?id=
func (h *MemoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		errorJSON(w, http.StatusBadRequest, "id is required")
		return
	}
	if !isID(id) {
		errorJSON(w, http.StatusNotFound, "Memory not found")
		return
	}
	if err := h.MemoryService.Delete(r.Context(), userID, id); err != nil {
		writeServiceError(w, h.Logger, "DeleteMemory", userID, err)
		return
	}
	h.Metrics.MemoriesDeleted.Inc()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Memory deleted successfully"})
}

// Favorites избранные воспоминания
func (h *MemoryHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	list, err := h.MemoryService.Favorites(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.Logger, "ListFavorites", userID, err)
		return
	}
	writeJSON(w, http.StatusOK, toMemoryDTOs(list))
}

// ToggleFavorite выставляет флаг избранного; isFavorite обязан быть boolean
func (h *MemoryHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req favoriteRequest
	if err := decodeJSON(r, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "isFavorite" {
			errorJSON(w, http.StatusBadRequest, "isFavorite must be a boolean")
			return
		}
		h.Logger.Warnw("favorites: invalid request body", "error", err)
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validateStruct(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	if !isID(req.MemoryID) {
		errorJSON(w, http.StatusNotFound, "Memory not found")
		return
	}
	m, err := h.MemoryService.SetFavorite(r.Context(), userID, req.MemoryID, *req.IsFavorite)
	if err != nil {
		writeServiceError(w, h.Logger, "ToggleFavorite", userID, err)
		return
	}
	h.Metrics.FavoritesToggled.Inc()
	writeJSON(w, http.StatusOK, toMemoryDTO(m))
}
