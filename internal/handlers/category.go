package handlers

import (
	"MemoryApp/internal/metrics"
	"MemoryApp/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CategoryHandler обрабатывает CRUD категорий и ленту категории.
type CategoryHandler struct {
	CategoryService *service.CategoryService
	Metrics         *metrics.Collector
	Logger          *zap.SugaredLogger
}

func NewCategoryHandler(categoryService *service.CategoryService, collector *metrics.Collector, logger *zap.SugaredLogger) *CategoryHandler {
	return &CategoryHandler{CategoryService: categoryService, Metrics: collector, Logger: logger}
}

type categoryRequest struct {
	Name  string `json:"name" validate:"required"`
	Icon  string `json:"icon" validate:"required"`
	Color string `json:"color" validate:"required,hexcolor"`
}

func (h *CategoryHandler) readRequest(w http.ResponseWriter, r *http.Request) (service.CategoryInput, bool) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		h.Logger.Warnw("category: invalid request body", "error", err)
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return service.CategoryInput{}, false
	}
	if err := validateStruct(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, err.Error())
		return service.CategoryInput{}, false
	}
	return service.CategoryInput{Name: req.Name, Icon: req.Icon, Color: req.Color}, true
}

// List категории пользователя с количеством воспоминаний
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	list, err := h.CategoryService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.Logger, "ListCategories", userID, err)
		return
	}
	out := make([]categoryListItem, 0, len(list))
	for i := range list {
		out = append(out, categoryListItem{categoryDTO: toCategoryDTO(&list[i].Category), MemoryCount: list[i].MemoryCount})
	}
	writeJSON(w, http.StatusOK, out)
}

// Create новая категория
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	in, ok := h.readRequest(w, r)
	if !ok {
		return
	}
	c, err := h.CategoryService.Create(r.Context(), userID, in)
	if err != nil {
		writeServiceError(w, h.Logger, "CreateCategory", userID, err)
		return
	}
	h.Metrics.CategoriesMade.Inc()
	writeJSON(w, http.StatusCreated, toCategoryDTO(c))
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	if !isID(id) {
		errorJSON(w, http.StatusNotFound, "Category not found")
		return
	}
	c, err := h.CategoryService.Get(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, h.Logger, "GetCategory", userID, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryDTO(c))
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	in, ok := h.readRequest(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	if !isID(id) {
		errorJSON(w, http.StatusNotFound, "Category not found")
		return
	}
	c, err := h.CategoryService.Update(r.Context(), userID, id, in)
	if err != nil {
		writeServiceError(w, h.Logger, "UpdateCategory", userID, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryDTO(c))
}

// Delete удаляет категорию вместе с её воспоминаниями
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	if !isID(id) {
		errorJSON(w, http.StatusNotFound, "Category not found")
		return
	}
	if err := h.CategoryService.Delete(r.Context(), userID, id); err != nil {
		writeServiceError(w, h.Logger, "DeleteCategory", userID, err)
		return
	}
	h.Logger.Infow("category deleted", "user_id", userID, "id", id)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Category deleted successfully"})
}

// Memories лента категории: сама категория и её воспоминания
func (h *CategoryHandler) Memories(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	if !isID(id) {
		errorJSON(w, http.StatusNotFound, "Category not found")
		return
	}
	c, list, err := h.CategoryService.Page(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, h.Logger, "CategoryMemories", userID, err)
		return
	}
	writeJSON(w, http.StatusOK, categoryPage{Category: toCategoryDTO(c), Memories: toMemoryDTOs(list)})
}
