package handlers

import (
	"MemoryApp/internal/config"
	"MemoryApp/internal/metrics"
	"MemoryApp/internal/service"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UploadHandler принимает файлы и отдаёт сохранённые.
type UploadHandler struct {
	FileService *service.FileService
	Metrics     *metrics.Collector
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

func NewUploadHandler(fileService *service.FileService, collector *metrics.Collector, logger *zap.SugaredLogger, cfg *config.Config) *UploadHandler {
	return &UploadHandler{FileService: fileService, Metrics: collector, Logger: logger, Config: cfg}
}

type uploadResponse struct {
	Filename     string `json:"filename"`
	FileURL      string `json:"fileUrl"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	Type         string `json:"type"`
}

// Upload загрузка файла (multipart, поле file)
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	// Лимит общего тела запроса: файл плюс служебные части формы
	maxBody := h.Config.UploadMaxBytes() + 1<<20
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			errorJSON(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		h.Logger.Warnw("Upload: invalid multipart form", "error", err)
		errorJSON(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	stored, err := h.FileService.Save(r.Context(), header.Filename, file)
	if errors.Is(err, service.ErrFileTooLarge) {
		h.Logger.Warnw("Upload: payload too large", "user_id", userID, "size", header.Size)
		errorJSON(w, http.StatusRequestEntityTooLarge, "File too large")
		return
	}
	if err != nil {
		h.Logger.Errorw("Upload: service error", "user_id", userID, "error", err)
		errorJSON(w, http.StatusInternalServerError, internalError)
		return
	}

	h.Metrics.UploadedBytes.Add(float64(stored.Size))
	writeJSON(w, http.StatusOK, uploadResponse{
		Filename:     stored.Filename,
		FileURL:      "/uploads/" + stored.Filename,
		OriginalName: stored.OriginalName,
		Size:         stored.Size,
		Type:         stored.MimeType,
	})
}

// Serve отдаёт сохранённый файл по имени
func (h *UploadHandler) Serve(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	f, err := h.FileService.Open(name)
	if err != nil {
		errorJSON(w, http.StatusNotFound, "File not found")
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		errorJSON(w, http.StatusNotFound, "File not found")
		return
	}
	http.ServeContent(w, r, name, info.ModTime(), f)
}
