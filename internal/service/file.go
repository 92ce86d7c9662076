package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StoredFile описывает сохранённый файл.
type StoredFile struct {
	Filename     string // имя в хранилище: <uuid><ext>
	OriginalName string
	Size         int64
	MimeType     string
}

// FileService сохраняет загруженные файлы в локальный каталог.
type FileService struct {
	dir      string
	maxBytes int64
	logger   *zap.SugaredLogger
}

func NewFileService(dir string, maxBytes int64, logger *zap.SugaredLogger) *FileService {
	return &FileService{dir: dir, maxBytes: maxBytes, logger: logger}
}

// Dir — каталог хранилища.
func (s *FileService) Dir() string { return s.dir }

// Save читает не более maxBytes из r, определяет MIME-тип по содержимому и пишет файл.
func (s *FileService) Save(ctx context.Context, originalName string, r io.Reader) (*StoredFile, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, ErrFileTooLarge
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mt := mimetype.Detect(data)
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = mt.Extension()
	}
	name := uuid.NewString() + ext

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return nil, fmt.Errorf("write upload: %w", err)
	}

	// text/plain; charset=utf-8 -> text/plain
	mime := mt.String()
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}

	s.logger.Debugw("file stored", "name", name, "original", originalName, "size", len(data), "mime", mime)
	return &StoredFile{
		Filename:     name,
		OriginalName: filepath.Base(originalName),
		Size:         int64(len(data)),
		MimeType:     mime,
	}, nil
}

// Open открывает сохранённый файл по имени; имена с путями отвергаются.
func (s *FileService) Open(name string) (*os.File, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return nil, os.ErrNotExist
	}
	return os.Open(filepath.Join(s.dir, name))
}

