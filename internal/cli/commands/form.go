package commands

import (
	"context"
	"errors"
	"flag"
	"strings"

	"MemoryApp/internal/cli/api"
	"MemoryApp/internal/cli/model"
	srvmodel "MemoryApp/internal/model"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var (
	errFormRequired = errors.New("title, content and category are required")
	errInvalidURL   = errors.New("url must be a valid URL")
)

// memoryForm — поля формы создания/редактирования воспоминания.
type memoryForm struct {
	title    string
	content  string
	category string
	url      string
	file     string
}

func (f *memoryForm) bind(fs *flag.FlagSet) {
	fs.StringVar(&f.title, "title", "", "memory title")
	fs.StringVar(&f.content, "content", "", "memory text")
	fs.StringVar(&f.category, "category", "", "category id")
	fs.StringVar(&f.url, "url", "", "optional link")
	fs.StringVar(&f.file, "file", "", "local file to attach")
}

func (f *memoryForm) required() error {
	if strings.TrimSpace(f.title) == "" || strings.TrimSpace(f.content) == "" || strings.TrimSpace(f.category) == "" {
		return errFormRequired
	}
	return nil
}

// checkURL допускает пустую ссылку; непустая должна быть абсолютным URL.
func checkURL(raw string) (string, error) {
	u := strings.TrimSpace(raw)
	if u == "" {
		return "", nil
	}
	if err := validate.Var(u, "url"); err != nil {
		return "", errInvalidURL
	}
	return u, nil
}

// attach загружает файл и заполняет поля вложения; тип записи выводится из MIME.
func attach(ctx context.Context, c *api.Client, path string, in *model.MemoryInput) error {
	up, err := c.Upload(ctx, path)
	if err != nil {
		return err
	}
	fileURL, name := up.FileURL, up.OriginalName
	in.FileURL = &fileURL
	in.OriginalFileName = &name
	in.Type = srvmodel.MemoryType(up.Type)
	return nil
}
