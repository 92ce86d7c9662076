// Package settings хранит пользовательские настройки клиента (тема и язык).
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"MemoryApp/internal/cli/i18n"

	"gopkg.in/yaml.v3"
)

// Темы оформления.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ErrInvalidTheme — тема не из набора light|dark.
var ErrInvalidTheme = errors.New("theme must be light or dark")

// ErrInvalidLanguage — язык не поддерживается.
var ErrInvalidLanguage = errors.New("language must be en or es")

type values struct {
	Theme    string `yaml:"theme"`
	Language string `yaml:"language"`
}

// Context — настройки, загружаемые при старте клиента и сохраняемые при каждом изменении.
type Context struct {
	path string
	v    values
}

// Default возвращает настройки по умолчанию (light/en) без привязки к файлу.
func Default() *Context {
	return &Context{v: values{Theme: ThemeLight, Language: i18n.English}}
}

// At — настройки по умолчанию, которые будут сохраняться в path.
func At(path string) *Context {
	c := Default()
	c.path = path
	return c
}

// Load читает настройки из YAML-файла. Отсутствующий файл даёт значения по умолчанию,
// некорректные значения в файле заменяются значениями по умолчанию.
func Load(path string) (*Context, error) {
	c := At(path)

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var v values
	if err := yaml.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	if v.Theme == ThemeLight || v.Theme == ThemeDark {
		c.v.Theme = v.Theme
	}
	if lang, ok := i18n.Normalize(v.Language); ok {
		c.v.Language = lang
	}
	return c, nil
}

func (c *Context) Theme() string    { return c.v.Theme }
func (c *Context) Language() string { return c.v.Language }

// Path — файл, в который сохраняются настройки.
func (c *Context) Path() string { return c.path }

// SetTheme проверяет и сохраняет тему.
func (c *Context) SetTheme(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return ErrInvalidTheme
	}
	c.v.Theme = theme
	return c.Save()
}

// SetLanguage принимает тег языка ("es", "es-MX", "en-US") и сохраняет поддерживаемый язык.
func (c *Context) SetLanguage(tag string) error {
	lang, ok := i18n.Normalize(tag)
	if !ok {
		return ErrInvalidLanguage
	}
	c.v.Language = lang
	return c.Save()
}

// Save пишет настройки в файл. Без пути сохранение не выполняется.
func (c *Context) Save() error {
	if c.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	b, err := yaml.Marshal(&c.v)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return os.WriteFile(c.path, b, 0o600)
}

// T переводит ключ на язык настроек.
func (c *Context) T(key string) string {
	return i18n.T(c.v.Language, key)
}

// Apply выбирает палитру вывода для текущей темы.
func (c *Context) Apply() Palette {
	if c.v.Theme == ThemeDark {
		return Dark
	}
	return Light
}
