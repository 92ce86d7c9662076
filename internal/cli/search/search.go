// Package search — локальный поиск по уже загруженному списку воспоминаний.
package search

import (
	"strings"

	"MemoryApp/internal/cli/model"

	"golang.org/x/text/cases"
)

// Options задаёт поля, по которым идёт поиск.
// Заголовок, текст и тип участвуют всегда; имя категории — только при IncludeCategory.
// Страница категории ищет без имени категории, списки всех и избранных — с ним.
type Options struct {
	IncludeCategory bool
}

// Filter возвращает воспоминания, содержащие query без учёта регистра (Unicode case folding).
// Запрос из одних пробелов считается пустым и возвращает список без изменений;
// непустой запрос сравнивается как есть, вместе с крайними пробелами. Порядок сохраняется.
func Filter(list []model.Memory, query string, opts Options) []model.Memory {
	if strings.TrimSpace(query) == "" {
		return list
	}
	fold := cases.Fold()
	q := fold.String(query)

	out := make([]model.Memory, 0, len(list))
	for _, m := range list {
		if matches(fold, m, q, opts) {
			out = append(out, m)
		}
	}
	return out
}

func matches(fold cases.Caser, m model.Memory, q string, opts Options) bool {
	fields := []string{m.Title, m.Content, m.Type}
	if opts.IncludeCategory && m.Category != nil {
		fields = append(fields, m.Category.Name)
	}
	for _, f := range fields {
		if strings.Contains(fold.String(f), q) {
			return true
		}
	}
	return false
}
