// Package view печатает страницы клиента: списки, карточку воспоминания, категории, настройки.
package view

import (
	"fmt"
	"io"
	"path"
	"strings"
	"unicode/utf8"

	"MemoryApp/internal/cli/i18n"
	"MemoryApp/internal/cli/model"
	"MemoryApp/internal/cli/settings"
)

const excerptLen = 80

// Empty — ключи перевода для пустого состояния списка.
type Empty struct {
	Title string
	Desc  string
}

// Renderer пишет в W с палитрой P на языке Lang.
type Renderer struct {
	W    io.Writer
	P    settings.Palette
	Lang string
}

func New(w io.Writer, p settings.Palette, lang string) *Renderer {
	return &Renderer{W: w, P: p, Lang: lang}
}

func (r *Renderer) t(key string) string { return i18n.T(r.Lang, key) }

func (r *Renderer) muted(s string) string { return r.P.Paint(r.P.Muted, s) }

// Header — заголовок страницы и необязательное описание (ключи перевода).
func (r *Renderer) Header(titleKey, descKey string) {
	fmt.Fprintln(r.W, r.P.Paint(r.P.Title, r.t(titleKey)))
	if descKey != "" {
		fmt.Fprintln(r.W, r.muted(r.t(descKey)))
	}
	fmt.Fprintln(r.W)
}

func (r *Renderer) Loading() {
	fmt.Fprintln(r.W, r.muted(r.t("common.loading")))
}

// Message печатает переведённое сообщение об успехе.
func (r *Renderer) Message(key string) {
	fmt.Fprintln(r.W, r.P.Paint(r.P.Accent, r.t(key)))
}

// MemoryList печатает список; query != "" добавляет строку с числом найденных.
func (r *Renderer) MemoryList(list []model.Memory, query string, empty Empty) {
	if len(list) == 0 {
		fmt.Fprintln(r.W, r.t(empty.Title))
		if empty.Desc != "" {
			fmt.Fprintln(r.W, r.muted(r.t(empty.Desc)))
		}
		return
	}
	if q := strings.TrimSpace(query); q != "" {
		fmt.Fprintf(r.W, "%s %d %s %q\n\n", r.t("home.found"), len(list), r.t("home.memoriesFor"), q)
	}
	for _, m := range list {
		r.memoryLine(m)
	}
	fmt.Fprintf(r.W, "%s: %d\n", r.t("common.total"), len(list))
}

func (r *Renderer) memoryLine(m model.Memory) {
	star := " "
	if m.IsFavorite {
		star = "★"
	}
	cat := ""
	if l := categoryLabel(m.Category); l != "" {
		cat = "  " + l
	}
	fmt.Fprintf(r.W, "%s %s  [%s]%s  %s\n", star, r.P.Paint(r.P.Accent, m.Title), m.Type, cat, m.CreatedAt.UTC().Format("2006-01-02"))
	fmt.Fprintf(r.W, "  %s\n", excerpt(m.Content, excerptLen))
	fmt.Fprintf(r.W, "  %s\n\n", r.muted("id: "+m.ID))
}

// MemoryDetail печатает карточку; fileBase — адрес сервера для ссылок на файлы.
func (r *Renderer) MemoryDetail(m model.Memory, fileBase string) {
	fmt.Fprintln(r.W, r.P.Paint(r.P.Title, m.Title))

	meta := make([]string, 0, 3)
	if l := categoryLabel(m.Category); l != "" {
		meta = append(meta, l)
	}
	meta = append(meta, m.Type, m.CreatedAt.UTC().Format("2006-01-02"))
	line := strings.Join(meta, " · ")
	if m.IsFavorite {
		line += " ★"
	}
	fmt.Fprintln(r.W, r.muted(line))
	fmt.Fprintln(r.W)
	fmt.Fprintln(r.W, m.Content)

	if m.URL != nil && *m.URL != "" {
		fmt.Fprintln(r.W)
		fmt.Fprintf(r.W, "%s: %s\n", r.t("memory.link"), *m.URL)
	}
	if m.FileURL != nil && *m.FileURL != "" {
		name := path.Base(*m.FileURL)
		if m.OriginalFileName != nil && *m.OriginalFileName != "" {
			name = *m.OriginalFileName
		}
		fmt.Fprintln(r.W)
		fmt.Fprintf(r.W, "%s: %s\n", r.t("memory.attachedFile"), name)
		fmt.Fprintf(r.W, "  %s\n", strings.TrimRight(fileBase, "/")+*m.FileURL)
	}
}

// CategoryHeader — заголовок ленты категории.
func (r *Renderer) CategoryHeader(c model.Category, count int) {
	fmt.Fprintln(r.W, r.P.Paint(r.P.Title, strings.TrimSpace(c.Icon+" "+c.Name)))
	fmt.Fprintln(r.W, r.muted(fmt.Sprintf("%d %s", count, r.t("categories.memories"))))
	fmt.Fprintln(r.W)
}

func (r *Renderer) UploadResult(u model.Upload) {
	fmt.Fprintf(r.W, "%s  %s  %d bytes\n", r.P.Paint(r.P.Accent, u.OriginalName), u.Type, u.Size)
	fmt.Fprintf(r.W, "  %s\n", u.FileURL)
}

// CategoryList печатает категории со счётчиками.
func (r *Renderer) CategoryList(list []model.Category) {
	if len(list) == 0 {
		fmt.Fprintln(r.W, r.t("categories.empty"))
		return
	}
	for _, c := range list {
		label := strings.TrimSpace(c.Icon + " " + c.Name)
		fmt.Fprintf(r.W, "%s  (%d %s)  %s\n", r.P.Paint(r.P.Accent, label), c.MemoryCount, r.t("categories.memories"), r.muted(c.Color))
		fmt.Fprintf(r.W, "  %s\n", r.muted("id: "+c.ID))
	}
}

// Settings печатает текущие тему и язык.
func (r *Renderer) Settings(theme, lang string) {
	langKey := "settings.english"
	if lang == i18n.Spanish {
		langKey = "settings.spanish"
	}
	fmt.Fprintf(r.W, "%s: %s\n", r.t("settings.theme"), r.t("settings."+theme))
	fmt.Fprintf(r.W, "%s: %s\n", r.t("settings.language"), r.t(langKey))
}

func categoryLabel(c *model.CategoryRef) string {
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.Icon + " " + c.Name)
}

// excerpt — первая строка текста, не длиннее n рун.
func excerpt(s string, n int) string {
	s = strings.TrimSpace(strings.SplitN(s, "\n", 2)[0])
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-1]) + "…"
}
