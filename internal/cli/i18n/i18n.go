// Package i18n — таблица переводов клиента.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Поддерживаемые языки.
const (
	English = "en"
	Spanish = "es"
)

// Table: язык -> ключ -> строка.
type Table map[string]map[string]string

var supported = []language.Tag{language.English, language.Spanish}

var matcher = language.NewMatcher(supported)

// Normalize приводит тег вида "es-MX" к поддерживаемому языку.
// ok == false, если язык не поддерживается.
func Normalize(tag string) (string, bool) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return English, false
	}
	t, err := language.Parse(tag)
	if err != nil {
		return English, false
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return English, false
	}
	base, _ := supported[idx].Base()
	return base.String(), true
}

// Get ищет ключ в языке lang, затем в английском; если ключа нет нигде, возвращает сам ключ.
func (t Table) Get(lang, key string) string {
	if s, ok := t[lang][key]; ok && s != "" {
		return s
	}
	if s, ok := t[English][key]; ok && s != "" {
		return s
	}
	return key
}

// T — перевод из встроенной таблицы.
func T(lang, key string) string {
	return Default.Get(lang, key)
}

// Tf переводит и подставляет пары {name} -> value.
func Tf(lang, key string, kv ...string) string {
	s := T(lang, key)
	if len(kv) < 2 {
		return s
	}
	pairs := make([]string, 0, len(kv))
	for i := 0; i+1 < len(kv); i += 2 {
		pairs = append(pairs, "{"+kv[i]+"}", kv[i+1])
	}
	return strings.NewReplacer(pairs...).Replace(s)
}
