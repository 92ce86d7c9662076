package handlers

import (
	"MemoryApp/internal/middleware"
	"MemoryApp/internal/service"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = newValidator()

// newValidator называет поля в ошибках по json-тегам.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

const internalError = "Internal server error"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func errorJSON(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	return dec.Decode(v)
}

// requireUser достаёт id пользователя из контекста или отвечает 401.
func requireUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "Unauthorized")
		return 0, false
	}
	return userID, true
}

// isID проверяет формат идентификатора. Id не в формате uuid заведомо не существует,
// в хранилище такой запрос не передаётся.
func isID(id string) bool {
	return validate.Var(id, "required,uuid") == nil
}

// validateStruct проверяет теги validate и собирает ошибки в одну строку.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	msgs := make([]string, 0, len(ve))
	for _, e := range ve {
		msgs = append(msgs, formatFieldError(e))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "hexcolor":
		return fmt.Sprintf("%s must be a hex color", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// writeServiceError переводит ошибки сервисов в HTTP-ответы.
// Неожиданные ошибки логируются, клиенту уходит общий текст.
func writeServiceError(w http.ResponseWriter, logger *zap.SugaredLogger, op string, userID int64, err error) {
	switch {
	case errors.Is(err, service.ErrMemoryNotFound):
		errorJSON(w, http.StatusNotFound, "Memory not found")
	case errors.Is(err, service.ErrCategoryNotFound):
		errorJSON(w, http.StatusNotFound, "Category not found")
	default:
		logger.Errorw(op+": service error", "user_id", userID, "error", err)
		errorJSON(w, http.StatusInternalServerError, internalError)
	}
}
