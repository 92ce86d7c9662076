package handlers

import (
	"MemoryApp/internal/config"
	"MemoryApp/internal/middleware"
	"MemoryApp/internal/service"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserHandler регистрация, вход и выход пользователя.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

type credentialsRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userDTO struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
}

func (h *UserHandler) readCredentials(w http.ResponseWriter, r *http.Request) (*credentialsRequest, bool) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		h.Logger.Warnw("user: invalid request body", "error", err)
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	req.Login = strings.TrimSpace(req.Login)
	if err := validateStruct(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return &req, true
}

func (h *UserHandler) setCookie(w http.ResponseWriter, userID int64) bool {
	if err := middleware.SetLoginCookie(w, userID, h.Config.AuthSecret, middleware.Secure(h.Config.CookieSecure)); err != nil {
		h.Logger.Errorw("user: sign token", "user_id", userID, "error", err)
		errorJSON(w, http.StatusInternalServerError, internalError)
		return false
	}
	return true
}

// Register регистрация пользователя
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	req, ok := h.readCredentials(w, r)
	if !ok {
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Login, req.Password)
	if errors.Is(err, service.ErrLoginTaken) {
		errorJSON(w, http.StatusConflict, "Login already taken")
		return
	}
	if err != nil {
		h.Logger.Errorw("Register: service error", "login", req.Login, "error", err)
		errorJSON(w, http.StatusInternalServerError, internalError)
		return
	}

	if !h.setCookie(w, user.ID) {
		return
	}
	h.Logger.Infow("user registered", "user_id", user.ID)
	writeJSON(w, http.StatusOK, userDTO{ID: user.ID, Login: user.Login})
}

// Login аутентификация пользователя
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := h.readCredentials(w, r)
	if !ok {
		return
	}

	user, err := h.UserService.Login(r.Context(), req.Login, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		errorJSON(w, http.StatusUnauthorized, "Invalid login or password")
		return
	}
	if err != nil {
		h.Logger.Errorw("Login: service error", "login", req.Login, "error", err)
		errorJSON(w, http.StatusInternalServerError, internalError)
		return
	}

	if !h.setCookie(w, user.ID) {
		return
	}
	writeJSON(w, http.StatusOK, userDTO{ID: user.ID, Login: user.Login})
}

// Logout удаляет cookie сессии
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearLoginCookie(w, middleware.Secure(h.Config.CookieSecure))
	writeJSON(w, http.StatusOK, map[string]string{"message": "Signed out"})
}

// Me возвращает текущего пользователя
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	user, err := h.UserService.Get(r.Context(), userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		errorJSON(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err != nil {
		h.Logger.Errorw("Me: service error", "user_id", userID, "error", err)
		errorJSON(w, http.StatusInternalServerError, internalError)
		return
	}
	writeJSON(w, http.StatusOK, userDTO{ID: user.ID, Login: user.Login})
}
