package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"MemoryApp/internal/cli/api"
	"MemoryApp/internal/config"
)

type credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

var (
	errInvalidCredentials = errors.New("invalid login or password")
	errLoginTaken         = errors.New("login already taken")
)

// authenticate отправляет логин/пароль на endpoint и сохраняет полученный cookie.
func authenticate(ctx context.Context, cfg *config.Config, endpoint, login, password string) error {
	url := strings.TrimRight(cfg.ServerURL, "/") + endpoint
	resp, body, err := api.DoJSON(ctx, http.MethodPost, url, credentials{Login: login, Password: password}, "")
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return errInvalidCredentials
	case http.StatusConflict:
		return errLoginTaken
	default:
		return fmt.Errorf("server error: %s", api.ErrorMessage(body))
	}
	if err := api.PersistAuthFromResponse(resp, tokens); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}
	if err := logins.SaveLogin(login); err != nil {
		return fmt.Errorf("saving login: %w", err)
	}
	return nil
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Sign in and store auth cookie" }
func (loginCmd) Usage() string       { return "login <login> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	if err := authenticate(ctx, cfg, "/api/user/login", args[0], args[1]); err != nil {
		return err
	}
	newRenderer(loadSettings(cfg)).Message("auth.signedIn")
	return nil
}

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account and sign in" }
func (registerCmd) Usage() string       { return "register <login> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	if err := authenticate(ctx, cfg, "/api/user/register", args[0], args[1]); err != nil {
		return err
	}
	newRenderer(loadSettings(cfg)).Message("auth.registered")
	return nil
}

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Sign out and forget the auth cookie" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if token, err := tokens.Load(); err == nil && token != "" {
		url := strings.TrimRight(cfg.ServerURL, "/") + "/api/user/logout"
		// локальный выход выполняется даже если сервер недоступен
		_, _, _ = api.DoJSON(ctx, http.MethodPost, url, nil, token)
	}
	if err := tokens.Clear(); err != nil {
		return fmt.Errorf("clear auth: %w", err)
	}
	newRenderer(loadSettings(cfg)).Message("auth.signedOut")
	return nil
}

func init() {
	RegisterCmd(loginCmd{})
	RegisterCmd(registerCmd{})
	RegisterCmd(logoutCmd{})
}
