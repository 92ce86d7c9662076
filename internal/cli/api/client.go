package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"MemoryApp/internal/cli/model"
)

// ErrUnauthorized — нет сессии или сервер её не принял.
var ErrUnauthorized = errors.New("not signed in")

// Error — ответ сервера с кодом ошибки.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server status %d: %s", e.Status, e.Message)
}

// IsNotFound сообщает, что сервер ответил 404.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Status == http.StatusNotFound
}

// Client — типизированный клиент JSON API сервера.
type Client struct {
	BaseURL string
	Token   string
}

func NewClient(baseURL, token string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), Token: token}
}

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	resp, body, err := DoJSON(ctx, method, c.url(path), in, c.Token)
	if err != nil {
		return err
	}
	return decode(resp, body, out)
}

func decode(resp *http.Response, body []byte, out any) error {
	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return &Error{Status: resp.StatusCode, Message: ErrorMessage(body)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var u model.User
	if err := c.do(ctx, http.MethodGet, "/api/user/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Memories(ctx context.Context) ([]model.Memory, error) {
	var list []model.Memory
	err := c.do(ctx, http.MethodGet, "/api/memories", nil, &list)
	return list, err
}

func (c *Client) Favorites(ctx context.Context) ([]model.Memory, error) {
	var list []model.Memory
	err := c.do(ctx, http.MethodGet, "/api/favorites", nil, &list)
	return list, err
}

func (c *Client) CategoryPage(ctx context.Context, id string) (*model.CategoryPage, error) {
	var page model.CategoryPage
	if err := c.do(ctx, http.MethodGet, "/api/categories/"+url.PathEscape(id)+"/memories", nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	var list []model.Category
	err := c.do(ctx, http.MethodGet, "/api/categories", nil, &list)
	return list, err
}

func (c *Client) CreateCategory(ctx context.Context, name, icon, color string) (*model.Category, error) {
	var out model.Category
	in := map[string]string{"name": name, "icon": icon, "color": color}
	if err := c.do(ctx, http.MethodPost, "/api/categories", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateMemory(ctx context.Context, in model.MemoryInput) (*model.Memory, error) {
	var out model.Memory
	if err := c.do(ctx, http.MethodPost, "/api/memories", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMemory(ctx context.Context, in model.MemoryInput) (*model.Memory, error) {
	var out model.Memory
	if err := c.do(ctx, http.MethodPut, "/api/memories", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteMemory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/memories?id="+url.QueryEscape(id), nil, nil)
}

func (c *Client) SetFavorite(ctx context.Context, id string, favorite bool) (*model.Memory, error) {
	var out model.Memory
	in := map[string]any{"memoryId": id, "isFavorite": favorite}
	if err := c.do(ctx, http.MethodPatch, "/api/favorites", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Upload загружает локальный файл и возвращает ссылку на него.
func (c *Client) Upload(ctx context.Context, path string) (*model.Upload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	resp, body, err := PostMultipartFile(ctx, c.url("/api/upload"), "file", filepath.Base(path), f, c.Token)
	if err != nil {
		return nil, err
	}
	var out model.Upload
	if err := decode(resp, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
