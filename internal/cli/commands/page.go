package commands

import (
	"context"
	"errors"
	"sync"

	"MemoryApp/internal/cli/api"
	"MemoryApp/internal/cli/model"
	"MemoryApp/internal/cli/search"
)

var (
	errMemoryNotFound = errors.New("memory not found")
	errDeleting       = errors.New("memory is already being deleted")
)

// ключи переводов для известных ошибок
var errorKeys = map[error]string{
	errMemoryNotFound:   "memory.notFound",
	errDeleting:         "memory.deleting",
	api.ErrUnauthorized: "auth.notSignedIn",
}

// localizedError — ошибка с переведённым текстом; errors.Is работает по исходной.
type localizedError struct {
	msg string
	err error
}

func (e *localizedError) Error() string { return e.msg }
func (e *localizedError) Unwrap() error { return e.err }

func (s *session) localize(err error) error {
	for target, key := range errorKeys {
		if errors.Is(err, target) {
			return &localizedError{msg: s.prefs.T(key), err: err}
		}
	}
	return err
}

// memoryPage — список воспоминаний страницы. Локальный список меняется
// только после успешного ответа сервера.
type memoryPage struct {
	client        *api.Client
	opts          search.Options
	favoritesOnly bool

	mu       sync.Mutex
	list     []model.Memory
	deleting map[string]bool
}

func newMemoryPage(c *api.Client, opts search.Options) *memoryPage {
	return &memoryPage{client: c, opts: opts, deleting: map[string]bool{}}
}

func (p *memoryPage) set(list []model.Memory) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.list = list
}

// Visible — записи, подходящие под строку поиска.
func (p *memoryPage) Visible(query string) []model.Memory {
	p.mu.Lock()
	defer p.mu.Unlock()
	return search.Filter(p.list, query, p.opts)
}

// Delete удаляет запись на сервере. Повторное удаление того же id, пока первое
// не завершилось, отклоняется.
func (p *memoryPage) Delete(ctx context.Context, id string) error {
	p.mu.Lock()
	if p.deleting[id] {
		p.mu.Unlock()
		return errDeleting
	}
	p.deleting[id] = true
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		delete(p.deleting, id)
		p.mu.Unlock()
	}()

	if err := p.client.DeleteMemory(ctx, id); err != nil {
		return err
	}

	p.mu.Lock()
	p.remove(id)
	p.mu.Unlock()
	return nil
}

// SetFavorite меняет флаг избранного; на странице избранного снятая запись исчезает.
func (p *memoryPage) SetFavorite(ctx context.Context, id string, favorite bool) (*model.Memory, error) {
	updated, err := p.client.SetFavorite(ctx, id, favorite)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.favoritesOnly && !updated.IsFavorite {
		p.remove(id)
		return updated, nil
	}
	for i := range p.list {
		if p.list[i].ID == id {
			p.list[i].IsFavorite = updated.IsFavorite
		}
	}
	return updated, nil
}

func (p *memoryPage) remove(id string) {
	out := make([]model.Memory, 0, len(p.list))
	for _, m := range p.list {
		if m.ID != id {
			out = append(out, m)
		}
	}
	p.list = out
}
