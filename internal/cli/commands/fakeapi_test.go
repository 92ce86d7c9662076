package commands

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"MemoryApp/internal/cli/model"

	"github.com/go-chi/chi/v5"
)

const fakeToken = "tok-1"

// fakeAPI — сервер MemoryApp в памяти для тестов команд.
type fakeAPI struct {
	mu         sync.Mutex
	memories   []model.Memory
	categories []model.Category

	created *model.MemoryInput
	updated *model.MemoryInput

	// если deleteGate задан, DELETE сообщает в deleteStarted и ждёт закрытия gate
	deleteGate    chan struct{}
	deleteStarted chan struct{}
}

func strPtr(s string) *string { return &s }

func newFakeAPI() *fakeAPI {
	travel := &model.CategoryRef{Name: "Travel", Icon: "🧳", Color: "#3B82F6"}
	food := &model.CategoryRef{Name: "Food", Icon: "🍝", Color: "#F59E0B"}
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return &fakeAPI{
		memories: []model.Memory{
			{ID: "m1", Title: "Paris", Content: "Eiffel tower at night", Type: "image", IsFavorite: true,
				CategoryID: "c1", CreatedAt: at, Category: travel,
				FileURL: strPtr("/uploads/abc.png"), OriginalFileName: strPtr("eiffel.png")},
			{ID: "m2", Title: "Pasta", Content: "Grandma's recipe", Type: "text",
				CategoryID: "c2", CreatedAt: at.Add(-time.Hour), Category: food},
			{ID: "m3", Title: "Packing list", Content: "socks and a charger", Type: "text",
				CategoryID: "c1", CreatedAt: at.Add(-2 * time.Hour), Category: travel},
		},
		categories: []model.Category{
			{ID: "c1", Name: "Travel", Icon: "🧳", Color: "#3B82F6", MemoryCount: 2},
			{ID: "c2", Name: "Food", Icon: "🍝", Color: "#F59E0B", MemoryCount: 1},
		},
	}
}

// Created и Updated — последние тела POST/PUT /api/memories.
func (f *fakeAPI) Created() *model.MemoryInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.created
}

func (f *fakeAPI) Updated() *model.MemoryInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.updated
}

// Fixtures — копия начального списка; берётся до Start.
func (f *fakeAPI) Fixtures() []model.Memory {
	return append([]model.Memory(nil), f.memories...)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func notFound(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusNotFound, map[string]string{"error": msg})
}

func (f *fakeAPI) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("auth_token")
		if err != nil || c.Value != fakeToken {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *fakeAPI) find(id string) int {
	for i := range f.memories {
		if f.memories[i].ID == id {
			return i
		}
	}
	return -1
}

// Start поднимает httptest-сервер, закрываемый по завершении теста.
func (f *fakeAPI) Start(t *testing.T) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Use(f.requireToken)

	r.Get("/api/user/me", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, model.User{ID: 1, Login: "alice"})
	})
	r.Get("/api/memories", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, http.StatusOK, f.memories)
	})
	r.Get("/api/favorites", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		out := []model.Memory{}
		for _, m := range f.memories {
			if m.IsFavorite {
				out = append(out, m)
			}
		}
		writeJSON(w, http.StatusOK, out)
	})
	r.Get("/api/categories", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, f.categories)
	})
	r.Post("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		var in model.Category
		_ = json.NewDecoder(r.Body).Decode(&in)
		in.ID = "c-new"
		writeJSON(w, http.StatusCreated, in)
	})
	r.Get("/api/categories/{id}/memories", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		id := chi.URLParam(r, "id")
		for _, c := range f.categories {
			if c.ID != id {
				continue
			}
			page := model.CategoryPage{Category: c, Memories: []model.Memory{}}
			for _, m := range f.memories {
				if m.CategoryID == id {
					page.Memories = append(page.Memories, m)
				}
			}
			writeJSON(w, http.StatusOK, page)
			return
		}
		notFound(w, "Category not found")
	})
	r.Post("/api/memories", func(w http.ResponseWriter, r *http.Request) {
		var in model.MemoryInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		f.mu.Lock()
		f.created = &in
		f.mu.Unlock()
		writeJSON(w, http.StatusCreated, model.Memory{ID: "new-1", Title: in.Title, Content: in.Content, Type: in.Type, CategoryID: in.CategoryID})
	})
	r.Put("/api/memories", func(w http.ResponseWriter, r *http.Request) {
		var in model.MemoryInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		f.mu.Lock()
		defer f.mu.Unlock()
		i := f.find(in.ID)
		if i < 0 {
			notFound(w, "Memory not found")
			return
		}
		f.updated = &in
		writeJSON(w, http.StatusOK, f.memories[i])
	})
	r.Delete("/api/memories", func(w http.ResponseWriter, r *http.Request) {
		if f.deleteGate != nil {
			f.deleteStarted <- struct{}{}
			<-f.deleteGate
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		i := f.find(r.URL.Query().Get("id"))
		if i < 0 {
			notFound(w, "Memory not found")
			return
		}
		f.memories = append(f.memories[:i], f.memories[i+1:]...)
		writeJSON(w, http.StatusOK, map[string]string{"message": "Memory deleted successfully"})
	})
	r.Patch("/api/favorites", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			MemoryID   string `json:"memoryId"`
			IsFavorite bool   `json:"isFavorite"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)
		f.mu.Lock()
		defer f.mu.Unlock()
		i := f.find(in.MemoryID)
		if i < 0 {
			notFound(w, "Memory not found")
			return
		}
		f.memories[i].IsFavorite = in.IsFavorite
		writeJSON(w, http.StatusOK, f.memories[i])
	})
	r.Post("/api/upload", func(w http.ResponseWriter, r *http.Request) {
		file, hdr, err := r.FormFile("file")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No file uploaded"})
			return
		}
		defer file.Close()
		n, _ := io.Copy(io.Discard, file)
		writeJSON(w, http.StatusOK, model.Upload{
			Filename: "x.png", FileURL: "/uploads/x.png", OriginalName: hdr.Filename, Size: n, Type: "image/png",
		})
	})

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}
