package commands

import (
	"context"

	"MemoryApp/internal/cli/search"
	"MemoryApp/internal/cli/view"
	"MemoryApp/internal/config"
)

type memoriesCmd struct{}

func (memoriesCmd) Name() string        { return "memories" }
func (memoriesCmd) Description() string { return "Show all memories (optional search)" }
func (memoriesCmd) Usage() string       { return "memories [query]" }

func (memoriesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	page := newMemoryPage(s.client, search.Options{IncludeCategory: true})

	s.view.Loading()
	list, err := s.client.Memories(ctx)
	if err != nil {
		return s.localize(err)
	}
	page.set(list)

	query := joinQuery(args)
	s.view.Header("nav.allMemories", "")
	s.view.MemoryList(page.Visible(query), query, view.Empty{Title: "home.noMemories", Desc: "home.noMemoriesDesc"})
	return nil
}

type favoritesCmd struct{}

func (favoritesCmd) Name() string        { return "favorites" }
func (favoritesCmd) Description() string { return "Show favorite memories (optional search)" }
func (favoritesCmd) Usage() string       { return "favorites [query]" }

func (favoritesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	page := newMemoryPage(s.client, search.Options{IncludeCategory: true})
	page.favoritesOnly = true

	s.view.Loading()
	list, err := s.client.Favorites(ctx)
	if err != nil {
		return s.localize(err)
	}
	page.set(list)

	query := joinQuery(args)
	s.view.Header("favorites.title", "favorites.description")
	s.view.MemoryList(page.Visible(query), query, view.Empty{Title: "favorites.noFavorites", Desc: "favorites.noFavoritesDesc"})
	return nil
}

type categoryCmd struct{}

func (categoryCmd) Name() string        { return "category" }
func (categoryCmd) Description() string { return "Show memories of a category (optional search)" }
func (categoryCmd) Usage() string       { return "category <id> [query]" }

func (categoryCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	// лента категории не ищет по имени категории
	page := newMemoryPage(s.client, search.Options{IncludeCategory: false})

	s.view.Loading()
	feed, err := s.client.CategoryPage(ctx, args[0])
	if err != nil {
		return s.localize(err)
	}
	page.set(feed.Memories)

	query := joinQuery(args[1:])
	visible := page.Visible(query)
	s.view.CategoryHeader(feed.Category, len(feed.Memories))
	s.view.MemoryList(visible, query, view.Empty{Title: "categories.noMemories"})
	return nil
}

func init() {
	RegisterCmd(memoriesCmd{})
	RegisterCmd(favoritesCmd{})
	RegisterCmd(categoryCmd{})
}
