package commands

import (
	"context"
	"fmt"
	"strings"

	"MemoryApp/internal/cli/i18n"
	"MemoryApp/internal/cli/model"
	"MemoryApp/internal/cli/search"
	srvmodel "MemoryApp/internal/model"
	"MemoryApp/internal/config"
)

type memoryCmd struct{}

func (memoryCmd) Name() string        { return "memory" }
func (memoryCmd) Description() string { return "Show one memory" }
func (memoryCmd) Usage() string       { return "memory <id>" }

func (memoryCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	m, err := findMemory(ctx, s.client, args[0])
	if err != nil {
		return s.localize(err)
	}
	s.view.MemoryDetail(*m, cfg.ServerURL)
	return nil
}

type memoryNewCmd struct{}

func (memoryNewCmd) Name() string        { return "memory-new" }
func (memoryNewCmd) Description() string { return "Create a memory" }
func (memoryNewCmd) Usage() string {
	return "memory-new --title <t> --content <c> --category <id> [--url <u>] [--file <path>] [--favorite]"
}

func (memoryNewCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("memory-new")
	var f memoryForm
	f.bind(fs)
	favorite := fs.Bool("favorite", false, "mark as favorite")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}
	if err := f.required(); err != nil {
		return err
	}
	link, err := checkURL(f.url)
	if err != nil {
		return err
	}

	s, err := openSession(cfg)
	if err != nil {
		return err
	}

	in := model.MemoryInput{
		Title:      strings.TrimSpace(f.title),
		Content:    f.content,
		Type:       srvmodel.MemoryTypeText,
		CategoryID: strings.TrimSpace(f.category),
		IsFavorite: favorite,
	}
	if link != "" {
		in.URL = &link
	}
	if f.file != "" {
		if err := attach(ctx, s.client, f.file, &in); err != nil {
			return s.localize(err)
		}
	}

	m, err := s.client.CreateMemory(ctx, in)
	if err != nil {
		return s.localize(err)
	}
	s.view.Message("memory.created")
	fmt.Fprintf(Out, "id: %s\n", m.ID)
	return nil
}

type memoryEditCmd struct{}

func (memoryEditCmd) Name() string        { return "memory-edit" }
func (memoryEditCmd) Description() string { return "Edit a memory (only given fields change)" }
func (memoryEditCmd) Usage() string {
	return "memory-edit <id> [--title <t>] [--content <c>] [--category <id>] [--url <u>] [--file <path>] [--clear-file]"
}

func (memoryEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || strings.HasPrefix(args[0], "-") {
		return ErrUsage
	}
	id := args[0]

	fs := newFlagSet("memory-edit")
	var f memoryForm
	f.bind(fs)
	clearFile := fs.Bool("clear-file", false, "remove the attached file")
	if err := fs.Parse(args[1:]); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}
	given := setFlags(fs)

	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	cur, err := findMemory(ctx, s.client, id)
	if err != nil {
		return s.localize(err)
	}

	// форма начинается с текущих значений
	if !given["title"] {
		f.title = cur.Title
	}
	if !given["content"] {
		f.content = cur.Content
	}
	if !given["category"] {
		f.category = cur.CategoryID
	}
	if err := f.required(); err != nil {
		return err
	}

	in := model.MemoryInput{
		ID:         id,
		Title:      strings.TrimSpace(f.title),
		Content:    f.content,
		Type:       cur.Type,
		CategoryID: strings.TrimSpace(f.category),
	}
	if given["url"] {
		// пустая строка очищает ссылку
		link, err := checkURL(f.url)
		if err != nil {
			return err
		}
		in.URL = &link
	}
	switch {
	case f.file != "":
		if err := attach(ctx, s.client, f.file, &in); err != nil {
			return s.localize(err)
		}
	case *clearFile:
		empty := ""
		in.FileURL = &empty
		in.OriginalFileName = &empty
		in.Type = srvmodel.MemoryTypeText
	}

	if _, err := s.client.UpdateMemory(ctx, in); err != nil {
		return s.localize(err)
	}
	s.view.Message("memory.updated")
	return nil
}

type memoryDeleteCmd struct{}

func (memoryDeleteCmd) Name() string        { return "memory-delete" }
func (memoryDeleteCmd) Description() string { return "Delete a memory (asks for confirmation)" }
func (memoryDeleteCmd) Usage() string       { return "memory-delete [--yes] <id>" }

func (memoryDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("memory-delete")
	yes := fs.Bool("yes", false, "skip confirmation")
	if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
		return ErrUsage
	}
	id := fs.Arg(0)

	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	if !*yes {
		m, err := findMemory(ctx, s.client, id)
		if err != nil {
			return s.localize(err)
		}
		fmt.Fprintf(Out, "%s\n%s [y/N]: ", s.prefs.T("memory.deleteConfirm"), i18n.Tf(s.prefs.Language(), "memory.deleteMessage", "title", m.Title))
		if !confirmed(In) {
			s.view.Message("memory.cancel")
			return nil
		}
	}

	page := newMemoryPage(s.client, search.Options{IncludeCategory: true})
	if err := page.Delete(ctx, id); err != nil {
		return s.localize(err)
	}
	s.view.Message("memory.deleted")
	return nil
}

type favoriteCmd struct{}

func (favoriteCmd) Name() string        { return "favorite" }
func (favoriteCmd) Description() string { return "Add or remove a memory from favorites" }
func (favoriteCmd) Usage() string       { return "favorite <id> on|off" }

func (favoriteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	var on bool
	switch strings.ToLower(args[1]) {
	case "on":
		on = true
	case "off":
	default:
		return ErrUsage
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	page := newMemoryPage(s.client, search.Options{IncludeCategory: true})
	m, err := page.SetFavorite(ctx, args[0], on)
	if err != nil {
		return s.localize(err)
	}
	if m.IsFavorite {
		s.view.Message("memory.favorited")
	} else {
		s.view.Message("memory.unfavorited")
	}
	return nil
}

func init() {
	RegisterCmd(memoryCmd{})
	RegisterCmd(memoryNewCmd{})
	RegisterCmd(memoryEditCmd{})
	RegisterCmd(memoryDeleteCmd{})
	RegisterCmd(favoriteCmd{})
}
