package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"MemoryApp/internal/config"
)

var errCategoryForm = errors.New("name, icon and a hex color (#RRGGBB) are required")

type categoriesCmd struct{}

func (categoriesCmd) Name() string        { return "categories" }
func (categoriesCmd) Description() string { return "List categories with memory counts" }
func (categoriesCmd) Usage() string       { return "categories" }

func (categoriesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	s.view.Loading()
	list, err := s.client.Categories(ctx)
	if err != nil {
		return s.localize(err)
	}
	s.view.Header("nav.categories", "")
	s.view.CategoryList(list)
	return nil
}

type categoryNewCmd struct{}

func (categoryNewCmd) Name() string        { return "category-new" }
func (categoryNewCmd) Description() string { return "Create a category" }
func (categoryNewCmd) Usage() string {
	return "category-new --name <n> --icon <emoji> --color <#RRGGBB>"
}

func (categoryNewCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("category-new")
	name := fs.String("name", "", "category name")
	icon := fs.String("icon", "", "category icon")
	color := fs.String("color", "", "category color")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}
	n, i, c := strings.TrimSpace(*name), strings.TrimSpace(*icon), strings.TrimSpace(*color)
	if n == "" || i == "" || validate.Var(c, "required,hexcolor") != nil {
		return errCategoryForm
	}

	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	created, err := s.client.CreateCategory(ctx, n, i, c)
	if err != nil {
		return s.localize(err)
	}
	s.view.Message("categories.created")
	fmt.Fprintf(Out, "id: %s\n", created.ID)
	return nil
}

func init() {
	RegisterCmd(categoriesCmd{})
	RegisterCmd(categoryNewCmd{})
}
