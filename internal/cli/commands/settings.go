package commands

import (
	"context"

	"MemoryApp/internal/config"
)

type settingsCmd struct{}

func (settingsCmd) Name() string        { return "settings" }
func (settingsCmd) Description() string { return "Show or change theme and language" }
func (settingsCmd) Usage() string       { return "settings [theme light|dark | language en|es]" }

// Run не требует сессии: настройки локальные.
func (settingsCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	prefs := loadSettings(cfg)

	var err error
	switch len(args) {
	case 0:
	case 2:
		switch args[0] {
		case "theme":
			err = prefs.SetTheme(args[1])
		case "language":
			err = prefs.SetLanguage(args[1])
		default:
			return ErrUsage
		}
		if err != nil {
			return err
		}
	default:
		return ErrUsage
	}

	r := newRenderer(prefs)
	if len(args) == 2 {
		r.Message("settings.saved")
	}
	r.Header("settings.title", "settings.description")
	r.Settings(prefs.Theme(), prefs.Language())
	return nil
}

func init() { RegisterCmd(settingsCmd{}) }
