package commands

import (
	"bufio"
	"context"
	"flag"
	"io"
	"os"
	"strings"

	"MemoryApp/internal/cli/api"
	"MemoryApp/internal/cli/model"
	"MemoryApp/internal/cli/repo"
	fsrepo "MemoryApp/internal/cli/repo/fs"
	"MemoryApp/internal/cli/settings"
	"MemoryApp/internal/cli/view"
	"MemoryApp/internal/config"

	"github.com/mattn/go-isatty"
)

// хранилища сессии клиента
var (
	tokens repo.TokenStore       = fsrepo.AuthFSStore{}
	logins repo.UserContextStore = fsrepo.AuthFSStore{}
)

// session — всё, что нужно странице: клиент API, настройки и вывод.
type session struct {
	client *api.Client
	prefs  *settings.Context
	view   *view.Renderer
}

// loadSettings читает настройки клиента; повреждённый файл заменяется значениями
// по умолчанию и перезаписывается при следующем изменении.
func loadSettings(cfg *config.Config) *settings.Context {
	prefs, err := settings.Load(cfg.SettingsFile)
	if err != nil {
		return settings.At(cfg.SettingsFile)
	}
	return prefs
}

// newRenderer выбирает палитру темы; без терминала или с NO_COLOR вывод без цвета.
func newRenderer(prefs *settings.Context) *view.Renderer {
	p := prefs.Apply()
	if os.Getenv("NO_COLOR") != "" || !isTerminal(Out) {
		p = settings.Plain
	}
	return view.New(Out, p, prefs.Language())
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// openSession требует сохранённый токен: без него страница не открывается.
func openSession(cfg *config.Config) (*session, error) {
	prefs := loadSettings(cfg)
	s := &session{prefs: prefs, view: newRenderer(prefs)}

	token, err := tokens.Load()
	if err != nil || token == "" {
		return nil, s.localize(api.ErrUnauthorized)
	}
	s.client = api.NewClient(cfg.ServerURL, token)
	return s, nil
}

// findMemory ищет воспоминание пользователя в полном списке.
func findMemory(ctx context.Context, c *api.Client, id string) (*model.Memory, error) {
	list, err := c.Memories(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, errMemoryNotFound
}

// newFlagSet — набор флагов подкоманды без вывода в stderr.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// setFlags возвращает имена флагов, явно переданных в командной строке.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// confirmed читает ответ y/yes из r.
func confirmed(r io.Reader) bool {
	line, _ := bufio.NewReader(r).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// joinQuery склеивает аргументы в поисковый запрос; пробелы внутри кавычек сохраняются.
func joinQuery(args []string) string {
	return strings.Join(args, " ")
}
