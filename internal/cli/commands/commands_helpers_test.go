package commands

import (
	"bytes"
	"path/filepath"
	"runtime"
	"testing"

	fsrepo "MemoryApp/internal/cli/repo/fs"
	"MemoryApp/internal/config"
)

// withTempConfig переопределяет пользовательские каталоги на время теста,
// чтобы артефакты (токен/логин/настройки) создавались в temp.
func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	t.Setenv("NO_COLOR", "1")
	return dir
}

func testConfig(dir, serverURL string) *config.Config {
	return &config.Config{ServerURL: serverURL, SettingsFile: filepath.Join(dir, "settings.yaml")}
}

// signIn кладёт токен, который принимает fakeAPI.
func signIn(t *testing.T) {
	t.Helper()
	if err := (fsrepo.AuthFSStore{}).Save(fakeToken); err != nil {
		t.Fatalf("save token: %v", err)
	}
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}
