package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	DatabaseDSN  string `env:"DATABASE_URI"`
	AuthSecret   string `env:"AUTH_SECRET"`
	UploadDir    string `env:"UPLOAD_DIR"`
	UploadMaxMB  int    `env:"UPLOAD_MAX_MB"`
	CORSOrigins  string `env:"CORS_ORIGINS"` // список через запятую
	CookieSecure bool   `env:"COOKIE_SECURE"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL    string `env:"-"`
	SettingsFile string `env:"CLIENT_SETTINGS_FILE"`
	Version      bool   `env:"-"` // show client version and exit (flag only)
}

const (
	defaultBaseURL     = "localhost:8081"
	defaultDatabaseDSN = "file:memoryapp.db?_pragma=foreign_keys(1)"
	defaultUploadDir   = "uploads"
	defaultUploadMaxMB = 10
	defaultCORSOrigins = "http://localhost:3000"
)

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres DSN или sqlite file:)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.StringVar(&cfg.UploadDir, "upload-dir", cfg.UploadDir, "каталог для загруженных файлов")
	flag.IntVar(&cfg.UploadMaxMB, "upload-max-mb", cfg.UploadMaxMB, "максимальный размер загружаемого файла, МБ")
	flag.StringVar(&cfg.CORSOrigins, "cors-origins", cfg.CORSOrigins, "разрешённые Origin через запятую")
	flag.BoolVar(&cfg.CookieSecure, "cookie-secure", cfg.CookieSecure, "ставить флаг Secure на auth cookie")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "base URL of the MemoryApp server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.SettingsFile, "settings-file", cfg.SettingsFile, "path to client settings file (theme, language)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = defaultDatabaseDSN
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = defaultUploadDir
	}
	if cfg.UploadMaxMB <= 0 {
		cfg.UploadMaxMB = defaultUploadMaxMB
	}
	if strings.TrimSpace(cfg.CORSOrigins) == "" {
		cfg.CORSOrigins = defaultCORSOrigins
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = defaultBaseURL
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	if cfg.SettingsFile == "" {
		dir, _ := os.UserConfigDir()
		cfg.SettingsFile = filepath.Join(dir, "MemoryApp", "settings.yaml")
	}
}

// AllowedOrigins разбирает CORSOrigins в список, отбрасывая пустые значения и завершающий "/".
func (cfg *Config) AllowedOrigins() []string {
	var origins []string
	for _, p := range strings.Split(cfg.CORSOrigins, ",") {
		if o := strings.TrimRight(strings.TrimSpace(p), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// UploadMaxBytes — лимит размера одного файла в байтах.
func (cfg *Config) UploadMaxBytes() int64 {
	return int64(cfg.UploadMaxMB) * 1024 * 1024
}
