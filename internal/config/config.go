package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	DatabaseDSN string `env:"DATABASE_URI"`
	AuthSecret  string `env:"AUTH_SECRET"`

	AccessTokenTTLMin  int `env:"ACCESS_TOKEN_TTL_MIN" envDefault:"60"`
	RefreshTokenTTLHrs int `env:"REFRESH_TOKEN_TTL_HRS" envDefault:"720"`

	// Кэш списков. Пустой адрес — кэш выключен, слой работает насквозь.
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"`

	// Хранилище бинарных ассетов (2D/3D файлы продуктов).
	// Если S3Bucket пуст, используется локальный каталог UploadDir.
	S3Bucket     string `env:"S3_BUCKET"`
	S3Region     string `env:"S3_REGION" envDefault:"ap-southeast-2"`
	UploadDir    string `env:"UPLOAD_DIR"`
	AssetBaseURL string `env:"ASSET_BASE_URL"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL    string `env:"-"`
	ClientDBPath string `env:"CLIENT_DB_PATH"`
	TokenFile    string `env:"TOKEN_FILE"`
	Version      bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "адрес Redis для кэша списков (пусто — без кэша)")
	flag.StringVar(&cfg.S3Bucket, "s3-bucket", cfg.S3Bucket, "S3 bucket для ассетов продуктов")
	flag.StringVar(&cfg.UploadDir, "upload-dir", cfg.UploadDir, "локальный каталог ассетов (если без S3)")
	flag.StringVar(&cfg.AssetBaseURL, "asset-base-url", cfg.AssetBaseURL, "базовый URL раздачи локальных ассетов")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "base URL of the SiteModels server (may be host:port or full URL)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.ClientDBPath, "client-db", cfg.ClientDBPath, "path to client cache DB")
	flag.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "path to auth token file (client)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	// Defaults
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:5000"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if cfg.AssetBaseURL == "" {
		cfg.AssetBaseURL = cfg.ServerURL + "/assets"
	}

	// Fill client defaults if empty
	home, _ := os.UserHomeDir()
	if cfg.ClientDBPath == "" {
		cfg.ClientDBPath = filepath.Join(home, "smcli.db")
	}
	if cfg.TokenFile == "" {
		cfg.TokenFile = filepath.Join(home, ".sm_token")
	}

	return cfg
}
