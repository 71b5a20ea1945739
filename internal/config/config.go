// Package config は環境変数と .env ファイルから実行時設定を読み込みます。
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// Config は CLI とサーバー共通の設定です。
type Config struct {
	// APIKey は GEMINI_API_KEY。未設定なら GOOGLE_API_KEY を使います。
	APIKey       string `env:"GEMINI_API_KEY"`
	GoogleAPIKey string `env:"GOOGLE_API_KEY"`

	CreateModel string `env:"IMAGE_STUDIO_CREATE_MODEL" envDefault:"imagen-4.0-generate-001"`
	EditModel   string `env:"IMAGE_STUDIO_EDIT_MODEL" envDefault:"gemini-2.5-flash-image"`

	HTTPTimeout    time.Duration `env:"IMAGE_STUDIO_HTTP_TIMEOUT" envDefault:"30s"`
	CacheTTL       time.Duration `env:"IMAGE_STUDIO_CACHE_TTL" envDefault:"10m"`
	SessionTTL     time.Duration `env:"IMAGE_STUDIO_SESSION_TTL" envDefault:"1h"`
	ExportQuality  int           `env:"IMAGE_STUDIO_EXPORT_QUALITY" envDefault:"92"`
	CompressInputs bool          `env:"IMAGE_STUDIO_COMPRESS_INPUTS" envDefault:"true"`

	ListenAddr string `env:"IMAGE_STUDIO_LISTEN_ADDR" envDefault:":8080"`
	DevMode    bool   `env:"IMAGE_STUDIO_DEV_MODE"`
	GCSEnabled bool   `env:"IMAGE_STUDIO_GCS_ENABLED"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load は envFile（空なら存在する場合のみ .env）を読み込んでから環境変数を解析します。
// .env の値は既存の環境変数を上書きしません。
func Load(envFile string) (*Config, error) {
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("環境変数の解析に失敗しました: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadEnvFile(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load env file %q: %w", path, err)
		}
		return nil
	}

	if _, err := os.Stat(defaultEnvFile); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(defaultEnvFile); err != nil {
		return fmt.Errorf("load env file %q: %w", defaultEnvFile, err)
	}
	return nil
}

// Validate は値の範囲を検証します。
func (c *Config) Validate() error {
	if c.ExportQuality < 1 || c.ExportQuality > 100 {
		return fmt.Errorf("IMAGE_STUDIO_EXPORT_QUALITY must be between 1 and 100: %d", c.ExportQuality)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("IMAGE_STUDIO_HTTP_TIMEOUT must be positive: %s", c.HTTPTimeout)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("IMAGE_STUDIO_CACHE_TTL must not be negative: %s", c.CacheTTL)
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("IMAGE_STUDIO_SESSION_TTL must not be negative: %s", c.SessionTTL)
	}
	return nil
}

// ResolvedAPIKey は実際に使う API キーを返します。
func (c *Config) ResolvedAPIKey() string {
	if key := strings.TrimSpace(c.APIKey); key != "" {
		return key
	}
	return strings.TrimSpace(c.GoogleAPIKey)
}
