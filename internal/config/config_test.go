package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"GEMINI_API_KEY", "GOOGLE_API_KEY",
	"IMAGE_STUDIO_CREATE_MODEL", "IMAGE_STUDIO_EDIT_MODEL",
	"IMAGE_STUDIO_HTTP_TIMEOUT", "IMAGE_STUDIO_CACHE_TTL", "IMAGE_STUDIO_SESSION_TTL",
	"IMAGE_STUDIO_EXPORT_QUALITY", "IMAGE_STUDIO_COMPRESS_INPUTS",
	"IMAGE_STUDIO_LISTEN_ADDR", "IMAGE_STUDIO_DEV_MODE",
	"IMAGE_STUDIO_GCS_ENABLED", "LOG_LEVEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
	// .env を拾わないように空のディレクトリで実行する
	t.Chdir(t.TempDir())
}

func TestLoad(t *testing.T) {
	t.Run("既定値", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, "imagen-4.0-generate-001", cfg.CreateModel)
		assert.Equal(t, "gemini-2.5-flash-image", cfg.EditModel)
		assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
		assert.Equal(t, time.Hour, cfg.SessionTTL)
		assert.Equal(t, 92, cfg.ExportQuality)
		assert.True(t, cfg.CompressInputs)
		assert.Equal(t, ":8080", cfg.ListenAddr)
		assert.False(t, cfg.DevMode)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Empty(t, cfg.ResolvedAPIKey())
	})

	t.Run("環境変数で上書き", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("IMAGE_STUDIO_HTTP_TIMEOUT", "5s")
		t.Setenv("IMAGE_STUDIO_EXPORT_QUALITY", "80")
		t.Setenv("IMAGE_STUDIO_DEV_MODE", "true")
		t.Setenv("IMAGE_STUDIO_COMPRESS_INPUTS", "false")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, 80, cfg.ExportQuality)
		assert.True(t, cfg.DevMode)
		assert.False(t, cfg.CompressInputs)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("不正な品質", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("IMAGE_STUDIO_EXPORT_QUALITY", "101")

		_, err := Load("")
		assert.ErrorContains(t, err, "IMAGE_STUDIO_EXPORT_QUALITY")
	})

	t.Run("負のセッション有効期限", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("IMAGE_STUDIO_SESSION_TTL", "-1s")

		_, err := Load("")
		assert.ErrorContains(t, err, "IMAGE_STUDIO_SESSION_TTL")
	})

	t.Run("解析できない値", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("IMAGE_STUDIO_CACHE_TTL", "soon")

		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("envファイルの読み込み", func(t *testing.T) {
		clearEnv(t)
		t.Cleanup(func() { _ = os.Unsetenv("IMAGE_STUDIO_GCS_ENABLED") })
		// t.Setenv で空文字が設定済みだと godotenv は上書きしないため外しておく
		require.NoError(t, os.Unsetenv("IMAGE_STUDIO_GCS_ENABLED"))

		path := filepath.Join(t.TempDir(), "studio.env")
		require.NoError(t, os.WriteFile(path, []byte("IMAGE_STUDIO_GCS_ENABLED=true\n"), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.True(t, cfg.GCSEnabled)
	})

	t.Run("指定したenvファイルが存在しない", func(t *testing.T) {
		clearEnv(t)

		_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		assert.Error(t, err)
	})
}

func TestResolvedAPIKey(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		expect string
	}{
		{"GEMINI_API_KEY 優先", Config{APIKey: "gemini", GoogleAPIKey: "google"}, "gemini"},
		{"GOOGLE_API_KEY にフォールバック", Config{APIKey: " ", GoogleAPIKey: "google"}, "google"},
		{"未設定", Config{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.cfg.ResolvedAPIKey())
		})
	}
}
