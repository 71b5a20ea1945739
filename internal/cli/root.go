// Package cli は imagestudio のコマンドラインインターフェースを定義します。
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shouni/gemini-image-studio/internal/config"
	"github.com/shouni/gemini-image-studio/internal/logging"
)

// Options はサブコマンド間で共有するグローバルオプションです。
type Options struct {
	EnvFile  string
	LogLevel logging.Level
	Config   *config.Config
}

// Execute はルートコマンドを組み立てて実行します。
func Execute(args []string, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewLogger(os.Stderr, logging.LevelInfo)
	}

	rootCmd := newRootCommand(&Options{LogLevel: logging.LevelInfo}, logger)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func newRootCommand(opts *Options, logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "imagestudio",
		Short:         "Gemini / Imagen による画像生成・編集スタジオ",
		Long:          "imagestudio は Gemini と Imagen を使って画像を生成・編集し、回転や色調フィルターを適用して書き出すツールです。",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.EnvFile)
			if err != nil {
				return err
			}
			opts.Config = cfg

			levelValue := cfg.LogLevel
			if f := cmd.Flag("log-level"); f != nil && f.Changed {
				levelValue = f.Value.String()
			}
			opts.LogLevel = logging.ParseLevel(levelValue)
			logger = logging.Setup(cmd.ErrOrStderr(), opts.LogLevel)
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
			logger.Debug("logger initialized", "level", opts.LogLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", "", "読み込む .env ファイル（省略時はカレントの .env があれば読み込む）")
	cmd.PersistentFlags().String("log-level", "info", "ログレベル (debug, info, warn, error)")

	cmd.AddCommand(
		newGenerateCommand(opts),
		newExportCommand(opts),
		newPromptCommand(),
		newServeCommand(opts),
	)
	return cmd
}

type loggerKey struct{}

// LoggerFromContext はコマンドのコンテキストからロガーを取り出します。
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return slog.Default()
}
