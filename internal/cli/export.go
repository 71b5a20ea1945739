package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shouni/gemini-image-studio/pkg/domain"
	"github.com/shouni/gemini-image-studio/pkg/imgutil"
)

func newExportCommand(opts *Options) *cobra.Command {
	var (
		tf      transformFlags
		output  string
		quality int
	)

	cmd := &cobra.Command{
		Use:   "export INPUT",
		Short: "ローカル画像に回転と色調フィルターを適用して JPEG で書き出します",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := LoggerFromContext(cmd.Context())
			input := args[0]

			src, err := os.ReadFile(input)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("quality") {
				quality = opts.Config.ExportQuality
			}
			if output == "" {
				output = defaultExportPath(input)
			}

			data, err := imgutil.RenderExport(src, tf.transform(), quality)
			if errors.Is(err, domain.ErrRenderUnavailable) {
				logger.Warn("描画できないため元画像をそのまま書き出します", "input", input, "error", err)
				data = src
			} else if err != nil {
				return err
			}

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("画像の保存に失敗しました: %w", err)
			}
			logger.Info("画像を書き出しました", "path", output, "bytes", len(data))
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	tf.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "出力ファイル（省略時は <入力名>-edited.jpg）")
	cmd.Flags().IntVar(&quality, "quality", imgutil.DefaultExportQuality, "JPEG 品質 (1-100)")
	return cmd
}

func defaultExportPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "-edited.jpg"
}
