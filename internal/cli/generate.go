package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/shouni/gemini-image-studio/pkg/domain"
	"github.com/shouni/gemini-image-studio/pkg/studio"
)

type generateFlags struct {
	prompt         string
	mode           string
	createFunction string
	editFunction   string
	style          string
	aspectRatio    string
	image1         string
	image2         string
	colorize       bool
	seed           int64
	output         string
	transform      transformFlags
}

func newGenerateCommand(opts *Options) *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "画像を生成または編集してファイルに保存します",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := LoggerFromContext(ctx)

			d, err := buildDeps(ctx, opts.Config)
			if err != nil {
				return err
			}
			defer func() { _ = d.Close() }()

			if !d.gate.IsReady(ctx) {
				if err := d.gate.RequestAccess(ctx); err != nil {
					return err
				}
			}

			sess, err := d.newSession()
			if err != nil {
				return err
			}
			if err := f.apply(cmd, sess); err != nil {
				return err
			}

			ref, err := sess.Generate(ctx)
			if err != nil {
				return err
			}

			data := ref.Source
			t := f.transform.transform()
			if !t.IsIdentity() {
				applyTransform(sess, f.transform)
				res, err := sess.Export(ctx)
				if err != nil {
					return err
				}
				if res.Fallback {
					logger.Warn("変換を適用できなかったため元画像を保存します")
				}
				if len(res.Data) > 0 {
					data = res.Data
				}
			}

			output := f.output
			if output == "" {
				output = fmt.Sprintf("ai-image-%d.jpg", time.Now().UnixMilli())
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("画像の保存に失敗しました: %w", err)
			}
			logger.Info("画像を保存しました", "path", output, "bytes", len(data), "mime_type", ref.MimeType)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&f.prompt, "prompt", "p", "", "プロンプト")
	cmd.Flags().StringVar(&f.mode, "mode", string(domain.ModeCreate), "モード (create, edit)")
	cmd.Flags().StringVar(&f.createFunction, "create-function", string(domain.CreateFree), "作成機能 (free, style)")
	cmd.Flags().StringVar(&f.editFunction, "edit-function", string(domain.EditAddRemove), "編集機能 (add-remove, retouch, style, compose, restore)")
	cmd.Flags().StringVar(&f.style, "style", string(domain.StyleRealistic), "画風")
	cmd.Flags().StringVar(&f.aspectRatio, "aspect-ratio", string(domain.AspectSquare), "アスペクト比 (1:1, 16:9, 9:16, 4:3, 3:4)")
	cmd.Flags().StringVar(&f.image1, "image1", "", "1枚目の入力画像（ファイル、http(s)://、gs://、data URL）")
	cmd.Flags().StringVar(&f.image2, "image2", "", "2枚目の入力画像（compose のみ）")
	cmd.Flags().BoolVar(&f.colorize, "colorize", false, "restore 時にカラー化する")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "シード値（指定時のみ使用）")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "出力ファイル")
	f.transform.register(cmd)

	return cmd
}

// apply はフラグをセッションの設定へ反映します。
func (f *generateFlags) apply(cmd *cobra.Command, sess *studio.Session) error {
	if err := errors.Join(
		sess.SetMode(domain.Mode(f.mode)),
		sess.SetCreateFunction(domain.CreateFunction(f.createFunction)),
		sess.SetEditFunction(domain.EditFunction(f.editFunction)),
		sess.SetStyle(domain.ArtisticStyle(f.style)),
		sess.SetAspectRatio(domain.AspectRatio(f.aspectRatio)),
	); err != nil {
		return err
	}
	sess.SetPrompt(f.prompt)
	sess.SetColorize(f.colorize)
	if cmd.Flags().Changed("seed") {
		sess.SetSeed(&f.seed)
	}

	img1, err := resolveImageArg(f.image1)
	if err != nil {
		return fmt.Errorf("image1: %w", err)
	}
	img2, err := resolveImageArg(f.image2)
	if err != nil {
		return fmt.Errorf("image2: %w", err)
	}
	sess.SetImage1(img1)
	sess.SetImage2(img2)
	return nil
}

func applyTransform(sess *studio.Session, f transformFlags) {
	t := f.transform()
	for i := 0; i < t.Rotation/90; i++ {
		sess.Rotate()
	}
	sess.SetBrightness(t.Brightness)
	sess.SetContrast(t.Contrast)
	if t.Sepia > 0 {
		sess.ToggleSepia()
	}
	if t.Grayscale > 0 {
		sess.ToggleGrayscale()
	}
}
