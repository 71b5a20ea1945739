package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shouni/gemini-image-studio/pkg/domain"
	"github.com/shouni/gemini-image-studio/pkg/imgutil"
)

// transformFlags は書き出し時の変換フラグです。
type transformFlags struct {
	rotate     int
	brightness int
	contrast   int
	sepia      bool
	grayscale  bool
}

func (f *transformFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.rotate, "rotate", 0, "時計回りの回転角度（90 の倍数）")
	cmd.Flags().IntVar(&f.brightness, "brightness", 100, "明るさ (50-150)")
	cmd.Flags().IntVar(&f.contrast, "contrast", 100, "コントラスト (50-150)")
	cmd.Flags().BoolVar(&f.sepia, "sepia", false, "セピアを適用")
	cmd.Flags().BoolVar(&f.grayscale, "grayscale", false, "モノクロを適用")
}

func (f transformFlags) transform() imgutil.Transform {
	t := imgutil.Identity().WithBrightness(f.brightness).WithContrast(f.contrast)
	t.Rotation = f.rotate
	if f.sepia {
		t = t.ToggleSepia()
	}
	if f.grayscale {
		t = t.ToggleGrayscale()
	}
	return t.Normalize()
}

// resolveImageArg は URL ならそのまま参照に、それ以外はローカルファイルとして読み込みます。
func resolveImageArg(arg string) (*domain.ImageReference, error) {
	if arg == "" {
		return nil, nil
	}

	switch {
	case strings.HasPrefix(arg, "data:"):
		data, mimeType, err := imgutil.ParseDataURL(arg)
		if err != nil {
			return nil, err
		}
		ref := imgutil.NewReference(data, mimeType)
		return &ref, nil
	case strings.HasPrefix(arg, "http://"), strings.HasPrefix(arg, "https://"), strings.HasPrefix(arg, "gs://"):
		return &domain.ImageReference{URL: arg}, nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, err
	}
	ref := imgutil.NewReference(data, "")
	return &ref, nil
}
