package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shouni/gemini-image-studio/pkg/domain"
	"github.com/shouni/gemini-image-studio/pkg/prompt"
)

func newPromptCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "プロンプト作成の補助",
	}
	cmd.AddCommand(newPromptEnhanceCommand(), newPromptRestoreCommand(), newPromptTipsCommand())
	return cmd
}

func newPromptEnhanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "enhance IDEA...",
		Short: "アイデアをプロ仕様のプロンプトに膨らませます",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := prompt.NewEnhancer(nil).Enhance(strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), p)
			return err
		},
	}
}

func newPromptRestoreCommand() *cobra.Command {
	var colorize bool
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "写真修復用のプロンプトを表示します",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), prompt.RestorePrompt(colorize))
			return err
		},
	}
	cmd.Flags().BoolVar(&colorize, "colorize", false, "モノクロ写真をカラー化する")
	return cmd
}

func newPromptTipsCommand() *cobra.Command {
	var style string
	cmd := &cobra.Command{
		Use:   "tips",
		Short: "画風ごとのプロンプトのヒントを表示します",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st := domain.ArtisticStyle(style)
			if style != "" && !st.Valid() {
				return fmt.Errorf("unknown style %q", style)
			}
			out := cmd.OutOrStdout()
			if name := domain.StyleName(st); name != "" {
				_, _ = fmt.Fprintf(out, "# %s\n", name)
			}
			for _, tip := range prompt.Tips(st) {
				if _, err := fmt.Fprintf(out, "- %s\n", tip); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&style, "style", "", "画風 (realistic, cartoon, oil_painting, abstract, pixel_art, comic, sticker, logo)")
	return cmd
}
