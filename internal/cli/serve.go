package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shouni/gemini-image-studio/internal/server"
	"github.com/shouni/gemini-image-studio/pkg/prompt"
	"github.com/shouni/gemini-image-studio/pkg/studio"
)

func newServeCommand(opts *Options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "JSON HTTP API を起動します",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			logger := LoggerFromContext(ctx)

			d, err := buildDeps(ctx, opts.Config)
			if err != nil {
				return err
			}
			defer func() { _ = d.Close() }()

			store := studio.NewStore(d.newSession, opts.Config.SessionTTL)
			srv, err := server.New(store, d.gate, prompt.NewEnhancer(nil), logger)
			if err != nil {
				return err
			}

			if addr == "" {
				addr = opts.Config.ListenAddr
			}
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "待ち受けアドレス（省略時は IMAGE_STUDIO_LISTEN_ADDR）")
	return cmd
}
