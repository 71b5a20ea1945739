package cli

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/gcsfactory"
	"github.com/shouni/go-remote-io/pkg/remoteio"

	"github.com/shouni/gemini-image-studio/internal/config"
	"github.com/shouni/gemini-image-studio/pkg/auth"
	"github.com/shouni/gemini-image-studio/pkg/domain"
	"github.com/shouni/gemini-image-studio/pkg/generator"
	"github.com/shouni/gemini-image-studio/pkg/studio"
)

const devLoginDelay = time.Second

// deps はコマンドが共有する外部依存の組み立て結果です。
type deps struct {
	generator generator.ImageGenerator
	loader    studio.ReferenceLoader
	gate      auth.CredentialGate
	quality   int
	closers   []func() error
}

func buildDeps(ctx context.Context, cfg *config.Config) (*deps, error) {
	d := &deps{quality: cfg.ExportQuality}

	var reader remoteio.InputReader
	if cfg.GCSEnabled {
		factory, err := gcsfactory.New(ctx)
		if err != nil {
			return nil, err
		}
		d.closers = append(d.closers, factory.Close)
		reader, err = factory.InputReader()
		if err != nil {
			return nil, errors.Join(err, d.Close())
		}
	}

	var httpClient httpkit.ClientInterface = httpkit.New(cfg.HTTPTimeout)
	imageCache := cache.New(cfg.CacheTTL, 2*cfg.CacheTTL)

	core, err := generator.NewGeminiImageCore(reader, httpClient, imageCache, cfg.CacheTTL)
	if err != nil {
		return nil, errors.Join(err, d.Close())
	}
	core.SetCompression(cfg.CompressInputs)
	d.loader = core

	apiKey := cfg.ResolvedAPIKey()
	if cfg.DevMode {
		d.gate = auth.NewDevGate(devLoginDelay)
	} else {
		d.gate = auth.NewAPIKeyGate(apiKey)
	}

	if apiKey == "" {
		slog.WarnContext(ctx, "GEMINI_API_KEY が未設定のため画像生成は利用できません")
		d.generator = unavailableGenerator{}
		return d, nil
	}

	client, err := generator.NewGenAIClient(ctx, apiKey)
	if err != nil {
		return nil, errors.Join(err, d.Close())
	}
	gen, err := generator.NewGeminiGenerator(core, client, client.Imagen(), cfg.CreateModel, cfg.EditModel)
	if err != nil {
		return nil, errors.Join(err, d.Close())
	}
	d.generator = gen
	return d, nil
}

// newSession は deps を使うセッションを作成します。
func (d *deps) newSession() (*studio.Session, error) {
	return studio.NewSession(d.generator,
		studio.WithGate(d.gate),
		studio.WithLoader(d.loader),
		studio.WithExportQuality(d.quality),
	)
}

func (d *deps) Close() error {
	var errs []error
	for _, c := range d.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

type unavailableGenerator struct{}

func (unavailableGenerator) Generate(context.Context, domain.GenerationRequest) (*domain.ImageResponse, error) {
	return nil, domain.NewGenerationError("GEMINI_API_KEY is not set", domain.ErrNotAuthenticated)
}
