package generator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/gemini-image-studio/pkg/domain"
	"github.com/shouni/gemini-image-studio/pkg/prompt"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"
)

const tracerName = "github.com/shouni/gemini-image-studio/pkg/generator"

// GeminiGenerator は作成モード（Imagen）と編集モード（Gemini）の両方を担当する統合ジェネレーターです。
type GeminiGenerator struct {
	imgCore     ImagePreparer
	aiClient    ContentGenerator
	imagen      ImagenModel
	createModel string
	editModel   string
	tracer      trace.Tracer
}

// NewGeminiGenerator は GeminiGenerator を初期化するのだ。
// モデル名が空の場合は既定のモデルを使うのだ。
func NewGeminiGenerator(
	core ImagePreparer,
	aiClient ContentGenerator,
	imagen ImagenModel,
	createModel, editModel string,
) (*GeminiGenerator, error) {
	if core == nil {
		return nil, fmt.Errorf("core (ImagePreparer) is required")
	}
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient (ContentGenerator) is required")
	}
	if imagen == nil {
		return nil, fmt.Errorf("imagen (ImagenModel) is required")
	}
	if createModel == "" {
		createModel = DefaultCreateModel
	}
	if editModel == "" {
		editModel = DefaultEditModel
	}

	return &GeminiGenerator{
		imgCore:     core,
		aiClient:    aiClient,
		imagen:      imagen,
		createModel: createModel,
		editModel:   editModel,
		tracer:      otel.Tracer(tracerName),
	}, nil
}

// Generate はリクエストのモードに応じて画像を生成・編集するのだ。
func (g *GeminiGenerator) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.ImageResponse, error) {
	ctx, span := g.tracer.Start(ctx, "generator.Generate", trace.WithAttributes(
		attribute.String("studio.mode", string(req.Mode)),
		attribute.String("studio.aspect_ratio", string(req.AspectRatio)),
	))
	defer span.End()

	var (
		out *ImageOutput
		err error
	)
	if req.Mode == domain.ModeEdit {
		out, err = g.edit(ctx, req)
	} else {
		out, err = g.create(ctx, req)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return &domain.ImageResponse{
		Data:     out.Data,
		MimeType: out.MimeType,
		UsedSeed: out.UsedSeed,
	}, nil
}

func (g *GeminiGenerator) create(ctx context.Context, req domain.GenerationRequest) (*ImageOutput, error) {
	finalPrompt := prompt.CreatePrompt(req.Prompt, req.CreateFunction, req.Style)
	if strings.TrimSpace(finalPrompt) == "" {
		return nil, domain.NewGenerationError("invalid request", domain.ErrEmptyPrompt)
	}

	cfg := &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    string(req.AspectRatio),
		OutputMIMEType: createOutputMIMEType,
		Seed:           seedToPtrInt32(req.Seed),
	}

	slog.InfoContext(ctx, "Imagen画像生成リクエストを送信します", "model", g.createModel, "aspect_ratio", req.AspectRatio)
	resp, err := g.imagen.GenerateImages(ctx, g.createModel, finalPrompt, cfg)
	if err != nil {
		return nil, domain.NewGenerationError("Imagen画像生成エラー", err)
	}

	out, err := parseImagenResponse(resp, dereferenceSeed(req.Seed))
	if err != nil {
		return nil, domain.NewGenerationError("invalid response", err)
	}
	return out, nil
}

func (g *GeminiGenerator) edit(ctx context.Context, req domain.GenerationRequest) (*ImageOutput, error) {
	if req.Image1 == nil {
		return nil, domain.NewGenerationError("invalid request", domain.ErrMissingBaseImage)
	}

	base, err := g.imgCore.PrepareImagePart(ctx, *req.Image1)
	if err != nil {
		return nil, domain.NewGenerationError("base image", err)
	}
	parts := []*genai.Part{base}

	if req.EditFunction.RequiresTwoImages() && req.Image2 != nil {
		second, err := g.imgCore.PrepareImagePart(ctx, *req.Image2)
		if err != nil {
			return nil, domain.NewGenerationError("second image", err)
		}
		parts = append(parts, second)
	}

	if req.Prompt != "" {
		parts = append(parts, &genai.Part{Text: req.Prompt})
	}

	slog.InfoContext(ctx, "Gemini画像編集リクエストを送信します",
		"model", g.editModel, "function", req.EditFunction, "total_parts", len(parts))

	resp, err := g.aiClient.GenerateWithParts(ctx, g.editModel, parts, gemini.GenerateOptions{Seed: req.Seed})
	if err != nil {
		return nil, domain.NewGenerationError("Gemini画像編集エラー", err)
	}

	out, err := parseToResponse(resp, dereferenceSeed(req.Seed))
	if err != nil {
		return nil, domain.NewGenerationError("invalid response", err)
	}
	return out, nil
}
