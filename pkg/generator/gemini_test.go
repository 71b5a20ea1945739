package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/shouni/gemini-image-studio/pkg/domain"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func newTestGenerator(t *testing.T) (*GeminiGenerator, *mockPreparer, *mockAIClient, *mockImagen) {
	t.Helper()
	prep := &mockPreparer{}
	ai := &mockAIClient{}
	imagen := &mockImagen{}
	gen, err := NewGeminiGenerator(prep, ai, imagen, "", "")
	require.NoError(t, err)
	return gen, prep, ai, imagen
}

func TestNewGeminiGenerator(t *testing.T) {
	t.Run("依存関係の検証", func(t *testing.T) {
		_, err := NewGeminiGenerator(nil, &mockAIClient{}, &mockImagen{}, "", "")
		assert.Error(t, err)
		_, err = NewGeminiGenerator(&mockPreparer{}, nil, &mockImagen{}, "", "")
		assert.Error(t, err)
		_, err = NewGeminiGenerator(&mockPreparer{}, &mockAIClient{}, nil, "", "")
		assert.Error(t, err)
	})

	t.Run("既定モデル", func(t *testing.T) {
		gen, _, _, _ := newTestGenerator(t)
		assert.Equal(t, DefaultCreateModel, gen.createModel)
		assert.Equal(t, DefaultEditModel, gen.editModel)
	})
}

func TestGeminiGenerator_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("スタイル付きプロンプトでImagenを呼ぶ", func(t *testing.T) {
		gen, _, ai, imagen := newTestGenerator(t)
		seed := int64(11)

		resp, err := gen.Generate(ctx, domain.GenerationRequest{
			Prompt:         "a cat",
			Mode:           domain.ModeCreate,
			CreateFunction: domain.CreateStyle,
			Style:          domain.StyleCartoon,
			AspectRatio:    domain.AspectLandscape,
			Seed:           &seed,
		})
		require.NoError(t, err)

		assert.Equal(t, []byte("created"), resp.Data)
		assert.Equal(t, "image/jpeg", resp.MimeType)
		assert.Equal(t, int64(11), resp.UsedSeed)
		assert.Equal(t, 0, ai.calls)
		assert.Equal(t, "Uma imagem no estilo de desenho animado: a cat", imagen.lastPrompt)
		assert.Equal(t, "16:9", imagen.lastConfig.AspectRatio)
		require.NotNil(t, imagen.lastConfig.Seed)
		assert.Equal(t, int32(11), *imagen.lastConfig.Seed)
	})

	t.Run("空プロンプトは送信しない", func(t *testing.T) {
		gen, _, _, imagen := newTestGenerator(t)

		_, err := gen.Generate(ctx, domain.GenerationRequest{Prompt: "   ", Mode: domain.ModeCreate})
		assert.ErrorIs(t, err, domain.ErrEmptyPrompt)
		assert.Equal(t, 0, imagen.calls)
	})

	t.Run("API失敗はGenerationError", func(t *testing.T) {
		gen, _, _, imagen := newTestGenerator(t)
		apiErr := errors.New("quota exceeded")
		imagen.generateImagesFunc = func(context.Context, string, string, *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error) {
			return nil, apiErr
		}

		_, err := gen.Generate(ctx, domain.GenerationRequest{Prompt: "x", Mode: domain.ModeCreate})
		var genErr *domain.GenerationError
		require.ErrorAs(t, err, &genErr)
		assert.ErrorIs(t, err, apiErr)
	})

	t.Run("画像なしレスポンス", func(t *testing.T) {
		gen, _, _, imagen := newTestGenerator(t)
		imagen.generateImagesFunc = func(context.Context, string, string, *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error) {
			return &genai.GenerateImagesResponse{}, nil
		}

		_, err := gen.Generate(ctx, domain.GenerationRequest{Prompt: "x", Mode: domain.ModeCreate})
		var genErr *domain.GenerationError
		assert.ErrorAs(t, err, &genErr)
	})
}

func TestGeminiGenerator_Edit(t *testing.T) {
	ctx := context.Background()
	img1 := &domain.ImageReference{URL: "one"}
	img2 := &domain.ImageReference{URL: "two"}

	t.Run("ベース画像とプロンプトを送信", func(t *testing.T) {
		gen, prep, ai, imagen := newTestGenerator(t)

		resp, err := gen.Generate(ctx, domain.GenerationRequest{
			Prompt:       "remove the hat",
			Mode:         domain.ModeEdit,
			EditFunction: domain.EditAddRemove,
			Image1:       img1,
			Image2:       img2,
		})
		require.NoError(t, err)

		assert.Equal(t, []byte("edited"), resp.Data)
		assert.Equal(t, 0, imagen.calls)
		require.Len(t, ai.lastParts, 2)
		assert.Equal(t, "remove the hat", ai.lastParts[1].Text)
		assert.Len(t, prep.refs, 1, "合成以外では2枚目を送らない")
	})

	t.Run("合成は2枚の画像を送信", func(t *testing.T) {
		gen, prep, ai, _ := newTestGenerator(t)

		_, err := gen.Generate(ctx, domain.GenerationRequest{
			Prompt:       "put them together",
			Mode:         domain.ModeEdit,
			EditFunction: domain.EditCompose,
			Image1:       img1,
			Image2:       img2,
		})
		require.NoError(t, err)
		require.Len(t, ai.lastParts, 3)
		assert.Equal(t, []byte("one"), ai.lastParts[0].InlineData.Data)
		assert.Equal(t, []byte("two"), ai.lastParts[1].InlineData.Data)
		assert.Len(t, prep.refs, 2)
	})

	t.Run("プロンプトなしでも画像のみ送信", func(t *testing.T) {
		gen, _, ai, _ := newTestGenerator(t)

		_, err := gen.Generate(ctx, domain.GenerationRequest{Mode: domain.ModeEdit, EditFunction: domain.EditRetouch, Image1: img1})
		require.NoError(t, err)
		assert.Len(t, ai.lastParts, 1)
	})

	t.Run("シードを引き継ぐ", func(t *testing.T) {
		gen, _, ai, _ := newTestGenerator(t)
		seed := int64(5)

		resp, err := gen.Generate(ctx, domain.GenerationRequest{Mode: domain.ModeEdit, Image1: img1, Seed: &seed})
		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.UsedSeed)
		assert.Equal(t, &seed, ai.lastOpts.Seed)
	})

	t.Run("ベース画像なし", func(t *testing.T) {
		gen, _, ai, _ := newTestGenerator(t)

		_, err := gen.Generate(ctx, domain.GenerationRequest{Prompt: "x", Mode: domain.ModeEdit})
		assert.ErrorIs(t, err, domain.ErrMissingBaseImage)
		assert.Equal(t, 0, ai.calls)
	})

	t.Run("画像準備の失敗", func(t *testing.T) {
		gen, prep, ai, _ := newTestGenerator(t)
		prep.err = errors.New("unreadable")

		_, err := gen.Generate(ctx, domain.GenerationRequest{Mode: domain.ModeEdit, Image1: img1})
		var genErr *domain.GenerationError
		require.ErrorAs(t, err, &genErr)
		assert.Equal(t, 0, ai.calls)
	})

	t.Run("ブロックされた応答", func(t *testing.T) {
		gen, _, ai, _ := newTestGenerator(t)
		ai.generateWithPartsFunc = func(context.Context, string, []*genai.Part, gemini.GenerateOptions) (*gemini.Response, error) {
			return &gemini.Response{RawResponse: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}},
			}}, nil
		}

		_, err := gen.Generate(ctx, domain.GenerationRequest{Mode: domain.ModeEdit, Image1: img1})
		var genErr *domain.GenerationError
		assert.ErrorAs(t, err, &genErr)
	})
}
