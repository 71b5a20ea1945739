package generator

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/shouni/gemini-image-studio/pkg/domain"
	"github.com/shouni/gemini-image-studio/pkg/imgutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 30), G: uint8(y * 30), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNewGeminiImageCore(t *testing.T) {
	t.Run("httpClient必須", func(t *testing.T) {
		_, err := NewGeminiImageCore(nil, nil, nil, 0)
		assert.Error(t, err)
	})

	t.Run("reader と cache は省略可", func(t *testing.T) {
		core, err := NewGeminiImageCore(nil, &mockHTTPClient{}, nil, 0)
		require.NoError(t, err)
		assert.True(t, core.compress)
	})
}

func TestGeminiImageCore_Load(t *testing.T) {
	ctx := context.Background()
	data := pngBytes(t)

	t.Run("Source を優先", func(t *testing.T) {
		httpClient := &mockHTTPClient{}
		core, _ := NewGeminiImageCore(nil, httpClient, nil, 0)

		got, err := core.Load(ctx, domain.ImageReference{URL: "https://8.8.8.8/a.png", Source: data})
		require.NoError(t, err)
		assert.Equal(t, data, got)
		assert.Equal(t, 0, httpClient.calls)
	})

	t.Run("data URL をデコード", func(t *testing.T) {
		core, _ := NewGeminiImageCore(nil, &mockHTTPClient{}, nil, 0)

		got, err := core.Load(ctx, domain.ImageReference{URL: imgutil.ToDataURL(data, "image/png")})
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})

	t.Run("HTTP取得結果をキャッシュ", func(t *testing.T) {
		httpClient := &mockHTTPClient{fetchFunc: func(_ context.Context, _ string) ([]byte, error) {
			return data, nil
		}}
		cache := newMockCache()
		core, _ := NewGeminiImageCore(nil, httpClient, cache, 0)
		ref := domain.ImageReference{URL: "https://8.8.8.8/a.png"}

		first, err := core.Load(ctx, ref)
		require.NoError(t, err)
		second, err := core.Load(ctx, ref)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, httpClient.calls)
		assert.Contains(t, cache.data, cacheKeyImageData+ref.URL)
	})

	t.Run("キャッシュの型不正時は再取得", func(t *testing.T) {
		httpClient := &mockHTTPClient{fetchFunc: func(_ context.Context, _ string) ([]byte, error) {
			return data, nil
		}}
		cache := newMockCache()
		cache.data[cacheKeyImageData+"https://8.8.8.8/a.png"] = "broken"
		core, _ := NewGeminiImageCore(nil, httpClient, cache, 0)

		got, err := core.Load(ctx, domain.ImageReference{URL: "https://8.8.8.8/a.png"})
		require.NoError(t, err)
		assert.Equal(t, data, got)
		assert.Equal(t, 1, httpClient.calls)
	})

	t.Run("プライベートアドレスは拒否", func(t *testing.T) {
		httpClient := &mockHTTPClient{}
		core, _ := NewGeminiImageCore(nil, httpClient, nil, 0)

		_, err := core.Load(ctx, domain.ImageReference{URL: "http://10.0.0.1/a.png"})
		assert.Error(t, err)
		assert.Equal(t, 0, httpClient.calls)
	})

	t.Run("gs:// は reader から読む", func(t *testing.T) {
		reader := &mockReader{files: map[string][]byte{"gs://bucket/a.png": data}}
		core, _ := NewGeminiImageCore(reader, &mockHTTPClient{}, nil, 0)

		got, err := core.Load(ctx, domain.ImageReference{URL: "gs://bucket/a.png"})
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})

	t.Run("reader 未設定の gs:// はエラー", func(t *testing.T) {
		core, _ := NewGeminiImageCore(nil, &mockHTTPClient{}, nil, 0)

		_, err := core.Load(ctx, domain.ImageReference{URL: "gs://bucket/a.png"})
		assert.Error(t, err)
	})

	t.Run("空の参照はエラー", func(t *testing.T) {
		core, _ := NewGeminiImageCore(nil, &mockHTTPClient{}, nil, 0)

		_, err := core.Load(ctx, domain.ImageReference{})
		assert.Error(t, err)
	})
}

func TestGeminiImageCore_PrepareImagePart(t *testing.T) {
	ctx := context.Background()
	data := pngBytes(t)

	t.Run("圧縮ありでJPEGに変換", func(t *testing.T) {
		core, _ := NewGeminiImageCore(nil, &mockHTTPClient{}, nil, 0)

		part, err := core.PrepareImagePart(ctx, domain.ImageReference{Source: data})
		require.NoError(t, err)
		require.NotNil(t, part.InlineData)
		assert.Equal(t, "image/jpeg", part.InlineData.MIMEType)
	})

	t.Run("圧縮なしは元の形式を維持", func(t *testing.T) {
		core, _ := NewGeminiImageCore(nil, &mockHTTPClient{}, nil, 0)
		core.SetCompression(false)

		part, err := core.PrepareImagePart(ctx, domain.ImageReference{Source: data})
		require.NoError(t, err)
		assert.Equal(t, "image/png", part.InlineData.MIMEType)
		assert.Equal(t, data, part.InlineData.Data)
	})

	t.Run("画像以外はエラー", func(t *testing.T) {
		core, _ := NewGeminiImageCore(nil, &mockHTTPClient{}, nil, 0)
		core.SetCompression(false)

		_, err := core.PrepareImagePart(ctx, domain.ImageReference{Source: []byte("plain text")})
		assert.Error(t, err)
	})

	t.Run("取得失敗はエラー", func(t *testing.T) {
		httpClient := &mockHTTPClient{fetchFunc: func(_ context.Context, _ string) ([]byte, error) {
			return nil, fmt.Errorf("network down")
		}}
		core, _ := NewGeminiImageCore(nil, httpClient, nil, 0)

		_, err := core.PrepareImagePart(ctx, domain.ImageReference{URL: "https://8.8.8.8/a.png"})
		assert.ErrorContains(t, err, "network down")
	})
}
