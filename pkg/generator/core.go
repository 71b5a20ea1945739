package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shouni/gemini-image-studio/pkg/domain"
	"github.com/shouni/gemini-image-studio/pkg/imgutil"
	"github.com/shouni/go-remote-io/pkg/remoteio"
	"google.golang.org/genai"
)

// GeminiImageCore は画像参照の解決（data URL / http(s) / gs://）と
// genai.Part への変換を担う基盤クラスです。エクスポート時の画像ローダーも兼ねます。
type GeminiImageCore struct {
	reader     remoteio.InputReader
	httpClient HTTPClient
	cache      ImageCacher
	expiration time.Duration
	compress   bool
}

// NewGeminiImageCore は依存関係を注入して GeminiImageCore を初期化します。
func NewGeminiImageCore(reader remoteio.InputReader, httpClient HTTPClient, cache ImageCacher, cacheTTL time.Duration) (*GeminiImageCore, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	// reader は nil を許容（gs:// 参照は使用不可）
	// cache は nil を許容（キャッシュなし動作）

	return &GeminiImageCore{
		reader:     reader,
		httpClient: httpClient,
		cache:      cache,
		expiration: cacheTTL,
		compress:   UseImageCompression,
	}, nil
}

// SetCompression は送信前の JPEG 再圧縮を切り替えます。
func (c *GeminiImageCore) SetCompression(enabled bool) {
	c.compress = enabled
}

// Load は参照の生データを返します。
func (c *GeminiImageCore) Load(ctx context.Context, ref domain.ImageReference) ([]byte, error) {
	if ref.HasSource() {
		return ref.Source, nil
	}
	if ref.IsDataURL() {
		data, _, err := imgutil.ParseDataURL(ref.URL)
		return data, err
	}
	if ref.URL == "" {
		return nil, fmt.Errorf("image reference is empty")
	}

	key := cacheKeyImageData + ref.URL
	if c.cache != nil {
		if val, ok := c.cache.Get(key); ok {
			if data, ok := val.([]byte); ok {
				return data, nil
			}
			slog.WarnContext(ctx, "キャッシュデータが不正な型です", "url", ref.URL, "type", fmt.Sprintf("%T", val))
		}
	}

	data, err := c.fetchImageData(ctx, ref.URL)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		c.cache.Set(key, data, c.expiration)
	}
	return data, nil
}

// PrepareImagePart は参照から送信用の画像パーツを作成します。
func (c *GeminiImageCore) PrepareImagePart(ctx context.Context, ref domain.ImageReference) (*genai.Part, error) {
	data, err := c.Load(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("参照画像の読み込みに失敗しました: %w", err)
	}

	finalData := data
	if c.compress {
		if compressed, err := imgutil.CompressToJPEG(data, ImageCompressionQuality); err == nil {
			finalData = compressed
		} else {
			slog.DebugContext(ctx, "JPEG圧縮をスキップしました", "error", err)
		}
	}

	part := c.toPart(finalData)
	if part == nil {
		return nil, fmt.Errorf("MIMEタイプが画像ではないためPartに変換できませんでした")
	}
	return part, nil
}
