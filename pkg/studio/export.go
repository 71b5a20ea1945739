package studio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/shouni/gemini-image-studio/pkg/domain"
	"github.com/shouni/gemini-image-studio/pkg/imgutil"
)

// ExportResult は書き出し結果です。Fallback の場合 Data は元画像のままで、
// 元画像を取得できなかったときは Data が空になり Reference だけが有効です。
type ExportResult struct {
	Data      []byte
	MimeType  string
	Reference domain.ImageReference
	Fallback  bool
}

// Export は表示中の画像に現在の変換を適用して JPEG を返します。
// 描画できない画像は変換せずに元のデータを返します。
func (s *Session) Export(ctx context.Context) (*ExportResult, error) {
	s.mu.Lock()
	if s.displayed == nil {
		s.mu.Unlock()
		return nil, domain.ErrNoCurrentImage
	}
	ref := *s.displayed
	t := s.transform
	quality := s.exportQuality
	s.mu.Unlock()

	src, err := s.loader.Load(ctx, ref)
	if err != nil {
		slog.WarnContext(ctx, "画像を取得できないため元の参照をそのまま返します", "session", s.id, "error", err)
		return &ExportResult{MimeType: ref.MimeType, Reference: ref, Fallback: true}, nil
	}

	out, err := imgutil.RenderExport(src, t, quality)
	if errors.Is(err, domain.ErrRenderUnavailable) {
		slog.WarnContext(ctx, "描画できないため元画像をそのまま書き出します", "session", s.id, "error", err)
		mimeType := ref.MimeType
		if mimeType == "" {
			mimeType = http.DetectContentType(src)
		}
		return &ExportResult{Data: src, MimeType: mimeType, Reference: ref, Fallback: true}, nil
	}
	if err != nil {
		return nil, err
	}

	return &ExportResult{Data: out, MimeType: "image/jpeg", Reference: ref}, nil
}

// sourceLoader は Source と data URL だけを扱う既定のローダーです。
type sourceLoader struct{}

func (sourceLoader) Load(_ context.Context, ref domain.ImageReference) ([]byte, error) {
	if ref.HasSource() {
		return ref.Source, nil
	}
	if ref.IsDataURL() {
		data, _, err := imgutil.ParseDataURL(ref.URL)
		return data, err
	}
	return nil, fmt.Errorf("no loader for reference %q", ref.URL)
}
