package domain

import "strings"

// ImageReference は生成結果や入力画像を指す不変の参照です。
// URL には data URL / http(s) / gs:// のいずれかが入ります。
type ImageReference struct {
	URL      string
	MimeType string
	Source   []byte // 取得済みの生データ（任意）
}

// HasSource は生データを保持しているかを返します。
func (r ImageReference) HasSource() bool {
	return len(r.Source) > 0
}

// IsDataURL は参照が data URL 形式かを判定します。
func (r ImageReference) IsDataURL() bool {
	return strings.HasPrefix(r.URL, "data:")
}

// GenerationRequest は1回の画像生成・編集要求です。
// Image2 は Compose 機能の場合のみ使用されます。
type GenerationRequest struct {
	Prompt         string
	Mode           Mode
	CreateFunction CreateFunction
	EditFunction   EditFunction
	Style          ArtisticStyle
	AspectRatio    AspectRatio
	Image1         *ImageReference
	Image2         *ImageReference
	Seed           *int64
}

// ImageResponse は生成された画像データとそのメタデータです。
type ImageResponse struct {
	Data     []byte
	MimeType string
	UsedSeed int64 // 戻り値は情報欠落を防ぐため int64
}
