package imgutil

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"regexp"

	"github.com/shouni/gemini-image-studio/pkg/domain"
)

var dataURLPattern = regexp.MustCompile(`^data:([^;,]+);base64,(.+)$`)

// ToDataURL はバイト列を base64 の data URL に変換します。
func ToDataURL(data []byte, mimeType string) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// ParseDataURL は base64 の data URL をデコードします。
func ParseDataURL(s string) ([]byte, string, error) {
	m := dataURLPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, "", domain.ErrInvalidDataURL
	}
	data, err := base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrInvalidDataURL, err)
	}
	return data, m[1], nil
}

// NewReference は生データから data URL 形式の参照を作成します。
// mimeType が空の場合は内容から推定します。
func NewReference(data []byte, mimeType string) domain.ImageReference {
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	return domain.ImageReference{
		URL:      ToDataURL(data, mimeType),
		MimeType: mimeType,
		Source:   data,
	}
}
