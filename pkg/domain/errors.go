package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrRenderUnavailable はエクスポート時にソース画像をデコードできなかったことを示します。
	// 呼び出し側は未加工の参照にフォールバックします。
	ErrRenderUnavailable = errors.New("render unavailable")

	ErrEmptyPrompt        = errors.New("prompt must not be empty")
	ErrMissingBaseImage   = errors.New("image editing requires a base image")
	ErrNotAuthenticated   = errors.New("credential is not ready")
	ErrGenerationInFlight = errors.New("a generation request is already in flight")
	ErrNoCurrentImage     = errors.New("no current image")
	ErrInvalidDataURL     = errors.New("invalid data URL")
)

// GenerationError は画像生成プロバイダー呼び出しの失敗です。
// 再試行は行わず、呼び出し元へそのまま伝えます。
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("generation failed: %s", e.Reason)
	}
	return fmt.Sprintf("generation failed: %s: %v", e.Reason, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewGenerationError は理由付きの GenerationError を作成します。
func NewGenerationError(reason string, err error) *GenerationError {
	return &GenerationError{Reason: reason, Err: err}
}
