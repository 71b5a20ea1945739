package imgutil

import "fmt"

const (
	// MinTone と MaxTone は明るさ・コントラストのスライダー範囲です。
	MinTone = 50
	MaxTone = 150

	identityTone = 100
	presetOn     = 100
	rotationStep = 90
)

// Transform は表示中の画像に対する回転と色フィルタの状態です。
// 履歴には保存されず、新しい画像が生成されたときに Identity へ戻ります。
type Transform struct {
	Rotation   int `json:"rotation"`   // 度、[0,360)
	Brightness int `json:"brightness"` // %、100 で無変化
	Contrast   int `json:"contrast"`   // %、100 で無変化
	Sepia      int `json:"sepia"`      // %、[0,100]
	Grayscale  int `json:"grayscale"`  // %、[0,100]
}

// Identity は何も変化させない状態を返します。
func Identity() Transform {
	return Transform{Brightness: identityTone, Contrast: identityTone}
}

// Rotate は時計回りに 90° 回転させた状態を返します。4回で元に戻ります。
func (t Transform) Rotate() Transform {
	t.Rotation = normalizeRotation(t.Rotation + rotationStep)
	return t
}

func (t Transform) WithBrightness(percent int) Transform {
	t.Brightness = clamp(percent, MinTone, MaxTone)
	return t
}

func (t Transform) WithContrast(percent int) Transform {
	t.Contrast = clamp(percent, MinTone, MaxTone)
	return t
}

// ToggleSepia はセピアのプリセット（0 と 100）を切り替えます。
func (t Transform) ToggleSepia() Transform {
	t.Sepia = toggle(t.Sepia)
	return t
}

// ToggleGrayscale はモノクロのプリセット（0 と 100）を切り替えます。
func (t Transform) ToggleGrayscale() Transform {
	t.Grayscale = toggle(t.Grayscale)
	return t
}

// Normalize は各値を有効範囲へ丸めます。
func (t Transform) Normalize() Transform {
	t.Rotation = normalizeRotation(t.Rotation)
	t.Brightness = max(t.Brightness, 0)
	t.Contrast = max(t.Contrast, 0)
	t.Sepia = clamp(t.Sepia, 0, 100)
	t.Grayscale = clamp(t.Grayscale, 0, 100)
	return t
}

func (t Transform) IsIdentity() bool {
	return t.Normalize() == Identity()
}

// CSSFilter は表示層向けの CSS filter 文字列を返します。
func (t Transform) CSSFilter() string {
	return fmt.Sprintf("brightness(%d%%) contrast(%d%%) sepia(%d%%) grayscale(%d%%)",
		t.Brightness, t.Contrast, t.Sepia, t.Grayscale)
}

func normalizeRotation(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg
}

func toggle(v int) int {
	if v > 0 {
		return 0
	}
	return presetOn
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
