package imgutil

import (
	"image"
	"math"
)

// colorStep は [0,1] の非乗算 RGB に対する1段分のフィルタです。
type colorStep func(r, g, b float64) (float64, float64, float64)

// filterChain は brightness → contrast → sepia → grayscale の順でステップを組み立てます。
// 各係数は CSS Filter Effects の定義に従います。
func filterChain(t Transform) []colorStep {
	t = t.Normalize()
	var steps []colorStep

	if t.Brightness != identityTone {
		k := float64(t.Brightness) / 100
		steps = append(steps, func(r, g, b float64) (float64, float64, float64) {
			return r * k, g * k, b * k
		})
	}
	if t.Contrast != identityTone {
		c := float64(t.Contrast) / 100
		off := 0.5 - 0.5*c
		steps = append(steps, func(r, g, b float64) (float64, float64, float64) {
			return r*c + off, g*c + off, b*c + off
		})
	}
	if t.Sepia > 0 {
		steps = append(steps, matrixStep(sepiaMatrix(float64(t.Sepia)/100)))
	}
	if t.Grayscale > 0 {
		steps = append(steps, matrixStep(grayscaleMatrix(float64(t.Grayscale)/100)))
	}
	return steps
}

func sepiaMatrix(s float64) [3][3]float64 {
	k := 1 - s
	return [3][3]float64{
		{0.393 + 0.607*k, 0.769 - 0.769*k, 0.189 - 0.189*k},
		{0.349 - 0.349*k, 0.686 + 0.314*k, 0.168 - 0.168*k},
		{0.272 - 0.272*k, 0.534 - 0.534*k, 0.131 + 0.869*k},
	}
}

func grayscaleMatrix(g float64) [3][3]float64 {
	k := 1 - g
	return [3][3]float64{
		{0.2126 + 0.7874*k, 0.7152 - 0.7152*k, 0.0722 - 0.0722*k},
		{0.2126 - 0.2126*k, 0.7152 + 0.2848*k, 0.0722 - 0.0722*k},
		{0.2126 - 0.2126*k, 0.7152 - 0.7152*k, 0.0722 + 0.9278*k},
	}
}

func matrixStep(m [3][3]float64) colorStep {
	return func(r, g, b float64) (float64, float64, float64) {
		return m[0][0]*r + m[0][1]*g + m[0][2]*b,
			m[1][0]*r + m[1][1]*g + m[1][2]*b,
			m[2][0]*r + m[2][1]*g + m[2][2]*b
	}
}

// ApplyFilters は img の色をその場で変換します。アルファは変更しません。
func ApplyFilters(img *image.NRGBA, t Transform) {
	steps := filterChain(t)
	if len(steps) == 0 {
		return
	}

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		for i := 0; i+3 < len(row); i += 4 {
			r := float64(row[i]) / 255
			g := float64(row[i+1]) / 255
			bl := float64(row[i+2]) / 255
			for _, step := range steps {
				r, g, bl = step(r, g, bl)
				r, g, bl = unit(r), unit(g), unit(bl)
			}
			row[i] = to8(r)
			row[i+1] = to8(g)
			row[i+2] = to8(bl)
		}
	}
}

func unit(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}

func to8(v float64) uint8 {
	return uint8(math.Round(v * 255))
}
