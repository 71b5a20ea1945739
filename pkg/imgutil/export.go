package imgutil

import (
	"fmt"
	"image"
	"math"

	"github.com/shouni/gemini-image-studio/pkg/domain"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// BoundingBox は w×h の画像を degrees 回転させたときに全体を含む最小の
// 軸平行矩形のサイズを返します。
func BoundingBox(w, h, degrees int) (int, int) {
	rad := float64(degrees) * math.Pi / 180
	sin := math.Abs(math.Sin(rad))
	cos := math.Abs(math.Cos(rad))
	nw := float64(w)*cos + float64(h)*sin
	nh := float64(w)*sin + float64(h)*cos
	return int(math.Round(nw)), int(math.Round(nh))
}

// RenderExport はソース画像に色フィルタと回転を適用し JPEG で返します。
// デコードできない場合は domain.ErrRenderUnavailable を返すため、
// 呼び出し側は未加工の参照へフォールバックしてください。
func RenderExport(src []byte, t Transform, quality int) ([]byte, error) {
	img, _, err := Decode(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderUnavailable, err)
	}
	return EncodeJPEG(Render(img, t), quality)
}

// Render は純粋関数として変換後の画像を作成します。入力は変更しません。
func Render(img image.Image, t Transform) *image.NRGBA {
	t = t.Normalize()
	src := toNRGBA(img)
	ApplyFilters(src, t)
	return rotate(src, t.Rotation)
}

func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// rotate はキャンバス中心を軸に時計回りで回転させ、外接矩形のキャンバスへ合成します。
// 90° 単位は画素の並べ替えで正確に処理し、それ以外はバイリニア補間します。
func rotate(src *image.NRGBA, degrees int) *image.NRGBA {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()

	switch degrees {
	case 0:
		return src
	case 90:
		dst := image.NewNRGBA(image.Rect(0, 0, h, w))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.SetNRGBA(h-1-y, x, src.NRGBAAt(x, y))
			}
		}
		return dst
	case 180:
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.SetNRGBA(w-1-x, h-1-y, src.NRGBAAt(x, y))
			}
		}
		return dst
	case 270:
		dst := image.NewNRGBA(image.Rect(0, 0, h, w))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.SetNRGBA(y, w-1-x, src.NRGBAAt(x, y))
			}
		}
		return dst
	}

	nw, nh := BoundingBox(w, h, degrees)
	dst := image.NewNRGBA(image.Rect(0, 0, nw, nh))

	rad := float64(degrees) * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	sx, sy := float64(w)/2, float64(h)/2
	dx, dy := float64(nw)/2, float64(nh)/2

	// src 座標 -> dst 座標
	m := f64.Aff3{
		cos, -sin, dx - cos*sx + sin*sy,
		sin, cos, dy - sin*sx - cos*sy,
	}
	draw.BiLinear.Transform(dst, m, src, src.Bounds(), draw.Over, nil)
	return dst
}
