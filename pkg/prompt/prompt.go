// Package prompt はスタジオで使うプロンプト文字列を組み立てます。
package prompt

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/shouni/gemini-image-studio/pkg/domain"
)

// CreatePrompt は作成モードの最終プロンプトを返します。
// Style 機能では画風の表示名を先頭に付与します。
func CreatePrompt(userPrompt string, fn domain.CreateFunction, style domain.ArtisticStyle) string {
	name := domain.StyleName(style)
	if fn == domain.CreateStyle && name != "" {
		return fmt.Sprintf("Uma imagem no estilo de %s: %s", strings.ToLower(name), userPrompt)
	}
	return userPrompt
}

const restoreBase = `
professionally restore the attached antique/vintage photograph. The main goals are to:
- Remove Major Damage: Carefully eliminate significant scratches, tears, creases, and water/stain marks.
- Dust/Spot Removal: Clean up all small spots, dust, and minute imperfections without compromising the original texture.
- Clarity and Detail Enhancement: Gently sharpen and enhance facial features and important details (like clothing, text, or background elements) without creating an over-processed, unnatural look. Maintain a natural grain/texture if it exists.
- Reconstruction (If necessary): Carefully reconstruct any minor missing areas (e.g., small parts of the edge or background) using existing surrounding information to seamlessly blend the repair.`

const restoreColorize = `
- Color Correction/Grading: Address any yellowing, fading, or color shifts common in old photos, aiming for natural, historically appropriate tones. Colorize the black and white photo with realistic colors.`

const restoreKeepTone = `
- Color Correction/Grading: Address any yellowing, fading, or color shifts common in old photos, aiming for balanced grayscale for black and white photos or proper sepia for sepia-toned photos. Do not colorize.`

// RestorePrompt は写真修復用のプロンプトを返します。空白は1文字に畳み込みます。
func RestorePrompt(colorize bool) string {
	grading := restoreKeepTone
	if colorize {
		grading = restoreColorize
	}
	p := fmt.Sprintf("Final Output: Provide a high-resolution digital file of the restored image. %s %s", restoreBase, grading)
	return strings.Join(strings.Fields(p), " ")
}

var enhancements = []string{
	"ultra realistic photography", "cinematic lighting", "8k resolution", "vibrant colors",
	"dramatic angle", "detailed illustration", "fantasy concept art", "by Greg Rutkowski and Artgerm",
	"trending on ArtStation", "hyperdetailed", "sharp focus", "masterpiece", "volumetric lighting",
	"macro photography", "depth of field", "bokeh", "by Stanley Kubrick", "unreal engine 5 render",
	"octane render", "trending on behance", "intricate details", "studio quality", "professional photo",
}

var negatives = []string{
	"ugly", "tiling", "poorly drawn hands", "poorly drawn feet", "poorly drawn face", "out of frame",
	"extra limbs", "disfigured", "deformed", "body out of frame", "blurry", "bad anatomy",
	"blurred", "watermark", "grainy", "signature", "cut off", "draft", "low quality", "jpeg artifacts",
	"weird colors",
}

// Enhancer はアイデアを「プロ仕様」のプロンプトへ膨らませます。
type Enhancer struct {
	rnd *rand.Rand
}

// NewEnhancer は乱数源を注入して Enhancer を作成します。nil の場合は自動シードです。
func NewEnhancer(rnd *rand.Rand) *Enhancer {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Enhancer{rnd: rnd}
}

// Enhance は 4〜7 個の強調語と 2〜4 個のネガティブ語を付与したプロンプトを返します。
func (e *Enhancer) Enhance(idea string) (string, error) {
	idea = strings.TrimSpace(idea)
	if idea == "" {
		return "", domain.ErrEmptyPrompt
	}
	pos := e.pick(enhancements, 4+e.rnd.IntN(4))
	neg := e.pick(negatives, 2+e.rnd.IntN(3))
	return fmt.Sprintf("%s, %s, --no %s", idea, strings.Join(pos, ", "), strings.Join(neg, ", ")), nil
}

func (e *Enhancer) pick(words []string, n int) []string {
	shuffled := make([]string, len(words))
	copy(shuffled, words)
	e.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}
