package domain

// Mode はスタジオの動作モードです。
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// CreateFunction は作成モードのサブ機能です。
type CreateFunction string

const (
	CreateFree  CreateFunction = "free"
	CreateStyle CreateFunction = "style"
)

// EditFunction は編集モードのサブ機能です。
type EditFunction string

const (
	EditAddRemove EditFunction = "add-remove"
	EditRetouch   EditFunction = "retouch"
	EditStyle     EditFunction = "style"
	EditCompose   EditFunction = "compose"
	EditRestore   EditFunction = "restore"
)

// RequiresTwoImages は2枚の入力画像を使う機能かを返します。
func (f EditFunction) RequiresTwoImages() bool {
	return f == EditCompose
}

// ArtisticStyle は作成モードで選択できる画風です。
type ArtisticStyle string

const (
	StyleRealistic   ArtisticStyle = "realistic"
	StyleCartoon     ArtisticStyle = "cartoon"
	StyleOilPainting ArtisticStyle = "oil_painting"
	StyleAbstract    ArtisticStyle = "abstract"
	StylePixelArt    ArtisticStyle = "pixel_art"
	StyleComic       ArtisticStyle = "comic"
	StyleSticker     ArtisticStyle = "sticker"
	StyleLogo        ArtisticStyle = "logo"
)

// AspectRatio は出力画像のアスペクト比です。
type AspectRatio string

const (
	AspectSquare    AspectRatio = "1:1"
	AspectLandscape AspectRatio = "16:9"
	AspectPortrait  AspectRatio = "9:16"
	AspectWide      AspectRatio = "4:3"
	AspectTall      AspectRatio = "3:4"
)

// StyleOption は画風の表示名を保持します。
type StyleOption struct {
	ID   ArtisticStyle `json:"id"`
	Name string        `json:"name"`
}

// StyleOptions は選択可能な画風の一覧（表示順）です。
var StyleOptions = []StyleOption{
	{ID: StyleRealistic, Name: "Realista"},
	{ID: StyleCartoon, Name: "Desenho Animado"},
	{ID: StyleOilPainting, Name: "Pintura a Óleo"},
	{ID: StyleAbstract, Name: "Abstrato"},
	{ID: StylePixelArt, Name: "Pixel Art"},
	{ID: StyleComic, Name: "HQ"},
	{ID: StyleSticker, Name: "Adesivo"},
	{ID: StyleLogo, Name: "Logo"},
}

// AspectRatios は選択可能なアスペクト比の一覧です。
var AspectRatios = []AspectRatio{AspectSquare, AspectLandscape, AspectPortrait, AspectWide, AspectTall}

// StyleName は画風の表示名を返します。未知の画風は空文字です。
func StyleName(s ArtisticStyle) string {
	for _, opt := range StyleOptions {
		if opt.ID == s {
			return opt.Name
		}
	}
	return ""
}

func (m Mode) Valid() bool {
	return m == ModeCreate || m == ModeEdit
}

func (f CreateFunction) Valid() bool {
	return f == CreateFree || f == CreateStyle
}

func (f EditFunction) Valid() bool {
	switch f {
	case EditAddRemove, EditRetouch, EditStyle, EditCompose, EditRestore:
		return true
	}
	return false
}

func (s ArtisticStyle) Valid() bool {
	return StyleName(s) != ""
}

func (a AspectRatio) Valid() bool {
	for _, v := range AspectRatios {
		if v == a {
			return true
		}
	}
	return false
}
