package studio

import (
	"errors"
	"fmt"

	"github.com/shouni/gemini-image-studio/pkg/domain"
)

// ErrInvalidSetting は列挙値の範囲外の設定を示します。
var ErrInvalidSetting = errors.New("invalid setting")

// Settings は画面左側の入力項目に相当します。
type Settings struct {
	Prompt         string                `json:"prompt"`
	Mode           domain.Mode           `json:"mode"`
	CreateFunction domain.CreateFunction `json:"createFunction"`
	EditFunction   domain.EditFunction   `json:"editFunction"`
	Style          domain.ArtisticStyle  `json:"style"`
	AspectRatio    domain.AspectRatio    `json:"aspectRatio"`
	Colorize       bool                  `json:"colorize"`
	Seed           *int64                `json:"seed,omitempty"`
}

func DefaultSettings() Settings {
	return Settings{
		Mode:           domain.ModeCreate,
		CreateFunction: domain.CreateFree,
		EditFunction:   domain.EditAddRemove,
		Style:          domain.StyleRealistic,
		AspectRatio:    domain.AspectSquare,
	}
}

// SetPrompt はユーザー入力のプロンプトを設定します。
func (s *Session) SetPrompt(p string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Prompt = p
}

// SetMode はモードを切り替えます。モードが変わると入力画像はクリアされます。
func (s *Session) SetMode(m domain.Mode) error {
	if !m.Valid() {
		return fmt.Errorf("%w: mode %q", ErrInvalidSetting, m)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings.Mode != m {
		s.settings.Mode = m
		s.image1, s.image2 = nil, nil
	}
	return nil
}

func (s *Session) SetCreateFunction(f domain.CreateFunction) error {
	if !f.Valid() {
		return fmt.Errorf("%w: create function %q", ErrInvalidSetting, f)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.CreateFunction = f
	return nil
}

// SetEditFunction は編集機能を選択します。合成以外では2枚目の画像を破棄します。
func (s *Session) SetEditFunction(f domain.EditFunction) error {
	if !f.Valid() {
		return fmt.Errorf("%w: edit function %q", ErrInvalidSetting, f)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.EditFunction = f
	if !f.RequiresTwoImages() {
		s.image2 = nil
	}
	return nil
}

func (s *Session) SetStyle(st domain.ArtisticStyle) error {
	if !st.Valid() {
		return fmt.Errorf("%w: style %q", ErrInvalidSetting, st)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Style = st
	return nil
}

func (s *Session) SetAspectRatio(a domain.AspectRatio) error {
	if !a.Valid() {
		return fmt.Errorf("%w: aspect ratio %q", ErrInvalidSetting, a)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.AspectRatio = a
	return nil
}

func (s *Session) SetColorize(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Colorize = v
}

// SetSeed は生成に使うシードを固定します。nil で解除します。
func (s *Session) SetSeed(seed *int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seed == nil {
		s.settings.Seed = nil
		return
	}
	v := *seed
	s.settings.Seed = &v
}

// SetImage1 は1枚目の入力画像を設定します。nil でクリアします。
func (s *Session) SetImage1(ref *domain.ImageReference) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.image1 = cloneRef(ref)
}

// SetImage2 は2枚目の入力画像を設定します。合成機能以外では無視されます。
func (s *Session) SetImage2(ref *domain.ImageReference) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.image2 = cloneRef(ref)
}

// TwoImageView は2枚入力の表示が必要かを返します。
func (s *Session) TwoImageView() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.Mode == domain.ModeEdit && s.settings.EditFunction.RequiresTwoImages()
}

func cloneRef(ref *domain.ImageReference) *domain.ImageReference {
	if ref == nil {
		return nil
	}
	c := *ref
	return &c
}
