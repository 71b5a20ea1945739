package studio

import (
	"github.com/shouni/gemini-image-studio/pkg/domain"
	"github.com/shouni/gemini-image-studio/pkg/imgutil"
)

// Snapshot は API 応答用のセッション状態です。画像は URL のみを含みます。
type Snapshot struct {
	ID           string            `json:"id"`
	State        string            `json:"state"`
	Settings     Settings          `json:"settings"`
	Image1       string            `json:"image1,omitempty"`
	Image2       string            `json:"image2,omitempty"`
	Current      string            `json:"current,omitempty"`
	HistoryLen   int               `json:"historyLength"`
	Cursor       int               `json:"cursor"`
	CanUndo      bool              `json:"canUndo"`
	CanRedo      bool              `json:"canRedo"`
	TwoImageView bool              `json:"twoImageView"`
	Transform    imgutil.Transform `json:"transform"`
	CSSFilter    string            `json:"cssFilter"`
	LastError    string            `json:"lastError,omitempty"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:           s.id,
		State:        s.state.String(),
		Settings:     s.settings,
		HistoryLen:   s.history.Len(),
		Cursor:       s.history.Cursor(),
		CanUndo:      s.history.CanUndo(),
		CanRedo:      s.history.CanRedo(),
		TwoImageView: s.settings.Mode == domain.ModeEdit && s.settings.EditFunction.RequiresTwoImages(),
		Transform:    s.transform,
		CSSFilter:    s.transform.CSSFilter(),
	}
	if s.image1 != nil {
		snap.Image1 = s.image1.URL
	}
	if s.image2 != nil {
		snap.Image2 = s.image2.URL
	}
	if s.displayed != nil {
		snap.Current = s.displayed.URL
	}
	if s.lastErr != nil {
		snap.LastError = s.lastErr.Error()
	}
	return snap
}
