package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shouni/gemini-image-studio/pkg/domain"
	"github.com/shouni/gemini-image-studio/pkg/imgutil"
	"github.com/shouni/gemini-image-studio/pkg/studio"
)

func (s *Server) session(w http.ResponseWriter, r *http.Request) (*studio.Session, bool) {
	sess, err := s.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return nil, false
	}
	return sess, true
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Create()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.InfoContext(r.Context(), "セッションを作成しました", "session", sess.ID())
	writeJSON(w, http.StatusCreated, sess.Snapshot())
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// settingsRequest は部分更新です。画像に空文字を渡すとクリアします。
type settingsRequest struct {
	Prompt         *string                `json:"prompt"`
	Mode           *domain.Mode           `json:"mode"`
	CreateFunction *domain.CreateFunction `json:"createFunction"`
	EditFunction   *domain.EditFunction   `json:"editFunction"`
	Style          *domain.ArtisticStyle  `json:"style"`
	AspectRatio    *domain.AspectRatio    `json:"aspectRatio"`
	Colorize       *bool                  `json:"colorize"`
	Seed           *int64                 `json:"seed"`
	ClearSeed      bool                   `json:"clearSeed"`
	Image1         *string                `json:"image1"`
	Image2         *string                `json:"image2"`
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var req settingsRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := applySettings(sess, req); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

// validate は列挙値をまとめて検証します。途中まで反映された状態を残さないため、
// セッションを変更する前に呼びます。
func (req settingsRequest) validate() error {
	switch {
	case req.Mode != nil && !req.Mode.Valid():
		return fmt.Errorf("%w: mode %q", studio.ErrInvalidSetting, *req.Mode)
	case req.CreateFunction != nil && !req.CreateFunction.Valid():
		return fmt.Errorf("%w: create function %q", studio.ErrInvalidSetting, *req.CreateFunction)
	case req.EditFunction != nil && !req.EditFunction.Valid():
		return fmt.Errorf("%w: edit function %q", studio.ErrInvalidSetting, *req.EditFunction)
	case req.Style != nil && !req.Style.Valid():
		return fmt.Errorf("%w: style %q", studio.ErrInvalidSetting, *req.Style)
	case req.AspectRatio != nil && !req.AspectRatio.Valid():
		return fmt.Errorf("%w: aspect ratio %q", studio.ErrInvalidSetting, *req.AspectRatio)
	}
	return nil
}

// applySettings はモード、機能、画像の順に反映します。
// モードや機能の切り替えで入力画像が消えるため、この順序は変えられません。
func applySettings(sess *studio.Session, req settingsRequest) error {
	if err := req.validate(); err != nil {
		return err
	}
	img1, err := parseImageInput(req.Image1)
	if err != nil {
		return err
	}
	img2, err := parseImageInput(req.Image2)
	if err != nil {
		return err
	}

	if req.Mode != nil {
		if err := sess.SetMode(*req.Mode); err != nil {
			return err
		}
	}
	if req.CreateFunction != nil {
		if err := sess.SetCreateFunction(*req.CreateFunction); err != nil {
			return err
		}
	}
	if req.EditFunction != nil {
		if err := sess.SetEditFunction(*req.EditFunction); err != nil {
			return err
		}
	}
	if req.Style != nil {
		if err := sess.SetStyle(*req.Style); err != nil {
			return err
		}
	}
	if req.AspectRatio != nil {
		if err := sess.SetAspectRatio(*req.AspectRatio); err != nil {
			return err
		}
	}
	if req.Prompt != nil {
		sess.SetPrompt(*req.Prompt)
	}
	if req.Colorize != nil {
		sess.SetColorize(*req.Colorize)
	}
	switch {
	case req.ClearSeed:
		sess.SetSeed(nil)
	case req.Seed != nil:
		sess.SetSeed(req.Seed)
	}
	if req.Image1 != nil {
		sess.SetImage1(img1)
	}
	if req.Image2 != nil {
		sess.SetImage2(img2)
	}
	return nil
}

// parseImageInput は data URL なら生データ付きの参照に変換します。
func parseImageInput(v *string) (*domain.ImageReference, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	ref := domain.ImageReference{URL: *v}
	if ref.IsDataURL() {
		data, mimeType, err := imgutil.ParseDataURL(*v)
		if err != nil {
			return nil, err
		}
		ref = imgutil.NewReference(data, mimeType)
	}
	return &ref, nil
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	if _, err := sess.Generate(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.Undo()
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (s *Server) handleRedo(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.Redo()
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (s *Server) handleEditCurrent(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	if err := sess.EditCurrentImage(); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (s *Server) handleNewImage(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	if err := sess.NewImage(); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

type transformRequest struct {
	Op    string `json:"op"`
	Value int    `json:"value"`
}

func (s *Server) handleTransform(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var req transformRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	switch req.Op {
	case "rotate":
		sess.Rotate()
	case "brightness":
		sess.SetBrightness(req.Value)
	case "contrast":
		sess.SetContrast(req.Value)
	case "sepia":
		sess.ToggleSepia()
	case "grayscale":
		sess.ToggleGrayscale()
	case "reset":
		sess.ResetTransform()
	default:
		s.writeError(w, r, fmt.Errorf("%w: unknown transform op %q", errBadRequest, req.Op))
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	res, err := sess.Export(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if res.Fallback && len(res.Data) == 0 {
		writeReferenceFallback(w, r, res.Reference)
		return
	}

	stamp := time.Now().UnixMilli()
	name := fmt.Sprintf("ai-image-edited-%d.jpg", stamp)
	if res.Fallback {
		w.Header().Set("X-Export-Fallback", "true")
		name = fmt.Sprintf("ai-image-%d.%s", stamp, extensionFor(res.MimeType))
	}
	w.Header().Set("Content-Type", res.MimeType)
	w.Header().Set("Content-Length", strconv.Itoa(len(res.Data)))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Data)
}

type exportFallbackResponse struct {
	Fallback bool   `json:"fallback"`
	URL      string `json:"url"`
}

// writeReferenceFallback は取得できなかった画像の元参照を返します。
// http(s) の参照はリダイレクトし、それ以外は JSON で URL を返します。
func writeReferenceFallback(w http.ResponseWriter, r *http.Request, ref domain.ImageReference) {
	w.Header().Set("X-Export-Fallback", "true")
	if strings.HasPrefix(ref.URL, "http://") || strings.HasPrefix(ref.URL, "https://") {
		http.Redirect(w, r, ref.URL, http.StatusTemporaryRedirect)
		return
	}
	writeJSON(w, http.StatusOK, exportFallbackResponse{Fallback: true, URL: ref.URL})
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/png":
		return "png"
	case "image/gif":
		return "gif"
	case "image/webp":
		return "webp"
	case "image/jpeg":
		return "jpg"
	default:
		return "bin"
	}
}
