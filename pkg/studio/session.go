// Package studio は画像スタジオのセッション（生成フロー、履歴、表示変換、書き出し）を管理します。
package studio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/shouni/gemini-image-studio/pkg/auth"
	"github.com/shouni/gemini-image-studio/pkg/domain"
	"github.com/shouni/gemini-image-studio/pkg/generator"
	"github.com/shouni/gemini-image-studio/pkg/history"
	"github.com/shouni/gemini-image-studio/pkg/imgutil"
	"github.com/shouni/gemini-image-studio/pkg/prompt"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/shouni/gemini-image-studio/pkg/studio"

// ReferenceLoader は画像参照の生データを取得します。
type ReferenceLoader interface {
	Load(ctx context.Context, ref domain.ImageReference) ([]byte, error)
}

// Session は1人の利用者の編集セッションです。
// 生成は同時に1件のみで、API 呼び出し中はロックを保持しません。
type Session struct {
	id            string
	gen           generator.ImageGenerator
	gate          auth.CredentialGate
	loader        ReferenceLoader
	exportQuality int
	tracer        trace.Tracer

	mu        sync.Mutex
	settings  Settings
	image1    *domain.ImageReference
	image2    *domain.ImageReference
	displayed *domain.ImageReference
	history   *history.Log[domain.ImageReference]
	transform imgutil.Transform
	state     FlowState
	lastErr   error
}

// Option は Session の任意設定です。
type Option func(*Session)

// WithGate は生成前に確認する認証ゲートを設定します。
func WithGate(g auth.CredentialGate) Option {
	return func(s *Session) { s.gate = g }
}

// WithLoader は書き出し時の画像ローダーを設定します。
func WithLoader(l ReferenceLoader) Option {
	return func(s *Session) { s.loader = l }
}

func WithExportQuality(q int) Option {
	return func(s *Session) { s.exportQuality = q }
}

func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

// NewSession は既定の設定でセッションを作成します。
func NewSession(gen generator.ImageGenerator, opts ...Option) (*Session, error) {
	if gen == nil {
		return nil, fmt.Errorf("generator is required")
	}

	s := &Session{
		id:            uuid.NewString(),
		gen:           gen,
		loader:        sourceLoader{},
		exportQuality: imgutil.DefaultExportQuality,
		tracer:        otel.Tracer(tracerName),
		settings:      DefaultSettings(),
		history:       history.New[domain.ImageReference](),
		transform:     imgutil.Identity(),
		state:         StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Session) ID() string { return s.id }

func (s *Session) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

func (s *Session) State() FlowState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastError は直近の生成失敗を返します。
func (s *Session) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Current は表示中の画像を返します。
func (s *Session) Current() (domain.ImageReference, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.displayed == nil {
		return domain.ImageReference{}, false
	}
	return *s.displayed, true
}

// Generate は現在の設定で画像を生成し、成功時は履歴に追加します。
// 失敗しても履歴と表示中の画像は変わりません。
func (s *Session) Generate(ctx context.Context) (domain.ImageReference, error) {
	ctx, span := s.tracer.Start(ctx, "studio.Generate", trace.WithAttributes(attribute.String("studio.session_id", s.id)))
	defer span.End()

	s.mu.Lock()
	if s.state == StateGenerating {
		s.mu.Unlock()
		return domain.ImageReference{}, domain.ErrGenerationInFlight
	}
	req := s.buildRequestLocked()
	s.state = StateGenerating
	s.lastErr = nil
	s.mu.Unlock()

	if s.gate != nil && !s.gate.IsReady(ctx) {
		return domain.ImageReference{}, s.fail(ctx, span, domain.NewGenerationError("not authenticated", domain.ErrNotAuthenticated))
	}

	slog.InfoContext(ctx, "画像生成を開始します", "session", s.id, "mode", req.Mode)
	resp, err := s.gen.Generate(ctx, req)
	if err != nil {
		var genErr *domain.GenerationError
		if !errors.As(err, &genErr) {
			err = domain.NewGenerationError("generation failed", err)
		}
		return domain.ImageReference{}, s.fail(ctx, span, err)
	}

	ref := imgutil.NewReference(resp.Data, resp.MimeType)

	s.mu.Lock()
	s.history.Append(ref)
	s.displayed = &ref
	s.transform = imgutil.Identity()
	s.state = StateReady
	s.mu.Unlock()

	slog.InfoContext(ctx, "画像生成が完了しました", "session", s.id, "mime_type", ref.MimeType, "bytes", len(resp.Data))
	return ref, nil
}

func (s *Session) fail(ctx context.Context, span trace.Span, err error) error {
	s.mu.Lock()
	s.state = StateFailed
	s.lastErr = err
	s.mu.Unlock()

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	slog.ErrorContext(ctx, "画像生成に失敗しました", "session", s.id, "error", err)
	return err
}

func (s *Session) buildRequestLocked() domain.GenerationRequest {
	st := s.settings
	p := st.Prompt
	if st.Mode == domain.ModeEdit && st.EditFunction == domain.EditRestore {
		p = prompt.RestorePrompt(st.Colorize)
	}

	req := domain.GenerationRequest{
		Prompt:         p,
		Mode:           st.Mode,
		CreateFunction: st.CreateFunction,
		EditFunction:   st.EditFunction,
		Style:          st.Style,
		AspectRatio:    st.AspectRatio,
		Image1:         cloneRef(s.image1),
		Image2:         cloneRef(s.image2),
	}
	if st.Seed != nil {
		v := *st.Seed
		req.Seed = &v
	}
	return req
}

// Undo は1つ前の結果を表示します。先頭では何もしません。
func (s *Session) Undo() (domain.ImageReference, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ref, ok := s.history.Undo()
	if ok {
		s.displayed = &ref
	}
	return ref, ok
}

// Redo は1つ後の結果を表示します。末尾では何もしません。
func (s *Session) Redo() (domain.ImageReference, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ref, ok := s.history.Redo()
	if ok {
		s.displayed = &ref
	}
	return ref, ok
}

func (s *Session) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.CanUndo()
}

func (s *Session) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.CanRedo()
}

// EditCurrentImage は表示中の結果を1枚目の入力として編集モードに移ります。
func (s *Session) EditCurrentImage() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.displayed == nil {
		return domain.ErrNoCurrentImage
	}

	s.settings.Mode = domain.ModeEdit
	s.settings.EditFunction = domain.EditAddRemove
	s.image1 = s.displayed
	s.image2 = nil
	s.displayed = nil
	return nil
}

// NewImage は結果、入力、履歴を破棄して作成モードの初期状態に戻します。
// 生成中は履歴を消せないため domain.ErrGenerationInFlight を返します。
func (s *Session) NewImage() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateGenerating {
		return domain.ErrGenerationInFlight
	}

	s.displayed = nil
	s.settings.Prompt = ""
	s.image1, s.image2 = nil, nil
	s.settings.Mode = domain.ModeCreate
	s.settings.CreateFunction = domain.CreateFree
	s.settings.AspectRatio = domain.AspectSquare
	s.history.Reset()
	s.state = StateIdle
	s.lastErr = nil
	return nil
}
