// Package auth は画像生成 API を呼び出す前の認証確認を提供します。
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/shouni/gemini-image-studio/pkg/domain"
)

// ErrGateTimeout はポーリング中に認証が完了しなかったことを示します。
var ErrGateTimeout = errors.New("credential gate timed out")

// CredentialGate は認証状態の確認と取得を行う能力です。
type CredentialGate interface {
	IsReady(ctx context.Context) bool
	RequestAccess(ctx context.Context) error
}

// Revoker はログアウトに対応するゲートが実装します。
type Revoker interface {
	Revoke(ctx context.Context) error
}

// APIKeyGate は API キーが設定されていれば常に認証済みとみなします。
type APIKeyGate struct {
	key string
}

func NewAPIKeyGate(key string) *APIKeyGate {
	return &APIKeyGate{key: strings.TrimSpace(key)}
}

func (g *APIKeyGate) IsReady(_ context.Context) bool {
	return g.key != ""
}

func (g *APIKeyGate) RequestAccess(ctx context.Context) error {
	if g.IsReady(ctx) {
		return nil
	}
	return fmt.Errorf("%w: GEMINI_API_KEY を設定してください", domain.ErrNotAuthenticated)
}

// DevGate はローカル開発用の疑似ログインです。
type DevGate struct {
	mu       sync.Mutex
	loggedIn bool
	delay    time.Duration
}

// NewDevGate は擬似ログインに delay だけ待つ DevGate を返します。
func NewDevGate(delay time.Duration) *DevGate {
	return &DevGate{delay: delay}
}

func (g *DevGate) IsReady(_ context.Context) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loggedIn
}

func (g *DevGate) RequestAccess(ctx context.Context) error {
	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	g.mu.Lock()
	g.loggedIn = true
	g.mu.Unlock()
	slog.InfoContext(ctx, "開発モードでログインしました")
	return nil
}

func (g *DevGate) Revoke(ctx context.Context) error {
	g.mu.Lock()
	g.loggedIn = false
	g.mu.Unlock()
	slog.InfoContext(ctx, "開発モードでログアウトしました")
	return nil
}

// Probe は認証済みかどうかを外部に問い合わせます。
type Probe func(ctx context.Context) (bool, error)

// Opener は利用者にキー選択などを促す処理です。
type Opener func(ctx context.Context) error

// PollingGate は Opener を呼んだ後、Probe が成功するまで一定間隔で問い合わせます。
type PollingGate struct {
	probe    Probe
	opener   Opener
	interval time.Duration
	timeout  time.Duration
}

// NewPollingGate は PollingGate を初期化します。opener は nil を許容します。
func NewPollingGate(probe Probe, opener Opener, interval, timeout time.Duration) (*PollingGate, error) {
	if probe == nil {
		return nil, fmt.Errorf("probe is required")
	}
	if interval <= 0 {
		return nil, fmt.Errorf("interval must be positive: %s", interval)
	}
	return &PollingGate{probe: probe, opener: opener, interval: interval, timeout: timeout}, nil
}

func (g *PollingGate) IsReady(ctx context.Context) bool {
	ok, err := g.probe(ctx)
	if err != nil {
		slog.WarnContext(ctx, "認証状態の確認に失敗しました", "error", err)
		return false
	}
	return ok
}

func (g *PollingGate) RequestAccess(ctx context.Context) error {
	if g.opener != nil {
		if err := g.opener(ctx); err != nil {
			return fmt.Errorf("認証画面の起動に失敗しました: %w", err)
		}
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		if g.IsReady(ctx) {
			return nil
		}
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return ErrGateTimeout
			}
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
