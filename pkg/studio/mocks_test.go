package studio

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"

	"github.com/shouni/gemini-image-studio/pkg/domain"
	"github.com/stretchr/testify/require"
)

// --- Mock: generator.ImageGenerator ---
type mockGenerator struct {
	mu       sync.Mutex
	generate func(ctx context.Context, req domain.GenerationRequest) (*domain.ImageResponse, error)
	requests []domain.GenerationRequest
}

func (m *mockGenerator) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.ImageResponse, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	fn := m.generate
	n := len(m.requests)
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, req)
	}
	return &domain.ImageResponse{Data: []byte(fmt.Sprintf("image-%d", n)), MimeType: "image/png"}, nil
}

func (m *mockGenerator) lastRequest() domain.GenerationRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[len(m.requests)-1]
}

func (m *mockGenerator) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// --- Mock: auth.CredentialGate ---
type mockGate struct {
	ready bool
}

func (m *mockGate) IsReady(context.Context) bool { return m.ready }

func (m *mockGate) RequestAccess(context.Context) error {
	m.ready = true
	return nil
}

// --- Mock: ReferenceLoader ---
type mockLoader struct {
	data []byte
	err  error
}

func (m *mockLoader) Load(context.Context, domain.ImageReference) ([]byte, error) {
	return m.data, m.err
}

func newTestSession(t *testing.T, gen *mockGenerator, opts ...Option) *Session {
	t.Helper()
	s, err := NewSession(gen, opts...)
	require.NoError(t, err)
	return s
}

func pngImage(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 80, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
