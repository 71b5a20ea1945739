package generator

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/shouni/gemini-image-studio/pkg/domain"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

// --- Mock: ContentGenerator ---
type mockAIClient struct {
	generateWithPartsFunc func(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error)
	calls                 int
	lastParts             []*genai.Part
	lastOpts              gemini.GenerateOptions
}

func (m *mockAIClient) GenerateWithParts(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error) {
	m.calls++
	m.lastParts = parts
	m.lastOpts = opts
	if m.generateWithPartsFunc != nil {
		return m.generateWithPartsFunc(ctx, model, parts, opts)
	}
	return imageResponse([]byte("edited"), "image/png"), nil
}

// --- Mock: ImagenModel ---
type mockImagen struct {
	generateImagesFunc func(ctx context.Context, model, prompt string, cfg *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)
	calls              int
	lastPrompt         string
	lastConfig         *genai.GenerateImagesConfig
}

func (m *mockImagen) GenerateImages(ctx context.Context, model, prompt string, cfg *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error) {
	m.calls++
	m.lastPrompt = prompt
	m.lastConfig = cfg
	if m.generateImagesFunc != nil {
		return m.generateImagesFunc(ctx, model, prompt, cfg)
	}
	return &genai.GenerateImagesResponse{
		GeneratedImages: []*genai.GeneratedImage{{Image: &genai.Image{ImageBytes: []byte("created"), MIMEType: "image/jpeg"}}},
	}, nil
}

// --- Mock: ImagePreparer ---
type mockPreparer struct {
	err  error
	refs []domain.ImageReference
}

func (m *mockPreparer) PrepareImagePart(_ context.Context, ref domain.ImageReference) (*genai.Part, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.refs = append(m.refs, ref)
	return &genai.Part{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte(ref.URL)}}, nil
}

// --- Mock: HTTPClient ---
type mockHTTPClient struct {
	fetchFunc func(ctx context.Context, url string) ([]byte, error)
	calls     int
}

func (m *mockHTTPClient) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	m.calls++
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, url)
	}
	return nil, fmt.Errorf("not implemented")
}

// --- Mock: ImageCacher ---
type mockCache struct {
	data map[string]any
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string]any)}
}

func (m *mockCache) Get(key string) (any, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *mockCache) Set(key string, value any, _ time.Duration) {
	m.data[key] = value
}

// --- Mock: remoteio.InputReader ---
type mockReader struct {
	files map[string][]byte
}

func (m *mockReader) Open(_ context.Context, uri string) (io.ReadCloser, error) {
	data, ok := m.files[uri]
	if !ok {
		return nil, fmt.Errorf("object not found: %s", uri)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *mockReader) List(_ context.Context, _ string, fn func(string) error) error {
	for uri := range m.files {
		if err := fn(uri); err != nil {
			return err
		}
	}
	return nil
}

func imageResponse(data []byte, mime string) *gemini.Response {
	return &gemini.Response{RawResponse: &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content:      &genai.Content{Parts: []*genai.Part{{InlineData: &genai.Blob{MIMEType: mime, Data: data}}}},
			FinishReason: genai.FinishReasonStop,
		}},
	}}
}
