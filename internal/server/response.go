package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shouni/gemini-image-studio/pkg/auth"
	"github.com/shouni/gemini-image-studio/pkg/domain"
	"github.com/shouni/gemini-image-studio/pkg/studio"
)

var errBadRequest = errors.New("bad request")

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(r.Context(), "リクエスト処理に失敗しました", "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: err.Error()}})
}

// classify はエラーを HTTP ステータスとエラーコードに対応付けます。
func classify(err error) (int, string) {
	var genErr *domain.GenerationError
	switch {
	case errors.Is(err, studio.ErrSessionNotFound):
		return http.StatusNotFound, "session_not_found"
	case errors.Is(err, domain.ErrGenerationInFlight):
		return http.StatusConflict, "generation_in_flight"
	case errors.Is(err, domain.ErrNoCurrentImage):
		return http.StatusConflict, "no_current_image"
	case errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized, "not_authenticated"
	case errors.Is(err, auth.ErrGateTimeout):
		return http.StatusGatewayTimeout, "auth_timeout"
	case errors.Is(err, errBadRequest),
		errors.Is(err, studio.ErrInvalidSetting),
		errors.Is(err, domain.ErrInvalidDataURL),
		errors.Is(err, domain.ErrEmptyPrompt),
		errors.Is(err, domain.ErrMissingBaseImage):
		return http.StatusBadRequest, "invalid_request"
	case errors.As(err, &genErr):
		return http.StatusBadGateway, "generation_failed"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Join(errBadRequest, err)
	}
	return nil
}
