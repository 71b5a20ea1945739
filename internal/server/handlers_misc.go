package server

import (
	"net/http"
	"strconv"

	"github.com/shouni/gemini-image-studio/pkg/auth"
	"github.com/shouni/gemini-image-studio/pkg/domain"
	"github.com/shouni/gemini-image-studio/pkg/prompt"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type authStatus struct {
	Ready     bool `json:"ready"`
	CanLogout bool `json:"canLogout"`
}

func (s *Server) authStatus(r *http.Request) authStatus {
	_, canLogout := s.gate.(auth.Revoker)
	return authStatus{Ready: s.gate.IsReady(r.Context()), CanLogout: canLogout}
}

func (s *Server) handleAuthStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.authStatus(r))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := s.gate.RequestAccess(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.authStatus(r))
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	revoker, ok := s.gate.(auth.Revoker)
	if !ok {
		writeJSON(w, http.StatusNotImplemented, errorBody{Error: errorDetail{
			Code:    "not_supported",
			Message: "logout is not supported by the configured credential gate",
		}})
		return
	}
	if err := revoker.Revoke(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.authStatus(r))
}

type enhanceRequest struct {
	Idea string `json:"idea"`
}

type promptResponse struct {
	Prompt string `json:"prompt"`
}

func (s *Server) handleEnhance(w http.ResponseWriter, r *http.Request) {
	var req enhanceRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.enhMu.Lock()
	p, err := s.enhancer.Enhance(req.Idea)
	s.enhMu.Unlock()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, promptResponse{Prompt: p})
}

func (s *Server) handleRestorePrompt(w http.ResponseWriter, r *http.Request) {
	colorize, _ := strconv.ParseBool(r.URL.Query().Get("colorize"))
	writeJSON(w, http.StatusOK, promptResponse{Prompt: prompt.RestorePrompt(colorize)})
}

type tipsResponse struct {
	Style domain.ArtisticStyle `json:"style,omitempty"`
	Tips  []string             `json:"tips"`
}

func (s *Server) handleTips(w http.ResponseWriter, r *http.Request) {
	style := domain.ArtisticStyle(r.URL.Query().Get("style"))
	if !style.Valid() {
		style = ""
	}
	writeJSON(w, http.StatusOK, tipsResponse{Style: style, Tips: prompt.Tips(style)})
}
