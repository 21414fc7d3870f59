package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gymnasion-dev/gymnasion/internal/app/trainer"
	"github.com/gymnasion-dev/gymnasion/internal/domain"
)

type Server struct {
	svc *trainer.Service
}

func NewServer(svc *trainer.Service) http.Handler {
	s := &Server{svc: svc}
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", s.handleHealthz)

	// /sessions → list sessions (GET)
	mux.HandleFunc("/sessions", s.handleSessions)

	// /sessions/{id}            → GET: status snapshot
	// /sessions/{id}/lines      → POST: submit a line
	// /sessions/{id}/reset      → POST: discard the session
	// /sessions/{id}/imitation  → POST: assign an imitation target
	mux.HandleFunc("/sessions/", s.handleSessionWithID)

	return chainMiddlewares(mux, withLogging, withCORS, withRequestID)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type submitLineRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode,omitempty"`
}

type assignAuthorRequest struct {
	Author string `json:"author"`
}

type promptResponse struct {
	Kind    string `json:"kind"`
	Text    string `json:"text"`
	Subject string `json:"subject,omitempty"`
}

type feedbackResponse struct {
	SessionID       string           `json:"session_id"`
	Status          string           `json:"status"`
	LineCount       int              `json:"line_count"`
	WordCount       int              `json:"word_count"`
	BanishedWords   []string         `json:"banished_words"`
	ImitationTarget string           `json:"imitation_target,omitempty"`
	Prompts         []promptResponse `json:"prompts"`
}

type listSessionsResponse struct {
	Sessions []feedbackResponse `json:"sessions"`
}

// ─────────────────────────────────────────────
// Basic routing
// ─────────────────────────────────────────────

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListSessions(w, r)
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleSessionWithID(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/sessions/")
	if path == "" {
		http.NotFound(w, r)
		return
	}

	parts := strings.Split(path, "/")
	id := parts[0]
	if id == "" {
		http.NotFound(w, r)
		return
	}

	if len(parts) == 1 {
		switch r.Method {
		case http.MethodGet:
			s.handleStatus(w, r, domain.SessionID(id))
		default:
			methodNotAllowed(w)
		}
		return
	}

	if len(parts) == 2 && r.Method == http.MethodPost {
		switch parts[1] {
		case "lines":
			s.handleSubmitLine(w, r, domain.SessionID(id))
			return
		case "reset":
			s.handleReset(w, r, domain.SessionID(id))
			return
		case "imitation":
			s.handleAssignAuthor(w, r, domain.SessionID(id))
			return
		}
	}

	http.NotFound(w, r)
}

// ─────────────────────────────────────────────
// Concrete handlers
// ─────────────────────────────────────────────

func (s *Server) handleSubmitLine(w http.ResponseWriter, r *http.Request, id domain.SessionID) {
	var req submitLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	fb, err := s.svc.SubmitLine(r.Context(), id, req.Text, domain.TrainingMode(req.Mode))
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toFeedbackResponse(fb))
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request, id domain.SessionID) {
	fb, err := s.svc.Status(r.Context(), id)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toFeedbackResponse(fb))
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request, id domain.SessionID) {
	if err := s.svc.ResetSession(r.Context(), id); err != nil {
		writeEngineError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAssignAuthor(w http.ResponseWriter, r *http.Request, id domain.SessionID) {
	var req assignAuthorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	fb, err := s.svc.AssignAuthor(r.Context(), id, req.Author)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toFeedbackResponse(fb))
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	snapshots, err := s.svc.ListSessions(r.Context(), 100)
	if err != nil {
		internalError(w, err)
		return
	}

	resp := listSessionsResponse{Sessions: make([]feedbackResponse, 0, len(snapshots))}
	for _, fb := range snapshots {
		resp.Sessions = append(resp.Sessions, toFeedbackResponse(fb))
	}
	writeJSON(w, http.StatusOK, resp)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func toFeedbackResponse(fb *domain.Feedback) feedbackResponse {
	prompts := make([]promptResponse, 0, len(fb.Prompts))
	for _, p := range fb.Prompts {
		prompts = append(prompts, promptResponse{
			Kind:    string(p.Kind),
			Text:    p.Text,
			Subject: p.Subject,
		})
	}
	return feedbackResponse{
		SessionID:       string(fb.SessionID),
		Status:          string(fb.Status),
		LineCount:       fb.LineCount,
		WordCount:       fb.WordCount,
		BanishedWords:   fb.BanishedWords,
		ImitationTarget: fb.ImitationTarget,
		Prompts:         prompts,
	}
}

// writeEngineError maps the engine's error taxonomy onto status codes.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionClosed):
		writeJSON(w, http.StatusConflict, map[string]string{
			"error": "session is closed; start a new one",
		})
	case errors.Is(err, domain.ErrSessionNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": "session not found",
		})
	case errors.Is(err, domain.ErrUnknownAuthor):
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": "unknown author",
		})
	default:
		internalError(w, err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

func internalError(w http.ResponseWriter, _ error) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "internal server error",
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error": "method not allowed",
	})
}
