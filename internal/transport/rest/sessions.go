package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/hanbitlee/mykorean-backend/internal/domain"
	"github.com/hanbitlee/mykorean-backend/internal/service/builder"
)

// sessionService defines the minimal interface needed by SessionHandler.
type sessionService interface {
	CreateSession(ctx context.Context) (builder.Snapshot, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error
	AdvanceTopic(ctx context.Context, id uuid.UUID) (builder.Snapshot, error)
	AdvanceNoun(ctx context.Context, id uuid.UUID) (builder.Snapshot, error)
	Current(ctx context.Context, id uuid.UUID) (builder.Snapshot, error)
}

// SessionHandler serves sentence-builder session endpoints.
type SessionHandler struct {
	svc sessionService
	log *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(svc sessionService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{svc: svc, log: logger.With("handler", "sessions")}
}

type wordResponse struct {
	Korean    string `json:"korean"`
	Romanized string `json:"romanized,omitempty"`
	English   string `json:"english"`
}

type snapshotResponse struct {
	SessionID       string       `json:"sessionId"`
	Topic           wordResponse `json:"topic"`
	Noun            wordResponse `json:"noun"`
	CompatibleCount int          `json:"compatibleCount"`
	Sentence        string       `json:"sentence"`
	NounPhrase      string       `json:"nounPhrase"`
	Romanized       string       `json:"romanized,omitempty"`
	Gloss           string       `json:"gloss"`
}

func toSnapshotResponse(s builder.Snapshot) snapshotResponse {
	return snapshotResponse{
		SessionID: s.SessionID.String(),
		Topic: wordResponse{
			Korean:    s.TopicKorean,
			Romanized: s.TopicRomanized,
			English:   s.TopicEnglish,
		},
		Noun: wordResponse{
			Korean:    s.NounKorean,
			Romanized: s.NounRomanized,
			English:   s.NounEnglish,
		},
		CompatibleCount: s.CompatibleCount,
		Sentence:        s.Sentence,
		NounPhrase:      s.NounPhrase,
		Romanized:       s.Romanized,
		Gloss:           s.Gloss,
	}
}

// Create handles POST /api/sessions.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.CreateSession(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSnapshotResponse(snap))
}

// Get handles GET /api/sessions/{id}.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	snap, err := h.svc.Current(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSnapshotResponse(snap))
}

// Delete handles DELETE /api/sessions/{id}.
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteSession(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AdvanceTopic handles POST /api/sessions/{id}/topic/advance.
func (h *SessionHandler) AdvanceTopic(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	snap, err := h.svc.AdvanceTopic(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSnapshotResponse(snap))
}

// AdvanceNoun handles POST /api/sessions/{id}/noun/advance.
func (h *SessionHandler) AdvanceNoun(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	snap, err := h.svc.AdvanceNoun(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSnapshotResponse(snap))
}

func (h *SessionHandler) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return uuid.Nil, false
	}
	return id, true
}

func (h *SessionHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "session not found")
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
