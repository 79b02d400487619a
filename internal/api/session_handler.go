package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/readlex/readlex-api/internal/api/shared"
	"github.com/readlex/readlex-api/internal/domain"
	"github.com/readlex/readlex-api/internal/service/study"
)

// defaultStatsDays is how many daily rollup rows the stats endpoint returns
// when the caller does not ask for a specific window.
const defaultStatsDays = 30

// SessionHandler handles study session HTTP requests.
type SessionHandler struct {
	studyService study.Service
	logger       *slog.Logger
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(studyService study.Service, logger *slog.Logger) *SessionHandler {
	if studyService == nil {
		panic("studyService cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SessionHandler{
		studyService: studyService,
		logger:       logger.With(slog.String("component", "session_handler")),
	}
}

// Start handles POST /api/sessions requests.
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	var req StartSessionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Mode must be learn or review")
		return
	}

	session, err := h.studyService.Start(r.Context(), userID, domain.SessionMode(req.Mode))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			"Failed to start study session", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, sessionToResponse(session))
}

// Finish handles POST /api/sessions/{id}/finish requests.
func (h *SessionHandler) Finish(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid session ID")
		return
	}

	var req FinishSessionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Counters cannot be negative")
		return
	}

	session, err := h.studyService.Finish(r.Context(), userID, sessionID,
		req.WordsStudied, req.WordsCorrect, req.WordsIncorrect)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sessionToResponse(session))
}

// Stats handles GET /api/stats requests.
func (h *SessionHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	days := defaultStatsDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid days parameter")
			return
		}
		days = parsed
	}

	stats, err := h.studyService.RecentStats(r.Context(), userID, days)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list daily stats", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}
