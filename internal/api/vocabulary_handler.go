// Package api provides HTTP handlers for the API.
package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/readlex/readlex-api/internal/api/shared"
	"github.com/readlex/readlex-api/internal/domain"
	"github.com/readlex/readlex-api/internal/importer"
	"github.com/readlex/readlex-api/internal/platform/logger"
	"github.com/readlex/readlex-api/internal/store"
)

// defaultListLimit bounds unpaginated list responses.
const defaultListLimit = 100

// maxImportSize caps uploaded spreadsheets at 8 MiB.
const maxImportSize = 8 << 20

// VocabularyHandler handles vocabulary CRUD and bulk import requests.
type VocabularyHandler struct {
	vocab    store.VocabularyStore
	importer *importer.Importer
	logger   *slog.Logger
}

// NewVocabularyHandler creates a new VocabularyHandler.
func NewVocabularyHandler(
	vocab store.VocabularyStore,
	imp *importer.Importer,
	logger *slog.Logger,
) *VocabularyHandler {
	if vocab == nil {
		panic("vocab cannot be nil")
	}
	if imp == nil {
		panic("importer cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &VocabularyHandler{
		vocab:    vocab,
		importer: imp,
		logger:   logger.With(slog.String("component", "vocabulary_handler")),
	}
}

// userIDFromContext extracts the user ID placed by the user middleware,
// writing a 401 response when it is absent.
func userIDFromContext(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return uuid.Nil, false
	}
	return userID, true
}

// Create handles POST /api/vocabulary requests.
func (h *VocabularyHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	var req CreateVocabularyRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation failed: word is required")
		return
	}

	item, err := domain.NewVocabularyItem(userID, req.Word)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid vocabulary item")
		return
	}
	item.Definition = req.Definition
	item.Translation = req.Translation
	item.Example = req.Example
	item.Source = req.Source

	if err := h.vocab.Create(r.Context(), item); err != nil {
		if errors.Is(err, store.ErrWordExists) {
			shared.RespondWithError(w, r, http.StatusConflict, GetSafeErrorMessage(err))
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to create vocabulary item", err)
		return
	}

	log.Debug("created vocabulary item",
		slog.String("user_id", userID.String()),
		slog.String("item_id", item.ID.String()))

	shared.RespondWithJSON(w, r, http.StatusCreated, itemToResponse(item))
}

// List handles GET /api/vocabulary requests.
func (h *VocabularyHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	items, err := h.vocab.ListByUser(r.Context(), userID, limit)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list vocabulary items", err)
		return
	}

	responses := make([]VocabularyItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, itemToResponse(item))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// Delete handles DELETE /api/vocabulary/{id} requests. The item's review
// state goes with it.
func (h *VocabularyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid vocabulary item ID")
		return
	}

	item, err := h.vocab.GetByID(r.Context(), itemID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	if item.UserID != userID {
		shared.RespondWithError(w, r, http.StatusForbidden, "You do not own this vocabulary item")
		return
	}

	if err := h.vocab.Delete(r.Context(), itemID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Import handles POST /api/vocabulary/import requests. The spreadsheet
// arrives as the "file" part of a multipart form.
func (h *VocabularyHandler) Import(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing file upload")
		return
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			log.Warn("failed to close uploaded file", slog.String("error", cerr.Error()))
		}
	}()

	result, err := h.importer.Import(r.Context(), userID, file)
	if err != nil {
		if errors.Is(err, importer.ErrNoRows) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Spreadsheet contains no data rows")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to import vocabulary", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
