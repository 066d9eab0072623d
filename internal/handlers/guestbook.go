package handlers

import (
	"errors"
	"net/http"

	"portfolio-api/internal/models"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/validation"
	"portfolio-api/pkg/logger"
	"portfolio-api/pkg/metrics"

	"go.uber.org/zap"
)

const guestbookKind = "guestbook"

type GuestbookHandler struct {
	store        GuestbookStore
	approvedOnly bool
}

// NewGuestbookHandler builds the guestbook endpoints. With approvedOnly unset
// the listing includes entries that have not been moderated yet.
func NewGuestbookHandler(store GuestbookStore, approvedOnly bool) *GuestbookHandler {
	return &GuestbookHandler{
		store:        store,
		approvedOnly: approvedOnly,
	}
}

// --- POST /api/guestbook ---

func (h *GuestbookHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.GuestbookRequest
	if err := decodeJSON(r, &req); err != nil {
		metrics.Submissions.WithLabelValues(guestbookKind, "invalid").Inc()
		respondInvalid(w, err)
		return
	}

	req.Normalize()
	if err := validation.Struct(&req); err != nil {
		metrics.Submissions.WithLabelValues(guestbookKind, "invalid").Inc()
		respondInvalid(w, err)
		return
	}

	entry := req.ToEntry()
	if err := h.store.Create(r.Context(), entry); err != nil {
		if errors.Is(err, validation.ErrInvalid) {
			metrics.Submissions.WithLabelValues(guestbookKind, "invalid").Inc()
			respondInvalid(w, err)
			return
		}
		metrics.Submissions.WithLabelValues(guestbookKind, "error").Inc()
		logger.LogError(err, "Failed to save guestbook entry")
		respondError(w, http.StatusInternalServerError, "Failed to add guestbook entry.")
		return
	}

	logger.Info("Guestbook entry added", zap.String("entry_id", entry.ID.Hex()))
	metrics.Submissions.WithLabelValues(guestbookKind, "success").Inc()
	respondSuccess(w, http.StatusCreated, "Guestbook entry added!")
}

// --- GET /api/guestbook ---

func (h *GuestbookHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.List(r.Context(), repository.ListOptions{ApprovedOnly: h.approvedOnly})
	if err != nil {
		logger.LogError(err, "Failed to fetch guestbook entries")
		respondError(w, http.StatusInternalServerError, "Failed to fetch guestbook entries.")
		return
	}
	if entries == nil {
		entries = []models.GuestbookEntry{}
	}

	writeJSON(w, http.StatusOK, entries)
}
