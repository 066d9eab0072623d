package handlers

import (
	"context"
	"errors"
	"net/http"

	"portfolio-api/internal/models"
	"portfolio-api/internal/notify"
	"portfolio-api/internal/validation"
	"portfolio-api/pkg/logger"
	"portfolio-api/pkg/metrics"

	"go.uber.org/zap"
)

const collaborationKind = "collaboration"

type CollaborationHandler struct {
	store    CollaborationStore
	notifier notify.Notifier
}

func NewCollaborationHandler(store CollaborationStore, notifier notify.Notifier) *CollaborationHandler {
	return &CollaborationHandler{
		store:    store,
		notifier: notifier,
	}
}

// --- POST /api/collaborate ---

func (h *CollaborationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.CollaborationRequest
	if err := decodeJSON(r, &req); err != nil {
		metrics.Submissions.WithLabelValues(collaborationKind, "invalid").Inc()
		respondInvalid(w, err)
		return
	}

	req.Normalize()
	if err := validation.Struct(&req); err != nil {
		metrics.Submissions.WithLabelValues(collaborationKind, "invalid").Inc()
		respondInvalid(w, err)
		return
	}

	collab := req.ToCollaboration()
	if err := h.store.Create(r.Context(), collab); err != nil {
		if errors.Is(err, validation.ErrInvalid) {
			metrics.Submissions.WithLabelValues(collaborationKind, "invalid").Inc()
			respondInvalid(w, err)
			return
		}
		metrics.Submissions.WithLabelValues(collaborationKind, "error").Inc()
		logger.LogError(err, "Failed to save collaboration request")
		respondError(w, http.StatusInternalServerError, "Failed to submit collaboration request.")
		return
	}

	// The record is saved at this point, so a failed email is logged but does
	// not fail the request. A client disconnect must not abort the send.
	ctx := context.WithoutCancel(r.Context())
	if err := h.notifier.Notify(ctx, notify.CollaborationNotification(collab)); err != nil {
		metrics.Notifications.WithLabelValues("error").Inc()
		logger.Warn("Collaboration saved but notification failed",
			zap.Error(err),
			zap.String("collaboration_id", collab.ID.Hex()),
		)
	} else {
		metrics.Notifications.WithLabelValues("success").Inc()
	}

	metrics.Submissions.WithLabelValues(collaborationKind, "success").Inc()
	respondSuccess(w, http.StatusCreated, "Collaboration request submitted!")
}
