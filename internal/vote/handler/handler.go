package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Veselin15/FactNode/internal/platform/middleware"
	"github.com/Veselin15/FactNode/internal/vote/models"
	"github.com/Veselin15/FactNode/internal/vote/service"
	id "github.com/Veselin15/FactNode/pkg/domain"
	dErrors "github.com/Veselin15/FactNode/pkg/domain-errors"
	"github.com/Veselin15/FactNode/pkg/platform/httputil"
)

// Service defines the interface for vote operations.
type Service interface {
	Cast(ctx context.Context, voterID id.UserID, factID id.FactID, direction models.Direction) (service.CastResult, error)
	Retract(ctx context.Context, voterID id.UserID, factID id.FactID) error
}

// Handler wires vote endpoints to the vote service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a vote handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts vote endpoints on the router. Both endpoints require
// an authenticated voter.
func (h *Handler) Register(r chi.Router) {
	r.Post("/facts/{factID}/vote", h.HandleCast)
	r.Delete("/facts/{factID}/vote", h.HandleRetract)
}

// HandleCast handles POST /facts/{factID}/vote requests.
func (h *Handler) HandleCast(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	start := time.Now()

	voterID := middleware.GetUserID(ctx)
	if voterID.IsNil() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}

	factID, err := id.ParseFactID(chi.URLParam(r, "factID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[CastRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Cast(ctx, voterID, factID, req.ParsedDirection())
	if err != nil {
		h.logger.ErrorContext(ctx, "vote cast failed",
			"request_id", requestID,
			"voter_id", voterID,
			"fact_id", factID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "vote cast",
		"request_id", requestID,
		"voter_id", voterID,
		"fact_id", factID,
		"direction", result.Direction,
		"created", result.Created,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromCastResult(result))
}

// HandleRetract handles DELETE /facts/{factID}/vote requests.
func (h *Handler) HandleRetract(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	voterID := middleware.GetUserID(ctx)
	if voterID.IsNil() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}

	factID, err := id.ParseFactID(chi.URLParam(r, "factID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.service.Retract(ctx, voterID, factID); err != nil {
		h.logger.ErrorContext(ctx, "vote retraction failed",
			"request_id", requestID,
			"voter_id", voterID,
			"fact_id", factID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &RetractResponse{Status: "retracted"})
}
