package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Veselin15/FactNode/internal/notification"
	"github.com/Veselin15/FactNode/internal/platform/middleware"
	id "github.com/Veselin15/FactNode/pkg/domain"
	dErrors "github.com/Veselin15/FactNode/pkg/domain-errors"
	"github.com/Veselin15/FactNode/pkg/platform/httputil"
)

// Store defines the inbox operations the handler needs.
type Store interface {
	ListByRecipient(ctx context.Context, recipientID id.UserID) ([]notification.Notification, error)
	MarkRead(ctx context.Context, recipientID id.UserID, notificationID id.NotificationID) error
}

// Handler serves the authenticated user's notification inbox.
type Handler struct {
	store  Store
	logger *slog.Logger
}

// New constructs a notification handler.
func New(store Store, logger *slog.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Register mounts inbox endpoints on the router. Both require auth;
// the recipient is always the caller.
func (h *Handler) Register(r chi.Router) {
	r.Get("/notifications", h.HandleList)
	r.Post("/notifications/{notificationID}/read", h.HandleMarkRead)
}

// NotificationResponse is one inbox item.
type NotificationResponse struct {
	ID        string                  `json:"id"`
	Type      string                  `json:"type"`
	Title     string                  `json:"title"`
	Message   string                  `json:"message"`
	Target    *notification.TargetRef `json:"target,omitempty"`
	Read      bool                    `json:"read"`
	CreatedAt time.Time               `json:"created_at"`
}

// HandleList handles GET /notifications requests.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	recipientID := middleware.GetUserID(ctx)
	if recipientID.IsNil() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}

	list, err := h.store.ListByRecipient(ctx, recipientID)
	if err != nil {
		h.logger.ErrorContext(ctx, "notification list failed",
			"recipient_id", recipientID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	resp := make([]NotificationResponse, 0, len(list))
	for _, n := range list {
		resp = append(resp, NotificationResponse{
			ID:        n.ID.String(),
			Type:      string(n.Type),
			Title:     n.Title,
			Message:   n.Message,
			Target:    n.Target,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleMarkRead handles POST /notifications/{notificationID}/read requests.
func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	recipientID := middleware.GetUserID(ctx)
	if recipientID.IsNil() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}

	notificationID, err := id.ParseNotificationID(chi.URLParam(r, "notificationID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.store.MarkRead(ctx, recipientID, notificationID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "read"})
}
