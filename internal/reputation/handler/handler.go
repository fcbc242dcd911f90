package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Veselin15/FactNode/internal/audit"
	"github.com/Veselin15/FactNode/internal/reputation"
	id "github.com/Veselin15/FactNode/pkg/domain"
	"github.com/Veselin15/FactNode/pkg/platform/httputil"
)

// ReputationReader defines the read interface for reputation totals.
type ReputationReader interface {
	Get(ctx context.Context, userID id.UserID) (reputation.Reputation, error)
}

// AuditReader defines the read interface for the audit trail.
type AuditReader interface {
	ListByUser(ctx context.Context, userID id.UserID, page int) ([]audit.Entry, error)
}

// Handler serves the reputation and audit read paths.
type Handler struct {
	reputation ReputationReader
	audits     AuditReader
	logger     *slog.Logger
}

// New constructs a reputation handler.
func New(reputation ReputationReader, audits AuditReader, logger *slog.Logger) *Handler {
	return &Handler{reputation: reputation, audits: audits, logger: logger}
}

// Register mounts reputation read endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/users/{userID}/reputation", h.HandleGetReputation)
	r.Get("/users/{userID}/audit", h.HandleListAudit)
}

// ReputationResponse is the HTTP response for GET /users/{userID}/reputation.
type ReputationResponse struct {
	UserID     string `json:"user_id"`
	Reputation int    `json:"reputation"`
	Rank       string `json:"rank"`
}

// AuditEntryResponse is one entry in the audit list response.
type AuditEntryResponse struct {
	Reason        string    `json:"reason"`
	Delta         int       `json:"delta"`
	RelatedFactID *string   `json:"related_fact_id,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// AuditListResponse is the HTTP response for GET /users/{userID}/audit.
type AuditListResponse struct {
	UserID  string               `json:"user_id"`
	Page    int                  `json:"page"`
	Entries []AuditEntryResponse `json:"entries"`
}

// HandleGetReputation handles GET /users/{userID}/reputation requests.
func (h *Handler) HandleGetReputation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := id.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	rep, err := h.reputation.Get(ctx, userID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &ReputationResponse{
		UserID:     rep.UserID.String(),
		Reputation: rep.Total,
		Rank:       rep.Rank.String(),
	})
}

// HandleListAudit handles GET /users/{userID}/audit requests.
func (h *Handler) HandleListAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := id.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	page := 0
	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}

	entries, err := h.audits.ListByUser(ctx, userID, page)
	if err != nil {
		h.logger.ErrorContext(ctx, "audit list failed",
			"user_id", userID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	resp := &AuditListResponse{
		UserID:  userID.String(),
		Page:    page,
		Entries: make([]AuditEntryResponse, 0, len(entries)),
	}
	for _, entry := range entries {
		item := AuditEntryResponse{
			Reason:    string(entry.Reason),
			Delta:     entry.Delta,
			Timestamp: entry.Timestamp,
		}
		if entry.RelatedFactID != nil {
			fid := entry.RelatedFactID.String()
			item.RelatedFactID = &fid
		}
		resp.Entries = append(resp.Entries, item)
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}
