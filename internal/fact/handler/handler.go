package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Veselin15/FactNode/internal/fact/models"
	id "github.com/Veselin15/FactNode/pkg/domain"
	"github.com/Veselin15/FactNode/pkg/platform/httputil"
)

// TallyReader defines the read interface for cached tallies.
type TallyReader interface {
	GetTallies(ctx context.Context, factID id.FactID) (models.Tallies, error)
}

// Handler serves the fact tally read path.
type Handler struct {
	tallies TallyReader
	logger  *slog.Logger
}

// New constructs a fact handler.
func New(tallies TallyReader, logger *slog.Logger) *Handler {
	return &Handler{tallies: tallies, logger: logger}
}

// Register mounts fact read endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/facts/{factID}/tallies", h.HandleGetTallies)
}

// TalliesResponse is the HTTP response for GET /facts/{factID}/tallies.
type TalliesResponse struct {
	FactID    string `json:"fact_id"`
	Upvotes   int    `json:"upvotes"`
	Downvotes int    `json:"downvotes"`
	Score     int    `json:"score"`
}

// HandleGetTallies handles GET /facts/{factID}/tallies requests.
func (h *Handler) HandleGetTallies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	factID, err := id.ParseFactID(chi.URLParam(r, "factID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	tallies, err := h.tallies.GetTallies(ctx, factID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &TalliesResponse{
		FactID:    tallies.FactID.String(),
		Upvotes:   tallies.Upvotes,
		Downvotes: tallies.Downvotes,
		Score:     tallies.Score(),
	})
}
