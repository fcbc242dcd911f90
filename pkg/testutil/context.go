package testutil

import (
	"context"
	"net/http"

	"github.com/Veselin15/FactNode/internal/platform/middleware"
	id "github.com/Veselin15/FactNode/pkg/domain"
)

// WithUserID puts an authenticated user on the request context, the way
// the auth middleware would after validating a token.
func WithUserID(req *http.Request, userID id.UserID) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.ContextKeyUserID, userID)
	return req.WithContext(ctx)
}
