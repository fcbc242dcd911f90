package handler

import (
	"github.com/Veselin15/FactNode/internal/vote/models"
	dErrors "github.com/Veselin15/FactNode/pkg/domain-errors"
)

// CastRequest is the HTTP request body for POST /facts/{factID}/vote.
type CastRequest struct {
	Direction string `json:"direction"`

	// Parsed values (populated by Validate)
	parsedDirection models.Direction
}

// Validate validates and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *CastRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	direction, err := models.ParseDirection(r.Direction)
	if err != nil {
		return err
	}
	r.parsedDirection = direction
	return nil
}

// ParsedDirection returns the validated direction.
func (r *CastRequest) ParsedDirection() models.Direction {
	return r.parsedDirection
}
