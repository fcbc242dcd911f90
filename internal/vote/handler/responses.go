package handler

import (
	"github.com/Veselin15/FactNode/internal/vote/service"
)

// CastResponse is the HTTP response for POST /facts/{factID}/vote.
type CastResponse struct {
	Direction string `json:"direction"`
	FactID    string `json:"fact_id"`
	Upvotes   int    `json:"upvotes"`
	Downvotes int    `json:"downvotes"`
}

// RetractResponse is the HTTP response for DELETE /facts/{factID}/vote.
type RetractResponse struct {
	Status string `json:"status"`
}

// FromCastResult converts a pipeline result to an HTTP response.
func FromCastResult(result service.CastResult) *CastResponse {
	return &CastResponse{
		Direction: string(result.Direction),
		FactID:    result.FactID.String(),
		Upvotes:   result.Tallies.Upvotes,
		Downvotes: result.Tallies.Downvotes,
	}
}
