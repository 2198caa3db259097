// Package ai holds the recommendation surface. The scoring model is not
// built yet; the API shape is settled so callers can integrate early.
package ai

import (
	"context"

	"github.com/google/uuid"
)

type Recommendation struct {
	ProductID uuid.UUID
	Score     float32
	Reason    string
}

// GetRecommendations returns product suggestions for a user and search
// query. TODO: back this with the purchase-history model once the orders
// table lands.
func GetRecommendations(_ context.Context, _ *uuid.UUID, _ string, _ int) []Recommendation {
	return nil
}
