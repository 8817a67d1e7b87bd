package services

import (
	"context"

	"github.com/AnshRaj112/courtmatch-backend/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MatchSearchStarted is the acknowledgement for every accepted match search.
var MatchSearchStarted = models.MatchSearchResponse{
	Status:  "success",
	Message: "Match search started",
}

// StartMatchSearch records the search parameters and acknowledges the request.
// No search runs yet and nothing is persisted.
// TODO: query users by skill_level once profiles carry a location for radius filtering.
func StartMatchSearch(ctx context.Context, search models.MatchSearch) (string, models.MatchSearchResponse) {
	searchID := uuid.NewString()
	zerolog.Ctx(ctx).Info().
		Str("search_id", searchID).
		Str("skill", search.Skill).
		Int("radius", search.Radius).
		Msgf("Searching for skill %s within %d miles...", search.Skill, search.Radius)
	return searchID, MatchSearchStarted
}
