package handlers

import (
	"net/http"
	"strconv"

	"github.com/AnshRaj112/courtmatch-backend/internal/metrics"
	"github.com/AnshRaj112/courtmatch-backend/internal/models"
	"github.com/AnshRaj112/courtmatch-backend/internal/services"
	"github.com/AnshRaj112/courtmatch-backend/pkg/utils"
)

// SearchIDHeader carries the id under which a match search was logged.
const SearchIDHeader = "X-Search-ID"

// FindMatches handles GET /api/matches?skill=&radius=. The search itself is a
// stub: parameters are validated and logged, then acknowledged.
func (h *Handler) FindMatches(w http.ResponseWriter, r *http.Request) {
	search, verrs := parseMatchSearch(r)
	if len(verrs) > 0 {
		writeValidationError(w, verrs)
		return
	}

	searchID, resp := services.StartMatchSearch(r.Context(), search)
	metrics.MatchSearchesTotal.Inc()

	w.Header().Set(SearchIDHeader, searchID)
	writeJSON(w, http.StatusOK, resp)
}

func parseMatchSearch(r *http.Request) (models.MatchSearch, utils.ValidationErrors) {
	q := r.URL.Query()
	var (
		search models.MatchSearch
		errs   utils.ValidationErrors
	)

	if q.Has("skill") {
		search.Skill = q.Get("skill")
	} else {
		errs = append(errs, utils.MissingField("query", "skill"))
	}

	if !q.Has("radius") {
		errs = append(errs, utils.MissingField("query", "radius"))
	} else if radius, err := strconv.Atoi(q.Get("radius")); err != nil {
		errs = append(errs, utils.NotAnInteger("query", "radius"))
	} else {
		search.Radius = radius
	}

	return search, errs
}
