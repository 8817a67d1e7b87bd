package models

// MatchSearch holds the parameters of a match search request.
type MatchSearch struct {
	Skill  string
	Radius int
}

// MatchSearchResponse acknowledges a match search.
type MatchSearchResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
