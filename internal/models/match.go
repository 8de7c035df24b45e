package models

// MatchRequest asks which of CandidateTitles fit the skills described in Bio.
type MatchRequest struct {
	Bio             string   `json:"bio"`
	CandidateTitles []string `json:"candidateTitles"`
}

// MatchResult holds the matched titles, always a subset of the request's candidates.
type MatchResult struct {
	MatchedTitles []string `json:"matchedTitles"`
}

type SuggestResponse struct {
	MatchedTitles []string  `json:"matchedTitles"`
	Projects      []Project `json:"projects"`
}

type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}
