package model

// SearchResult is one ranked hit in a query response. Snippet is empty in
// listing mode and carries match markers in full-text mode.
type SearchResult struct {
	ArtifactID    string           `json:"artifactId"`
	BillID        string           `json:"billId"`
	BillLabel     string           `json:"billLabel"`
	Title         string           `json:"title"`
	CommitteeID   string           `json:"committeeId"`
	Session       string           `json:"session"`
	ComputedState ComplianceState  `json:"computedState,omitempty"`
	Snippet       string           `json:"snippet,omitempty"`
	Companions    []CompanionEntry `json:"companions"`
}

// CompanionEntry is a sibling committee referral of the same bill: same bill
// id, different artifact id.
type CompanionEntry struct {
	ArtifactID    string          `json:"artifactId"`
	CommitteeID   string          `json:"committeeId"`
	ComputedState ComplianceState `json:"computedState,omitempty"`
}

// SearchResponse is one page of search results.
type SearchResponse struct {
	Query      string         `json:"query"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
	Results    []SearchResult `json:"results"`
}

// CommitteeCount is one committee with the number of referrals it holds.
type CommitteeCount struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}
