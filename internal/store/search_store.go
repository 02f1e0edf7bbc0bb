package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jhalloran/billarchive/internal/model"
)

// PageSize is the fixed number of results per search page.
const PageSize = 20

// SearchParams are the query and optional filters for one search request.
// All three filters are independent and ANDed with the match predicate.
type SearchParams struct {
	Query       string
	Page        int
	CommitteeID string
	Session     string
	State       string
}

// SearchStore runs full-text and listing queries over the archive
type SearchStore struct {
	db *sql.DB
}

// NewSearchStore creates a new SearchStore
func NewSearchStore(db *sql.DB) *SearchStore {
	return &SearchStore{db: db}
}

// sanitizeQuery strips the characters that are syntactically significant to
// the FTS engine and collapses whitespace. Idempotent.
func sanitizeQuery(q string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '\'', '"', '*', '^', '(', ')':
			return ' '
		}
		return r
	}, q)
	return strings.Join(strings.Fields(cleaned), " ")
}

// buildMatchQuery renders a raw query as an FTS5 match expression: each
// whitespace-delimited term becomes an exact-prefix token. An empty or
// all-stripped input returns "" and the caller degrades to listing mode.
func buildMatchQuery(q string) string {
	sanitized := sanitizeQuery(q)
	if sanitized == "" {
		return ""
	}
	terms := strings.Fields(sanitized)
	for i, t := range terms {
		terms[i] = `"` + t + `"*`
	}
	return strings.Join(terms, " ")
}

// Search answers a paginated query. An empty (or unsanitizable) query lists
// bills ordered by bill id with no snippets; a non-empty query runs a
// relevance-ranked full-text match with highlighted snippets.
func (s *SearchStore) Search(ctx context.Context, params SearchParams) (*model.SearchResponse, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * PageSize

	matchQuery := buildMatchQuery(params.Query)

	var total int
	var results []model.SearchResult
	var err error
	if matchQuery == "" {
		total, results, err = s.listBills(ctx, params, offset)
	} else {
		total, results, err = s.matchBills(ctx, matchQuery, params, offset)
	}
	if err != nil {
		return nil, err
	}

	return &model.SearchResponse{
		Query:      params.Query,
		Total:      total,
		Page:       page,
		PageSize:   PageSize,
		TotalPages: (total + PageSize - 1) / PageSize,
		Results:    results,
	}, nil
}

// listBills is listing mode: filters only, no ranking, no snippet.
func (s *SearchStore) listBills(ctx context.Context, params SearchParams, offset int) (int, []model.SearchResult, error) {
	var whereParts []string
	var args []any
	if params.CommitteeID != "" {
		whereParts = append(whereParts, "committee_id = ?")
		args = append(args, params.CommitteeID)
	}
	if params.Session != "" {
		whereParts = append(whereParts, "session = ?")
		args = append(args, params.Session)
	}
	if params.State != "" {
		whereParts = append(whereParts, "computed_state = ?")
		args = append(args, params.State)
	}
	where := ""
	if len(whereParts) > 0 {
		where = "WHERE " + strings.Join(whereParts, " AND ")
	}

	var total int
	err := s.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM bills %s`, where), args...,
	).Scan(&total)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to count bills: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT artifact_id, bill_id, bill_label, title, committee_id, session, computed_state
		 FROM bills %s
		 ORDER BY bill_id
		 LIMIT %d OFFSET %d`,
		where, PageSize, offset,
	)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	results, err := scanSearchResults(rows, false)
	if err != nil {
		return 0, nil, err
	}
	return total, results, nil
}

// matchBills is full-text mode: relevance-ranked FTS match with snippets,
// joined back to the bill table for filters. The MATCH target and snippet's
// first argument must be the table name, not the alias.
func (s *SearchStore) matchBills(ctx context.Context, matchQuery string, params SearchParams, offset int) (int, []model.SearchResult, error) {
	var filterParts []string
	filterArgs := []any{matchQuery}
	if params.CommitteeID != "" {
		filterParts = append(filterParts, "b.committee_id = ?")
		filterArgs = append(filterArgs, params.CommitteeID)
	}
	if params.Session != "" {
		filterParts = append(filterParts, "b.session = ?")
		filterArgs = append(filterArgs, params.Session)
	}
	if params.State != "" {
		filterParts = append(filterParts, "b.computed_state = ?")
		filterArgs = append(filterArgs, params.State)
	}
	filterJoin := ""
	if len(filterParts) > 0 {
		filterJoin = "AND " + strings.Join(filterParts, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf(
		`SELECT COUNT(*)
		 FROM search_index si
		 JOIN bills b ON si.artifact_id = b.artifact_id
		 WHERE search_index MATCH ? %s`,
		filterJoin,
	)
	err := s.db.QueryRowContext(ctx, countQuery, filterArgs...).Scan(&total)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to count matches: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT b.artifact_id, b.bill_id, b.bill_label, b.title,
		        b.committee_id, b.session, b.computed_state,
		        snippet(search_index, 3, '<mark>', '</mark>', '…', 24)
		 FROM search_index si
		 JOIN bills b ON si.artifact_id = b.artifact_id
		 WHERE search_index MATCH ? %s
		 ORDER BY si.rank
		 LIMIT %d OFFSET %d`,
		filterJoin, PageSize, offset,
	)
	rows, err := s.db.QueryContext(ctx, query, filterArgs...)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to match bills: %w", err)
	}
	defer rows.Close()

	results, err := scanSearchResults(rows, true)
	if err != nil {
		return 0, nil, err
	}
	return total, results, nil
}

func scanSearchResults(rows *sql.Rows, withSnippet bool) ([]model.SearchResult, error) {
	results := []model.SearchResult{}
	for rows.Next() {
		var artifactID, billID string
		var label, title, committeeID, session, state, snippet sql.NullString
		dests := []any{&artifactID, &billID, &label, &title, &committeeID, &session, &state}
		if withSnippet {
			dests = append(dests, &snippet)
		}
		if err := rows.Scan(dests...); err != nil {
			return nil, fmt.Errorf("failed to scan search result: %w", err)
		}
		billLabel := label.String
		if billLabel == "" {
			billLabel = billID
		}
		results = append(results, model.SearchResult{
			ArtifactID:    artifactID,
			BillID:        billID,
			BillLabel:     billLabel,
			Title:         title.String,
			CommitteeID:   committeeID.String,
			Session:       session.String,
			ComputedState: model.ComplianceState(state.String),
			Snippet:       snippet.String,
			Companions:    []model.CompanionEntry{},
		})
	}
	return results, rows.Err()
}
