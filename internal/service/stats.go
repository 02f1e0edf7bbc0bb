package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhalloran/billarchive/internal/model"
)

// StatsService calculates archive-wide totals
type StatsService struct {
	db *sql.DB
}

// NewStatsService creates a new StatsService
func NewStatsService(db *sql.DB) *StatsService {
	return &StatsService{db: db}
}

// ArchiveStats represents archive-wide totals and the compliance split
type ArchiveStats struct {
	TotalBills     int `json:"totalBills"`
	TotalActions   int `json:"totalActions"`
	TotalHearings  int `json:"totalHearings"`
	TotalDocuments int `json:"totalDocuments"`
	Compliant      int `json:"compliant"`
	NonCompliant   int `json:"nonCompliant"`
}

// Summary counts the archive's bills, actions, hearings, and documents, and
// splits bills by compliance state.
func (s *StatsService) Summary(ctx context.Context) (*ArchiveStats, error) {
	stats := &ArchiveStats{}

	counts := []struct {
		query string
		dest  *int
	}{
		{"SELECT COUNT(*) FROM bills", &stats.TotalBills},
		{"SELECT COUNT(*) FROM timeline_actions", &stats.TotalActions},
		{"SELECT COUNT(*) FROM hearing_records", &stats.TotalHearings},
		{"SELECT COUNT(*) FROM documents", &stats.TotalDocuments},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("failed to count archive rows: %w", err)
		}
	}

	stateQuery := `SELECT COUNT(*) FROM bills WHERE computed_state = ?`
	if err := s.db.QueryRowContext(ctx, stateQuery, string(model.StateCompliant)).Scan(&stats.Compliant); err != nil {
		return nil, fmt.Errorf("failed to count compliant bills: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, stateQuery, string(model.StateNonCompliant)).Scan(&stats.NonCompliant); err != nil {
		return nil, fmt.Errorf("failed to count non-compliant bills: %w", err)
	}

	return stats, nil
}
