package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jhalloran/billarchive/internal/model"
	"github.com/jhalloran/billarchive/internal/service"
)

// relatedBillLimit caps the related-referrals list on a bill detail.
const relatedBillLimit = 5

const billColumns = `artifact_id, bill_id, bill_label, session, committee_id, title, bill_url,
       created_at, computed_state, computed_reason,
       deadline_60, deadline_90, effective_deadline,
       reported_out, reported_date`

// BillStore handles archive reads for bill referrals and their attachments
type BillStore struct {
	db *sql.DB
}

// NewBillStore creates a new BillStore
func NewBillStore(db *sql.DB) *BillStore {
	return &BillStore{db: db}
}

func scanBillRow(row *sql.Row) (*model.BillRow, error) {
	var r model.BillRow
	err := row.Scan(
		&r.ArtifactID,
		&r.BillID,
		&r.BillLabel,
		&r.Session,
		&r.CommitteeID,
		&r.Title,
		&r.BillURL,
		&r.CreatedAt,
		&r.ComputedState,
		&r.ComputedReason,
		&r.Deadline60,
		&r.Deadline90,
		&r.EffectiveDeadline,
		&r.ReportedOut,
		&r.ReportedDate,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan bill: %w", err)
	}
	return &r, nil
}

// GetDetail retrieves the full detail for a bill by its bill id or label.
// Returns (nil, nil) when no referral matches.
func (s *BillStore) GetDetail(ctx context.Context, billID string) (*model.BillDetail, error) {
	query := fmt.Sprintf(`SELECT %s FROM bills WHERE bill_id = ? OR bill_label = ? LIMIT 1`, billColumns)
	row, err := scanBillRow(s.db.QueryRowContext(ctx, query, billID, billID))
	if err != nil || row == nil {
		return nil, err
	}

	detail := row.Detail()

	timeline, err := s.getTimeline(ctx, detail.ArtifactID)
	if err != nil {
		return nil, err
	}
	inWindow := service.CommitteeWindow(timeline, detail.CommitteeID)
	for i := range timeline {
		timeline[i].InWindow = inWindow[timeline[i].ActionID]
	}
	detail.Timeline = timeline

	hearings, err := s.getHearings(ctx, detail.ArtifactID)
	if err != nil {
		return nil, err
	}
	detail.Hearings = hearings

	docs, err := s.getDocuments(ctx, detail.ArtifactID, detail.BillID)
	if err != nil {
		return nil, err
	}
	detail.Documents = service.ResolveDocuments(docs)

	related, err := s.getRelated(ctx, detail.CommitteeID, detail.ArtifactID, relatedBillLimit)
	if err != nil {
		return nil, err
	}
	detail.Related = related

	return &detail, nil
}

// GetDetailByArtifact resolves an artifact id to its bill id and delegates
// to GetDetail. An artifact always belongs to exactly one bill id.
func (s *BillStore) GetDetailByArtifact(ctx context.Context, artifactID string) (*model.BillDetail, error) {
	var billID string
	err := s.db.QueryRowContext(ctx,
		`SELECT bill_id FROM bills WHERE artifact_id = ?`, artifactID,
	).Scan(&billID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve artifact %s: %w", artifactID, err)
	}
	return s.GetDetail(ctx, billID)
}

// getTimeline loads a referral's actions in chronological order with the
// category-order tiebreak.
func (s *BillStore) getTimeline(ctx context.Context, artifactID string) ([]model.TimelineAction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT action_id, artifact_id, action_date, branch, action_type, action_label,
		        category, category_order, raw_text, extracted_data, confidence
		 FROM timeline_actions WHERE artifact_id = ?
		 ORDER BY action_date ASC, category_order ASC`,
		artifactID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get timeline for %s: %w", artifactID, err)
	}
	defer rows.Close()

	actions := []model.TimelineAction{}
	for rows.Next() {
		var r model.TimelineRow
		err := rows.Scan(
			&r.ActionID,
			&r.ArtifactID,
			&r.ActionDate,
			&r.Branch,
			&r.ActionType,
			&r.ActionLabel,
			&r.Category,
			&r.CategoryOrder,
			&r.RawText,
			&r.ExtractedData,
			&r.Confidence,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timeline action: %w", err)
		}
		actions = append(actions, r.Action())
	}
	return actions, rows.Err()
}

func (s *BillStore) getHearings(ctx context.Context, artifactID string) ([]model.HearingRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT record_id, artifact_id, hearing_id, hearing_date, hearing_url,
		        announcement_date, scheduled_hearing_date, notice_gap_days
		 FROM hearing_records WHERE artifact_id = ?
		 ORDER BY hearing_date ASC`,
		artifactID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get hearings for %s: %w", artifactID, err)
	}
	defer rows.Close()

	hearings := []model.HearingRecord{}
	for rows.Next() {
		var r model.HearingRow
		err := rows.Scan(
			&r.RecordID,
			&r.ArtifactID,
			&r.HearingID,
			&r.HearingDate,
			&r.HearingURL,
			&r.AnnouncementDate,
			&r.ScheduledHearingDate,
			&r.NoticeGapDays,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hearing: %w", err)
		}
		hearings = append(hearings, r.Record())
	}
	return hearings, rows.Err()
}

// getDocuments fetches a bill's document rows by artifact id or bill id;
// both are searched because a document may only be tagged on one.
func (s *BillStore) getDocuments(ctx context.Context, artifactID, billID string) ([]model.BillDocument, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT document_id, artifact_id, bill_id, document_type, source_url,
		        preview, full_text, content_hash, parser_module, parser_version,
		        confidence, needs_review
		 FROM documents
		 WHERE artifact_id = ? OR bill_id = ?`,
		artifactID, billID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get documents for %s: %w", billID, err)
	}
	defer rows.Close()

	docs := []model.BillDocument{}
	for rows.Next() {
		var r model.DocumentRow
		err := rows.Scan(
			&r.DocumentID,
			&r.ArtifactID,
			&r.BillID,
			&r.DocumentType,
			&r.SourceURL,
			&r.Preview,
			&r.FullText,
			&r.ContentHash,
			&r.ParserModule,
			&r.ParserVersion,
			&r.Confidence,
			&r.NeedsReview,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, r.Document())
	}
	return docs, rows.Err()
}

// getRelated loads other referrals handled by the same committee.
func (s *BillStore) getRelated(ctx context.Context, committeeID, excludeArtifactID string, limit int) ([]model.BillSummary, error) {
	if committeeID == "" {
		return []model.BillSummary{}, nil
	}
	query := fmt.Sprintf(
		`SELECT %s FROM bills WHERE committee_id = ? AND artifact_id != ? LIMIT ?`,
		billColumns,
	)
	rows, err := s.db.QueryContext(ctx, query, committeeID, excludeArtifactID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get related bills for %s: %w", committeeID, err)
	}
	defer rows.Close()

	related := []model.BillSummary{}
	for rows.Next() {
		var r model.BillRow
		err := rows.Scan(
			&r.ArtifactID,
			&r.BillID,
			&r.BillLabel,
			&r.Session,
			&r.CommitteeID,
			&r.Title,
			&r.BillURL,
			&r.CreatedAt,
			&r.ComputedState,
			&r.ComputedReason,
			&r.Deadline60,
			&r.Deadline90,
			&r.EffectiveDeadline,
			&r.ReportedOut,
			&r.ReportedDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan related bill: %w", err)
		}
		related = append(related, r.Summary())
	}
	return related, rows.Err()
}

// AttachCompanions fills each result's companion list with the sibling
// referrals sharing its bill id.
func (s *BillStore) AttachCompanions(ctx context.Context, results []model.SearchResult) error {
	if len(results) == 0 {
		return nil
	}

	billIDs := make([]string, 0, len(results))
	seen := make(map[string]bool, len(results))
	for _, r := range results {
		if !seen[r.BillID] {
			seen[r.BillID] = true
			billIDs = append(billIDs, r.BillID)
		}
	}

	placeholders := make([]string, len(billIDs))
	args := make([]any, len(billIDs))
	for i, id := range billIDs {
		placeholders[i] = "?"
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT artifact_id, bill_id, committee_id, computed_state
		 FROM bills WHERE bill_id IN (%s)`, strings.Join(placeholders, ",")),
		args...,
	)
	if err != nil {
		return fmt.Errorf("failed to get companion referrals: %w", err)
	}
	defer rows.Close()

	byBill := make(map[string][]model.CompanionEntry)
	for rows.Next() {
		var artifactID, billID string
		var committeeID, state sql.NullString
		if err := rows.Scan(&artifactID, &billID, &committeeID, &state); err != nil {
			return fmt.Errorf("failed to scan companion referral: %w", err)
		}
		byBill[billID] = append(byBill[billID], model.CompanionEntry{
			ArtifactID:    artifactID,
			CommitteeID:   committeeID.String,
			ComputedState: model.ComplianceState(state.String),
		})
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read companion referrals: %w", err)
	}

	for i := range results {
		results[i].Companions = service.Companions(results[i].ArtifactID, byBill[results[i].BillID])
	}
	return nil
}

// ListCommittees returns the distinct committees holding referrals, ordered
// by referral count descending.
func (s *BillStore) ListCommittees(ctx context.Context) ([]model.CommitteeCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT committee_id, COUNT(*) as count
		 FROM bills WHERE committee_id IS NOT NULL AND committee_id != ''
		 GROUP BY committee_id ORDER BY count DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list committees: %w", err)
	}
	defer rows.Close()

	committees := []model.CommitteeCount{}
	for rows.Next() {
		var c model.CommitteeCount
		if err := rows.Scan(&c.ID, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan committee: %w", err)
		}
		c.Name = model.CommitteeName(c.ID)
		committees = append(committees, c)
	}
	return committees, rows.Err()
}

// ListSessions returns the distinct legislative sessions, newest first.
func (s *BillStore) ListSessions(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT session FROM bills WHERE session IS NOT NULL ORDER BY session DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	sessions := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
