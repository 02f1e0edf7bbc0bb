package store

import (
	"database/sql"
	"path/filepath"
	"testing"
)

// newTestArchive builds a small archive fixture in a temp directory: three
// referrals across two bills, a timeline, hearings, and documents for the
// first referral, and one search-index row per referral.
func newTestArchive(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "archive.db")
	db, err := sql.Open("sqlite3", "file:"+path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		t.Fatalf("open fixture db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(Schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	stmts := []struct {
		query string
		args  []any
	}{
		{
			`INSERT INTO bills (artifact_id, bill_id, bill_label, session, committee_id, title,
			 bill_url, created_at, computed_state, computed_reason, deadline_60, deadline_90,
			 effective_deadline, reported_out, reported_date)
			 VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			[]any{"ART-1", "H491", "H.491", "194", "J19",
				"An Act to improve judicial administration",
				"https://example.org/H491", "2025-01-05", "Compliant",
				"Reported out before the effective deadline",
				"2025-03-11", "2025-04-10", "2025-04-10", 1, "2025-03-20"},
		},
		{
			`INSERT INTO bills (artifact_id, bill_id, bill_label, session, committee_id, title,
			 computed_state, reported_out) VALUES (?,?,?,?,?,?,?,?)`,
			[]any{"ART-2", "H491", "H.491", "194", "J26",
				"An Act to improve judicial administration", "Pending", 0},
		},
		{
			`INSERT INTO bills (artifact_id, bill_id, bill_label, session, committee_id, title,
			 computed_state, reported_out) VALUES (?,?,?,?,?,?,?,?)`,
			[]any{"ART-3", "S296", "S.296", "193", "J19",
				"An Act establishing a municipal broadband program", "Non-Compliant", 0},
		},

		{
			`INSERT INTO timeline_actions (action_id, artifact_id, action_date, branch,
			 action_type, action_label, category, category_order, raw_text, extracted_data, confidence)
			 VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
			[]any{"T1", "ART-1", "2025-01-10", "House", "REFERRED", "Referred to Committee",
				"referral-committee", 1, "Referred to the committee on the Judiciary",
				`{"committee_id":"J19"}`, 0.95},
		},
		{
			`INSERT INTO timeline_actions (action_id, artifact_id, action_date, branch,
			 action_type, action_label, category, category_order, raw_text, extracted_data, confidence)
			 VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
			[]any{"T2", "ART-1", "2025-02-01", "Joint", "HEARING_SCHEDULED", "Hearing Scheduled",
				"hearing-scheduled", 2, "Hearing scheduled for 02/01/2025", `{}`, 0.9},
		},
		{
			`INSERT INTO timeline_actions (action_id, artifact_id, action_date, branch,
			 action_type, action_label, category, category_order, raw_text, extracted_data, confidence)
			 VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
			[]any{"T3", "ART-1", "2025-03-01", "House", "REFERRED", "Referred to Committee",
				"referral-committee", 1, "Referred to the committee on Revenue",
				`{"committee_id":"J26"}`, 0.95},
		},
		{
			`INSERT INTO timeline_actions (action_id, artifact_id, action_date, branch,
			 action_type, action_label, category, category_order, raw_text, extracted_data, confidence)
			 VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
			[]any{"T4", "ART-1", "2025-03-05", "House", "READ_THIRD", "Third Reading",
				"reading-3", 7, "Read a third time", `not-json`, 0.8},
		},

		{
			`INSERT INTO hearing_records (record_id, artifact_id, hearing_id, hearing_date,
			 hearing_url, announcement_date, scheduled_hearing_date, notice_gap_days)
			 VALUES (?,?,?,?,?,?,?,?)`,
			[]any{"R1", "ART-1", "HRG-10", "2025-02-01", "https://example.org/hrg/10",
				"2025-01-25", "2025-02-01", 7},
		},
		{
			`INSERT INTO hearing_records (record_id, artifact_id, hearing_id, hearing_date,
			 notice_gap_days) VALUES (?,?,?,?,?)`,
			[]any{"R2", "ART-1", "HRG-11", "2025-02-15", nil},
		},

		{
			`INSERT INTO documents (document_id, artifact_id, bill_id, document_type, source_url,
			 preview, full_text, confidence, needs_review) VALUES (?,?,?,?,?,?,?,?,?)`,
			[]any{"D1", "ART-1", "H491", "summary", "https://example.org/docs/491-summary",
				"A readable summary of the judicial administration act.", nil, 0.9, 0},
		},
		{
			`INSERT INTO documents (document_id, artifact_id, bill_id, document_type, source_url,
			 preview, full_text, confidence, needs_review) VALUES (?,?,?,?,?,?,?,?,?)`,
			[]any{"D2", nil, "H491", "summary", "https://example.org/docs/491-summary",
				nil, `{"raw":"parsed blob"}`, 0.5, 1},
		},
		{
			`INSERT INTO documents (document_id, artifact_id, bill_id, document_type, source_url,
			 preview, full_text, confidence, needs_review) VALUES (?,?,?,?,?,?,?,?,?)`,
			[]any{"D3", nil, "H491", "votes", "https://example.org/docs/491-votes",
				nil, "Yeas 98, Nays 52, recorded vote on engrossment.", 0.8, 0},
		},
	}
	for _, s := range stmts {
		if _, err := db.Exec(s.query, s.args...); err != nil {
			t.Fatalf("seed fixture: %v", err)
		}
	}

	searchRows := []struct {
		artifactID, billID, label, title, committeeID, session, state, actionText, docText string
	}{
		{"ART-1", "H491", "H.491", "An Act to improve judicial administration",
			"J19", "194", "Compliant",
			"Referred to the committee on the Judiciary Hearing scheduled",
			"A readable summary of the judicial administration act."},
		{"ART-2", "H491", "H.491", "An Act to improve judicial administration",
			"J26", "194", "Pending", "", ""},
		{"ART-3", "S296", "S.296", "An Act establishing a municipal broadband program",
			"J19", "193", "Non-Compliant", "", ""},
	}
	for _, r := range searchRows {
		_, err := db.Exec(
			`INSERT INTO search_index (artifact_id, bill_id, bill_label, title, committee_id,
			 session, computed_state, action_text, document_text) VALUES (?,?,?,?,?,?,?,?,?)`,
			r.artifactID, r.billID, r.label, r.title, r.committeeID,
			r.session, r.state, r.actionText, r.docText,
		)
		if err != nil {
			t.Fatalf("seed search index: %v", err)
		}
	}

	return db
}
