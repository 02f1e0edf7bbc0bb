package model

import (
	"database/sql"
)

// ComplianceState is the externally computed classification of a bill
// referral. The ingestion pipeline produces it; this service only reads it.
// An empty value means the pipeline has not classified the referral.
type ComplianceState string

const (
	StateCompliant    ComplianceState = "Compliant"
	StateNonCompliant ComplianceState = "Non-Compliant"
	StatePending      ComplianceState = "Pending"
	StateExempt       ComplianceState = "Exempt"
)

// BillSummary is one committee-referral instance of a piece of legislation.
// The artifact id is unique per referral; the bill id is shared across all
// referrals of the same bill.
type BillSummary struct {
	ArtifactID        string          `json:"artifactId"`
	BillID            string          `json:"billId"`
	BillLabel         string          `json:"billLabel"`
	Session           string          `json:"session"`
	CommitteeID       string          `json:"committeeId"`
	Title             string          `json:"title"`
	BillURL           string          `json:"billUrl,omitempty"`
	ComputedState     ComplianceState `json:"computedState,omitempty"`
	ComputedReason    string          `json:"computedReason,omitempty"`
	EffectiveDeadline string          `json:"effectiveDeadline,omitempty"`
	ReportedOut       bool            `json:"reportedOut"`
	ReportedDate      string          `json:"reportedDate,omitempty"`
}

// BillDetail is the full single-bill view: the summary plus its timeline,
// hearings, resolved documents, and related referrals.
type BillDetail struct {
	BillSummary
	Deadline60 string           `json:"deadline60,omitempty"`
	Deadline90 string           `json:"deadline90,omitempty"`
	CreatedAt  string           `json:"createdAt,omitempty"`
	Timeline   []TimelineAction `json:"timeline"`
	Hearings   []HearingRecord  `json:"hearings"`
	Documents  []BillDocument   `json:"documents"`
	Related    []BillSummary    `json:"related"`
}

// BillRow mirrors one bills-table row before null coalescing. All optional
// columns stay nullable here; Summary owns the default policy so downstream
// code never re-implements it.
type BillRow struct {
	ArtifactID        string
	BillID            string
	BillLabel         sql.NullString
	Session           sql.NullString
	CommitteeID       sql.NullString
	Title             sql.NullString
	BillURL           sql.NullString
	CreatedAt         sql.NullString
	ComputedState     sql.NullString
	ComputedReason    sql.NullString
	Deadline60        sql.NullString
	Deadline90        sql.NullString
	EffectiveDeadline sql.NullString
	ReportedOut       sql.NullInt64
	ReportedDate      sql.NullString
}

// Summary maps the raw row into a BillSummary. A missing label falls back to
// the bill id; missing titles become empty strings so display logic stays
// total.
func (r BillRow) Summary() BillSummary {
	label := r.BillLabel.String
	if label == "" {
		label = r.BillID
	}
	return BillSummary{
		ArtifactID:        r.ArtifactID,
		BillID:            r.BillID,
		BillLabel:         label,
		Session:           r.Session.String,
		CommitteeID:       r.CommitteeID.String,
		Title:             r.Title.String,
		BillURL:           r.BillURL.String,
		ComputedState:     ComplianceState(r.ComputedState.String),
		ComputedReason:    r.ComputedReason.String,
		EffectiveDeadline: r.EffectiveDeadline.String,
		ReportedOut:       r.ReportedOut.Int64 != 0,
		ReportedDate:      r.ReportedDate.String,
	}
}

// Detail maps the raw row into a BillDetail shell; the caller attaches the
// timeline, hearings, documents, and related referrals.
func (r BillRow) Detail() BillDetail {
	return BillDetail{
		BillSummary: r.Summary(),
		Deadline60:  r.Deadline60.String,
		Deadline90:  r.Deadline90.String,
		CreatedAt:   r.CreatedAt.String,
	}
}
