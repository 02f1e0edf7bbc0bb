package model

import (
	"database/sql"
	"encoding/json"
)

// Branch is the legislative branch an action occurred in. Upstream data may
// carry values outside the known set; those pass through for display.
type Branch string

const (
	BranchHouse    Branch = "House"
	BranchSenate   Branch = "Senate"
	BranchJoint    Branch = "Joint"
	BranchGovernor Branch = "Governor"
	BranchUnknown  Branch = "Unknown"
)

// Category classifies a timeline action. The set mirrors what the ingestion
// pipeline emits; unrecognized codes map to CategoryOther with the highest
// ordering key.
type Category string

const (
	CategoryReferral             Category = "referral-committee"
	CategoryHearingScheduled     Category = "hearing-scheduled"
	CategoryHearingRescheduled   Category = "hearing-rescheduled"
	CategoryHearingUpdated       Category = "hearing-updated"
	CategoryReading1             Category = "reading-1"
	CategoryReading2             Category = "reading-2"
	CategoryReading3             Category = "reading-3"
	CategoryCommitteePassage     Category = "committee-passage"
	CategoryCommitteeUnfavorable Category = "committee-passage-unfavorable"
	CategoryPassage              Category = "passage"
	CategoryAmendmentPassage     Category = "amendment-passage"
	CategoryDeadlineExtension    Category = "deadline-extension"
	CategoryExecutiveSignature   Category = "executive-signature"
	CategoryOther                Category = "other"
)

// TimelineAction is one discrete legislative event on a bill referral.
// Ordering is by (date ascending, category-order ascending).
type TimelineAction struct {
	ActionID      string         `json:"actionId"`
	ArtifactID    string         `json:"artifactId"`
	ActionDate    string         `json:"actionDate"`
	Branch        Branch         `json:"branch"`
	ActionType    string         `json:"actionType"`
	ActionLabel   string         `json:"actionLabel"`
	Category      Category       `json:"category"`
	CategoryOrder int            `json:"categoryOrder"`
	RawText       string         `json:"rawText"`
	ExtractedData map[string]any `json:"extractedData"`
	Confidence    float64        `json:"confidence"`
	InWindow      bool           `json:"inWindow"`
	Source        ActionSource   `json:"source"`
}

// ActionSource preserves the original source text an action was parsed from.
type ActionSource struct {
	Type       string  `json:"type"`
	RawText    string  `json:"rawText"`
	Confidence float64 `json:"confidence"`
}

// ExtractedCommittee returns the committee identifier carried in the
// action's extracted data, or "" when absent.
func (a TimelineAction) ExtractedCommittee() string {
	if v, ok := a.ExtractedData["committee_id"].(string); ok {
		return v
	}
	return ""
}

// TimelineRow mirrors one timeline_actions row before mapping.
type TimelineRow struct {
	ActionID      string
	ArtifactID    string
	ActionDate    sql.NullString
	Branch        sql.NullString
	ActionType    sql.NullString
	ActionLabel   sql.NullString
	Category      sql.NullString
	CategoryOrder sql.NullInt64
	RawText       sql.NullString
	ExtractedData sql.NullString
	Confidence    sql.NullFloat64
}

// Action maps the raw row into a TimelineAction. The extracted_data column is
// pipeline-produced JSON and is decoded permissively: any parse failure
// resolves to an empty map, never an error.
func (r TimelineRow) Action() TimelineAction {
	extracted := map[string]any{}
	if r.ExtractedData.Valid && r.ExtractedData.String != "" {
		if err := json.Unmarshal([]byte(r.ExtractedData.String), &extracted); err != nil {
			extracted = map[string]any{}
		}
	}

	branch := Branch(r.Branch.String)
	if branch == "" {
		branch = BranchUnknown
	}
	label := r.ActionLabel.String
	if label == "" {
		label = r.ActionType.String
	}
	order := int(r.CategoryOrder.Int64)
	if !r.CategoryOrder.Valid || order == 0 {
		order = 99
	}

	return TimelineAction{
		ActionID:      r.ActionID,
		ArtifactID:    r.ArtifactID,
		ActionDate:    r.ActionDate.String,
		Branch:        branch,
		ActionType:    r.ActionType.String,
		ActionLabel:   label,
		Category:      Category(r.Category.String),
		CategoryOrder: order,
		RawText:       r.RawText.String,
		ExtractedData: extracted,
		Confidence:    r.Confidence.Float64,
		Source: ActionSource{
			Type:       "timeline_action",
			RawText:    r.RawText.String,
			Confidence: r.Confidence.Float64,
		},
	}
}
