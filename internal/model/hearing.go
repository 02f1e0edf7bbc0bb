package model

import (
	"database/sql"
)

// adequateNoticeDays is the minimum announcement-to-hearing gap considered
// adequate notice.
const adequateNoticeDays = 5

// HearingRecord is one scheduled hearing for a bill referral. AdequateNotice
// is tri-state: nil means the notice gap is unknown, not inadequate.
type HearingRecord struct {
	RecordID             string `json:"recordId"`
	ArtifactID           string `json:"artifactId"`
	HearingID            string `json:"hearingId"`
	HearingDate          string `json:"hearingDate"`
	HearingURL           string `json:"hearingUrl,omitempty"`
	AnnouncementDate     string `json:"announcementDate,omitempty"`
	ScheduledHearingDate string `json:"scheduledHearingDate,omitempty"`
	NoticeGapDays        *int   `json:"noticeGapDays"`
	AdequateNotice       *bool  `json:"adequateNotice"`
}

// HearingRow mirrors one hearing_records row before mapping.
type HearingRow struct {
	RecordID             string
	ArtifactID           string
	HearingID            sql.NullString
	HearingDate          sql.NullString
	HearingURL           sql.NullString
	AnnouncementDate     sql.NullString
	ScheduledHearingDate sql.NullString
	NoticeGapDays        sql.NullInt64
}

// Record maps the raw row into a HearingRecord, deriving the adequate-notice
// flag from the gap when it is present.
func (r HearingRow) Record() HearingRecord {
	rec := HearingRecord{
		RecordID:             r.RecordID,
		ArtifactID:           r.ArtifactID,
		HearingID:            r.HearingID.String,
		HearingDate:          r.HearingDate.String,
		HearingURL:           r.HearingURL.String,
		AnnouncementDate:     r.AnnouncementDate.String,
		ScheduledHearingDate: r.ScheduledHearingDate.String,
	}
	if r.NoticeGapDays.Valid {
		gap := int(r.NoticeGapDays.Int64)
		adequate := gap >= adequateNoticeDays
		rec.NoticeGapDays = &gap
		rec.AdequateNotice = &adequate
	}
	return rec
}
