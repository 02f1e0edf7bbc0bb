package store

import (
	"context"
	"testing"

	"github.com/jhalloran/billarchive/internal/model"
	"github.com/jhalloran/billarchive/internal/service"
)

func TestGetDetail(t *testing.T) {
	db := newTestArchive(t)
	bs := NewBillStore(db)
	ctx := context.Background()

	detail, err := bs.GetDetail(ctx, "H491")
	if err != nil {
		t.Fatalf("GetDetail: %v", err)
	}
	if detail == nil {
		t.Fatal("GetDetail returned nil for an existing bill")
	}

	if detail.ArtifactID != "ART-1" {
		t.Errorf("ArtifactID = %q, want ART-1", detail.ArtifactID)
	}
	if detail.BillLabel != "H.491" {
		t.Errorf("BillLabel = %q, want H.491", detail.BillLabel)
	}
	if detail.ComputedState != model.StateCompliant {
		t.Errorf("ComputedState = %q, want Compliant", detail.ComputedState)
	}
	if detail.Deadline60 != "2025-03-11" {
		t.Errorf("Deadline60 = %q, want 2025-03-11", detail.Deadline60)
	}
	if !detail.ReportedOut {
		t.Error("ReportedOut should be true")
	}

	// Timeline: chronological, with the J19 window marked on the first two
	// actions and the post-referral floor work unmarked.
	if len(detail.Timeline) != 4 {
		t.Fatalf("len(Timeline) = %d, want 4", len(detail.Timeline))
	}
	wantWindow := map[string]bool{"T1": true, "T2": true, "T3": false, "T4": false}
	for _, a := range detail.Timeline {
		if a.InWindow != wantWindow[a.ActionID] {
			t.Errorf("action %s InWindow = %v, want %v", a.ActionID, a.InWindow, wantWindow[a.ActionID])
		}
	}
	// Malformed extracted_data degrades to an empty map.
	last := detail.Timeline[3]
	if last.ActionID != "T4" || len(last.ExtractedData) != 0 {
		t.Errorf("T4 ExtractedData = %v, want empty map", last.ExtractedData)
	}

	// Hearings: derived notice flag is tri-state.
	if len(detail.Hearings) != 2 {
		t.Fatalf("len(Hearings) = %d, want 2", len(detail.Hearings))
	}
	if detail.Hearings[0].AdequateNotice == nil || !*detail.Hearings[0].AdequateNotice {
		t.Error("R1 should have adequate notice (gap 7)")
	}
	if detail.Hearings[1].AdequateNotice != nil {
		t.Error("R2 notice gap is unknown, flag should be nil")
	}

	// Documents: the artifact-linked and bill-linked copies of the summary
	// collapse to the one with the readable preview.
	if len(detail.Documents) != 2 {
		t.Fatalf("len(Documents) = %d, want 2 after dedup", len(detail.Documents))
	}
	if detail.Documents[0].DocumentID != "D1" {
		t.Errorf("first document = %q, want D1 (preview beats blob)", detail.Documents[0].DocumentID)
	}

	// Related: other J19 referrals, excluding this artifact.
	if len(detail.Related) != 1 || detail.Related[0].ArtifactID != "ART-3" {
		t.Errorf("Related = %v, want just ART-3", detail.Related)
	}
}

func TestGetDetailByLabel(t *testing.T) {
	db := newTestArchive(t)
	bs := NewBillStore(db)

	detail, err := bs.GetDetail(context.Background(), "H.491")
	if err != nil {
		t.Fatalf("GetDetail: %v", err)
	}
	if detail == nil || detail.BillID != "H491" {
		t.Errorf("lookup by label failed: %v", detail)
	}
}

func TestGetDetailNotFound(t *testing.T) {
	db := newTestArchive(t)
	bs := NewBillStore(db)

	detail, err := bs.GetDetail(context.Background(), "X999")
	if err != nil {
		t.Fatalf("GetDetail: %v", err)
	}
	if detail != nil {
		t.Errorf("GetDetail = %v, want nil miss", detail)
	}
}

func TestGetDetailByArtifact(t *testing.T) {
	db := newTestArchive(t)
	bs := NewBillStore(db)
	ctx := context.Background()

	detail, err := bs.GetDetailByArtifact(ctx, "ART-2")
	if err != nil {
		t.Fatalf("GetDetailByArtifact: %v", err)
	}
	if detail == nil {
		t.Fatal("GetDetailByArtifact returned nil for an existing artifact")
	}
	if detail.BillID != "H491" {
		t.Errorf("BillID = %q, want H491", detail.BillID)
	}

	missing, err := bs.GetDetailByArtifact(ctx, "ART-999")
	if err != nil {
		t.Fatalf("GetDetailByArtifact: %v", err)
	}
	if missing != nil {
		t.Errorf("GetDetailByArtifact = %v, want nil miss", missing)
	}
}

func TestAttachCompanions(t *testing.T) {
	db := newTestArchive(t)
	bs := NewBillStore(db)

	results := []model.SearchResult{
		{ArtifactID: "ART-1", BillID: "H491"},
		{ArtifactID: "ART-3", BillID: "S296"},
	}
	if err := bs.AttachCompanions(context.Background(), results); err != nil {
		t.Fatalf("AttachCompanions: %v", err)
	}

	if len(results[0].Companions) != 1 {
		t.Fatalf("ART-1 companions = %v, want just ART-2", results[0].Companions)
	}
	c := results[0].Companions[0]
	if c.ArtifactID != "ART-2" || c.CommitteeID != "J26" || c.ComputedState != model.StatePending {
		t.Errorf("companion = %+v, want ART-2/J26/Pending", c)
	}

	if len(results[1].Companions) != 0 {
		t.Errorf("S296 has no siblings, companions = %v", results[1].Companions)
	}
}

func TestListCommittees(t *testing.T) {
	db := newTestArchive(t)
	bs := NewBillStore(db)

	committees, err := bs.ListCommittees(context.Background())
	if err != nil {
		t.Fatalf("ListCommittees: %v", err)
	}
	if len(committees) != 2 {
		t.Fatalf("len = %d, want 2", len(committees))
	}
	if committees[0].ID != "J19" || committees[0].Count != 2 {
		t.Errorf("first committee = %+v, want J19 with count 2", committees[0])
	}
	if committees[0].Name != "Joint Committee on the Judiciary" {
		t.Errorf("Name = %q, want display name", committees[0].Name)
	}
}

func TestListSessions(t *testing.T) {
	db := newTestArchive(t)
	bs := NewBillStore(db)

	sessions, err := bs.ListSessions(context.Background())
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	want := []string{"194", "193"}
	if len(sessions) != 2 || sessions[0] != want[0] || sessions[1] != want[1] {
		t.Errorf("sessions = %v, want %v", sessions, want)
	}
}

func TestStatsSummary(t *testing.T) {
	db := newTestArchive(t)
	stats, err := service.NewStatsService(db).Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}

	if stats.TotalBills != 3 {
		t.Errorf("TotalBills = %d, want 3", stats.TotalBills)
	}
	if stats.TotalActions != 4 {
		t.Errorf("TotalActions = %d, want 4", stats.TotalActions)
	}
	if stats.TotalHearings != 2 {
		t.Errorf("TotalHearings = %d, want 2", stats.TotalHearings)
	}
	if stats.TotalDocuments != 3 {
		t.Errorf("TotalDocuments = %d, want 3", stats.TotalDocuments)
	}
	if stats.Compliant != 1 || stats.NonCompliant != 1 {
		t.Errorf("compliance split = %d/%d, want 1/1", stats.Compliant, stats.NonCompliant)
	}
}
