package service

import (
	"github.com/jhalloran/billarchive/internal/model"
)

// actionTypeReferred is the action type that opens and closes a committee's
// tenure window.
const actionTypeReferred = "REFERRED"

// committeeCategories are the action categories attributable to a committee
// while it holds custody of a bill. Chamber-floor work (readings, passage,
// amendment passage, executive signature) is never attributed to a committee
// window, even when it falls inside the window's dates.
var committeeCategories = map[model.Category]bool{
	model.CategoryReferral:             true,
	model.CategoryHearingScheduled:     true,
	model.CategoryHearingRescheduled:   true,
	model.CategoryHearingUpdated:       true,
	model.CategoryDeadlineExtension:    true,
	model.CategoryCommitteePassage:     true,
	model.CategoryCommitteeUnfavorable: true,
}

// CommitteeWindow computes which actions in a chronologically ordered
// timeline belong to the given committee's tenure window, returning the set
// of their action ids.
//
// The window starts at the first REFERRED action whose extracted data names
// the target committee and ends, exclusively, at the date of the first later
// REFERRED action naming a different committee; with no such action it runs
// to the end of the sequence. Re-referrals to the same committee do not
// reset the window. An action is in-window when its extracted committee id
// equals the target regardless of date, or when its date falls in
// [start, end) and its category is committee-scoped.
func CommitteeWindow(actions []model.TimelineAction, committeeID string) map[string]bool {
	inWindow := make(map[string]bool)
	if committeeID == "" {
		return inWindow
	}

	startIdx := -1
	for i, a := range actions {
		if a.ActionType == actionTypeReferred && a.ExtractedCommittee() == committeeID {
			startIdx = i
			break
		}
	}
	if startIdx == -1 {
		return inWindow
	}

	startDate := actions[startIdx].ActionDate
	endDate := "" // empty means the window runs to the end of the sequence
	for i := startIdx + 1; i < len(actions); i++ {
		a := actions[i]
		if a.ActionType != actionTypeReferred {
			continue
		}
		if cid := a.ExtractedCommittee(); cid != "" && cid != committeeID {
			endDate = a.ActionDate
			break
		}
	}

	for _, a := range actions {
		if a.ExtractedCommittee() == committeeID {
			inWindow[a.ActionID] = true
			continue
		}
		if !committeeCategories[a.Category] {
			continue
		}
		if a.ActionDate < startDate {
			continue
		}
		if endDate != "" && a.ActionDate >= endDate {
			continue
		}
		inWindow[a.ActionID] = true
	}
	return inWindow
}
