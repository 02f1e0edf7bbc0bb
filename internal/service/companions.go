package service

import (
	"github.com/jhalloran/billarchive/internal/model"
)

// Companions projects the sibling committee referrals of a primary result
// out of the full candidate set sharing its bill id. The primary's own
// artifact id is excluded; everything else is kept in candidate order.
func Companions(primaryArtifactID string, candidates []model.CompanionEntry) []model.CompanionEntry {
	out := make([]model.CompanionEntry, 0, len(candidates))
	for _, c := range candidates {
		if c.ArtifactID == primaryArtifactID {
			continue
		}
		out = append(out, c)
	}
	return out
}
