package service

import (
	"sort"
	"strings"

	"github.com/jhalloran/billarchive/internal/model"
)

// minUsefulText is the minimum trimmed length for preview or full text to
// count toward document quality.
const minUsefulText = 10

// textQuality buckets a document by the best text it carries: a
// human-readable preview first, then full text that is not a serialized
// blob, then any full text, then everything else.
func textQuality(d model.BillDocument) int {
	if len(strings.TrimSpace(d.Preview)) > minUsefulText {
		return 0
	}
	full := strings.TrimSpace(d.FullText)
	if len(full) > minUsefulText {
		if strings.HasPrefix(full, "{") || strings.HasPrefix(full, "[") {
			return 2
		}
		return 1
	}
	return 3
}

// ResolveDocuments ranks and deduplicates the document rows associated with
// a bill. Documents are grouped by type and ordered by text quality within
// each group; the first-seen instance of a dedup key wins. The same physical
// document may be linked from both an artifact and a bare bill id, and those
// rows must collapse to the one with the best available text.
func ResolveDocuments(docs []model.BillDocument) []model.BillDocument {
	ranked := make([]model.BillDocument, len(docs))
	copy(ranked, docs)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].DocumentType != ranked[j].DocumentType {
			return ranked[i].DocumentType < ranked[j].DocumentType
		}
		return textQuality(ranked[i]) < textQuality(ranked[j])
	})

	seen := make(map[string]bool, len(ranked))
	out := make([]model.BillDocument, 0, len(ranked))
	for _, d := range ranked {
		key := d.DedupKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, d)
	}
	return out
}
