package model

import (
	"database/sql"
)

// DocumentTypeLabels resolves known document type codes to display labels.
// Unknown codes pass through unchanged.
var DocumentTypeLabels = map[string]string{
	"summary": "Bill Summary",
	"votes":   "Vote Record",
}

// BillDocument is one archived document associated with a bill. It may be
// linked by artifact id, by bill id, or both.
type BillDocument struct {
	DocumentID        string  `json:"documentId"`
	ArtifactID        string  `json:"artifactId,omitempty"`
	BillID            string  `json:"billId,omitempty"`
	DocumentType      string  `json:"documentType"`
	DocumentTypeLabel string  `json:"documentTypeLabel"`
	SourceURL         string  `json:"sourceUrl,omitempty"`
	Preview           string  `json:"preview,omitempty"`
	FullText          string  `json:"fullText,omitempty"`
	ContentHash       string  `json:"contentHash,omitempty"`
	ParserModule      string  `json:"parserModule,omitempty"`
	ParserVersion     string  `json:"parserVersion,omitempty"`
	Confidence        float64 `json:"confidence"`
	NeedsReview       bool    `json:"needsReview"`
}

// DedupKey identifies the physical document: the source URL when present,
// else the document id. Rows from the artifact and bill indexes that point
// at the same document collapse under this key.
func (d BillDocument) DedupKey() string {
	if d.SourceURL != "" {
		return d.SourceURL
	}
	return d.DocumentID
}

// DocumentRow mirrors one documents-table row before mapping.
type DocumentRow struct {
	DocumentID    string
	ArtifactID    sql.NullString
	BillID        sql.NullString
	DocumentType  sql.NullString
	SourceURL     sql.NullString
	Preview       sql.NullString
	FullText      sql.NullString
	ContentHash   sql.NullString
	ParserModule  sql.NullString
	ParserVersion sql.NullString
	Confidence    sql.NullFloat64
	NeedsReview   sql.NullInt64
}

// Document maps the raw row into a BillDocument. Missing type codes default
// to "other".
func (r DocumentRow) Document() BillDocument {
	docType := r.DocumentType.String
	if docType == "" {
		docType = "other"
	}
	label := DocumentTypeLabels[docType]
	if label == "" {
		label = docType
	}
	return BillDocument{
		DocumentID:        r.DocumentID,
		ArtifactID:        r.ArtifactID.String,
		BillID:            r.BillID.String,
		DocumentType:      docType,
		DocumentTypeLabel: label,
		SourceURL:         r.SourceURL.String,
		Preview:           r.Preview.String,
		FullText:          r.FullText.String,
		ContentHash:       r.ContentHash.String,
		ParserModule:      r.ParserModule.String,
		ParserVersion:     r.ParserVersion.String,
		Confidence:        r.Confidence.Float64,
		NeedsReview:       r.NeedsReview.Int64 != 0,
	}
}
