package store

// Schema is the layout of the archive file the ingestion pipeline exports.
// It is documented here for reference and used by tests to build fixture
// archives; the service itself opens the file read-only and never runs DDL.
const Schema = `
CREATE TABLE IF NOT EXISTS bills (
    artifact_id     TEXT PRIMARY KEY,
    bill_id         TEXT NOT NULL,
    bill_label      TEXT,
    session         TEXT,
    committee_id    TEXT,
    title           TEXT,
    bill_url        TEXT,
    created_at      TEXT,
    computed_state  TEXT,
    computed_reason TEXT,
    deadline_60     TEXT,
    deadline_90     TEXT,
    effective_deadline TEXT,
    reported_out    INTEGER,
    reported_date   TEXT
);

CREATE TABLE IF NOT EXISTS timeline_actions (
    action_id       TEXT PRIMARY KEY,
    artifact_id     TEXT,
    action_date     TEXT,
    branch          TEXT,
    action_type     TEXT,
    action_label    TEXT,
    category        TEXT,
    category_order  INTEGER,
    raw_text        TEXT,
    extracted_data  TEXT,
    confidence      REAL
);

CREATE TABLE IF NOT EXISTS hearing_records (
    record_id               TEXT PRIMARY KEY,
    artifact_id             TEXT,
    hearing_id              TEXT,
    hearing_date            TEXT,
    hearing_url             TEXT,
    announcement_date       TEXT,
    scheduled_hearing_date  TEXT,
    notice_gap_days         INTEGER
);

CREATE TABLE IF NOT EXISTS documents (
    document_id     TEXT PRIMARY KEY,
    artifact_id     TEXT,
    bill_id         TEXT,
    document_type   TEXT,
    source_url      TEXT,
    preview         TEXT,
    full_text       TEXT,
    content_hash    TEXT,
    parser_module   TEXT,
    parser_version  TEXT,
    confidence      REAL,
    needs_review    INTEGER
);

CREATE VIRTUAL TABLE IF NOT EXISTS search_index USING fts5(
    artifact_id UNINDEXED,
    bill_id,
    bill_label,
    title,
    committee_id,
    session UNINDEXED,
    computed_state UNINDEXED,
    action_text,
    document_text,
    tokenize="unicode61 remove_diacritics 1"
);

CREATE INDEX IF NOT EXISTS idx_bills_bill_id ON bills(bill_id);
CREATE INDEX IF NOT EXISTS idx_bills_committee ON bills(committee_id);
CREATE INDEX IF NOT EXISTS idx_ta_artifact ON timeline_actions(artifact_id);
CREATE INDEX IF NOT EXISTS idx_hr_artifact ON hearing_records(artifact_id);
CREATE INDEX IF NOT EXISTS idx_docs_artifact ON documents(artifact_id);
CREATE INDEX IF NOT EXISTS idx_docs_bill ON documents(bill_id);
`
