package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"facpoints/scoring"
	"facpoints/survey"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS faculty (
	key TEXT PRIMARY KEY,
	email TEXT NOT NULL,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	display_name TEXT NOT NULL,
	has_incomplete INTEGER NOT NULL DEFAULT 0,
	total_points INTEGER NOT NULL DEFAULT 0,
	record_json TEXT NOT NULL,
	updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS import_batches (
	id TEXT PRIMARY KEY,
	source_file TEXT NOT NULL,
	rows_read INTEGER NOT NULL,
	rows_parsed INTEGER NOT NULL,
	rows_skipped INTEGER NOT NULL,
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS scoring_rules (
	key TEXT PRIMARY KEY,
	base_points INTEGER NOT NULL,
	modifier TEXT NOT NULL,
	max_count INTEGER NOT NULL DEFAULT 0,
	max_points INTEGER NOT NULL DEFAULT 0
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

const upsertFacultyStmt = `
INSERT INTO faculty (key, email, first_name, last_name, display_name, has_incomplete, total_points, record_json, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(key) DO UPDATE SET
	email = excluded.email,
	first_name = excluded.first_name,
	last_name = excluded.last_name,
	display_name = excluded.display_name,
	has_incomplete = excluded.has_incomplete,
	total_points = excluded.total_points,
	record_json = excluded.record_json,
	updated_at = excluded.updated_at;`

// UpsertFaculty writes one aggregated record, replacing any existing row for
// the same key. The full record is stored as a JSON document; the scalar
// columns exist for listing and sorting.
func (s *SQLiteStore) UpsertFaculty(key string, record *survey.FacultyRecord) error {
	if key == "" {
		return fmt.Errorf("faculty key must not be empty")
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode faculty record %s: %w", key, err)
	}

	_, err = s.db.Exec(
		upsertFacultyStmt,
		key,
		record.Email,
		record.FirstName,
		record.LastName,
		record.DisplayName,
		boolToInt(record.HasIncomplete),
		record.Totals[survey.TotalKey],
		string(recordJSON),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upsert faculty %s: %w", key, err)
	}
	return nil
}

// UpsertAllFaculty writes every record of an aggregation run in one
// transaction and returns the number of rows written.
func (s *SQLiteStore) UpsertAllFaculty(faculty map[string]*survey.FacultyRecord) (int, error) {
	if len(faculty) == 0 {
		return 0, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(upsertFacultyStmt)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("prepare upsert statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	written := 0
	for key, record := range faculty {
		recordJSON, err := json.Marshal(record)
		if err != nil {
			_ = tx.Rollback()
			return written, fmt.Errorf("encode faculty record %s: %w", key, err)
		}

		if _, err := stmt.Exec(
			key,
			record.Email,
			record.FirstName,
			record.LastName,
			record.DisplayName,
			boolToInt(record.HasIncomplete),
			record.Totals[survey.TotalKey],
			string(recordJSON),
			now,
		); err != nil {
			_ = tx.Rollback()
			return written, fmt.Errorf("upsert faculty %s: %w", key, err)
		}
		written++
	}

	if err := tx.Commit(); err != nil {
		return written, fmt.Errorf("commit transaction: %w", err)
	}
	return written, nil
}

// GetFaculty returns one record by aggregation key.
func (s *SQLiteStore) GetFaculty(key string) (*survey.FacultyRecord, bool, error) {
	var recordJSON string
	err := s.db.QueryRow(`SELECT record_json FROM faculty WHERE key = ?;`, key).Scan(&recordJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("query faculty %s: %w", key, err)
	}

	record, err := decodeFacultyRecord(recordJSON, key)
	if err != nil {
		return nil, false, err
	}
	return record, true, nil
}

// ListFaculty loads every stored record keyed by aggregation key.
func (s *SQLiteStore) ListFaculty() (map[string]*survey.FacultyRecord, error) {
	rows, err := s.db.Query(`SELECT key, record_json FROM faculty ORDER BY last_name, first_name, key;`)
	if err != nil {
		return nil, fmt.Errorf("query faculty: %w", err)
	}
	defer rows.Close()

	faculty := make(map[string]*survey.FacultyRecord)
	for rows.Next() {
		var key, recordJSON string
		if err := rows.Scan(&key, &recordJSON); err != nil {
			return nil, fmt.Errorf("scan faculty row: %w", err)
		}
		record, err := decodeFacultyRecord(recordJSON, key)
		if err != nil {
			return nil, err
		}
		faculty[key] = record
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate faculty: %w", err)
	}
	return faculty, nil
}

// DeleteAllFaculty clears the faculty table and returns the removed count.
func (s *SQLiteStore) DeleteAllFaculty() (int64, error) {
	res, err := s.db.Exec(`DELETE FROM faculty;`)
	if err != nil {
		return 0, fmt.Errorf("delete faculty: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("read deleted row count: %w", err)
	}
	return rows, nil
}

func decodeFacultyRecord(recordJSON, key string) (*survey.FacultyRecord, error) {
	var record survey.FacultyRecord
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, fmt.Errorf("decode faculty record %s: %w", key, err)
	}
	if record.Activities == nil {
		record.Activities = survey.NewActivities()
	}
	if record.Manual == nil {
		record.Manual = survey.NewActivities()
	}
	if record.Totals == nil {
		record.Totals = make(map[string]int)
	}
	return &record, nil
}

// ImportBatch records one processed input file of an import run.
type ImportBatch struct {
	ID          string
	SourceFile  string
	RowsRead    int
	RowsParsed  int
	RowsSkipped int
}

func (s *SQLiteStore) RecordImportBatch(batch ImportBatch) error {
	if batch.ID == "" {
		return fmt.Errorf("import batch id must not be empty")
	}

	const insertStmt = `
INSERT INTO import_batches (id, source_file, rows_read, rows_parsed, rows_skipped, created_at)
VALUES (?, ?, ?, ?, ?, ?);`

	_, err := s.db.Exec(
		insertStmt,
		batch.ID,
		batch.SourceFile,
		batch.RowsRead,
		batch.RowsParsed,
		batch.RowsSkipped,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert import batch %s: %w", batch.ID, err)
	}
	return nil
}

// ListImportBatches returns batches newest first.
func (s *SQLiteStore) ListImportBatches() ([]ImportBatch, error) {
	rows, err := s.db.Query(`
SELECT id, source_file, rows_read, rows_parsed, rows_skipped
FROM import_batches
ORDER BY created_at DESC, id;`)
	if err != nil {
		return nil, fmt.Errorf("query import batches: %w", err)
	}
	defer rows.Close()

	batches := make([]ImportBatch, 0, 16)
	for rows.Next() {
		var batch ImportBatch
		if err := rows.Scan(&batch.ID, &batch.SourceFile, &batch.RowsRead, &batch.RowsParsed, &batch.RowsSkipped); err != nil {
			return nil, fmt.Errorf("scan import batch: %w", err)
		}
		batches = append(batches, batch)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate import batches: %w", err)
	}
	return batches, nil
}

// UpsertScoringRules writes rule rows, replacing existing keys.
func (s *SQLiteStore) UpsertScoringRules(rules []scoring.Rule) (int, error) {
	if len(rules) == 0 {
		return 0, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}

	const upsertStmt = `
INSERT INTO scoring_rules (key, base_points, modifier, max_count, max_points)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(key) DO UPDATE SET
	base_points = excluded.base_points,
	modifier = excluded.modifier,
	max_count = excluded.max_count,
	max_points = excluded.max_points;`

	stmt, err := tx.Prepare(upsertStmt)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("prepare upsert statement: %w", err)
	}
	defer stmt.Close()

	written := 0
	for _, rule := range rules {
		if _, err := stmt.Exec(rule.Key, rule.BasePoints, string(rule.Modifier), rule.MaxCount, rule.MaxPoints); err != nil {
			_ = tx.Rollback()
			return written, fmt.Errorf("upsert scoring rule %s: %w", rule.Key, err)
		}
		written++
	}

	if err := tx.Commit(); err != nil {
		return written, fmt.Errorf("commit transaction: %w", err)
	}
	return written, nil
}

// ScoringRules returns all stored rule rows.
func (s *SQLiteStore) ScoringRules() ([]scoring.Rule, error) {
	rows, err := s.db.Query(`SELECT key, base_points, modifier, max_count, max_points FROM scoring_rules ORDER BY key;`)
	if err != nil {
		return nil, fmt.Errorf("query scoring rules: %w", err)
	}
	defer rows.Close()

	rules := make([]scoring.Rule, 0, 128)
	for rows.Next() {
		var (
			rule     scoring.Rule
			modifier string
		)
		if err := rows.Scan(&rule.Key, &rule.BasePoints, &modifier, &rule.MaxCount, &rule.MaxPoints); err != nil {
			return nil, fmt.Errorf("scan scoring rule: %w", err)
		}
		rule.Modifier = scoring.Modifier(modifier)
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scoring rules: %w", err)
	}
	return rules, nil
}

// ScoringSource loads the stored rule rows as a scoring source. It fails
// when no rules are stored; callers seed the table first.
func (s *SQLiteStore) ScoringSource() (scoring.Source, error) {
	rules, err := s.ScoringRules()
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("no scoring rules stored; seed them first (facpoints recalc --seed-rules)")
	}
	return scoring.NewStaticSourceFromRules(rules), nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
