// Package history is the optional SQLite-backed audit log of id3
// invocations (spec §4.11). It is adapted from the teacher's
// pkg/metadatastore.SQLiteStore: same driver, same DSN construction with a
// busy timeout and WAL journal mode, same ping-then-init-schema sequence.
// Unlike the teacher's store, there is a single table and no retry-on-busy
// loop, since nothing in this tool writes to the database concurrently.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store records one row per successful learn or classify invocation.
type Store struct {
	db *sql.DB
}

// Open creates dbPath if needed and returns a Store backed by it. Journal
// mode is WAL and a busy timeout absorbs brief lock contention, matching
// the teacher's sqlitestore.go DSN.
func Open(dbPath string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=10000&_journal_mode=WAL&_synchronous=NORMAL", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize history schema: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) initSchema() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		command TEXT NOT NULL,
		files TEXT NOT NULL,
		num_examples INTEGER NOT NULL,
		num_attributes INTEGER NOT NULL,
		tree_nodes INTEGER,
		classified INTEGER,
		unknown_count INTEGER,
		elapsed_ms INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// LearnRun is one row recorded after a successful `l` invocation.
type LearnRun struct {
	RunID         string
	Files         string
	NumExamples   int
	NumAttributes int
	TreeNodes     int
	Elapsed       time.Duration
}

// RecordLearn appends a learn-run row.
func (s *Store) RecordLearn(r LearnRun) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO runs
			(run_id, command, files, num_examples, num_attributes, tree_nodes, elapsed_ms, created_at)
		 VALUES (?, 'learn', ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Files, r.NumExamples, r.NumAttributes, r.TreeNodes,
		r.Elapsed.Milliseconds(), time.Now().UTC(),
	)
	return err
}

// ClassifyRun is one row recorded after a successful `c` invocation.
type ClassifyRun struct {
	RunID         string
	Files         string
	NumExamples   int
	NumAttributes int
	Classified    int
	UnknownCount  int
	Elapsed       time.Duration
}

// RecordClassify appends a classify-run row.
func (s *Store) RecordClassify(r ClassifyRun) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO runs
			(run_id, command, files, num_examples, num_attributes, classified, unknown_count, elapsed_ms, created_at)
		 VALUES (?, 'classify', ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Files, r.NumExamples, r.NumAttributes, r.Classified, r.UnknownCount,
		r.Elapsed.Milliseconds(), time.Now().UTC(),
	)
	return err
}
