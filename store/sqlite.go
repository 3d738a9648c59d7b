package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/reqchain/reqchain/nlp"
)

// DB persists finished extraction runs. Persistence is optional: the
// in-memory Store is the source of truth for a batch, the database
// only records results for later inspection.
type DB struct {
	db *sql.DB
}

// Open opens (or creates) the run database at the given path and
// initialises the schema.
func Open(path string) (*DB, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("store: creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=30000")
	if err != nil {
		return nil, fmt.Errorf("store: opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: pinging database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: creating schema: %w", err)
	}

	d := &DB{db: db}
	if err := d.migrate(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: running migrations: %w", err)
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// RunMeta describes one extraction run.
type RunMeta struct {
	InputPath        string
	PatternStyle     string
	ChainStyle       string
	RequirementCount int
}

// SaveRun writes a finished run with its relationships and chains in
// one transaction. Returns the generated run identifier.
func (d *DB) SaveRun(ctx context.Context, meta RunMeta, rels []*Relationship, chains [][]string) (string, error) {
	runID := uuid.NewString()

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("store: begin run transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, input_path, pattern_style, chain_style, requirement_count, relationship_count, chain_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID, meta.InputPath, meta.PatternStyle, meta.ChainStyle,
		meta.RequirementCount, len(rels), len(chains),
	); err != nil {
		return "", fmt.Errorf("store: inserting run: %w", err)
	}

	for i, rel := range rels {
		reqs, _ := json.Marshal(rel.Requirements)
		prios, _ := json.Marshal(rel.Priorities)
		tpls, _ := json.Marshal(rel.Templates)
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO relationships (run_id, position, key, subject, predicate, object, requirements, priorities, templates)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, i, rel.Key,
			strings.Join(nlp.Texts(rel.Groups[0]), " "),
			strings.Join(nlp.Texts(rel.Groups[1]), " "),
			strings.Join(nlp.Texts(rel.Groups[2]), " "),
			string(reqs), string(prios), string(tpls),
		); err != nil {
			return "", fmt.Errorf("store: inserting relationship %d: %w", i, err)
		}
	}

	for i, chain := range chains {
		keys, _ := json.Marshal(chain)
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO chains (run_id, position, length, keys)
			VALUES (?, ?, ?, ?)`,
			runID, i, len(chain), string(keys),
		); err != nil {
			return "", fmt.Errorf("store: inserting chain %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("store: committing run: %w", err)
	}
	return runID, nil
}

// RunSummary is one row of the runs table.
type RunSummary struct {
	ID                string
	CreatedAt         string
	InputPath         string
	PatternStyle      string
	ChainStyle        string
	RequirementCount  int
	RelationshipCount int
	ChainCount        int
}

// ListRuns returns all persisted runs, newest first.
func (d *DB) ListRuns(ctx context.Context) ([]RunSummary, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT id, created_at, input_path, pattern_style, chain_style,
		       requirement_count, relationship_count, chain_count
		FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("store: listing runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.InputPath, &r.PatternStyle,
			&r.ChainStyle, &r.RequirementCount, &r.RelationshipCount, &r.ChainCount); err != nil {
			return nil, fmt.Errorf("store: scanning run row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
