package store

// schemaSQL is the DDL for run persistence. Keys and canonical terms
// are stored as-is; group token sequences and accumulation lists are
// stored as JSON for downstream consumers.
const schemaSQL = `
-- One row per finished extraction run
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    input_path TEXT,
    pattern_style TEXT NOT NULL,
    chain_style TEXT NOT NULL,
    requirement_count INTEGER NOT NULL,
    relationship_count INTEGER NOT NULL,
    chain_count INTEGER NOT NULL
);

-- Relationships found during a run, in ingestion order
CREATE TABLE IF NOT EXISTS relationships (
    id INTEGER PRIMARY KEY,
    run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    key TEXT NOT NULL,
    subject TEXT NOT NULL,
    predicate TEXT NOT NULL,
    object TEXT NOT NULL,
    requirements JSON NOT NULL,
    priorities JSON NOT NULL,
    templates JSON NOT NULL
);

-- Chains enumerated from the run's network, in discovery order
CREATE TABLE IF NOT EXISTS chains (
    id INTEGER PRIMARY KEY,
    run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    length INTEGER NOT NULL,
    keys JSON NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_relationships_run ON relationships(run_id);
CREATE INDEX IF NOT EXISTS idx_chains_run ON chains(run_id);
`
