package database

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"
)

// SchemaExecutor is the slice of the database handle the index manager needs.
// Narrowed to an interface so idempotency behavior is testable without a
// running postgres.
type SchemaExecutor interface {
	Exec(ctx context.Context, sql string) error
}

type GormSchemaExecutor struct {
	db *gorm.DB
}

func NewGormSchemaExecutor(db *gorm.DB) *GormSchemaExecutor {
	return &GormSchemaExecutor{db: db}
}

func (e *GormSchemaExecutor) Exec(ctx context.Context, sql string) error {
	return e.db.WithContext(ctx).Exec(sql).Error
}

type VectorIndexConfig struct {
	M              int
	EfConstruction int
}

// VectorIndexManager guarantees the pgvector extension and the HNSW index on
// a chunk table exist before anything inserts into or searches it. Every DDL
// statement is an IF NOT EXISTS form, so Ensure is safe to call any number of
// times; after the first success for a table it short-circuits in memory and
// issues no SQL at all.
type VectorIndexManager struct {
	exec SchemaExecutor
	cfg  VectorIndexConfig

	mu      sync.Mutex
	ensured map[string]struct{}
}

func NewVectorIndexManager(exec SchemaExecutor, cfg VectorIndexConfig) *VectorIndexManager {
	// pgvector's own defaults
	if cfg.M <= 0 {
		cfg.M = 16
	}
	if cfg.EfConstruction <= 0 {
		cfg.EfConstruction = 64
	}
	return &VectorIndexManager{
		exec:    exec,
		cfg:     cfg,
		ensured: make(map[string]struct{}),
	}
}

// Ensure prepares table for cosine similarity search on its embedding column.
// A failed attempt leaves no cached entry, so the next caller retries the DDL.
func (m *VectorIndexManager) Ensure(ctx context.Context, table string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.ensured[table]; ok {
		return nil
	}

	if err := m.exec.Exec(ctx, "CREATE EXTENSION IF NOT EXISTS vector"); err != nil {
		return fmt.Errorf("ensure pgvector extension: %w", err)
	}

	indexSQL := fmt.Sprintf(
		"CREATE INDEX IF NOT EXISTS idx_%s_embedding_hnsw ON %s USING hnsw (embedding vector_cosine_ops) WITH (m = %d, ef_construction = %d)",
		table, table, m.cfg.M, m.cfg.EfConstruction,
	)
	if err := m.exec.Exec(ctx, indexSQL); err != nil {
		return fmt.Errorf("ensure hnsw index on %s: %w", table, err)
	}

	m.ensured[table] = struct{}{}
	return nil
}
