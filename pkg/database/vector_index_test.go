package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecutor struct {
	statements []string
	failUntil  int
	calls      int
}

func (e *fakeExecutor) Exec(ctx context.Context, sql string) error {
	e.calls++
	if e.calls <= e.failUntil {
		return errors.New("database unavailable")
	}
	e.statements = append(e.statements, sql)
	return nil
}

func TestEnsureIssuesExtensionAndIndexDDL(t *testing.T) {
	exec := &fakeExecutor{}
	m := NewVectorIndexManager(exec, VectorIndexConfig{M: 8, EfConstruction: 200})

	err := m.Ensure(context.Background(), "answer_key_chunks")
	require.NoError(t, err)

	require.Len(t, exec.statements, 2)
	assert.Contains(t, exec.statements[0], "CREATE EXTENSION IF NOT EXISTS vector")
	assert.Contains(t, exec.statements[1], "CREATE INDEX IF NOT EXISTS idx_answer_key_chunks_embedding_hnsw")
	assert.Contains(t, exec.statements[1], "vector_cosine_ops")
	assert.Contains(t, exec.statements[1], "m = 8")
	assert.Contains(t, exec.statements[1], "ef_construction = 200")
}

func TestEnsureShortCircuitsAfterSuccess(t *testing.T) {
	exec := &fakeExecutor{}
	m := NewVectorIndexManager(exec, VectorIndexConfig{M: 8, EfConstruction: 200})

	require.NoError(t, m.Ensure(context.Background(), "answer_key_chunks"))
	require.NoError(t, m.Ensure(context.Background(), "answer_key_chunks"))

	assert.Equal(t, 2, exec.calls, "second Ensure should issue no SQL")
}

func TestEnsureTracksTablesIndependently(t *testing.T) {
	exec := &fakeExecutor{}
	m := NewVectorIndexManager(exec, VectorIndexConfig{M: 8, EfConstruction: 200})

	require.NoError(t, m.Ensure(context.Background(), "answer_key_chunks"))
	require.NoError(t, m.Ensure(context.Background(), "student_answer_chunks"))

	assert.Equal(t, 4, exec.calls)
}

func TestEnsureRetriesAfterFailure(t *testing.T) {
	exec := &fakeExecutor{failUntil: 1}
	m := NewVectorIndexManager(exec, VectorIndexConfig{M: 8, EfConstruction: 200})

	require.Error(t, m.Ensure(context.Background(), "answer_key_chunks"))

	// Failure leaves no cached entry, so the next call runs the DDL again.
	require.NoError(t, m.Ensure(context.Background(), "answer_key_chunks"))
	assert.Len(t, exec.statements, 2)
}

func TestDefaultsAppliedWhenConfigUnset(t *testing.T) {
	exec := &fakeExecutor{}
	m := NewVectorIndexManager(exec, VectorIndexConfig{})

	require.NoError(t, m.Ensure(context.Background(), "answer_key_chunks"))
	assert.Contains(t, exec.statements[1], "m = 16")
	assert.Contains(t, exec.statements[1], "ef_construction = 64")
}
