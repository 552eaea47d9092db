package history_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptcalc/internal/domain"
	"promptcalc/internal/history"
)

func openStore(t *testing.T, path string) *history.Store {
	t.Helper()
	s, err := history.Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAppendAndList_OldestFirst(t *testing.T) {
	ctx := context.Background()
	s := openStore(t, filepath.Join(t.TempDir(), "history.db"))

	require.NoError(t, s.Append(ctx, domain.HistoryEntry{
		Operand1: 6, Op: domain.OpDivide, Operand2: 3, Result: 2, At: time.Now(),
	}))
	require.NoError(t, s.Append(ctx, domain.HistoryEntry{
		Operand1: 2, Op: domain.OpAdd, Operand2: 2.5, Result: 4.5,
	}))

	entries, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "6 / 3 = 2.00", entries[0].String())
	assert.Equal(t, "2 + 2.5 = 4.50", entries[1].String())
	assert.Less(t, entries[0].ID, entries[1].ID)
}

func TestList_EmptyDatabase(t *testing.T) {
	s := openStore(t, filepath.Join(t.TempDir(), "history.db"))

	entries, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	s := openStore(t, filepath.Join(t.TempDir(), "history.db"))

	require.NoError(t, s.Append(ctx, domain.HistoryEntry{Operand1: 1, Op: domain.OpAdd, Operand2: 1, Result: 2}))
	require.NoError(t, s.Clear(ctx))

	entries, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEntriesSurviveReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.db")

	s := openStore(t, path)
	require.NoError(t, s.Append(ctx, domain.HistoryEntry{Operand1: 8, Op: domain.OpMultiply, Operand2: 2, Result: 16}))
	require.NoError(t, s.Close())

	reopened := openStore(t, path)
	entries, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "8 * 2 = 16.00", entries[0].String())
}
