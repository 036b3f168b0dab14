package documents

import (
	"context"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) Store {
	t.Helper()

	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewBadgerStore(zerolog.Nop(), db)
}

func TestBadgerStoreGetUnknownID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	checklist, err := store.Get(ctx, "never-written")
	require.NoError(t, err)
	assert.Equal(t, Checklist{}, checklist, "unknown ids read as all-false")
}

func TestBadgerStoreSetGetRoundtrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	want := Checklist{DAEV: true, CND: true}
	require.NoError(t, store.Set(ctx, "p1", want, "ana"))

	got, err := store.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	other, err := store.Get(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, Checklist{}, other, "writes are isolated per process id")
}

func TestBadgerStoreSetOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "p1", Checklist{DAEV: true, CPFL: true, Gas: true, CND: true}, "ana"))
	require.NoError(t, store.Set(ctx, "p1", Checklist{DAEV: true}, "bruno"))

	got, err := store.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, Checklist{DAEV: true}, got)
}

func TestBadgerStoreAll(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "p1", Checklist{DAEV: true}, "ana"))
	require.NoError(t, store.Set(ctx, "p2", Checklist{}, "ana"))

	records, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	byID := make(map[string]Record, len(records))
	for _, record := range records {
		byID[record.ProcessID] = record
	}
	assert.Equal(t, Checklist{DAEV: true}, byID["p1"].Checklist)
	assert.Equal(t, "ana", byID["p1"].UpdatedBy)
	assert.False(t, byID["p1"].UpdatedAt.IsZero())
	assert.Equal(t, Checklist{}, byID["p2"].Checklist)
}

func TestBadgerStoreStats(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats, "empty store yields zeroed stats")

	require.NoError(t, store.Set(ctx, "p1", Checklist{DAEV: true, CPFL: true, Gas: true, CND: true}, "ana"))
	require.NoError(t, store.Set(ctx, "p2", Checklist{DAEV: true, CND: true}, "ana"))
	require.NoError(t, store.Set(ctx, "p3", Checklist{}, "ana"))

	stats, err = store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.AllDelivered)
	assert.Equal(t, 1, stats.SomeDelivered)
	assert.Equal(t, 1, stats.NoneDelivered)
	assert.InDelta(t, 33.33, stats.PercentComplete, 0.01)
}
