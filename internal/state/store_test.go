package state

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndQueryPass(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := PassRecord{
		ID:         "pass-1",
		App:        "blog",
		StartedAt:  time.Unix(1700000000, 0),
		DurationMS: 42,
		Pages:      3,
		Status:     "success",
	}
	pages := []RenderedPage{
		{Path: "index.html", Hash: "aaa"},
		{Path: "2024/06/01/a.html", Hash: "bbb"},
	}
	require.NoError(t, store.RecordPass(ctx, rec, pages))

	last, err := store.LastPass(ctx, "blog")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, "pass-1", last.ID)
	assert.Equal(t, 3, last.Pages)

	got, err := store.PassPages(ctx, "pass-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2024/06/01/a.html", got[0].Path)
}

func TestLastPassSkipsFailures(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordPass(ctx, PassRecord{ID: "ok", App: "blog", StartedAt: time.Unix(100, 0), Status: "success"}, nil))
	require.NoError(t, store.RecordPass(ctx, PassRecord{ID: "bad", App: "blog", StartedAt: time.Unix(200, 0), Status: "failed"}, nil))

	last, err := store.LastPass(ctx, "blog")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, "ok", last.ID)
}

func TestLastPassUnknownApp(t *testing.T) {
	store := newTestStore(t)

	last, err := store.LastPass(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, last)
}

func TestChangedSince(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	previous := []RenderedPage{
		{Path: "index.html", Hash: "aaa"},
		{Path: "gone.html", Hash: "bbb"},
		{Path: "same.html", Hash: "ccc"},
	}
	require.NoError(t, store.RecordPass(ctx, PassRecord{ID: "p1", App: "blog", StartedAt: time.Unix(100, 0), Status: "success"}, previous))

	current := []RenderedPage{
		{Path: "index.html", Hash: "zzz"}, // hash changed
		{Path: "same.html", Hash: "ccc"},  // unchanged
		{Path: "new.html", Hash: "ddd"},   // new
	}
	changed, removed, err := store.ChangedSince(ctx, "blog", current)
	require.NoError(t, err)
	assert.Equal(t, []string{"index.html", "new.html"}, changed)
	assert.Equal(t, []string{"gone.html"}, removed)
}

func TestChangedSinceFirstPass(t *testing.T) {
	store := newTestStore(t)

	changed, removed, err := store.ChangedSince(context.Background(), "blog", []RenderedPage{{Path: "a.html", Hash: "x"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.html"}, changed)
	assert.Empty(t, removed)
}
