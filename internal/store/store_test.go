package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/dragalert/go-layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func open(t *testing.T) *Store {
	t.Helper()

	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "layouts.db"))
	require.NoError(t, err)

	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	s := open(t)

	elements := layout.NormalizeBatch([]any{
		map[string]any{"id": "e1", "x": "5", "y": "5", "html": "<span>Hi</span>", "styles": map[string]any{"width": "10px"}},
		map[string]any{"id": "e2", "type": "table", "html": "<tr><td>1</td></tr>", "attributes": map[string]any{"class": "grid"}},
	})

	require.NoError(t, s.Put(ctx, "home", elements))

	got, err := s.Get(ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, elements, got)

	raw, err := s.GetRaw(ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, layout.FromStorage(raw), layout.BuildTree(elements))
}

func TestStore_Replace(t *testing.T) {
	ctx := context.Background()
	s := open(t)

	s.now = func() time.Time { return time.Unix(100, 0) }
	require.NoError(t, s.Put(ctx, "home", []layout.PlacedElement{{ID: "old"}}))

	s.now = func() time.Time { return time.Unix(200, 0) }
	require.NoError(t, s.Put(ctx, "home", []layout.PlacedElement{{ID: "new"}}))

	got, err := s.Get(ctx, "home")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].ID)

	entries, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Name: "home", UpdatedAt: time.Unix(200, 0)}}, entries)
}

func TestStore_List(t *testing.T) {
	ctx := context.Background()
	s := open(t)

	entries, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	for _, name := range []string{"b", "c", "a"} {
		require.NoError(t, s.Put(ctx, name, nil))
	}

	entries, err = s.List(ctx)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}

	assert.Equal(t, []string{"a", "b", "c"}, names)

	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_NotFound(t *testing.T) {
	ctx := context.Background()
	s := open(t)

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete(ctx, "missing"), ErrNotFound)

	require.NoError(t, s.Put(ctx, "page", nil))
	require.NoError(t, s.Delete(ctx, "page"))

	_, err = s.Get(ctx, "page")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpen_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "layouts.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, "home", []layout.PlacedElement{{ID: "e1"}}))
	require.NoError(t, s.Close())

	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(ctx, "home")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
