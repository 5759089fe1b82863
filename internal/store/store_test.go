package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "labels.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestItemRoundTrip(t *testing.T) {
	s := openTemp(t)

	require.NoError(t, s.SaveItem(Item{
		ItemNumber: "SKU-100",
		UPC:        "036000291452",
		Title:      "Widget",
		Casepack:   "12",
	}))

	items, err := s.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "SKU-100", items[0].ItemNumber)
	assert.Equal(t, "036000291452", items[0].UPC)
	assert.Equal(t, "Widget", items[0].Title)
	assert.Equal(t, "12", items[0].Casepack)
	assert.False(t, items[0].CreatedAt.IsZero())
}

func TestDeleteItem(t *testing.T) {
	s := openTemp(t)

	require.NoError(t, s.SaveItem(Item{ItemNumber: "A"}))
	require.NoError(t, s.SaveItem(Item{ItemNumber: "B"}))
	require.NoError(t, s.DeleteItem("A"))

	items, err := s.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "B", items[0].ItemNumber)

	// Deleting a missing item is not an error.
	assert.NoError(t, s.DeleteItem("missing"))
}

func TestSelectionRoundTrip(t *testing.T) {
	s := openTemp(t)

	_, ok, err := s.Selection()
	require.NoError(t, err)
	assert.False(t, ok, "fresh store has no selection")

	want := Selection{Printer: "Zebra LP2844", Language: "EPL", Size: "2x1"}
	require.NoError(t, s.SaveSelection(want))

	got, ok, err := s.Selection()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)

	// Upsert replaces the single row.
	want.Size = "4x6"
	require.NoError(t, s.SaveSelection(want))
	got, ok, err = s.Selection()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}
