package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/itemsearch/core"
)

func TestMemoryLoader(t *testing.T) {
	a := &core.Record{Title: "Widget", Arg: "a"}
	b := &core.Record{Title: "Gadget", Arg: "b"}

	t.Run("returns records in order", func(t *testing.T) {
		loader := NewMemoryLoader(a, b)
		records, err := loader.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []*core.Record{a, b}, records)
	})

	t.Run("caller cannot reorder the loader", func(t *testing.T) {
		loader := NewMemoryLoader(a, b)
		records, err := loader.Load(context.Background())
		require.NoError(t, err)
		records[0], records[1] = records[1], records[0]

		again, err := loader.Load(context.Background())
		require.NoError(t, err)
		assert.Same(t, a, again[0])
	})

	t.Run("empty", func(t *testing.T) {
		records, err := NewMemoryLoader().Load(context.Background())
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("invalid record", func(t *testing.T) {
		_, err := NewMemoryLoader(a, &core.Record{Arg: "x"}).Load(context.Background())
		assert.ErrorIs(t, err, ErrMalformed)
		assert.ErrorIs(t, err, core.ErrEmptyTitle)
	})
}

func TestLoaderFunc(t *testing.T) {
	want := []*core.Record{{Title: "Widget"}}
	var loader Loader = LoaderFunc(func(context.Context) ([]*core.Record, error) {
		return want, nil
	})

	got, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
