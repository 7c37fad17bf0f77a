package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Fetch(ctx, "missing.pdf")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Store(ctx, "gazette/2026-10-02.pdf", []byte("issue")))
	require.NoError(t, store.Store(ctx, "gazette/2026-09-18.pdf", []byte("older")))

	names, err := store.ListNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"gazette/2026-09-18.pdf", "gazette/2026-10-02.pdf"}, names)

	data, err := store.Fetch(ctx, "gazette/2026-10-02.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("issue"), data)

	data[0] = 'X'
	again, err := store.Fetch(ctx, "gazette/2026-10-02.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("issue"), again)
}
