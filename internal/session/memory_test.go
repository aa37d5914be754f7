package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	token, err := s.Create(ctx, Data{UserID: "u1", Email: "a@example.com", Role: "admin"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	data, err := s.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "u1", data.UserID)
	assert.Equal(t, "admin", data.Role)

	require.NoError(t, s.Delete(ctx, token))
	_, err = s.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFlashesArePoppedOnce(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	token, err := s.Create(ctx, Data{UserID: "u1"})
	require.NoError(t, err)

	require.NoError(t, s.AddFlash(ctx, token, Flash{Message: "User added", Level: "success"}))
	require.NoError(t, s.AddFlash(ctx, token, Flash{Message: "Careful", Level: "danger"}))

	flashes, err := s.PopFlashes(ctx, token)
	require.NoError(t, err)
	require.Len(t, flashes, 2)
	assert.Equal(t, "User added", flashes[0].Message)
	assert.Equal(t, "danger", flashes[1].Level)

	// A second pop returns nothing
	flashes, err = s.PopFlashes(ctx, token)
	require.NoError(t, err)
	assert.Empty(t, flashes)
}
