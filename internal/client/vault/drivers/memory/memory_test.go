package memory

import (
	"context"
	"testing"

	"github.com/eprometna/client-go/internal/client/vault"
	"github.com/stretchr/testify/require"
)

func TestSetGetDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := New()

	_, ok := v.Get(ctx, vault.KeyDeviceToken)
	require.False(t, ok)

	require.NoError(t, v.Set(ctx, vault.KeyDeviceToken, "tok"))
	got, ok := v.Get(ctx, vault.KeyDeviceToken)
	require.True(t, ok)
	require.Equal(t, "tok", got)

	// Overwrite is last-write-wins.
	require.NoError(t, v.Set(ctx, vault.KeyDeviceToken, "tok2"))
	got, _ = v.Get(ctx, vault.KeyDeviceToken)
	require.Equal(t, "tok2", got)

	require.NoError(t, v.Delete(ctx, vault.KeyDeviceToken))
	_, ok = v.Get(ctx, vault.KeyDeviceToken)
	require.False(t, ok)

	// Deleting an absent key succeeds.
	require.NoError(t, v.Delete(ctx, vault.KeyDeviceToken))
}

func TestRejectsUnknownKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := New()
	require.ErrorIs(t, v.Set(ctx, vault.Key("nope"), "x"), vault.ErrUnknownKey)
	require.ErrorIs(t, v.Delete(ctx, vault.Key("nope")), vault.ErrUnknownKey)
}
