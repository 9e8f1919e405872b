package storefront_test

import (
	"context"
	"testing"

	"github.com/gamehub-br/server/storefront"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPlayedTime(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	acc := seedAccount(t, db, "player", 0)
	title := seedTitle(t, db, "Played Game", 1000)
	grantOwnership(t, db, acc.ID, title.ID)

	entry, err := svc.AddPlayedTime(ctx, acc.ID, title.ID, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(30), entry.PlayedMinutes)

	entry, err = svc.AddPlayedTime(ctx, acc.ID, title.ID, 15)
	require.NoError(t, err)
	assert.Equal(t, int64(45), entry.PlayedMinutes)
}

func TestAddPlayedTimeNotOwned(t *testing.T) {
	svc, db := setupService(t)
	acc := seedAccount(t, db, "renter", 0)
	title := seedTitle(t, db, "Unplayed Game", 1000)

	_, err := svc.AddPlayedTime(context.Background(), acc.ID, title.ID, 10)
	assert.ErrorIs(t, err, storefront.ErrNotOwned)
}

func TestAddPlayedTimeRejectsNonPositive(t *testing.T) {
	svc, db := setupService(t)
	acc := seedAccount(t, db, "afk", 0)
	title := seedTitle(t, db, "Idle Game", 1000)
	grantOwnership(t, db, acc.ID, title.ID)

	for _, minutes := range []int64{0, -5} {
		_, err := svc.AddPlayedTime(context.Background(), acc.ID, title.ID, minutes)
		assert.ErrorIs(t, err, storefront.ErrInvalidAmount)
	}
}
