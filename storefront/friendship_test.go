package storefront_test

import (
	"context"
	"testing"

	"github.com/gamehub-br/server/model"
	"github.com/gamehub-br/server/storefront"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFriend(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	a := seedAccount(t, db, "alice", 0)
	b := seedAccount(t, db, "bruno", 0)

	f, err := svc.AddFriend(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, model.FriendshipPending, f.Status)
	assert.Equal(t, a.ID, f.AccountID)
	assert.Equal(t, b.ID, f.FriendID)
}

func TestAddFriendSelf(t *testing.T) {
	svc, db := setupService(t)
	a := seedAccount(t, db, "narciso", 0)

	_, err := svc.AddFriend(context.Background(), a.ID, a.ID)
	assert.ErrorIs(t, err, storefront.ErrSelfFriendship)
}

func TestAddFriendDuplicateEitherDirection(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	a := seedAccount(t, db, "alice", 0)
	b := seedAccount(t, db, "bruno", 0)

	_, err := svc.AddFriend(ctx, a.ID, b.ID)
	require.NoError(t, err)

	// Same direction.
	_, err = svc.AddFriend(ctx, a.ID, b.ID)
	assert.ErrorIs(t, err, storefront.ErrDuplicateFriendship)

	// Reversed direction hits the same pair.
	_, err = svc.AddFriend(ctx, b.ID, a.ID)
	assert.ErrorIs(t, err, storefront.ErrDuplicateFriendship)
}

func TestAddFriendUnknownTarget(t *testing.T) {
	svc, db := setupService(t)
	a := seedAccount(t, db, "alone", 0)

	_, err := svc.AddFriend(context.Background(), a.ID, 999)
	assert.ErrorIs(t, err, storefront.ErrAccountNotFound)
}

func TestAcceptFriend(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	a := seedAccount(t, db, "alice", 0)
	b := seedAccount(t, db, "bruno", 0)
	_, err := svc.AddFriend(ctx, a.ID, b.ID)
	require.NoError(t, err)

	// The recipient accepts; lookup works from either side.
	f, err := svc.AcceptFriend(ctx, b.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, model.FriendshipAccepted, f.Status)

	// Accepting again is an idempotent no-op.
	f, err = svc.AcceptFriend(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, model.FriendshipAccepted, f.Status)
}

func TestRejectFriend(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	a := seedAccount(t, db, "alice", 0)
	b := seedAccount(t, db, "bruno", 0)
	_, err := svc.AddFriend(ctx, a.ID, b.ID)
	require.NoError(t, err)

	f, err := svc.RejectFriend(ctx, b.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, model.FriendshipRejected, f.Status)
}

func TestFriendshipTransitionNotFound(t *testing.T) {
	svc, db := setupService(t)
	a := seedAccount(t, db, "alice", 0)
	b := seedAccount(t, db, "bruno", 0)

	_, err := svc.AcceptFriend(context.Background(), a.ID, b.ID)
	assert.ErrorIs(t, err, storefront.ErrFriendshipNotFound)
}

func TestAcceptedFriendsAndOtherParty(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	a := seedAccount(t, db, "alice", 0)
	b := seedAccount(t, db, "bruno", 0)
	c := seedAccount(t, db, "clara", 0)

	// a -> b accepted, c -> a pending.
	_, err := svc.AddFriend(ctx, a.ID, b.ID)
	require.NoError(t, err)
	_, err = svc.AcceptFriend(ctx, b.ID, a.ID)
	require.NoError(t, err)
	_, err = svc.AddFriend(ctx, c.ID, a.ID)
	require.NoError(t, err)

	accepted, err := svc.AcceptedFriends(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	assert.Equal(t, b.ID, accepted[0].OtherParty(a.ID))

	// b sees the same relation, resolved to a.
	accepted, err = svc.AcceptedFriends(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	assert.Equal(t, a.ID, accepted[0].OtherParty(b.ID))

	// All relations, both sides.
	all, err := svc.Friendships(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
