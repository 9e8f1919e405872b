package storefront_test

import (
	"context"
	"testing"

	"github.com/gamehub-br/server/storefront"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreditAndDebit(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	acc := seedAccount(t, db, "ledger", 0)

	credited, err := svc.Credit(ctx, acc.ID, 5000)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), credited.Balance)

	debited, err := svc.Debit(ctx, acc.ID, 1500)
	require.NoError(t, err)
	assert.Equal(t, int64(3500), debited.Balance)
}

func TestDebitInsufficient(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	acc := seedAccount(t, db, "thin", 100)

	_, err := svc.Debit(ctx, acc.ID, 101)
	assert.ErrorIs(t, err, storefront.ErrInsufficientBalance)

	// Debiting down to exactly zero is allowed.
	after, err := svc.Debit(ctx, acc.ID, 100)
	require.NoError(t, err)
	assert.Zero(t, after.Balance)
}

func TestLedgerRejectsNonPositiveAmounts(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	acc := seedAccount(t, db, "zero", 1000)

	for _, cents := range []int64{0, -100} {
		_, err := svc.Credit(ctx, acc.ID, cents)
		assert.ErrorIs(t, err, storefront.ErrInvalidAmount)
		_, err = svc.Debit(ctx, acc.ID, cents)
		assert.ErrorIs(t, err, storefront.ErrInvalidAmount)
	}
}

func TestLedgerUnknownAccount(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Credit(ctx, 999, 100)
	assert.ErrorIs(t, err, storefront.ErrAccountNotFound)
	_, err = svc.Debit(ctx, 999, 100)
	assert.ErrorIs(t, err, storefront.ErrAccountNotFound)
}
