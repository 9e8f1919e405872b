package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/gamehub-br/server/audit"
	"github.com/gamehub-br/server/model"
	"github.com/gamehub-br/server/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAuditLogWritesBatch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := audit.New(db, zap.NewNop())

	accountID := int64(7)
	svc.Log(audit.Entry{
		TraceID:   "trace-1",
		AccountID: &accountID,
		Action:    "checkout",
		Detail:    map[string]int64{"total": 4499},
		IP:        "127.0.0.1",
	})
	svc.Log(audit.Entry{
		TraceID: "trace-2",
		Action:  "review_post",
		Error:   "not owned",
	})

	// Stop drains the queue before returning.
	svc.Stop(context.Background())

	var logs []model.AuditLog
	require.NoError(t, db.Order("id").Find(&logs).Error)
	require.Len(t, logs, 2)

	assert.Equal(t, "trace-1", logs[0].TraceID)
	assert.Equal(t, "checkout", logs[0].Action)
	require.NotNil(t, logs[0].AccountID)
	assert.Equal(t, accountID, *logs[0].AccountID)
	assert.JSONEq(t, `{"total":4499}`, string(logs[0].Detail))

	assert.Equal(t, "not owned", logs[1].Error)
	assert.Nil(t, logs[1].AccountID)
}

func TestAuditPeriodicFlush(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := audit.New(db, zap.NewNop())
	defer svc.Stop(context.Background())

	svc.Log(audit.Entry{TraceID: "t", Action: "balance_credit"})

	// The 2s ticker flushes without Stop being called.
	require.Eventually(t, func() bool {
		var n int64
		db.Model(&model.AuditLog{}).Count(&n)
		return n == 1
	}, 5*time.Second, 100*time.Millisecond)
}
