package pgrepo

import (
	"context"
	"testing"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAppendSystemActor записи фонового обработчика идут с нулевым ActorID и
// должны попадать в базу как NULL: строки с id 0 в admin_users не существует и
// внешний ключ отклонил бы вставку.
func TestAppendSystemActor(t *testing.T) {
	db := &captureDBTX{}
	repo := NewAuditLogRepository(db)

	_, err := repo.Append(context.Background(), repoargs.AuditAppend{
		ActorID:    0,
		Action:     domain.AuditActionWithdrawalReleased,
		TargetKind: "withdrawal",
		TargetID:   "55",
		RequestID:  "payout-processor",
	})
	require.NoError(t, err)
	require.Len(t, db.args, 6)
	assert.Nil(t, db.args[0])
}

func TestAppendAdminActor(t *testing.T) {
	db := &captureDBTX{}
	repo := NewAuditLogRepository(db)

	_, err := repo.Append(context.Background(), repoargs.AuditAppend{
		ActorID:    42,
		Action:     domain.AuditActionWithdrawalApproved,
		TargetKind: "withdrawal",
		TargetID:   "55",
		RequestID:  "req-1",
	})
	require.NoError(t, err)
	require.Len(t, db.args, 6)
	assert.Equal(t, int64(42), db.args[0])
}
