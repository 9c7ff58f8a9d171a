package pgrepo

import (
	"context"
	"testing"
	"time"

	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOrderTotalsOpenPeriod период без границ не должен отсекать все строки:
// нулевое время уходит в запрос как NULL, а не как 0001-01-01.
func TestOrderTotalsOpenPeriod(t *testing.T) {
	db := &captureDBTX{}
	repo := NewReportRepository(db)

	_, err := repo.OrderTotals(context.Background(), repoargs.ReportPeriod{})
	require.NoError(t, err)
	require.Len(t, db.args, 3)
	assert.Nil(t, db.args[1])
	assert.Nil(t, db.args[2])
	assert.Contains(t, db.sql, "$2::timestamptz IS NULL")
	assert.Contains(t, db.sql, "$3::timestamptz IS NULL")
}

func TestOrderTotalsBoundedPeriod(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	db := &captureDBTX{}
	repo := NewReportRepository(db)

	_, err := repo.OrderTotals(context.Background(), repoargs.ReportPeriod{From: from, To: to})
	require.NoError(t, err)
	require.Len(t, db.args, 3)
	assert.Equal(t, from, db.args[1])
	assert.Equal(t, to, db.args[2])
}

func TestCollectedCommissionOpenPeriod(t *testing.T) {
	db := &captureDBTX{}
	repo := NewReportRepository(db)

	_, err := repo.CollectedCommission(context.Background(), repoargs.ReportPeriod{})
	require.NoError(t, err)
	require.Len(t, db.args, 3)
	assert.Nil(t, db.args[1])
	assert.Nil(t, db.args[2])
}

// TestCollectedCommissionHalfOpenPeriod только одна граница задана.
func TestCollectedCommissionHalfOpenPeriod(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	db := &captureDBTX{}
	repo := NewReportRepository(db)

	_, err := repo.CollectedCommission(context.Background(), repoargs.ReportPeriod{From: from})
	require.NoError(t, err)
	require.Len(t, db.args, 3)
	assert.Equal(t, from, db.args[1])
	assert.Nil(t, db.args[2])
}
