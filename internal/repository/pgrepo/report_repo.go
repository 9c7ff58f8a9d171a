package pgrepo

import (
	"context"
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
	"github.com/shopspring/decimal"
)

// ReportRepository агрегатные запросы для отчетов и дашборда. Отдельный
// репозиторий, чтоб не смешивать агрегаты с CRUD методами ресурсов.
type ReportRepository struct {
	db uow.DBTX
}

func NewReportRepository(db uow.DBTX) *ReportRepository {
	return &ReportRepository{db: db}
}

// OrderTotals выручка и количество доставленных заказов за период. Нулевое
// время означает открытую границу и в запрос уходит как NULL.
// Выручка считается только по заказам в статусе delivered: до доставки деньги
// в эскроу и комиссия с них не причитается.
func (r *ReportRepository) OrderTotals(
	ctx context.Context,
	period repoargs.ReportPeriod,
) (*repoargs.OrderTotals, error) {
	var totals repoargs.OrderTotals
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(subtotal), 0), COUNT(*)
		FROM orders
		WHERE status = $1
		  AND ($2::timestamptz IS NULL OR created_at >= $2)
		  AND ($3::timestamptz IS NULL OR created_at < $3)`,
		string(domain.OrderStatusDelivered), openBound(period.From), openBound(period.To),
	).Scan(&totals.Revenue, &totals.OrdersCount)
	if err != nil {
		return nil, convertErr(err, "aggregating order totals")
	}
	return &totals, nil
}

// CollectedCommission сумма комиссий, зафиксированных на выплаченных заявках
// за период. Границы периода трактуются как в OrderTotals.
func (r *ReportRepository) CollectedCommission(
	ctx context.Context,
	period repoargs.ReportPeriod,
) (decimal.Decimal, error) {
	var collected decimal.Decimal
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(commission_amount), 0)
		FROM withdrawal_requests
		WHERE status = $1
		  AND ($2::timestamptz IS NULL OR updated_at >= $2)
		  AND ($3::timestamptz IS NULL OR updated_at < $3)`,
		string(domain.PayoutStatusReleased), openBound(period.From), openBound(period.To),
	).Scan(&collected)
	if err != nil {
		return decimal.Zero, convertErr(err, "aggregating collected commission")
	}
	return collected, nil
}

// openBound превращает нулевое время в NULL-аргумент запроса.
func openBound(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

// DashboardCounts счетчики для главного экрана.
func (r *ReportRepository) DashboardCounts(ctx context.Context) (*repoargs.DashboardCounts, error) {
	var counts repoargs.DashboardCounts
	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM sellers WHERE status = $1),
			(SELECT COUNT(*) FROM sellers WHERE status = $2),
			(SELECT COUNT(*) FROM customers),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM withdrawal_requests WHERE status = $3),
			(SELECT COALESCE(SUM(subtotal), 0) FROM orders WHERE status = $4)`,
		string(domain.SellerStatusApproved),
		string(domain.SellerStatusPending),
		string(domain.PayoutStatusPending),
		string(domain.OrderStatusDelivered),
	).Scan(
		&counts.Orders, &counts.Sellers, &counts.PendingSellers, &counts.Customers,
		&counts.Products, &counts.PendingWithdrawals, &counts.Revenue,
	)
	if err != nil {
		return nil, convertErr(err, "aggregating dashboard counts")
	}
	return &counts, nil
}
