package repoargs

import (
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/shopspring/decimal"
)

type OrderListFilter struct {
	Pagination
	// Status пустое значение - без фильтра по статусу.
	Status domain.OrderStatusType
	// Search подстрока для поиска по коду заказа.
	Search string
}

// OrderTotals агрегаты по заказам за период для отчета по комиссии.
type OrderTotals struct {
	Revenue     decimal.Decimal
	OrdersCount int64
}

type ReportPeriod struct {
	From time.Time
	To   time.Time
}

// DashboardCounts счетчики для главного экрана админки.
type DashboardCounts struct {
	Orders             int64
	Sellers            int64
	PendingSellers     int64
	Customers          int64
	Products           int64
	PendingWithdrawals int64
	Revenue            decimal.Decimal
}
