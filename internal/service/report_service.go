package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-market/internal/money"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
	"github.com/shopspring/decimal"
)

// CommissionReport сводка по комиссии площадки за период.
type CommissionReport struct {
	Period              repoargs.ReportPeriod
	OrdersCount         int64
	TotalRevenue        decimal.Decimal
	ProjectedCommission decimal.Decimal
	CollectedCommission decimal.Decimal
	PendingCommission   decimal.Decimal
	SellerEarnings      decimal.Decimal
}

// Dashboard счетчики и сводные суммы главного экрана. Денежные показатели
// дублируются в компактном виде, готовом к показу.
type Dashboard struct {
	Counts         repoargs.DashboardCounts
	RevenueCompact string
}

type ReportService struct {
	reportRepo     ReportRepository
	commissionRate decimal.Decimal
	currencySymbol string
}

func NewReportService(u uow.UOW, commissionRate decimal.Decimal, currencySymbol string) (*ReportService, error) {
	reportRepo, err := uow.GetRepositoryAs[ReportRepository](u, uow.RepositoryName(repoargs.ReportRepoName))
	if err != nil {
		return nil, err
	}
	return &ReportService{
		reportRepo:     reportRepo,
		commissionRate: commissionRate,
		currencySymbol: currencySymbol,
	}, nil
}

// Commission строит отчет по комиссии: выручка по доставленным заказам за
// период, проекция комиссии по текущей ставке, фактически собранное по
// выплаченным заявкам и остаток к сбору.
func (s *ReportService) Commission(ctx context.Context, period repoargs.ReportPeriod) (*CommissionReport, error) {
	totals, totalsErr := s.reportRepo.OrderTotals(ctx, period)
	if totalsErr != nil {
		return nil, fmt.Errorf("building commission report: %w", totalsErr)
	}

	collected, collectedErr := s.reportRepo.CollectedCommission(ctx, period)
	if collectedErr != nil {
		return nil, fmt.Errorf("building commission report: %w", collectedErr)
	}

	split := money.SplitRevenue(totals.Revenue, s.commissionRate)

	return &CommissionReport{
		Period:              period,
		OrdersCount:         totals.OrdersCount,
		TotalRevenue:        totals.Revenue,
		ProjectedCommission: split.Commission,
		CollectedCommission: collected,
		PendingCommission:   money.PendingCommission(totals.Revenue, collected, s.commissionRate),
		SellerEarnings:      split.SellerEarnings,
	}, nil
}

func (s *ReportService) Dashboard(ctx context.Context) (*Dashboard, error) {
	counts, err := s.reportRepo.DashboardCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("building dashboard: %w", err)
	}

	return &Dashboard{
		Counts:         *counts,
		RevenueCompact: money.CompactCurrency(s.currencySymbol, counts.Revenue),
	}, nil
}

// FormatCompact публичная обертка над компактным форматом, чтобы обработчики
// не тянули money напрямую.
func (s *ReportService) FormatCompact(amount decimal.Decimal) string {
	return money.CompactCurrency(s.currencySymbol, amount)
}
