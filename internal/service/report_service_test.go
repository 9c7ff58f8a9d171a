package service

import (
	"context"
	"testing"

	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/internal/service/mocks"
	"github.com/fsdevblog/groph-market/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-market/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockUOW        *uowmocks.MockUOW
	mockReportRepo *mocks.MockReportRepository
	reportService  *ReportService
}

func TestReportServiceSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}

func (s *ReportServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockReportRepo = mocks.NewMockReportRepository(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.ReportRepoName)).
		Return(s.mockReportRepo, nil).AnyTimes()

	reportService, servErr := NewReportService(s.mockUOW, decimal.NewFromFloat(0.07), "₱")
	s.Require().NoError(servErr)
	s.reportService = reportService
}

func (s *ReportServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ReportServiceTestSuite) TestCommission() {
	period := repoargs.ReportPeriod{}

	s.mockReportRepo.EXPECT().
		OrderTotals(gomock.Any(), period).
		Return(&repoargs.OrderTotals{
			Revenue:     decimal.NewFromInt(10000),
			OrdersCount: 5,
		}, nil)
	s.mockReportRepo.EXPECT().
		CollectedCommission(gomock.Any(), period).
		Return(decimal.NewFromInt(200), nil)

	report, err := s.reportService.Commission(context.Background(), period)
	s.Require().NoError(err)

	s.Equal(int64(5), report.OrdersCount)
	// 10000 по ставке 0.07: комиссия 700, заработок продавцов 9300.
	s.True(report.ProjectedCommission.Equal(decimal.NewFromInt(700)),
		"projected %s", report.ProjectedCommission.String())
	s.True(report.SellerEarnings.Equal(decimal.NewFromInt(9300)),
		"earnings %s", report.SellerEarnings.String())
	// собрано 200, остаток к сбору 500.
	s.True(report.CollectedCommission.Equal(decimal.NewFromInt(200)))
	s.True(report.PendingCommission.Equal(decimal.NewFromInt(500)),
		"pending %s", report.PendingCommission.String())
}

// TestCommissionOvercollected остаток к сбору не бывает отрицательным.
func (s *ReportServiceTestSuite) TestCommissionOvercollected() {
	period := repoargs.ReportPeriod{}

	s.mockReportRepo.EXPECT().
		OrderTotals(gomock.Any(), period).
		Return(&repoargs.OrderTotals{
			Revenue:     decimal.NewFromInt(1000),
			OrdersCount: 1,
		}, nil)
	s.mockReportRepo.EXPECT().
		CollectedCommission(gomock.Any(), period).
		Return(decimal.NewFromInt(500), nil)

	report, err := s.reportService.Commission(context.Background(), period)
	s.Require().NoError(err)
	s.True(report.PendingCommission.IsZero(), "pending %s", report.PendingCommission.String())
}

func (s *ReportServiceTestSuite) TestDashboard() {
	s.mockReportRepo.EXPECT().
		DashboardCounts(gomock.Any()).
		Return(&repoargs.DashboardCounts{
			Orders:             120,
			Sellers:            14,
			PendingSellers:     3,
			Customers:          560,
			Products:           840,
			PendingWithdrawals: 2,
			Revenue:            decimal.NewFromInt(2300000),
		}, nil)

	dashboard, err := s.reportService.Dashboard(context.Background())
	s.Require().NoError(err)
	s.Equal(int64(120), dashboard.Counts.Orders)
	s.Equal("₱2.3M", dashboard.RevenueCompact)
}
