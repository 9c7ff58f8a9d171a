package service

import (
	"context"
	"testing"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/internal/service/mocks"
	"github.com/fsdevblog/groph-market/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-market/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type WithdrawalServiceTestSuite struct {
	suite.Suite
	mockCtrl           *gomock.Controller
	mockUOW            *uowmocks.MockUOW
	mockTX             *uowmocks.MockTX
	mockWithdrawalRepo *mocks.MockWithdrawalRepository
	mockAuditRepo      *mocks.MockAuditLogRepository
	withdrawalService  *WithdrawalService
}

func TestWithdrawalServiceSuite(t *testing.T) {
	suite.Run(t, new(WithdrawalServiceTestSuite))
}

func (s *WithdrawalServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockWithdrawalRepo = mocks.NewMockWithdrawalRepository(s.mockCtrl)
	s.mockAuditRepo = mocks.NewMockAuditLogRepository(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.WithdrawalRepoName)).
		Return(s.mockWithdrawalRepo, nil).AnyTimes()

	withdrawalService, servErr := NewWithdrawalService(s.mockUOW, decimal.NewFromFloat(0.07))
	s.Require().NoError(servErr)
	s.withdrawalService = withdrawalService
}

func (s *WithdrawalServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *WithdrawalServiceTestSuite) expectTx() {
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		})
}

// TestListSearch запрос фильтрует выборку сразу по нескольким полям без учета
// регистра: имя продавца, банк, номер счета, провайдер и номер заявки.
func (s *WithdrawalServiceTestSuite) TestListSearch() {
	records := []domain.WithdrawalRequest{
		{ID: 101, SellerName: "Manila Crafts", BankName: "BDO", AccountNumber: "0012", Provider: "instapay"},
		{ID: 102, SellerName: "Cebu Goods", BankName: "BPI", AccountNumber: "8844", Provider: "pesonet"},
		{ID: 103, SellerName: "Davao Fresh", BankName: "bdo network", AccountNumber: "7710", Provider: "instapay"},
	}

	filter := repoargs.WithdrawalListFilter{
		Pagination: repoargs.Pagination{Page: 1, Limit: 20},
	}

	testCases := []struct {
		name     string
		query    string
		wantIDs  []int64
		wantSize int
	}{
		{name: "by seller name", query: "cebu", wantIDs: []int64{102}, wantSize: 1},
		{name: "by bank name both registers", query: "BDO", wantIDs: []int64{101, 103}, wantSize: 2},
		{name: "by account number", query: "8844", wantIDs: []int64{102}, wantSize: 1},
		{name: "by provider", query: "instapay", wantIDs: []int64{101, 103}, wantSize: 2},
		{name: "by request id", query: "103", wantIDs: []int64{103}, wantSize: 1},
		{name: "empty query returns all", query: "", wantIDs: []int64{101, 102, 103}, wantSize: 3},
		{name: "no match", query: "zzz", wantIDs: []int64{}, wantSize: 0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockWithdrawalRepo.EXPECT().
				List(gomock.Any(), filter).
				Return(records, int64(3), nil)

			got, total, err := s.withdrawalService.List(context.Background(), filter, tc.query)
			s.Require().NoError(err)
			s.Len(got, tc.wantSize)

			gotIDs := make([]int64, 0, len(got))
			for _, w := range got {
				gotIDs = append(gotIDs, w.ID)
			}
			s.ElementsMatch(tc.wantIDs, gotIDs)

			if tc.query == "" {
				s.Equal(int64(3), total)
			} else {
				s.Equal(int64(tc.wantSize), total)
			}
		})
	}
}

// TestApprove комиссия фиксируется по текущей ставке в момент одобрения.
func (s *WithdrawalServiceTestSuite) TestApprove() {
	pending := &domain.WithdrawalRequest{
		ID:     55,
		Amount: decimal.NewFromInt(10000),
		Status: domain.PayoutStatusPending,
	}
	approved := &domain.WithdrawalRequest{
		ID:               55,
		Amount:           decimal.NewFromInt(10000),
		Status:           domain.PayoutStatusApproved,
		CommissionAmount: decimal.NewFromInt(700),
	}

	s.expectTx()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.WithdrawalRepoName)).
		Return(s.mockWithdrawalRepo, nil)
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.AuditLogRepoName)).
		Return(s.mockAuditRepo, nil)

	s.mockWithdrawalRepo.EXPECT().
		GetByID(gomock.Any(), int64(55)).
		Return(pending, nil)

	s.mockWithdrawalRepo.EXPECT().
		Approve(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.WithdrawalApprove) (*domain.WithdrawalRequest, error) {
			s.Equal(int64(55), args.ID)
			// 10000 * 0.07 = 700
			s.True(args.Commission.Equal(decimal.NewFromInt(700)),
				"commission %s", args.Commission.String())
			return approved, nil
		})

	s.mockAuditRepo.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.AuditAppend) (*domain.AuditLogEntry, error) {
			s.Equal(domain.AuditActionWithdrawalApproved, args.Action)
			s.Equal("withdrawal", args.TargetKind)
			s.Equal("55", args.TargetID)
			return &domain.AuditLogEntry{ID: 1}, nil
		})

	got, err := s.withdrawalService.Approve(context.Background(), Actor{ID: 1}, 55)
	s.Require().NoError(err)
	s.Equal(domain.PayoutStatusApproved, got.Status)
}

func (s *WithdrawalServiceTestSuite) TestApproveNotPending() {
	s.expectTx()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.WithdrawalRepoName)).
		Return(s.mockWithdrawalRepo, nil)

	s.mockWithdrawalRepo.EXPECT().
		GetByID(gomock.Any(), int64(55)).
		Return(&domain.WithdrawalRequest{
			ID:     55,
			Amount: decimal.NewFromInt(10000),
			Status: domain.PayoutStatusApproved,
		}, nil)

	// Условие на статус pending зашито в запрос: повторное одобрение
	// обновляет ноль строк.
	s.mockWithdrawalRepo.EXPECT().
		Approve(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.withdrawalService.Approve(context.Background(), Actor{ID: 1}, 55)
	s.Require().Error(err)
	s.ErrorIs(err, domain.ErrRecordNotFound)
}

// TestReleaseSystemActor фоновый обработчик выплат действует без
// администратора: запись журнала идет с нулевым ActorID и не должна ломать
// транзакцию.
func (s *WithdrawalServiceTestSuite) TestReleaseSystemActor() {
	released := &domain.WithdrawalRequest{ID: 55, Status: domain.PayoutStatusReleased}

	s.expectTx()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.WithdrawalRepoName)).
		Return(s.mockWithdrawalRepo, nil)
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.AuditLogRepoName)).
		Return(s.mockAuditRepo, nil)

	s.mockWithdrawalRepo.EXPECT().
		MarkReleased(gomock.Any(), int64(55)).
		Return(released, nil)
	s.mockAuditRepo.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.AuditAppend) (*domain.AuditLogEntry, error) {
			s.Equal(domain.AuditActionWithdrawalReleased, args.Action)
			s.Zero(args.ActorID)
			s.Equal("payout-processor", args.RequestID)
			return &domain.AuditLogEntry{ID: 1}, nil
		})

	got, err := s.withdrawalService.Release(
		context.Background(),
		Actor{RequestID: "payout-processor"},
		55,
	)
	s.Require().NoError(err)
	s.Equal(domain.PayoutStatusReleased, got.Status)
}

func (s *WithdrawalServiceTestSuite) TestHold() {
	held := &domain.WithdrawalRequest{ID: 9, Status: domain.PayoutStatusHeld}

	s.expectTx()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.WithdrawalRepoName)).
		Return(s.mockWithdrawalRepo, nil)
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.AuditLogRepoName)).
		Return(s.mockAuditRepo, nil)

	s.mockWithdrawalRepo.EXPECT().
		MarkHeld(gomock.Any(), int64(9)).
		Return(held, nil)
	s.mockAuditRepo.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.AuditAppend) (*domain.AuditLogEntry, error) {
			s.Equal(domain.AuditActionWithdrawalHeld, args.Action)
			s.Equal("gateway refused", args.Details)
			return &domain.AuditLogEntry{ID: 1}, nil
		})

	got, err := s.withdrawalService.Hold(context.Background(), Actor{}, 9, "gateway refused")
	s.Require().NoError(err)
	s.Equal(domain.PayoutStatusHeld, got.Status)
}
