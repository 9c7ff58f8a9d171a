package service

import (
	"context"
	"testing"
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/internal/service/mocks"
	"github.com/fsdevblog/groph-market/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-market/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type OrderServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockUOW       *uowmocks.MockUOW
	mockTX        *uowmocks.MockTX
	mockOrderRepo *mocks.MockOrderRepository
	mockAuditRepo *mocks.MockAuditLogRepository
	orderService  *OrderService
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

func (s *OrderServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockOrderRepo = mocks.NewMockOrderRepository(s.mockCtrl)
	s.mockAuditRepo = mocks.NewMockAuditLogRepository(s.mockCtrl)

	// Мок получения репозитория из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil).AnyTimes()

	orderService, servErr := NewOrderService(s.mockUOW)
	s.Require().NoError(servErr)
	s.orderService = orderService
}

func (s *OrderServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectTx прокидывает вызов uow.Do в замыкание с mockTX.
func (s *OrderServiceTestSuite) expectTx() {
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		})
}

func (s *OrderServiceTestSuite) TestUpdateStatus() {
	current := &domain.Order{
		ID:        1,
		CreatedAt: time.Now(),
		OrderCode: "ORD-001",
		Status:    domain.OrderStatusProcessing,
		Subtotal:  decimal.NewFromInt(1500),
	}
	updated := &domain.Order{
		ID:        1,
		OrderCode: "ORD-001",
		Status:    domain.OrderStatusShipped,
		Subtotal:  decimal.NewFromInt(1500),
	}

	s.expectTx()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil)
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.AuditLogRepoName)).
		Return(s.mockAuditRepo, nil)

	s.mockOrderRepo.EXPECT().
		GetWithItems(gomock.Any(), int64(1)).
		Return(current, nil)
	s.mockOrderRepo.EXPECT().
		UpdateStatus(gomock.Any(), int64(1), domain.OrderStatusShipped).
		Return(updated, nil)

	s.mockAuditRepo.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.AuditAppend) (*domain.AuditLogEntry, error) {
			s.Equal(domain.AuditActionOrderStatusChanged, args.Action)
			s.Equal("order", args.TargetKind)
			s.Equal("1", args.TargetID)
			s.Equal("processing -> shipped", args.Details)
			s.Equal(int64(42), args.ActorID)
			return &domain.AuditLogEntry{ID: 1}, nil
		})

	order, err := s.orderService.UpdateStatus(
		context.Background(),
		Actor{ID: 42, RequestID: "req-1"},
		1,
		domain.OrderStatusShipped,
	)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusShipped, order.Status)
}

func (s *OrderServiceTestSuite) TestUpdateStatusTerminal() {
	// Доставленный заказ менять нельзя, записи в журнале быть не должно.
	delivered := &domain.Order{
		ID:     7,
		Status: domain.OrderStatusDelivered,
	}

	s.expectTx()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil)
	s.mockOrderRepo.EXPECT().
		GetWithItems(gomock.Any(), int64(7)).
		Return(delivered, nil)

	_, err := s.orderService.UpdateStatus(
		context.Background(),
		Actor{ID: 42},
		7,
		domain.OrderStatusCancelled,
	)
	s.Require().Error(err)
	s.ErrorIs(err, domain.ErrInvalidStatusTransition)
}

func (s *OrderServiceTestSuite) TestList() {
	filter := repoargs.OrderListFilter{
		Pagination: repoargs.Pagination{Page: 1, Limit: 20},
		Status:     domain.OrderStatusPending,
		Search:     "ORD",
	}
	orders := []domain.Order{{ID: 1, OrderCode: "ORD-001"}, {ID: 2, OrderCode: "ORD-002"}}

	s.mockOrderRepo.EXPECT().
		List(gomock.Any(), filter).
		Return(orders, int64(2), nil)

	got, total, err := s.orderService.List(context.Background(), filter)
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Len(got, 2)
}
