package payout

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/transport/payout/client"
	"github.com/fsdevblog/groph-market/internal/transport/payout/mocks"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type ProcessorTestSuite struct {
	suite.Suite
	processor      *Processor
	mockHTTPClient *mocks.MockClient
	mockService    *mocks.MockServicer
	ctrl           *gomock.Controller
}

func (s *ProcessorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.mockHTTPClient = mocks.NewMockClient(s.ctrl)
	s.mockService = mocks.NewMockServicer(s.ctrl)

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	s.processor = New(s.mockService, "", logger)
	s.processor.client = s.mockHTTPClient
}

func (s *ProcessorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestProcessorSuite(t *testing.T) {
	suite.Run(t, new(ProcessorTestSuite))
}

// TestProcess_NoWithdrawals очередь на перечисление пуста.
func (s *ProcessorTestSuite) TestProcess_NoWithdrawals() {
	s.mockService.EXPECT().
		ApprovedForDisbursement(gomock.Any(), s.processor.limitPerIteration).
		Return([]domain.WithdrawalRequest{}, nil)

	err := s.processor.process(s.T().Context())

	s.ErrorIs(err, ErrNoWithdrawals)
}

// TestProcess_Success успешное перечисление помечает заявку выплаченной. В шлюз
// уходит сумма за вычетом комиссии.
func (s *ProcessorTestSuite) TestProcess_Success() {
	withdrawals := []domain.WithdrawalRequest{
		{
			ID:               55,
			Amount:           decimal.NewFromInt(10000),
			CommissionAmount: decimal.NewFromInt(700),
			BankName:         "BDO",
			AccountNumber:    "0012",
			Provider:         "instapay",
			Status:           domain.PayoutStatusApproved,
		},
	}

	s.mockService.EXPECT().
		ApprovedForDisbursement(gomock.Any(), s.processor.limitPerIteration).
		Return(withdrawals, nil)

	s.mockHTTPClient.EXPECT().
		SendDisbursement(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args client.DisbursementArgs) (*client.Response, error) {
			s.Equal("55", args.Reference)
			// 10000 - 700 = 9300 на счет продавца.
			s.True(args.Amount.Equal(decimal.NewFromInt(9300)), "amount %s", args.Amount.String())
			s.Equal("BDO", args.BankName)
			return &client.Response{Reference: args.Reference, Status: client.StatusAccepted}, nil
		})

	s.mockService.EXPECT().
		Release(gomock.Any(), systemActor, int64(55)).
		Return(&domain.WithdrawalRequest{ID: 55, Status: domain.PayoutStatusReleased}, nil)

	ctx, cancel := context.WithTimeout(s.T().Context(), time.Second)
	defer cancel()
	s.NoError(s.processor.process(ctx))
}

// TestProcess_GatewayErrors окончательный отказ шлюза замораживает заявку,
// временный сбой лишь увеличивает счетчик попыток. Итерация с отложенными
// заявками сигналит ErrGatewayDegraded: перед повтором нужна пауза, иначе
// лежащий шлюз добивается запросами без перерыва.
func (s *ProcessorTestSuite) TestProcess_GatewayErrors() {
	withdrawals := []domain.WithdrawalRequest{
		{ID: 1, Amount: decimal.NewFromInt(1000), Status: domain.PayoutStatusApproved},
		{ID: 2, Amount: decimal.NewFromInt(2000), Status: domain.PayoutStatusApproved},
	}

	s.mockService.EXPECT().
		ApprovedForDisbursement(gomock.Any(), s.processor.limitPerIteration).
		Return(withdrawals, nil)

	permanentErr := client.NewStatusCodeError(http.StatusUnprocessableEntity)
	transientErr := client.NewStatusCodeError(http.StatusInternalServerError)

	s.mockHTTPClient.EXPECT().
		SendDisbursement(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args client.DisbursementArgs) (*client.Response, error) {
			if args.Reference == "1" {
				return nil, permanentErr
			}
			return nil, transientErr
		}).Times(2)

	s.mockService.EXPECT().
		Hold(gomock.Any(), systemActor, int64(1), permanentErr.Error()).
		Return(&domain.WithdrawalRequest{ID: 1, Status: domain.PayoutStatusHeld}, nil)
	s.mockService.EXPECT().
		IncrementAttempts(gomock.Any(), int64(2)).
		Return(nil)

	ctx, cancel := context.WithTimeout(s.T().Context(), time.Second)
	defer cancel()
	s.ErrorIs(s.processor.process(ctx), ErrGatewayDegraded)
}

// TestProcess_AttemptsExhausted после исчерпания лимита попыток заявка
// замораживается вместо очередного инкремента. Отложенных заявок нет, поэтому
// и деградации шлюза итерация не сигналит.
func (s *ProcessorTestSuite) TestProcess_AttemptsExhausted() {
	s.processor.SetMaxAttempts(3)

	withdrawals := []domain.WithdrawalRequest{
		{ID: 7, Amount: decimal.NewFromInt(1000), Status: domain.PayoutStatusApproved, Attempts: 2},
	}

	s.mockService.EXPECT().
		ApprovedForDisbursement(gomock.Any(), s.processor.limitPerIteration).
		Return(withdrawals, nil)

	s.mockHTTPClient.EXPECT().
		SendDisbursement(gomock.Any(), gomock.Any()).
		Return(nil, client.NewStatusCodeError(http.StatusBadGateway))

	s.mockService.EXPECT().
		Hold(gomock.Any(), systemActor, int64(7), gomock.Any()).
		Return(&domain.WithdrawalRequest{ID: 7, Status: domain.PayoutStatusHeld}, nil)

	ctx, cancel := context.WithTimeout(s.T().Context(), time.Second)
	defer cancel()
	s.NoError(s.processor.process(ctx))
}

// TestProcess_RetryAfter после 429 воркер ждет указанное время и повторяет
// поручение.
func (s *ProcessorTestSuite) TestProcess_RetryAfter() {
	withdrawals := []domain.WithdrawalRequest{
		{ID: 9, Amount: decimal.NewFromInt(1000), Status: domain.PayoutStatusApproved},
	}

	s.mockService.EXPECT().
		ApprovedForDisbursement(gomock.Any(), s.processor.limitPerIteration).
		Return(withdrawals, nil)

	first := s.mockHTTPClient.EXPECT().
		SendDisbursement(gomock.Any(), gomock.Any()).
		Return(nil, client.NewTooManyRequestError(10*time.Millisecond))
	s.mockHTTPClient.EXPECT().
		SendDisbursement(gomock.Any(), gomock.Any()).
		Return(&client.Response{Reference: "9", Status: client.StatusAccepted}, nil).
		After(first)

	s.mockService.EXPECT().
		Release(gomock.Any(), systemActor, int64(9)).
		Return(&domain.WithdrawalRequest{ID: 9, Status: domain.PayoutStatusReleased}, nil)

	ctx, cancel := context.WithTimeout(s.T().Context(), time.Second)
	defer cancel()
	s.NoError(s.processor.process(ctx))
}
