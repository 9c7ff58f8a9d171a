package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/logger"
	"github.com/fsdevblog/groph-market/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-market/internal/transport/api/testutils"
	"github.com/fsdevblog/groph-market/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type WithdrawalsHandlerTestSuite struct {
	suite.Suite
	mockCtrl              *gomock.Controller
	router                *gin.Engine
	mockWithdrawalService *mocks.MockWithdrawalServicer
	jwtSecret             []byte
}

func TestWithdrawalsHandlerSuite(t *testing.T) {
	suite.Run(t, new(WithdrawalsHandlerTestSuite))
}

func (s *WithdrawalsHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockWithdrawalService = mocks.NewMockWithdrawalServicer(s.mockCtrl)
	s.jwtSecret = []byte("super secret key")

	router, routerErr := New(RouterArgs{
		Logger:            logger.New(os.Stdout),
		WithdrawalService: s.mockWithdrawalService,
		JWTSecretKey:      s.jwtSecret,
	})
	s.Require().NoError(routerErr)
	s.router = router
}

func (s *WithdrawalsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func fakeWithdrawal(id int64, status domain.PayoutStatusType) domain.WithdrawalRequest {
	return domain.WithdrawalRequest{
		ID:            id,
		CreatedAt:     time.Now(),
		SellerID:      int64(gofakeit.Number(1, 100)),
		SellerName:    gofakeit.Company(),
		Amount:        decimal.NewFromInt(int64(gofakeit.Number(1000, 100000))),
		BankName:      gofakeit.RandomString([]string{"BDO", "BPI", "Metrobank"}),
		AccountNumber: gofakeit.DigitN(10),
		Provider:      gofakeit.RandomString([]string{"instapay", "pesonet"}),
		Status:        status,
	}
}

func (s *WithdrawalsHandlerTestSuite) TestIndex() {
	adminJWT, jwtErr := tokens.GenerateAdminJWT(1, time.Hour, s.jwtSecret)
	s.Require().NoError(jwtErr)

	withdrawals := []domain.WithdrawalRequest{
		fakeWithdrawal(1, domain.PayoutStatusPending),
		fakeWithdrawal(2, domain.PayoutStatusPending),
	}

	s.mockWithdrawalService.EXPECT().
		List(gomock.Any(), gomock.Any(), "bdo").
		Return(withdrawals, int64(2), nil).
		AnyTimes()

	cases := []struct {
		name       string
		jwtToken   string
		wantStatus int
	}{
		{
			name:       "all ok",
			jwtToken:   adminJWT,
			wantStatus: http.StatusOK,
		}, {
			name:       "not authorized",
			jwtToken:   "",
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    PaymentsGroup + WithdrawalsRoute + "?status=pending&search=bdo",
			}
			var reqOpts []func(*testutils.RequestOptions)
			if t.jwtToken != "" {
				authHeader := fmt.Sprintf("Bearer %s", t.jwtToken)
				reqOpts = append(reqOpts, testutils.WithHeader("Authorization", authHeader))
			}
			res, err := testutils.MakeRequest(args, reqOpts...)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusOK {
				var payload struct {
					Items []WithdrawalResponse `json:"items"`
					Total int64                `json:"total"`
				}
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&payload))
				s.Equal(int64(2), payload.Total)
				s.Len(payload.Items, 2)
				s.Equal(withdrawals[0].SellerName, payload.Items[0].SellerName)
			}
		})
	}
}

func (s *WithdrawalsHandlerTestSuite) TestApprove() {
	adminJWT, jwtErr := tokens.GenerateAdminJWT(1, time.Hour, s.jwtSecret)
	s.Require().NoError(jwtErr)

	approved := fakeWithdrawal(1, domain.PayoutStatusApproved)
	approved.CommissionAmount = approved.Amount.Mul(decimal.NewFromFloat(0.07))

	s.mockWithdrawalService.EXPECT().
		Approve(gomock.Any(), gomock.Any(), int64(1)).
		Return(&approved, nil).Times(1)
	// Повторное одобрение: заявка уже не pending.
	s.mockWithdrawalService.EXPECT().
		Approve(gomock.Any(), gomock.Any(), int64(2)).
		Return(nil, domain.ErrRecordNotFound).Times(1)

	cases := []struct {
		name       string
		id         string
		jwtToken   string
		wantStatus int
	}{
		{
			name:       "all ok",
			id:         "1",
			jwtToken:   adminJWT,
			wantStatus: http.StatusOK,
		}, {
			name:       "already approved",
			id:         "2",
			jwtToken:   adminJWT,
			wantStatus: http.StatusNotFound,
		}, {
			name:       "not authorized",
			id:         "1",
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    fmt.Sprintf("%s/%s/approve", PaymentsGroup, t.id),
			}
			var reqOpts []func(*testutils.RequestOptions)
			if t.jwtToken != "" {
				authHeader := fmt.Sprintf("Bearer %s", t.jwtToken)
				reqOpts = append(reqOpts, testutils.WithHeader("Authorization", authHeader))
			}
			res, err := testutils.MakeRequest(args, reqOpts...)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusOK {
				var payload WithdrawalResponse
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&payload))
				s.Equal(string(domain.PayoutStatusApproved), string(payload.Status))
				s.InDelta(approved.CommissionAmount.InexactFloat64(), payload.CommissionAmount, 0.001)
			}
		})
	}
}

func (s *WithdrawalsHandlerTestSuite) TestAttachProof() {
	adminJWT, jwtErr := tokens.GenerateAdminJWT(1, time.Hour, s.jwtSecret)
	s.Require().NoError(jwtErr)

	s.mockWithdrawalService.EXPECT().
		AttachProof(gomock.Any(), gomock.Any(), int64(1), "uploads/tmp/proof.jpg").
		Return(nil).Times(1)

	overLimitPath := testutils.GenerateOverBytesUnderRunes(150)

	cases := []struct {
		name       string
		payload    []byte
		wantStatus int
	}{
		{
			name:       "all ok",
			payload:    []byte(`{"path":"uploads/tmp/proof.jpg"}`),
			wantStatus: http.StatusOK,
		}, {
			name:       "missing path",
			payload:    []byte(`{}`),
			wantStatus: http.StatusBadRequest,
		}, {
			// 150 рун по 4 байта: лимит в 500 байт превышен.
			name:       "path over byte limit",
			payload:    []byte(fmt.Sprintf(`{"path":%q}`, overLimitPath)),
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    PaymentsGroup + "/1/proof",
				Body:   bytes.NewReader(t.payload),
			}
			reqOpts := []func(*testutils.RequestOptions){
				testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", adminJWT)),
				testutils.WithHeader("Content-Type", "application/json"),
			}
			res, err := testutils.MakeRequest(args, reqOpts...)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}
