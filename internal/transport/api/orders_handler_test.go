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

type OrdersHandlerTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	router           *gin.Engine
	mockOrderService *mocks.MockOrderServicer
	jwtSecret        []byte
}

func TestOrdersHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrdersHandlerTestSuite))
}

func (s *OrdersHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockOrderService = mocks.NewMockOrderServicer(s.mockCtrl)
	s.jwtSecret = []byte("super secret key")

	router, routerErr := New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		OrderService: s.mockOrderService,
		JWTSecretKey: s.jwtSecret,
	})
	s.Require().NoError(routerErr)
	s.router = router
}

func (s *OrdersHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// fakeOrder собирает заказ со случайным наполнением.
func fakeOrder(id int64, status domain.OrderStatusType) domain.Order {
	return domain.Order{
		ID:         id,
		CreatedAt:  time.Now(),
		OrderCode:  fmt.Sprintf("ORD-%s", gofakeit.DigitN(6)),
		CustomerID: int64(gofakeit.Number(1, 1000)),
		SellerID:   int64(gofakeit.Number(1, 100)),
		Status:     status,
		Subtotal:   decimal.NewFromInt(int64(gofakeit.Number(100, 50000))),
		Items: []domain.OrderItem{
			{
				ProductID: int64(gofakeit.Number(1, 500)),
				Name:      gofakeit.ProductName(),
				Price:     decimal.NewFromInt(int64(gofakeit.Number(50, 5000))),
				Quantity:  int32(gofakeit.Number(1, 5)),
			},
		},
	}
}

func (s *OrdersHandlerTestSuite) TestIndex() {
	adminJWT, jwtErr := tokens.GenerateAdminJWT(1, time.Hour, s.jwtSecret)
	s.Require().NoError(jwtErr)

	orders := []domain.Order{
		fakeOrder(1, domain.OrderStatusPending),
		fakeOrder(2, domain.OrderStatusPending),
	}

	s.mockOrderService.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return(orders, int64(2), nil).
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
				URL:    RouteGroup + OrdersRoute + "?status=pending",
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
					Items []OrderResponse `json:"items"`
					Total int64           `json:"total"`
				}
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&payload))
				s.Equal(int64(2), payload.Total)
				s.Len(payload.Items, 2)
				s.Equal(orders[0].OrderCode, payload.Items[0].OrderCode)
			}
		})
	}
}

func (s *OrdersHandlerTestSuite) TestUpdateStatus() {
	adminJWT, jwtErr := tokens.GenerateAdminJWT(1, time.Hour, s.jwtSecret)
	s.Require().NoError(jwtErr)

	shipped := fakeOrder(1, domain.OrderStatusShipped)

	// Валидный переход.
	s.mockOrderService.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), int64(1), domain.OrderStatusShipped).
		Return(&shipped, nil).Times(1)
	// Заказ в терминальном статусе.
	s.mockOrderService.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), int64(2), domain.OrderStatusCancelled).
		Return(nil, domain.ErrInvalidStatusTransition).Times(1)
	// Заказа нет.
	s.mockOrderService.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), int64(3), domain.OrderStatusShipped).
		Return(nil, domain.ErrRecordNotFound).Times(1)

	cases := []struct {
		name       string
		orderID    string
		payload    []byte
		jwtToken   string
		wantStatus int
	}{
		{
			name:       "all ok",
			orderID:    "1",
			payload:    []byte(`{"status":"shipped"}`),
			jwtToken:   adminJWT,
			wantStatus: http.StatusOK,
		}, {
			name:       "terminal status",
			orderID:    "2",
			payload:    []byte(`{"status":"cancelled"}`),
			jwtToken:   adminJWT,
			wantStatus: http.StatusConflict,
		}, {
			name:       "not found",
			orderID:    "3",
			payload:    []byte(`{"status":"shipped"}`),
			jwtToken:   adminJWT,
			wantStatus: http.StatusNotFound,
		}, {
			name:       "unknown status",
			orderID:    "1",
			payload:    []byte(`{"status":"teleported"}`),
			jwtToken:   adminJWT,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "garbage id",
			orderID:    "abc",
			payload:    []byte(`{"status":"shipped"}`),
			jwtToken:   adminJWT,
			wantStatus: http.StatusNotFound,
		}, {
			name:       "not authorized",
			orderID:    "1",
			payload:    []byte(`{"status":"shipped"}`),
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPatch,
				URL:    fmt.Sprintf("%s/orders/%s/status", RouteGroup, t.orderID),
				Body:   bytes.NewReader(t.payload),
			}
			var reqOpts []func(*testutils.RequestOptions)
			if t.jwtToken != "" {
				authHeader := fmt.Sprintf("Bearer %s", t.jwtToken)
				reqOpts = append(reqOpts, testutils.WithHeader("Authorization", authHeader))
			}
			reqOpts = append(reqOpts, testutils.WithHeader("Content-Type", "application/json"))
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
