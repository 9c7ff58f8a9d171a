package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *ClientTestSuite) TestSendDisbursement() { //nolint:gocognit
	type tcase struct {
		name         string
		reference    string
		httpStatus   int
		retryAfter   string
		wantResponse *Response
		wantErrType  error
		wantRetry    time.Duration
	}

	cases := []tcase{
		{
			name:       "accepted",
			reference:  "55",
			httpStatus: http.StatusOK,
			wantResponse: &Response{
				Reference: "55",
				Status:    StatusAccepted,
			},
		}, {
			name:        "too many requests with retry after",
			reference:   "56",
			httpStatus:  http.StatusTooManyRequests,
			retryAfter:  "5",
			wantErrType: new(TooManyRequestError),
			wantRetry:   5 * time.Second,
		}, {
			// Мусор в заголовке: дефолтные 60 секунд.
			name:        "too many requests garbage header",
			reference:   "57",
			httpStatus:  http.StatusTooManyRequests,
			retryAfter:  "soon",
			wantErrType: new(TooManyRequestError),
			wantRetry:   60 * time.Second,
		}, {
			// Значение за верхней границей тоже сводится к дефолту.
			name:        "too many requests out of bounds",
			reference:   "58",
			httpStatus:  http.StatusTooManyRequests,
			retryAfter:  "600",
			wantErrType: new(TooManyRequestError),
			wantRetry:   60 * time.Second,
		}, {
			name:        "rejected",
			reference:   "59",
			httpStatus:  http.StatusUnprocessableEntity,
			wantErrType: new(StatusCodeError),
		}, {
			name:        "internal error",
			reference:   "60",
			httpStatus:  http.StatusInternalServerError,
			wantErrType: new(StatusCodeError),
		},
	}

	serverHandler := func() func(http.ResponseWriter, *http.Request) {
		return func(w http.ResponseWriter, r *http.Request) {
			s.Require().Equal(RouteDisbursement, r.URL.Path) //nolint:testifylint

			var args DisbursementArgs
			s.Require().NoError(json.NewDecoder(r.Body).Decode(&args)) //nolint:testifylint

			// подбираем кейс по идемпотентному ключу.
			var rc *tcase
			for _, c := range cases {
				if args.Reference == c.reference {
					rc = &c
					break
				}
			}
			s.Require().NotNilf(rc, "тест для заявки %s не найден", args.Reference) //nolint:testifylint

			if rc.retryAfter != "" {
				w.Header().Set("Retry-After", rc.retryAfter)
			}

			var body []byte
			if rc.httpStatus == http.StatusOK {
				w.Header().Set("Content-Type", "application/json")
				var bErr error
				body, bErr = json.Marshal(rc.wantResponse)
				s.NoError(bErr)
			}
			w.WriteHeader(rc.httpStatus)

			if body != nil {
				_, wErr := w.Write(body)
				s.NoError(wErr)
			}
		}
	}

	s.server = httptest.NewServer(http.HandlerFunc(serverHandler()))

	var statusCodeError *StatusCodeError
	var tooManyRequestError *TooManyRequestError

	for _, t := range cases {
		s.Run(t.name, func() {
			c := New(s.server.URL)
			response, err := c.SendDisbursement(s.T().Context(), DisbursementArgs{
				Reference:     t.reference,
				Amount:        decimal.NewFromInt(1000),
				BankName:      "BDO",
				AccountNumber: "0012",
				Provider:      "instapay",
			})

			if t.wantErrType != nil {
				s.Require().Error(err)
				switch {
				case errors.As(t.wantErrType, &statusCodeError):
					s.Require().ErrorAs(err, &statusCodeError)
				case errors.As(t.wantErrType, &tooManyRequestError):
					s.Require().ErrorAs(err, &tooManyRequestError)
					s.Equal(t.wantRetry, tooManyRequestError.RetryAfter)
				default:
					s.FailNow("unexpected err type")
				}
				return
			}

			s.Require().NoError(err)
			s.NotNil(response)
			s.Equal(t.wantResponse, response)
		})
	}
}
