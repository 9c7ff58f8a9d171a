package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const RouteDisbursement = "/api/disbursements"

// Константы минимального и максимального значения в заголовке Retry-After.
const (
	minRetryAfter = 1
	maxRetryAfter = 120
)

type StatusType string

const (
	StatusAccepted  StatusType = "ACCEPTED"
	StatusCompleted StatusType = "COMPLETED"
)

// DisbursementArgs параметры перечисления. Reference - идемпотентный ключ
// (номер заявки), повторная отправка с тем же ключом не создает второй платеж.
type DisbursementArgs struct {
	Reference     string          `json:"reference"`
	Amount        decimal.Decimal `json:"amount"`
	BankName      string          `json:"bank_name"`
	AccountNumber string          `json:"account_number"`
	Provider      string          `json:"provider"`
}

type Response struct {
	Reference string     `json:"reference"`
	Status    StatusType `json:"status"`
}

// HTTPClient является реализацией интерфейса Client для HTTP запросов к
// платежному шлюзу.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) HTTPClient {
	return HTTPClient{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// SendDisbursement отправляет поручение на выплату. При ответе сервера со
// статусом отличным от 2xx возвращает ошибку StatusCodeError, или
// TooManyRequestError в случае http.StatusTooManyRequests.
//
//nolint:nonamedreturns
func (c HTTPClient) SendDisbursement(
	ctx context.Context,
	args DisbursementArgs,
) (response *Response, err error) {
	payload, marshalErr := json.Marshal(args)
	if marshalErr != nil {
		return nil, errors.Wrap(marshalErr, "marshal request")
	}

	url := c.baseURL + RouteDisbursement

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if reqErr != nil {
		return nil, errors.Wrap(reqErr, "create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, errors.Wrap(doErr, "do request")
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "close response body")
		}
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, NewTooManyRequestError(parseRetryAfter(resp.Header.Get("Retry-After")))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err = NewStatusCodeError(resp.StatusCode)
		return nil, err
	}

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		err = errors.Wrap(readErr, "read response")
		return nil, err
	}

	if jsonErr := json.Unmarshal(body, &response); jsonErr != nil {
		err = errors.Wrap(jsonErr, "parse response")
		return nil, err
	}

	return response, nil
}

// parseRetryAfter разбирает заголовок Retry-After и ограничивает значение
// рамками [minRetryAfter, maxRetryAfter]. В случае мусора в заголовке - 60
// секунд.
func parseRetryAfter(header string) time.Duration {
	minValue := decimal.NewFromInt(minRetryAfter)
	maxValue := decimal.NewFromInt(maxRetryAfter)

	retryAfter, parseErr := decimal.NewFromString(header)
	if parseErr != nil || retryAfter.LessThan(minValue) || retryAfter.GreaterThan(maxValue) {
		retryAfter = decimal.NewFromInt(60) //nolint:mnd
	}

	return time.Duration(retryAfter.IntPart()) * time.Second
}
