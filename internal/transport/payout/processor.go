// Package payout перечисляет одобренные заявки на вывод средств продавцам
// через внешний платежный шлюз.
package payout

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/service"
	"github.com/fsdevblog/groph-market/internal/transport/payout/client"
	"github.com/sirupsen/logrus"
)

const (
	defaultServiceTimeout         = 3 * time.Second
	defaultGatewayTimeout         = 10 * time.Second
	defaultLimitPerIteration uint = 100
	defaultPayoutWorkers     uint = 10
	defaultMaxAttempts       uint = 5

	idleBackoffBase   = time.Second
	idleBackoffJitter = 500 * time.Millisecond
)

// systemActor действующее лицо для записей журнала, сделанных обработчиком, а
// не администратором.
var systemActor = service.Actor{RequestID: "payout-processor"}

// Processor перечисляет выплаты по одобренным заявкам через платежный шлюз.
type Processor struct {
	client            Client
	svs               Servicer
	l                 *logrus.Entry
	limitPerIteration uint
	payoutWorkers     uint
	maxAttempts       uint
}

// New создает новый экземпляр обработчика выплат.
func New(svs Servicer, gatewayBaseURL string, l *logrus.Logger) *Processor {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "payout",
		"module":    "processor",
	})

	return &Processor{
		svs:               svs,
		client:            client.New(gatewayBaseURL),
		l:                 loggerEntry,
		limitPerIteration: defaultLimitPerIteration,
		payoutWorkers:     defaultPayoutWorkers,
		maxAttempts:       defaultMaxAttempts,
	}
}

// SetLimitPerIteration устанавливает кол-во заявок, обрабатываемых в одной итерации обработчика.
func (p *Processor) SetLimitPerIteration(limit uint) *Processor {
	p.limitPerIteration = limit
	return p
}

// SetPayoutWorkers устанавливает кол-во воркеров, работающих с заявками.
func (p *Processor) SetPayoutWorkers(workers uint) *Processor {
	p.payoutWorkers = workers
	return p
}

// SetMaxAttempts устанавливает предел неудачных попыток, после которого заявка
// замораживается.
func (p *Processor) SetMaxAttempts(attempts uint) *Processor {
	p.maxAttempts = attempts
	return p
}

// Run запускает обработку заявок в бесконечном цикле до отмены контекста.
//
// Алгоритм работы:
//  1. В каждой итерации запрашивает через сервисный слой одобренные заявки.
//     Объем списка лимитируется через SetLimitPerIteration.
//  2. Для каждой итерации создаются N воркеров (кол-во настраивается через
//     SetPayoutWorkers), которые отправляют поручения на выплату в шлюз.
//  3. Успех помечает заявку выплаченной; окончательный отказ шлюза (4xx) или
//     исчерпание попыток замораживает ее; временный сбой (5xx) увеличивает
//     счетчик попыток, заявка будет повторена в следующих итерациях.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithFields(logrus.Fields{
		"limitPerIteration": p.limitPerIteration,
		"payoutWorkers":     p.payoutWorkers,
		"maxAttempts":       p.maxAttempts,
	}).Info("Starting")

	for {
		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		default:
			if err := p.process(ctx); err != nil {
				switch {
				case errors.Is(err, ErrNoWithdrawals):
				case errors.Is(err, ErrGatewayDegraded):
					p.l.WithError(err).Warn("backing off")
				default:
					p.l.WithError(err).Error("process error")
				}
				// пауза со случайным разбросом чтоб не заддосить БД и шлюз.
				idleSleep(ctx)
			}
		}
	}
}

// process выполняет цикл обработки: получение списка, поручения шлюзу и
// фиксация результатов. Возвращает ErrNoWithdrawals если очередь пуста, и
// ErrGatewayDegraded если хоть одна заявка отложена из-за временного сбоя:
// долбить лежащий шлюз без паузы нет смысла.
func (p *Processor) process(ctx context.Context) error {
	withdrawals, produceErr := p.produce(ctx)
	if produceErr != nil {
		return fmt.Errorf("process: %w", produceErr)
	}

	results := p.runWorkers(ctx, withdrawals)

	var requeued bool
	for _, result := range results {
		retry, err := p.settle(ctx, result)
		if err != nil {
			return fmt.Errorf("process: %s", err.Error())
		}
		requeued = requeued || retry
	}

	if requeued {
		return ErrGatewayDegraded
	}
	return nil
}

// settle фиксирует итог одной заявки через сервисный слой. Возвращает true,
// если заявка отложена на повтор в следующих итерациях.
func (p *Processor) settle(ctx context.Context, result workerResult) (bool, error) {
	reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	w := result.Withdrawal

	if result.Error == nil {
		if _, err := p.svs.Release(reqCtx, systemActor, w.ID); err != nil {
			return false, fmt.Errorf("releasing withdrawal %d: %w", w.ID, err)
		}
		return false, nil
	}

	var statusErr *client.StatusCodeError
	if errors.As(result.Error, &statusErr) && statusErr.Permanent() {
		if _, err := p.svs.Hold(reqCtx, systemActor, w.ID, statusErr.Error()); err != nil {
			return false, fmt.Errorf("holding withdrawal %d: %w", w.ID, err)
		}
		return false, nil
	}

	// временный сбой: считаем попытку, после исчерпания лимита замораживаем.
	if w.Attempts+1 >= p.maxAttempts {
		reason := fmt.Sprintf("gateway failed after %d attempts: %s", w.Attempts+1, result.Error.Error())
		if _, err := p.svs.Hold(reqCtx, systemActor, w.ID, reason); err != nil {
			return false, fmt.Errorf("holding withdrawal %d: %w", w.ID, err)
		}
		return false, nil
	}

	if err := p.svs.IncrementAttempts(reqCtx, w.ID); err != nil {
		return false, fmt.Errorf("incrementing attempts for withdrawal %d: %w", w.ID, err)
	}
	return true, nil
}

// workerResult результат работы воркера по одной заявке.
type workerResult struct {
	WorkerID   uint
	Withdrawal *domain.WithdrawalRequest
	Error      error
}

// runWorkers запускает параллельных воркеров для отправки поручений и ожидает
// конца их работы. Реализует паттерн fan-out/fan-in.
func (p *Processor) runWorkers(ctx context.Context, withdrawals []domain.WithdrawalRequest) []workerResult {
	var taskCh = make(chan *domain.WithdrawalRequest, len(withdrawals))

	for _, w := range withdrawals {
		taskCh <- &w
	}
	close(taskCh)

	wg := new(sync.WaitGroup)
	wg.Add(int(p.payoutWorkers)) // nolint:gosec

	var resultCh = make(chan *workerResult, len(withdrawals))

	for i := range p.payoutWorkers {
		go p.worker(ctx, wg, i+1, taskCh, resultCh)
	}
	wg.Wait()

	close(resultCh)

	var results = make([]workerResult, 0, len(withdrawals))
	for result := range resultCh {
		l := p.l.WithFields(logrus.Fields{
			"worker":       result.WorkerID,
			"withdrawalID": result.Withdrawal.ID,
			"attempt":      result.Withdrawal.Attempts + 1,
		})
		if result.Error != nil {
			l.WithError(result.Error).Error("send disbursement")
		} else {
			l.WithField("amount", result.Withdrawal.Amount).Info("Success")
		}
		results = append(results, *result)
	}
	return results
}

// worker обрабатывает заявки из канала и отправляет результаты.
func (p *Processor) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	workerID uint,
	taskCh <-chan *domain.WithdrawalRequest,
	resultCh chan<- *workerResult,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-taskCh:
			if !ok {
				return
			}
			resultCh <- p.processWorkerTask(ctx, workerID, task)
		}
	}
}

// processWorkerTask отправляет поручение в шлюз. В случае ответа 429 ждет N
// секунд, указанные в заголовке Retry-After, и повторяет.
func (p *Processor) processWorkerTask(
	ctx context.Context,
	workerID uint,
	task *domain.WithdrawalRequest,
) *workerResult {
	for {
		reqCtx, cancel := context.WithTimeout(ctx, defaultGatewayTimeout)
		_, err := p.client.SendDisbursement(reqCtx, client.DisbursementArgs{
			Reference:     strconv.FormatInt(task.ID, 10),
			Amount:        task.Amount.Sub(task.CommissionAmount),
			BankName:      task.BankName,
			AccountNumber: task.AccountNumber,
			Provider:      task.Provider,
		})
		cancel()

		result := workerResult{
			WorkerID:   workerID,
			Withdrawal: task,
		}

		if err != nil {
			var tooManyReq *client.TooManyRequestError
			if errors.As(err, &tooManyReq) {
				// Проверяем отмену контекста перед спячкой
				select {
				case <-ctx.Done():
					result.Error = ctx.Err()
					return &result
				case <-time.After(tooManyReq.RetryAfter):
					continue
				}
			}
			result.Error = err
		}

		return &result
	}
}

// produce получает одобренные заявки для перечисления.
// Возвращает ErrNoWithdrawals, если заявки отсутствуют.
func (p *Processor) produce(ctx context.Context) ([]domain.WithdrawalRequest, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	withdrawals, err := p.svs.ApprovedForDisbursement(produceCtx, p.limitPerIteration)
	if err != nil {
		return nil, fmt.Errorf("produce: %w", err)
	}

	if len(withdrawals) == 0 {
		return nil, ErrNoWithdrawals
	}
	return withdrawals, nil
}

func idleSleep(ctx context.Context) {
	jitter := time.Duration(rand.Int64N(int64(idleBackoffJitter))) //nolint:gosec
	select {
	case <-ctx.Done():
	case <-time.After(idleBackoffBase + jitter):
	}
}
