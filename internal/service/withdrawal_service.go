package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/money"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/internal/search"
	"github.com/fsdevblog/groph-market/pkg/uow"
	"github.com/shopspring/decimal"
)

type WithdrawalService struct {
	uow            uow.UOW
	withdrawalRepo WithdrawalRepository
	commissionRate decimal.Decimal
}

func NewWithdrawalService(u uow.UOW, commissionRate decimal.Decimal) (*WithdrawalService, error) {
	withdrawalRepo, err := uow.GetRepositoryAs[WithdrawalRepository](u, uow.RepositoryName(repoargs.WithdrawalRepoName))
	if err != nil {
		return nil, err
	}
	return &WithdrawalService{
		uow:            u,
		withdrawalRepo: withdrawalRepo,
		commissionRate: commissionRate,
	}, nil
}

// List возвращает заявки на вывод. Запрос query фильтрует выборку по подстроке
// без учета регистра сразу по нескольким полям: имя продавца, банк, номер
// счета, провайдер и номер заявки.
func (s *WithdrawalService) List(
	ctx context.Context,
	filter repoargs.WithdrawalListFilter,
	query string,
) ([]domain.WithdrawalRequest, int64, error) {
	withdrawals, total, err := s.withdrawalRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("listing withdrawals: %w", err)
	}

	if query != "" {
		withdrawals = search.Filter(withdrawals, query, func(w domain.WithdrawalRequest) []string {
			return []string{
				strconv.FormatInt(w.ID, 10),
				w.SellerName,
				w.BankName,
				w.AccountNumber,
				w.Provider,
			}
		})
		total = int64(len(withdrawals))
	}
	return withdrawals, total, nil
}

func (s *WithdrawalService) Get(ctx context.Context, id int64) (*domain.WithdrawalRequest, error) {
	w, err := s.withdrawalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting withdrawal: %w", err)
	}
	return w, nil
}

// Approve одобряет заявку и фиксирует комиссию по текущей ставке. Повторное
// одобрение (или одобрение отклоненной заявки) даст domain.ErrRecordNotFound:
// условие на статус pending зашито в запрос репозитория.
func (s *WithdrawalService) Approve(ctx context.Context, actor Actor, id int64) (*domain.WithdrawalRequest, error) {
	var w *domain.WithdrawalRequest

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		withdrawalRepo, repoErr := uow.GetAs[WithdrawalRepository](tx, uow.RepositoryName(repoargs.WithdrawalRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		current, getErr := withdrawalRepo.GetByID(c, id)
		if getErr != nil {
			return getErr //nolint:wrapcheck
		}

		split := money.SplitRevenue(current.Amount, s.commissionRate)

		var updErr error
		w, updErr = withdrawalRepo.Approve(c, repoargs.WithdrawalApprove{
			ID:         id,
			Commission: split.Commission,
		})
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}

		return appendAudit(c, tx, actor, domain.AuditActionWithdrawalApproved,
			"withdrawal", strconv.FormatInt(id, 10),
			fmt.Sprintf("commission %s", split.Commission.StringFixed(2)),
		)
	})

	if txErr != nil {
		return nil, fmt.Errorf("approving withdrawal: %w", txErr)
	}
	return w, nil
}

func (s *WithdrawalService) Reject(ctx context.Context, actor Actor, id int64, reason string) (*domain.WithdrawalRequest, error) {
	var w *domain.WithdrawalRequest

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		withdrawalRepo, repoErr := uow.GetAs[WithdrawalRepository](tx, uow.RepositoryName(repoargs.WithdrawalRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		var updErr error
		w, updErr = withdrawalRepo.Reject(c, id)
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}

		return appendAudit(c, tx, actor, domain.AuditActionWithdrawalRejected,
			"withdrawal", strconv.FormatInt(id, 10), reason)
	})

	if txErr != nil {
		return nil, fmt.Errorf("rejecting withdrawal: %w", txErr)
	}
	return w, nil
}

// Release помечает одобренную заявку выплаченной. Вызывается обработчиком
// выплат после успешного ответа шлюза.
func (s *WithdrawalService) Release(ctx context.Context, actor Actor, id int64) (*domain.WithdrawalRequest, error) {
	var w *domain.WithdrawalRequest

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		withdrawalRepo, repoErr := uow.GetAs[WithdrawalRepository](tx, uow.RepositoryName(repoargs.WithdrawalRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		var updErr error
		w, updErr = withdrawalRepo.MarkReleased(c, id)
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}

		return appendAudit(c, tx, actor, domain.AuditActionWithdrawalReleased,
			"withdrawal", strconv.FormatInt(id, 10), "")
	})

	if txErr != nil {
		return nil, fmt.Errorf("releasing withdrawal: %w", txErr)
	}
	return w, nil
}

// Hold замораживает одобренную заявку, когда шлюз отказал в выплате.
func (s *WithdrawalService) Hold(ctx context.Context, actor Actor, id int64, reason string) (*domain.WithdrawalRequest, error) {
	var w *domain.WithdrawalRequest

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		withdrawalRepo, repoErr := uow.GetAs[WithdrawalRepository](tx, uow.RepositoryName(repoargs.WithdrawalRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		var updErr error
		w, updErr = withdrawalRepo.MarkHeld(c, id)
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}

		return appendAudit(c, tx, actor, domain.AuditActionWithdrawalHeld,
			"withdrawal", strconv.FormatInt(id, 10), reason)
	})

	if txErr != nil {
		return nil, fmt.Errorf("holding withdrawal: %w", txErr)
	}
	return w, nil
}

// ApprovedForDisbursement одобренные заявки, ожидающие перечисления, старые
// вперед.
func (s *WithdrawalService) ApprovedForDisbursement(
	ctx context.Context,
	limit uint,
) ([]domain.WithdrawalRequest, error) {
	withdrawals, err := s.withdrawalRepo.GetApprovedForDisbursement(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("fetching approved withdrawals: %w", err)
	}
	return withdrawals, nil
}

func (s *WithdrawalService) IncrementAttempts(ctx context.Context, id int64) error {
	if err := s.withdrawalRepo.IncrementAttempts(ctx, id); err != nil {
		return fmt.Errorf("incrementing withdrawal attempts: %w", err)
	}
	return nil
}

// AttachProof привязывает к заявке загруженное подтверждение перевода.
func (s *WithdrawalService) AttachProof(ctx context.Context, actor Actor, id int64, path string) error {
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		withdrawalRepo, repoErr := uow.GetAs[WithdrawalRepository](tx, uow.RepositoryName(repoargs.WithdrawalRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		if attachErr := withdrawalRepo.AttachProof(c, id, path); attachErr != nil {
			return attachErr //nolint:wrapcheck
		}

		return appendAudit(c, tx, actor, domain.AuditActionWithdrawalProofAttached,
			"withdrawal", strconv.FormatInt(id, 10), path)
	})

	if txErr != nil {
		return fmt.Errorf("attaching withdrawal proof: %w", txErr)
	}
	return nil
}
