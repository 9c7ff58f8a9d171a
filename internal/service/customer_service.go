package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

type CustomerService struct {
	uow          uow.UOW
	customerRepo CustomerRepository
}

func NewCustomerService(u uow.UOW) (*CustomerService, error) {
	customerRepo, err := uow.GetRepositoryAs[CustomerRepository](u, uow.RepositoryName(repoargs.CustomerRepoName))
	if err != nil {
		return nil, err
	}
	return &CustomerService{
		uow:          u,
		customerRepo: customerRepo,
	}, nil
}

func (s *CustomerService) List(
	ctx context.Context,
	filter repoargs.CustomerListFilter,
) ([]domain.Customer, int64, error) {
	customers, total, err := s.customerRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("listing customers: %w", err)
	}
	return customers, total, nil
}

// SetActive блокирует или разблокирует покупателя.
func (s *CustomerService) SetActive(
	ctx context.Context,
	actor Actor,
	id int64,
	active bool,
) (*domain.Customer, error) {
	var customer *domain.Customer

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		customerRepo, repoErr := uow.GetAs[CustomerRepository](tx, uow.RepositoryName(repoargs.CustomerRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		var updErr error
		customer, updErr = customerRepo.SetActive(c, id, active)
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}

		return appendAudit(c, tx, actor, domain.AuditActionCustomerToggled,
			"customer", strconv.FormatInt(id, 10), strconv.FormatBool(active))
	})

	if txErr != nil {
		return nil, fmt.Errorf("toggling customer: %w", txErr)
	}
	return customer, nil
}

func (s *CustomerService) Delete(ctx context.Context, actor Actor, id int64) error {
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		customerRepo, repoErr := uow.GetAs[CustomerRepository](tx, uow.RepositoryName(repoargs.CustomerRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		if delErr := customerRepo.Delete(c, id); delErr != nil {
			return delErr //nolint:wrapcheck
		}

		return appendAudit(c, tx, actor, domain.AuditActionCustomerDeleted,
			"customer", strconv.FormatInt(id, 10), "")
	})

	if txErr != nil {
		return fmt.Errorf("deleting customer: %w", txErr)
	}
	return nil
}
