package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

type SellerService struct {
	uow        uow.UOW
	sellerRepo SellerRepository
}

func NewSellerService(u uow.UOW) (*SellerService, error) {
	sellerRepo, err := uow.GetRepositoryAs[SellerRepository](u, uow.RepositoryName(repoargs.SellerRepoName))
	if err != nil {
		return nil, err
	}
	return &SellerService{
		uow:        u,
		sellerRepo: sellerRepo,
	}, nil
}

func (s *SellerService) List(
	ctx context.Context,
	filter repoargs.SellerListFilter,
) ([]domain.Seller, int64, error) {
	sellers, total, err := s.sellerRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("listing sellers: %w", err)
	}
	return sellers, total, nil
}

// Applications заявки продавцов, ожидающие модерации.
func (s *SellerService) Applications(
	ctx context.Context,
	p repoargs.Pagination,
) ([]domain.Seller, int64, error) {
	return s.List(ctx, repoargs.SellerListFilter{
		Pagination: p,
		Status:     domain.SellerStatusPending,
	})
}

func (s *SellerService) Get(ctx context.Context, id int64) (*domain.Seller, error) {
	seller, err := s.sellerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting seller: %w", err)
	}
	return seller, nil
}

// Approve одобряет заявку продавца. Заявка не в статусе pending даст
// domain.ErrRecordNotFound (условие на статус в репозитории).
func (s *SellerService) Approve(ctx context.Context, actor Actor, id int64) (*domain.Seller, error) {
	return s.moderate(ctx, actor, id, domain.SellerStatusApproved, domain.AuditActionSellerApproved, "")
}

func (s *SellerService) Reject(ctx context.Context, actor Actor, id int64, reason string) (*domain.Seller, error) {
	return s.moderate(ctx, actor, id, domain.SellerStatusRejected, domain.AuditActionSellerRejected, reason)
}

func (s *SellerService) moderate(
	ctx context.Context,
	actor Actor,
	id int64,
	status domain.SellerStatusType,
	action domain.AuditActionType,
	details string,
) (*domain.Seller, error) {
	var seller *domain.Seller

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		sellerRepo, repoErr := uow.GetAs[SellerRepository](tx, uow.RepositoryName(repoargs.SellerRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		var updErr error
		seller, updErr = sellerRepo.UpdateStatus(c, id, status)
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}

		return appendAudit(c, tx, actor, action, "seller", strconv.FormatInt(id, 10), details)
	})

	if txErr != nil {
		return nil, fmt.Errorf("moderating seller: %w", txErr)
	}
	return seller, nil
}

// SetRestricted включает/выключает ограничение продаж для продавца.
func (s *SellerService) SetRestricted(
	ctx context.Context,
	actor Actor,
	id int64,
	restricted bool,
) (*domain.Seller, error) {
	var seller *domain.Seller

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		sellerRepo, repoErr := uow.GetAs[SellerRepository](tx, uow.RepositoryName(repoargs.SellerRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		var updErr error
		seller, updErr = sellerRepo.SetRestricted(c, id, restricted)
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}

		return appendAudit(c, tx, actor, domain.AuditActionSellerRestricted,
			"seller", strconv.FormatInt(id, 10), strconv.FormatBool(restricted))
	})

	if txErr != nil {
		return nil, fmt.Errorf("restricting seller: %w", txErr)
	}
	return seller, nil
}
