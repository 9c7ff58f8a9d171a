package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

type ProductService struct {
	uow         uow.UOW
	productRepo ProductRepository
}

func NewProductService(u uow.UOW) (*ProductService, error) {
	productRepo, err := uow.GetRepositoryAs[ProductRepository](u, uow.RepositoryName(repoargs.ProductRepoName))
	if err != nil {
		return nil, err
	}
	return &ProductService{
		uow:         u,
		productRepo: productRepo,
	}, nil
}

func (s *ProductService) List(
	ctx context.Context,
	filter repoargs.ProductListFilter,
) ([]domain.Product, int64, error) {
	products, total, err := s.productRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("listing products: %w", err)
	}
	return products, total, nil
}

// SetPublished скрывает или публикует товар в каталоге.
func (s *ProductService) SetPublished(
	ctx context.Context,
	actor Actor,
	id int64,
	published bool,
) (*domain.Product, error) {
	var product *domain.Product

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		productRepo, repoErr := uow.GetAs[ProductRepository](tx, uow.RepositoryName(repoargs.ProductRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		var updErr error
		product, updErr = productRepo.SetPublished(c, id, published)
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}

		return appendAudit(c, tx, actor, domain.AuditActionProductToggled,
			"product", strconv.FormatInt(id, 10), strconv.FormatBool(published))
	})

	if txErr != nil {
		return nil, fmt.Errorf("toggling product: %w", txErr)
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, actor Actor, id int64) error {
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		productRepo, repoErr := uow.GetAs[ProductRepository](tx, uow.RepositoryName(repoargs.ProductRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		if delErr := productRepo.Delete(c, id); delErr != nil {
			return delErr //nolint:wrapcheck
		}

		return appendAudit(c, tx, actor, domain.AuditActionProductDeleted,
			"product", strconv.FormatInt(id, 10), "")
	})

	if txErr != nil {
		return fmt.Errorf("deleting product: %w", txErr)
	}
	return nil
}
