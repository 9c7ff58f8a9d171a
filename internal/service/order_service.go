package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

type OrderService struct {
	uow       uow.UOW
	orderRepo OrderRepository
}

func NewOrderService(u uow.UOW) (*OrderService, error) {
	orderRepo, err := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return nil, err
	}
	return &OrderService{
		uow:       u,
		orderRepo: orderRepo,
	}, nil
}

func (s *OrderService) List(
	ctx context.Context,
	filter repoargs.OrderListFilter,
) ([]domain.Order, int64, error) {
	orders, total, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("listing orders: %w", err)
	}
	return orders, total, nil
}

func (s *OrderService) Get(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting order: %w", err)
	}
	return order, nil
}

// UpdateStatus меняет статус заказа и пишет запись в журнал в одной транзакции.
// Отмененный и доставленный заказ менять нельзя.
func (s *OrderService) UpdateStatus(
	ctx context.Context,
	actor Actor,
	id int64,
	status domain.OrderStatusType,
) (*domain.Order, error) {
	var order *domain.Order

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		orderRepo, repoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		current, getErr := orderRepo.GetWithItems(c, id)
		if getErr != nil {
			return getErr //nolint:wrapcheck
		}
		if isTerminalOrderStatus(current.Status) {
			return fmt.Errorf(
				"%w: order %d is already %s",
				domain.ErrInvalidStatusTransition, id, current.Status,
			)
		}

		var updErr error
		order, updErr = orderRepo.UpdateStatus(c, id, status)
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}

		return appendAudit(c, tx, actor, domain.AuditActionOrderStatusChanged,
			"order", strconv.FormatInt(id, 10),
			fmt.Sprintf("%s -> %s", current.Status, status),
		)
	})

	if txErr != nil {
		return nil, fmt.Errorf("updating order status: %w", txErr)
	}
	return order, nil
}

func isTerminalOrderStatus(s domain.OrderStatusType) bool {
	return s == domain.OrderStatusDelivered || s == domain.OrderStatusCancelled
}
