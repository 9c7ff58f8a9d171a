package payout

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/service"
	"github.com/fsdevblog/groph-market/internal/transport/payout/client"
)

type Client interface {
	SendDisbursement(ctx context.Context, args client.DisbursementArgs) (*client.Response, error)
}

type Servicer interface {
	ApprovedForDisbursement(ctx context.Context, limit uint) ([]domain.WithdrawalRequest, error)
	IncrementAttempts(ctx context.Context, id int64) error
	Release(ctx context.Context, actor service.Actor, id int64) (*domain.WithdrawalRequest, error)
	Hold(ctx context.Context, actor service.Actor, id int64, reason string) (*domain.WithdrawalRequest, error)
}
