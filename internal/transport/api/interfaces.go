package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/internal/service"
)

// AuthServicer интерфейс исключительно для моков.
type AuthServicer interface {
	Login(ctx context.Context, args service.LoginArgs) (*domain.AdminUser, string, error)
	Register(ctx context.Context, args service.RegisterArgs) (*domain.AdminUser, string, error)
}

type OrderServicer interface {
	List(ctx context.Context, filter repoargs.OrderListFilter) ([]domain.Order, int64, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
	UpdateStatus(
		ctx context.Context,
		actor service.Actor,
		id int64,
		status domain.OrderStatusType,
	) (*domain.Order, error)
}

type SellerServicer interface {
	List(ctx context.Context, filter repoargs.SellerListFilter) ([]domain.Seller, int64, error)
	Applications(ctx context.Context, p repoargs.Pagination) ([]domain.Seller, int64, error)
	Get(ctx context.Context, id int64) (*domain.Seller, error)
	Approve(ctx context.Context, actor service.Actor, id int64) (*domain.Seller, error)
	Reject(ctx context.Context, actor service.Actor, id int64, reason string) (*domain.Seller, error)
	SetRestricted(ctx context.Context, actor service.Actor, id int64, restricted bool) (*domain.Seller, error)
}

type CustomerServicer interface {
	List(ctx context.Context, filter repoargs.CustomerListFilter) ([]domain.Customer, int64, error)
	SetActive(ctx context.Context, actor service.Actor, id int64, active bool) (*domain.Customer, error)
	Delete(ctx context.Context, actor service.Actor, id int64) error
}

type ProductServicer interface {
	List(ctx context.Context, filter repoargs.ProductListFilter) ([]domain.Product, int64, error)
	SetPublished(ctx context.Context, actor service.Actor, id int64, published bool) (*domain.Product, error)
	Delete(ctx context.Context, actor service.Actor, id int64) error
}

type WithdrawalServicer interface {
	List(
		ctx context.Context,
		filter repoargs.WithdrawalListFilter,
		query string,
	) ([]domain.WithdrawalRequest, int64, error)
	Get(ctx context.Context, id int64) (*domain.WithdrawalRequest, error)
	Approve(ctx context.Context, actor service.Actor, id int64) (*domain.WithdrawalRequest, error)
	Reject(ctx context.Context, actor service.Actor, id int64, reason string) (*domain.WithdrawalRequest, error)
	AttachProof(ctx context.Context, actor service.Actor, id int64, path string) error
}

type BannerServicer interface {
	List(ctx context.Context, p repoargs.Pagination) ([]domain.Banner, int64, error)
	Create(ctx context.Context, actor service.Actor, args repoargs.BannerSave) (*domain.Banner, error)
	Update(ctx context.Context, actor service.Actor, id int64, args repoargs.BannerSave) (*domain.Banner, error)
	Toggle(ctx context.Context, actor service.Actor, id int64) (*domain.Banner, error)
	Delete(ctx context.Context, actor service.Actor, id int64) error
}

type AnnouncementServicer interface {
	List(ctx context.Context, p repoargs.Pagination) ([]domain.Announcement, int64, error)
	Create(ctx context.Context, actor service.Actor, args repoargs.AnnouncementSave) (*domain.Announcement, error)
	Update(
		ctx context.Context,
		actor service.Actor,
		id int64,
		args repoargs.AnnouncementSave,
	) (*domain.Announcement, error)
	Toggle(ctx context.Context, actor service.Actor, id int64) (*domain.Announcement, error)
	Delete(ctx context.Context, actor service.Actor, id int64) error
}

type AuditServicer interface {
	List(ctx context.Context, filter repoargs.AuditListFilter) ([]domain.AuditLogEntry, int64, error)
}

type ReportServicer interface {
	Commission(ctx context.Context, period repoargs.ReportPeriod) (*service.CommissionReport, error)
	Dashboard(ctx context.Context) (*service.Dashboard, error)
}
