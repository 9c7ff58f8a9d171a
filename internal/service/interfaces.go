package service

import (
	"context"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type AdminUserRepository interface {
	Create(ctx context.Context, args repoargs.CreateAdminUser) (*domain.AdminUser, error)
	FindByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
	Count(ctx context.Context) (int64, error)
}

type OrderRepository interface {
	List(ctx context.Context, filter repoargs.OrderListFilter) ([]domain.Order, int64, error)
	GetWithItems(ctx context.Context, id int64) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatusType) (*domain.Order, error)
}

type SellerRepository interface {
	List(ctx context.Context, filter repoargs.SellerListFilter) ([]domain.Seller, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Seller, error)
	UpdateStatus(ctx context.Context, id int64, status domain.SellerStatusType) (*domain.Seller, error)
	SetRestricted(ctx context.Context, id int64, restricted bool) (*domain.Seller, error)
}

type CustomerRepository interface {
	List(ctx context.Context, filter repoargs.CustomerListFilter) ([]domain.Customer, int64, error)
	SetActive(ctx context.Context, id int64, active bool) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type ProductRepository interface {
	List(ctx context.Context, filter repoargs.ProductListFilter) ([]domain.Product, int64, error)
	SetPublished(ctx context.Context, id int64, published bool) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

type WithdrawalRepository interface {
	List(ctx context.Context, filter repoargs.WithdrawalListFilter) ([]domain.WithdrawalRequest, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.WithdrawalRequest, error)
	Approve(ctx context.Context, args repoargs.WithdrawalApprove) (*domain.WithdrawalRequest, error)
	Reject(ctx context.Context, id int64) (*domain.WithdrawalRequest, error)
	MarkReleased(ctx context.Context, id int64) (*domain.WithdrawalRequest, error)
	MarkHeld(ctx context.Context, id int64) (*domain.WithdrawalRequest, error)
	GetApprovedForDisbursement(ctx context.Context, limit uint) ([]domain.WithdrawalRequest, error)
	IncrementAttempts(ctx context.Context, id int64) error
	AttachProof(ctx context.Context, id int64, path string) error
}

type BannerRepository interface {
	List(ctx context.Context, p repoargs.Pagination) ([]domain.Banner, int64, error)
	Create(ctx context.Context, args repoargs.BannerSave) (*domain.Banner, error)
	Update(ctx context.Context, id int64, args repoargs.BannerSave) (*domain.Banner, error)
	Toggle(ctx context.Context, id int64) (*domain.Banner, error)
	Delete(ctx context.Context, id int64) error
}

type AnnouncementRepository interface {
	List(ctx context.Context, p repoargs.Pagination) ([]domain.Announcement, int64, error)
	Create(ctx context.Context, args repoargs.AnnouncementSave) (*domain.Announcement, error)
	Update(ctx context.Context, id int64, args repoargs.AnnouncementSave) (*domain.Announcement, error)
	Toggle(ctx context.Context, id int64) (*domain.Announcement, error)
	Delete(ctx context.Context, id int64) error
}

type AuditLogRepository interface {
	Append(ctx context.Context, args repoargs.AuditAppend) (*domain.AuditLogEntry, error)
	List(ctx context.Context, filter repoargs.AuditListFilter) ([]domain.AuditLogEntry, int64, error)
}

type ReportRepository interface {
	OrderTotals(ctx context.Context, period repoargs.ReportPeriod) (*repoargs.OrderTotals, error)
	CollectedCommission(ctx context.Context, period repoargs.ReportPeriod) (decimal.Decimal, error)
	DashboardCounts(ctx context.Context) (*repoargs.DashboardCounts, error)
}
