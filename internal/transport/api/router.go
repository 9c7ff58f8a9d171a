package api

import (
	"fmt"
	"time"

	"github.com/fsdevblog/groph-market/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup    = "/api/admin"
	PaymentsGroup = "/payments"

	LoginRoute    = "/login"
	RegisterRoute = "/register"

	DashboardRoute = "/dashboard"

	OrdersRoute       = "/orders"
	OrderRoute        = "/orders/:id"
	OrderStatusRoute  = "/orders/:id/status"
	SellersRoute      = "/sellers"
	SellerAppsRoute   = "/sellers/applications"
	SellerRoute       = "/sellers/:id"
	SellerApprove     = "/sellers/:id/approve"
	SellerReject      = "/sellers/:id/reject"
	SellerRestrict    = "/sellers/:id/restrict"
	UsersRoute        = "/users"
	UserToggleRoute   = "/users/:id/toggle"
	UserRoute         = "/users/:id"
	ProductsRoute     = "/products"
	ProductPublish    = "/products/:id/publish"
	ProductRoute      = "/products/:id"
	BannersRoute      = "/banners"
	BannerRoute       = "/banners/:id"
	BannerToggle      = "/banners/:id/toggle"
	AnnouncesRoute    = "/announcements"
	AnnounceRoute     = "/announcements/:id"
	AnnounceToggle    = "/announcements/:id/toggle"
	AuditLogsRoute    = "/audit-logs"
	ReportsCommission = "/reports/commission"

	WithdrawalsRoute       = "/admin/withdrawals"
	WithdrawalApproveRoute = "/:id/approve"
	WithdrawalRejectRoute  = "/:id/reject"
	WithdrawalStatusRoute  = "/:id/status"
	WithdrawalProofRoute   = "/:id/proof"

	UploadTempRoute = "/upload/temp"
)

type RouterArgs struct {
	Logger              *logrus.Logger
	AuthService         AuthServicer
	OrderService        OrderServicer
	SellerService       SellerServicer
	CustomerService     CustomerServicer
	ProductService      ProductServicer
	WithdrawalService   WithdrawalServicer
	BannerService       BannerServicer
	AnnouncementService AnnouncementServicer
	AuditService        AuditServicer
	ReportService       ReportServicer
	UploadDir           string
	JWTSecretKey        []byte
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("building router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.AuthService)
	ordersHandler := NewOrdersHandler(args.OrderService)
	sellersHandler := NewSellersHandler(args.SellerService)
	customersHandler := NewCustomersHandler(args.CustomerService)
	productsHandler := NewProductsHandler(args.ProductService)
	withdrawalsHandler := NewWithdrawalsHandler(args.WithdrawalService)
	bannersHandler := NewBannersHandler(args.BannerService)
	announcementsHandler := NewAnnouncementsHandler(args.AnnouncementService)
	auditHandler := NewAuditHandler(args.AuditService)
	reportsHandler := NewReportsHandler(args.ReportService)
	uploadsHandler := NewUploadsHandler(args.UploadDir)

	admin := r.Group(RouteGroup)

	admin.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)
	admin.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)

	admin.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного администратора.
	admin.GET(DashboardRoute, reportsHandler.Dashboard)

	admin.GET(OrdersRoute, ordersHandler.Index)
	admin.GET(OrderRoute, ordersHandler.Show)
	admin.PATCH(OrderStatusRoute, ordersHandler.UpdateStatus)

	admin.GET(SellersRoute, sellersHandler.Index)
	admin.GET(SellerAppsRoute, sellersHandler.Applications)
	admin.GET(SellerRoute, sellersHandler.Show)
	admin.POST(SellerApprove, sellersHandler.Approve)
	admin.POST(SellerReject, sellersHandler.Reject)
	admin.POST(SellerRestrict, sellersHandler.Restrict)

	admin.GET(UsersRoute, customersHandler.Index)
	admin.PATCH(UserToggleRoute, customersHandler.Toggle)
	admin.DELETE(UserRoute, customersHandler.Destroy)

	admin.GET(ProductsRoute, productsHandler.Index)
	admin.PATCH(ProductPublish, productsHandler.Publish)
	admin.DELETE(ProductRoute, productsHandler.Destroy)

	admin.GET(BannersRoute, bannersHandler.Index)
	admin.POST(BannersRoute, bannersHandler.Create)
	admin.PUT(BannerRoute, bannersHandler.Update)
	admin.PATCH(BannerToggle, bannersHandler.Toggle)
	admin.DELETE(BannerRoute, bannersHandler.Destroy)

	admin.GET(AnnouncesRoute, announcementsHandler.Index)
	admin.POST(AnnouncesRoute, announcementsHandler.Create)
	admin.PUT(AnnounceRoute, announcementsHandler.Update)
	admin.PATCH(AnnounceToggle, announcementsHandler.Toggle)
	admin.DELETE(AnnounceRoute, announcementsHandler.Destroy)

	admin.GET(AuditLogsRoute, auditHandler.Index)
	admin.GET(ReportsCommission, reportsHandler.Commission)

	payments := r.Group(PaymentsGroup, middlewares.AuthRequired(args.JWTSecretKey))
	payments.GET(WithdrawalsRoute, withdrawalsHandler.Index)
	payments.POST(WithdrawalApproveRoute, withdrawalsHandler.Approve)
	payments.POST(WithdrawalRejectRoute, withdrawalsHandler.Reject)
	payments.GET(WithdrawalStatusRoute, withdrawalsHandler.Status)
	payments.POST(WithdrawalProofRoute, withdrawalsHandler.AttachProof)

	r.POST(UploadTempRoute, middlewares.AuthRequired(args.JWTSecretKey), uploadsHandler.Temp)

	return r, nil
}
