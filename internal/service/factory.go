package service

import (
	"fmt"

	"github.com/fsdevblog/groph-market/pkg/uow"
	"github.com/shopspring/decimal"
)

type AppServices struct {
	AuthService         *AuthService
	OrderService        *OrderService
	SellerService       *SellerService
	CustomerService     *CustomerService
	ProductService      *ProductService
	WithdrawalService   *WithdrawalService
	BannerService       *BannerService
	AnnouncementService *AnnouncementService
	AuditService        *AuditService
	ReportService       *ReportService
}

type FactoryArgs struct {
	JWTSecret      []byte
	CommissionRate decimal.Decimal
	CurrencySymbol string
}

func Factory(unitOfWork uow.UOW, args FactoryArgs) (*AppServices, error) {
	authService, authServiceErr := NewAuthService(unitOfWork, args.JWTSecret)
	if authServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", authServiceErr.Error())
	}

	orderService, orderServiceErr := NewOrderService(unitOfWork)
	if orderServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", orderServiceErr.Error())
	}

	sellerService, sellerServiceErr := NewSellerService(unitOfWork)
	if sellerServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", sellerServiceErr.Error())
	}

	customerService, customerServiceErr := NewCustomerService(unitOfWork)
	if customerServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", customerServiceErr.Error())
	}

	productService, productServiceErr := NewProductService(unitOfWork)
	if productServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", productServiceErr.Error())
	}

	withdrawalService, withdrawalServiceErr := NewWithdrawalService(unitOfWork, args.CommissionRate)
	if withdrawalServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", withdrawalServiceErr.Error())
	}

	bannerService, bannerServiceErr := NewBannerService(unitOfWork)
	if bannerServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", bannerServiceErr.Error())
	}

	announcementService, announcementServiceErr := NewAnnouncementService(unitOfWork)
	if announcementServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", announcementServiceErr.Error())
	}

	auditService, auditServiceErr := NewAuditService(unitOfWork)
	if auditServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", auditServiceErr.Error())
	}

	reportService, reportServiceErr := NewReportService(unitOfWork, args.CommissionRate, args.CurrencySymbol)
	if reportServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", reportServiceErr.Error())
	}

	return &AppServices{
		AuthService:         authService,
		OrderService:        orderService,
		SellerService:       sellerService,
		CustomerService:     customerService,
		ProductService:      productService,
		WithdrawalService:   withdrawalService,
		BannerService:       bannerService,
		AnnouncementService: announcementService,
		AuditService:        auditService,
		ReportService:       reportService,
	}, nil
}
