package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/fsdevblog/groph-market/internal/config"
	"github.com/fsdevblog/groph-market/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/internal/service"
	"github.com/fsdevblog/groph-market/internal/transport/api"
	"github.com/fsdevblog/groph-market/internal/transport/payout"
	"github.com/fsdevblog/groph-market/pkg/uow"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app on %s", a.Config.RunAddress)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork := initUOW(conn)

	rate, rateErr := a.Config.Rate()
	if rateErr != nil {
		return fmt.Errorf("app run: %s", rateErr.Error())
	}

	services, sErr := service.Factory(unitOfWork, service.FactoryArgs{
		JWTSecret:      []byte(a.Config.JWTAdminSecret),
		CommissionRate: rate,
		CurrencySymbol: a.Config.CurrencySymbol,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:              a.Logger,
		AuthService:         services.AuthService,
		OrderService:        services.OrderService,
		SellerService:       services.SellerService,
		CustomerService:     services.CustomerService,
		ProductService:      services.ProductService,
		WithdrawalService:   services.WithdrawalService,
		BannerService:       services.BannerService,
		AnnouncementService: services.AnnouncementService,
		AuditService:        services.AuditService,
		ReportService:       services.ReportService,
		UploadDir:           a.Config.UploadDir,
		JWTSecretKey:        []byte(a.Config.JWTAdminSecret),
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	if a.Config.PayoutGatewayAddress != "" {
		processor := payout.New(services.WithdrawalService, a.Config.PayoutGatewayAddress, a.Logger).
			SetPayoutWorkers(5).     //nolint:mnd
			SetLimitPerIteration(50) //nolint:mnd

		go processor.Run(notifyCtx)
	} else {
		a.Logger.Warn("payout gateway address is not set, disbursement processor disabled")
	}

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) *uow.UnitOfWork {
	unitOfWork := uow.NewUnitOfWork(conn)

	unitOfWork.MustRegister(uow.RepositoryName(repoargs.AdminUserRepoName), func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewAdminUserRepository(dbtx)
	})
	unitOfWork.MustRegister(uow.RepositoryName(repoargs.SellerRepoName), func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewSellerRepository(dbtx)
	})
	unitOfWork.MustRegister(uow.RepositoryName(repoargs.CustomerRepoName), func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewCustomerRepository(dbtx)
	})
	unitOfWork.MustRegister(uow.RepositoryName(repoargs.OrderRepoName), func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewOrderRepository(dbtx)
	})
	unitOfWork.MustRegister(uow.RepositoryName(repoargs.ProductRepoName), func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewProductRepository(dbtx)
	})
	unitOfWork.MustRegister(uow.RepositoryName(repoargs.WithdrawalRepoName), func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewWithdrawalRepository(dbtx)
	})
	unitOfWork.MustRegister(uow.RepositoryName(repoargs.BannerRepoName), func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewBannerRepository(dbtx)
	})
	unitOfWork.MustRegister(uow.RepositoryName(repoargs.AnnouncementRepoName), func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewAnnouncementRepository(dbtx)
	})
	unitOfWork.MustRegister(uow.RepositoryName(repoargs.AuditLogRepoName), func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewAuditLogRepository(dbtx)
	})
	unitOfWork.MustRegister(uow.RepositoryName(repoargs.ReportRepoName), func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewReportRepository(dbtx)
	})

	return unitOfWork
}
