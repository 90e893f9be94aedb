package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "fieldservice/docs" // registers the swagger spec
	"fieldservice/internal/adapter/http/handlers"
	"fieldservice/internal/adapter/persistence/cache"
	"fieldservice/internal/adapter/persistence/gormrepo"
	"fieldservice/internal/adapter/persistence/repository"
	"fieldservice/internal/config"
	rediscache "fieldservice/internal/infrastructure/cache"
	"fieldservice/internal/infrastructure/database"
	"fieldservice/internal/infrastructure/payments"
	"fieldservice/internal/infrastructure/scheduler"
	"fieldservice/internal/usecase"
	"fieldservice/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Repositories is the storage backing the use cases.
type Repositories struct {
	Estimates interfaces.IEstimateRepository
	Customers interfaces.ICustomerRepository
	Work      interfaces.IWorkRepository
	Payments  interfaces.IBillingPaymentRepository

	close func()
}

// Close releases connections opened by OpenRepositories.
func (r Repositories) Close() {
	if r.close != nil {
		r.close()
	}
}

// OpenRepositories connects the configured storage driver and, when Redis is
// configured, puts the read-through cache in front of estimates.
func OpenRepositories(ctx context.Context, cfg config.Config, logger *zap.Logger) (Repositories, error) {
	var repos Repositories
	var closers []func()

	switch cfg.StorageDriver {
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return Repositories{}, fmt.Errorf("connect dynamodb: %w", err)
		}
		repos.Estimates = repository.NewEstimateDynamoRepository(ddb)
		repos.Customers = repository.NewCustomerDynamoRepository(ddb)
		repos.Work = repository.NewWorkDynamoRepository(ddb)
		repos.Payments = repository.NewBillingPaymentDynamoRepository(ddb)
	default:
		db, err := database.OpenGorm(cfg, logger)
		if err != nil {
			return Repositories{}, fmt.Errorf("open database: %w", err)
		}
		if sqlDB, err := db.DB(); err == nil {
			closers = append(closers, func() { _ = sqlDB.Close() })
		}
		repos.Estimates = gormrepo.NewEstimateRepository(db)
		repos.Customers = gormrepo.NewCustomerRepository(db)
		repos.Work = gormrepo.NewWorkRepository(db)
		repos.Payments = gormrepo.NewBillingPaymentRepository(db)
	}

	if cfg.CacheEnabled() {
		rdb, err := rediscache.NewClient(ctx, cfg)
		if err != nil {
			// The cache is optional; serve straight from storage.
			logger.Warn("redis unavailable, estimate cache disabled", zap.Error(err))
		} else {
			closers = append(closers, func() { _ = rdb.Close() })
			repos.Estimates = cache.NewEstimateRepository(repos.Estimates, rdb, cfg.CacheTTL, logger)
		}
	}

	repos.close = func() {
		for _, c := range closers {
			c()
		}
	}
	return repos, nil
}

// newPaymentGateway returns nil when no gateway can be configured, so
// payments fail with a 503 instead of the service refusing to start.
func newPaymentGateway(cfg config.Config, logger *zap.Logger) interfaces.IPaymentGateway {
	gw, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, logger)
	if err != nil {
		logger.Warn("Mercado Pago gateway not configured", zap.Error(err))
		return nil
	}
	return gw
}

// Run wires the service and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	repos, err := OpenRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer repos.Close()

	estimateUseCase := usecase.NewEstimateUseCase(repos.Estimates, repos.Customers, logger)
	paymentUseCase := usecase.NewBillingPaymentUseCase(repos.Payments, repos.Estimates, newPaymentGateway(cfg, logger), logger)
	customerUseCase := usecase.NewCustomerUseCase(repos.Customers, logger)
	workUseCase := usecase.NewWorkUseCase(repos.Work, repos.Customers, repos.Estimates, logger)

	sweeper, err := scheduler.NewExpirySweeper(cfg.EstimateExpiryCron, estimateUseCase, logger)
	if err != nil {
		return err
	}
	sweeper.Start()
	defer sweeper.Stop()

	router := NewRouter(Handlers{
		Estimates: handlers.NewEstimateHandler(estimateUseCase, logger),
		Payments:  handlers.NewBillingPaymentHandler(paymentUseCase, logger, cfg.PaymentGatewayMock),
		Customers: handlers.NewCustomerHandler(customerUseCase, logger),
		Work:      handlers.NewWorkHandler(workUseCase, logger),
	}, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr), zap.String("storage", cfg.StorageDriver))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
