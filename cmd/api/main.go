package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tradequote/internal/adapter/http/handlers"
	"tradequote/internal/adapter/http/routes"
	"tradequote/internal/adapter/persistence/repository"
	"tradequote/internal/config"
	"tradequote/internal/infrastructure/database"
	"tradequote/internal/infrastructure/documents"
	"tradequote/internal/infrastructure/locking"
	"tradequote/internal/infrastructure/logging"
	"tradequote/internal/infrastructure/metrics"
	"tradequote/internal/infrastructure/notifications"
	"tradequote/internal/infrastructure/payments"
	"tradequote/internal/infrastructure/pricing"
	"tradequote/internal/usecase"
	"tradequote/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// @title           TradeQuote API
// @version         1.0
// @description     Vendor quotes for construction projects, with per-lead vendor billing.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UserID
// @in header
// @name X-User-ID

func main() {
	cfg := config.Load()
	log := logging.New(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Fatal("[api][main] failed to start the application")
	}
}

func run(ctx context.Context, cfg config.Config, log *logrus.Logger) error {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.Dynamo)
	if err != nil {
		return err
	}

	pg, err := database.ConnectPostgres(ctx, cfg.Postgres.DSN)
	if err != nil {
		return err
	}
	defer pg.Close()

	rdb, err := database.ConnectRedis(ctx, cfg.Redis)
	if err != nil {
		log.WithError(err).Warn("[api][main] redis ping failed; locking and caching are best-effort")
	}

	// Redis-backed pieces take untyped nils when Redis is not configured.
	var kv repository.RedisKV
	locker := locking.NewRedisLocker(nil, log)
	if rdb != nil {
		defer rdb.Close()
		kv = rdb
		locker = locking.NewRedisLocker(rdb, log)
	}

	quoteMetrics := metrics.NewQuoteMetrics(prometheus.DefaultRegisterer)

	quoteRepo := repository.NewQuoteRequestDynamoRepository(ddb, cfg.Dynamo.QuoteRequestsTable)
	impressionRepo := repository.NewImpressionDynamoRepository(ddb, cfg.Dynamo.ImpressionsTable)
	paymentRepo := repository.NewVendorPaymentDynamoRepository(ddb, cfg.Dynamo.VendorPaymentsTable)
	segmentRepo := repository.NewCachedSegmentRepository(repository.NewSegmentPostgresRepository(pg), kv, cfg.Redis.SegmentTTL, log)
	offeringRepo := repository.NewVendorOfferingPostgresRepository(pg)
	projectRepo := repository.NewProjectAccessPostgresRepository(pg)

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments.AccessToken, cfg.Payments.Mock, log)
	if err != nil {
		log.WithError(err).Warn("[api][main] mercado pago gateway not configured")
	} else {
		gateway = mpGateway
	}

	catalogUseCase := usecase.NewCatalogUseCase(segmentRepo)
	directoryUseCase := usecase.NewVendorDirectoryUseCase(offeringRepo, catalogUseCase, log)
	ledgerUseCase := usecase.NewBillingLedgerUseCase(
		impressionRepo,
		notifications.NewResendGateway(cfg.Email.APIKey, cfg.Email.From, cfg.Email.AppURL, log),
		log,
		usecase.WithImpressionFee(cfg.Billing.ImpressionFee),
		usecase.WithNotifyTimeout(cfg.Email.Timeout),
		usecase.WithLedgerMetrics(quoteMetrics),
	)
	quoteUseCase := usecase.NewQuoteUseCase(usecase.QuoteUseCaseDeps{
		Quotes:         quoteRepo,
		Access:         projectRepo,
		Directory:      directoryUseCase,
		Catalog:        catalogUseCase,
		Pricing:        pricing.NewAIBackendClient(cfg.Pricing.BaseURL, cfg.Pricing.Timeout, log),
		Ledger:         ledgerUseCase,
		Customers:      projectRepo,
		Locker:         locker,
		Metrics:        quoteMetrics,
		Log:            log,
		PricingTimeout: cfg.Pricing.Timeout,
	})
	vendorBillingUseCase := usecase.NewVendorBillingUseCase(
		impressionRepo,
		paymentRepo,
		gateway,
		log,
		usecase.WithSettlementMock(cfg.Payments.Mock),
		usecase.WithSandboxPayerEmail(cfg.Payments.SandboxPayerEmail),
		usecase.WithDocuments(documents.NewInvoicePDF("TradeQuote"), documents.NewLeadsXLSX()),
	)

	router := routes.NewRouter(routes.Handlers{
		Quotes:         handlers.NewQuoteHandler(quoteUseCase, log),
		Segments:       handlers.NewSegmentHandler(catalogUseCase),
		VendorServices: handlers.NewVendorServiceHandler(directoryUseCase, log),
		VendorBilling:  handlers.NewVendorBillingHandler(vendorBillingUseCase, log, cfg.Payments.Mock),
	}, routes.Options{Log: log, AllowedOrigins: cfg.HTTP.AllowedOrigins})

	return routes.Run(ctx, router, cfg.HTTP.Addr, log)
}
