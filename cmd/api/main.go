package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lucasferreira/vitrine-backend/api/routes"
	"github.com/lucasferreira/vitrine-backend/internal/activity"
	"github.com/lucasferreira/vitrine-backend/internal/checkouts"
	"github.com/lucasferreira/vitrine-backend/internal/customers"
	"github.com/lucasferreira/vitrine-backend/internal/payments"
	"github.com/lucasferreira/vitrine-backend/internal/products"
	"github.com/lucasferreira/vitrine-backend/internal/reconciler"
	"github.com/lucasferreira/vitrine-backend/internal/transactions"
	"github.com/lucasferreira/vitrine-backend/internal/webhooklog"
	"github.com/lucasferreira/vitrine-backend/internal/webhooksubs"
	"github.com/lucasferreira/vitrine-backend/pkg/config"
	"github.com/lucasferreira/vitrine-backend/pkg/db"
	"github.com/lucasferreira/vitrine-backend/pkg/logger"
	"github.com/lucasferreira/vitrine-backend/pkg/mercadopago"
	"github.com/lucasferreira/vitrine-backend/pkg/metrics"
	"github.com/lucasferreira/vitrine-backend/pkg/migrate"
	"github.com/lucasferreira/vitrine-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	gateway, err := mercadopago.NewClient(context.Background(), cfg.MercadoPago, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create mercadopago client", err)
		os.Exit(1)
	}

	webhookMetrics := metrics.NewWebhookMetrics(prometheus.DefaultRegisterer)

	transactionRepo := transactions.NewRepository(dbClient.DB())
	activityRepo := activity.NewRepository(dbClient.DB())
	deliveryRepo := webhooklog.NewRepository(dbClient.DB())
	subscriptionRepo := webhooksubs.NewRepository(dbClient.DB())
	productRepo := products.NewRepository(dbClient.DB())
	checkoutRepo := checkouts.NewRepository(dbClient.DB())
	customerRepo := customers.NewRepository(dbClient.DB())

	reconcilerService, err := reconciler.NewService(reconciler.ServiceParams{
		Gateway:           gateway,
		TransactionRepo:   transactionRepo,
		ActivityRepo:      activityRepo,
		DeliveryRepo:      deliveryRepo,
		TransactionRunner: dbClient,
		Metrics:           webhookMetrics,
		Logger:            logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create reconciler service", err)
		os.Exit(1)
	}

	paymentService, err := payments.NewService(payments.ServiceParams{
		Gateway:           gateway,
		TransactionRepo:   transactionRepo,
		ActivityRepo:      activityRepo,
		TransactionRunner: dbClient,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create payment service", err)
		os.Exit(1)
	}

	webhookGuard, err := reconciler.NewIdempotencyGuard(redisClient, cfg.Webhook.IdempotencyTTL, "mercadopago-webhook")
	if err != nil {
		logg.Error(context.Background(), "failed to create webhook idempotency guard", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	id := os.Getenv("DYNO")
	if id == "" {
		id = "local"
	}
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": id,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:            cfg,
			Logger:            logg,
			DBPinger:          dbClient,
			CachePinger:       redisClient,
			PaymentService:    paymentService,
			ReconcilerService: reconcilerService,
			WebhookGuard:      webhookGuard,
			TransactionRepo:   transactionRepo,
			ActivityRepo:      activityRepo,
			DeliveryRepo:      deliveryRepo,
			SubscriptionRepo:  subscriptionRepo,
			ProductRepo:       productRepo,
			CheckoutRepo:      checkoutRepo,
			CustomerRepo:      customerRepo,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
