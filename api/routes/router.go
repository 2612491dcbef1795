package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lucasferreira/vitrine-backend/api/controllers"
	webhookcontrollers "github.com/lucasferreira/vitrine-backend/api/controllers/webhooks"
	"github.com/lucasferreira/vitrine-backend/api/middleware"
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
	"github.com/lucasferreira/vitrine-backend/pkg/redis"
)

type RouterParams struct {
	Config            *config.Config
	Logger            *logger.Logger
	DBPinger          db.Pinger
	CachePinger       redis.Pinger
	PaymentService    *payments.Service
	ReconcilerService *reconciler.Service
	WebhookGuard      *reconciler.IdempotencyGuard
	TransactionRepo   transactions.Repository
	ActivityRepo      activity.Repository
	DeliveryRepo      webhooklog.Repository
	SubscriptionRepo  webhooksubs.Repository
	ProductRepo       products.Repository
	CheckoutRepo      checkouts.Repository
	CustomerRepo      customers.Repository
}

func NewRouter(p RouterParams) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(p.Logger),
		middleware.RequestID(p.Logger),
		middleware.Logging(p.Logger),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(p.Config))
		r.Get("/ready", controllers.HealthReady(p.Config, p.DBPinger, p.CachePinger, p.Logger))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/mercadopago", func(r chi.Router) {
		r.Post("/webhook", webhookcontrollers.MercadoPagoWebhook(p.ReconcilerService, p.WebhookGuard, p.Logger))
		r.Post("/preference", controllers.CreatePreference(p.PaymentService, p.Logger))
		r.Post("/payment", controllers.CreatePayment(p.PaymentService, p.Logger))
		r.Get("/payment/{id}", controllers.GetPaymentByReference(p.TransactionRepo, p.Logger))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(p.Config.JWT, p.Logger))

		r.Get("/transactions", controllers.ListTransactions(p.TransactionRepo, p.Logger))
		r.Get("/activity", controllers.ListActivity(p.ActivityRepo, p.Logger))

		r.Route("/webhooks", func(r chi.Router) {
			r.Get("/deliveries", controllers.ListWebhookDeliveries(p.DeliveryRepo, p.Logger))
			r.Get("/subscriptions", controllers.ListWebhookSubscriptions(p.SubscriptionRepo, p.Logger))
			r.Post("/subscriptions", controllers.CreateWebhookSubscription(p.SubscriptionRepo, p.Logger))
			r.Patch("/subscriptions/{id}", controllers.UpdateWebhookSubscription(p.SubscriptionRepo, p.Logger))
			r.Delete("/subscriptions/{id}", controllers.DeleteWebhookSubscription(p.SubscriptionRepo, p.Logger))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(p.ProductRepo, p.Logger))
			r.Post("/", controllers.CreateProduct(p.ProductRepo, p.Logger))
			r.Get("/{id}", controllers.GetProduct(p.ProductRepo, p.Logger))
			r.Patch("/{id}", controllers.UpdateProduct(p.ProductRepo, p.Logger))
			r.Delete("/{id}", controllers.DeleteProduct(p.ProductRepo, p.Logger))
		})

		r.Route("/checkouts", func(r chi.Router) {
			r.Get("/", controllers.ListCheckouts(p.CheckoutRepo, p.Logger))
			r.Post("/", controllers.CreateCheckout(p.CheckoutRepo, p.Logger))
			r.Get("/{id}", controllers.GetCheckout(p.CheckoutRepo, p.Logger))
			r.Patch("/{id}", controllers.UpdateCheckout(p.CheckoutRepo, p.Logger))
			r.Delete("/{id}", controllers.DeleteCheckout(p.CheckoutRepo, p.Logger))
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", controllers.ListCustomers(p.CustomerRepo, p.Logger))
			r.Post("/", controllers.CreateCustomer(p.CustomerRepo, p.Logger))
			r.Get("/{id}", controllers.GetCustomer(p.CustomerRepo, p.Logger))
		})
	})

	return r
}
