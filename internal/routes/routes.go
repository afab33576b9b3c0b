package routes

import (
	"net/http"

	"github.com/dripvault/storefront/internal/config"
	"github.com/dripvault/storefront/internal/handlers"
	"github.com/dripvault/storefront/internal/middleware"
	"github.com/dripvault/storefront/internal/repository"
	"github.com/dripvault/storefront/internal/service"
	"github.com/dripvault/storefront/internal/session"
	"github.com/dripvault/storefront/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Deps is everything the router needs from main.
type Deps struct {
	Config   *config.Config
	Log      zerolog.Logger
	Catalog  *repository.InMemoryProductRepository
	Sessions *session.Store
	Metrics  *metrics.Storefront
	Gatherer prometheus.Gatherer
}

// New builds the storefront HTTP handler.
func New(d Deps) http.Handler {
	storefront := service.Storefront{
		Name:         d.Config.Storefront.Name,
		Currency:     d.Config.Storefront.Currency,
		MessagingURL: d.Config.Storefront.MessagingURL,
	}

	// Initialize services
	productService := service.NewProductService(d.Catalog, storefront)
	cartService := service.NewCartService(d.Sessions, d.Catalog, storefront.Currency, d.Metrics)
	checkoutService := service.NewCheckoutService(d.Sessions, storefront, d.Metrics)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(d.Log, d.Catalog.Len(), d.Sessions.Len)
	productHandler := handlers.NewProductHandler(productService, d.Log)
	cartHandler := handlers.NewCartHandler(cartService, checkoutService, d.Log)
	sessionHandler := handlers.NewSessionHandler(cartService, productService, d.Config.Session.CookieName, d.Log)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(d.Log))
	r.Use(middleware.Metrics(d.Metrics))
	r.Use(chimiddleware.Recoverer)
	if timeout := d.Config.Server.RequestTimeout(); timeout > 0 {
		r.Use(chimiddleware.Timeout(timeout))
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.Config.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.SessionHeader},
		ExposedHeaders:   []string{middleware.SessionHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler.ServeHTTP)
	if d.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		// Catalog endpoints are stateless
		r.Get("/filters", productHandler.Filters)
		r.Get("/product", productHandler.ListProducts)
		r.Get("/product/{productId}", productHandler.GetProduct)
		r.Get("/product/{productId}/inquiry", productHandler.Inquiry)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(d.Sessions, d.Config.Session.CookieName, d.Config.Session.TTL))

			r.Delete("/session", sessionHandler.End)
			r.Get("/session/criteria", sessionHandler.GetCriteria)
			r.Put("/session/criteria", sessionHandler.PutCriteria)
			r.Delete("/session/criteria", sessionHandler.ResetCriteria)
			r.Get("/session/products", sessionHandler.Browse)

			r.Get("/cart", cartHandler.GetCart)
			r.Post("/cart/items", cartHandler.AddItem)
			r.Patch("/cart/items/{productId}", cartHandler.UpdateQuantity)
			r.Delete("/cart/items/{productId}", cartHandler.RemoveItem)
			r.Get("/cart/checkout", cartHandler.Checkout)
		})
	})

	return r
}
