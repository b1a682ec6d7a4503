package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/healthybite-ma/storefront-backend/api/controllers"
	"github.com/healthybite-ma/storefront-backend/api/middleware"
	authsvc "github.com/healthybite-ma/storefront-backend/internal/auth"
	blogsvc "github.com/healthybite-ma/storefront-backend/internal/blog"
	cartsvc "github.com/healthybite-ma/storefront-backend/internal/cart"
	checkoutsvc "github.com/healthybite-ma/storefront-backend/internal/checkout"
	contactsvc "github.com/healthybite-ma/storefront-backend/internal/contact"
	mediasvc "github.com/healthybite-ma/storefront-backend/internal/media"
	productsvc "github.com/healthybite-ma/storefront-backend/internal/products"
	programsvc "github.com/healthybite-ma/storefront-backend/internal/programs"
	"github.com/healthybite-ma/storefront-backend/pkg/auth/session"
	"github.com/healthybite-ma/storefront-backend/pkg/config"
	"github.com/healthybite-ma/storefront-backend/pkg/db"
	"github.com/healthybite-ma/storefront-backend/pkg/logger"
	"github.com/healthybite-ma/storefront-backend/pkg/metrics"
	"github.com/healthybite-ma/storefront-backend/pkg/redis"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       *db.Client
	Redis    *redis.Client
	Sessions session.AccessSessionChecker
	Registry *prometheus.Registry

	Auth     authsvc.Service
	Register authsvc.RegisterService
	Products productsvc.Service
	Programs programsvc.Service
	Blog     blogsvc.Service
	Contact  contactsvc.Service
	Cart     cartsvc.Service
	Checkout checkoutsvc.Service
	Media    mediasvc.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	var registerer prometheus.Registerer
	if deps.Registry != nil {
		registerer = deps.Registry
	}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(metrics.NewHTTPMetrics(registerer)),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DB, deps.Redis, logg))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", controllers.ListProducts(deps.Products, logg))
		r.Get("/products/{slug}", controllers.GetProductBySlug(deps.Products, logg))

		r.Get("/programs", controllers.ListPrograms(deps.Programs, logg))
		r.Get("/programs/{slug}", controllers.GetProgramBySlug(deps.Programs, logg))
		r.Post("/programs/{id}/checkout", controllers.CheckoutProgram(deps.Checkout, logg))

		r.Get("/blog", controllers.ListBlogPosts(deps.Blog, logg))
		r.Get("/blog/{id}", controllers.GetBlogPost(deps.Blog, logg))

		r.Post("/contact", controllers.SubmitContactMessage(deps.Contact, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.CartSession(logg))
			r.Get("/", controllers.GetCart(deps.Cart, logg))
			r.Post("/items", controllers.AddCartItem(deps.Cart, logg))
			r.Put("/items/{productID}", controllers.SetCartItemQuantity(deps.Cart, logg))
			r.Delete("/items/{productID}", controllers.RemoveCartItem(deps.Cart, logg))
			r.Delete("/", controllers.ClearCart(deps.Cart, logg))
			r.Post("/checkout", controllers.CheckoutCart(deps.Checkout, logg))
		})
	})

	loginPolicy := middleware.NewLoginRateLimitPolicy(
		"login",
		cfg.Limits.LoginWindow,
		cfg.Limits.LoginIPLimit,
		cfg.Limits.LoginEmailLimit,
	)

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.With(middleware.LoginRateLimit(loginPolicy, deps.Redis, logg)).
			Post("/auth/login", controllers.AdminLogin(deps.Auth, logg))

		if deps.Register != nil && !cfg.App.IsProd() {
			r.Post("/auth/register", controllers.AdminRegister(deps.Register, logg))
		}

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminAuth(cfg.JWT, deps.Sessions, logg))

			r.Post("/auth/logout", controllers.AdminLogout(deps.Auth, logg))

			r.Post("/products", controllers.AdminCreateProduct(deps.Products, logg))
			r.Patch("/products/{id}", controllers.AdminUpdateProduct(deps.Products, logg))
			r.Delete("/products/{id}", controllers.AdminDeleteProduct(deps.Products, logg))

			r.Post("/programs", controllers.AdminCreateProgram(deps.Programs, logg))
			r.Patch("/programs/{id}", controllers.AdminUpdateProgram(deps.Programs, logg))
			r.Delete("/programs/{id}", controllers.AdminDeleteProgram(deps.Programs, logg))

			r.Post("/blog", controllers.AdminCreateBlogPost(deps.Blog, logg))
			r.Patch("/blog/{id}", controllers.AdminUpdateBlogPost(deps.Blog, logg))
			r.Delete("/blog/{id}", controllers.AdminDeleteBlogPost(deps.Blog, logg))

			r.Get("/contact-messages", controllers.AdminListContactMessages(deps.Contact, logg))

			r.Post("/media", controllers.AdminUploadImage(deps.Media, logg))
		})
	})

	return r
}
