package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pyperpy/pyper-backend/api/controllers"
	"github.com/pyperpy/pyper-backend/api/middleware"
	"github.com/pyperpy/pyper-backend/internal/analytics"
	authsvc "github.com/pyperpy/pyper-backend/internal/auth"
	"github.com/pyperpy/pyper-backend/internal/banners"
	"github.com/pyperpy/pyper-backend/internal/cart"
	"github.com/pyperpy/pyper-backend/internal/cms"
	"github.com/pyperpy/pyper-backend/internal/orders"
	product "github.com/pyperpy/pyper-backend/internal/products"
	"github.com/pyperpy/pyper-backend/internal/sitecfg"
	"github.com/pyperpy/pyper-backend/pkg/auth/session"
	"github.com/pyperpy/pyper-backend/pkg/config"
	"github.com/pyperpy/pyper-backend/pkg/db"
	"github.com/pyperpy/pyper-backend/pkg/logger"
	"github.com/pyperpy/pyper-backend/pkg/redis"
)

type sessionManager interface {
	session.AccessSessionChecker
	Rotate(context.Context, string, string) (string, string, error)
	Revoke(context.Context, string) error
}

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config         *config.Config
	Logger         *logger.Logger
	DBPinger       db.Pinger
	Redis          *redis.Client
	SessionManager sessionManager

	Auth      authsvc.Service
	Products  product.Service
	Orders    orders.Service
	Cart      cart.Service
	Banners   banners.Service
	CMS       cms.Service
	SiteCfg   sitecfg.Service
	Analytics analytics.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DBPinger, deps.Redis))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/public/v1", func(r chi.Router) {
		r.Use(middleware.Idempotency(deps.Redis, logg))

		r.Get("/ping", controllers.PublicPing())
		r.Get("/config", controllers.PublicSiteConfig(deps.SiteCfg, logg))

		r.Get("/products", controllers.CatalogBrowse(deps.Products, logg))
		r.Get("/products/{slug}", controllers.CatalogDetail(deps.Products, logg))
		r.Get("/kits", controllers.CatalogKits(deps.Products, logg))

		r.Get("/banners", controllers.PublicBanners(deps.Banners, logg))
		r.Get("/banners/popup", controllers.PublicPopupBanner(deps.Banners, logg))

		r.Get("/pages/{slug}", controllers.PublicPage(deps.CMS, logg))
		r.Get("/blogs", controllers.PublicBlogList(deps.CMS, logg))
		r.Get("/blogs/{slug}", controllers.PublicBlog(deps.CMS, logg))

		r.Post("/visits", controllers.TrackVisit(deps.Analytics, logg))

		r.Post("/cart/quote", controllers.CartQuote(logg))
		r.Post("/checkout/whatsapp", controllers.CheckoutWhatsApp(deps.Cart, logg))
		r.Post("/checkout/direct", controllers.CheckoutDirect(deps.Cart, logg))
	})

	r.Route("/api/admin/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).Post("/login", controllers.AuthLogin(deps.Auth, logg))
		r.Post("/refresh", controllers.AuthRefresh(deps.Auth, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, deps.SessionManager, logg))
			r.Post("/logout", controllers.AuthLogout(deps.Auth, logg))
			r.Post("/change-password", controllers.AuthChangePassword(deps.Auth, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.SessionManager, logg))
		r.Use(middleware.RequireRole("admin", logg))
		r.Use(middleware.Idempotency(deps.Redis, logg))

		r.Get("/ping", controllers.AdminPing())

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.AdminListProducts(deps.Products, logg))
			r.Post("/", controllers.AdminCreateProduct(deps.Products, logg))
			r.Post("/seo-preview", controllers.AdminPreviewProductSEO(deps.Products, logg))
			r.Get("/{id}", controllers.AdminGetProduct(deps.Products, logg))
			r.Put("/{id}", controllers.AdminUpdateProduct(deps.Products, logg))
			r.Delete("/{id}", controllers.AdminDeleteProduct(deps.Products, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.AdminListOrders(deps.Orders, logg))
			r.Get("/{id}", controllers.AdminGetOrder(deps.Orders, logg))
			r.Post("/{id}/advance", controllers.AdminAdvanceOrder(deps.Orders, logg))
		})

		r.Route("/banners", func(r chi.Router) {
			r.Get("/", controllers.AdminListBanners(deps.Banners, logg))
			r.Post("/", controllers.AdminCreateBanner(deps.Banners, logg))
			r.Get("/{id}", controllers.AdminGetBanner(deps.Banners, logg))
			r.Put("/{id}", controllers.AdminUpdateBanner(deps.Banners, logg))
			r.Delete("/{id}", controllers.AdminDeleteBanner(deps.Banners, logg))
		})

		r.Route("/pages", func(r chi.Router) {
			r.Get("/", controllers.AdminListPages(deps.CMS, logg))
			r.Post("/", controllers.AdminCreatePage(deps.CMS, logg))
			r.Get("/{id}", controllers.AdminGetPage(deps.CMS, logg))
			r.Put("/{id}", controllers.AdminUpdatePage(deps.CMS, logg))
			r.Delete("/{id}", controllers.AdminDeletePage(deps.CMS, logg))
		})

		r.Route("/blogs", func(r chi.Router) {
			r.Get("/", controllers.AdminListBlogs(deps.CMS, logg))
			r.Post("/", controllers.AdminCreateBlog(deps.CMS, logg))
			r.Post("/seo-preview", controllers.AdminPreviewBlogSEO(deps.CMS, logg))
			r.Get("/{id}", controllers.AdminGetBlog(deps.CMS, logg))
			r.Put("/{id}", controllers.AdminUpdateBlog(deps.CMS, logg))
			r.Delete("/{id}", controllers.AdminDeleteBlog(deps.CMS, logg))
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", controllers.AdminGetSettings(deps.SiteCfg, logg))
			r.Put("/", controllers.AdminUpdateSettings(deps.SiteCfg, logg))
		})

		r.Route("/navigation", func(r chi.Router) {
			r.Get("/", controllers.AdminListNavigation(deps.SiteCfg, logg))
			r.Post("/", controllers.AdminSaveNavigation(deps.SiteCfg, logg))
			r.Delete("/{id}", controllers.AdminDeleteNavigation(deps.SiteCfg, logg))
		})

		r.Route("/hero-slides", func(r chi.Router) {
			r.Get("/", controllers.AdminListHeroSlides(deps.SiteCfg, logg))
			r.Post("/", controllers.AdminSaveHeroSlide(deps.SiteCfg, logg))
			r.Delete("/{id}", controllers.AdminDeleteHeroSlide(deps.SiteCfg, logg))
		})

		r.Route("/home-sections", func(r chi.Router) {
			r.Get("/", controllers.AdminListHomeSections(deps.SiteCfg, logg))
			r.Post("/", controllers.AdminSaveHomeSection(deps.SiteCfg, logg))
			r.Delete("/{id}", controllers.AdminDeleteHomeSection(deps.SiteCfg, logg))
		})

		r.Route("/footer", func(r chi.Router) {
			r.Get("/", controllers.AdminListFooterColumns(deps.SiteCfg, logg))
			r.Post("/", controllers.AdminSaveFooterColumn(deps.SiteCfg, logg))
			r.Delete("/{id}", controllers.AdminDeleteFooterColumn(deps.SiteCfg, logg))
		})

		r.Route("/feature-flags", func(r chi.Router) {
			r.Get("/", controllers.AdminListFeatureFlags(deps.SiteCfg, logg))
			r.Put("/", controllers.AdminSetFeatureFlag(deps.SiteCfg, logg))
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/dashboard", controllers.AdminDashboard(deps.Analytics, logg))
			r.Get("/history", controllers.AdminVisitHistory(deps.Analytics, logg))
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", controllers.AuthCreateUser(deps.Auth, logg))
		})
	})

	return r
}
