package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pyperpy/pyper-backend/internal/analytics"
	authsvc "github.com/pyperpy/pyper-backend/internal/auth"
	"github.com/pyperpy/pyper-backend/internal/banners"
	"github.com/pyperpy/pyper-backend/internal/cart"
	"github.com/pyperpy/pyper-backend/internal/cms"
	"github.com/pyperpy/pyper-backend/internal/orders"
	product "github.com/pyperpy/pyper-backend/internal/products"
	"github.com/pyperpy/pyper-backend/internal/seo"
	"github.com/pyperpy/pyper-backend/internal/sitecfg"
	"github.com/pyperpy/pyper-backend/internal/users"
	pkgAuth "github.com/pyperpy/pyper-backend/pkg/auth"
	"github.com/pyperpy/pyper-backend/pkg/auth/session"
	"github.com/pyperpy/pyper-backend/pkg/config"
	"github.com/pyperpy/pyper-backend/pkg/db/models"
	"github.com/pyperpy/pyper-backend/pkg/enums"
	"github.com/pyperpy/pyper-backend/pkg/logger"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubSessionManager struct{}

func (stubSessionManager) HasSession(ctx context.Context, accessID string) (bool, error) {
	return true, nil
}

func (stubSessionManager) Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error) {
	return "", "", nil
}

func (stubSessionManager) Revoke(ctx context.Context, accessID string) error {
	return nil
}

type stubAuthService struct{}

func (stubAuthService) Login(ctx context.Context, req authsvc.LoginRequest) (*authsvc.LoginResponse, error) {
	panic("unimplemented")
}

func (stubAuthService) Refresh(ctx context.Context, req authsvc.RefreshRequest) (*authsvc.RefreshResponse, error) {
	panic("unimplemented")
}

func (stubAuthService) Logout(ctx context.Context, accessID string) error {
	return nil
}

func (stubAuthService) CreateUser(ctx context.Context, req authsvc.CreateUserRequest) (*users.UserDTO, error) {
	panic("unimplemented")
}

func (stubAuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req authsvc.ChangePasswordRequest) error {
	panic("unimplemented")
}

type stubProductService struct{}

func (stubProductService) Create(ctx context.Context, input product.SaveInput) (*models.Product, error) {
	panic("unimplemented")
}

func (stubProductService) Update(ctx context.Context, id uuid.UUID, input product.SaveInput) (*models.Product, error) {
	panic("unimplemented")
}

func (stubProductService) Delete(ctx context.Context, id uuid.UUID) error {
	panic("unimplemented")
}

func (stubProductService) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	panic("unimplemented")
}

func (stubProductService) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	panic("unimplemented")
}

func (stubProductService) Browse(ctx context.Context, input product.ListInput) (*product.ListResult, error) {
	return &product.ListResult{}, nil
}

func (stubProductService) ListAdmin(ctx context.Context) ([]models.Product, error) {
	return nil, nil
}

func (stubProductService) ListKits(ctx context.Context) ([]models.Product, error) {
	return nil, nil
}

func (stubProductService) PreviewSEO(input product.SEOPreviewInput) seo.Result {
	return seo.Result{}
}

type stubOrdersService struct{}

func (stubOrdersService) Create(ctx context.Context, input orders.CreateInput) (*models.Order, error) {
	panic("unimplemented")
}

func (stubOrdersService) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	panic("unimplemented")
}

func (stubOrdersService) List(ctx context.Context, input orders.ListInput) (*orders.ListResult, error) {
	return &orders.ListResult{}, nil
}

func (stubOrdersService) Advance(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	panic("unimplemented")
}

func (stubOrdersService) DashboardCounts(ctx context.Context, now time.Time) (*orders.DashboardCounts, error) {
	return &orders.DashboardCounts{}, nil
}

type stubCartService struct{}

func (stubCartService) WhatsAppCheckout(ctx context.Context, c *cart.Cart, input cart.CustomerInput) (*cart.WhatsAppCheckoutResult, error) {
	panic("unimplemented")
}

func (stubCartService) DirectCheckout(ctx context.Context, c *cart.Cart, input cart.DirectCheckoutInput) (*models.Order, error) {
	panic("unimplemented")
}

type stubBannersService struct{}

func (stubBannersService) Visible(ctx context.Context, placement enums.BannerPlacement, now time.Time) ([]models.Banner, error) {
	return nil, nil
}

func (stubBannersService) Popup(ctx context.Context, now time.Time) (*models.Banner, error) {
	return nil, nil
}

func (stubBannersService) EligibleCounts(ctx context.Context, now time.Time) (map[enums.BannerPlacement]int, error) {
	return nil, nil
}

func (stubBannersService) List(ctx context.Context) ([]models.Banner, error) {
	return nil, nil
}

func (stubBannersService) Get(ctx context.Context, id uuid.UUID) (*models.Banner, error) {
	panic("unimplemented")
}

func (stubBannersService) Create(ctx context.Context, input banners.SaveInput) (*models.Banner, error) {
	panic("unimplemented")
}

func (stubBannersService) Update(ctx context.Context, id uuid.UUID, input banners.SaveInput) (*models.Banner, error) {
	panic("unimplemented")
}

func (stubBannersService) Delete(ctx context.Context, id uuid.UUID) error {
	panic("unimplemented")
}

type stubCMSService struct{}

func (stubCMSService) SavePage(ctx context.Context, id *uuid.UUID, input cms.PageInput) (*models.CMSPage, error) {
	panic("unimplemented")
}

func (stubCMSService) DeletePage(ctx context.Context, id uuid.UUID) error {
	panic("unimplemented")
}

func (stubCMSService) GetPage(ctx context.Context, id uuid.UUID) (*models.CMSPage, error) {
	panic("unimplemented")
}

func (stubCMSService) ListPages(ctx context.Context) ([]models.CMSPage, error) {
	return nil, nil
}

func (stubCMSService) RenderPage(ctx context.Context, slug string) (*cms.PageView, error) {
	panic("unimplemented")
}

func (stubCMSService) SaveBlog(ctx context.Context, id *uuid.UUID, input cms.BlogInput) (*models.BlogPost, error) {
	panic("unimplemented")
}

func (stubCMSService) DeleteBlog(ctx context.Context, id uuid.UUID) error {
	panic("unimplemented")
}

func (stubCMSService) GetBlog(ctx context.Context, id uuid.UUID) (*models.BlogPost, error) {
	panic("unimplemented")
}

func (stubCMSService) ListBlogs(ctx context.Context) ([]models.BlogPost, error) {
	return nil, nil
}

func (stubCMSService) ListPublished(ctx context.Context, input cms.BlogListInput) (*cms.BlogListResult, error) {
	return &cms.BlogListResult{}, nil
}

func (stubCMSService) RenderBlog(ctx context.Context, slug string) (*cms.BlogView, error) {
	panic("unimplemented")
}

func (stubCMSService) PreviewBlogSEO(input cms.BlogInput) seo.Result {
	return seo.Result{}
}

type stubSiteCfgService struct{}

func (stubSiteCfgService) Bundle(ctx context.Context) (*sitecfg.Bundle, error) {
	return &sitecfg.Bundle{Settings: map[string]string{}}, nil
}

func (stubSiteCfgService) Settings(ctx context.Context) (map[string]string, error) {
	return map[string]string{}, nil
}

func (stubSiteCfgService) UpdateSettings(ctx context.Context, values map[string]string) error {
	panic("unimplemented")
}

func (stubSiteCfgService) Checkout(ctx context.Context) (cart.CheckoutSettings, error) {
	return cart.CheckoutSettings{}, nil
}

func (stubSiteCfgService) SaveNavigationItem(ctx context.Context, item *models.NavigationItem) (*models.NavigationItem, error) {
	panic("unimplemented")
}

func (stubSiteCfgService) DeleteNavigationItem(ctx context.Context, id uuid.UUID) error {
	panic("unimplemented")
}

func (stubSiteCfgService) ListNavigation(ctx context.Context) ([]models.NavigationItem, error) {
	return nil, nil
}

func (stubSiteCfgService) SaveHeroSlide(ctx context.Context, slide *models.HeroSlide) (*models.HeroSlide, error) {
	panic("unimplemented")
}

func (stubSiteCfgService) DeleteHeroSlide(ctx context.Context, id uuid.UUID) error {
	panic("unimplemented")
}

func (stubSiteCfgService) ListHeroSlides(ctx context.Context) ([]models.HeroSlide, error) {
	return nil, nil
}

func (stubSiteCfgService) SaveHomeSection(ctx context.Context, section *models.HomeSection) (*models.HomeSection, error) {
	panic("unimplemented")
}

func (stubSiteCfgService) DeleteHomeSection(ctx context.Context, id uuid.UUID) error {
	panic("unimplemented")
}

func (stubSiteCfgService) ListHomeSections(ctx context.Context) ([]models.HomeSection, error) {
	return nil, nil
}

func (stubSiteCfgService) SaveFooterColumn(ctx context.Context, column *models.FooterColumn, links []models.FooterLink) (*models.FooterColumn, error) {
	panic("unimplemented")
}

func (stubSiteCfgService) DeleteFooterColumn(ctx context.Context, id uuid.UUID) error {
	panic("unimplemented")
}

func (stubSiteCfgService) ListFooterColumns(ctx context.Context) ([]models.FooterColumn, error) {
	return nil, nil
}

func (stubSiteCfgService) FeatureFlags(ctx context.Context) (map[string]bool, error) {
	return map[string]bool{}, nil
}

func (stubSiteCfgService) SetFeatureFlag(ctx context.Context, key string, enabled bool) error {
	panic("unimplemented")
}

type stubAnalyticsService struct{}

func (stubAnalyticsService) Track(ctx context.Context, input analytics.TrackInput) error {
	return nil
}

func (stubAnalyticsService) RollupDay(ctx context.Context, day time.Time) (*models.AnalyticsDaily, error) {
	panic("unimplemented")
}

func (stubAnalyticsService) Dashboard(ctx context.Context, now time.Time) (*analytics.Dashboard, error) {
	return &analytics.Dashboard{}, nil
}

func (stubAnalyticsService) History(ctx context.Context, now time.Time, days int) ([]models.AnalyticsDaily, error) {
	return nil, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{
			Secret:                 "secret",
			Issuer:                 "issuer",
			ExpirationMinutes:      60,
			RefreshTokenTTLMinutes: 120,
		},
	}
}

func newTestRouter(cfg *config.Config) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(Deps{
		Config:         cfg,
		Logger:         logg,
		DBPinger:       stubPinger{},
		Redis:          nil,
		SessionManager: stubSessionManager{},
		Auth:           stubAuthService{},
		Products:       stubProductService{},
		Orders:         stubOrdersService{},
		Cart:           stubCartService{},
		Banners:        stubBannersService{},
		CMS:            stubCMSService{},
		SiteCfg:        stubSiteCfgService{},
		Analytics:      stubAnalyticsService{},
	})
}

func buildToken(t *testing.T, cfg *config.Config, role enums.UserRole) string {
	t.Helper()
	accessID := session.NewAccessID()
	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), pkgAuth.AccessTokenPayload{
		UserID: uuid.New(),
		Email:  "panel@pyper.com.py",
		Role:   role,
		JTI:    accessID,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestHealthLiveIsOpen(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestPublicGroupIsOpen(t *testing.T) {
	router := newTestRouter(testConfig())
	for _, path := range []string{
		"/api/public/v1/ping",
		"/api/public/v1/products",
		"/api/public/v1/kits",
		"/api/public/v1/banners/popup",
		"/api/public/v1/blogs",
		"/api/public/v1/config",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", path, resp.Code)
		}
	}
}

func TestAdminGroupRejectsMissingJWT(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/ping", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token got %d", resp.Code)
	}
}

func TestAdminGroupRequiresAdminRole(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	editor := httptest.NewRequest(http.MethodGet, "/api/admin/v1/ping", nil)
	editor.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.UserRoleEditor))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, editor)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for editor got %d", resp.Code)
	}

	admin := httptest.NewRequest(http.MethodGet, "/api/admin/v1/ping", nil)
	admin.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.UserRoleAdmin))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, admin)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin got %d", resp.Code)
	}
}

func TestAdminDashboardServed(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/analytics/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.UserRoleAdmin))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestLogoutRequiresSession(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/auth/logout", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token got %d", resp.Code)
	}

	authed := httptest.NewRequest(http.MethodPost, "/api/admin/v1/auth/logout", nil)
	authed.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.UserRoleAdmin))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, authed)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for authenticated logout got %d", resp.Code)
	}
}
