package app

import (
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"

	"github.com/dquezada/revpro/internal/adapters/httpserver"
	"github.com/dquezada/revpro/internal/adapters/messaging/whatsapp"
	"github.com/dquezada/revpro/internal/adapters/repo/postgres"
	"github.com/dquezada/revpro/internal/domain"
	"github.com/dquezada/revpro/internal/usecase"
)

type App struct {
	DB *gorm.DB

	ProductUC  *usecase.ProductUC
	SaleUC     *usecase.SaleUC
	OrderUC    *usecase.OrderUC
	ClientUC   *usecase.ClientUC
	CategoryUC *usecase.CategoryUC
	ReportUC   *usecase.ReportUC
	AuthUC     *usecase.AuthUC

	WhatsApp    *whatsapp.Gateway
	OAuthConfig *oauth2.Config
}

func NewApp(db *gorm.DB) (*App, error) {
	prodRepo := postgres.NewProductRepo(db)
	orderRepo := postgres.NewOrderRepo(db)
	clientRepo := postgres.NewClientRepo(db)
	catRepo := postgres.NewCategoryRepo(db)
	userRepo := postgres.NewUserRepo(db)

	var oauthCfg *oauth2.Config
	googleID := os.Getenv("GOOGLE_CLIENT_ID")
	googleSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	if googleID != "" && googleSecret != "" {
		oauthCfg = &oauth2.Config{
			ClientID:     googleID,
			ClientSecret: googleSecret,
			RedirectURL:  baseURL + "/auth/google/callback",
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		}
	}

	a := &App{DB: db}
	a.ProductUC = &usecase.ProductUC{Products: prodRepo}
	a.SaleUC = &usecase.SaleUC{Orders: orderRepo, Clients: clientRepo}
	a.OrderUC = &usecase.OrderUC{Orders: orderRepo}
	a.ClientUC = &usecase.ClientUC{Clients: clientRepo}
	a.CategoryUC = &usecase.CategoryUC{Categories: catRepo}
	a.ReportUC = &usecase.ReportUC{Orders: orderRepo}
	a.AuthUC = &usecase.AuthUC{Users: userRepo}
	a.WhatsApp = whatsapp.NewGateway(os.Getenv("WHATSAPP_PHONE"))
	a.OAuthConfig = oauthCfg

	return a, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(httpserver.Deps{
		Products:   a.ProductUC,
		Sales:      a.SaleUC,
		Orders:     a.OrderUC,
		Clients:    a.ClientUC,
		Categories: a.CategoryUC,
		Reports:    a.ReportUC,
		Auth:       a.AuthUC,
		WhatsApp:   a.WhatsApp,
		OAuth:      a.OAuthConfig,
	})
}

func (a *App) Migrate() error {
	if err := a.DB.AutoMigrate(
		&domain.User{}, &domain.Product{}, &domain.Order{}, &domain.OrderItem{},
		&domain.Client{}, &domain.Category{},
	); err != nil {
		return err
	}

	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_products_owner_barcode ON products(owner_id, barcode)").Error
	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_orders_owner_created ON orders(owner_id, created_at)").Error
	_ = a.DB.Exec("UPDATE products SET stock = 0 WHERE stock IS NULL").Error

	return nil
}
