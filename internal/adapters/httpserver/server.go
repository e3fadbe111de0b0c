package httpserver

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	"github.com/dquezada/revpro/internal/adapters/messaging/whatsapp"
	"github.com/dquezada/revpro/internal/cache"
	"github.com/dquezada/revpro/internal/usecase"
)

type Server struct {
	products   *usecase.ProductUC
	sales      *usecase.SaleUC
	orders     *usecase.OrderUC
	clients    *usecase.ClientUC
	categories *usecase.CategoryUC
	reports    *usecase.ReportUC
	auth       *usecase.AuthUC
	wa         *whatsapp.Gateway
	cache      *cache.Cache
	oauthCfg   *oauth2.Config

	// endpoint de userinfo del proveedor OAuth
	userinfoURL string

	// firma tokens de sesión y la cookie de carrito
	secret []byte
}

type Deps struct {
	Products   *usecase.ProductUC
	Sales      *usecase.SaleUC
	Orders     *usecase.OrderUC
	Clients    *usecase.ClientUC
	Categories *usecase.CategoryUC
	Reports    *usecase.ReportUC
	Auth       *usecase.AuthUC
	WhatsApp   *whatsapp.Gateway
	OAuth      *oauth2.Config
}

func New(d Deps) http.Handler {
	sec := os.Getenv("SECRET_KEY")
	if sec == "" {
		sec = "dev-insecure"
	}
	s := &Server{
		products:    d.Products,
		sales:       d.Sales,
		orders:      d.Orders,
		clients:     d.Clients,
		categories:  d.Categories,
		reports:     d.Reports,
		auth:        d.Auth,
		wa:          d.WhatsApp,
		cache:       cache.New(2 * time.Minute),
		oauthCfg:    d.OAuth,
		userinfoURL: "https://www.googleapis.com/oauth2/v3/userinfo",
		secret:      []byte(sec),
	}
	return s.router()
}

func (s *Server) router() *gin.Engine {
	if os.Getenv("APP_ENV") == "production" || os.Getenv("APP_ENV") == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(RequestID(), Logging(), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	r.GET("/auth/google/login", s.handleGoogleLogin)
	r.GET("/auth/google/callback", s.handleGoogleCallback)

	api := r.Group("/api")
	api.POST("/auth/register", s.handleRegister)
	api.POST("/auth/login", s.handleLogin)

	priv := api.Group("", s.requireAuth)

	priv.GET("/products", s.handleListProducts)
	priv.POST("/products", s.handleCreateProduct)
	priv.GET("/products/:id", s.handleGetProduct)
	priv.PUT("/products/:id", s.handleUpdateProduct)
	priv.DELETE("/products/:id", s.handleDeleteProduct)
	priv.GET("/products/barcode/:code", s.handleBarcodeLookup)

	priv.GET("/cart", s.handleGetCart)
	priv.POST("/cart/items", s.handleCartAdd)
	priv.POST("/cart/barcode", s.handleCartAddByBarcode)
	priv.DELETE("/cart/items/:productId", s.handleCartRemove)
	priv.DELETE("/cart", s.handleCartClear)
	priv.GET("/cart/whatsapp", s.handleCartWhatsApp)

	priv.POST("/sales", s.handleConfirmSale)

	priv.GET("/orders", s.handleListOrders)
	priv.GET("/orders/:id", s.handleGetOrder)
	priv.POST("/orders/:id/pay", s.handleMarkPaid)
	priv.POST("/orders/:id/cancel", s.handleCancelOrder)

	priv.GET("/clients", s.handleListClients)
	priv.POST("/clients", s.handleCreateClient)
	priv.DELETE("/clients/:id", s.handleDeleteClient)
	priv.GET("/clients/:id/whatsapp", s.handleClientWhatsApp)

	priv.GET("/categories", s.handleListCategories)
	priv.POST("/categories", s.handleCreateCategory)
	priv.DELETE("/categories/:id", s.handleDeleteCategory)

	priv.GET("/dashboard", s.handleDashboard)
	priv.GET("/dashboard/export", s.handleDashboardExport)

	return r
}
