package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/webstudio/internal/config"
	"github.com/polkiloo/webstudio/internal/server/http/handlers"
	"github.com/polkiloo/webstudio/internal/server/http/middleware"
)

const maxRequestBody = 1 << 20

type routerParams struct {
	fx.In

	Facade handlers.StudioFacade
	Config *config.Config
	Logger *slog.Logger
}

// Setup configures gin router with handlers and middleware.
func Setup(p routerParams) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(p.Logger))
	engine.Use(middleware.DecompressRequest(maxRequestBody))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(p.Facade)
	paymentHandler := handlers.NewPaymentHandler(p.Facade, p.Config.SiteURL)
	invoiceHandler := handlers.NewInvoiceHandler(p.Facade)
	contactHandler := handlers.NewContactHandler(p.Facade)
	adminHandler := handlers.NewAdminHandler(p.Facade)
	healthHandler := handlers.NewHealthHandler(p.Facade)

	engine.GET("/healthz", healthHandler.Check)

	api := engine.Group("/api")
	api.POST("/orders", orderHandler.Create)
	api.POST("/orders/pay-remaining", orderHandler.PayRemaining)
	api.GET("/orders/:id", orderHandler.Get)
	api.POST("/contact", contactHandler.Submit)

	invoices := api.Group("/additional-invoices")
	invoices.POST("", invoiceHandler.Create)
	invoices.GET("/order/:orderId", invoiceHandler.ListByOrder)

	gateway := api.Group("/robokassa")
	gateway.POST("/result", paymentHandler.OrderResult)
	gateway.GET("/result", paymentHandler.OrderResult)
	gateway.POST("/additional-invoice", paymentHandler.InvoiceResult)
	gateway.GET("/additional-invoice", paymentHandler.InvoiceResult)
	gateway.Match([]string{http.MethodGet, http.MethodPost}, "/success", paymentHandler.Success)
	gateway.Match([]string{http.MethodGet, http.MethodPost}, "/fail", paymentHandler.Fail)

	admin := api.Group("/admin")
	admin.POST("/login", adminHandler.Login)

	adminAuth := admin.Group("")
	adminAuth.Use(middleware.AuthRequired(p.Facade))
	adminAuth.GET("/orders", adminHandler.Orders)
	adminAuth.PATCH("/orders/:id/note", adminHandler.SetNote)
	adminAuth.DELETE("/orders/:id", adminHandler.Delete)

	return engine
}
