package handler

import (
	"payment-settlement/internal/adapter/http/middleware"
	"payment-settlement/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	RefundSvc      ports.RefundService
	CheckoutSvc    ports.CheckoutService
	CODSvc         ports.CODService
	SettingsSvc    ports.SettingsResolver
	WebhookSvc     ports.WebhookService
	TokenSvc       ports.TokenService
	RateLimiter    ports.RateLimiter // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimiter == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimiter, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// --- Provider callbacks (authenticated by signature / validation) ---
	webhookHandler := NewWebhookHandler(deps.WebhookSvc, deps.Logger)
	webhooks := v1.Group("/webhooks", rl("webhooks"))
	{
		webhooks.POST("/card", webhookHandler.CardWebhook)
		webhooks.POST("/regional", webhookHandler.RegionalIPN)
	}

	// --- Storefront ---
	checkoutHandler := NewCheckoutHandler(deps.CheckoutSvc, deps.SettingsSvc)
	checkout := v1.Group("/checkout")
	{
		checkout.GET("/payment-methods", rl("payment_methods"), checkoutHandler.PaymentMethods)
		checkout.POST("/payments", rl("checkout"), checkoutHandler.Initiate)
	}

	// --- Operator API (JWT-authenticated) ---
	admin := v1.Group("/admin", middleware.JWTAuth(deps.TokenSvc, deps.Logger))
	if deps.AuditSvc != nil {
		admin.Use(middleware.AuditLog(deps.AuditSvc))
	}

	orderHandler := NewOrderHandler(deps.RefundSvc, deps.CheckoutSvc)
	orders := admin.Group("/orders/:id")
	{
		orders.POST("/refund", rl("admin_refund"), orderHandler.Refund)
		orders.POST("/return", rl("admin"), orderHandler.Return)
		orders.POST("/capture", rl("admin"), orderHandler.Capture)
		orders.POST("/cancel", rl("admin"), orderHandler.Cancel)
	}

	codHandler := NewCODHandler(deps.CODSvc)
	cod := admin.Group("/cod/:id", rl("admin"))
	{
		cod.GET("", codHandler.Get)
		cod.POST("/attempts", codHandler.RecordAttempt)
		cod.POST("/collect", codHandler.Collect)
		cod.POST("/return", codHandler.Return)
	}

	settingsHandler := NewSettingsHandler(deps.SettingsSvc)
	admin.PUT("/settings/:gateway", rl("admin"), settingsHandler.Update)

	return r
}
