package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"paybyphone/middleware"
	"paybyphone/session"
)

// RouterDeps collects everything the router wires together.
type RouterDeps struct {
	Store           *session.Store
	Checkout        CheckoutStarter
	Metrics         flowMetrics
	MetricsHandler  http.Handler
	Log             *slog.Logger
	BaseURL         string
	AdminPassword   string
	CheckoutLimiter *middleware.RateLimiter
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(d RouterDeps) *gin.Engine {
	h := New(d.Store, d.Checkout, d.Metrics, d.Log, d.BaseURL)

	router := gin.New()
	router.SetTrustedProxies(nil)
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(d.Log))
	if rec, ok := d.Metrics.(interface{ RecordHTTPStatus(int) }); ok {
		router.Use(middleware.RequestMetrics(rec))
	}
	router.SetHTMLTemplate(Templates())

	// Payment flow
	router.GET("/", h.Home)
	router.POST("/zone", h.ProcessZone)
	router.GET("/vehicle/:zone_code", h.VehiclePage)
	router.POST("/vehicle/:zone_code", h.ProcessVehicle)
	router.GET("/duration/:session_id", h.DurationPage)
	router.POST("/duration/:session_id", h.ProcessDuration)
	router.GET("/summary/:session_id", h.SummaryPage)
	router.GET("/success/:session_id", h.SuccessPage)
	router.GET("/cancel", h.CancelPage)
	router.GET("/compte", h.ComptePage)
	router.GET("/login", h.LoginPage)

	createCheckout := router.Group("/")
	if d.CheckoutLimiter != nil {
		createCheckout.Use(d.CheckoutLimiter.Middleware())
	}
	createCheckout.POST("/create-checkout-session/:session_id", h.CreateCheckout)

	// Read-only API
	router.GET("/api/price/:duration", h.PriceAPI)

	// Admin
	router.GET("/admin", h.AdminPage)
	admin := router.Group("/api/admin", AdminAuth(d.AdminPassword))
	admin.GET("/sessions", h.AdminSessions)
	admin.GET("/stats", h.AdminStats)

	// Operational
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if d.MetricsHandler != nil {
		router.GET("/metrics", gin.WrapH(d.MetricsHandler))
	}

	return router
}
