package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bunkbites/stallbook/internal/server/handlers"
)

// TokenVerifier validates bearer tokens for the protected API surface.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}

// Handlers bundles the per-resource HTTP adapters wired into the engine.
type Handlers struct {
	Dishes    *handlers.DishHandler
	Sales     *handlers.SaleHandler
	Investors *handlers.InvestorHandler
	Expenses  *handlers.ExpenseHandler
	Reports   *handlers.ReportHandler
	Auth      *handlers.AuthHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, verifier TokenVerifier, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "API Active"})
	})
	api.POST("/auth/login", h.Auth.Login)

	protected := api.Group("")
	protected.Use(authRequired(verifier, logger))

	protected.GET("/dishes", h.Dishes.List)
	protected.POST("/dishes", h.Dishes.Create)
	protected.PUT("/dishes/:id", h.Dishes.Update)
	protected.DELETE("/dishes/:id", h.Dishes.Delete)

	protected.GET("/sales", h.Sales.List)
	protected.POST("/sales", h.Sales.Create)

	protected.GET("/investors", h.Investors.List)
	protected.POST("/investors", h.Investors.Create)
	protected.PUT("/investors/:id", h.Investors.Update)
	protected.DELETE("/investors/:id", h.Investors.Delete)

	protected.GET("/expenses", h.Expenses.List)
	protected.POST("/expenses", h.Expenses.Create)
	protected.DELETE("/expenses/:id", h.Expenses.Delete)

	protected.GET("/reports/summary", h.Reports.Summary)
	protected.GET("/reports/dishes", h.Reports.Dishes)
	protected.GET("/reports/daily", h.Reports.Daily)
	protected.GET("/reports/closing", h.Reports.Closing)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)
		c.Next()

		logger.Info("request completed",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}

// authRequired guards the ledger and report routes behind a bearer token.
func authRequired(verifier TokenVerifier, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		subject, err := verifier.Verify(token)
		if err != nil {
			logger.Warn("rejected request with invalid token", zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set("subject", subject)
		c.Next()
	}
}
