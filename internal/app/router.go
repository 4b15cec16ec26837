package app

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap"

	"taxiadmin/internal/admin"
	"taxiadmin/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	Panel       *admin.Panel
	Logger      *zap.Logger
	NewRelicApp *newrelic.Application
	Templates   string
}

// NewRouter creates the Gin router with all panel routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(deps.Logger))

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.Session())

	// Pagination links need simple arithmetic.
	router.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	})
	router.LoadHTMLGlob(deps.Templates)

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/admin/users")
	})

	deps.Panel.Register(router.Group("/admin"))

	return router
}
