package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"causematch-backend/internal/shared/config"
	"causematch-backend/internal/shared/server/middleware"
	"causematch-backend/internal/shared/server/respond"
)

// RouteRegistrar is implemented by each feature handler.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RouterDeps collects everything NewRouter needs.
type RouterDeps struct {
	Config   config.Config
	Handlers []RouteRegistrar
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{"ok": true})
	})
	for _, h := range deps.Handlers {
		h.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the configured port into a listen address.
func Addr(port string) string {
	port = strings.TrimSpace(port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

// ListenAndServe runs the router on the configured port.
func ListenAndServe(r *gin.Engine, port string) error {
	return http.ListenAndServe(Addr(port), r)
}
