package server

import (
	"github.com/alazarbeyenenew2/fileshare/internal/auth"
	"github.com/alazarbeyenenew2/fileshare/internal/config"
	"github.com/alazarbeyenenew2/fileshare/internal/file"
	"github.com/alazarbeyenenew2/fileshare/internal/folder"
	"github.com/alazarbeyenenew2/fileshare/internal/logger"
	"github.com/alazarbeyenenew2/fileshare/internal/metrics"
	"github.com/alazarbeyenenew2/fileshare/internal/share"
	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether a backing store is usable.
type HealthChecker interface {
	Ping() error
}

// Dependencies groups the services required by the HTTP router.
type Dependencies struct {
	Config        config.Config
	AuthService   *auth.Service
	FolderService *folder.Service
	FileService   *file.Service
	ShareService  *share.Service
	FolderStore   HealthChecker
	FileStore     HealthChecker
	BlobStore     HealthChecker
}

// NewRouter builds a Gin engine with foundational middleware and routes.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.Middleware())

	registerHealthRoutes(router, deps)
	metrics.Register(router, deps.Config.Metrics.PrometheusPath)

	api := router.Group("/api")
	auth.RegisterRoutes(api, deps.AuthService)

	adminOnly := auth.Middleware(deps.AuthService)
	folder.RegisterRoutes(api, deps.FolderService, adminOnly)
	file.RegisterRoutes(api, deps.FileService, adminOnly)
	share.RegisterRoutes(api, deps.ShareService)

	return router
}
