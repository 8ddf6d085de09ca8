package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func registerHealthRoutes(router *gin.Engine, deps Dependencies) {
	router.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/health/ready", func(c *gin.Context) {
		checks := []struct {
			name  string
			store HealthChecker
		}{
			{"folder-metadata", deps.FolderStore},
			{"file-metadata", deps.FileStore},
			{"blob-store", deps.BlobStore},
		}

		for _, check := range checks {
			if check.store == nil {
				continue
			}
			if err := check.store.Ping(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":    "degraded",
					"component": check.name,
					"error":     err.Error(),
				})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
