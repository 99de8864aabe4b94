package router

import (
	"StudyVault/internal/handler"

	"github.com/gin-gonic/gin"
)

// InitRouter builds the read-only HTTP API routes.
func InitRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", handler.Health)

	api := r.Group("/api")
	{
		api.GET("/files", handler.ListFiles)
		api.GET("/files/:fileID/download", handler.DownloadFile)
		api.GET("/blobs/:ref/download", handler.DownloadBlob)
		api.GET("/assignments", handler.ListAssignments)
	}
	return r
}
