package file

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"

	"github.com/alazarbeyenenew2/fileshare/internal/access"
	"github.com/alazarbeyenenew2/fileshare/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Reports are spreadsheets; downloads are served with the xlsx content type
// the way the dashboard's viewer expects.
const spreadsheetContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RegisterRoutes mounts file operations under the provided router group.
// Upload and delete are admin mutations; list, download and report access
// stay public for shared-link visitors.
func RegisterRoutes(group *gin.RouterGroup, service *Service, adminOnly gin.HandlerFunc) {
	handler := &httpHandler{service: service}
	group.GET("/files", handler.list)
	group.POST("/files", adminOnly, handler.upload)
	group.GET("/files/:id", handler.download)
	group.DELETE("/files/:id", adminOnly, handler.remove)
	group.POST("/report/:id", handler.report)
}

type httpHandler struct {
	service *Service
}

type reportRequest struct {
	Password string `json:"password"`
}

func (h *httpHandler) list(c *gin.Context) {
	files, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list files"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"files": files})
}

func (h *httpHandler) upload(c *gin.Context) {
	fileHeader, _ := c.FormFile("file")

	id, err := h.service.Upload(c.Request.Context(), UploadInput{
		FileHeader: fileHeader,
		FolderID:   c.PostForm("folderId"),
		Password:   c.PostForm("password"),
	})
	if err != nil {
		switch err {
		case ErrMissingUpload:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file or folder ID"})
		case ErrFolderNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Folder not found"})
		case ErrFileTooLarge:
			c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		}
		return
	}

	metrics.UploadsTotal.Inc()
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

func (h *httpHandler) download(c *gin.Context) {
	meta, reader, err := h.service.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch err {
		case ErrFileNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		}
		return
	}
	defer reader.Close()

	c.Header("Content-Type", spreadsheetContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", meta.Filename))

	if _, err := io.Copy(c.Writer, reader); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	metrics.DownloadsTotal.Inc()
}

func (h *httpHandler) remove(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		switch err {
		case ErrFileNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *httpHandler) report(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	meta, data, err := h.service.Report(c.Request.Context(), c.Param("id"), req.Password)
	if err != nil {
		switch err {
		case ErrFileNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		case access.ErrInvalidPassword:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load report"})
		}
		return
	}

	metrics.DownloadsTotal.Inc()
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"filename": meta.Filename,
		"data":     base64.StdEncoding.EncodeToString(data),
	})
}
