package share

import (
	"net/http"

	"github.com/alazarbeyenenew2/fileshare/internal/metrics"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the QR endpoint under the provided router group.
func RegisterRoutes(group *gin.RouterGroup, service *Service) {
	handler := &httpHandler{service: service}
	group.GET("/folders/:id/qr", handler.folderQR)
}

type httpHandler struct {
	service *Service
}

func (h *httpHandler) folderQR(c *gin.Context) {
	url := h.service.FolderURL(c.Param("id"))

	dataURL, err := h.service.QRDataURL(url)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}

	metrics.QRCodesTotal.Inc()
	c.JSON(http.StatusOK, gin.H{"qrCode": dataURL, "url": url})
}
