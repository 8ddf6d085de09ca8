package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the login endpoint under the provided router group.
func RegisterRoutes(group *gin.RouterGroup, service *Service) {
	handler := &httpHandler{service: service}
	group.POST("/auth", handler.login)
}

type httpHandler struct {
	service *Service
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *httpHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, _, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false})
		return
	}

	c.SetCookie(
		SessionCookie,
		token,
		int(h.service.SessionTTL().Seconds()),
		"/",
		"",
		h.service.Production(),
		true,
	)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
