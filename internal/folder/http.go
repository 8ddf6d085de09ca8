package folder

import (
	"net/http"

	"github.com/alazarbeyenenew2/fileshare/internal/access"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts folder operations under the provided router group.
// Mutations go behind the admin session middleware; reads and password
// verification stay public so shared links work for anonymous visitors.
func RegisterRoutes(group *gin.RouterGroup, service *Service, adminOnly gin.HandlerFunc) {
	handler := &httpHandler{service: service}
	group.GET("/folders", handler.list)
	group.POST("/folders", adminOnly, handler.create)
	group.DELETE("/folders", adminOnly, handler.remove)
	group.GET("/folders/:id", handler.get)
	group.PUT("/folders/:id", adminOnly, handler.update)
	group.POST("/folders/:id", handler.verifyPassword)
}

type httpHandler struct {
	service *Service
}

type createRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parentId"`
	Password string  `json:"password"`
}

type updateRequest struct {
	Name     string  `json:"name"`
	Password *string `json:"password"`
}

type verifyRequest struct {
	Password string `json:"password"`
}

func (h *httpHandler) list(c *gin.Context) {
	folders, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list folders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"folders": folders})
}

func (h *httpHandler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Folder name required"})
		return
	}

	f, err := h.service.Create(c.Request.Context(), CreateInput{
		Name:     req.Name,
		ParentID: req.ParentID,
		Password: req.Password,
	})
	if err != nil {
		switch err {
		case ErrNameRequired:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Folder name required"})
		case ErrParentNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Parent folder not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create folder"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "folder": f})
}

func (h *httpHandler) remove(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Folder ID required"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete folder"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *httpHandler) get(c *gin.Context) {
	f, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch err {
		case ErrFolderNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Folder not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load folder"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"folder": f})
}

func (h *httpHandler) update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	f, err := h.service.Update(c.Request.Context(), c.Param("id"), UpdateInput{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		switch err {
		case ErrFolderNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Folder not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update folder"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "folder": f})
}

func (h *httpHandler) verifyPassword(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	f, err := h.service.VerifyPassword(c.Request.Context(), c.Param("id"), req.Password)
	if err != nil {
		switch err {
		case ErrFolderNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Folder not found"})
		case access.ErrInvalidPassword:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify password"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "folder": f})
}
