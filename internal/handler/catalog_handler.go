package handler

import (
	"net/http"

	"laundry_service/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the public catalog
type CatalogHandler struct {
	service service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *CatalogHandler) ListBeforeAfter(c *gin.Context) {
	items, err := h.service.ListBeforeAfterItems(c.Request.Context())
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// RegisterCatalogRoutes registers the public catalog routes
func (h *CatalogHandler) RegisterCatalogRoutes(rg *gin.RouterGroup) {
	rg.GET("/services", h.ListServices)
	rg.GET("/before-after", h.ListBeforeAfter)
}
