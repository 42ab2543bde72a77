package handlers

import (
	"net/http"

	"trabby/models"
	"trabby/services/catalog"

	"github.com/gin-gonic/gin"
)

// FerryHandler exposes the upstream catalog in its native envelope so local
// clients and tests can point CATALOG_BASE_URL at this service itself.
type FerryHandler struct {
	Catalog catalog.Client
}

func NewFerryHandler(client catalog.Client) *FerryHandler {
	return &FerryHandler{Catalog: client}
}

func (h *FerryHandler) ListFerries(c *gin.Context) {
	data, err := h.Catalog.Catalog(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"status": "error", "data": []models.FerryOffering{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": data})
}
