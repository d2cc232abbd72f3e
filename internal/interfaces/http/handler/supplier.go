package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/procure/backend/internal/application/catalog"
)

// SupplierHandler handles supplier API endpoints
type SupplierHandler struct {
	BaseHandler
	supplierService *catalogapp.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler
func NewSupplierHandler(supplierService *catalogapp.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

// RegisterRoutes registers supplier routes
func (h *SupplierHandler) RegisterRoutes(rg *gin.RouterGroup) {
	suppliers := rg.Group("/catalog/suppliers")
	{
		suppliers.POST("", h.Create)
		suppliers.GET("", h.List)
		suppliers.GET("/:id", h.GetByID)
		suppliers.PUT("/:id", h.Update)
		suppliers.DELETE("/:id", h.Delete)
	}
}

// Create registers a new supplier
func (h *SupplierHandler) Create(c *gin.Context) {
	var req catalogapp.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.supplierService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// GetByID returns one supplier
func (h *SupplierHandler) GetByID(c *gin.Context) {
	resp, err := h.supplierService.GetByID(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List returns suppliers with pagination
func (h *SupplierHandler) List(c *gin.Context) {
	filter, err := listFilter(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	page, err := h.supplierService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update applies a partial update to a supplier
func (h *SupplierHandler) Update(c *gin.Context) {
	var req catalogapp.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.supplierService.Update(c.Request.Context(), idParam(c, "id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete removes a supplier
func (h *SupplierHandler) Delete(c *gin.Context) {
	if err := h.supplierService.Delete(c.Request.Context(), idParam(c, "id")); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
