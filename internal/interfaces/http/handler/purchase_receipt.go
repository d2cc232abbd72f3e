package handler

import (
	"github.com/gin-gonic/gin"

	procurementapp "github.com/procure/backend/internal/application/procurement"
)

// PurchaseReceiptHandler handles purchase receipt API endpoints
type PurchaseReceiptHandler struct {
	BaseHandler
	receiptService *procurementapp.PurchaseReceiptService
}

// NewPurchaseReceiptHandler creates a new PurchaseReceiptHandler
func NewPurchaseReceiptHandler(receiptService *procurementapp.PurchaseReceiptService) *PurchaseReceiptHandler {
	return &PurchaseReceiptHandler{receiptService: receiptService}
}

// RegisterRoutes registers purchase receipt routes
func (h *PurchaseReceiptHandler) RegisterRoutes(rg *gin.RouterGroup) {
	receipts := rg.Group("/procurement/purchase-receipts")
	{
		receipts.POST("", h.Create)
		receipts.GET("/:id", h.GetByID)
	}
}

// Create records a goods receipt against a completed purchase order
func (h *PurchaseReceiptHandler) Create(c *gin.Context) {
	var req procurementapp.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.receiptService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// GetByID returns one receipt with item names resolved
func (h *PurchaseReceiptHandler) GetByID(c *gin.Context) {
	resp, err := h.receiptService.GetByID(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
