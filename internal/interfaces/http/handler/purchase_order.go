package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	procurementapp "github.com/procure/backend/internal/application/procurement"
)

// PurchaseOrderHandler handles purchase order API endpoints
type PurchaseOrderHandler struct {
	BaseHandler
	orderService   *procurementapp.PurchaseOrderService
	receiptService *procurementapp.PurchaseReceiptService
}

// NewPurchaseOrderHandler creates a new PurchaseOrderHandler
func NewPurchaseOrderHandler(
	orderService *procurementapp.PurchaseOrderService,
	receiptService *procurementapp.PurchaseReceiptService,
) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{
		orderService:   orderService,
		receiptService: receiptService,
	}
}

// RegisterRoutes registers purchase order routes
func (h *PurchaseOrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/procurement/purchase-orders")
	{
		orders.POST("", h.Create)
		orders.GET("", h.List)
		orders.GET("/:id", h.GetByID)
		orders.PUT("/:id/status", h.UpdateStatus)
		orders.GET("/:id/receipts", h.ListReceipts)
	}
}

// Create places a new purchase order
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	var req procurementapp.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// GetByID returns one purchase order with its lines
func (h *PurchaseOrderHandler) GetByID(c *gin.Context) {
	resp, err := h.orderService.GetByID(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List returns purchase orders, optionally filtered by status or supplier
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	filter, err := listFilter(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}
	if raw := c.Query("supplier_id"); raw != "" {
		if supplierID, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.Filters["supplier_id"] = supplierID
		}
	}

	page, err := h.orderService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// UpdateStatus transitions a pending order to a terminal status
func (h *PurchaseOrderHandler) UpdateStatus(c *gin.Context) {
	var req procurementapp.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	if err := h.orderService.UpdateStatus(c.Request.Context(), idParam(c, "id"), req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListReceipts returns every receipt recorded against an order
func (h *PurchaseOrderHandler) ListReceipts(c *gin.Context) {
	receipts, err := h.receiptService.ListByOrder(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, receipts)
}
