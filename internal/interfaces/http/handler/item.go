package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/procure/backend/internal/application/catalog"
	procurementapp "github.com/procure/backend/internal/application/procurement"
)

// ItemHandler handles item master API endpoints
type ItemHandler struct {
	BaseHandler
	itemService    *catalogapp.ItemService
	receiptService *procurementapp.PurchaseReceiptService
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(
	itemService *catalogapp.ItemService,
	receiptService *procurementapp.PurchaseReceiptService,
) *ItemHandler {
	return &ItemHandler{
		itemService:    itemService,
		receiptService: receiptService,
	}
}

// RegisterRoutes registers item routes
func (h *ItemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/catalog/items")
	{
		items.POST("", h.Create)
		items.GET("", h.List)
		items.GET("/:id", h.GetByID)
		items.GET("/:id/ledger", h.Ledger)
	}
}

// Create registers a new item in the catalog
func (h *ItemHandler) Create(c *gin.Context) {
	var req catalogapp.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.itemService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// GetByID returns one item
func (h *ItemHandler) GetByID(c *gin.Context) {
	resp, err := h.itemService.GetByID(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List returns items with pagination
func (h *ItemHandler) List(c *gin.Context) {
	filter, err := listFilter(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}
	if category := c.Query("category"); category != "" {
		filter.Filters["category"] = category
	}

	page, err := h.itemService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Ledger returns the stock movement history of an item
func (h *ItemHandler) Ledger(c *gin.Context) {
	entries, err := h.receiptService.LedgerForItem(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, entries)
}
