package procurement

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/procurement"
	"github.com/procure/backend/internal/domain/shared"
)

// PurchaseOrderService handles purchase order business operations
type PurchaseOrderService struct {
	orders    procurement.PurchaseOrderRepository
	suppliers catalog.SupplierRepository
	items     catalog.ItemRepository
	uow       procurement.UnitOfWork
	logger    *zap.Logger
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(
	orders procurement.PurchaseOrderRepository,
	suppliers catalog.SupplierRepository,
	items catalog.ItemRepository,
	uow procurement.UnitOfWork,
	logger *zap.Logger,
) *PurchaseOrderService {
	return &PurchaseOrderService{
		orders:    orders,
		suppliers: suppliers,
		items:     items,
		uow:       uow,
		logger:    logger,
	}
}

// Create validates a purchase order request, resolves its references
// and persists the order with its lines in one transaction.
func (s *PurchaseOrderService) Create(ctx context.Context, req CreateOrderRequest) (*CreateOrderResponse, error) {
	if len(req.OrderItems) == 0 {
		return nil, shared.NewInvalidInput("The orderItems array must contain at least one item.")
	}
	if req.SupplierID <= 0 {
		return nil, shared.NewInvalidInput("Invalid supplier ID.")
	}
	if _, err := s.suppliers.FindByID(ctx, req.SupplierID); err != nil {
		return nil, err
	}

	lines := make([]procurement.OrderLine, 0, len(req.OrderItems))
	for _, item := range req.OrderItems {
		lines = append(lines, procurement.OrderLine{
			ItemID:    item.ItemID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	order, err := procurement.NewPurchaseOrder(req.SupplierID, lines)
	if err != nil {
		return nil, err
	}

	// Referenced items must exist. Checked in request order so the
	// first missing item is the one reported.
	for _, item := range req.OrderItems {
		if _, err := s.items.FindByID(ctx, item.ItemID); err != nil {
			return nil, err
		}
	}

	err = s.uow.Execute(ctx, func(tx procurement.TxRepositories) error {
		return tx.Orders().Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("purchase order created",
		zap.Int64("purchase_order_id", order.ID),
		zap.Int64("supplier_id", order.SupplierID),
		zap.String("total_amount", order.TotalAmount.String()))

	return &CreateOrderResponse{
		PurchaseOrderID: order.ID,
		TotalAmount:     order.TotalAmount,
	}, nil
}

// UpdateStatus moves a pending order to completed or cancelled.
func (s *PurchaseOrderService) UpdateStatus(ctx context.Context, orderID int64, req UpdateOrderStatusRequest) error {
	target, err := procurement.ParseTargetStatus(req.Status)
	if err != nil {
		return err
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if shared.IsNotFound(err) {
			return shared.NewNotFound(fmt.Sprintf("Purchase Order with ID %d not found.", orderID))
		}
		return err
	}

	if err := order.TransitionTo(target); err != nil {
		return err
	}

	err = s.uow.Execute(ctx, func(tx procurement.TxRepositories) error {
		return tx.Orders().UpdateStatus(ctx, order)
	})
	if err != nil {
		return err
	}

	s.logger.Info("purchase order status updated",
		zap.Int64("purchase_order_id", order.ID),
		zap.String("status", string(order.Status)))
	return nil
}

// GetByID returns one order with its lines.
func (s *PurchaseOrderService) GetByID(ctx context.Context, orderID int64) (*OrderResponse, error) {
	if orderID <= 0 {
		return nil, shared.NewInvalidInput("Invalid purchase order ID.")
	}
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, shared.NewNotFound(fmt.Sprintf("Purchase Order with ID %d not found.", orderID))
		}
		return nil, err
	}
	return ToOrderResponse(order), nil
}

// List returns a page of orders.
func (s *PurchaseOrderService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[OrderResponse], error) {
	orders, err := s.orders.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.orders.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, *ToOrderResponse(&orders[i]))
	}
	page := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &page, nil
}
