package procurement

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/procurement"
	"github.com/procure/backend/internal/domain/shared"
)

// PurchaseReceiptService reconciles deliveries against completed
// purchase orders. Receipt creation is serialized per order: the
// remaining quantity is recomputed from the full receipt history, so
// the history read and the receipt write must not interleave with
// another receipt for the same order.
type PurchaseReceiptService struct {
	receipts procurement.PurchaseReceiptRepository
	items    catalog.ItemRepository
	ledger   procurement.ItemLedgerRepository
	uow      procurement.UnitOfWork
	locker   procurement.OrderLocker
	logger   *zap.Logger
}

// NewPurchaseReceiptService creates a new PurchaseReceiptService
func NewPurchaseReceiptService(
	receipts procurement.PurchaseReceiptRepository,
	items catalog.ItemRepository,
	ledger procurement.ItemLedgerRepository,
	uow procurement.UnitOfWork,
	locker procurement.OrderLocker,
	logger *zap.Logger,
) *PurchaseReceiptService {
	return &PurchaseReceiptService{
		receipts: receipts,
		items:    items,
		ledger:   ledger,
		uow:      uow,
		locker:   locker,
		logger:   logger,
	}
}

// Create validates a receipt against the order and its prior receipts,
// then appends the receipt, its ledger entries and the stock
// increments as one transaction. The order scope lock is held from
// before validation until after the commit.
func (s *PurchaseReceiptService) Create(ctx context.Context, req CreateReceiptRequest) (*CreateReceiptResponse, error) {
	if len(req.ReceiptItems) == 0 {
		return nil, shared.NewInvalidInput("The receiptItems array must contain at least one item.")
	}

	release, err := s.locker.Lock(ctx, req.PurchaseOrderID)
	if err != nil {
		return nil, err
	}
	defer release()

	var receipt *procurement.PurchaseReceipt
	err = s.uow.Execute(ctx, func(tx procurement.TxRepositories) error {
		order, err := tx.Orders().FindByID(ctx, req.PurchaseOrderID)
		if err != nil {
			if shared.IsNotFound(err) {
				return shared.NewNotFound("Purchase order not found or not completed.")
			}
			return err
		}
		if !order.Status.CanReceive() {
			return shared.NewNotFound("Purchase order not found or not completed.")
		}

		lines := make([]procurement.ReceiptLine, 0, len(req.ReceiptItems))
		for _, item := range req.ReceiptItems {
			lines = append(lines, procurement.ReceiptLine{
				ItemID:           item.ItemID,
				ReceivedQuantity: item.ReceivedQuantity,
			})
		}
		receipt, err = procurement.NewPurchaseReceipt(order.ID, lines)
		if err != nil {
			return err
		}

		history, err := tx.Receipts().FindByOrder(ctx, order.ID)
		if err != nil {
			return err
		}
		received := procurement.ReceivedByItem(history)

		for _, line := range receipt.Items {
			if _, err := tx.Items().FindByID(ctx, line.ItemID); err != nil {
				return err
			}
			ordered := order.LineForItem(line.ItemID)
			if ordered == nil {
				return shared.NewNotFound(fmt.Sprintf(
					"Item with ID %d is not found in the original purchase order.", line.ItemID))
			}
			remaining := ordered.Quantity - received[line.ItemID]
			if line.ReceivedQuantity > remaining {
				return shared.NewInvalidInput(fmt.Sprintf(
					"Received quantity exceeds remaining ordered quantity (%d) for item %d", remaining, line.ItemID))
			}
		}

		if err := tx.Receipts().Create(ctx, receipt); err != nil {
			return err
		}

		now := time.Now()
		entries := make([]procurement.ItemLedger, 0, len(receipt.Items))
		for _, line := range receipt.Items {
			entry, err := procurement.NewReceiptLedgerEntry(line.ItemID, line.ReceivedQuantity, now)
			if err != nil {
				return err
			}
			entries = append(entries, *entry)
		}
		if err := tx.Ledger().CreateBatch(ctx, entries); err != nil {
			return err
		}

		for _, line := range receipt.Items {
			if err := tx.Items().IncrementStock(ctx, line.ItemID, line.ReceivedQuantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("purchase receipt created",
		zap.Int64("purchase_receipt_id", receipt.ID),
		zap.Int64("purchase_order_id", receipt.PurchaseOrderID),
		zap.Int("line_count", len(receipt.Items)))

	return &CreateReceiptResponse{PurchaseReceiptID: receipt.ID}, nil
}

// GetByID returns one receipt with item names resolved.
func (s *PurchaseReceiptService) GetByID(ctx context.Context, receiptID int64) (*ReceiptResponse, error) {
	if receiptID <= 0 {
		return nil, shared.NewInvalidInput("Invalid Purchase Receipt ID.")
	}
	receipt, err := s.receipts.FindByID(ctx, receiptID)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, shared.NewNotFound("Purchase Receipt ID not found.")
		}
		return nil, err
	}
	return s.toReceiptResponse(ctx, receipt)
}

// ListByOrder returns all receipts recorded against an order.
func (s *PurchaseReceiptService) ListByOrder(ctx context.Context, orderID int64) ([]ReceiptResponse, error) {
	if orderID <= 0 {
		return nil, shared.NewInvalidInput("Invalid purchase order ID.")
	}
	receipts, err := s.receipts.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	responses := make([]ReceiptResponse, 0, len(receipts))
	for i := range receipts {
		resp, err := s.toReceiptResponse(ctx, &receipts[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

// LedgerForItem returns the stock movement history of an item.
func (s *PurchaseReceiptService) LedgerForItem(ctx context.Context, itemID int64) ([]LedgerEntryResponse, error) {
	if itemID <= 0 {
		return nil, shared.NewInvalidInput("Invalid item ID.")
	}
	if _, err := s.items.FindByID(ctx, itemID); err != nil {
		return nil, err
	}
	entries, err := s.ledger.FindByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	responses := make([]LedgerEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, LedgerEntryResponse{
			ID:              entry.ID,
			ItemID:          entry.ItemID,
			TransactionType: string(entry.TransactionType),
			Quantity:        entry.Quantity,
			TransactionDate: entry.TransactionDate,
		})
	}
	return responses, nil
}

func (s *PurchaseReceiptService) toReceiptResponse(ctx context.Context, receipt *procurement.PurchaseReceipt) (*ReceiptResponse, error) {
	resp := &ReceiptResponse{
		ID:              receipt.ID,
		PurchaseOrderID: receipt.PurchaseOrderID,
		ReceiptDate:     receipt.ReceiptDate,
		ReceiptItems:    make([]ReceiptItemResponse, 0, len(receipt.Items)),
	}
	for _, line := range receipt.Items {
		item, err := s.items.FindByID(ctx, line.ItemID)
		if err != nil {
			return nil, err
		}
		resp.ReceiptItems = append(resp.ReceiptItems, ReceiptItemResponse{
			ItemID:           line.ItemID,
			ItemName:         item.Name,
			ReceivedQuantity: line.ReceivedQuantity,
		})
	}
	return resp, nil
}
