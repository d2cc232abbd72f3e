package procurement

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/procurement"
	"github.com/procure/backend/internal/domain/shared"
)

// memStore is a mutex-guarded in-memory datastore backing the fake
// repositories. Reads hand out copies so service-side mutation never
// leaks into stored state.
type memStore struct {
	mu        sync.Mutex
	items     map[int64]*catalog.Item
	suppliers map[int64]*catalog.Supplier
	orders    map[int64]*procurement.PurchaseOrder
	receipts  map[int64]*procurement.PurchaseReceipt
	ledger    []procurement.ItemLedger
	nextID    int64
}

func newMemStore() *memStore {
	return &memStore{
		items:     make(map[int64]*catalog.Item),
		suppliers: make(map[int64]*catalog.Supplier),
		orders:    make(map[int64]*procurement.PurchaseOrder),
		receipts:  make(map[int64]*procurement.PurchaseReceipt),
	}
}

// id allocates the next identifier; callers hold s.mu.
func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

// TxRepositories implementation. The services only write after all
// validation has passed and the fake writes cannot fail, so Execute
// does not need to simulate rollback.
func (s *memStore) Orders() procurement.PurchaseOrderRepository     { return memOrders{s} }
func (s *memStore) Receipts() procurement.PurchaseReceiptRepository { return memReceipts{s} }
func (s *memStore) Ledger() procurement.ItemLedgerRepository        { return memLedger{s} }
func (s *memStore) Items() catalog.ItemRepository                   { return memItems{s} }
func (s *memStore) Suppliers() catalog.SupplierRepository           { return memSuppliers{s} }

type memUOW struct{ s *memStore }

func (u memUOW) Execute(_ context.Context, fn func(tx procurement.TxRepositories) error) error {
	return fn(u.s)
}

type memItems struct{ s *memStore }

func (r memItems) FindByID(_ context.Context, id int64) (*catalog.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item, ok := r.s.items[id]
	if !ok {
		return nil, catalog.ErrItemNotFound(id)
	}
	cp := *item
	return &cp, nil
}

func (r memItems) FindAll(_ context.Context, _ shared.Filter) ([]catalog.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	items := make([]catalog.Item, 0, len(r.s.items))
	for _, item := range r.s.items {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r memItems) Count(_ context.Context, _ shared.Filter) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.items)), nil
}

func (r memItems) Save(_ context.Context, item *catalog.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if item.ID == 0 {
		item.ID = r.s.id()
	}
	cp := *item
	r.s.items[item.ID] = &cp
	return nil
}

func (r memItems) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.items, id)
	return nil
}

func (r memItems) IncrementStock(_ context.Context, id int64, delta int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item, ok := r.s.items[id]
	if !ok {
		return catalog.ErrItemNotFound(id)
	}
	item.Quantity += delta
	return nil
}

type memSuppliers struct{ s *memStore }

func (r memSuppliers) FindByID(_ context.Context, id int64) (*catalog.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	supplier, ok := r.s.suppliers[id]
	if !ok {
		return nil, catalog.ErrSupplierNotFound()
	}
	cp := *supplier
	return &cp, nil
}

func (r memSuppliers) FindAll(_ context.Context, _ shared.Filter) ([]catalog.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	suppliers := make([]catalog.Supplier, 0, len(r.s.suppliers))
	for _, supplier := range r.s.suppliers {
		suppliers = append(suppliers, *supplier)
	}
	sort.Slice(suppliers, func(i, j int) bool { return suppliers[i].ID < suppliers[j].ID })
	return suppliers, nil
}

func (r memSuppliers) Count(_ context.Context, _ shared.Filter) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.suppliers)), nil
}

func (r memSuppliers) Save(_ context.Context, supplier *catalog.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if supplier.ID == 0 {
		supplier.ID = r.s.id()
	}
	cp := *supplier
	r.s.suppliers[supplier.ID] = &cp
	return nil
}

func (r memSuppliers) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.suppliers, id)
	return nil
}

func (r memSuppliers) ExistsByEmail(_ context.Context, email string, excludeID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, supplier := range r.s.suppliers {
		if supplier.ID != excludeID && strings.EqualFold(supplier.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r memSuppliers) ExistsByPhone(_ context.Context, phone string, excludeID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, supplier := range r.s.suppliers {
		if supplier.ID != excludeID && strings.EqualFold(supplier.Phone, phone) {
			return true, nil
		}
	}
	return false, nil
}

type memOrders struct{ s *memStore }

func copyOrder(order *procurement.PurchaseOrder) *procurement.PurchaseOrder {
	cp := *order
	cp.Items = append([]procurement.PurchaseOrderItem(nil), order.Items...)
	if order.UpdatedDate != nil {
		at := *order.UpdatedDate
		cp.UpdatedDate = &at
	}
	return &cp
}

func (r memOrders) FindByID(_ context.Context, id int64) (*procurement.PurchaseOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	order, ok := r.s.orders[id]
	if !ok {
		return nil, shared.NewNotFound("purchase order not found")
	}
	return copyOrder(order), nil
}

func (r memOrders) FindAll(_ context.Context, _ shared.Filter) ([]procurement.PurchaseOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	orders := make([]procurement.PurchaseOrder, 0, len(r.s.orders))
	for _, order := range r.s.orders {
		orders = append(orders, *copyOrder(order))
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (r memOrders) Count(_ context.Context, _ shared.Filter) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.orders)), nil
}

func (r memOrders) Create(_ context.Context, order *procurement.PurchaseOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	order.ID = r.s.id()
	for i := range order.Items {
		order.Items[i].ID = r.s.id()
		order.Items[i].PurchaseOrderID = order.ID
	}
	r.s.orders[order.ID] = copyOrder(order)
	return nil
}

func (r memOrders) UpdateStatus(_ context.Context, order *procurement.PurchaseOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.orders[order.ID]
	if !ok {
		return shared.NewNotFound("purchase order not found")
	}
	stored.Status = order.Status
	stored.UpdatedDate = order.UpdatedDate
	return nil
}

type memReceipts struct{ s *memStore }

func copyReceipt(receipt *procurement.PurchaseReceipt) *procurement.PurchaseReceipt {
	cp := *receipt
	cp.Items = append([]procurement.PurchaseReceiptItem(nil), receipt.Items...)
	return &cp
}

func (r memReceipts) FindByID(_ context.Context, id int64) (*procurement.PurchaseReceipt, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	receipt, ok := r.s.receipts[id]
	if !ok {
		return nil, shared.NewNotFound("purchase receipt not found")
	}
	return copyReceipt(receipt), nil
}

func (r memReceipts) FindByOrder(_ context.Context, orderID int64) ([]procurement.PurchaseReceipt, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	receipts := make([]procurement.PurchaseReceipt, 0)
	for _, receipt := range r.s.receipts {
		if receipt.PurchaseOrderID == orderID {
			receipts = append(receipts, *copyReceipt(receipt))
		}
	}
	sort.Slice(receipts, func(i, j int) bool { return receipts[i].ID < receipts[j].ID })
	return receipts, nil
}

func (r memReceipts) Create(_ context.Context, receipt *procurement.PurchaseReceipt) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	receipt.ID = r.s.id()
	for i := range receipt.Items {
		receipt.Items[i].ID = r.s.id()
		receipt.Items[i].PurchaseReceiptID = receipt.ID
	}
	r.s.receipts[receipt.ID] = copyReceipt(receipt)
	return nil
}

type memLedger struct{ s *memStore }

func (r memLedger) CreateBatch(_ context.Context, entries []procurement.ItemLedger) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, entry := range entries {
		entry.ID = r.s.id()
		r.s.ledger = append(r.s.ledger, entry)
	}
	return nil
}

func (r memLedger) FindByItem(_ context.Context, itemID int64) ([]procurement.ItemLedger, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	entries := make([]procurement.ItemLedger, 0)
	for _, entry := range r.s.ledger {
		if entry.ItemID == itemID {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// Seed helpers.

func (s *memStore) seedItem(name string, quantity int) *catalog.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := &catalog.Item{ID: s.id(), Name: name, Quantity: quantity}
	s.items[item.ID] = item
	return item
}

func (s *memStore) seedSupplier(name string) *catalog.Supplier {
	s.mu.Lock()
	defer s.mu.Unlock()
	supplier := &catalog.Supplier{
		ID:    s.id(),
		Name:  name,
		Email: name + "@example.com",
		Phone: name + "-0100",
	}
	s.suppliers[supplier.ID] = supplier
	return supplier
}

func (s *memStore) seedOrder(supplierID int64, status procurement.OrderStatus, lines ...procurement.PurchaseOrderItem) *procurement.PurchaseOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	order := &procurement.PurchaseOrder{
		ID:         s.id(),
		SupplierID: supplierID,
		OrderDate:  time.Now(),
		Status:     status,
	}
	for _, line := range lines {
		line.ID = s.id()
		line.PurchaseOrderID = order.ID
		order.TotalAmount = order.TotalAmount.Add(line.LineTotal())
		order.Items = append(order.Items, line)
	}
	s.orders[order.ID] = order
	return order
}

func (s *memStore) stockOf(itemID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[itemID].Quantity
}

func (s *memStore) receiptCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.receipts)
}

func (s *memStore) ledgerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ledger)
}
