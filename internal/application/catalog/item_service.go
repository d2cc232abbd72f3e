package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/shared"
)

// ItemService handles item business operations
type ItemService struct {
	items  catalog.ItemRepository
	logger *zap.Logger
}

// NewItemService creates a new ItemService
func NewItemService(items catalog.ItemRepository, logger *zap.Logger) *ItemService {
	return &ItemService{items: items, logger: logger}
}

// Create registers an item with its opening stock.
func (s *ItemService) Create(ctx context.Context, req CreateItemRequest) (*ItemResponse, error) {
	item, err := catalog.NewItem(req.Name, req.Description, req.Category, req.Quantity)
	if err != nil {
		return nil, err
	}
	if err := s.items.Save(ctx, item); err != nil {
		return nil, err
	}
	s.logger.Info("item created", zap.Int64("item_id", item.ID))
	return ToItemResponse(item), nil
}

// GetByID returns one item.
func (s *ItemService) GetByID(ctx context.Context, id int64) (*ItemResponse, error) {
	if id <= 0 {
		return nil, shared.NewInvalidInput("Invalid item ID.")
	}
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToItemResponse(item), nil
}

// List returns a page of items.
func (s *ItemService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[ItemResponse], error) {
	items, err := s.items.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.items.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, *ToItemResponse(&items[i]))
	}
	page := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &page, nil
}
