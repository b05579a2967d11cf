package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/catalog"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
)

// ItemService handles catalog item management. Customers browse through
// it read-only, mutations are staff operations.
type ItemService struct {
	itemRepo  catalog.ItemRepository
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewItemService creates a new catalog item service
func NewItemService(itemRepo catalog.ItemRepository, publisher shared.EventPublisher, logger *zap.Logger) *ItemService {
	return &ItemService{
		itemRepo:  itemRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateItem adds a new item to the catalog
func (s *ItemService) CreateItem(ctx context.Context, input CreateItemInput) (*ItemInfo, error) {
	exists, err := s.itemRepo.ExistsByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ITEM_CODE_TAKEN", "An item with this code already exists")
	}

	item, err := catalog.NewItem(input.Code, input.Name, input.UnitPrice, input.UnitWeight, input.UnitVolume)
	if err != nil {
		return nil, err
	}
	if input.Description != "" || input.Category != "" || input.Subcategory != "" {
		if err := item.Update(input.Name, input.Description, input.Category, input.Subcategory); err != nil {
			return nil, err
		}
	}
	if input.Fragile || input.Hazardous || input.StockThreshold > 0 {
		threshold := input.StockThreshold
		if threshold == 0 {
			threshold = item.StockThreshold
		}
		if err := item.SetHandling(input.Fragile, input.Hazardous, threshold); err != nil {
			return nil, err
		}
	}
	if input.ImageURL != "" {
		if err := item.SetImageURL(input.ImageURL); err != nil {
			return nil, err
		}
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		s.logger.Error("Failed to create item", zap.Error(err))
		return nil, err
	}

	s.publishEvents(ctx, item)

	s.logger.Info("Item created",
		zap.String("code", item.Code),
		zap.String("item_id", item.ID.String()))

	info := NewItemInfo(item)
	return &info, nil
}

// GetItem returns a single item by ID
func (s *ItemService) GetItem(ctx context.Context, id uuid.UUID) (*ItemInfo, error) {
	item, err := s.findItem(ctx, id)
	if err != nil {
		return nil, err
	}
	info := NewItemInfo(item)
	return &info, nil
}

// GetItemByCode returns a single item by its code
func (s *ItemService) GetItemByCode(ctx context.Context, code string) (*ItemInfo, error) {
	item, err := s.itemRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("ITEM_NOT_FOUND", "Item not found")
		}
		return nil, err
	}
	info := NewItemInfo(item)
	return &info, nil
}

// ListItems returns a page of catalog items matching the filter
func (s *ItemService) ListItems(ctx context.Context, input ListItemsInput) (*ListItemsResult, error) {
	filter := catalog.NewItemFilter()
	filter.Keyword = input.Keyword
	filter.Category = input.Category
	if input.Status != "" {
		status := catalog.ItemStatus(input.Status)
		filter.Status = &status
	}
	if input.Page > 0 {
		filter.Page = input.Page
	}
	if input.PageSize > 0 {
		filter.PageSize = input.PageSize
	}

	items, total, err := s.itemRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	infos := make([]ItemInfo, 0, len(items))
	for _, item := range items {
		infos = append(infos, NewItemInfo(item))
	}

	return &ListItemsResult{
		Items:    infos,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

// UpdateItem changes an item's descriptive fields
func (s *ItemService) UpdateItem(ctx context.Context, input UpdateItemInput) (*ItemInfo, error) {
	item, err := s.findItem(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}

	if err := item.Update(input.Name, input.Description, input.Category, input.Subcategory); err != nil {
		return nil, err
	}
	if err := s.saveItem(ctx, item); err != nil {
		return nil, err
	}

	info := NewItemInfo(item)
	return &info, nil
}

// SetItemHandling changes an item's handling flags and stock threshold
func (s *ItemService) SetItemHandling(ctx context.Context, input SetItemHandlingInput) (*ItemInfo, error) {
	item, err := s.findItem(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}

	if err := item.SetHandling(input.Fragile, input.Hazardous, input.StockThreshold); err != nil {
		return nil, err
	}
	if err := s.saveItem(ctx, item); err != nil {
		return nil, err
	}

	info := NewItemInfo(item)
	return &info, nil
}

// SetItemPrice changes an item's unit price
func (s *ItemService) SetItemPrice(ctx context.Context, input SetItemPriceInput) (*ItemInfo, error) {
	item, err := s.findItem(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}

	oldPrice := item.UnitPrice
	if err := item.SetPrice(input.UnitPrice); err != nil {
		return nil, err
	}
	if err := s.saveItem(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("Item price changed",
		zap.String("code", item.Code),
		zap.String("old_price", oldPrice.String()),
		zap.String("new_price", item.UnitPrice.String()))

	info := NewItemInfo(item)
	return &info, nil
}

// SetItemDimensions changes an item's unit weight and volume
func (s *ItemService) SetItemDimensions(ctx context.Context, input SetItemDimensionsInput) (*ItemInfo, error) {
	item, err := s.findItem(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}

	if err := item.SetDimensions(input.UnitWeight, input.UnitVolume); err != nil {
		return nil, err
	}
	if err := s.saveItem(ctx, item); err != nil {
		return nil, err
	}

	info := NewItemInfo(item)
	return &info, nil
}

// ActivateItem makes an item orderable again
func (s *ItemService) ActivateItem(ctx context.Context, id uuid.UUID) error {
	return s.mutateItem(ctx, id, func(i *catalog.Item) error { return i.Activate() })
}

// DeactivateItem hides an item from ordering without discontinuing it
func (s *ItemService) DeactivateItem(ctx context.Context, id uuid.UUID) error {
	return s.mutateItem(ctx, id, func(i *catalog.Item) error { return i.Deactivate() })
}

// DiscontinueItem permanently retires an item. Discontinued items stay
// visible on historical orders but can never be reactivated.
func (s *ItemService) DiscontinueItem(ctx context.Context, id uuid.UUID) error {
	return s.mutateItem(ctx, id, func(i *catalog.Item) error { return i.Discontinue() })
}

func (s *ItemService) findItem(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("ITEM_NOT_FOUND", "Item not found")
		}
		return nil, err
	}
	return item, nil
}

func (s *ItemService) saveItem(ctx context.Context, item *catalog.Item) error {
	if err := s.itemRepo.Update(ctx, item); err != nil {
		s.logger.Error("Failed to update item", zap.Error(err))
		return err
	}
	s.publishEvents(ctx, item)
	return nil
}

func (s *ItemService) mutateItem(ctx context.Context, id uuid.UUID, fn func(*catalog.Item) error) error {
	item, err := s.findItem(ctx, id)
	if err != nil {
		return err
	}
	if err := fn(item); err != nil {
		return err
	}
	return s.saveItem(ctx, item)
}

func (s *ItemService) publishEvents(ctx context.Context, item *catalog.Item) {
	events := item.GetDomainEvents()
	if s.publisher == nil || len(events) == 0 {
		return
	}
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.logger.Error("Failed to publish domain events", zap.Error(err))
	}
	item.ClearDomainEvents()
}
