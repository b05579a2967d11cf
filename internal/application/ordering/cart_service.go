package ordering

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/catalog"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/customer"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/ordering"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
)

// CartService manages the customer's shopping cart. Each customer has
// at most one active cart, created lazily on first use.
type CartService struct {
	cartRepo     ordering.CartRepository
	itemRepo     catalog.ItemRepository
	customerRepo customer.CustomerRepository
	logger       *zap.Logger
}

// NewCartService creates a new cart service
func NewCartService(
	cartRepo ordering.CartRepository,
	itemRepo catalog.ItemRepository,
	customerRepo customer.CustomerRepository,
	logger *zap.Logger,
) *CartService {
	return &CartService{
		cartRepo:     cartRepo,
		itemRepo:     itemRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// GetCart returns the customer's active cart, creating one if needed
func (s *CartService) GetCart(ctx context.Context, customerID uuid.UUID) (*CartInfo, error) {
	c, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("CUSTOMER_NOT_FOUND", "Customer not found")
		}
		return nil, err
	}

	cart, err := s.findOrCreateCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	info := NewCartInfo(cart, c.Type.DiscountRate())
	return &info, nil
}

// AddItem puts an item in the cart, merging quantities if the item is
// already there. Price, weight, and volume are snapshotted from the
// catalog at add time.
func (s *CartService) AddItem(ctx context.Context, input AddCartItemInput) (*CartInfo, error) {
	c, err := s.customerRepo.FindByID(ctx, input.CustomerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("CUSTOMER_NOT_FOUND", "Customer not found")
		}
		return nil, err
	}
	if !c.CanPlaceOrders() {
		return nil, shared.NewDomainError("CUSTOMER_INACTIVE", "Customer account cannot place orders")
	}

	item, err := s.itemRepo.FindByID(ctx, input.ItemID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("ITEM_NOT_FOUND", "Item not found")
		}
		return nil, err
	}
	if !item.IsActive() {
		return nil, shared.NewDomainError("ITEM_UNAVAILABLE", "Item is not available for ordering")
	}

	cart, err := s.findOrCreateCart(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	if err := cart.AddItem(item.ID, item.Code, item.Name, input.Quantity,
		item.UnitPrice, item.UnitWeight, item.UnitVolume); err != nil {
		return nil, err
	}

	if err := s.cartRepo.Update(ctx, cart); err != nil {
		s.logger.Error("Failed to update cart", zap.Error(err))
		return nil, err
	}

	info := NewCartInfo(cart, c.Type.DiscountRate())
	return &info, nil
}

// UpdateItemQuantity sets the quantity of a cart line
func (s *CartService) UpdateItemQuantity(ctx context.Context, input UpdateCartItemInput) (*CartInfo, error) {
	return s.mutateCart(ctx, input.CustomerID, func(cart *ordering.Cart) error {
		return cart.UpdateItemQuantity(input.ItemID, input.Quantity)
	})
}

// RemoveItem removes a line from the cart
func (s *CartService) RemoveItem(ctx context.Context, customerID, itemID uuid.UUID) (*CartInfo, error) {
	return s.mutateCart(ctx, customerID, func(cart *ordering.Cart) error {
		return cart.RemoveItem(itemID)
	})
}

// ClearCart empties the cart
func (s *CartService) ClearCart(ctx context.Context, customerID uuid.UUID) (*CartInfo, error) {
	return s.mutateCart(ctx, customerID, func(cart *ordering.Cart) error {
		return cart.Clear()
	})
}

func (s *CartService) mutateCart(ctx context.Context, customerID uuid.UUID, fn func(*ordering.Cart) error) (*CartInfo, error) {
	c, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("CUSTOMER_NOT_FOUND", "Customer not found")
		}
		return nil, err
	}

	cart, err := s.cartRepo.FindActiveByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("CART_NOT_FOUND", "No active cart")
		}
		return nil, err
	}

	if err := fn(cart); err != nil {
		return nil, err
	}

	if err := s.cartRepo.Update(ctx, cart); err != nil {
		s.logger.Error("Failed to update cart", zap.Error(err))
		return nil, err
	}

	info := NewCartInfo(cart, c.Type.DiscountRate())
	return &info, nil
}

func (s *CartService) findOrCreateCart(ctx context.Context, customerID uuid.UUID) (*ordering.Cart, error) {
	cart, err := s.cartRepo.FindActiveByCustomer(ctx, customerID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	cart, err = ordering.NewCart(customerID)
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.Create(ctx, cart); err != nil {
		s.logger.Error("Failed to create cart", zap.Error(err))
		return nil, err
	}
	return cart, nil
}
