package ordering

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared/valueobject"
)

// CartStatus represents the status of a shopping cart
type CartStatus string

const (
	CartStatusActive     CartStatus = "active"
	CartStatusCheckedOut CartStatus = "checked_out"
	CartStatusAbandoned  CartStatus = "abandoned"
)

// CartItem represents a line in a shopping cart.
// Price, weight, and volume are snapshotted from the catalog when
// the line is added so later catalog edits do not silently change
// a cart already in progress.
type CartItem struct {
	ID         uuid.UUID
	CartID     uuid.UUID
	ItemID     uuid.UUID
	ItemCode   string
	ItemName   string
	Quantity   int
	UnitPrice  decimal.Decimal
	UnitWeight decimal.Decimal
	UnitVolume decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Amount returns the line total
func (i *CartItem) Amount() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Load returns the transport load of the line
func (i *CartItem) Load() valueobject.Load {
	qty := decimal.NewFromInt(int64(i.Quantity))
	load, _ := valueobject.NewLoad(i.UnitWeight.Mul(qty), i.UnitVolume.Mul(qty), i.Quantity)
	return load
}

// Cart represents a customer's shopping cart.
// It is the aggregate root for pre-checkout operations.
// A customer has at most one active cart at a time.
type Cart struct {
	shared.BaseAggregateRoot
	CustomerID uuid.UUID
	Status     CartStatus
	Items      []CartItem
}

// NewCart creates a new active cart for a customer
func NewCart(customerID uuid.UUID) (*Cart, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}

	return &Cart{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		Status:            CartStatusActive,
		Items:             make([]CartItem, 0),
	}, nil
}

// AddItem adds an item to the cart, or raises the quantity if the
// item is already present.
func (c *Cart) AddItem(itemID uuid.UUID, itemCode, itemName string, quantity int, unitPrice, unitWeight, unitVolume decimal.Decimal) error {
	if c.Status != CartStatusActive {
		return shared.NewDomainError("CART_NOT_ACTIVE", "Cannot modify a cart that is not active")
	}
	if itemID == uuid.Nil {
		return shared.NewDomainError("INVALID_ITEM", "Item ID cannot be empty")
	}
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	now := time.Now()
	for idx := range c.Items {
		if c.Items[idx].ItemID == itemID {
			c.Items[idx].Quantity += quantity
			c.Items[idx].UpdatedAt = now
			c.UpdatedAt = now
			c.IncrementVersion()
			return nil
		}
	}

	c.Items = append(c.Items, CartItem{
		ID:         uuid.New(),
		CartID:     c.ID,
		ItemID:     itemID,
		ItemCode:   itemCode,
		ItemName:   itemName,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		UnitWeight: unitWeight,
		UnitVolume: unitVolume,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	c.UpdatedAt = now
	c.IncrementVersion()

	return nil
}

// UpdateItemQuantity sets the quantity of a cart line.
// A quantity of zero removes the line.
func (c *Cart) UpdateItemQuantity(itemID uuid.UUID, quantity int) error {
	if c.Status != CartStatusActive {
		return shared.NewDomainError("CART_NOT_ACTIVE", "Cannot modify a cart that is not active")
	}
	if quantity < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	if quantity == 0 {
		return c.RemoveItem(itemID)
	}

	for idx := range c.Items {
		if c.Items[idx].ItemID == itemID {
			c.Items[idx].Quantity = quantity
			c.Items[idx].UpdatedAt = time.Now()
			c.UpdatedAt = time.Now()
			c.IncrementVersion()
			return nil
		}
	}

	return shared.NewDomainError("ITEM_NOT_IN_CART", "Item is not in the cart")
}

// RemoveItem removes a line from the cart
func (c *Cart) RemoveItem(itemID uuid.UUID) error {
	if c.Status != CartStatusActive {
		return shared.NewDomainError("CART_NOT_ACTIVE", "Cannot modify a cart that is not active")
	}

	for idx := range c.Items {
		if c.Items[idx].ItemID == itemID {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
			c.UpdatedAt = time.Now()
			c.IncrementVersion()
			return nil
		}
	}

	return shared.NewDomainError("ITEM_NOT_IN_CART", "Item is not in the cart")
}

// Clear removes all lines from the cart
func (c *Cart) Clear() error {
	if c.Status != CartStatusActive {
		return shared.NewDomainError("CART_NOT_ACTIVE", "Cannot modify a cart that is not active")
	}

	c.Items = make([]CartItem, 0)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// MarkCheckedOut marks the cart as converted into an order
func (c *Cart) MarkCheckedOut() error {
	if c.Status != CartStatusActive {
		return shared.NewDomainError("CART_NOT_ACTIVE", "Cart is not active")
	}
	if c.IsEmpty() {
		return shared.ErrEmptyCart
	}

	c.Status = CartStatusCheckedOut
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// Abandon marks the cart as abandoned
func (c *Cart) Abandon() error {
	if c.Status != CartStatusActive {
		return shared.NewDomainError("CART_NOT_ACTIVE", "Cart is not active")
	}

	c.Status = CartStatusAbandoned
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// IsEmpty returns true if the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ItemCount returns the number of distinct lines
func (c *Cart) ItemCount() int {
	return len(c.Items)
}

// Subtotal returns the cart total before discount and shipping
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for idx := range c.Items {
		total = total.Add(c.Items[idx].Amount())
	}
	return total
}

// TotalLoad returns the combined transport load of all lines
func (c *Cart) TotalLoad() valueobject.Load {
	load := valueobject.EmptyLoad()
	for idx := range c.Items {
		load = load.Add(c.Items[idx].Load())
	}
	return load
}

// GetItem returns the cart line for the given catalog item, or nil
func (c *Cart) GetItem(itemID uuid.UUID) *CartItem {
	for idx := range c.Items {
		if c.Items[idx].ItemID == itemID {
			return &c.Items[idx]
		}
	}
	return nil
}
