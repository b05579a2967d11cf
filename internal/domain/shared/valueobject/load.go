package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Load is a value object describing a transport load: total weight (kg),
// total volume (m³) and item count. It is used for cart totals, order
// totals and transport capacity arithmetic.
type Load struct {
	weight decimal.Decimal
	volume decimal.Decimal
	items  int
}

// NewLoad creates a Load from weight, volume and item count
func NewLoad(weight, volume decimal.Decimal, items int) (Load, error) {
	if weight.IsNegative() {
		return Load{}, fmt.Errorf("load weight cannot be negative: %s", weight)
	}
	if volume.IsNegative() {
		return Load{}, fmt.Errorf("load volume cannot be negative: %s", volume)
	}
	if items < 0 {
		return Load{}, fmt.Errorf("load item count cannot be negative: %d", items)
	}
	return Load{weight: weight, volume: volume, items: items}, nil
}

// EmptyLoad returns a zero-valued Load
func EmptyLoad() Load {
	return Load{weight: decimal.Zero, volume: decimal.Zero}
}

// Weight returns the total weight in kilograms
func (l Load) Weight() decimal.Decimal {
	return l.weight
}

// Volume returns the total volume in cubic meters
func (l Load) Volume() decimal.Decimal {
	return l.volume
}

// Items returns the item count
func (l Load) Items() int {
	return l.items
}

// Add returns the sum of two loads
func (l Load) Add(other Load) Load {
	return Load{
		weight: l.weight.Add(other.weight),
		volume: l.volume.Add(other.volume),
		items:  l.items + other.items,
	}
}

// Sub returns the difference of two loads; the result may not be negative
func (l Load) Sub(other Load) (Load, error) {
	return NewLoad(l.weight.Sub(other.weight), l.volume.Sub(other.volume), l.items-other.items)
}

// FitsWithin reports whether this load fits inside the given capacity
func (l Load) FitsWithin(capacity Load) bool {
	return l.weight.LessThanOrEqual(capacity.weight) &&
		l.volume.LessThanOrEqual(capacity.volume) &&
		l.items <= capacity.items
}

// IsEmpty returns true if the load carries nothing
func (l Load) IsEmpty() bool {
	return l.items == 0 && l.weight.IsZero() && l.volume.IsZero()
}

// String returns a human-readable representation
func (l Load) String() string {
	return fmt.Sprintf("%s kg / %s m3 / %d items", l.weight.StringFixed(2), l.volume.StringFixed(2), l.items)
}
