package ordering

import (
	"github.com/shopspring/decimal"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared/valueobject"
)

// RouteClass scales shipping cost by delivery tier
type RouteClass string

const (
	RouteClassLocal    RouteClass = "local"    // Same city as the store
	RouteClassRegional RouteClass = "regional" // Within the store's region
	RouteClassExpress  RouteClass = "express"  // Priority long-haul delivery
)

// IsValid checks if the class is a known RouteClass
func (c RouteClass) IsValid() bool {
	switch c {
	case RouteClassLocal, RouteClassRegional, RouteClassExpress:
		return true
	}
	return false
}

// Multiplier returns the cost multiplier for the route class
func (c RouteClass) Multiplier() decimal.Decimal {
	switch c {
	case RouteClassRegional:
		return decimal.NewFromFloat(1.2)
	case RouteClassExpress:
		return decimal.NewFromFloat(1.5)
	default:
		return decimal.NewFromInt(1)
	}
}

// Shipping cost rate constants, LKR per unit
var (
	shippingWeightRate   = decimal.NewFromFloat(1.5) // per kg
	shippingVolumeRate   = decimal.NewFromFloat(2.0) // per cubic meter
	shippingDistanceRate = decimal.NewFromFloat(0.5) // per km
	shippingMinimum      = decimal.NewFromFloat(10.0)
)

// ShippingCalculator computes shipping cost from an order's load and
// the distance of its delivery route.
type ShippingCalculator struct{}

// NewShippingCalculator creates a new ShippingCalculator
func NewShippingCalculator() *ShippingCalculator {
	return &ShippingCalculator{}
}

// Calculate returns the shipping cost for the given load over the
// given distance. The base cost is weight, volume, and distance at
// fixed rates, scaled by the route class, with a flat minimum charge.
func (s *ShippingCalculator) Calculate(load valueobject.Load, distanceKM decimal.Decimal, class RouteClass) (decimal.Decimal, error) {
	if distanceKM.IsNegative() {
		return decimal.Zero, shared.NewDomainError("INVALID_DISTANCE", "Distance cannot be negative")
	}
	if !class.IsValid() {
		return decimal.Zero, shared.NewDomainError("INVALID_ROUTE_CLASS", "Unknown route class")
	}

	base := load.Weight().Mul(shippingWeightRate).
		Add(load.Volume().Mul(shippingVolumeRate)).
		Add(distanceKM.Mul(shippingDistanceRate))

	cost := base.Mul(class.Multiplier()).Round(2)
	if cost.LessThan(shippingMinimum) {
		cost = shippingMinimum
	}

	return cost, nil
}
