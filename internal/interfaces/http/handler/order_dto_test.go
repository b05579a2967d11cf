package handler

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderingapp "github.com/RaminduDJay/supply-chain-management/internal/application/ordering"
)

func TestNewOrderResponse(t *testing.T) {
	scheduleID := uuid.New()
	actorID := uuid.New()
	confirmedAt := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	info := orderingapp.OrderInfo{
		ID:              uuid.New(),
		OrderNumber:     "ORD-2026-000042",
		CustomerID:      uuid.New(),
		CustomerName:    "Lanka Hardware",
		StoreID:         uuid.New(),
		RouteID:         uuid.New(),
		TrainScheduleID: &scheduleID,
		Lines: []orderingapp.OrderLineInfo{
			{
				ItemID:     uuid.New(),
				ItemCode:   "CEM-50KG",
				ItemName:   "Cement 50kg",
				Quantity:   10,
				UnitPrice:  decimal.RequireFromString("1250.5"),
				LineAmount: decimal.RequireFromString("12505"),
			},
		},
		Subtotal:       decimal.RequireFromString("12505"),
		DiscountRate:   decimal.RequireFromString("0.05"),
		DiscountAmount: decimal.RequireFromString("625.25"),
		ShippingCost:   decimal.RequireFromString("800"),
		TotalAmount:    decimal.RequireFromString("12679.75"),
		TotalWeight:    decimal.RequireFromString("500"),
		TotalVolume:    decimal.RequireFromString("0.4"),
		Status:         "confirmed",
		DeliveryCity:   "Galle",
		ConfirmedAt:    &confirmedAt,
		History: []orderingapp.StatusChangeInfo{
			{FromStatus: "pending", ToStatus: "confirmed", ChangedBy: &actorID, ChangedAt: confirmedAt},
		},
	}

	resp := newOrderResponse(info)

	assert.Equal(t, "ORD-2026-000042", resp.OrderNumber)
	assert.Equal(t, "confirmed", resp.Status)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "1250.50", resp.Lines[0].UnitPrice)
	assert.Equal(t, "12505.00", resp.Lines[0].LineAmount)
	assert.Equal(t, "12505.00", resp.Subtotal)
	assert.Equal(t, "0.05", resp.DiscountRate)
	assert.Equal(t, "625.25", resp.DiscountAmount)
	assert.Equal(t, "12679.75", resp.TotalAmount)
	require.NotNil(t, resp.TrainScheduleID)
	assert.Equal(t, scheduleID, *resp.TrainScheduleID)
	assert.Nil(t, resp.TruckScheduleID)
	require.Len(t, resp.History, 1)
	assert.Equal(t, "pending", resp.History[0].FromStatus)
	require.NotNil(t, resp.ConfirmedAt)
}

func TestNewCartResponse(t *testing.T) {
	info := orderingapp.CartInfo{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Status:     "active",
		Lines: []orderingapp.CartLineInfo{
			{
				ItemID:     uuid.New(),
				ItemCode:   "PVC-20MM",
				ItemName:   "PVC pipe 20mm",
				Quantity:   4,
				UnitPrice:  decimal.RequireFromString("320"),
				LineAmount: decimal.RequireFromString("1280"),
			},
		},
		TotalItems:     4,
		Subtotal:       decimal.RequireFromString("1280"),
		DiscountRate:   decimal.Zero,
		DiscountAmount: decimal.Zero,
		EstimatedTotal: decimal.RequireFromString("1280"),
	}

	resp := newCartResponse(info)

	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, 4, resp.TotalItems)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "320.00", resp.Lines[0].UnitPrice)
	assert.Equal(t, "1280.00", resp.Subtotal)
	assert.Equal(t, "1280.00", resp.EstimatedTotal)
}
