package ordering

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/ordering"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared/valueobject"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/transport"
)

// StockDeducter deducts an order's lines from store stock. The
// deduction is all-or-nothing per order.
type StockDeducter interface {
	DeductForOrder(ctx context.Context, storeID uuid.UUID, lines []ordering.OrderLine, orderNumber string) error
}

// OrderService drives orders through the delivery pipeline. Train and
// truck capacity is reserved when an order is assigned and released
// again on cancellation.
type OrderService struct {
	orderRepo      ordering.OrderRepository
	trainSchedules transport.TrainScheduleRepository
	truckSchedules transport.TruckScheduleRepository
	stock          StockDeducter
	publisher      shared.EventPublisher
	logger         *zap.Logger
}

// NewOrderService creates a new order lifecycle service
func NewOrderService(
	orderRepo ordering.OrderRepository,
	trainSchedules transport.TrainScheduleRepository,
	truckSchedules transport.TruckScheduleRepository,
	stock StockDeducter,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:      orderRepo,
		trainSchedules: trainSchedules,
		truckSchedules: truckSchedules,
		stock:          stock,
		publisher:      publisher,
		logger:         logger,
	}
}

// GetOrder returns a single order with its lines and status history
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*OrderInfo, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	info := NewOrderInfo(order)
	return &info, nil
}

// GetOrderByNumber returns a single order by its order number
func (s *OrderService) GetOrderByNumber(ctx context.Context, orderNumber string) (*OrderInfo, error) {
	order, err := s.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("ORDER_NOT_FOUND", "Order not found")
		}
		return nil, err
	}
	info := NewOrderInfo(order)
	return &info, nil
}

// ListOrders returns a page of orders matching the filter
func (s *OrderService) ListOrders(ctx context.Context, input ListOrdersInput) (*ListOrdersResult, error) {
	filter := ordering.NewOrderFilter()
	filter.CustomerID = input.CustomerID
	filter.StoreID = input.StoreID
	filter.City = input.City
	filter.From = input.From
	filter.To = input.To
	if input.Status != "" {
		status := ordering.OrderStatus(input.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", "Unknown order status")
		}
		filter.Status = &status
	}
	if input.Page > 0 {
		filter.Page = input.Page
	}
	if input.PageSize > 0 {
		filter.PageSize = input.PageSize
	}

	orders, total, err := s.orderRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	infos := make([]OrderInfo, 0, len(orders))
	for _, o := range orders {
		infos = append(infos, NewOrderInfo(o))
	}

	return &ListOrdersResult{
		Orders:   infos,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

// CountByStatus returns order counts across the pipeline
func (s *OrderService) CountByStatus(ctx context.Context) (map[ordering.OrderStatus]int64, error) {
	return s.orderRepo.CountByStatus(ctx)
}

// ConfirmOrder confirms a pending order. Store stock is deducted
// before the transition is persisted, so a short line leaves the
// order pending and the stock untouched.
func (s *OrderService) ConfirmOrder(ctx context.Context, orderID uuid.UUID, actorID *uuid.UUID) (*OrderInfo, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Confirm(); err != nil {
		return nil, err
	}
	if s.stock != nil {
		if err := s.stock.DeductForOrder(ctx, order.StoreID, order.Lines(), order.OrderNumber); err != nil {
			s.logger.Warn("Order confirmation rejected by stock check",
				zap.String("order_number", order.OrderNumber),
				zap.Error(err))
			return nil, err
		}
	}
	if err := s.saveOrder(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("Order confirmed", zap.String("order_number", order.OrderNumber))
	info := NewOrderInfo(order)
	return &info, nil
}

// AssignTrain reserves the order's load on a train schedule and moves
// the order to assigned_train.
func (s *OrderService) AssignTrain(ctx context.Context, input AssignTrainInput) (*OrderInfo, error) {
	order, err := s.findOrder(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	schedule, err := s.trainSchedules.FindByID(ctx, input.ScheduleID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("SCHEDULE_NOT_FOUND", "Train schedule not found")
		}
		return nil, err
	}
	if schedule.StoreID != order.StoreID {
		return nil, shared.NewDomainError("STORE_MISMATCH", "Schedule does not serve the order's store")
	}

	load := orderLoad(order)
	if err := schedule.Reserve(load); err != nil {
		return nil, err
	}
	if err := order.AssignTrain(schedule.ID, input.ActorID); err != nil {
		return nil, err
	}

	if err := s.trainSchedules.Update(ctx, schedule); err != nil {
		s.logger.Error("Failed to update train schedule", zap.Error(err))
		return nil, err
	}
	if err := s.saveOrder(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("Order assigned to train",
		zap.String("order_number", order.OrderNumber),
		zap.String("schedule_id", schedule.ID.String()),
		zap.String("utilization_pct", schedule.UtilizationPercent().String()))

	info := NewOrderInfo(order)
	return &info, nil
}

// AssignTruck reserves the order's load on a truck schedule for final
// delivery and moves the order to assigned_truck.
func (s *OrderService) AssignTruck(ctx context.Context, input AssignTruckInput) (*OrderInfo, error) {
	order, err := s.findOrder(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	schedule, err := s.truckSchedules.FindByID(ctx, input.ScheduleID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("SCHEDULE_NOT_FOUND", "Truck schedule not found")
		}
		return nil, err
	}
	if schedule.RouteID != order.RouteID {
		return nil, shared.NewDomainError("ROUTE_MISMATCH", "Schedule does not run the order's route")
	}

	load := orderLoad(order)
	if err := schedule.Reserve(load); err != nil {
		return nil, err
	}
	if err := order.AssignTruck(schedule.ID, input.ActorID); err != nil {
		return nil, err
	}

	if err := s.truckSchedules.Update(ctx, schedule); err != nil {
		s.logger.Error("Failed to update truck schedule", zap.Error(err))
		return nil, err
	}
	if err := s.saveOrder(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("Order assigned to truck",
		zap.String("order_number", order.OrderNumber),
		zap.String("schedule_id", schedule.ID.String()))

	info := NewOrderInfo(order)
	return &info, nil
}

// UpdateStatus moves an order into the given status. Assignments and
// terminal states with a reason have their own operations.
func (s *OrderService) UpdateStatus(ctx context.Context, input UpdateStatusInput) (*OrderInfo, error) {
	order, err := s.findOrder(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	if err := applyStatus(order, input.Status, input.ActorID); err != nil {
		return nil, err
	}
	if err := s.saveOrder(ctx, order); err != nil {
		return nil, err
	}

	info := NewOrderInfo(order)
	return &info, nil
}

// BulkUpdateStatus moves several orders to the same status. Orders
// that reject the transition are reported, not rolled back.
func (s *OrderService) BulkUpdateStatus(ctx context.Context, input BulkUpdateStatusInput) (*BulkUpdateStatusResult, error) {
	result := &BulkUpdateStatusResult{
		Updated: make([]uuid.UUID, 0, len(input.OrderIDs)),
		Failed:  make(map[uuid.UUID]string),
	}

	for _, id := range input.OrderIDs {
		order, err := s.findOrder(ctx, id)
		if err != nil {
			result.Failed[id] = err.Error()
			continue
		}
		if err := applyStatus(order, input.Status, input.ActorID); err != nil {
			result.Failed[id] = err.Error()
			continue
		}
		if err := s.saveOrder(ctx, order); err != nil {
			result.Failed[id] = err.Error()
			continue
		}
		result.Updated = append(result.Updated, id)
	}

	s.logger.Info("Bulk status update",
		zap.String("status", input.Status.String()),
		zap.Int("updated", len(result.Updated)),
		zap.Int("failed", len(result.Failed)))

	return result, nil
}

// CancelOrder cancels an order and releases any transport capacity and
// crew hours already booked for it. Stock deducted at confirmation is
// restored by the inventory event handler.
func (s *OrderService) CancelOrder(ctx context.Context, input CancelOrderInput) (*OrderInfo, error) {
	order, err := s.findOrder(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if !order.IsCancellable() {
		return nil, shared.NewDomainError("NOT_CANCELLABLE", "Order can no longer be cancelled")
	}

	load := orderLoad(order)

	if order.TrainScheduleID != nil {
		if err := s.releaseTrainCapacity(ctx, *order.TrainScheduleID, load); err != nil {
			return nil, err
		}
	}
	if order.TruckScheduleID != nil {
		if err := s.releaseTruckCapacity(ctx, *order.TruckScheduleID, load); err != nil {
			return nil, err
		}
	}

	if err := order.Cancel(input.Reason, input.ActorID); err != nil {
		return nil, err
	}
	if err := s.saveOrder(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("Order cancelled",
		zap.String("order_number", order.OrderNumber),
		zap.String("reason", input.Reason))

	info := NewOrderInfo(order)
	return &info, nil
}

// ReturnOrder records a failed delivery. Stock is restored at the
// store by the inventory event handler.
func (s *OrderService) ReturnOrder(ctx context.Context, input ReturnOrderInput) (*OrderInfo, error) {
	order, err := s.findOrder(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	if err := order.MarkReturned(input.Reason, input.ActorID); err != nil {
		return nil, err
	}
	if err := s.saveOrder(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("Order returned",
		zap.String("order_number", order.OrderNumber),
		zap.String("reason", input.Reason))

	info := NewOrderInfo(order)
	return &info, nil
}

func (s *OrderService) releaseTrainCapacity(ctx context.Context, scheduleID uuid.UUID, load valueobject.Load) error {
	schedule, err := s.trainSchedules.FindByID(ctx, scheduleID)
	if err != nil {
		return err
	}
	// A departed train cannot give the capacity back
	if err := schedule.Release(load); err != nil {
		return nil
	}
	return s.trainSchedules.Update(ctx, schedule)
}

func (s *OrderService) releaseTruckCapacity(ctx context.Context, scheduleID uuid.UUID, load valueobject.Load) error {
	schedule, err := s.truckSchedules.FindByID(ctx, scheduleID)
	if err != nil {
		return err
	}
	if err := schedule.Release(load); err != nil {
		return nil
	}
	return s.truckSchedules.Update(ctx, schedule)
}

func (s *OrderService) findOrder(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("ORDER_NOT_FOUND", "Order not found")
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) saveOrder(ctx context.Context, order *ordering.Order) error {
	if err := s.orderRepo.Update(ctx, order); err != nil {
		s.logger.Error("Failed to update order", zap.Error(err))
		return err
	}
	events := order.GetDomainEvents()
	if s.publisher != nil && len(events) > 0 {
		if err := s.publisher.Publish(ctx, events...); err != nil {
			s.logger.Error("Failed to publish order events", zap.Error(err))
		}
	}
	order.ClearDomainEvents()
	return nil
}

// applyStatus dispatches a bare status change to the matching
// aggregate operation.
func applyStatus(order *ordering.Order, status ordering.OrderStatus, actorID *uuid.UUID) error {
	switch status {
	case ordering.OrderStatusConfirmed:
		return shared.NewDomainError("USE_CONFIRM", "Use the confirm operation so stock is deducted")
	case ordering.OrderStatusInTransitRail:
		return order.MarkInRailTransit(actorID)
	case ordering.OrderStatusAtWarehouse:
		return order.MarkAtWarehouse(actorID)
	case ordering.OrderStatusOutForDelivery:
		return order.MarkOutForDelivery(actorID)
	case ordering.OrderStatusDelivered:
		return order.MarkDelivered(actorID)
	case ordering.OrderStatusAssignedTrain, ordering.OrderStatusAssignedTruck:
		return shared.NewDomainError("USE_ASSIGNMENT", "Use the train or truck assignment operation")
	case ordering.OrderStatusCancelled, ordering.OrderStatusReturned:
		return shared.NewDomainError("REASON_REQUIRED", "Cancellation and return require a reason")
	default:
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}
}

func orderLoad(order *ordering.Order) valueobject.Load {
	items := 0
	for i := range order.Items {
		items += order.Items[i].Quantity
	}
	load, err := valueobject.NewLoad(order.TotalWeight, order.TotalVolume, items)
	if err != nil {
		return valueobject.EmptyLoad()
	}
	return load
}
