package transport

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TrainRepository defines the interface for train persistence
type TrainRepository interface {
	Create(ctx context.Context, train *Train) error
	Update(ctx context.Context, train *Train) error
	FindByID(ctx context.Context, id uuid.UUID) (*Train, error)
	FindAll(ctx context.Context) ([]*Train, error)
	FindAvailable(ctx context.Context) ([]*Train, error)
}

// TrainScheduleRepository defines the interface for train schedule persistence
type TrainScheduleRepository interface {
	Create(ctx context.Context, schedule *TrainSchedule) error

	// Update updates a schedule with optimistic concurrency on Version
	Update(ctx context.Context, schedule *TrainSchedule) error

	FindByID(ctx context.Context, id uuid.UUID) (*TrainSchedule, error)

	// FindOpenByStore returns schedules still taking reservations for
	// a store, departing within the window, earliest first
	FindOpenByStore(ctx context.Context, storeID uuid.UUID, until time.Time) ([]*TrainSchedule, error)

	// FindByStatus returns schedules in the given status
	FindByStatus(ctx context.Context, status ScheduleStatus) ([]*TrainSchedule, error)

	// FindByTrain returns schedules for a train within a window
	FindByTrain(ctx context.Context, trainID uuid.UUID, from, to time.Time) ([]*TrainSchedule, error)
}

// TruckRepository defines the interface for truck persistence
type TruckRepository interface {
	Create(ctx context.Context, truck *Truck) error
	Update(ctx context.Context, truck *Truck) error
	FindByID(ctx context.Context, id uuid.UUID) (*Truck, error)
	FindByStore(ctx context.Context, storeID uuid.UUID) ([]*Truck, error)
	FindAvailableByStore(ctx context.Context, storeID uuid.UUID) ([]*Truck, error)
	ExistsByPlateNumber(ctx context.Context, plateNumber string) (bool, error)
}

// TruckScheduleRepository defines the interface for truck schedule persistence
type TruckScheduleRepository interface {
	Create(ctx context.Context, schedule *TruckSchedule) error

	// Update updates a schedule with optimistic concurrency on Version
	Update(ctx context.Context, schedule *TruckSchedule) error

	FindByID(ctx context.Context, id uuid.UUID) (*TruckSchedule, error)

	// FindOpenByRoute returns schedules still taking reservations on a
	// route, departing within the window, earliest first
	FindOpenByRoute(ctx context.Context, routeID uuid.UUID, until time.Time) ([]*TruckSchedule, error)

	// FindByStore returns schedules for a store within a window
	FindByStore(ctx context.Context, storeID uuid.UUID, from, to time.Time) ([]*TruckSchedule, error)

	// FindByStaff returns schedules a crew member is booked on within a window
	FindByStaff(ctx context.Context, staffID uuid.UUID, from, to time.Time) ([]*TruckSchedule, error)
}

// RouteRepository defines the interface for route persistence
type RouteRepository interface {
	Create(ctx context.Context, route *Route) error
	Update(ctx context.Context, route *Route) error
	FindByID(ctx context.Context, id uuid.UUID) (*Route, error)
	FindByStore(ctx context.Context, storeID uuid.UUID) ([]*Route, error)
	FindActiveByStore(ctx context.Context, storeID uuid.UUID) ([]*Route, error)
}

// StaffRepository defines the interface for transport staff persistence
type StaffRepository interface {
	Create(ctx context.Context, staff *TransportStaff) error
	Update(ctx context.Context, staff *TransportStaff) error
	FindByID(ctx context.Context, id uuid.UUID) (*TransportStaff, error)
	FindByStore(ctx context.Context, storeID uuid.UUID) ([]*TransportStaff, error)
	FindAvailableByStore(ctx context.Context, storeID uuid.UUID, role StaffRole) ([]*TransportStaff, error)

	// ResetAllWeeklyHours zeroes every member's counter at the start of a week
	ResetAllWeeklyHours(ctx context.Context) (int64, error)
}
