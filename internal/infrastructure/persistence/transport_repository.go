package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/transport"
	"github.com/RaminduDJay/supply-chain-management/internal/infrastructure/persistence/models"
)

// GormTrainRepository implements transport.TrainRepository using GORM
type GormTrainRepository struct {
	db *gorm.DB
}

// NewGormTrainRepository creates a new GormTrainRepository
func NewGormTrainRepository(db *gorm.DB) *GormTrainRepository {
	return &GormTrainRepository{db: db}
}

// Create creates a new train
func (r *GormTrainRepository) Create(ctx context.Context, train *transport.Train) error {
	model := models.TrainModelFromDomain(train)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing train
func (r *GormTrainRepository) Update(ctx context.Context, train *transport.Train) error {
	model := models.TrainModelFromDomain(train)
	result := r.db.WithContext(ctx).
		Model(&models.TrainModel{}).
		Where("id = ? AND version = ?", train.ID, train.Version-1).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// FindByID finds a train by ID
func (r *GormTrainRepository) FindByID(ctx context.Context, id uuid.UUID) (*transport.Train, error) {
	var model models.TrainModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all trains
func (r *GormTrainRepository) FindAll(ctx context.Context) ([]*transport.Train, error) {
	var trainModels []models.TrainModel
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&trainModels).Error; err != nil {
		return nil, err
	}
	return toDomainTrains(trainModels), nil
}

// FindAvailable returns trains in active status
func (r *GormTrainRepository) FindAvailable(ctx context.Context) ([]*transport.Train, error) {
	var trainModels []models.TrainModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", transport.VehicleStatusActive).
		Order("name ASC").
		Find(&trainModels).Error; err != nil {
		return nil, err
	}
	return toDomainTrains(trainModels), nil
}

func toDomainTrains(trainModels []models.TrainModel) []*transport.Train {
	trains := make([]*transport.Train, len(trainModels))
	for i := range trainModels {
		trains[i] = trainModels[i].ToDomain()
	}
	return trains
}

var _ transport.TrainRepository = (*GormTrainRepository)(nil)

// GormTrainScheduleRepository implements transport.TrainScheduleRepository using GORM
type GormTrainScheduleRepository struct {
	db *gorm.DB
}

// NewGormTrainScheduleRepository creates a new GormTrainScheduleRepository
func NewGormTrainScheduleRepository(db *gorm.DB) *GormTrainScheduleRepository {
	return &GormTrainScheduleRepository{db: db}
}

// Create creates a new train schedule
func (r *GormTrainScheduleRepository) Create(ctx context.Context, schedule *transport.TrainSchedule) error {
	model := models.TrainScheduleModelFromDomain(schedule)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates a schedule with optimistic concurrency on Version
func (r *GormTrainScheduleRepository) Update(ctx context.Context, schedule *transport.TrainSchedule) error {
	model := models.TrainScheduleModelFromDomain(schedule)
	result := r.db.WithContext(ctx).
		Model(&models.TrainScheduleModel{}).
		Where("id = ? AND version = ?", schedule.ID, schedule.Version-1).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// FindByID finds a train schedule by ID
func (r *GormTrainScheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*transport.TrainSchedule, error) {
	var model models.TrainScheduleModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindOpenByStore returns schedules still taking reservations for a store,
// departing within the window, earliest first
func (r *GormTrainScheduleRepository) FindOpenByStore(ctx context.Context, storeID uuid.UUID, until time.Time) ([]*transport.TrainSchedule, error) {
	var scheduleModels []models.TrainScheduleModel
	if err := r.db.WithContext(ctx).
		Where("store_id = ? AND status = ? AND departure_at BETWEEN ? AND ?",
			storeID, transport.ScheduleStatusScheduled, time.Now(), until).
		Order("departure_at ASC").
		Find(&scheduleModels).Error; err != nil {
		return nil, err
	}
	return toDomainTrainSchedules(scheduleModels), nil
}

// FindByStatus returns schedules in the given status
func (r *GormTrainScheduleRepository) FindByStatus(ctx context.Context, status transport.ScheduleStatus) ([]*transport.TrainSchedule, error) {
	var scheduleModels []models.TrainScheduleModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("departure_at ASC").
		Find(&scheduleModels).Error; err != nil {
		return nil, err
	}
	return toDomainTrainSchedules(scheduleModels), nil
}

// FindByTrain returns schedules for a train within a window
func (r *GormTrainScheduleRepository) FindByTrain(ctx context.Context, trainID uuid.UUID, from, to time.Time) ([]*transport.TrainSchedule, error) {
	var scheduleModels []models.TrainScheduleModel
	if err := r.db.WithContext(ctx).
		Where("train_id = ? AND departure_at BETWEEN ? AND ?", trainID, from, to).
		Order("departure_at ASC").
		Find(&scheduleModels).Error; err != nil {
		return nil, err
	}
	return toDomainTrainSchedules(scheduleModels), nil
}

func toDomainTrainSchedules(scheduleModels []models.TrainScheduleModel) []*transport.TrainSchedule {
	schedules := make([]*transport.TrainSchedule, len(scheduleModels))
	for i := range scheduleModels {
		schedules[i] = scheduleModels[i].ToDomain()
	}
	return schedules
}

var _ transport.TrainScheduleRepository = (*GormTrainScheduleRepository)(nil)

// GormTruckRepository implements transport.TruckRepository using GORM
type GormTruckRepository struct {
	db *gorm.DB
}

// NewGormTruckRepository creates a new GormTruckRepository
func NewGormTruckRepository(db *gorm.DB) *GormTruckRepository {
	return &GormTruckRepository{db: db}
}

// Create creates a new truck
func (r *GormTruckRepository) Create(ctx context.Context, truck *transport.Truck) error {
	model := models.TruckModelFromDomain(truck)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing truck
func (r *GormTruckRepository) Update(ctx context.Context, truck *transport.Truck) error {
	model := models.TruckModelFromDomain(truck)
	result := r.db.WithContext(ctx).
		Model(&models.TruckModel{}).
		Where("id = ? AND version = ?", truck.ID, truck.Version-1).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// FindByID finds a truck by ID
func (r *GormTruckRepository) FindByID(ctx context.Context, id uuid.UUID) (*transport.Truck, error) {
	var model models.TruckModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByStore returns all trucks registered at a store
func (r *GormTruckRepository) FindByStore(ctx context.Context, storeID uuid.UUID) ([]*transport.Truck, error) {
	var truckModels []models.TruckModel
	if err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("plate_number ASC").
		Find(&truckModels).Error; err != nil {
		return nil, err
	}
	return toDomainTrucks(truckModels), nil
}

// FindAvailableByStore returns active trucks at a store
func (r *GormTruckRepository) FindAvailableByStore(ctx context.Context, storeID uuid.UUID) ([]*transport.Truck, error) {
	var truckModels []models.TruckModel
	if err := r.db.WithContext(ctx).
		Where("store_id = ? AND status = ?", storeID, transport.VehicleStatusActive).
		Order("plate_number ASC").
		Find(&truckModels).Error; err != nil {
		return nil, err
	}
	return toDomainTrucks(truckModels), nil
}

// ExistsByPlateNumber checks if a plate number is already registered
func (r *GormTruckRepository) ExistsByPlateNumber(ctx context.Context, plateNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.TruckModel{}).
		Where("plate_number = ?", strings.ToUpper(plateNumber)).
		Count(&count).Error
	return count > 0, err
}

func toDomainTrucks(truckModels []models.TruckModel) []*transport.Truck {
	trucks := make([]*transport.Truck, len(truckModels))
	for i := range truckModels {
		trucks[i] = truckModels[i].ToDomain()
	}
	return trucks
}

var _ transport.TruckRepository = (*GormTruckRepository)(nil)

// GormTruckScheduleRepository implements transport.TruckScheduleRepository using GORM
type GormTruckScheduleRepository struct {
	db *gorm.DB
}

// NewGormTruckScheduleRepository creates a new GormTruckScheduleRepository
func NewGormTruckScheduleRepository(db *gorm.DB) *GormTruckScheduleRepository {
	return &GormTruckScheduleRepository{db: db}
}

// Create creates a new truck schedule
func (r *GormTruckScheduleRepository) Create(ctx context.Context, schedule *transport.TruckSchedule) error {
	model := models.TruckScheduleModelFromDomain(schedule)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates a schedule with optimistic concurrency on Version
func (r *GormTruckScheduleRepository) Update(ctx context.Context, schedule *transport.TruckSchedule) error {
	model := models.TruckScheduleModelFromDomain(schedule)
	result := r.db.WithContext(ctx).
		Model(&models.TruckScheduleModel{}).
		Where("id = ? AND version = ?", schedule.ID, schedule.Version-1).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// FindByID finds a truck schedule by ID
func (r *GormTruckScheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*transport.TruckSchedule, error) {
	var model models.TruckScheduleModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindOpenByRoute returns schedules still taking reservations on a route,
// departing within the window, earliest first
func (r *GormTruckScheduleRepository) FindOpenByRoute(ctx context.Context, routeID uuid.UUID, until time.Time) ([]*transport.TruckSchedule, error) {
	var scheduleModels []models.TruckScheduleModel
	if err := r.db.WithContext(ctx).
		Where("route_id = ? AND status = ? AND departure_at BETWEEN ? AND ?",
			routeID, transport.ScheduleStatusScheduled, time.Now(), until).
		Order("departure_at ASC").
		Find(&scheduleModels).Error; err != nil {
		return nil, err
	}
	return toDomainTruckSchedules(scheduleModels), nil
}

// FindByStore returns schedules for a store within a window
func (r *GormTruckScheduleRepository) FindByStore(ctx context.Context, storeID uuid.UUID, from, to time.Time) ([]*transport.TruckSchedule, error) {
	var scheduleModels []models.TruckScheduleModel
	if err := r.db.WithContext(ctx).
		Where("store_id = ? AND departure_at BETWEEN ? AND ?", storeID, from, to).
		Order("departure_at ASC").
		Find(&scheduleModels).Error; err != nil {
		return nil, err
	}
	return toDomainTruckSchedules(scheduleModels), nil
}

// FindByStaff returns schedules a crew member is booked on within a window
func (r *GormTruckScheduleRepository) FindByStaff(ctx context.Context, staffID uuid.UUID, from, to time.Time) ([]*transport.TruckSchedule, error) {
	var scheduleModels []models.TruckScheduleModel
	if err := r.db.WithContext(ctx).
		Where("(driver_id = ? OR assistant_id = ?) AND departure_at BETWEEN ? AND ?",
			staffID, staffID, from, to).
		Order("departure_at ASC").
		Find(&scheduleModels).Error; err != nil {
		return nil, err
	}
	return toDomainTruckSchedules(scheduleModels), nil
}

func toDomainTruckSchedules(scheduleModels []models.TruckScheduleModel) []*transport.TruckSchedule {
	schedules := make([]*transport.TruckSchedule, len(scheduleModels))
	for i := range scheduleModels {
		schedules[i] = scheduleModels[i].ToDomain()
	}
	return schedules
}

var _ transport.TruckScheduleRepository = (*GormTruckScheduleRepository)(nil)

// GormRouteRepository implements transport.RouteRepository using GORM
type GormRouteRepository struct {
	db *gorm.DB
}

// NewGormRouteRepository creates a new GormRouteRepository
func NewGormRouteRepository(db *gorm.DB) *GormRouteRepository {
	return &GormRouteRepository{db: db}
}

// Create creates a new route
func (r *GormRouteRepository) Create(ctx context.Context, route *transport.Route) error {
	model := models.RouteModelFromDomain(route)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing route
func (r *GormRouteRepository) Update(ctx context.Context, route *transport.Route) error {
	model := models.RouteModelFromDomain(route)
	result := r.db.WithContext(ctx).
		Model(&models.RouteModel{}).
		Where("id = ? AND version = ?", route.ID, route.Version-1).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// FindByID finds a route by ID
func (r *GormRouteRepository) FindByID(ctx context.Context, id uuid.UUID) (*transport.Route, error) {
	var model models.RouteModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByStore returns all routes at a store
func (r *GormRouteRepository) FindByStore(ctx context.Context, storeID uuid.UUID) ([]*transport.Route, error) {
	var routeModels []models.RouteModel
	if err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("name ASC").
		Find(&routeModels).Error; err != nil {
		return nil, err
	}
	return toDomainRoutes(routeModels), nil
}

// FindActiveByStore returns active routes at a store
func (r *GormRouteRepository) FindActiveByStore(ctx context.Context, storeID uuid.UUID) ([]*transport.Route, error) {
	var routeModels []models.RouteModel
	if err := r.db.WithContext(ctx).
		Where("store_id = ? AND status = ?", storeID, transport.RouteStatusActive).
		Order("name ASC").
		Find(&routeModels).Error; err != nil {
		return nil, err
	}
	return toDomainRoutes(routeModels), nil
}

func toDomainRoutes(routeModels []models.RouteModel) []*transport.Route {
	routes := make([]*transport.Route, len(routeModels))
	for i := range routeModels {
		routes[i] = routeModels[i].ToDomain()
	}
	return routes
}

var _ transport.RouteRepository = (*GormRouteRepository)(nil)

// GormStaffRepository implements transport.StaffRepository using GORM
type GormStaffRepository struct {
	db *gorm.DB
}

// NewGormStaffRepository creates a new GormStaffRepository
func NewGormStaffRepository(db *gorm.DB) *GormStaffRepository {
	return &GormStaffRepository{db: db}
}

// Create creates a new staff member
func (r *GormStaffRepository) Create(ctx context.Context, staff *transport.TransportStaff) error {
	model := models.TransportStaffModelFromDomain(staff)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing staff member
func (r *GormStaffRepository) Update(ctx context.Context, staff *transport.TransportStaff) error {
	model := models.TransportStaffModelFromDomain(staff)
	result := r.db.WithContext(ctx).
		Model(&models.TransportStaffModel{}).
		Where("id = ? AND version = ?", staff.ID, staff.Version-1).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// FindByID finds a staff member by ID
func (r *GormStaffRepository) FindByID(ctx context.Context, id uuid.UUID) (*transport.TransportStaff, error) {
	var model models.TransportStaffModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByStore returns all staff at a store
func (r *GormStaffRepository) FindByStore(ctx context.Context, storeID uuid.UUID) ([]*transport.TransportStaff, error) {
	var staffModels []models.TransportStaffModel
	if err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("name ASC").
		Find(&staffModels).Error; err != nil {
		return nil, err
	}
	return toDomainStaff(staffModels), nil
}

// FindAvailableByStore returns active staff of a role at a store
func (r *GormStaffRepository) FindAvailableByStore(ctx context.Context, storeID uuid.UUID, role transport.StaffRole) ([]*transport.TransportStaff, error) {
	var staffModels []models.TransportStaffModel
	if err := r.db.WithContext(ctx).
		Where("store_id = ? AND role = ? AND status = ?", storeID, role, transport.StaffStatusActive).
		Order("weekly_hours ASC").
		Find(&staffModels).Error; err != nil {
		return nil, err
	}
	return toDomainStaff(staffModels), nil
}

// ResetAllWeeklyHours zeroes every member's counter at the start of a week
func (r *GormStaffRepository) ResetAllWeeklyHours(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.TransportStaffModel{}).
		Where("weekly_hours > 0").
		Updates(map[string]interface{}{
			"weekly_hours": 0,
			"updated_at":   time.Now(),
		})
	return result.RowsAffected, result.Error
}

func toDomainStaff(staffModels []models.TransportStaffModel) []*transport.TransportStaff {
	staff := make([]*transport.TransportStaff, len(staffModels))
	for i := range staffModels {
		staff[i] = staffModels[i].ToDomain()
	}
	return staff
}

var _ transport.StaffRepository = (*GormStaffRepository)(nil)
