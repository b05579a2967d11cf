package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	transportapp "github.com/RaminduDJay/supply-chain-management/internal/application/transport"
)

// FleetHandler handles train, truck and route management HTTP requests
type FleetHandler struct {
	BaseHandler
	fleetService *transportapp.FleetService
}

// NewFleetHandler creates a new fleet handler
func NewFleetHandler(fleetService *transportapp.FleetService) *FleetHandler {
	return &FleetHandler{
		fleetService: fleetService,
	}
}

// RegisterTrainRequest adds a train to the company fleet
type RegisterTrainRequest struct {
	Name           string          `json:"name" binding:"required,max=100"`
	CapacityWeight decimal.Decimal `json:"capacity_weight" binding:"required"`
	CapacityVolume decimal.Decimal `json:"capacity_volume" binding:"required"`
}

// RegisterTruckRequest registers a truck at a store
type RegisterTruckRequest struct {
	StoreID        string          `json:"store_id" binding:"required,uuid"`
	PlateNumber    string          `json:"plate_number" binding:"required,max=20"`
	CapacityWeight decimal.Decimal `json:"capacity_weight" binding:"required"`
	CapacityVolume decimal.Decimal `json:"capacity_volume" binding:"required"`
}

// CreateRouteRequest opens a delivery route from a store
type CreateRouteRequest struct {
	StoreID        string          `json:"store_id" binding:"required,uuid"`
	Name           string          `json:"name" binding:"required,max=100"`
	Class          string          `json:"class" binding:"required,oneof=local regional express"`
	DistanceKM     decimal.Decimal `json:"distance_km" binding:"required"`
	EstimatedHours decimal.Decimal `json:"estimated_hours" binding:"required"`
}

// UpdateRouteRequest changes a route's parameters
type UpdateRouteRequest struct {
	Name           string          `json:"name" binding:"required,max=100"`
	Class          string          `json:"class" binding:"required,oneof=local regional express"`
	DistanceKM     decimal.Decimal `json:"distance_km" binding:"required"`
	EstimatedHours decimal.Decimal `json:"estimated_hours" binding:"required"`
}

// RegisterTrain adds a train to the company fleet
func (h *FleetHandler) RegisterTrain(c *gin.Context) {
	var req RegisterTrainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	info, err := h.fleetService.RegisterTrain(c.Request.Context(), transportapp.RegisterTrainInput{
		Name:           req.Name,
		CapacityWeight: req.CapacityWeight,
		CapacityVolume: req.CapacityVolume,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newTrainResponse(*info))
}

// ListTrains returns all trains in the fleet
func (h *FleetHandler) ListTrains(c *gin.Context) {
	infos, err := h.fleetService.ListTrains(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	trains := make([]TrainResponse, 0, len(infos))
	for _, info := range infos {
		trains = append(trains, newTrainResponse(info))
	}
	h.Success(c, trains)
}

// GetTrain returns a single train
func (h *FleetHandler) GetTrain(c *gin.Context) {
	h.mutateTrain(c, h.fleetService.GetTrain)
}

// SendTrainToMaintenance takes a train out of service for maintenance
func (h *FleetHandler) SendTrainToMaintenance(c *gin.Context) {
	h.mutateTrain(c, h.fleetService.SendTrainToMaintenance)
}

// ReturnTrainToService puts a maintained train back in service
func (h *FleetHandler) ReturnTrainToService(c *gin.Context) {
	h.mutateTrain(c, h.fleetService.ReturnTrainToService)
}

// RetireTrain permanently removes a train from the fleet
func (h *FleetHandler) RetireTrain(c *gin.Context) {
	h.mutateTrain(c, h.fleetService.RetireTrain)
}

// RegisterTruck registers a truck at a store
func (h *FleetHandler) RegisterTruck(c *gin.Context) {
	var req RegisterTruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		h.BadRequest(c, "Invalid store ID")
		return
	}

	info, err := h.fleetService.RegisterTruck(c.Request.Context(), transportapp.RegisterTruckInput{
		StoreID:        storeID,
		PlateNumber:    req.PlateNumber,
		CapacityWeight: req.CapacityWeight,
		CapacityVolume: req.CapacityVolume,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newTruckResponse(*info))
}

// ListTrucks returns trucks assigned to a store
func (h *FleetHandler) ListTrucks(c *gin.Context) {
	storeID, err := uuid.Parse(c.Query("store_id"))
	if err != nil {
		h.BadRequest(c, "Invalid store ID")
		return
	}

	infos, err := h.fleetService.ListTrucksByStore(c.Request.Context(), storeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	trucks := make([]TruckResponse, 0, len(infos))
	for _, info := range infos {
		trucks = append(trucks, newTruckResponse(info))
	}
	h.Success(c, trucks)
}

// GetTruck returns a single truck
func (h *FleetHandler) GetTruck(c *gin.Context) {
	h.mutateTruck(c, h.fleetService.GetTruck)
}

// SendTruckToMaintenance takes a truck out of service for maintenance
func (h *FleetHandler) SendTruckToMaintenance(c *gin.Context) {
	h.mutateTruck(c, h.fleetService.SendTruckToMaintenance)
}

// ReturnTruckToService puts a maintained truck back in service
func (h *FleetHandler) ReturnTruckToService(c *gin.Context) {
	h.mutateTruck(c, h.fleetService.ReturnTruckToService)
}

// RetireTruck permanently removes a truck from the fleet
func (h *FleetHandler) RetireTruck(c *gin.Context) {
	h.mutateTruck(c, h.fleetService.RetireTruck)
}

// CreateRoute opens a delivery route from a store
func (h *FleetHandler) CreateRoute(c *gin.Context) {
	var req CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		h.BadRequest(c, "Invalid store ID")
		return
	}

	info, err := h.fleetService.CreateRoute(c.Request.Context(), transportapp.CreateRouteInput{
		StoreID:        storeID,
		Name:           req.Name,
		Class:          req.Class,
		DistanceKM:     req.DistanceKM,
		EstimatedHours: req.EstimatedHours,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newRouteResponse(*info))
}

// ListRoutes returns routes served from a store. Pass active=true to
// filter out closed routes.
func (h *FleetHandler) ListRoutes(c *gin.Context) {
	storeID, err := uuid.Parse(c.Query("store_id"))
	if err != nil {
		h.BadRequest(c, "Invalid store ID")
		return
	}
	activeOnly := c.Query("active") == "true"

	infos, err := h.fleetService.ListRoutesByStore(c.Request.Context(), storeID, activeOnly)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	routes := make([]RouteResponse, 0, len(infos))
	for _, info := range infos {
		routes = append(routes, newRouteResponse(info))
	}
	h.Success(c, routes)
}

// GetRoute returns a single route
func (h *FleetHandler) GetRoute(c *gin.Context) {
	h.mutateRoute(c, h.fleetService.GetRoute)
}

// UpdateRoute changes a route's parameters
func (h *FleetHandler) UpdateRoute(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	info, err := h.fleetService.UpdateRoute(c.Request.Context(), transportapp.UpdateRouteInput{
		RouteID:        id,
		Name:           req.Name,
		Class:          req.Class,
		DistanceKM:     req.DistanceKM,
		EstimatedHours: req.EstimatedHours,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newRouteResponse(*info))
}

// ActivateRoute reopens a route
func (h *FleetHandler) ActivateRoute(c *gin.Context) {
	h.mutateRoute(c, h.fleetService.ActivateRoute)
}

// DeactivateRoute closes a route to new orders
func (h *FleetHandler) DeactivateRoute(c *gin.Context) {
	h.mutateRoute(c, h.fleetService.DeactivateRoute)
}

func (h *FleetHandler) mutateTrain(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) (*transportapp.TrainInfo, error)) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	info, err := fn(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, newTrainResponse(*info))
}

func (h *FleetHandler) mutateTruck(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) (*transportapp.TruckInfo, error)) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	info, err := fn(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, newTruckResponse(*info))
}

func (h *FleetHandler) mutateRoute(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) (*transportapp.RouteInfo, error)) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	info, err := fn(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, newRouteResponse(*info))
}
