package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	transportapp "github.com/RaminduDJay/supply-chain-management/internal/application/transport"
)

// ScheduleHandler handles train and truck scheduling HTTP requests
type ScheduleHandler struct {
	BaseHandler
	scheduleService *transportapp.ScheduleService
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleService *transportapp.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
	}
}

// ScheduleTrainRequest plans a train run to a store's city
type ScheduleTrainRequest struct {
	TrainID     string    `json:"train_id" binding:"required,uuid"`
	StoreID     string    `json:"store_id" binding:"required,uuid"`
	DepartureAt time.Time `json:"departure_at" binding:"required"`
}

// ScheduleTruckRequest plans a truck run along a route
type ScheduleTruckRequest struct {
	TruckID     string    `json:"truck_id" binding:"required,uuid"`
	RouteID     string    `json:"route_id" binding:"required,uuid"`
	DriverID    string    `json:"driver_id" binding:"required,uuid"`
	AssistantID string    `json:"assistant_id" binding:"required,uuid"`
	DepartureAt time.Time `json:"departure_at" binding:"required"`
}

// ScheduleTrain plans a train run
func (h *ScheduleHandler) ScheduleTrain(c *gin.Context) {
	var req ScheduleTrainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	trainID, err := uuid.Parse(req.TrainID)
	if err != nil {
		h.BadRequest(c, "Invalid train ID")
		return
	}
	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		h.BadRequest(c, "Invalid store ID")
		return
	}

	info, err := h.scheduleService.ScheduleTrain(c.Request.Context(), transportapp.ScheduleTrainInput{
		TrainID:     trainID,
		StoreID:     storeID,
		DepartureAt: req.DepartureAt,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newTrainScheduleResponse(*info))
}

// GetTrainSchedule returns a single train schedule
func (h *ScheduleHandler) GetTrainSchedule(c *gin.Context) {
	h.mutateTrainSchedule(c, h.scheduleService.GetTrainSchedule)
}

// ListOpenTrainSchedules returns train schedules still accepting orders
// for a store, up to the given date (defaults to two weeks out).
func (h *ScheduleHandler) ListOpenTrainSchedules(c *gin.Context) {
	storeID, err := uuid.Parse(c.Query("store_id"))
	if err != nil {
		h.BadRequest(c, "Invalid store ID")
		return
	}
	until, ok := h.untilQuery(c)
	if !ok {
		return
	}

	infos, err := h.scheduleService.ListOpenTrainSchedules(c.Request.Context(), storeID, until)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	schedules := make([]TrainScheduleResponse, 0, len(infos))
	for _, info := range infos {
		schedules = append(schedules, newTrainScheduleResponse(info))
	}
	h.Success(c, schedules)
}

// DepartTrain marks a train run as departed
func (h *ScheduleHandler) DepartTrain(c *gin.Context) {
	h.mutateTrainSchedule(c, h.scheduleService.DepartTrain)
}

// CompleteTrain marks a train run as arrived
func (h *ScheduleHandler) CompleteTrain(c *gin.Context) {
	h.mutateTrainSchedule(c, h.scheduleService.CompleteTrain)
}

// CancelTrain cancels a planned train run
func (h *ScheduleHandler) CancelTrain(c *gin.Context) {
	h.mutateTrainSchedule(c, h.scheduleService.CancelTrain)
}

// ScheduleTruck plans a truck run along a route
func (h *ScheduleHandler) ScheduleTruck(c *gin.Context) {
	var req ScheduleTruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	input := transportapp.ScheduleTruckInput{DepartureAt: req.DepartureAt}
	ids := []struct {
		raw   string
		label string
		dst   *uuid.UUID
	}{
		{req.TruckID, "truck", &input.TruckID},
		{req.RouteID, "route", &input.RouteID},
		{req.DriverID, "driver", &input.DriverID},
		{req.AssistantID, "assistant", &input.AssistantID},
	}
	for _, field := range ids {
		id, err := uuid.Parse(field.raw)
		if err != nil {
			h.BadRequest(c, "Invalid "+field.label+" ID")
			return
		}
		*field.dst = id
	}

	info, err := h.scheduleService.ScheduleTruck(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newTruckScheduleResponse(*info))
}

// GetTruckSchedule returns a single truck schedule
func (h *ScheduleHandler) GetTruckSchedule(c *gin.Context) {
	h.mutateTruckSchedule(c, h.scheduleService.GetTruckSchedule)
}

// ListOpenTruckSchedules returns truck schedules still accepting orders
// for a route, up to the given date.
func (h *ScheduleHandler) ListOpenTruckSchedules(c *gin.Context) {
	routeID, err := uuid.Parse(c.Query("route_id"))
	if err != nil {
		h.BadRequest(c, "Invalid route ID")
		return
	}
	until, ok := h.untilQuery(c)
	if !ok {
		return
	}

	infos, err := h.scheduleService.ListOpenTruckSchedules(c.Request.Context(), routeID, until)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.truckScheduleList(c, infos)
}

// ListTruckSchedulesByStore returns a store's truck runs in a window
func (h *ScheduleHandler) ListTruckSchedulesByStore(c *gin.Context) {
	storeID, err := uuid.Parse(c.Query("store_id"))
	if err != nil {
		h.BadRequest(c, "Invalid store ID")
		return
	}

	from := time.Now().AddDate(0, 0, -7)
	to := time.Now().AddDate(0, 0, 14)
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			h.BadRequest(c, "Invalid from date, expected YYYY-MM-DD")
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			h.BadRequest(c, "Invalid to date, expected YYYY-MM-DD")
			return
		}
		to = parsed.Add(24*time.Hour - time.Nanosecond)
	}

	infos, err := h.scheduleService.ListTruckSchedulesByStore(c.Request.Context(), storeID, from, to)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.truckScheduleList(c, infos)
}

// DepartTruck marks a truck run as departed
func (h *ScheduleHandler) DepartTruck(c *gin.Context) {
	h.mutateTruckSchedule(c, h.scheduleService.DepartTruck)
}

// CompleteTruck marks a truck run as finished, logging crew hours
func (h *ScheduleHandler) CompleteTruck(c *gin.Context) {
	h.mutateTruckSchedule(c, h.scheduleService.CompleteTruck)
}

// CancelTruck cancels a planned truck run, releasing crew hours
func (h *ScheduleHandler) CancelTruck(c *gin.Context) {
	h.mutateTruckSchedule(c, h.scheduleService.CancelTruck)
}

func (h *ScheduleHandler) untilQuery(c *gin.Context) (time.Time, bool) {
	until := time.Now().AddDate(0, 0, 14)
	if raw := c.Query("until"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			h.BadRequest(c, "Invalid until date, expected YYYY-MM-DD")
			return time.Time{}, false
		}
		until = parsed.Add(24*time.Hour - time.Nanosecond)
	}
	return until, true
}

func (h *ScheduleHandler) truckScheduleList(c *gin.Context, infos []transportapp.TruckScheduleInfo) {
	schedules := make([]TruckScheduleResponse, 0, len(infos))
	for _, info := range infos {
		schedules = append(schedules, newTruckScheduleResponse(info))
	}
	h.Success(c, schedules)
}

func (h *ScheduleHandler) mutateTrainSchedule(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) (*transportapp.TrainScheduleInfo, error)) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	info, err := fn(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, newTrainScheduleResponse(*info))
}

func (h *ScheduleHandler) mutateTruckSchedule(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) (*transportapp.TruckScheduleInfo, error)) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	info, err := fn(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, newTruckScheduleResponse(*info))
}
