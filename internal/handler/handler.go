package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/FarHanZzzz/SmartUrban/internal/domain"
	"github.com/FarHanZzzz/SmartUrban/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type SpotSvc interface {
	Create(ctx context.Context, input domain.CreateSpotInput) (*domain.ParkingSpot, error)
	GetByID(ctx context.Context, id int64) (*domain.ParkingSpot, error)
	List(ctx context.Context, filter domain.SpotFilter) ([]*domain.ParkingSpot, error)
	Update(ctx context.Context, id int64, input domain.UpdateSpotInput) error
	Delete(ctx context.Context, id int64) error
}

type ReservationSvc interface {
	Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (*domain.ReservationDetails, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.ReservationDetails, error)
	Update(ctx context.Context, id int64, input domain.UpdateReservationInput) error
	Cancel(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	spotService        SpotSvc
	reservationService ReservationSvc
}

func NewHandler(spotService SpotSvc, reservationService ReservationSvc) *Handler {
	return &Handler{
		spotService:        spotService,
		reservationService: reservationService,
	}
}

// Spots

func (h *Handler) CreateSpot(c *ginext.Context) {
	var req dto.CreateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateSpotInput{
		Location:    req.Location,
		SpotNumber:  req.SpotNumber,
		Zone:        req.Zone,
		Capacity:    req.Capacity,
		IsAvailable: req.IsAvailable,
		SpotType:    req.SpotType,
		HourlyRate:  req.HourlyRate,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}

	spot, err := h.spotService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSpotResponse(spot))
}

func (h *Handler) GetSpot(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	spot, err := h.spotService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSpotResponse(spot))
}

func (h *Handler) ListSpots(c *ginext.Context) {
	var filter domain.SpotFilter
	if raw, exists := c.GetQuery("available"); exists {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid available filter"})
			return
		}
		filter.Available = &available
	}
	if zone, exists := c.GetQuery("zone"); exists {
		filter.Zone = &zone
	}

	spots, err := h.spotService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SpotResponse, 0, len(spots))
	for _, s := range spots {
		resp = append(resp, dto.ToSpotResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateSpot(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateSpotInput{
		Location:    req.Location,
		SpotNumber:  req.SpotNumber,
		Zone:        req.Zone,
		Capacity:    req.Capacity,
		IsAvailable: req.IsAvailable,
		SpotType:    req.SpotType,
		HourlyRate:  req.HourlyRate,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}

	if err := h.spotService.Update(c.Request.Context(), id, input); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "updated"})
}

func (h *Handler) DeleteSpot(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.spotService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Reservations

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_time format, expected RFC3339",
		})
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid end_time format, expected RFC3339",
		})
		return
	}

	input := domain.CreateReservationInput{
		SpotID:       req.SpotID,
		UserName:     req.UserName,
		UserEmail:    req.UserEmail,
		UserPhone:    req.UserPhone,
		StartTime:    start,
		EndTime:      end,
		VehiclePlate: req.VehiclePlate,
	}

	reservation, err := h.reservationService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCreateReservationResponse(reservation))
}

func (h *Handler) GetReservation(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	details, err := h.reservationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(details))
}

func (h *Handler) ListReservations(c *ginext.Context) {
	var filter domain.ReservationFilter
	if email, exists := c.GetQuery("email"); exists {
		filter.UserEmail = &email
	}
	if raw, exists := c.GetQuery("status"); exists {
		status := domain.ReservationStatus(raw)
		filter.Status = &status
	}

	reservations, err := h.reservationService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, d := range reservations {
		resp = append(resp, dto.ToReservationResponse(d))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateReservation(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateReservationInput{
		VehiclePlate: req.VehiclePlate,
	}
	if req.Status != nil {
		status := domain.ReservationStatus(*req.Status)
		input.Status = &status
	}
	if req.PaymentStatus != nil {
		payment := domain.PaymentStatus(*req.PaymentStatus)
		input.PaymentStatus = &payment
	}
	if req.StartTime != nil {
		start, err := time.Parse(time.RFC3339, *req.StartTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid start_time format, expected RFC3339",
			})
			return
		}
		input.StartTime = &start
	}
	if req.EndTime != nil {
		end, err := time.Parse(time.RFC3339, *req.EndTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid end_time format, expected RFC3339",
			})
			return
		}
		input.EndTime = &end
	}

	if err := h.reservationService.Update(c.Request.Context(), id, input); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "updated"})
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.reservationService.Cancel(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) DeleteReservation(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.reservationService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func pathID(c *ginext.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrSpotNotFound),
		errors.Is(err, domain.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotConflict),
		errors.Is(err, domain.ErrSpotUnavailable),
		errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidInterval),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
