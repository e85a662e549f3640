package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/christejab07/Parking/internal/domain"
	"github.com/christejab07/Parking/internal/handler/dto"
	"github.com/christejab07/Parking/internal/middleware"
)

type AuthSvc interface {
	Register(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

type VehicleSvc interface {
	Create(ctx context.Context, ownerID int64, input domain.CreateVehicleInput) (*domain.Vehicle, error)
	List(ctx context.Context, ownerID int64) ([]*domain.Vehicle, error)
	Update(ctx context.Context, ownerID, id int64, input domain.UpdateVehicleInput) (*domain.Vehicle, error)
	Delete(ctx context.Context, ownerID, id int64) error
}

type BookingSvc interface {
	Create(ctx context.Context, callerID int64, input domain.CreateBookingInput) (*domain.Booking, error)
	Approve(ctx context.Context, bookingID int64) (*domain.Booking, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Booking, error)
}

type TicketSvc interface {
	List(ctx context.Context, ownerID int64) ([]*domain.Ticket, error)
	Pay(ctx context.Context, callerID, ticketID int64) (*domain.Ticket, error)
}

type Handler struct {
	authService    AuthSvc
	vehicleService VehicleSvc
	bookingService BookingSvc
	ticketService  TicketSvc
}

func NewHandler(authService AuthSvc, vehicleService VehicleSvc, bookingService BookingSvc, ticketService TicketSvc) *Handler {
	return &Handler{
		authService:    authService,
		vehicleService: vehicleService,
		bookingService: bookingService,
		ticketService:  ticketService,
	}
}

// Auth

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}

// Vehicles

func (h *Handler) CreateVehicle(c *ginext.Context) {
	callerID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateVehicleInput{
		PlateNumber: req.PlateNumber,
		Brand:       req.Brand,
		Model:       req.Model,
		Color:       req.Color,
	}

	vehicle, err := h.vehicleService.Create(c.Request.Context(), callerID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVehicleResponse(vehicle))
}

func (h *Handler) ListVehicles(c *ginext.Context) {
	callerID, ok := callerID(c)
	if !ok {
		return
	}

	vehicles, err := h.vehicleService.List(c.Request.Context(), callerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		resp = append(resp, dto.ToVehicleResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateVehicle(c *ginext.Context) {
	callerID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateVehicleInput{
		PlateNumber: req.PlateNumber,
		Brand:       req.Brand,
		Model:       req.Model,
		Color:       req.Color,
	}

	vehicle, err := h.vehicleService.Update(c.Request.Context(), callerID, id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVehicleResponse(vehicle))
}

func (h *Handler) DeleteVehicle(c *ginext.Context) {
	callerID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.vehicleService.Delete(c.Request.Context(), callerID, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Vehicle deleted successfully"})
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	callerID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid startTime format, expected RFC3339"})
		return
	}
	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid endTime format, expected RFC3339"})
		return
	}

	input := domain.CreateBookingInput{
		VehicleID: req.VehicleID,
		StartTime: startTime,
		EndTime:   endTime,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), callerID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	callerID, ok := callerID(c)
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListByOwner(c.Request.Context(), callerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ApproveBooking(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.Approve(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Tickets

func (h *Handler) ListTickets(c *ginext.Context) {
	callerID, ok := callerID(c)
	if !ok {
		return
	}

	tickets, err := h.ticketService.List(c.Request.Context(), callerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		resp = append(resp, dto.ToTicketResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) PayTicket(c *ginext.Context) {
	callerID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	ticket, err := h.ticketService.Pay(c.Request.Context(), callerID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrVehicleNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPlateTaken),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrBookingNotPending),
		errors.Is(err, domain.ErrVehicleInUse):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

// callerID reads the authenticated user id set by the auth middleware.
func callerID(c *ginext.Context) (int64, bool) {
	v, ok := c.Get(middleware.UserIDKey)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "not authenticated"})
		return 0, false
	}

	id, isInt := v.(int64)
	if !isInt || id <= 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "not authenticated"})
		return 0, false
	}

	return id, true
}

func pathID(c *ginext.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "id must be a positive integer"})
		return 0, false
	}
	return id, true
}
