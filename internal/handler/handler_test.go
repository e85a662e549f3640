package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/christejab07/Parking/internal/domain"
	"github.com/christejab07/Parking/internal/handler/dto"
	hmocks "github.com/christejab07/Parking/internal/handler/mocks"
	"github.com/christejab07/Parking/internal/middleware"
)

// identityAs stands in for the auth middleware in tests.
func identityAs(userID int64, role domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Set(middleware.UserRoleKey, role)
		c.Next()
	}
}

type testMocks struct {
	auth     *hmocks.MockAuthSvc
	vehicles *hmocks.MockVehicleSvc
	bookings *hmocks.MockBookingSvc
	tickets  *hmocks.MockTicketSvc
}

func setupRouter(t *testing.T, userID int64, role domain.Role) (testMocks, http.Handler) {
	t.Helper()
	m := testMocks{
		auth:     hmocks.NewMockAuthSvc(t),
		vehicles: hmocks.NewMockVehicleSvc(t),
		bookings: hmocks.NewMockBookingSvc(t),
		tickets:  hmocks.NewMockTicketSvc(t),
	}

	h := NewHandler(m.auth, m.vehicles, m.bookings, m.tickets)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		protected := api.Group("")
		protected.Use(identityAs(userID, role))
		protected.POST("/vehicles", h.CreateVehicle)
		protected.GET("/vehicles", h.ListVehicles)
		protected.PUT("/vehicles/:id", h.UpdateVehicle)
		protected.DELETE("/vehicles/:id", h.DeleteVehicle)
		protected.POST("/bookings", h.CreateBooking)
		protected.GET("/bookings", h.ListBookings)
		protected.PUT("/bookings/:id/approve", middleware.RequireRole(domain.RoleAdmin), h.ApproveBooking)
		protected.GET("/tickets", h.ListTickets)
		protected.PUT("/tickets/:id/pay", h.PayTicket)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Auth ---

func TestHandler_Register_Success(t *testing.T) {
	m, r := setupRouter(t, 7, domain.RoleUser)

	user := &domain.User{ID: 1, Username: "alice", Email: "alice@example.com", Role: domain.RoleUser, CreatedAt: time.Now()}
	m.auth.EXPECT().Register(mock.Anything, mock.Anything).Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret1",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "user", resp.Role)
}

func TestHandler_Register_MissingFields(t *testing.T) {
	_, r := setupRouter(t, 7, domain.RoleUser)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", map[string]string{"username": "alice"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	m, r := setupRouter(t, 7, domain.RoleUser)

	m.auth.EXPECT().Login(mock.Anything, "alice@example.com", "wrong").
		Return("", nil, domain.ErrInvalidCredentials)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Vehicles ---

func TestHandler_CreateVehicle_Success(t *testing.T) {
	m, r := setupRouter(t, 7, domain.RoleUser)

	vehicle := &domain.Vehicle{ID: 1, PlateNumber: "ABC-123", Brand: "Toyota", Model: "Corolla", Color: "Red", OwnerID: 7, CreatedAt: time.Now()}
	m.vehicles.EXPECT().Create(mock.Anything, int64(7), mock.Anything).Return(vehicle, nil)

	w := doJSON(t, r, http.MethodPost, "/api/vehicles", dto.CreateVehicleRequest{
		PlateNumber: "ABC-123",
		Brand:       "Toyota",
		Model:       "Corolla",
		Color:       "Red",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.VehicleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ABC-123", resp.PlateNumber)
	assert.Equal(t, int64(7), resp.OwnerID)
}

func TestHandler_CreateVehicle_ValidationError(t *testing.T) {
	m, r := setupRouter(t, 7, domain.RoleUser)

	m.vehicles.EXPECT().Create(mock.Anything, int64(7), mock.Anything).
		Return(nil, domain.ErrValidation)

	w := doJSON(t, r, http.MethodPost, "/api/vehicles", dto.CreateVehicleRequest{
		PlateNumber: "A?",
		Brand:       "Toyota",
		Model:       "Corolla",
		Color:       "Red",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateVehicle_DuplicatePlate(t *testing.T) {
	m, r := setupRouter(t, 7, domain.RoleUser)

	m.vehicles.EXPECT().Create(mock.Anything, int64(7), mock.Anything).
		Return(nil, domain.ErrPlateTaken)

	w := doJSON(t, r, http.MethodPost, "/api/vehicles", dto.CreateVehicleRequest{
		PlateNumber: "ABC-123",
		Brand:       "Toyota",
		Model:       "Corolla",
		Color:       "Red",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdateVehicle_NotFound(t *testing.T) {
	m, r := setupRouter(t, 7, domain.RoleUser)

	m.vehicles.EXPECT().Update(mock.Anything, int64(7), int64(9), mock.Anything).
		Return(nil, domain.ErrVehicleNotFound)

	w := doJSON(t, r, http.MethodPut, "/api/vehicles/9", dto.UpdateVehicleRequest{})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_UpdateVehicle_BadID(t *testing.T) {
	_, r := setupRouter(t, 7, domain.RoleUser)

	w := doJSON(t, r, http.MethodPut, "/api/vehicles/abc", dto.UpdateVehicleRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteVehicle_Success(t *testing.T) {
	m, r := setupRouter(t, 7, domain.RoleUser)

	m.vehicles.EXPECT().Delete(mock.Anything, int64(7), int64(1)).Return(nil)

	w := doJSON(t, r, http.MethodDelete, "/api/vehicles/1", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Vehicle deleted successfully", resp.Message)
}

func TestHandler_DeleteVehicle_InUse(t *testing.T) {
	m, r := setupRouter(t, 7, domain.RoleUser)

	m.vehicles.EXPECT().Delete(mock.Anything, int64(7), int64(1)).Return(domain.ErrVehicleInUse)

	w := doJSON(t, r, http.MethodDelete, "/api/vehicles/1", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	m, r := setupRouter(t, 7, domain.RoleUser)

	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	booking := &domain.Booking{ID: 1, VehicleID: 1, StartTime: start, EndTime: end, Status: domain.BookingStatusPending, CreatedAt: time.Now()}
	m.bookings.EXPECT().Create(mock.Anything, int64(7), mock.Anything).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		VehicleID: 1,
		StartTime: "2024-01-01T10:00:00Z",
		EndTime:   "2024-01-01T12:00:00Z",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_CreateBooking_BadTime(t *testing.T) {
	_, r := setupRouter(t, 7, domain.RoleUser)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", map[string]interface{}{
		"vehicleId": 1,
		"startTime": "not-a-time",
		"endTime":   "2024-01-01T12:00:00Z",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_VehicleNotOwned(t *testing.T) {
	m, r := setupRouter(t, 7, domain.RoleUser)

	m.bookings.EXPECT().Create(mock.Anything, int64(7), mock.Anything).
		Return(nil, domain.ErrVehicleNotFound)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		VehicleID: 3,
		StartTime: "2024-01-01T10:00:00Z",
		EndTime:   "2024-01-01T12:00:00Z",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ApproveBooking_AdminSuccess(t *testing.T) {
	m, r := setupRouter(t, 1, domain.RoleAdmin)

	booking := &domain.Booking{ID: 1, VehicleID: 1, Status: domain.BookingStatusApproved, CreatedAt: time.Now()}
	m.bookings.EXPECT().Approve(mock.Anything, int64(1)).Return(booking, nil)

	w := doJSON(t, r, http.MethodPut, "/api/bookings/1/approve", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "approved", resp.Status)
}

func TestHandler_ApproveBooking_NonAdminForbidden(t *testing.T) {
	// The booking service must never be reached; the mock has no
	// expectations and would fail the test otherwise.
	_, r := setupRouter(t, 7, domain.RoleUser)

	w := doJSON(t, r, http.MethodPut, "/api/bookings/1/approve", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ApproveBooking_AlreadyApproved(t *testing.T) {
	m, r := setupRouter(t, 1, domain.RoleAdmin)

	m.bookings.EXPECT().Approve(mock.Anything, int64(1)).Return(nil, domain.ErrBookingNotPending)

	w := doJSON(t, r, http.MethodPut, "/api/bookings/1/approve", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ApproveBooking_BadID(t *testing.T) {
	_, r := setupRouter(t, 1, domain.RoleAdmin)

	w := doJSON(t, r, http.MethodPut, "/api/bookings/0/approve", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Tickets ---

func TestHandler_ListTickets(t *testing.T) {
	m, r := setupRouter(t, 7, domain.RoleUser)

	tickets := []*domain.Ticket{
		{ID: 1, BookingID: 1, VehicleID: 1, Status: domain.TicketStatusUnpaid, CreatedAt: time.Now()},
	}
	m.tickets.EXPECT().List(mock.Anything, int64(7)).Return(tickets, nil)

	w := doJSON(t, r, http.MethodGet, "/api/tickets", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.TicketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "unpaid", resp[0].Status)
}

func TestHandler_PayTicket_Success(t *testing.T) {
	m, r := setupRouter(t, 7, domain.RoleUser)

	ticket := &domain.Ticket{ID: 1, BookingID: 1, VehicleID: 1, Status: domain.TicketStatusPaid, CreatedAt: time.Now()}
	m.tickets.EXPECT().Pay(mock.Anything, int64(7), int64(1)).Return(ticket, nil)

	w := doJSON(t, r, http.MethodPut, "/api/tickets/1/pay", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TicketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "paid", resp.Status)
}

func TestHandler_PayTicket_NotOwned(t *testing.T) {
	m, r := setupRouter(t, 8, domain.RoleUser)

	m.tickets.EXPECT().Pay(mock.Anything, int64(8), int64(1)).
		Return(nil, domain.ErrTicketNotFound)

	w := doJSON(t, r, http.MethodPut, "/api/tickets/1/pay", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
