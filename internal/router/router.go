package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	CreateVehicle(c *ginext.Context)
	ListVehicles(c *ginext.Context)
	UpdateVehicle(c *ginext.Context)
	DeleteVehicle(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	ApproveBooking(c *ginext.Context)
	ListTickets(c *ginext.Context)
	PayTicket(c *ginext.Context)
}

// InitRouter wires the API. The auth guard runs before every vehicle,
// booking and ticket route; the admin guard additionally protects approval.
func InitRouter(mode string, h Handler, auth, admin, loginLimit ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		authGroup := api.Group("/auth")
		authGroup.Use(loginLimit)
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)

		// Everything below requires a bearer token.
		protected := api.Group("")
		protected.Use(auth)

		// Vehicles
		protected.POST("/vehicles", h.CreateVehicle)
		protected.GET("/vehicles", h.ListVehicles)
		protected.PUT("/vehicles/:id", h.UpdateVehicle)
		protected.DELETE("/vehicles/:id", h.DeleteVehicle)

		// Bookings
		protected.POST("/bookings", h.CreateBooking)
		protected.GET("/bookings", h.ListBookings)
		protected.PUT("/bookings/:id/approve", admin, h.ApproveBooking)

		// Tickets
		protected.GET("/tickets", h.ListTickets)
		protected.PUT("/tickets/:id/pay", h.PayTicket)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
