package handler

import (
	"errors"
	"net/http"

	"laundry_service/internal/middleware"
	"laundry_service/internal/model"
	"laundry_service/internal/service"
	"laundry_service/internal/session"

	"github.com/gin-gonic/gin"
)

// BookingHandler handles booking related requests
type BookingHandler struct {
	service service.BookingService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(s service.BookingService) *BookingHandler {
	return &BookingHandler{service: s}
}

// Helper to get the session customer placed in the context by RequireCustomer.
// A failure means the route was registered without the guard.
func getSessionCustomer(c *gin.Context) (*session.Identity, error) {
	val, exists := c.Get(middleware.CustomerKey)
	if !exists {
		return nil, errors.New("customer not found in context")
	}
	customer, ok := val.(*session.Identity)
	if !ok || customer == nil {
		return nil, errors.New("invalid customer type in context")
	}
	return customer, nil
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	customer, err := getSessionCustomer(c)
	if err != nil {
		abortInternal(c, err)
		return
	}

	var req model.CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	booking, err := h.service.CreateBooking(c.Request.Context(), customer.ID, req)
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": booking.ID})
}

func (h *BookingHandler) GetMyBookings(c *gin.Context) {
	customer, err := getSessionCustomer(c)
	if err != nil {
		abortInternal(c, err)
		return
	}

	bookings, err := h.service.GetCustomerBookings(c.Request.Context(), customer.ID)
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// RegisterBookingRoutes registers booking routes behind the customer guard
func (h *BookingHandler) RegisterBookingRoutes(rg *gin.RouterGroup, requireCustomer gin.HandlerFunc) {
	bookingGroup := rg.Group("/bookings", requireCustomer)
	{
		bookingGroup.POST("", h.CreateBooking)
		bookingGroup.GET("", h.GetMyBookings)
	}
}
