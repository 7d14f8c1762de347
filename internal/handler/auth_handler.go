package handler

import (
	"errors"
	"fmt"
	"net/http"

	"laundry_service/internal/middleware"
	"laundry_service/internal/model"
	"laundry_service/internal/service"
	"laundry_service/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	msgPhoneRegistered    = "Phone number already registered"
	msgInvalidCredentials = "Invalid phone or password"
)

var msgPhoneTooLong = fmt.Sprintf("String must contain at most %d character(s)", model.MaxPhoneLength)

// AuthHandler handles customer authentication requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, err := h.service.Signup(c.Request.Context(), req.Name, req.Phone, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPhoneAlreadyRegistered):
			c.JSON(http.StatusBadRequest, gin.H{"message": msgPhoneRegistered, "field": "phone"})
			return
		case errors.Is(err, service.ErrPhoneTooLong):
			c.JSON(http.StatusBadRequest, gin.H{"message": msgPhoneTooLong, "field": "phone"})
			return
		}
		abortInternal(c, err)
		return
	}

	if !h.startSession(c, customer) {
		return
	}
	c.JSON(http.StatusCreated, toCustomerResponse(customer))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, err := h.service.Login(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": msgInvalidCredentials})
			return
		}
		abortInternal(c, err)
		return
	}

	if !h.startSession(c, customer) {
		return
	}
	c.JSON(http.StatusOK, toCustomerResponse(customer))
}

func (h *AuthHandler) Me(c *gin.Context) {
	customer := middleware.CurrentCustomer(c)
	if customer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": middleware.UnauthorizedMessage})
		return
	}
	c.JSON(http.StatusOK, model.CustomerResponse{ID: customer.ID, Name: customer.Name, Phone: customer.Phone})
}

// Logout always answers 204, whether or not anyone was logged in.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := middleware.SetCurrentCustomer(c, nil); err != nil {
		_ = c.Error(err)
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) startSession(c *gin.Context, customer *model.Customer) bool {
	err := middleware.SetCurrentCustomer(c, &session.Identity{
		ID:    customer.ID,
		Name:  customer.Name,
		Phone: customer.Phone,
	})
	if err != nil {
		abortInternal(c, err)
		return false
	}
	return true
}

func toCustomerResponse(c *model.Customer) model.CustomerResponse {
	return model.CustomerResponse{ID: c.ID, Name: c.Name, Phone: c.Phone}
}

// RegisterAuthRoutes registers customer auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup) {
	customerGroup := rg.Group("/customer")
	{
		customerGroup.POST("/signup", h.Signup)
		customerGroup.POST("/login", h.Login)
		customerGroup.GET("/me", h.Me)
		customerGroup.POST("/logout", h.Logout)
	}
}
