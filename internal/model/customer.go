package model

// MaxPhoneLength bounds a normalized phone number; it matches the
// customer_accounts.phone column width.
const MaxPhoneLength = 20

// Customer represents a customer account
type Customer struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	PasswordHash string `json:"-"` // Never exposed
}

// SignupRequest is the body of POST /api/customer/signup
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required,min=6"`
	Password string `json:"password" binding:"required,min=4"`
}

// LoginRequest is the body of POST /api/customer/login
type LoginRequest struct {
	Phone    string `json:"phone" binding:"required,min=6"`
	Password string `json:"password" binding:"required,min=4"`
}

// CustomerResponse is the public view of an account
type CustomerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
