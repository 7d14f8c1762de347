package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UnauthorizedMessage is the body message of every 401 for a missing session.
const UnauthorizedMessage = "Unauthorized"

var errNoSession = errors.New("session middleware not installed")

// RequireCustomer aborts with 401 unless the session carries a customer identity
func RequireCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		customer := CurrentCustomer(c)
		if customer == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": UnauthorizedMessage})
			return
		}

		c.Set(CustomerKey, customer)
		c.Next()
	}
}
