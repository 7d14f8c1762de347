package middleware

import (
	"laundry_service/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	SessionKey  = "session"
	CustomerKey = "customer"
)

// SessionMiddleware loads the request's session bag and stores it in the context
func SessionMiddleware(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(SessionKey, store.Load(c.Request))
		c.Next()
	}
}

// GetSession returns the session loaded by SessionMiddleware, or nil.
func GetSession(c *gin.Context) *session.Session {
	val, exists := c.Get(SessionKey)
	if !exists {
		return nil
	}
	sess, _ := val.(*session.Session)
	return sess
}

// CurrentCustomer re-derives the customer identity from the session on every call.
func CurrentCustomer(c *gin.Context) *session.Identity {
	return session.ReadIdentity(GetSession(c))
}

// SetCurrentCustomer writes (or, for nil, clears) the session identity and
// reissues the session cookie.
func SetCurrentCustomer(c *gin.Context, id *session.Identity) error {
	sess := GetSession(c)
	if sess == nil {
		return errNoSession
	}
	return session.WriteIdentity(sess, c.Writer, id)
}
