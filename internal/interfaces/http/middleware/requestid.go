// Package middleware provides the HTTP middleware chain: request
// identification, request logging, and CORS.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is the header carrying the request identifier, inbound and
// outbound.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the gin context key the identifier is stored under.
const requestIDKey = "request_id"

// RequestID attaches an identifier to every request, honouring one supplied
// by the caller so identifiers survive proxy chains.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the request identifier attached by RequestID, or ""
// when the middleware did not run.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
