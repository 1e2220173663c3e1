package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DefaultMaxFormBodySize bounds a single form submission
const DefaultMaxFormBodySize int64 = 64 << 10

// BodySizeLimitMiddleware limits the size of request bodies.
// Requests announcing a larger Content-Length are rejected with 413 up front;
// others are cut off while the handler reads the body.
func BodySizeLimitMiddleware(maxBodySize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		if c.Request.ContentLength > maxBodySize {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Request body too large"})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize)

		c.Next()
	}
}
