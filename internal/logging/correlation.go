package logging

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderCorrelationID = "X-Correlation-Id"
	CorrelationKey      = "correlation_id"
)

// CorrelationID reuses the caller's X-Correlation-Id or assigns a new one,
// echoes it in the response and stores it on the gin context.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		cid := c.GetHeader(HeaderCorrelationID)
		if cid == "" {
			cid = uuid.NewString()
		}
		c.Header(HeaderCorrelationID, cid)
		c.Set(CorrelationKey, cid)
		c.Next()
	}
}
