package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
)

const serviceKeyHeader = "x-api-key"

// ServiceKeyAuth authenticates back-office integrations that carry a static
// key instead of a staff JWT. keys maps each key to the actor it acts as.
// Requests without a matching key fall through to AuthMiddleware.
func ServiceKeyAuth(keys map[string]string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(serviceKeyHeader)
		if key == "" || len(keys) == 0 {
			c.Next()
			return
		}

		actorID, ok := matchServiceKey(keys, key)
		if !ok {
			GetLoggerFromCtx(c.Request.Context()).Warn("Unknown service key presented")
			c.Next()
			return
		}

		setActor(c, actorID, "service_key")
		c.Next()
	}
}

func matchServiceKey(keys map[string]string, presented string) (string, bool) {
	var actorID string
	found := false
	for key, actor := range keys {
		if subtle.ConstantTimeCompare([]byte(key), []byte(presented)) == 1 {
			actorID, found = actor, true
		}
	}
	return actorID, found
}
