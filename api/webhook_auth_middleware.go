package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	WebhookSecretHeader = "X-Webhook-Secret"
	APIKeyHeader        = "X-API-Key"
)

// WebhookSecret rejects requests without the shared secret header. An empty
// secret lets every request through.
func WebhookSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			return
		}

		checkHeader(c, WebhookSecretHeader, secret)
	}
}

// APIKey guards the client API. An empty key rejects every request.
func APIKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "api key not configured"})
			c.Abort()
			return
		}

		checkHeader(c, APIKeyHeader, key)
	}
}

func checkHeader(c *gin.Context, header, want string) {
	given := c.GetHeader(header)

	if len(given) == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
		c.Abort()
		return
	}

	if subtle.ConstantTimeCompare([]byte(given), []byte(want)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
		c.Abort()
		return
	}
}
