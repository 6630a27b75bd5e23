package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/votetally/internal/domain/contract"
	"github.com/mikiasgoitom/votetally/internal/handler/http/dto"
)

const adminKeyHeader = "X-Admin-Key"

// AdminKeyMiddleware checks X-Admin-Key against the bcrypt hash from ADMIN_KEY_HASH.
// With no hash configured every admin request is refused.
func AdminKeyMiddleware(hasher contract.IHasher, adminKeyHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminKeyHash == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Admin access is not configured"})
			return
		}
		key := c.GetHeader(adminKeyHeader)
		if key == "" || hasher.CompareSecretHash(key, adminKeyHash) != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid admin key"})
			return
		}
		c.Next()
	}
}
