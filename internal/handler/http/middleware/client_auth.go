package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/votetally/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/votetally/internal/usecase/contract"
)

// ClientIDKey is the gin context key holding the authenticated client id.
const ClientIDKey = "clientID"

const clientTokenHeader = "X-Client-Token"

// ClientAuthMiddleware accepts the client token as a Bearer token or in X-Client-Token.
func ClientAuthMiddleware(clientUsecase usecasecontract.IClientUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractClientToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Client token required"})
			return
		}
		clientID, err := clientUsecase.AuthenticateClient(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid client token"})
			return
		}
		c.Set(ClientIDKey, clientID)
		c.Next()
	}
}

func extractClientToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	return strings.TrimSpace(c.GetHeader(clientTokenHeader))
}
