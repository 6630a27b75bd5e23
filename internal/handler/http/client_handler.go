package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/votetally/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/votetally/internal/usecase/contract"
)

type ClientHandler struct {
	clientUsecase usecasecontract.IClientUseCase
}

func NewClientHandler(clientUsecase usecasecontract.IClientUseCase) *ClientHandler {
	return &ClientHandler{clientUsecase: clientUsecase}
}

// RegisterClientHandler mints the anonymous identity a browser votes with.
func (h *ClientHandler) RegisterClientHandler(c *gin.Context) {
	reg, err := h.clientUsecase.RegisterClient(c.Request.Context())
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ClientResponse{
		ClientID:  reg.ClientID,
		Token:     reg.Token,
		ExpiresAt: reg.ExpiresAt.Format(time.RFC3339),
	})
}

func HealthHandler(c *gin.Context) {
	MessageHandler(c, http.StatusOK, "ok")
}
