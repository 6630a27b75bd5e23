package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/votetally/internal/domain/entity"
	"github.com/mikiasgoitom/votetally/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/votetally/internal/usecase/contract"
)

type VoteHandler struct {
	voteUsecase usecasecontract.IVoteUseCase
}

func NewVoteHandler(voteUsecase usecasecontract.IVoteUseCase) *VoteHandler {
	return &VoteHandler{
		voteUsecase: voteUsecase,
	}
}

// VoteItemHandler toggles the vote named in the request body.
func (h *VoteHandler) VoteItemHandler(c *gin.Context) {
	var req dto.VoteRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	action, err := entity.ParseVoteAction(req.Action)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	h.vote(c, action)
}

func (h *VoteHandler) LikeItemHandler(c *gin.Context) {
	h.vote(c, entity.VoteActionLike)
}

func (h *VoteHandler) DislikeItemHandler(c *gin.Context) {
	h.vote(c, entity.VoteActionDislike)
}

func (h *VoteHandler) vote(c *gin.Context, action entity.VoteAction) {
	clientID, ok := clientIDFrom(c)
	if !ok {
		return
	}
	result, err := h.voteUsecase.Vote(c.Request.Context(), clientID, c.Param("itemID"), action)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToVoteResponse(result))
}

// GetMyVoteHandler returns the tally together with the caller's own state.
func (h *VoteHandler) GetMyVoteHandler(c *gin.Context) {
	clientID, ok := clientIDFrom(c)
	if !ok {
		return
	}
	view, err := h.voteUsecase.GetItemView(c.Request.Context(), clientID, c.Param("itemID"))
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToVoteResponse(view))
}

func (h *VoteHandler) GetTallyHandler(c *gin.Context) {
	itemID := c.Param("itemID")
	tally, err := h.voteUsecase.GetTally(c.Request.Context(), itemID)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.TallyResponse{
		ItemID:       itemID,
		LikeCount:    tally.LikeCount,
		DislikeCount: tally.DislikeCount,
	})
}
