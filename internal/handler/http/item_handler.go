package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/votetally/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/votetally/internal/usecase/contract"
)

type ItemHandler struct {
	itemUsecase usecasecontract.IItemUseCase
}

func NewItemHandler(itemUsecase usecasecontract.IItemUseCase) *ItemHandler {
	return &ItemHandler{itemUsecase: itemUsecase}
}

// CreateItemHandler lets the admin panel post a new item.
func (h *ItemHandler) CreateItemHandler(c *gin.Context) {
	var req dto.CreateItemRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	item, err := h.itemUsecase.CreateItem(c.Request.Context(), req.Title, req.InitialLikes, req.InitialDislikes)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToItemResponse(item))
}

func (h *ItemHandler) GetItemHandler(c *gin.Context) {
	item, err := h.itemUsecase.GetItem(c.Request.Context(), c.Param("itemID"))
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToItemResponse(item))
}

func (h *ItemHandler) ListItemsHandler(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid page size")
		return
	}

	result, err := h.itemUsecase.ListItems(c.Request.Context(), page, pageSize)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}

	resp := dto.ItemListResponse{
		Items:      make([]dto.ItemResponse, 0, len(result.Items)),
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
	}
	for _, item := range result.Items {
		resp.Items = append(resp.Items, dto.ToItemResponse(item))
	}
	SuccessHandler(c, http.StatusOK, resp)
}
