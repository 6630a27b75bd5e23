package dto

import (
	"time"

	"github.com/mikiasgoitom/votetally/internal/domain/entity"
)

// ItemResponse is the DTO for an item with its tally.
type ItemResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	LikeCount    int64  `json:"like_count"`
	DislikeCount int64  `json:"dislike_count"`
	CreatedAt    string `json:"created_at"`
}

// ToItemResponse converts an entity.Item to an ItemResponse DTO.
func ToItemResponse(item *entity.Item) ItemResponse {
	return ItemResponse{
		ID:           item.ID,
		Title:        item.Title,
		LikeCount:    item.LikeCount,
		DislikeCount: item.DislikeCount,
		CreatedAt:    item.CreatedAt.Format(time.RFC3339),
	}
}

// ItemListResponse is one page of items.
type ItemListResponse struct {
	Items      []ItemResponse `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// TallyResponse carries the counters of an item.
type TallyResponse struct {
	ItemID       string `json:"item_id"`
	LikeCount    int64  `json:"like_count"`
	DislikeCount int64  `json:"dislike_count"`
}

// VoteResponse is returned after a vote and by the "my vote" endpoint.
type VoteResponse struct {
	ItemID       string `json:"item_id"`
	LikeCount    int64  `json:"like_count"`
	DislikeCount int64  `json:"dislike_count"`
	State        string `json:"state"`
}

func ToVoteResponse(res *entity.VoteResult) VoteResponse {
	return VoteResponse{
		ItemID:       res.ItemID,
		LikeCount:    res.LikeCount,
		DislikeCount: res.DislikeCount,
		State:        string(res.State),
	}
}

// ClientResponse is returned when a browser registers.
type ClientResponse struct {
	ClientID  string `json:"client_id"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}
