package dto

// VoteRequest is the body of POST /items/:itemID/vote.
type VoteRequest struct {
	Action string `json:"action" binding:"required,voteaction"`
}

// CreateItemRequest is the body of POST /admin/items.
type CreateItemRequest struct {
	Title           string `json:"title" binding:"required,max=200"`
	InitialLikes    int64  `json:"initial_likes" binding:"gte=0"`
	InitialDislikes int64  `json:"initial_dislikes" binding:"gte=0"`
}
