package entity

import "time"

// Item is a votable entry of the update feed (usually a posted video update).
type Item struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Title        string    `bson:"title" json:"title"`
	LikeCount    int64     `bson:"like_count" json:"like_count"`
	DislikeCount int64     `bson:"dislike_count" json:"dislike_count"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// Tally returns the current like/dislike pair of the item.
func (i *Item) Tally() Tally {
	return Tally{LikeCount: i.LikeCount, DislikeCount: i.DislikeCount}
}

// Tally is the pair of counters kept for an item.
type Tally struct {
	LikeCount    int64 `json:"like_count"`
	DislikeCount int64 `json:"dislike_count"`
}

// Add applies a signed delta and floors both counters at zero.
func (t Tally) Add(deltaLikes, deltaDislikes int64) Tally {
	return Tally{
		LikeCount:    floorZero(t.LikeCount + deltaLikes),
		DislikeCount: floorZero(t.DislikeCount + deltaDislikes),
	}
}

func floorZero(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}

// ItemPage is one page of the item listing, with the paging values actually applied.
type ItemPage struct {
	Items      []*Item
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}
