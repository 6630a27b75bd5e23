package entity

import (
	"fmt"
	"strings"
	"time"
)

// Vote is the recorded interaction of one client with one item.
type Vote string

const (
	VoteNone    Vote = "none"
	VoteLike    Vote = "like"
	VoteDislike Vote = "dislike"
)

// VoteAction is what a client asks for. Both actions toggle.
type VoteAction string

const (
	VoteActionLike    VoteAction = "like"
	VoteActionDislike VoteAction = "dislike"
)

// IsValid reports whether the action is one of like or dislike.
func (a VoteAction) IsValid() bool {
	return a == VoteActionLike || a == VoteActionDislike
}

// ParseVoteAction converts user input into a VoteAction.
func ParseVoteAction(s string) (VoteAction, error) {
	action := VoteAction(strings.ToLower(strings.TrimSpace(s)))
	if !action.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidAction, s)
	}
	return action, nil
}

// ClientInteraction is keyed by (ClientID, ItemID). A missing record means VoteNone.
type ClientInteraction struct {
	ClientID  string    `bson:"client_id" json:"client_id"`
	ItemID    string    `bson:"item_id" json:"item_id"`
	Vote      Vote      `bson:"vote" json:"vote"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// VoteResult is returned to the caller after a successful vote.
type VoteResult struct {
	ItemID       string `json:"item_id"`
	LikeCount    int64  `json:"like_count"`
	DislikeCount int64  `json:"dislike_count"`
	State        Vote   `json:"state"`
}
