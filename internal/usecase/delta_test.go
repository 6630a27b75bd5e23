package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mikiasgoitom/votetally/internal/domain/entity"
)

func TestComputeDelta(t *testing.T) {
	tests := []struct {
		previous  entity.Vote
		requested entity.VoteAction
		want      Delta
	}{
		{entity.VoteNone, entity.VoteActionLike, Delta{Likes: 1, Next: entity.VoteLike}},
		{entity.VoteNone, entity.VoteActionDislike, Delta{Dislikes: 1, Next: entity.VoteDislike}},
		{entity.VoteLike, entity.VoteActionLike, Delta{Likes: -1, Next: entity.VoteNone}},
		{entity.VoteLike, entity.VoteActionDislike, Delta{Likes: -1, Dislikes: 1, Next: entity.VoteDislike}},
		{entity.VoteDislike, entity.VoteActionDislike, Delta{Dislikes: -1, Next: entity.VoteNone}},
		{entity.VoteDislike, entity.VoteActionLike, Delta{Likes: 1, Dislikes: -1, Next: entity.VoteLike}},
	}

	for _, tt := range tests {
		t.Run(string(tt.previous)+"->"+string(tt.requested), func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeDelta(tt.previous, tt.requested))
		})
	}
}

func TestComputeDelta_UnknownPreviousCountsAsNone(t *testing.T) {
	assert.Equal(t, ComputeDelta(entity.VoteNone, entity.VoteActionLike), ComputeDelta("", entity.VoteActionLike))
	assert.Equal(t, ComputeDelta(entity.VoteNone, entity.VoteActionDislike), ComputeDelta("bogus", entity.VoteActionDislike))
}

func TestComputeDelta_InvalidActionIsNoop(t *testing.T) {
	assert.Equal(t, Delta{Next: entity.VoteLike}, ComputeDelta(entity.VoteLike, "love"))
}

func TestComputeDelta_SameActionTwiceCancels(t *testing.T) {
	for _, action := range []entity.VoteAction{entity.VoteActionLike, entity.VoteActionDislike} {
		first := ComputeDelta(entity.VoteNone, action)
		second := ComputeDelta(first.Next, action)

		assert.Equal(t, entity.VoteNone, second.Next)
		assert.Zero(t, first.Likes+second.Likes)
		assert.Zero(t, first.Dislikes+second.Dislikes)
	}
}

func TestDelta_Inverse(t *testing.T) {
	likes, dislikes := Delta{Likes: -1, Dislikes: 1}.Inverse()
	assert.Equal(t, int64(1), likes)
	assert.Equal(t, int64(-1), dislikes)
}
