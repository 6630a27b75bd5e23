package usecase

import "github.com/mikiasgoitom/votetally/internal/domain/entity"

// Delta is the signed change a vote transition applies to an item's tally.
type Delta struct {
	Likes    int64
	Dislikes int64
	Next     entity.Vote
}

// ComputeDelta returns the counter change and the next state for a toggle.
// Requesting the action that is already recorded clears it; requesting the
// other action moves the vote across. An unknown previous state counts as none.
func ComputeDelta(previous entity.Vote, requested entity.VoteAction) Delta {
	switch requested {
	case entity.VoteActionLike:
		switch previous {
		case entity.VoteLike:
			return Delta{Likes: -1, Next: entity.VoteNone}
		case entity.VoteDislike:
			return Delta{Likes: 1, Dislikes: -1, Next: entity.VoteLike}
		default:
			return Delta{Likes: 1, Next: entity.VoteLike}
		}
	case entity.VoteActionDislike:
		switch previous {
		case entity.VoteDislike:
			return Delta{Dislikes: -1, Next: entity.VoteNone}
		case entity.VoteLike:
			return Delta{Likes: -1, Dislikes: 1, Next: entity.VoteDislike}
		default:
			return Delta{Dislikes: 1, Next: entity.VoteDislike}
		}
	}
	return Delta{Next: previous}
}

// Inverse returns the delta that undoes d on the counters.
func (d Delta) Inverse() (int64, int64) {
	return -d.Likes, -d.Dislikes
}
