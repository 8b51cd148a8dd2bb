package guinote

import "fmt"

// TrickWinner says which of the two cards of a trick won it.
type TrickWinner string

const (
	LEAD   TrickWinner = "lead"
	FOLLOW TrickWinner = "follow"
)

// TrickResult is the outcome of resolving a trick.
type TrickResult struct {
	Winner TrickWinner `json:"winner"`

	// Points is the sum of both cards' point values, all of it for the winner.
	Points int `json:"points"`
}

// ResolveTrick decides a two-card trick. The follower only wins by trumping
// a non-trump lead, or by playing a stronger card of the same suit.
func ResolveTrick(lead Card, leadSuit Suit, follow Card, trump Suit) TrickResult {
	result := TrickResult{
		Winner: LEAD,
		Points: lead.PointValue() + follow.PointValue(),
	}
	if follow.Beats(lead, leadSuit, trump) {
		result.Winner = FOLLOW
	}
	return result
}

// Trick is a completed trick, kept for display and history.
type Trick struct {
	LeaderPlayerID int  `json:"leaderPlayerID"`
	Lead           Card `json:"lead"`
	Follow         Card `json:"follow"`
	WinnerPlayerID int  `json:"winnerPlayerID"`
	Points         int  `json:"points"`
}

func (t Trick) String() string {
	return fmt.Sprintf("P%d led %s, P%d followed %s: P%d wins %d points",
		t.LeaderPlayerID, t.Lead, 1-t.LeaderPlayerID, t.Follow, t.WinnerPlayerID, t.Points)
}
