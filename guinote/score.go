package guinote

import (
	"errors"
	"fmt"
	"math"
)

const (
	PLAYER   = 0
	OPPONENT = 1
)

const maxScore = math.MaxUint16

// maxTrickPoints is the most a single trick is worth: two aces.
const maxTrickPoints = 2 * 11

var (
	errNegativePoints = errors.New("points must not be negative")
	errScoreOverflow  = errors.New("score overflow")
)

// Score holds both sides' points for the current round.
type Score struct {
	Player   int `json:"player"`
	Opponent int `json:"opponent"`
}

func (s *Score) side(playerID int) *int {
	if playerID == OPPONENT {
		return &s.Opponent
	}
	return &s.Player
}

// Of returns the points of the given side.
func (s Score) Of(playerID int) int {
	return *s.side(playerID)
}

// AwardPoints adds amount to a side. The score is left untouched on error.
func (s *Score) AwardPoints(playerID int, amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d", errNegativePoints, amount)
	}
	points := s.side(playerID)
	if *points > maxScore-amount {
		return fmt.Errorf("%w: %d + %d", errScoreOverflow, *points, amount)
	}
	*points += amount
	return nil
}

// HasWon returns true if the side reached the threshold.
func (s Score) HasWon(playerID int, threshold int) bool {
	return s.Of(playerID) >= threshold
}

// Reset zeroes both sides for a new round.
func (s *Score) Reset() {
	s.Player = 0
	s.Opponent = 0
}
