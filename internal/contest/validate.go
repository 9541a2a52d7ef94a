package contest

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidProbability   = errors.New("invalid shot probability; must be 0..100")
	ErrInvalidCapability    = errors.New("invalid shooting capability; must be 1..99")
	ErrInvalidMoneyBallRack = errors.New("invalid money-ball rack; must be 1..5")
	ErrInvalidRack          = errors.New("invalid rack position; must be 1..5")
	ErrTooFewPlayers        = errors.New("number of players must be at least 2")
)

func validateProbability(p int) error {
	if p < 0 || p > 100 {
		return fmt.Errorf("%w: got %d", ErrInvalidProbability, p)
	}
	return nil
}

// ValidateCapability checks a player-entered shooting capability.
func ValidateCapability(v int) error {
	if v < MinCapability || v > MaxCapability {
		return ErrInvalidCapability
	}
	return nil
}

// ValidateMoneyBallRack checks a player-chosen money-ball rack position.
func ValidateMoneyBallRack(v int) error {
	if v < 1 || v > RacksPerRound {
		return ErrInvalidMoneyBallRack
	}
	return nil
}

// ValidatePlayerCount checks the number of players for a match.
func ValidatePlayerCount(n int) error {
	if n < MinPlayers {
		return ErrTooFewPlayers
	}
	return nil
}

func validatePosition(position int) error {
	if position < 1 || position > RacksPerRound {
		return fmt.Errorf("%w: got %d", ErrInvalidRack, position)
	}
	return nil
}
