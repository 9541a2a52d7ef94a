package contest

import (
	"fmt"

	"github.com/google/uuid"
)

// Match holds the players of one contest and the rounds they have shot.
type Match struct {
	ID      uuid.UUID
	Players []*Player
	Rounds  []Round
}

// seatHint caps the preallocation; n itself is only a turn count.
const seatHint = 16

// NewMatch prepares a match for n players. n must be at least MinPlayers.
func NewMatch(n int) (*Match, error) {
	if err := ValidatePlayerCount(n); err != nil {
		return nil, fmt.Errorf("%w: got %d", err, n)
	}
	hint := min(n, seatHint)
	return &Match{
		ID:      uuid.New(),
		Players: make([]*Player, 0, hint),
		Rounds:  make([]Round, 0, hint),
	}, nil
}

// Play registers the next player and shoots their round.
// Both choices are validated first; nothing is recorded on error.
func (m *Match) Play(moneyBallRack, capability int, rng RandomSource) (Round, error) {
	if err := ValidateMoneyBallRack(moneyBallRack); err != nil {
		return Round{}, err
	}
	if err := ValidateCapability(capability); err != nil {
		return Round{}, err
	}
	p := &Player{
		Number:        len(m.Players) + 1,
		Capability:    capability,
		MoneyBallRack: moneyBallRack,
	}
	round, err := PlayRound(p, rng)
	if err != nil {
		return Round{}, err
	}
	m.Players = append(m.Players, p)
	m.Rounds = append(m.Rounds, round)
	return round, nil
}

// Result collects the final scores in seat order.
func (m *Match) Result() Result {
	scores := make([]int, len(m.Players))
	for i, p := range m.Players {
		scores[i] = p.TotalScore
	}
	return Result{Scores: scores}
}

// Result maps seat index to final score.
type Result struct {
	Scores []int
}

// Highest returns the top score and the index of the first player reaching it.
// Ties are not broken further. An empty result returns (0, -1).
func (r Result) Highest() (score, index int) {
	if len(r.Scores) == 0 {
		return 0, -1
	}
	score, index = r.Scores[0], 0
	for i := 1; i < len(r.Scores); i++ {
		if r.Scores[i] > score {
			score, index = r.Scores[i], i
		}
	}
	return score, index
}
