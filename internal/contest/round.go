package contest

import "fmt"

// Player is one contestant for the duration of a match.
type Player struct {
	Number        int // 1-based seat
	Capability    int // percent chance of making any shot
	MoneyBallRack int // 1..5
	TotalScore    int
}

// RackLog is everything that happened at one rack position.
type RackLog struct {
	Rack   RackResult
	Starry *StarryResult // nil unless the rack is a starry rack
}

// Score is the rack score plus the starry bonus, if any.
func (l RackLog) Score() int {
	s := l.Rack.Score
	if l.Starry != nil {
		s += l.Starry.Points()
	}
	return s
}

// Round is a player's full run through the five racks.
type Round struct {
	Player int
	Racks  []RackLog
	Total  int
}

// PlayRound shoots racks 1..5 in order for p and stores the total on p.
// - The money-ball rack is p.MoneyBallRack.
// - Racks 2 and 3 add a starry shot after the regular five.
// - p.TotalScore is reset before the first rack.
func PlayRound(p *Player, rng RandomSource) (Round, error) {
	if err := ValidateMoneyBallRack(p.MoneyBallRack); err != nil {
		return Round{}, fmt.Errorf("player %d: %w", p.Number, err)
	}
	p.TotalScore = 0
	round := Round{Player: p.Number, Racks: make([]RackLog, 0, RacksPerRound)}

	for pos := 1; pos <= RacksPerRound; pos++ {
		rack, err := SimulateRack(pos, pos == p.MoneyBallRack, p.Capability, rng)
		if err != nil {
			return Round{}, fmt.Errorf("player %d rack %d: %w", p.Number, pos, err)
		}
		entry := RackLog{Rack: rack}

		starry, ok, err := SimulateStarry(pos, p.Capability, rng)
		if err != nil {
			return Round{}, fmt.Errorf("player %d starry %d: %w", p.Number, pos, err)
		}
		if ok {
			entry.Starry = &starry
		}

		round.Racks = append(round.Racks, entry)
		p.TotalScore += entry.Score()
	}
	round.Total = p.TotalScore
	return round, nil
}
