package contest

// RackResult reports the five regular shots of one rack.
type RackResult struct {
	Position  int       // 1..5
	MoneyBall bool      // true if this is the player's money-ball rack
	Shots     []Outcome // always BallsPerRack entries
	Score     int       // sum of Shots points
}

// MaxScore is the best score the rack could have produced.
func (r RackResult) MaxScore() int {
	if r.MoneyBall {
		return BallsPerRack * PointsMoney
	}
	return (BallsPerRack-1)*PointsNormal + PointsMoney
}

// shotValue returns the outcome a made shot at index i earns.
// On a money-ball rack every ball is a money ball; on any other rack only the
// last ball is.
func shotValue(i int, moneyBall bool) Outcome {
	if moneyBall || i == BallsPerRack-1 {
		return HitMoney
	}
	return HitNormal
}

// SimulateRack resolves the five regular shots of the rack at position.
// Each shot is independent and uses the same capability.
func SimulateRack(position int, moneyBall bool, capability int, rng RandomSource) (RackResult, error) {
	if err := validatePosition(position); err != nil {
		return RackResult{}, err
	}
	res := RackResult{
		Position:  position,
		MoneyBall: moneyBall,
		Shots:     make([]Outcome, 0, BallsPerRack),
	}
	for i := 0; i < BallsPerRack; i++ {
		made, err := Shoot(capability, rng)
		if err != nil {
			return RackResult{}, err
		}
		o := Miss
		if made {
			o = shotValue(i, moneyBall)
		}
		res.Shots = append(res.Shots, o)
		res.Score += o.Points()
	}
	return res, nil
}
