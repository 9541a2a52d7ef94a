package contest

// StarryResult reports the bonus shot taken after a starry rack.
type StarryResult struct {
	Position int
	Outcome  Outcome // StarryHit or StarryMiss
}

// Points is 3 on a make, 0 otherwise.
func (s StarryResult) Points() int { return s.Outcome.Points() }

// IsStarryRack reports whether a starry ball sits at this rack position.
func IsStarryRack(position int) bool {
	return position == 2 || position == 3
}

// SimulateStarry takes the starry shot for racks 2 and 3.
// For any other position it returns ok == false and draws nothing.
func SimulateStarry(position, capability int, rng RandomSource) (res StarryResult, ok bool, err error) {
	if !IsStarryRack(position) {
		return StarryResult{}, false, nil
	}
	made, err := Shoot(capability, rng)
	if err != nil {
		return StarryResult{}, false, err
	}
	res = StarryResult{Position: position, Outcome: StarryMiss}
	if made {
		res.Outcome = StarryHit
	}
	return res, true, nil
}
