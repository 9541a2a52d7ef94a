package contest

// Contest layout. These are fixed rules, not settings.
const (
	RacksPerRound = 5
	BallsPerRack  = 5

	PointsNormal = 1
	PointsMoney  = 2
	PointsStarry = 3

	MinCapability = 1
	MaxCapability = 99
	MinPlayers    = 2
)

// Outcome tags a single resolved shot.
type Outcome uint8

const (
	Miss Outcome = iota
	HitNormal
	HitMoney
	StarryHit
	StarryMiss
)

// Points is the score a shot with this outcome contributes.
func (o Outcome) Points() int {
	switch o {
	case HitNormal:
		return PointsNormal
	case HitMoney:
		return PointsMoney
	case StarryHit:
		return PointsStarry
	default:
		return 0
	}
}

// Symbol is the single character used when a rack is printed.
func (o Outcome) Symbol() byte {
	switch o {
	case HitNormal:
		return 'X'
	case HitMoney:
		return 'M'
	case StarryHit:
		return 'S'
	default:
		return '_'
	}
}

func (o Outcome) String() string {
	switch o {
	case HitNormal:
		return "hit-normal"
	case HitMoney:
		return "hit-money"
	case StarryHit:
		return "starry-hit"
	case StarryMiss:
		return "starry-miss"
	default:
		return "miss"
	}
}
