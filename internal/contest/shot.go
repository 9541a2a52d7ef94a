package contest

// Shoot resolves one shot taken at the given capability (percent).
// capability <= 0 => never made. capability >= 100 => always made. otherwise a
// uniform draw over [0,100) is compared against capability.
// A nil rng falls back to a fresh DefaultRNG for this call only.
func Shoot(capability int, rng RandomSource) (bool, error) {
	if err := validateProbability(capability); err != nil {
		return false, err
	}
	if capability <= 0 {
		return false, nil
	}
	if capability >= 100 {
		return true, nil
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	draw := int(rng.Float64() * 100)
	return draw < capability, nil
}
