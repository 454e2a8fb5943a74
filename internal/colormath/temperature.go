package colormath

// WarmThreshold is the minimum warmth score of a warm color.
const WarmThreshold = 20.0

// Temperature is the warm/cool classification of a color.
type Temperature int

const (
	// Cool is any color scoring below WarmThreshold.
	Cool Temperature = iota
	// Warm is a color scoring at least WarmThreshold.
	Warm
)

// String returns "warm" or "cool".
func (t Temperature) String() string {
	if t == Warm {
		return "warm"
	}
	return "cool"
}

// WarmthScore measures how much red dominates the green/blue average.
func WarmthScore(c RGB) float64 {
	return float64(c.R) - (float64(c.G)+float64(c.B))/2
}

// IsWarm reports whether c scores at least WarmThreshold.
func IsWarm(c RGB) bool {
	return WarmthScore(c) >= WarmThreshold
}

// IsCool is the negation of IsWarm.
func IsCool(c RGB) bool {
	return !IsWarm(c)
}

// Classify returns Warm or Cool. There is no neutral category.
func Classify(c RGB) Temperature {
	if IsWarm(c) {
		return Warm
	}
	return Cool
}
