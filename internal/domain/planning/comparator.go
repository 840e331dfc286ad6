package planning

// Preference is the verdict of one comparison stage
type Preference int

const (
	// Tie defers to the next stage
	Tie Preference = iota
	// PreferCandidate replaces the incumbent with the candidate
	PreferCandidate
	// PreferIncumbent keeps the incumbent
	PreferIncumbent
)

func (p Preference) String() string {
	switch p {
	case PreferCandidate:
		return "candidate"
	case PreferIncumbent:
		return "incumbent"
	default:
		return "tie"
	}
}

// Stage is one named rule of an ordered comparison
type Stage[T any] struct {
	Name    string
	Compare func(T) Preference
}

// Decide applies stages in order and stops at the first non-tie.
// Returns the verdict and the name of the deciding stage.
func Decide[T any](stages []Stage[T], subject T) (Preference, string) {
	for _, stage := range stages {
		if pref := stage.Compare(subject); pref != Tie {
			return pref, stage.Name
		}
	}
	return Tie, ""
}

// Fewer prefers the candidate with the smaller value
func Fewer[N int | float64](candidate, incumbent N) Preference {
	switch {
	case candidate < incumbent:
		return PreferCandidate
	case candidate > incumbent:
		return PreferIncumbent
	default:
		return Tie
	}
}

// More prefers the candidate with the larger value
func More[N int | float64](candidate, incumbent N) Preference {
	return Fewer(incumbent, candidate)
}
