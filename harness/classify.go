package harness

import "github.com/katalvlaran/mazelab/pathsearch"

// Classify grades got against the expected outcome. A got of Unknown is
// NotImplemented whatever was expected; otherwise a Found expectation is
// the positive class.
func Classify(expected, got pathsearch.Outcome) Classification {
	switch {
	case got == pathsearch.Unknown:
		return NotImplemented
	case expected == pathsearch.Found && got == pathsearch.Found:
		return TruePositive
	case expected == pathsearch.Found:
		return FalseNegative
	case got == pathsearch.Found:
		return FalsePositive
	}
	return TrueNegative
}

// Stats accumulates the classifications and distance checks of one suite.
type Stats struct {
	TruePositive      int
	TrueNegative      int
	FalsePositive     int
	FalseNegative     int
	NotImplemented    int
	DistanceCorrect   int
	DistanceIncorrect int
}

// Add counts c.
func (s *Stats) Add(c Classification) {
	switch c {
	case TruePositive:
		s.TruePositive++
	case TrueNegative:
		s.TrueNegative++
	case FalsePositive:
		s.FalsePositive++
	case FalseNegative:
		s.FalseNegative++
	case NotImplemented:
		s.NotImplemented++
	}
}

// AddDistance counts one distance comparison.
func (s *Stats) AddDistance(correct bool) {
	if correct {
		s.DistanceCorrect++
		return
	}
	s.DistanceIncorrect++
}

// Implemented reports whether no search in the suite returned Unknown.
func (s Stats) Implemented() bool { return s.NotImplemented == 0 }

// Cases reports the number of classified cases.
func (s Stats) Cases() int {
	return s.TruePositive + s.TrueNegative + s.FalsePositive + s.FalseNegative + s.NotImplemented
}

// Passed reports whether every case was classified correctly, every
// distance matched and every search was implemented.
func (s Stats) Passed() bool {
	return s.Implemented() && s.FalsePositive == 0 && s.FalseNegative == 0 && s.DistanceIncorrect == 0
}
