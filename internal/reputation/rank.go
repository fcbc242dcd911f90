package reputation

// Rank is the classification of a reputation total into ordered tiers.
// It is computed on demand and never persisted; crossing detection
// compares the rank derived from the totals before and after a change.
type Rank int

const (
	RankNovice Rank = iota
	RankCuriousMind
	RankResearcher
	RankScholar
	RankProfessor
)

// Tier thresholds. Each tier is left-closed/right-open except
// Professor, which is unbounded above.
const (
	thresholdCuriousMind = 10
	thresholdResearcher  = 50
	thresholdScholar     = 200
	thresholdProfessor   = 1000
)

// RankFor maps a reputation total to its rank.
func RankFor(score int) Rank {
	switch {
	case score < thresholdCuriousMind:
		return RankNovice
	case score < thresholdResearcher:
		return RankCuriousMind
	case score < thresholdScholar:
		return RankResearcher
	case score < thresholdProfessor:
		return RankScholar
	default:
		return RankProfessor
	}
}

func (r Rank) String() string {
	switch r {
	case RankNovice:
		return "Novice"
	case RankCuriousMind:
		return "Curious Mind"
	case RankResearcher:
		return "Researcher"
	case RankScholar:
		return "Scholar"
	case RankProfessor:
		return "Professor"
	default:
		return "Novice"
	}
}
