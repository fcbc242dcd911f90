package reputation

import "testing"

func TestRankFor(t *testing.T) {
	cases := []struct {
		score int
		want  Rank
	}{
		{-5, RankNovice},
		{0, RankNovice},
		{9, RankNovice},
		{10, RankCuriousMind},
		{49, RankCuriousMind},
		{50, RankResearcher},
		{199, RankResearcher},
		{200, RankScholar},
		{999, RankScholar},
		{1000, RankProfessor},
		{250000, RankProfessor},
	}
	for _, tc := range cases {
		if got := RankFor(tc.score); got != tc.want {
			t.Errorf("RankFor(%d) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestRankOrdering(t *testing.T) {
	if !(RankNovice < RankCuriousMind && RankCuriousMind < RankResearcher &&
		RankResearcher < RankScholar && RankScholar < RankProfessor) {
		t.Fatal("rank constants must be strictly ordered")
	}
}

func TestRankString(t *testing.T) {
	cases := map[Rank]string{
		RankNovice:      "Novice",
		RankCuriousMind: "Curious Mind",
		RankResearcher:  "Researcher",
		RankScholar:     "Scholar",
		RankProfessor:   "Professor",
		Rank(99):        "Novice",
	}
	for rank, want := range cases {
		if got := rank.String(); got != want {
			t.Errorf("Rank(%d).String() = %q, want %q", rank, got, want)
		}
	}
}
