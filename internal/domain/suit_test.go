package domain

import "testing"

func TestLifePercentage(t *testing.T) {
	cases := []struct {
		raceCount int
		total     int
		want      float64
	}{
		{0, 12, 0},
		{6, 12, 50},
		{12, 12, 100},
		{15, 12, 125},
		{4, 0, 0},
		{4, -1, 0},
	}
	for _, c := range cases {
		s := SwimmerSuit{RaceCount: c.raceCount}
		if got := s.LifePercentage(c.total); got != c.want {
			t.Errorf("LifePercentage(races=%d, total=%d) = %v, want %v", c.raceCount, c.total, got, c.want)
		}
	}
}

func TestRemainingRaces(t *testing.T) {
	cases := []struct {
		raceCount int
		total     int
		want      int
	}{
		{0, 12, 12},
		{12, 12, 0},
		{15, 12, -3},
	}
	for _, c := range cases {
		s := SwimmerSuit{RaceCount: c.raceCount}
		if got := s.RemainingRaces(c.total); got != c.want {
			t.Errorf("RemainingRaces(races=%d, total=%d) = %d, want %d", c.raceCount, c.total, got, c.want)
		}
	}
}

func TestIsPastPeak(t *testing.T) {
	cases := []struct {
		raceCount int
		peak      int
		want      bool
	}{
		{0, 8, false},
		{7, 8, false},
		{8, 8, true},
		{9, 8, true},
	}
	for _, c := range cases {
		s := SwimmerSuit{RaceCount: c.raceCount}
		if got := s.IsPastPeak(c.peak); got != c.want {
			t.Errorf("IsPastPeak(races=%d, peak=%d) = %v, want %v", c.raceCount, c.peak, got, c.want)
		}
	}
}

func TestSuitRetired(t *testing.T) {
	if (SwimmerSuit{Condition: SuitWorn}).IsRetired() {
		t.Error("worn suit reported retired")
	}
	if !(SwimmerSuit{Condition: SuitRetired}).IsRetired() {
		t.Error("retired suit not reported retired")
	}
}
