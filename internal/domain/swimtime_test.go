package domain

import "testing"

func TestSwimTimeMeetsStandard(t *testing.T) {
	cases := []struct {
		name     string
		swim     SwimTime
		standard int
		want     bool
	}{
		{"faster", SwimTime{Centiseconds: 5600, Official: true}, 5629, true},
		{"equal", SwimTime{Centiseconds: 5629, Official: true}, 5629, true},
		{"slower", SwimTime{Centiseconds: 5630, Official: true}, 5629, false},
		{"dq never qualifies", SwimTime{Centiseconds: 5000, Official: true, DQ: true}, 5629, false},
		{"unofficial never qualifies", SwimTime{Centiseconds: 5000, Official: false}, 5629, false},
	}
	for _, c := range cases {
		if got := c.swim.MeetsStandard(c.standard); got != c.want {
			t.Errorf("%s: MeetsStandard = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestSwimTimeMarginTo(t *testing.T) {
	swim := SwimTime{Centiseconds: 5700, Official: true}
	if got := swim.MarginTo(5629); got != 0.71 {
		t.Errorf("MarginTo = %v, want 0.71", got)
	}
	if got := swim.MarginTo(5800); got != -1.00 {
		t.Errorf("MarginTo = %v, want -1.00", got)
	}
}

func TestSwimTimeSplits(t *testing.T) {
	swim := SwimTime{
		Centiseconds: 11800,
		Official:     true,
		Splits: []Split{
			{Distance: 100, Centiseconds: 5844},
			{Distance: 50, Centiseconds: 2827},
			{Distance: 150, Centiseconds: 8919},
		},
	}

	if _, ok := swim.SplitAt(75); ok {
		t.Error("SplitAt(75): expected no split")
	}
	if s, ok := swim.SplitAt(100); !ok || s.Centiseconds != 5844 {
		t.Errorf("SplitAt(100) = %+v, %v", s, ok)
	}

	cases := []struct {
		distance int
		want     int
	}{
		{50, 2827},
		{100, 3017}, // 5844 - 2827
		{150, 3075}, // 8919 - 5844
	}
	for _, c := range cases {
		got, ok := swim.IntervalAt(c.distance)
		if !ok || got != c.want {
			t.Errorf("IntervalAt(%d) = %d, %v; want %d", c.distance, got, ok, c.want)
		}
	}
	if _, ok := swim.IntervalAt(200); ok {
		t.Error("IntervalAt(200): expected no interval")
	}
}

func TestSwimTimeValidate(t *testing.T) {
	base := SwimTime{Centiseconds: 5629, Official: true}
	if err := base.Validate(); err != nil {
		t.Fatalf("valid swim rejected: %v", err)
	}

	bad := []SwimTime{
		{Centiseconds: 0},
		{Centiseconds: 5629, Lane: 11},
		{Centiseconds: 5629, Place: -1},
		{Centiseconds: 5629, Round: "semifinals"},
		{Centiseconds: 5629, DQReason: "false start"}, // reason without DQ flag
	}
	for i, swim := range bad {
		if err := swim.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}
