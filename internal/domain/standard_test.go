package domain

import (
	"testing"
	"time"
)

func TestStandardAppliesToAgeGroup(t *testing.T) {
	open := TimeStandard{AgeGroup: ""}
	if !open.AppliesToAgeGroup("13-14") || !open.AppliesToAgeGroup("Open") {
		t.Error("open standard should apply to every age group")
	}
	openNamed := TimeStandard{AgeGroup: "Open"}
	if !openNamed.AppliesToAgeGroup("11-12") {
		t.Error("\"Open\" standard should apply to every age group")
	}
	scoped := TimeStandard{AgeGroup: "15-16"}
	if !scoped.AppliesToAgeGroup("15-16") {
		t.Error("scoped standard should apply to its own group")
	}
	if scoped.AppliesToAgeGroup("13-14") {
		t.Error("scoped standard should not apply to other groups")
	}
}

func TestStandardInWindow(t *testing.T) {
	start := d(2024, 9, 1)
	end := d(2025, 3, 31)
	ts := TimeStandard{QualifyingStart: &start, QualifyingEnd: &end}

	cases := []struct {
		name string
		on   time.Time
		want bool
	}{
		{"before window", d(2024, 8, 31), false},
		{"first day inclusive", d(2024, 9, 1), true},
		{"inside", d(2025, 1, 15), true},
		{"last day inclusive", d(2025, 3, 31), true},
		{"after window", d(2025, 4, 1), false},
	}
	for _, c := range cases {
		if got := ts.InWindow(c.on); got != c.want {
			t.Errorf("%s: InWindow = %v, want %v", c.name, got, c.want)
		}
	}

	unbounded := TimeStandard{}
	if !unbounded.InWindow(d(1999, 1, 1)) {
		t.Error("standard without window should always apply")
	}
	halfOpen := TimeStandard{QualifyingStart: &start}
	if !halfOpen.InWindow(d(2030, 1, 1)) {
		t.Error("open-ended window should apply after start")
	}
}

func TestStandardValidate(t *testing.T) {
	good := TimeStandard{
		Event:           Event{Stroke: Freestyle, Distance: 100, Course: SCY},
		Gender:          Female,
		StandardName:    "Silver Championship",
		CutLevel:        "Cut Time",
		SanctioningBody: "NE Swimming",
		Centiseconds:    5629,
		EffectiveYear:   2025,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("valid standard rejected: %v", err)
	}

	bad := good
	bad.Centiseconds = 0
	if err := bad.Validate(); err == nil {
		t.Error("zero cut time should be rejected")
	}

	bad = good
	start, end := d(2025, 3, 1), d(2025, 1, 1)
	bad.QualifyingStart, bad.QualifyingEnd = &start, &end
	if err := bad.Validate(); err == nil {
		t.Error("inverted qualifying window should be rejected")
	}
}
