package domain

import (
	"fmt"
	"time"
)

// TimeStandard is a qualifying cut: swim at or under the time during the
// qualifying window and you have the cut.
//
// AgeGroup empty means no age restriction ("Open"). QualifyingStart/End nil
// means open-ended on that side; both bounds are inclusive.
type TimeStandard struct {
	ID              string     `json:"id"`
	Event           Event      `json:"event"`
	Gender          Gender     `json:"gender"`
	AgeGroup        string     `json:"age_group,omitempty"`
	StandardName    string     `json:"standard_name"`
	CutLevel        string     `json:"cut_level"`
	SanctioningBody string     `json:"sanctioning_body"`
	Centiseconds    int        `json:"time_centiseconds"`
	QualifyingStart *time.Time `json:"qualifying_start,omitempty"`
	QualifyingEnd   *time.Time `json:"qualifying_end,omitempty"`
	EffectiveYear   int        `json:"effective_year"`
}

func (ts TimeStandard) Validate() error {
	if err := ts.Event.Validate(); err != nil {
		return err
	}
	if !ts.Gender.Valid() {
		return fmt.Errorf("unknown gender %q", ts.Gender)
	}
	if ts.StandardName == "" || ts.SanctioningBody == "" {
		return fmt.Errorf("standard_name and sanctioning_body required")
	}
	if ts.Centiseconds <= 0 {
		return fmt.Errorf("cut time must be positive")
	}
	if ts.QualifyingStart != nil && ts.QualifyingEnd != nil && ts.QualifyingEnd.Before(*ts.QualifyingStart) {
		return fmt.Errorf("qualifying window ends before it starts")
	}
	return nil
}

// IsOpen reports whether the standard has no age restriction.
func (ts TimeStandard) IsOpen() bool {
	return ts.AgeGroup == "" || ts.AgeGroup == "Open"
}

// AppliesToAgeGroup matches a swimmer's age group, treating an unrestricted
// standard as a wildcard.
func (ts TimeStandard) AppliesToAgeGroup(ageGroup string) bool {
	return ts.IsOpen() || ts.AgeGroup == ageGroup
}

// InWindow reports whether the date falls in the qualifying period,
// inclusive on both ends.
func (ts TimeStandard) InWindow(on time.Time) bool {
	if ts.QualifyingStart != nil && on.Before(*ts.QualifyingStart) {
		return false
	}
	if ts.QualifyingEnd != nil && on.After(*ts.QualifyingEnd) {
		return false
	}
	return true
}

// TimeFormatted renders the cut as "M:SS.cc".
func (ts TimeStandard) TimeFormatted() string {
	return FormatCentiseconds(ts.Centiseconds)
}

func (ts TimeStandard) String() string {
	age := ""
	if !ts.IsOpen() {
		age = " " + ts.AgeGroup
	}
	return fmt.Sprintf("%s%s %s %s: %s", ts.StandardName, age, ts.Gender, ts.Event.ShortName(), ts.TimeFormatted())
}
