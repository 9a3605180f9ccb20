package domain

import "time"

type Gender string

const (
	Male   Gender = "M"
	Female Gender = "F"
)

func (g Gender) Valid() bool { return g == Male || g == Female }

// Swimmer is a competitive swimmer tracked by the system.
type Swimmer struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	DateOfBirth   time.Time `json:"date_of_birth"`
	Gender        Gender    `json:"gender"`
	UserID        string    `json:"user_id,omitempty"`
	USASwimmingID string    `json:"usa_swimming_id,omitempty"`
	SwimcloudURL  string    `json:"swimcloud_url,omitempty"`
}

func (s Swimmer) FullName() string {
	return s.FirstName + " " + s.LastName
}

// AgeOn returns the swimmer's age on the given date.
func (s Swimmer) AgeOn(on time.Time) int {
	age := on.Year() - s.DateOfBirth.Year()
	if on.Month() < s.DateOfBirth.Month() ||
		(on.Month() == s.DateOfBirth.Month() && on.Day() < s.DateOfBirth.Day()) {
		age--
	}
	return age
}

// AgeGroupOn buckets the swimmer into the standard competition age groups.
func (s Swimmer) AgeGroupOn(on time.Time) string {
	return AgeGroupFor(s.AgeOn(on))
}

func AgeGroupFor(age int) string {
	switch {
	case age <= 10:
		return "10U"
	case age <= 12:
		return "11-12"
	case age <= 14:
		return "13-14"
	case age <= 16:
		return "15-16"
	case age <= 18:
		return "17-18"
	default:
		return "Open"
	}
}
