package domain

import "time"

type TeamType string

const (
	ClubTeam       TeamType = "club"
	HighSchoolTeam TeamType = "high_school"
	CollegeTeam    TeamType = "college"
	NationalTeam   TeamType = "national"
	OlympicTeam    TeamType = "olympic"
)

func (t TeamType) Valid() bool {
	switch t {
	case ClubTeam, HighSchoolTeam, CollegeTeam, NationalTeam, OlympicTeam:
		return true
	}
	return false
}

// Team is a swim team or organization. The nullable columns depend on the
// team type: LSC for clubs, Division for college, State for high school,
// Country for national/olympic.
type Team struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Type            TeamType `json:"team_type"`
	SanctioningBody string   `json:"sanctioning_body"`
	LSC             string   `json:"lsc,omitempty"`
	Division        string   `json:"division,omitempty"`
	State           string   `json:"state,omitempty"`
	Country         string   `json:"country,omitempty"`
}

// SwimmerTeam is a temporal membership: a swimmer may belong to several
// teams at once (club + high school) and history is kept.
type SwimmerTeam struct {
	ID        string     `json:"id"`
	SwimmerID string     `json:"swimmer_id"`
	TeamID    string     `json:"team_id"`
	TeamName  string     `json:"team_name,omitempty"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Current   bool       `json:"current"`
}

// CurrentOn reports whether the membership is active on the given date.
func (st SwimmerTeam) CurrentOn(on time.Time) bool {
	return st.EndDate == nil || !st.EndDate.Before(on)
}
