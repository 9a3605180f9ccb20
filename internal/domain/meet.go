package domain

import (
	"fmt"
	"time"
)

type MeetType string

const (
	Championship MeetType = "championship"
	Invitational MeetType = "invitational"
	DualMeet     MeetType = "dual"
	TimeTrial    MeetType = "time_trial"
)

func (m MeetType) Valid() bool {
	switch m {
	case Championship, Invitational, DualMeet, TimeTrial:
		return true
	}
	return false
}

// Meet is a swim competition.
type Meet struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Location        string     `json:"location"`
	City            string     `json:"city"`
	State           string     `json:"state,omitempty"`
	Country         string     `json:"country"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	Course          Course     `json:"course"`
	Lanes           int        `json:"lanes"`
	Indoor          bool       `json:"indoor"`
	SanctioningBody string     `json:"sanctioning_body"`
	Type            MeetType   `json:"meet_type"`
}

func (m Meet) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("meet name required")
	}
	if !m.Course.Valid() {
		return fmt.Errorf("unknown course %q", m.Course)
	}
	if !m.Type.Valid() {
		return fmt.Errorf("unknown meet type %q", m.Type)
	}
	if m.Lanes != 6 && m.Lanes != 8 && m.Lanes != 10 {
		return fmt.Errorf("lanes must be 6, 8 or 10")
	}
	if m.EndDate != nil && m.EndDate.Before(m.StartDate) {
		return fmt.Errorf("meet ends before it starts")
	}
	return nil
}

// MeetTeam links a participating team to a meet; host marks home meets.
type MeetTeam struct {
	ID     string `json:"id"`
	MeetID string `json:"meet_id"`
	TeamID string `json:"team_id"`
	IsHost bool   `json:"is_host"`
}
