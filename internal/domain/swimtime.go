package domain

import (
	"fmt"
	"sort"
	"time"
)

type Round string

const (
	Prelims      Round = "prelims"
	Finals       Round = "finals"
	Consolation  Round = "consolation"
	BonusFinals  Round = "bonus_finals"
	TimeTrialRnd Round = "time_trial"
)

func (r Round) Valid() bool {
	switch r {
	case Prelims, Finals, Consolation, BonusFinals, TimeTrialRnd:
		return true
	}
	return false
}

// Split is a cumulative time recorded at an intermediate distance.
type Split struct {
	ID           string `json:"id,omitempty"`
	SwimTimeID   string `json:"swim_time_id,omitempty"`
	Distance     int    `json:"distance"`
	Centiseconds int    `json:"time_centiseconds"`
}

// SwimTime is a single recorded swim for a swimmer at a meet.
type SwimTime struct {
	ID           string    `json:"id"`
	SwimmerID    string    `json:"swimmer_id"`
	EventID      string    `json:"event_id"`
	MeetID       string    `json:"meet_id"`
	TeamID       string    `json:"team_id"`
	SuitID       string    `json:"suit_id,omitempty"`
	Centiseconds int       `json:"time_centiseconds"`
	SwimDate     time.Time `json:"swim_date"`
	Round        Round     `json:"round,omitempty"`
	Lane         int       `json:"lane,omitempty"`
	Place        int       `json:"place,omitempty"`
	Official     bool      `json:"official"`
	DQ           bool      `json:"dq"`
	DQReason     string    `json:"dq_reason,omitempty"`
	Splits       []Split   `json:"splits,omitempty"`
}

func (t SwimTime) Validate() error {
	if t.Centiseconds <= 0 {
		return fmt.Errorf("time must be positive")
	}
	if t.Lane != 0 && (t.Lane < 1 || t.Lane > 10) {
		return fmt.Errorf("lane must be between 1 and 10")
	}
	if t.Place < 0 {
		return fmt.Errorf("place must be positive")
	}
	if t.Round != "" && !t.Round.Valid() {
		return fmt.Errorf("unknown round %q", t.Round)
	}
	if t.DQReason != "" && !t.DQ {
		return fmt.Errorf("dq_reason set on a non-DQ swim")
	}
	return nil
}

// IsValid reports whether the swim counts: official and not disqualified.
func (t SwimTime) IsValid() bool {
	return t.Official && !t.DQ
}

// MeetsStandard reports whether this swim achieves the cut.
func (t SwimTime) MeetsStandard(standardCS int) bool {
	return t.IsValid() && t.Centiseconds <= standardCS
}

// MarginTo returns the gap to a cut in seconds, negative when faster.
func (t SwimTime) MarginTo(standardCS int) float64 {
	return float64(t.Centiseconds-standardCS) / 100
}

// SplitAt returns the cumulative split at the given distance, if recorded.
func (t SwimTime) SplitAt(distance int) (Split, bool) {
	for _, s := range t.Splits {
		if s.Distance == distance {
			return s, true
		}
	}
	return Split{}, false
}

// IntervalAt returns the segment time ending at the given distance: the
// cumulative split minus the previous one.
func (t SwimTime) IntervalAt(distance int) (int, bool) {
	if _, ok := t.SplitAt(distance); !ok {
		return 0, false
	}
	splits := make([]Split, len(t.Splits))
	copy(splits, t.Splits)
	sort.Slice(splits, func(i, j int) bool { return splits[i].Distance < splits[j].Distance })
	prev := 0
	for _, s := range splits {
		if s.Distance == distance {
			return s.Centiseconds - prev, true
		}
		prev = s.Centiseconds
	}
	return 0, false
}
