package domain

import (
	"fmt"
	"strings"
)

type Stroke string

const (
	Freestyle    Stroke = "freestyle"
	Backstroke   Stroke = "backstroke"
	Breaststroke Stroke = "breaststroke"
	Butterfly    Stroke = "butterfly"
	IM           Stroke = "im"
)

func (s Stroke) Valid() bool {
	switch s {
	case Freestyle, Backstroke, Breaststroke, Butterfly, IM:
		return true
	}
	return false
}

// Short returns the display abbreviation ("Free", "Fly", ...).
func (s Stroke) Short() string {
	switch s {
	case Freestyle:
		return "Free"
	case Backstroke:
		return "Back"
	case Breaststroke:
		return "Breast"
	case Butterfly:
		return "Fly"
	case IM:
		return "IM"
	}
	return string(s)
}

// Course is the pool length convention.
type Course string

const (
	SCY Course = "scy" // short course yards (25y)
	SCM Course = "scm" // short course meters (25m)
	LCM Course = "lcm" // long course meters (50m)
)

func (c Course) Valid() bool {
	return c == SCY || c == SCM || c == LCM
}

func (c Course) IsMeters() bool {
	return c == SCM || c == LCM
}

var validDistances = map[int]bool{
	25: true, 50: true, 100: true, 200: true, 400: true,
	500: true, 800: true, 1000: true, 1500: true, 1650: true,
}

// Freestyle distance events carry course-specific distances. The classic
// equivalents: 500y/400m, 1000y/800m, 1650y/1500m. IM and stroke events use
// the same distance in every course.
var yardsToMeters = map[int]int{500: 400, 1000: 800, 1650: 1500}
var metersToYards = map[int]int{400: 500, 800: 1000, 1500: 1650}

// Event is a stroke x distance x course combination (e.g. 100 Free SCY).
type Event struct {
	ID       string `json:"id"`
	Stroke   Stroke `json:"stroke"`
	Distance int    `json:"distance"`
	Course   Course `json:"course"`
}

// Validate checks stroke, distance and the distance/course pairing.
func (e Event) Validate() error {
	if !e.Stroke.Valid() {
		return fmt.Errorf("unknown stroke %q", e.Stroke)
	}
	if !e.Course.Valid() {
		return fmt.Errorf("unknown course %q", e.Course)
	}
	if !validDistances[e.Distance] {
		return fmt.Errorf("invalid distance %d", e.Distance)
	}
	if e.Stroke != Freestyle {
		return nil
	}
	if e.Course == SCY {
		if m, ok := metersToYards[e.Distance]; ok {
			return fmt.Errorf("%d is a meters distance; SCY equivalent is %d", e.Distance, m)
		}
	} else {
		if y, ok := yardsToMeters[e.Distance]; ok {
			return fmt.Errorf("%d is a yards distance; meters equivalent is %d", e.Distance, y)
		}
	}
	return nil
}

// Equivalent maps the event onto another course. Freestyle distance events
// swap 500y/400m, 1000y/800m, 1650y/1500m; everything else keeps its distance.
func (e Event) Equivalent(target Course) Event {
	if e.Course == target {
		return e
	}
	out := Event{Stroke: e.Stroke, Distance: e.Distance, Course: target}
	if e.Stroke != Freestyle {
		return out
	}
	if e.Course == SCY && target.IsMeters() {
		if m, ok := yardsToMeters[e.Distance]; ok {
			out.Distance = m
		}
	} else if e.Course.IsMeters() && target == SCY {
		if y, ok := metersToYards[e.Distance]; ok {
			out.Distance = y
		}
	}
	return out
}

// ShortName is the display name without course, e.g. "100 Free".
func (e Event) ShortName() string {
	return fmt.Sprintf("%d %s", e.Distance, e.Stroke.Short())
}

func (e Event) String() string {
	return fmt.Sprintf("%d %s %s", e.Distance, e.Stroke.Short(), strings.ToUpper(string(e.Course)))
}
