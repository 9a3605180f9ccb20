package domain

import "testing"

func TestEventValidate(t *testing.T) {
	cases := []struct {
		name  string
		event Event
		ok    bool
	}{
		{"100 free scy", Event{Stroke: Freestyle, Distance: 100, Course: SCY}, true},
		{"500 free scy", Event{Stroke: Freestyle, Distance: 500, Course: SCY}, true},
		{"400 free lcm", Event{Stroke: Freestyle, Distance: 400, Course: LCM}, true},
		{"500 free lcm", Event{Stroke: Freestyle, Distance: 500, Course: LCM}, false},
		{"400 free scy", Event{Stroke: Freestyle, Distance: 400, Course: SCY}, false},
		{"1650 free scm", Event{Stroke: Freestyle, Distance: 1650, Course: SCM}, false},
		{"400 im scy", Event{Stroke: IM, Distance: 400, Course: SCY}, true},
		{"400 im lcm", Event{Stroke: IM, Distance: 400, Course: LCM}, true},
		{"bad stroke", Event{Stroke: "doggy paddle", Distance: 100, Course: SCY}, false},
		{"bad distance", Event{Stroke: Freestyle, Distance: 75, Course: SCY}, false},
		{"bad course", Event{Stroke: Freestyle, Distance: 100, Course: "pool"}, false},
	}
	for _, c := range cases {
		err := c.event.Validate()
		if c.ok && err != nil {
			t.Errorf("%s: unexpected error %v", c.name, err)
		}
		if !c.ok && err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}

func TestEventEquivalent(t *testing.T) {
	cases := []struct {
		name   string
		event  Event
		target Course
		want   int
	}{
		{"500y free -> lcm", Event{Stroke: Freestyle, Distance: 500, Course: SCY}, LCM, 400},
		{"1000y free -> scm", Event{Stroke: Freestyle, Distance: 1000, Course: SCY}, SCM, 800},
		{"1650y free -> lcm", Event{Stroke: Freestyle, Distance: 1650, Course: SCY}, LCM, 1500},
		{"1500m free -> scy", Event{Stroke: Freestyle, Distance: 1500, Course: LCM}, SCY, 1650},
		{"400m free -> scy", Event{Stroke: Freestyle, Distance: 400, Course: SCM}, SCY, 500},
		{"100 free scy -> lcm", Event{Stroke: Freestyle, Distance: 100, Course: SCY}, LCM, 100},
		{"400 im lcm -> scy", Event{Stroke: IM, Distance: 400, Course: LCM}, SCY, 400},
		{"scm -> lcm same distance", Event{Stroke: Freestyle, Distance: 800, Course: SCM}, LCM, 800},
	}
	for _, c := range cases {
		got := c.event.Equivalent(c.target)
		if got.Distance != c.want || got.Course != c.target || got.Stroke != c.event.Stroke {
			t.Errorf("%s: got %d %s %s, want distance %d", c.name, got.Distance, got.Stroke, got.Course, c.want)
		}
	}
}

func TestEventEquivalentSameCourse(t *testing.T) {
	e := Event{ID: "ev1", Stroke: Freestyle, Distance: 500, Course: SCY}
	if got := e.Equivalent(SCY); got != e {
		t.Errorf("same-course equivalent should be identity, got %+v", got)
	}
}
