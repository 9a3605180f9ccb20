package domain

import (
	"testing"
	"time"
)

func d(y, m, day int) time.Time {
	return time.Date(y, time.Month(m), day, 0, 0, 0, 0, time.UTC)
}

func TestAgeOn(t *testing.T) {
	s := Swimmer{DateOfBirth: d(2010, 6, 15)}
	cases := []struct {
		on   time.Time
		want int
	}{
		{d(2024, 6, 14), 13}, // day before birthday
		{d(2024, 6, 15), 14}, // birthday
		{d(2024, 6, 16), 14},
		{d(2024, 1, 1), 13},
		{d(2024, 12, 31), 14},
	}
	for _, c := range cases {
		if got := s.AgeOn(c.on); got != c.want {
			t.Errorf("AgeOn(%s) = %d, want %d", c.on.Format("2006-01-02"), got, c.want)
		}
	}
}

func TestAgeGroupFor(t *testing.T) {
	cases := []struct {
		age  int
		want string
	}{
		{8, "10U"}, {10, "10U"},
		{11, "11-12"}, {12, "11-12"},
		{13, "13-14"}, {14, "13-14"},
		{15, "15-16"}, {16, "15-16"},
		{17, "17-18"}, {18, "17-18"},
		{19, "Open"}, {35, "Open"},
	}
	for _, c := range cases {
		if got := AgeGroupFor(c.age); got != c.want {
			t.Errorf("AgeGroupFor(%d) = %q, want %q", c.age, got, c.want)
		}
	}
}
