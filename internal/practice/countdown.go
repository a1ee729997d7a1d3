package practice

import (
	"fmt"
	"math"
	"time"
)

// Remaining returns the time left on the session clock, floored at zero.
// Untimed sessions always have zero remaining.
func Remaining(s *Session, now time.Time) time.Duration {
	if s.TimeLimit == 0 {
		return 0
	}
	left := s.TimeLimit - now.Sub(s.StartedAt)
	if left < 0 {
		return 0
	}
	return left
}

// Expired reports whether a timed session has run out its clock.
func Expired(s *Session, now time.Time) bool {
	if s.TimeLimit == 0 {
		return false
	}
	return now.Sub(s.StartedAt) >= s.TimeLimit
}

// FormatClock renders a duration as MM:SS for the countdown label.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(math.Round(d.Seconds()))
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// timeUsedMin is the elapsed wall time in whole minutes, 0 for untimed
// sessions.
func timeUsedMin(s *Session, now time.Time) int {
	if s.TimeLimit == 0 {
		return 0
	}
	mins := int(math.Round(now.Sub(s.StartedAt).Minutes()))
	if mins < 0 {
		return 0
	}
	return mins
}
