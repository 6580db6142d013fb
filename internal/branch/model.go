package branch

import (
	"fmt"
	"strings"
	"time"
)

// Window is an open/close pair in 24h "15:04" notation.
type Window struct {
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
}

// Branch is one physical location customers can pick up from or be
// served by. Hours are keyed by lowercase weekday name; days without an
// entry fall back to DefaultWindow.
type Branch struct {
	Name    string            `yaml:"name"`
	Address string            `yaml:"address"`
	Hours   map[string]Window `yaml:"hours"`
}

// DefaultWindow applies when a branch has no configured hours for a day.
var DefaultWindow = Window{Open: "08:00", Close: "18:00"}

func (w Window) valid() bool {
	_, errOpen := minuteOfDay(w.Open)
	_, errClose := minuteOfDay(w.Close)
	return errOpen == nil && errClose == nil
}

// Contains reports whether the time-of-day of t falls inside the
// window, boundaries included.
func (w Window) Contains(t time.Time) bool {
	open, err := minuteOfDay(w.Open)
	if err != nil {
		return false
	}
	close, err := minuteOfDay(w.Close)
	if err != nil {
		return false
	}
	m := t.Hour()*60 + t.Minute()
	return m >= open && m <= close
}

func (w Window) String() string {
	return fmt.Sprintf("%s-%s", w.Open, w.Close)
}

func minuteOfDay(hhmm string) (int, error) {
	parsed, err := time.Parse("15:04", strings.TrimSpace(hhmm))
	if err != nil {
		return 0, fmt.Errorf("invalid hours %q: %w", hhmm, err)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// WindowOn returns the open/close window of the branch for the date of t.
func (b *Branch) WindowOn(t time.Time) Window {
	day := strings.ToLower(t.Weekday().String())
	if w, ok := b.Hours[day]; ok && w.valid() {
		return w
	}
	return DefaultWindow
}
