package smartdca

import (
	"time"

	"github.com/etnz/smartdca/date"
)

// Date re-exports the day-granularity date type used across the module.
type Date = date.Date

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date { return date.New(year, month, day) }

// Today returns the current date.
func Today() Date { return date.Today() }

// ParseDate parses a Date in ISO-8601 format, leniently.
func ParseDate(s string) (Date, error) { return date.Parse(s) }
