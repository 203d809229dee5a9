package core

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout is the calendar-date format carried by every record.
	DateLayout = "2006-01-02"
	// TimeLayout is the optional wall-clock time-of-day format.
	TimeLayout = "15:04"
	// DefaultTime is the sentinel used when a record carries no time,
	// so date+time sorting stays total.
	DefaultTime = "00:00"
)

var (
	ErrEmptyTitle      = errors.New("empty title")
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
	ErrMissingCategory = errors.New("missing category")
	ErrMissingDate     = errors.New("missing date")
	ErrInvalidDate     = errors.New("invalid date")
	ErrFutureDate      = errors.New("date cannot be in the future")
)

// Amount is a monetary value in whole currency units.
//
// Decoding is deliberately forgiving: a missing, non-numeric or otherwise
// malformed amount decodes to 0 instead of failing, so one bad persisted
// record never poisons a whole aggregate with a parse error or a NaN.
type Amount int64

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(a), 10)), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		*a = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*a = 0
		return nil
	}
	*a = Amount(math.Round(f))
	return nil
}

// Transaction is a single recorded expense.
type Transaction struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Amount   Amount   `json:"amount"`
	Category Category `json:"category"`
	Date     string   `json:"date"`
	Time     string   `json:"time,omitempty"`
}

// Validate checks a transaction against the creation rules. Category
// membership in the canonical set is not enforced here: unrecognized
// categories are tolerated for display and never rejected.
func (t Transaction) Validate() error {
	return t.validateAt(time.Now())
}

func (t Transaction) validateAt(now time.Time) error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if t.Amount <= 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(string(t.Category)) == "" {
		return ErrMissingCategory
	}
	if strings.TrimSpace(t.Date) == "" {
		return ErrMissingDate
	}
	day, err := time.ParseInLocation(DateLayout, t.Date, now.Location())
	if err != nil {
		return ErrInvalidDate
	}
	endOfToday := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, int(999*time.Millisecond), now.Location())
	if day.After(endOfToday) {
		return ErrFutureDate
	}
	return nil
}

// When returns the record's date+time as a point in time. Records without
// a time sort at midnight. ok is false when the date does not parse.
func (t Transaction) When() (time.Time, bool) {
	clock := t.Time
	if strings.TrimSpace(clock) == "" {
		clock = DefaultTime
	}
	ts, err := time.ParseInLocation(DateLayout+" "+TimeLayout, t.Date+" "+clock, time.Local)
	if err != nil {
		// Tolerate a seconds component in older records.
		ts, err = time.ParseInLocation(DateLayout+" 15:04:05", t.Date+" "+clock, time.Local)
		if err != nil {
			return time.Time{}, false
		}
	}
	return ts, true
}

// Day returns the record's calendar date at midnight local time.
func (t Transaction) Day() (time.Time, bool) {
	d, err := time.ParseInLocation(DateLayout, t.Date, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
