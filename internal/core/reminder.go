package core

import (
	"errors"
	"strings"
	"time"
)

// RepeatRule says how often a reminder recurs.
type RepeatRule string

const (
	RepeatNone    RepeatRule = "none"
	RepeatDaily   RepeatRule = "daily"
	RepeatWeekly  RepeatRule = "weekly"
	RepeatMonthly RepeatRule = "monthly"
	RepeatYearly  RepeatRule = "yearly"
)

// ReminderStatus buckets a reminder relative to the current day.
type ReminderStatus string

const (
	ReminderToday    ReminderStatus = "today"
	ReminderUpcoming ReminderStatus = "upcoming"
	ReminderOverdue  ReminderStatus = "overdue"
)

var (
	ErrEmptyReminderTitle = errors.New("empty reminder title")
	ErrEmptyReminderDate  = errors.New("missing reminder date")
)

// Reminder is a scheduled personal finance note, independent from the
// transaction ledger.
type Reminder struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category"`
	Date        string     `json:"date"`
	Time        string     `json:"time,omitempty"`
	Repeat      RepeatRule `json:"repeat"`
	Completed   bool       `json:"completed"`
	CreatedAt   string     `json:"createdAt,omitempty"`
	UpdatedAt   string     `json:"updatedAt,omitempty"`
	CompletedAt string     `json:"completedAt,omitempty"`
}

func (r Reminder) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrEmptyReminderTitle
	}
	if strings.TrimSpace(r.Date) == "" {
		return ErrEmptyReminderDate
	}
	return nil
}

// Status classifies the reminder against now, comparing midnight-normalized
// dates. Unparsable dates count as overdue.
func (r Reminder) Status(now time.Time) ReminderStatus {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day, err := time.ParseInLocation(DateLayout, r.Date, now.Location())
	if err != nil {
		return ReminderOverdue
	}
	switch {
	case day.Equal(today):
		return ReminderToday
	case day.After(today):
		return ReminderUpcoming
	default:
		return ReminderOverdue
	}
}
