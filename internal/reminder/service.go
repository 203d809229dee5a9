// Package reminder manages the reminder list: CRUD plus the date-bucket
// filters (today / upcoming / overdue) the reminders page renders.
package reminder

import (
	"context"
	"time"

	"github.com/dubemjesse/Coinflow/internal/core"
	"github.com/dubemjesse/Coinflow/internal/store"
)

// Bucket filters the reminder list relative to the current day. Completed
// reminders never appear in any bucket.
type Bucket string

const (
	BucketAll      Bucket = "all"
	BucketToday    Bucket = "today"
	BucketUpcoming Bucket = "upcoming"
	BucketOverdue  Bucket = "overdue"
)

// Item is a reminder annotated with its display status.
type Item struct {
	core.Reminder
	Status core.ReminderStatus `json:"status"`
}

// Service wraps the store's reminder list with filtering and counting.
type Service struct {
	store *store.Store
}

func New(s *store.Store) *Service {
	return &Service{store: s}
}

func (s *Service) Add(ctx context.Context, r core.Reminder) (core.Reminder, error) {
	return s.store.AddReminder(ctx, r)
}

func (s *Service) Update(ctx context.Context, id string, r core.Reminder) (core.Reminder, bool, error) {
	return s.store.UpdateReminder(ctx, id, r)
}

func (s *Service) Complete(ctx context.Context, id string) (core.Reminder, bool) {
	return s.store.CompleteReminder(ctx, id)
}

func (s *Service) Remove(ctx context.Context, id string) bool {
	return s.store.RemoveReminder(ctx, id)
}

// List returns the non-completed reminders in the given bucket, annotated
// with status, anchored at now. An unknown bucket reads as "all".
func (s *Service) List(bucket Bucket, now time.Time) []Item {
	out := make([]Item, 0)
	for _, r := range s.store.Reminders() {
		if r.Completed {
			continue
		}
		status := r.Status(now)
		switch bucket {
		case BucketToday:
			if status != core.ReminderToday {
				continue
			}
		case BucketUpcoming:
			if status != core.ReminderUpcoming {
				continue
			}
		case BucketOverdue:
			if status != core.ReminderOverdue {
				continue
			}
		}
		out = append(out, Item{Reminder: r, Status: status})
	}
	return out
}

// ActiveCount counts the reminders not yet completed.
func (s *Service) ActiveCount() int {
	count := 0
	for _, r := range s.store.Reminders() {
		if !r.Completed {
			count++
		}
	}
	return count
}
