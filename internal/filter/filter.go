// Package filter selects subsets of transactions by date window and
// category set. Filtering preserves the input order and never reorders.
package filter

import (
	"math"
	"time"

	"github.com/dubemjesse/Coinflow/internal/core"
)

// WindowKind discriminates the date-range rules.
type WindowKind int

const (
	// KindAll applies no date constraint.
	KindAll WindowKind = iota
	// KindRelative is the inclusive range [now - days, now].
	KindRelative
	// KindExplicit is an inclusive start..end range; the end date counts
	// through 23:59:59.999.
	KindExplicit
)

// Window is a date-range selection rule.
type Window struct {
	Kind  WindowKind
	Days  int
	Start time.Time
	End   time.Time
}

// All returns the unconstrained window.
func All() Window { return Window{Kind: KindAll} }

// LastDays returns the relative window covering the last n days up to now.
func LastDays(n int) Window { return Window{Kind: KindRelative, Days: n} }

// Between returns an explicit inclusive window.
func Between(start, end time.Time) Window {
	return Window{Kind: KindExplicit, Start: start, End: end}
}

// bounds resolves the window to concrete instants anchored at now. ok is
// false for the unconstrained window.
func (w Window) bounds(now time.Time) (start, end time.Time, ok bool) {
	switch w.Kind {
	case KindRelative:
		return now.Add(-time.Duration(w.Days) * 24 * time.Hour), now, true
	case KindExplicit:
		end := time.Date(w.End.Year(), w.End.Month(), w.End.Day(), 23, 59, 59, int(999*time.Millisecond), w.End.Location())
		return w.Start, end, true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// DaysInPeriod returns the window length in days for per-day averages,
// never less than 1. The unconstrained window has no length of its own and
// yields fallback.
func (w Window) DaysInPeriod(fallback int) int {
	switch w.Kind {
	case KindRelative:
		if w.Days < 1 {
			return 1
		}
		return w.Days
	case KindExplicit:
		days := int(math.Ceil(w.End.Sub(w.Start).Hours() / 24))
		if days < 1 {
			return 1
		}
		return days
	default:
		if fallback < 1 {
			return 1
		}
		return fallback
	}
}

// CategoryAll is the sentinel meaning "no category constraint".
const CategoryAll = "all"

// Apply returns the subsequence of records inside the window whose category
// is in categories, anchored at now, preserving relative order. A nil/empty
// category list or the "all" sentinel means no category constraint; unknown
// categories simply never match. Records whose date does not parse are
// excluded from any date-bounded window but pass the unconstrained one.
func Apply(records []core.Transaction, w Window, categories []string, now time.Time) []core.Transaction {
	allowed := categorySet(categories)

	out := make([]core.Transaction, 0, len(records))
	start, end, bounded := w.bounds(now)
	for _, tx := range records {
		if bounded {
			ts, ok := tx.When()
			if !ok {
				continue
			}
			if ts.Before(start) || ts.After(end) {
				continue
			}
		}
		if allowed != nil {
			if _, ok := allowed[string(tx.Category)]; !ok {
				continue
			}
		}
		out = append(out, tx)
	}
	return out
}

// categorySet returns nil when no constraint applies.
func categorySet(categories []string) map[string]struct{} {
	if len(categories) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		if c == CategoryAll {
			return nil
		}
		set[c] = struct{}{}
	}
	return set
}
