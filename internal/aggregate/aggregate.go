// Package aggregate computes category totals, summary statistics and
// time-bucketed series over transaction lists. Every function is pure:
// no storage, no clock, no side effects.
package aggregate

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/dubemjesse/Coinflow/internal/core"
)

// CategoryTotals sums amounts per category over the input set. Categories
// absent from the input are omitted, not zero-filled; callers zero-fill
// against the canonical enumeration when they need a fixed axis.
func CategoryTotals(records []core.Transaction) map[core.Category]int64 {
	totals := make(map[core.Category]int64)
	for _, tx := range records {
		totals[tx.Category] += amountOf(tx)
	}
	return totals
}

// GrandTotal sums all amounts in the set.
func GrandTotal(records []core.Transaction) int64 {
	var total int64
	for _, tx := range records {
		total += amountOf(tx)
	}
	return total
}

// Percentage returns round(100*part/total), or 0 when total is not
// positive. Because each category rounds independently, a breakdown's
// percentages need not sum to exactly 100; that is expected, not a bug.
func Percentage(part, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(total)))
}

// Summary bundles the derived figures shared by the dashboard and reports.
type Summary struct {
	Total         int64
	Count         int
	AveragePerDay float64
	Savings       int64
	SavingsRate   int
	TrendPositive bool
}

// trendThreshold is the savings rate at or above which the trend reads
// positive.
const trendThreshold = 20

// Summarize computes summary statistics for a filtered set. daysInPeriod
// is the caller-supplied window length (minimum 1 enforced here); an empty
// set has a zero average regardless of window length. income below or at
// zero zeroes the savings rate.
func Summarize(records []core.Transaction, daysInPeriod int, income int64) Summary {
	if daysInPeriod < 1 {
		daysInPeriod = 1
	}

	s := Summary{
		Total: GrandTotal(records),
		Count: len(records),
	}
	if s.Count > 0 {
		s.AveragePerDay = float64(s.Total) / float64(daysInPeriod)
	}
	s.Savings = income - s.Total
	if income > 0 {
		s.SavingsRate = int(math.Round(100 * float64(s.Savings) / float64(income)))
	}
	s.TrendPositive = s.SavingsRate >= trendThreshold
	return s
}

// Granularity selects the time-bucket width for series aggregation.
type Granularity string

const (
	Daily   Granularity = "daily"
	Weekly  Granularity = "weekly"
	Monthly Granularity = "monthly"
)

// Bucket is one point of a time series: a date-derived key and the summed
// amount of the records sharing it.
type Bucket struct {
	Key   string
	Total int64
}

// Series groups records by a date-derived bucket key and sums each bucket,
// returning buckets ascending by key. Keys are fixed-width and zero-padded
// so a lexicographic sort is chronological. Records whose date does not
// parse are skipped.
func Series(records []core.Transaction, g Granularity) []Bucket {
	sums := make(map[string]int64)
	for _, tx := range records {
		ts, ok := tx.When()
		if !ok {
			continue
		}
		sums[bucketKey(ts, g)] += amountOf(tx)
	}

	keys := make([]string, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buckets := make([]Bucket, len(keys))
	for i, k := range keys {
		buckets[i] = Bucket{Key: k, Total: sums[k]}
	}
	return buckets
}

func bucketKey(ts time.Time, g Granularity) string {
	switch g {
	case Weekly:
		year, week := weekOf(ts)
		return fmt.Sprintf("%04d-W%02d", year, week)
	case Monthly:
		return ts.Format("2006-01")
	default:
		return ts.Format(core.DateLayout)
	}
}

// weekOf computes a Monday-start week number with a year-boundary formula
// of week = ceil((daysSinceJan1 + Jan1Weekday + 1) / 7), evaluated at the
// Monday of ts's week. This is a documented approximation, not strict
// ISO-8601.
func weekOf(ts time.Time) (year, week int) {
	dayNum := (int(ts.Weekday()) + 6) % 7 // Monday=0
	monday := ts.AddDate(0, 0, -dayNum)
	year = monday.Year()

	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, monday.Location())
	daysSinceJan1 := monday.YearDay() - 1
	week = int(math.Ceil(float64(daysSinceJan1+int(jan1.Weekday())+1) / 7))
	if week < 1 {
		week = 1
	}
	return year, week
}

// amountOf is plain addition material. Malformed persisted amounts were
// already coerced to 0 at decode time (core.Amount), so sums never see a
// NaN equivalent.
func amountOf(tx core.Transaction) int64 {
	return int64(tx.Amount)
}
