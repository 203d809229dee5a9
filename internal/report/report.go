// Package report composes the filter engine and aggregator into the exact
// shapes the dashboard and reports views consume. It owns no state beyond
// configuration and produces no errors: empty inputs come back as zeroed
// view models, never failures.
package report

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/dubemjesse/Coinflow/internal/aggregate"
	"github.com/dubemjesse/Coinflow/internal/core"
	"github.com/dubemjesse/Coinflow/internal/filter"
)

const (
	minRecent = 8
	maxRecent = 12

	// defaultPeriodDays is the average-per-day fallback when the window
	// carries no length of its own.
	defaultPeriodDays = 30
)

// Budget bar tiers.
const (
	TierCritical = "critical" // ratio >= 90%
	TierWarning  = "warning"  // ratio >= 75%
	TierOK       = "ok"
)

// Facade builds view models from a transaction source.
type Facade struct {
	source      Source
	income      int64
	recentLimit int
}

// Source is the record list the facade reads. Satisfied by *store.Store.
type Source interface {
	Transactions() []core.Transaction
}

func New(source Source, monthlyIncome int64, recentLimit int) *Facade {
	if recentLimit < minRecent {
		recentLimit = minRecent
	}
	if recentLimit > maxRecent {
		recentLimit = maxRecent
	}
	return &Facade{source: source, income: monthlyIncome, recentLimit: recentLimit}
}

// CategorySlice is one row of a category breakdown, zero-filled over the
// canonical enumeration so chart axes stay fixed.
type CategorySlice struct {
	Category core.Category `json:"category"`
	Label    string        `json:"label"`
	Icon     string        `json:"icon"`
	Color    string        `json:"color"`
	Total    int64         `json:"total"`
	Percent  int           `json:"percent"`
}

// BudgetRow compares month-to-date spend against the static budget for one
// category. Ratio is the uncapped spend/budget percentage used for
// threshold decisions; BarPercent is capped at 100 for bar widths.
type BudgetRow struct {
	Category   core.Category `json:"category"`
	Label      string        `json:"label"`
	Spent      int64         `json:"spent"`
	Budget     int64         `json:"budget"`
	Ratio      float64       `json:"ratio"`
	BarPercent int           `json:"barPercent"`
	Tier       string        `json:"tier"`
}

// SummaryView is the dashboard's card strip.
type SummaryView struct {
	TotalExpenses int64  `json:"totalExpenses"`
	Income        int64  `json:"income"`
	Savings       int64  `json:"savings"`
	SavingsRate   int    `json:"savingsRate"`
	TrendPositive bool   `json:"trendPositive"`
	TrendLabel    string `json:"trendLabel"`
}

// DashboardView is everything the dashboard page needs in one shot.
type DashboardView struct {
	Summary   SummaryView        `json:"summary"`
	Breakdown []CategorySlice    `json:"breakdown"`
	Recent    []core.Transaction `json:"recent"`
	Budgets   []BudgetRow        `json:"budgets"`
}

// Dashboard recomputes the dashboard over the current calendar month,
// anchored at now.
func (f *Facade) Dashboard(now time.Time) DashboardView {
	records := f.source.Transactions()

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)
	monthly := filter.Apply(records, filter.Between(monthStart, monthEnd), nil, now)

	summary := aggregate.Summarize(monthly, daysInMonth(now), f.income)
	totals := aggregate.CategoryTotals(monthly)
	grand := aggregate.GrandTotal(monthly)

	trendLabel := "Needs improvement"
	if summary.TrendPositive {
		trendLabel = "Good"
	}

	return DashboardView{
		Summary: SummaryView{
			TotalExpenses: summary.Total,
			Income:        f.income,
			Savings:       summary.Savings,
			SavingsRate:   summary.SavingsRate,
			TrendPositive: summary.TrendPositive,
			TrendLabel:    trendLabel,
		},
		Breakdown: breakdown(totals, grand),
		Recent:    mostRecent(records, f.recentLimit),
		Budgets:   budgetRows(totals),
	}
}

// Query is the reports page filter state.
type Query struct {
	Window      filter.Window
	Categories  []string
	Granularity aggregate.Granularity
}

// SeriesPoint is one chart point: the bucket key plus a display label.
type SeriesPoint struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Total int64  `json:"total"`
}

// ReportSummary is the reports page card strip.
type ReportSummary struct {
	TotalExpenses int64 `json:"totalExpenses"`
	AverageDaily  int64 `json:"averageDaily"`
	Count         int   `json:"count"`
}

// ReportView is the filter-driven variant of the dashboard composition.
type ReportView struct {
	Summary      ReportSummary      `json:"summary"`
	Breakdown    []CategorySlice    `json:"breakdown"`
	Transactions []core.Transaction `json:"transactions"`
	Series       []SeriesPoint      `json:"series"`
}

// Report recomputes the reports view for the given query, anchored at now.
func (f *Facade) Report(now time.Time, q Query) ReportView {
	records := filter.Apply(f.source.Transactions(), q.Window, q.Categories, now)

	summary := aggregate.Summarize(records, q.Window.DaysInPeriod(defaultPeriodDays), f.income)
	totals := aggregate.CategoryTotals(records)
	grand := aggregate.GrandTotal(records)

	g := q.Granularity
	switch g {
	case aggregate.Daily, aggregate.Weekly, aggregate.Monthly:
	default:
		g = aggregate.Daily
	}

	buckets := aggregate.Series(records, g)
	series := make([]SeriesPoint, len(buckets))
	for i, b := range buckets {
		series[i] = SeriesPoint{Key: b.Key, Label: bucketLabel(b.Key, g), Total: b.Total}
	}

	sorted := make([]core.Transaction, len(records))
	copy(sorted, records)
	sortByDateTimeDesc(sorted)

	return ReportView{
		Summary: ReportSummary{
			TotalExpenses: summary.Total,
			AverageDaily:  int64(math.Round(summary.AveragePerDay)),
			Count:         summary.Count,
		},
		Breakdown:    breakdown(totals, grand),
		Transactions: sorted,
		Series:       series,
	}
}

func breakdown(totals map[core.Category]int64, grand int64) []CategorySlice {
	cats := core.Categories()
	out := make([]CategorySlice, len(cats))
	for i, c := range cats {
		meta := c.Meta()
		total := totals[c]
		out[i] = CategorySlice{
			Category: c,
			Label:    meta.Label,
			Icon:     meta.Icon,
			Color:    meta.Color,
			Total:    total,
			Percent:  aggregate.Percentage(total, grand),
		}
	}
	return out
}

func budgetRows(totals map[core.Category]int64) []BudgetRow {
	cats := core.Categories()
	out := make([]BudgetRow, len(cats))
	for i, c := range cats {
		meta := c.Meta()
		spent := totals[c]
		budget := int64(meta.Budget)

		var ratio float64
		if budget > 0 {
			ratio = 100 * float64(spent) / float64(budget)
		}
		bar := int(math.Min(ratio, 100))

		tier := TierOK
		switch {
		case ratio >= 90:
			tier = TierCritical
		case ratio >= 75:
			tier = TierWarning
		}

		out[i] = BudgetRow{
			Category:   c,
			Label:      meta.Label,
			Spent:      spent,
			Budget:     budget,
			Ratio:      ratio,
			BarPercent: bar,
			Tier:       tier,
		}
	}
	return out
}

// mostRecent sorts a copy by date+time descending and takes the top n.
// Records with unparsable dates sink to the end.
func mostRecent(records []core.Transaction, n int) []core.Transaction {
	sorted := make([]core.Transaction, len(records))
	copy(sorted, records)
	sortByDateTimeDesc(sorted)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func sortByDateTimeDesc(records []core.Transaction) {
	sort.SliceStable(records, func(i, j int) bool {
		ti, iok := records[i].When()
		tj, jok := records[j].When()
		if iok != jok {
			return iok
		}
		return ti.After(tj)
	})
}

// bucketLabel derives the human-readable chart label from a bucket key.
// Weekly keys read as-is.
func bucketLabel(key string, g aggregate.Granularity) string {
	switch g {
	case aggregate.Daily:
		if ts, err := time.Parse(core.DateLayout, key); err == nil {
			return ts.Format("Jan 2")
		}
	case aggregate.Monthly:
		if ts, err := time.Parse("2006-01", key); err == nil {
			return ts.Format("Jan 2006")
		}
	}
	return key
}

func daysInMonth(now time.Time) int {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return first.AddDate(0, 1, -1).Day()
}

// ParseWindow maps the reports page range selector to a window: "all", a
// day count ("7", "30", "90"), or "custom" with explicit start/end dates.
// Anything unparsable degrades to the unconstrained window.
func ParseWindow(rangeValue, start, end string, loc *time.Location) filter.Window {
	switch rangeValue {
	case "", "all":
		return filter.All()
	case "custom":
		s, errS := time.ParseInLocation(core.DateLayout, start, loc)
		e, errE := time.ParseInLocation(core.DateLayout, end, loc)
		if errS != nil || errE != nil {
			return filter.All()
		}
		return filter.Between(s, e)
	default:
		if days, err := strconv.Atoi(rangeValue); err == nil && days > 0 {
			return filter.LastDays(days)
		}
		return filter.All()
	}
}
