package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dubemjesse/Coinflow/internal/aggregate"
	"github.com/dubemjesse/Coinflow/internal/core"
	"github.com/dubemjesse/Coinflow/internal/filter"
)

type stubSource []core.Transaction

func (s stubSource) Transactions() []core.Transaction {
	return []core.Transaction(s)
}

var now = time.Date(2025, 9, 20, 12, 0, 0, 0, time.Local)

func seedSource() stubSource {
	return stubSource{
		{ID: 1, Title: "Lunch", Amount: 8500, Category: core.CategoryFood, Date: "2025-09-15", Time: "14:30"},
		{ID: 2, Title: "Airtime", Amount: 5000, Category: core.CategoryBills, Date: "2025-09-15", Time: "14:30"},
		{ID: 3, Title: "Old Groceries", Amount: 30000, Category: core.CategoryShopping, Date: "2025-08-02", Time: "10:00"},
	}
}

func TestDashboardSummaryCoversCurrentMonthOnly(t *testing.T) {
	f := New(seedSource(), 512000, 12)
	view := f.Dashboard(now)

	// The August record is outside the current-month window.
	assert.Equal(t, int64(13500), view.Summary.TotalExpenses)
	assert.Equal(t, int64(512000), view.Summary.Income)
	assert.Equal(t, int64(498500), view.Summary.Savings)
	assert.Equal(t, 97, view.Summary.SavingsRate)
	assert.True(t, view.Summary.TrendPositive)
	assert.Equal(t, "Good", view.Summary.TrendLabel)
}

func TestDashboardBreakdownIsZeroFilledInCanonicalOrder(t *testing.T) {
	f := New(seedSource(), 512000, 12)
	view := f.Dashboard(now)

	require.Len(t, view.Breakdown, 6)
	assert.Equal(t, core.CategoryFood, view.Breakdown[0].Category)
	assert.Equal(t, int64(8500), view.Breakdown[0].Total)
	assert.Equal(t, 63, view.Breakdown[0].Percent)

	// Categories with no spend this month are present with zeros.
	assert.Equal(t, core.CategoryShopping, view.Breakdown[2].Category)
	assert.Zero(t, view.Breakdown[2].Total)
	assert.Zero(t, view.Breakdown[2].Percent)
}

func TestDashboardRecentSortedDescendingAndClamped(t *testing.T) {
	var src stubSource
	for i := 1; i <= 20; i++ {
		src = append(src, core.Transaction{
			ID: int64(i), Title: "t", Amount: 100, Category: core.CategoryFood,
			Date: "2025-09-01", Time: time.Date(2025, 9, 1, 0, i, 0, 0, time.Local).Format("15:04"),
		})
	}

	f := New(src, 512000, 100) // clamps down to 12
	view := f.Dashboard(now)
	require.Len(t, view.Recent, 12)
	assert.Equal(t, int64(20), view.Recent[0].ID)

	f = New(src, 512000, 1) // clamps up to 8
	view = f.Dashboard(now)
	assert.Len(t, view.Recent, 8)
}

func TestDashboardBudgetTiers(t *testing.T) {
	src := stubSource{
		// bills budget 90000: 86000 spend = 95.6% -> critical
		{ID: 1, Title: "Rent", Amount: 86000, Category: core.CategoryBills, Date: "2025-09-05"},
		// health budget 30000: 24000 spend = 80% -> warning
		{ID: 2, Title: "Drugs", Amount: 24000, Category: core.CategoryHealth, Date: "2025-09-06"},
		// food budget 85000: small spend -> ok
		{ID: 3, Title: "Lunch", Amount: 4000, Category: core.CategoryFood, Date: "2025-09-07"},
		// entertainment budget 20000: 150% spend, bar caps at 100
		{ID: 4, Title: "Concert", Amount: 30000, Category: core.CategoryEntertainment, Date: "2025-09-08"},
	}

	f := New(src, 512000, 12)
	rows := f.Dashboard(now).Budgets
	byCat := make(map[core.Category]BudgetRow)
	for _, r := range rows {
		byCat[r.Category] = r
	}

	assert.Equal(t, TierCritical, byCat[core.CategoryBills].Tier)
	assert.Equal(t, TierWarning, byCat[core.CategoryHealth].Tier)
	assert.Equal(t, TierOK, byCat[core.CategoryFood].Tier)

	ent := byCat[core.CategoryEntertainment]
	assert.Equal(t, TierCritical, ent.Tier)
	assert.Equal(t, 100, ent.BarPercent)
	assert.InDelta(t, 150.0, ent.Ratio, 0.01)
}

func TestDashboardEmptyStoreIsNoDataNotError(t *testing.T) {
	f := New(stubSource{}, 512000, 12)
	view := f.Dashboard(now)

	assert.Zero(t, view.Summary.TotalExpenses)
	assert.Equal(t, 100, view.Summary.SavingsRate)
	assert.Empty(t, view.Recent)
	require.Len(t, view.Breakdown, 6)
	for _, slice := range view.Breakdown {
		assert.Zero(t, slice.Total)
		assert.Zero(t, slice.Percent)
	}
}

func TestReportRelativeWindowAndCategories(t *testing.T) {
	f := New(seedSource(), 512000, 12)

	view := f.Report(now, Query{
		Window:      filter.LastDays(7),
		Categories:  []string{"food"},
		Granularity: aggregate.Daily,
	})

	assert.Equal(t, int64(8500), view.Summary.TotalExpenses)
	assert.Equal(t, 1, view.Summary.Count)
	// 8500 over a 7-day window.
	assert.Equal(t, int64(1214), view.Summary.AverageDaily)
	require.Len(t, view.Series, 1)
	assert.Equal(t, "2025-09-15", view.Series[0].Key)
	assert.Equal(t, "Sep 15", view.Series[0].Label)
}

func TestReportMonthlySeriesLabels(t *testing.T) {
	f := New(seedSource(), 512000, 12)

	view := f.Report(now, Query{Window: filter.All(), Granularity: aggregate.Monthly})
	require.Len(t, view.Series, 2)
	assert.Equal(t, "2025-08", view.Series[0].Key)
	assert.Equal(t, "Aug 2025", view.Series[0].Label)
	assert.Equal(t, "2025-09", view.Series[1].Key)
	assert.Equal(t, int64(13500), view.Series[1].Total)
}

func TestReportTransactionsSortedDescending(t *testing.T) {
	f := New(seedSource(), 512000, 12)
	view := f.Report(now, Query{Window: filter.All()})

	require.Len(t, view.Transactions, 3)
	assert.Equal(t, "2025-09-15", view.Transactions[0].Date)
	assert.Equal(t, "2025-08-02", view.Transactions[2].Date)
}

func TestReportEmptyResultIsZeroed(t *testing.T) {
	f := New(seedSource(), 512000, 12)
	view := f.Report(now, Query{
		Window:      filter.Between(time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local), time.Date(2020, 1, 31, 0, 0, 0, 0, time.Local)),
		Granularity: aggregate.Weekly,
	})

	assert.Zero(t, view.Summary.TotalExpenses)
	assert.Zero(t, view.Summary.AverageDaily)
	assert.Zero(t, view.Summary.Count)
	assert.Empty(t, view.Series)
	assert.Empty(t, view.Transactions)
}

func TestParseWindow(t *testing.T) {
	loc := time.Local

	assert.Equal(t, filter.All(), ParseWindow("all", "", "", loc))
	assert.Equal(t, filter.All(), ParseWindow("", "", "", loc))
	assert.Equal(t, filter.LastDays(30), ParseWindow("30", "", "", loc))
	assert.Equal(t, filter.All(), ParseWindow("garbage", "", "", loc))
	assert.Equal(t, filter.All(), ParseWindow("custom", "2025-09-01", "bogus", loc))

	w := ParseWindow("custom", "2025-09-01", "2025-09-15", loc)
	assert.Equal(t, filter.KindExplicit, w.Kind)
	assert.Equal(t, 15, w.End.Day())
}
