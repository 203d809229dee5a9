package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dubemjesse/Coinflow/internal/core"
)

func TestCategoryTotalsSingleDayScenario(t *testing.T) {
	records := []core.Transaction{
		{Amount: 8500, Category: "food", Date: "2025-09-15"},
		{Amount: 5000, Category: "bills", Date: "2025-09-15"},
	}

	totals := CategoryTotals(records)
	assert.Equal(t, map[core.Category]int64{"food": 8500, "bills": 5000}, totals)

	grand := GrandTotal(records)
	assert.Equal(t, int64(13500), grand)
	assert.Equal(t, 63, Percentage(totals["food"], grand))
	assert.Equal(t, 37, Percentage(totals["bills"], grand))
}

func TestCategoryTotalsOmitsAbsentCategories(t *testing.T) {
	records := []core.Transaction{{Amount: 100, Category: "food", Date: "2025-09-15"}}
	totals := CategoryTotals(records)
	_, present := totals["transport"]
	assert.False(t, present)
}

func TestTotalConservation(t *testing.T) {
	records := []core.Transaction{
		{Amount: 8500, Category: "food", Date: "2025-09-15"},
		{Amount: 5000, Category: "bills", Date: "2025-09-15"},
		{Amount: 2200, Category: "transport", Date: "2025-09-14"},
		{Amount: 700, Category: "unknown-cat", Date: "2025-09-13"},
	}

	var sum int64
	for _, v := range CategoryTotals(records) {
		sum += v
	}
	assert.Equal(t, GrandTotal(records), sum)
}

func TestPercentageGuards(t *testing.T) {
	assert.Equal(t, 0, Percentage(100, 0))
	assert.Equal(t, 0, Percentage(0, 0))
	assert.Equal(t, 100, Percentage(50, 50))

	// Every percentage stays in [0,100] for non-negative parts.
	assert.GreaterOrEqual(t, Percentage(1, 1000), 0)
	assert.LessOrEqual(t, Percentage(1000, 1000), 100)
}

func TestSummarizeSavingsScenario(t *testing.T) {
	records := []core.Transaction{
		{Amount: 100000, Category: "bills", Date: "2025-09-01"},
		{Amount: 17700, Category: "food", Date: "2025-09-02"},
	}

	s := Summarize(records, 30, 512000)
	assert.Equal(t, int64(117700), s.Total)
	assert.Equal(t, 2, s.Count)
	assert.Equal(t, int64(394300), s.Savings)
	assert.Equal(t, 77, s.SavingsRate)
	assert.True(t, s.TrendPositive)
}

func TestSummarizeEmptySet(t *testing.T) {
	for _, days := range []int{1, 7, 30, 365} {
		s := Summarize(nil, days, 512000)
		assert.Zero(t, s.AveragePerDay, "days=%d", days)
		assert.Zero(t, s.Total)
		assert.Zero(t, s.Count)
		// Nothing spent: all income saved.
		assert.Equal(t, int64(512000), s.Savings)
		assert.Equal(t, 100, s.SavingsRate)
	}
}

func TestSummarizeZeroIncome(t *testing.T) {
	records := []core.Transaction{{Amount: 5000, Category: "bills", Date: "2025-09-15"}}
	s := Summarize(records, 30, 0)
	assert.Equal(t, 0, s.SavingsRate)
	assert.False(t, s.TrendPositive)
}

func TestSummarizeDaysFloorIsOne(t *testing.T) {
	records := []core.Transaction{{Amount: 900, Category: "food", Date: "2025-09-15"}}
	s := Summarize(records, 0, 0)
	assert.Equal(t, float64(900), s.AveragePerDay)
}

func TestSeriesMonthly(t *testing.T) {
	records := []core.Transaction{
		{Amount: 100, Category: "food", Date: "2025-10-01"},
		{Amount: 250, Category: "bills", Date: "2025-09-15"},
		{Amount: 50, Category: "food", Date: "2025-09-20"},
	}

	buckets := Series(records, Monthly)
	require.Len(t, buckets, 2)
	assert.Equal(t, Bucket{Key: "2025-09", Total: 300}, buckets[0])
	assert.Equal(t, Bucket{Key: "2025-10", Total: 100}, buckets[1])
}

func TestSeriesDaily(t *testing.T) {
	records := []core.Transaction{
		{Amount: 100, Category: "food", Date: "2025-09-15", Time: "08:00"},
		{Amount: 200, Category: "food", Date: "2025-09-15", Time: "19:00"},
		{Amount: 40, Category: "food", Date: "2025-09-12"},
		{Amount: 999, Category: "food", Date: "garbage"},
	}

	buckets := Series(records, Daily)
	require.Len(t, buckets, 2)
	assert.Equal(t, Bucket{Key: "2025-09-12", Total: 40}, buckets[0])
	assert.Equal(t, Bucket{Key: "2025-09-15", Total: 300}, buckets[1])
}

func TestSeriesWeekly(t *testing.T) {
	// 2025-09-15 is a Monday; 2025-09-14 the Sunday before it.
	records := []core.Transaction{
		{Amount: 100, Category: "food", Date: "2025-09-15"},
		{Amount: 70, Category: "food", Date: "2025-09-14"},
		{Amount: 30, Category: "food", Date: "2025-09-17"},
	}

	buckets := Series(records, Weekly)
	require.Len(t, buckets, 2)
	// Sunday belongs to the previous Monday-start week.
	assert.Less(t, buckets[0].Key, buckets[1].Key)
	assert.Equal(t, int64(70), buckets[0].Total)
	assert.Equal(t, int64(130), buckets[1].Total)

	// Keys are fixed-width so lexicographic order is chronological.
	for _, b := range buckets {
		assert.Regexp(t, `^\d{4}-W\d{2}$`, b.Key)
	}
}

func TestSeriesEmpty(t *testing.T) {
	assert.Empty(t, Series(nil, Daily))
}
