package core

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionValidate(t *testing.T) {
	now := time.Date(2025, 9, 20, 12, 0, 0, 0, time.Local)

	valid := Transaction{
		Title:    "Lunch At Mama Oyinye",
		Amount:   8500,
		Category: CategoryFood,
		Date:     "2025-09-15",
		Time:     "14:30",
	}

	tests := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr error
	}{
		{name: "valid", mutate: func(*Transaction) {}},
		{name: "empty title", mutate: func(tx *Transaction) { tx.Title = "   " }, wantErr: ErrEmptyTitle},
		{name: "zero amount", mutate: func(tx *Transaction) { tx.Amount = 0 }, wantErr: ErrInvalidAmount},
		{name: "negative amount", mutate: func(tx *Transaction) { tx.Amount = -5 }, wantErr: ErrInvalidAmount},
		{name: "missing category", mutate: func(tx *Transaction) { tx.Category = "" }, wantErr: ErrMissingCategory},
		{name: "missing date", mutate: func(tx *Transaction) { tx.Date = "" }, wantErr: ErrMissingDate},
		{name: "garbage date", mutate: func(tx *Transaction) { tx.Date = "not-a-date" }, wantErr: ErrInvalidDate},
		{name: "future date", mutate: func(tx *Transaction) { tx.Date = "2025-09-21" }, wantErr: ErrFutureDate},
		{name: "today is allowed", mutate: func(tx *Transaction) { tx.Date = "2025-09-20" }},
		{
			name:   "unknown category is tolerated",
			mutate: func(tx *Transaction) { tx.Category = "crypto" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid
			tt.mutate(&tx)
			err := tx.validateAt(now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAmountUnmarshalCoercion(t *testing.T) {
	tests := []struct {
		name string
		json string
		want Amount
	}{
		{name: "plain number", json: `8500`, want: 8500},
		{name: "float rounds", json: `8500.6`, want: 8501},
		{name: "numeric string", json: `"2500"`, want: 2500},
		{name: "garbage string", json: `"abc"`, want: 0},
		{name: "null", json: `null`, want: 0},
		{name: "empty string", json: `""`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			require.NoError(t, json.Unmarshal([]byte(tt.json), &a))
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestAmountMissingFieldIsZero(t *testing.T) {
	var tx Transaction
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"title":"x","category":"food","date":"2025-09-15"}`), &tx))
	assert.Equal(t, Amount(0), tx.Amount)
}

func TestTransactionWhen(t *testing.T) {
	tx := Transaction{Date: "2025-09-15", Time: "14:30"}
	ts, ok := tx.When()
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 9, 15, 14, 30, 0, 0, time.Local), ts)

	// No time sorts at midnight.
	tx.Time = ""
	ts, ok = tx.When()
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 9, 15, 0, 0, 0, 0, time.Local), ts)

	tx.Date = "bogus"
	_, ok = tx.When()
	assert.False(t, ok)
}

func TestCategoryMeta(t *testing.T) {
	assert.Equal(t, "Food & Drinks", CategoryFood.Meta().Label)
	assert.True(t, CategoryBills.Known())

	// Unknown categories fall back to generic display metadata.
	unknown := Category("crypto")
	assert.False(t, unknown.Known())
	meta := unknown.Meta()
	assert.Equal(t, "crypto", meta.Label)
	assert.Equal(t, "fas fa-receipt", meta.Icon)
	assert.Equal(t, Amount(0), meta.Budget)
}

func TestCategoriesOrderIsStable(t *testing.T) {
	want := []Category{
		CategoryFood, CategoryTransport, CategoryShopping,
		CategoryBills, CategoryHealth, CategoryEntertainment,
	}
	assert.Equal(t, want, Categories())
}

func TestReminderStatus(t *testing.T) {
	now := time.Date(2025, 9, 20, 15, 0, 0, 0, time.Local)

	tests := []struct {
		date string
		want ReminderStatus
	}{
		{date: "2025-09-20", want: ReminderToday},
		{date: "2025-09-25", want: ReminderUpcoming},
		{date: "2025-09-01", want: ReminderOverdue},
		{date: "garbage", want: ReminderOverdue},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			r := Reminder{Title: "Pay rent", Date: tt.date}
			assert.Equal(t, tt.want, r.Status(now))
		})
	}
}
