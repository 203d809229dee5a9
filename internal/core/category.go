// Package core holds the domain model shared by every component: expense
// transactions, the canonical category table, and reminders. It has no
// dependencies on storage or rendering.
package core

// Category is an expense category label. The canonical set is fixed, but
// values outside it are carried through untouched and fall back to generic
// display metadata.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryShopping      Category = "shopping"
	CategoryBills         Category = "bills"
	CategoryHealth        Category = "health"
	CategoryEntertainment Category = "entertainment"
)

// CategoryMeta is the display and budget metadata for one category. It is
// the single source of truth consumed by every facade, replacing the lookup
// tables that used to be duplicated per view.
type CategoryMeta struct {
	Label  string
	Icon   string
	Color  string
	Budget Amount // static monthly limit
}

var categoryOrder = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryBills,
	CategoryHealth,
	CategoryEntertainment,
}

var categoryMeta = map[Category]CategoryMeta{
	CategoryFood:          {Label: "Food & Drinks", Icon: "fas fa-utensils", Color: "#F59E0B", Budget: 85000},
	CategoryTransport:     {Label: "Transportation", Icon: "fas fa-bus", Color: "#3B82F6", Budget: 100000},
	CategoryShopping:      {Label: "Shopping", Icon: "fas fa-shopping-bag", Color: "#EC4899", Budget: 100000},
	CategoryBills:         {Label: "Bills & Utilities", Icon: "fas fa-bolt", Color: "#10B981", Budget: 90000},
	CategoryHealth:        {Label: "Health", Icon: "fas fa-pills", Color: "#EF4444", Budget: 30000},
	CategoryEntertainment: {Label: "Entertainment", Icon: "fas fa-film", Color: "#8B5CF6", Budget: 20000},
}

// Categories returns the canonical category enumeration in display order.
// Callers zero-fill aggregates against this list for fixed-axis charts.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Known reports whether c belongs to the canonical set.
func (c Category) Known() bool {
	_, ok := categoryMeta[c]
	return ok
}

// Meta returns display metadata for a category. Unknown categories get the
// raw label, a generic receipt icon and a neutral color, with zero budget.
func (c Category) Meta() CategoryMeta {
	if m, ok := categoryMeta[c]; ok {
		return m
	}
	return CategoryMeta{Label: string(c), Icon: "fas fa-receipt", Color: "#6B7280"}
}
