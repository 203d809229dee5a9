package store

import "github.com/dubemjesse/Coinflow/internal/core"

// seedTransactions is the deterministic default set returned when no
// snapshot exists or the persisted one cannot be parsed.
func seedTransactions() []core.Transaction {
	return []core.Transaction{
		{ID: 1, Title: "Lunch At Mama Oyinye", Amount: 8500, Category: core.CategoryFood, Date: "2025-09-15", Time: "14:30"},
		{ID: 2, Title: "Airtime Recharge", Amount: 5000, Category: core.CategoryBills, Date: "2025-09-15", Time: "14:30"},
		{ID: 3, Title: "Chicken from Supermarket", Amount: 14000, Category: core.CategoryShopping, Date: "2025-09-15", Time: "11:45"},
		{ID: 4, Title: "Fuel for Car", Amount: 25000, Category: core.CategoryBills, Date: "2025-09-14", Time: "18:15"},
		{ID: 5, Title: "Drugs for Malaria", Amount: 2500, Category: core.CategoryHealth, Date: "2025-09-14", Time: "15:20"},
		{ID: 6, Title: "Bus Ride From Nsukka", Amount: 2200, Category: core.CategoryTransport, Date: "2025-09-14", Time: "08:00"},
		{ID: 7, Title: "Electricity Bill", Amount: 25000, Category: core.CategoryBills, Date: "2025-09-13", Time: "16:45"},
		{ID: 8, Title: "Vee's Supermarket", Amount: 35000, Category: core.CategoryShopping, Date: "2025-09-13", Time: "10:15"},
		{ID: 9, Title: "Coffee From Enugu City Mall", Amount: 3500, Category: core.CategoryFood, Date: "2025-09-12", Time: "14:45"},
	}
}
