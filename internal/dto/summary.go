package dto

import (
	"github.com/shopspring/decimal"

	"github.com/bruxa61/financas/internal/models"
)

// MonthlySummary holds the income, expense and balance totals for one
// calendar month.
type MonthlySummary struct {
	IncomeTotal  decimal.Decimal `json:"incomeTotal"`
	ExpenseTotal decimal.Decimal `json:"expenseTotal"`
	Balance      decimal.Decimal `json:"balance"`
}

// DashboardSummary aggregates everything the dashboard view needs for the
// current month.
type DashboardSummary struct {
	IncomeTotal        decimal.Decimal        `json:"incomeTotal"`
	ExpenseTotal       decimal.Decimal        `json:"expenseTotal"`
	Balance            decimal.Decimal        `json:"balance"`
	RecentTransactions []models.Transaction   `json:"recentTransactions"`
	ExpenseCategories  []models.CategoryTotal `json:"expenseCategories"`
	CurrentMonth       string                 `json:"currentMonth"`
}
