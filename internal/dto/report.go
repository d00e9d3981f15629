package dto

import (
	"github.com/shopspring/decimal"

	"github.com/bruxa61/financas/internal/models"
)

// MonthlyEntry is one month's row in the yearly report.
type MonthlyEntry struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// YearlyReport covers the trailing twelve months plus the current year's
// category breakdowns.
type YearlyReport struct {
	MonthlyData       []MonthlyEntry         `json:"monthlyData"`
	IncomeCategories  []models.CategoryTotal `json:"incomeCategories"`
	ExpenseCategories []models.CategoryTotal `json:"expenseCategories"`
	CurrentYear       int                    `json:"currentYear"`
}

// CategoryListResponse represents the configured category catalog
type CategoryListResponse struct {
	Categories []models.Category `json:"categories"`
}
