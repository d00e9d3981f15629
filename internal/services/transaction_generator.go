package services

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"github.com/bruxa61/financas/internal/models"
)

type transactionGenerator struct {
	faker *gofakeit.Faker
	now   func() time.Time
}

// NewTransactionGenerator creates a generator for realistic sample
// ledger data, used to populate development environments.
func NewTransactionGenerator(seed uint64) TransactionGeneratorInterface {
	return &transactionGenerator{
		faker: gofakeit.New(seed),
		now:   time.Now,
	}
}

// GenerateHistory produces perMonth transactions for each of the last
// months calendar months, oldest first. Roughly one in five entries is
// income; the rest are expenses drawn from the default categories.
func (g *transactionGenerator) GenerateHistory(userID string, months, perMonth int) []models.Transaction {
	if months <= 0 {
		months = 1
	}
	if perMonth <= 0 {
		perMonth = 1
	}

	incomeCategories, expenseCategories := splitDefaultCategories()

	transactions := make([]models.Transaction, 0, months*perMonth)
	now := g.now()

	for m := months - 1; m >= 0; m-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -m, 0)
		daysInMonth := monthStart.AddDate(0, 1, -1).Day()

		for i := 0; i < perMonth; i++ {
			day := g.faker.Number(1, daysInMonth)
			date := monthStart.AddDate(0, 0, day-1)
			if date.After(now) {
				date = models.DateOnly(now)
			}

			if i%5 == 0 {
				transactions = append(transactions, g.incomeTransaction(userID, date, incomeCategories))
			} else {
				transactions = append(transactions, g.expenseTransaction(userID, date, expenseCategories))
			}
		}
	}

	return transactions
}

func (g *transactionGenerator) incomeTransaction(userID string, date time.Time, categories []models.Category) models.Transaction {
	category := categories[g.faker.Number(0, len(categories)-1)]

	return models.Transaction{
		UserID:          userID,
		Title:           fmt.Sprintf("%s payment", g.faker.Company()),
		Amount:          decimal.NewFromFloat(g.faker.Price(500, 8000)).Round(2),
		TransactionType: models.TransactionTypeIncome,
		Category:        category.Name,
		Description:     g.faker.Sentence(6),
		TransactionDate: date,
	}
}

func (g *transactionGenerator) expenseTransaction(userID string, date time.Time, categories []models.Category) models.Transaction {
	category := categories[g.faker.Number(0, len(categories)-1)]

	return models.Transaction{
		UserID:          userID,
		Title:           g.faker.ProductName(),
		Amount:          decimal.NewFromFloat(g.faker.Price(5, 400)).Round(2),
		TransactionType: models.TransactionTypeExpense,
		Category:        category.Name,
		Description:     g.faker.Sentence(6),
		TransactionDate: date,
	}
}

func splitDefaultCategories() (income, expense []models.Category) {
	for _, c := range models.DefaultCategories() {
		switch c.CategoryType {
		case models.TransactionTypeIncome:
			income = append(income, c)
		case models.TransactionTypeExpense:
			expense = append(expense, c)
		}
	}
	return income, expense
}
