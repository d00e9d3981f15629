package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/bruxa61/financas/internal/database"
	"github.com/bruxa61/financas/internal/models"
)

func TestTransactionRepository(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

type TransactionRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo TransactionRepositoryInterface
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	database.CreateTestUser(s.T(), s.db, "user-1")
	database.CreateTestUser(s.T(), s.db, "user-2")
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TransactionRepositorySuite) newTransaction(userID, amount, transactionType, category string, date time.Time) *models.Transaction {
	return &models.Transaction{
		UserID:          userID,
		Title:           fmt.Sprintf("%s %s", category, amount),
		Amount:          decimal.RequireFromString(amount),
		TransactionType: transactionType,
		Category:        category,
		TransactionDate: date,
	}
}

func (s *TransactionRepositorySuite) mustCreate(t *models.Transaction) *models.Transaction {
	s.Require().NoError(s.repo.Create(t))
	return t
}

func (s *TransactionRepositorySuite) TestCreate() {
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	transaction := s.newTransaction("user-1", "120.50", models.TransactionTypeExpense, "Food & Dining", date)

	err := s.repo.Create(transaction)
	s.NoError(err)
	s.NotEqual(uuid.Nil, transaction.ID)
	s.NotZero(transaction.CreatedAt)
	s.NotZero(transaction.UpdatedAt)

	found, err := s.repo.GetByIDForUser(transaction.ID, "user-1")
	s.NoError(err)
	s.Equal("Food & Dining", found.Category)
	s.True(found.Amount.Equal(decimal.RequireFromString("120.50")))
}

func (s *TransactionRepositorySuite) TestCreate_InvalidAmount() {
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	transaction := s.newTransaction("user-1", "0", models.TransactionTypeExpense, "Food & Dining", date)

	err := s.repo.Create(transaction)
	s.ErrorIs(err, models.ErrInvalidAmount)
}

func (s *TransactionRepositorySuite) TestGetByIDForUser_OwnershipIsExistence() {
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	transaction := s.mustCreate(s.newTransaction("user-1", "50.00", models.TransactionTypeExpense, "Shopping", date))

	// The owner sees it
	found, err := s.repo.GetByIDForUser(transaction.ID, "user-1")
	s.NoError(err)
	s.Equal(transaction.ID, found.ID)

	// Another user gets not found, not forbidden
	_, err = s.repo.GetByIDForUser(transaction.ID, "user-2")
	s.ErrorIs(err, ErrTransactionNotFound)

	// A random ID is also not found
	_, err = s.repo.GetByIDForUser(uuid.New(), "user-1")
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestDeleteForUser_OwnershipIsExistence() {
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	transaction := s.mustCreate(s.newTransaction("user-1", "50.00", models.TransactionTypeExpense, "Shopping", date))

	// Another user cannot delete it
	err := s.repo.DeleteForUser(transaction.ID, "user-2")
	s.ErrorIs(err, ErrTransactionNotFound)

	// It still exists for the owner
	_, err = s.repo.GetByIDForUser(transaction.ID, "user-1")
	s.NoError(err)

	// The owner can delete it
	err = s.repo.DeleteForUser(transaction.ID, "user-1")
	s.NoError(err)

	_, err = s.repo.GetByIDForUser(transaction.ID, "user-1")
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestUpdate() {
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	transaction := s.mustCreate(s.newTransaction("user-1", "50.00", models.TransactionTypeExpense, "Shopping", date))

	transaction.Title = "Groceries"
	transaction.Amount = decimal.RequireFromString("75.25")
	transaction.Category = "Food & Dining"

	err := s.repo.Update(transaction)
	s.NoError(err)

	found, err := s.repo.GetByIDForUser(transaction.ID, "user-1")
	s.NoError(err)
	s.Equal("Groceries", found.Title)
	s.Equal("Food & Dining", found.Category)
	s.True(found.Amount.Equal(decimal.RequireFromString("75.25")))
}

func (s *TransactionRepositorySuite) TestListByUser_PaginationWithFilter() {
	base := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	// 25 matching expenses in one category, 3 in another
	for i := 0; i < 25; i++ {
		s.mustCreate(s.newTransaction("user-1", "10.00", models.TransactionTypeExpense, "Food & Dining", base.AddDate(0, 0, i)))
	}
	for i := 0; i < 3; i++ {
		s.mustCreate(s.newTransaction("user-1", "20.00", models.TransactionTypeExpense, "Travel", base.AddDate(0, 0, i)))
	}

	filters := models.TransactionFilters{Category: "Food & Dining"}

	pageOne, total, err := s.repo.ListByUser("user-1", filters, 0, 20)
	s.NoError(err)
	s.Equal(int64(25), total)
	s.Len(pageOne, 20)
	for _, tx := range pageOne {
		s.Equal("Food & Dining", tx.Category)
	}

	pageTwo, total, err := s.repo.ListByUser("user-1", filters, 20, 20)
	s.NoError(err)
	s.Equal(int64(25), total)
	s.Len(pageTwo, 5)

	// A page past the end is empty, not an error
	pageThree, total, err := s.repo.ListByUser("user-1", filters, 40, 20)
	s.NoError(err)
	s.Equal(int64(25), total)
	s.Len(pageThree, 0)
}

func (s *TransactionRepositorySuite) TestListByUser_NewestFirst() {
	old := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	s.mustCreate(s.newTransaction("user-1", "10.00", models.TransactionTypeExpense, "Shopping", old))
	s.mustCreate(s.newTransaction("user-1", "20.00", models.TransactionTypeExpense, "Shopping", recent))

	transactions, _, err := s.repo.ListByUser("user-1", models.TransactionFilters{}, 0, 20)
	s.NoError(err)
	s.Require().Len(transactions, 2)
	s.True(transactions[0].TransactionDate.After(transactions[1].TransactionDate))
}

func (s *TransactionRepositorySuite) TestListByUser_TypeFilterAndIsolation() {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	s.mustCreate(s.newTransaction("user-1", "1000.00", models.TransactionTypeIncome, "Salary", date))
	s.mustCreate(s.newTransaction("user-1", "200.00", models.TransactionTypeExpense, "Shopping", date))
	s.mustCreate(s.newTransaction("user-2", "999.00", models.TransactionTypeIncome, "Salary", date))

	income, total, err := s.repo.ListByUser("user-1", models.TransactionFilters{TransactionType: models.TransactionTypeIncome}, 0, 20)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(income, 1)
	s.Equal("user-1", income[0].UserID)
	s.True(income[0].Amount.Equal(decimal.RequireFromString("1000.00")))
}

func (s *TransactionRepositorySuite) TestGetRecentByUser() {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		s.mustCreate(s.newTransaction("user-1", "10.00", models.TransactionTypeExpense, "Shopping", base.AddDate(0, 0, i)))
	}

	recent, err := s.repo.GetRecentByUser("user-1", 5)
	s.NoError(err)
	s.Require().Len(recent, 5)
	for i := 1; i < len(recent); i++ {
		s.False(recent[i].TransactionDate.After(recent[i-1].TransactionDate))
	}
}

func (s *TransactionRepositorySuite) TestSumAmount() {
	march := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	april := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)

	s.mustCreate(s.newTransaction("user-1", "1000.00", models.TransactionTypeIncome, "Salary", march))
	s.mustCreate(s.newTransaction("user-1", "200.50", models.TransactionTypeExpense, "Food & Dining", march))
	// Outside the month window
	s.mustCreate(s.newTransaction("user-1", "500.00", models.TransactionTypeIncome, "Salary", april))
	// Another user's activity
	s.mustCreate(s.newTransaction("user-2", "999.00", models.TransactionTypeIncome, "Salary", march))

	income, err := s.repo.SumAmount("user-1", models.TransactionTypeIncome, 3, 2025)
	s.NoError(err)
	s.True(income.Equal(decimal.RequireFromString("1000.00")), "got %s", income)

	expense, err := s.repo.SumAmount("user-1", models.TransactionTypeExpense, 3, 2025)
	s.NoError(err)
	s.True(expense.Equal(decimal.RequireFromString("200.50")), "got %s", expense)

	// A month with no activity sums to exactly zero
	empty, err := s.repo.SumAmount("user-1", models.TransactionTypeExpense, 7, 2025)
	s.NoError(err)
	s.True(empty.IsZero())
}

func (s *TransactionRepositorySuite) TestSumAmount_ExactDecimals() {
	march := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	s.mustCreate(s.newTransaction("user-1", "0.10", models.TransactionTypeExpense, "Shopping", march))
	s.mustCreate(s.newTransaction("user-1", "0.20", models.TransactionTypeExpense, "Shopping", march))
	s.mustCreate(s.newTransaction("user-1", "0.30", models.TransactionTypeExpense, "Shopping", march))

	total, err := s.repo.SumAmount("user-1", models.TransactionTypeExpense, 3, 2025)
	s.NoError(err)
	s.True(total.Equal(decimal.RequireFromString("0.60")), "got %s", total)
}

func (s *TransactionRepositorySuite) TestSumAmountByYear() {
	s.mustCreate(s.newTransaction("user-1", "100.00", models.TransactionTypeIncome, "Salary", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)))
	s.mustCreate(s.newTransaction("user-1", "250.00", models.TransactionTypeIncome, "Freelance", time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC)))
	// Previous year is excluded
	s.mustCreate(s.newTransaction("user-1", "400.00", models.TransactionTypeIncome, "Salary", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)))

	total, err := s.repo.SumAmountByYear("user-1", models.TransactionTypeIncome, 2025)
	s.NoError(err)
	s.True(total.Equal(decimal.RequireFromString("350.00")), "got %s", total)
}

func (s *TransactionRepositorySuite) TestGroupByCategory() {
	march := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)

	s.mustCreate(s.newTransaction("user-1", "60.00", models.TransactionTypeExpense, "Food & Dining", march))
	s.mustCreate(s.newTransaction("user-1", "40.00", models.TransactionTypeExpense, "Food & Dining", march))
	s.mustCreate(s.newTransaction("user-1", "30.00", models.TransactionTypeExpense, "Travel", march))
	// Different type does not leak into the breakdown
	s.mustCreate(s.newTransaction("user-1", "500.00", models.TransactionTypeIncome, "Salary", march))

	totals, err := s.repo.GroupByCategory("user-1", models.TransactionTypeExpense, 3, 2025)
	s.NoError(err)
	s.Require().Len(totals, 2)
	s.Equal("Food & Dining", totals[0].Category)
	s.True(totals[0].Total.Equal(decimal.RequireFromString("100.00")))
	s.Equal("Travel", totals[1].Category)
	s.True(totals[1].Total.Equal(decimal.RequireFromString("30.00")))
}

func (s *TransactionRepositorySuite) TestGroupByCategoryYear() {
	s.mustCreate(s.newTransaction("user-1", "10.00", models.TransactionTypeExpense, "Shopping", time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)))
	s.mustCreate(s.newTransaction("user-1", "15.00", models.TransactionTypeExpense, "Shopping", time.Date(2025, 9, 5, 0, 0, 0, 0, time.UTC)))
	s.mustCreate(s.newTransaction("user-1", "99.00", models.TransactionTypeExpense, "Shopping", time.Date(2024, 9, 5, 0, 0, 0, 0, time.UTC)))

	totals, err := s.repo.GroupByCategoryYear("user-1", models.TransactionTypeExpense, 2025)
	s.NoError(err)
	s.Require().Len(totals, 1)
	s.True(totals[0].Total.Equal(decimal.RequireFromString("25.00")))
}

func (s *TransactionRepositorySuite) TestCreateBatchAndCount() {
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	batch := []models.Transaction{
		*s.newTransaction("user-1", "10.00", models.TransactionTypeExpense, "Shopping", date),
		*s.newTransaction("user-1", "20.00", models.TransactionTypeExpense, "Travel", date),
		*s.newTransaction("user-1", "30.00", models.TransactionTypeIncome, "Salary", date),
	}

	s.NoError(s.repo.CreateBatch(batch))
	s.NoError(s.repo.CreateBatch(nil))

	count, err := s.repo.CountByUser("user-1")
	s.NoError(err)
	s.Equal(int64(3), count)
}

func (s *TransactionRepositorySuite) TestDeleteByUser() {
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	s.mustCreate(s.newTransaction("user-1", "10.00", models.TransactionTypeExpense, "Shopping", date))
	s.mustCreate(s.newTransaction("user-1", "20.00", models.TransactionTypeExpense, "Travel", date))
	s.mustCreate(s.newTransaction("user-2", "30.00", models.TransactionTypeExpense, "Shopping", date))

	s.NoError(s.repo.DeleteByUser("user-1"))

	count, err := s.repo.CountByUser("user-1")
	s.NoError(err)
	s.Equal(int64(0), count)

	count, err = s.repo.CountByUser("user-2")
	s.NoError(err)
	s.Equal(int64(1), count)
}
