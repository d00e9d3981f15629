package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/bruxa61/financas/internal/dto"
	"github.com/bruxa61/financas/internal/models"
	"github.com/bruxa61/financas/internal/repositories"
)

// recentTransactionLimit is how many transactions the dashboard shows.
const recentTransactionLimit = 5

type summaryService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
	now             func() time.Time
}

// NewSummaryService creates a new summary service
func NewSummaryService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) SummaryServiceInterface {
	return &summaryService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
		now:             time.Now,
	}
}

// MonthlySummary returns the income total, expense total and balance for
// one calendar month. A month with no activity yields exact zeros.
func (s *summaryService) MonthlySummary(userID string, month, year int) (*dto.MonthlySummary, error) {
	income, err := s.transactionRepo.SumAmount(userID, models.TransactionTypeIncome, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to sum income: %w", err)
	}

	expense, err := s.transactionRepo.SumAmount(userID, models.TransactionTypeExpense, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	return &dto.MonthlySummary{
		IncomeTotal:  income,
		ExpenseTotal: expense,
		Balance:      income.Sub(expense),
	}, nil
}

// CategoryBreakdown returns per-category totals for one month, largest
// first. Categories without matching transactions are omitted.
func (s *summaryService) CategoryBreakdown(userID, transactionType string, month, year int) ([]models.CategoryTotal, error) {
	if !models.IsValidTransactionType(transactionType) {
		return nil, models.ErrInvalidTransactionType
	}

	totals, err := s.transactionRepo.GroupByCategory(userID, transactionType, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to build category breakdown: %w", err)
	}

	return totals, nil
}

func (s *summaryService) RecentTransactions(userID string, limit int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = recentTransactionLimit
	}

	transactions, err := s.transactionRepo.GetRecentByUser(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}

	if transactions == nil {
		transactions = []models.Transaction{}
	}

	return transactions, nil
}

// DashboardSummary assembles the current month's totals, the five most
// recent transactions and the month's expense breakdown.
func (s *summaryService) DashboardSummary(userID string) (*dto.DashboardSummary, error) {
	now := s.now()
	month := int(now.Month())
	year := now.Year()

	start := time.Now()
	defer func() {
		s.metrics.RecordProcessingTime("summary.build", time.Since(start))
	}()

	summary, err := s.MonthlySummary(userID, month, year)
	if err != nil {
		return nil, err
	}

	recent, err := s.RecentTransactions(userID, recentTransactionLimit)
	if err != nil {
		return nil, err
	}

	expenseCategories, err := s.CategoryBreakdown(userID, models.TransactionTypeExpense, month, year)
	if err != nil {
		return nil, err
	}

	if expenseCategories == nil {
		expenseCategories = []models.CategoryTotal{}
	}

	slog.Debug("dashboard summary generated",
		"user_id", userID,
		"income", summary.IncomeTotal.String(),
		"expense", summary.ExpenseTotal.String())

	return &dto.DashboardSummary{
		IncomeTotal:        summary.IncomeTotal,
		ExpenseTotal:       summary.ExpenseTotal,
		Balance:            summary.Balance,
		RecentTransactions: recent,
		ExpenseCategories:  expenseCategories,
		CurrentMonth:       now.Format("January 2006"),
	}, nil
}
