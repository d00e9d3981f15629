package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/bruxa61/financas/internal/dto"
	"github.com/bruxa61/financas/internal/models"
	"github.com/bruxa61/financas/internal/repositories"
)

// reportMonths is the number of monthly entries in the yearly report.
const reportMonths = 12

type reportService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
	now             func() time.Time
}

// NewReportService creates a new report service
func NewReportService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) ReportServiceInterface {
	return &reportService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
		now:             time.Now,
	}
}

// YearlyReport builds the trailing twelve month view plus the current
// year's category breakdowns.
//
// The month sequence is derived by stepping back in fixed 30 day
// increments from the reference time, oldest entry first. Around
// month-length boundaries this can skip or repeat a calendar month; the
// entries report whichever month each step lands on.
func (s *reportService) YearlyReport(userID string) (*dto.YearlyReport, error) {
	now := s.now()

	start := time.Now()
	defer func() {
		s.metrics.RecordProcessingTime("report.build", time.Since(start))
	}()

	monthly := make([]dto.MonthlyEntry, 0, reportMonths)

	for i := reportMonths - 1; i >= 0; i-- {
		ref := now.Add(-time.Duration(i) * 30 * 24 * time.Hour)
		month := int(ref.Month())
		year := ref.Year()

		income, err := s.transactionRepo.SumAmount(userID, models.TransactionTypeIncome, month, year)
		if err != nil {
			return nil, fmt.Errorf("failed to sum income for %d-%02d: %w", year, month, err)
		}

		expense, err := s.transactionRepo.SumAmount(userID, models.TransactionTypeExpense, month, year)
		if err != nil {
			return nil, fmt.Errorf("failed to sum expenses for %d-%02d: %w", year, month, err)
		}

		monthly = append(monthly, dto.MonthlyEntry{
			Month:   ref.Format("Jan 2006"),
			Income:  income,
			Expense: expense,
			Balance: income.Sub(expense),
		})
	}

	year := now.Year()

	incomeCategories, err := s.transactionRepo.GroupByCategoryYear(userID, models.TransactionTypeIncome, year)
	if err != nil {
		return nil, fmt.Errorf("failed to build income breakdown: %w", err)
	}

	expenseCategories, err := s.transactionRepo.GroupByCategoryYear(userID, models.TransactionTypeExpense, year)
	if err != nil {
		return nil, fmt.Errorf("failed to build expense breakdown: %w", err)
	}

	if incomeCategories == nil {
		incomeCategories = []models.CategoryTotal{}
	}
	if expenseCategories == nil {
		expenseCategories = []models.CategoryTotal{}
	}

	slog.Debug("yearly report generated",
		"user_id", userID,
		"entries", len(monthly),
		"year", year)

	return &dto.YearlyReport{
		MonthlyData:       monthly,
		IncomeCategories:  incomeCategories,
		ExpenseCategories: expenseCategories,
		CurrentYear:       year,
	}, nil
}
