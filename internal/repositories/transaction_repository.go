package repositories

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bruxa61/financas/internal/models"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create persists a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByIDForUser retrieves a transaction by ID, scoped to its owner.
// A transaction owned by a different user is reported as not found.
func (r *transactionRepository) GetByIDForUser(id uuid.UUID, userID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// Update saves a modified transaction
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	if err := r.db.Save(transaction).Error; err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return nil
}

// DeleteForUser deletes a transaction, scoped to its owner
func (r *transactionRepository) DeleteForUser(id uuid.UUID, userID string) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Transaction{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// ListByUser retrieves a user's transactions with optional exact-match
// filters and offset pagination, newest transaction date first. Ties on
// the date are broken by ID descending so page boundaries are stable.
func (r *transactionRepository) ListByUser(userID string, filters models.TransactionFilters, offset, limit int) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := r.db.Model(&models.Transaction{}).Where("user_id = ?", userID)

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.TransactionType != "" {
		query = query.Where("transaction_type = ?", filters.TransactionType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	if err := query.Offset(offset).Limit(limit).
		Order("transaction_date DESC, id DESC").
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, total, nil
}

// GetRecentByUser retrieves the most recent transactions for a user,
// regardless of type
func (r *transactionRepository) GetRecentByUser(userID string, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("user_id = ?", userID).
		Order("transaction_date DESC, id DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}
	return transactions, nil
}

// CountByUser returns the number of transactions a user owns
func (r *transactionRepository) CountByUser(userID string) (int64, error) {
	var total int64
	if err := r.db.Model(&models.Transaction{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return total, nil
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// SumAmount returns the total amount for a user, type and calendar month
func (r *transactionRepository) SumAmount(userID, transactionType string, month, year int) (decimal.Decimal, error) {
	start, end := monthWindow(month, year)
	return r.sumAmountBetween(userID, transactionType, start, end)
}

// SumAmountByYear returns the total amount for a user, type and calendar year
func (r *transactionRepository) SumAmountByYear(userID, transactionType string, year int) (decimal.Decimal, error) {
	start, end := yearWindow(year)
	return r.sumAmountBetween(userID, transactionType, start, end)
}

// GroupByCategory returns per-category totals for a calendar month,
// largest total first
func (r *transactionRepository) GroupByCategory(userID, transactionType string, month, year int) ([]models.CategoryTotal, error) {
	start, end := monthWindow(month, year)
	return r.groupByCategoryBetween(userID, transactionType, start, end)
}

// GroupByCategoryYear returns per-category totals for a calendar year,
// largest total first
func (r *transactionRepository) GroupByCategoryYear(userID, transactionType string, year int) ([]models.CategoryTotal, error) {
	start, end := yearWindow(year)
	return r.groupByCategoryBetween(userID, transactionType, start, end)
}

// DeleteByUser removes every transaction owned by a user
func (r *transactionRepository) DeleteByUser(userID string) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&models.Transaction{}).Error; err != nil {
		return fmt.Errorf("failed to delete user transactions: %w", err)
	}
	return nil
}

// Amounts are summed in Go rather than with SQL SUM so the totals keep
// exact decimal precision under both the postgres and sqlite dialects.
func (r *transactionRepository) sumAmountBetween(userID, transactionType string, start, end time.Time) (decimal.Decimal, error) {
	var amounts []decimal.Decimal
	if err := r.db.Model(&models.Transaction{}).
		Where("user_id = ? AND transaction_type = ?", userID, transactionType).
		Where("transaction_date >= ? AND transaction_date < ?", start, end).
		Pluck("amount", &amounts).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transaction amounts: %w", err)
	}

	total := decimal.Zero
	for _, amount := range amounts {
		total = total.Add(amount)
	}
	return total, nil
}

func (r *transactionRepository) groupByCategoryBetween(userID, transactionType string, start, end time.Time) ([]models.CategoryTotal, error) {
	var rows []struct {
		Category string
		Amount   decimal.Decimal
	}
	if err := r.db.Model(&models.Transaction{}).
		Select("category, amount").
		Where("user_id = ? AND transaction_type = ?", userID, transactionType).
		Where("transaction_date >= ? AND transaction_date < ?", start, end).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to group transactions by category: %w", err)
	}

	byCategory := make(map[string]decimal.Decimal)
	for _, row := range rows {
		byCategory[row.Category] = byCategory[row.Category].Add(row.Amount)
	}

	totals := make([]models.CategoryTotal, 0, len(byCategory))
	for category, total := range byCategory {
		totals = append(totals, models.CategoryTotal{Category: category, Total: total})
	}

	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].Total.Equal(totals[j].Total) {
			return totals[i].Total.GreaterThan(totals[j].Total)
		}
		return totals[i].Category < totals[j].Category
	})

	return totals, nil
}

// monthWindow returns the half-open range [first of month, first of next month)
func monthWindow(month, year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// yearWindow returns the half-open range [Jan 1, Jan 1 of next year)
func yearWindow(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(1, 0, 0)
}
