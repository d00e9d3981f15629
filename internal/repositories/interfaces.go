package repositories

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bruxa61/financas/internal/models"
)

// TransactionRepositoryInterface defines the contract for ledger store operations.
//
// Every mutating operation that takes a userID treats ownership as part
// of existence: a transaction that exists but belongs to another user is
// reported as not found, never as forbidden. That conflation is a
// deliberate contract so callers cannot probe for other users' records.
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByIDForUser(id uuid.UUID, userID string) (*models.Transaction, error)
	Update(transaction *models.Transaction) error
	DeleteForUser(id uuid.UUID, userID string) error
	ListByUser(userID string, filters models.TransactionFilters, offset, limit int) ([]models.Transaction, int64, error)
	GetRecentByUser(userID string, limit int) ([]models.Transaction, error)
	CountByUser(userID string) (int64, error)
	CreateBatch(transactions []models.Transaction) error

	// Aggregation reads. Sums are exactly zero, never absent, when no
	// rows match; breakdowns omit categories with no matching rows.
	SumAmount(userID, transactionType string, month, year int) (decimal.Decimal, error)
	SumAmountByYear(userID, transactionType string, year int) (decimal.Decimal, error)
	GroupByCategory(userID, transactionType string, month, year int) ([]models.CategoryTotal, error)
	GroupByCategoryYear(userID, transactionType string, year int) ([]models.CategoryTotal, error)

	// DeleteByUser removes every transaction owned by a user. Used by
	// the user cascade; callers pass the surrounding gorm transaction.
	DeleteByUser(userID string) error
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByName(name string) (*models.Category, error)
	ExistsByName(name string) (bool, error)
	List() ([]models.Category, error)
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	EnsureExists(user *models.User) error
	GetByID(id string) (*models.User, error)
	// Delete removes the user and, in the same database transaction,
	// every transaction they own. No orphaned transaction survives.
	Delete(id string) error
}
