package models

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"

	// Length limits count characters, matching the varchar column widths.
	MaxTitleLength    = 200
	MaxCategoryLength = 50
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrMissingUserID          = errors.New("transaction user ID is required")
	ErrTitleRequired          = errors.New("transaction title is required")
	ErrTitleTooLong           = errors.New("transaction title too long")
	ErrCategoryRequired       = errors.New("transaction category is required")
	ErrCategoryTooLong        = errors.New("transaction category too long")
)

// Transaction is a single income or expense entry in a user's ledger.
// Category is stored as plain text rather than a foreign key to
// Category.name, so entries may reference categories that no longer
// exist in the seed table.
type Transaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID          string          `gorm:"type:varchar(255);not null;index" json:"user_id"`
	Title           string          `gorm:"type:varchar(200);not null" json:"title"`
	Amount          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	TransactionType string          `gorm:"type:varchar(20);not null;index" json:"transaction_type"`
	Category        string          `gorm:"type:varchar(50);not null;index" json:"category"`
	Description     string          `gorm:"type:text" json:"description,omitempty"`
	TransactionDate time.Time       `gorm:"type:date;not null;index" json:"transaction_date"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()

	if t.TransactionDate.IsZero() {
		t.TransactionDate = DateOnly(now)
	}

	// Set timestamps if not already set (for tests)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == "" {
		return ErrMissingUserID
	}

	if t.Title == "" {
		return ErrTitleRequired
	}

	if utf8.RuneCountInString(t.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}

	if !IsValidTransactionType(t.TransactionType) {
		return ErrInvalidTransactionType
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.Category == "" {
		return ErrCategoryRequired
	}

	if utf8.RuneCountInString(t.Category) > MaxCategoryLength {
		return ErrCategoryTooLong
	}

	return nil
}

// IsIncome returns true for income entries
func (t *Transaction) IsIncome() bool {
	return t.TransactionType == TransactionTypeIncome
}

// IsExpense returns true for expense entries
func (t *Transaction) IsExpense() bool {
	return t.TransactionType == TransactionTypeExpense
}

// SignedAmount returns the amount negated for expenses, so a sequence of
// entries can be folded into a balance directly.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.IsExpense() {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// DateOnly truncates an instant to its calendar date in the local clock.
// Transaction dates carry no time component.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
