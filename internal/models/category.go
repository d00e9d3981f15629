package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryTypeIncome  = "income"
	CategoryTypeExpense = "expense"

	DefaultCategoryIcon = "dollar-sign"
)

var (
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrInvalidCategoryType  = errors.New("invalid category type")
)

// Category is a global, shared tag for transactions. Categories are
// seeded once at startup and never mutated afterwards. Transactions
// reference them by name only.
type Category struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name         string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	CategoryType string    `gorm:"type:varchar(20);not null" json:"category_type"`
	Icon         string    `gorm:"type:varchar(50);default:'dollar-sign'" json:"icon"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	if c.Icon == "" {
		c.Icon = DefaultCategoryIcon
	}

	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}

	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if c.Name == "" {
		return ErrCategoryNameRequired
	}

	if c.CategoryType != CategoryTypeIncome && c.CategoryType != CategoryTypeExpense {
		return ErrInvalidCategoryType
	}

	return nil
}

// IsIncome returns true for income categories
func (c *Category) IsIncome() bool {
	return c.CategoryType == CategoryTypeIncome
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}

// DefaultCategories is the fixed seed list: name, type and feather icon
// hint for each predefined category. Seeding is idempotent on name.
func DefaultCategories() []Category {
	return []Category{
		// Income categories
		{Name: "Salary", CategoryType: CategoryTypeIncome, Icon: "briefcase"},
		{Name: "Freelance", CategoryType: CategoryTypeIncome, Icon: "edit-3"},
		{Name: "Investment", CategoryType: CategoryTypeIncome, Icon: "trending-up"},
		{Name: "Gift", CategoryType: CategoryTypeIncome, Icon: "gift"},
		{Name: "Other Income", CategoryType: CategoryTypeIncome, Icon: "plus"},

		// Expense categories
		{Name: "Food & Dining", CategoryType: CategoryTypeExpense, Icon: "coffee"},
		{Name: "Transportation", CategoryType: CategoryTypeExpense, Icon: "truck"},
		{Name: "Shopping", CategoryType: CategoryTypeExpense, Icon: "shopping-bag"},
		{Name: "Entertainment", CategoryType: CategoryTypeExpense, Icon: "film"},
		{Name: "Bills & Utilities", CategoryType: CategoryTypeExpense, Icon: "zap"},
		{Name: "Healthcare", CategoryType: CategoryTypeExpense, Icon: "heart"},
		{Name: "Education", CategoryType: CategoryTypeExpense, Icon: "book"},
		{Name: "Travel", CategoryType: CategoryTypeExpense, Icon: "map-pin"},
		{Name: "Other Expense", CategoryType: CategoryTypeExpense, Icon: "minus"},
	}
}
