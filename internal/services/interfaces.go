package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/bruxa61/financas/internal/dto"
	"github.com/bruxa61/financas/internal/models"
	"github.com/bruxa61/financas/internal/validation"
)

// TransactionServiceInterface defines transaction-related business operations
type TransactionServiceInterface interface {
	CreateTransaction(userID string, input validation.TransactionInput) (*models.Transaction, error)
	GetTransaction(userID string, transactionID uuid.UUID) (*models.Transaction, error)
	UpdateTransaction(userID string, transactionID uuid.UUID, input validation.TransactionInput) (*models.Transaction, error)
	DeleteTransaction(userID string, transactionID uuid.UUID) error

	// ListTransactions returns one fixed-size page of the user's history,
	// newest first, narrowed by whatever filters are set.
	ListTransactions(userID string, page int, filters models.TransactionFilters) (*dto.TransactionPage, error)
}

// SummaryServiceInterface defines monthly aggregate operations
type SummaryServiceInterface interface {
	MonthlySummary(userID string, month, year int) (*dto.MonthlySummary, error)
	CategoryBreakdown(userID, transactionType string, month, year int) ([]models.CategoryTotal, error)
	RecentTransactions(userID string, limit int) ([]models.Transaction, error)
	DashboardSummary(userID string) (*dto.DashboardSummary, error)
}

// ReportServiceInterface builds the trailing twelve month report
type ReportServiceInterface interface {
	YearlyReport(userID string) (*dto.YearlyReport, error)
}

// CategorySeederInterface manages the default category catalog
type CategorySeederInterface interface {
	EnsureDefaults() error
	ListCategories() ([]models.Category, error)
}

// MetricsRecorderInterface records operational metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}

// TransactionGeneratorInterface generates realistic ledger data for development
type TransactionGeneratorInterface interface {
	GenerateHistory(userID string, months, perMonth int) []models.Transaction
}
