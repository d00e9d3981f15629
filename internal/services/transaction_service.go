package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bruxa61/financas/internal/dto"
	"github.com/bruxa61/financas/internal/models"
	"github.com/bruxa61/financas/internal/repositories"
	"github.com/bruxa61/financas/internal/validation"
)

// DefaultPageSize is the fixed page size for transaction history listings.
const DefaultPageSize = 20

type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
	now             func() time.Time
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
		now:             time.Now,
	}
}

// CreateTransaction validates the raw input and, only if every field is
// acceptable, persists a new transaction for the user. Invalid input
// leaves the store untouched.
func (s *transactionService) CreateTransaction(userID string, input validation.TransactionInput) (*models.Transaction, error) {
	draft, err := validation.ParseTransactionInputAt(input, s.now())
	if err != nil {
		s.metrics.IncrementCounter("transaction.rejected", map[string]string{"operation": "create"})
		return nil, err
	}

	transaction := &models.Transaction{
		UserID:          userID,
		Title:           draft.Title,
		Amount:          draft.Amount,
		TransactionType: draft.TransactionType,
		Category:        draft.Category,
		Description:     draft.Description,
		TransactionDate: draft.TransactionDate,
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		slog.Error("failed to create transaction",
			"user_id", userID,
			"error", err)
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.metrics.IncrementCounter("transaction.created", map[string]string{"type": transaction.TransactionType})

	slog.Info("transaction created",
		"transaction_id", transaction.ID,
		"user_id", userID,
		"type", transaction.TransactionType,
		"amount", transaction.Amount.String())

	return transaction, nil
}

func (s *transactionService) GetTransaction(userID string, transactionID uuid.UUID) (*models.Transaction, error) {
	return s.transactionRepo.GetByIDForUser(transactionID, userID)
}

// UpdateTransaction replaces every user-editable field of an existing
// transaction with the validated input. Identity, ownership and the
// creation timestamp are preserved.
func (s *transactionService) UpdateTransaction(userID string, transactionID uuid.UUID, input validation.TransactionInput) (*models.Transaction, error) {
	draft, err := validation.ParseTransactionInputAt(input, s.now())
	if err != nil {
		s.metrics.IncrementCounter("transaction.rejected", map[string]string{"operation": "update"})
		return nil, err
	}

	transaction, err := s.transactionRepo.GetByIDForUser(transactionID, userID)
	if err != nil {
		return nil, err
	}

	transaction.Title = draft.Title
	transaction.Amount = draft.Amount
	transaction.TransactionType = draft.TransactionType
	transaction.Category = draft.Category
	transaction.Description = draft.Description
	transaction.TransactionDate = draft.TransactionDate

	if err := s.transactionRepo.Update(transaction); err != nil {
		slog.Error("failed to update transaction",
			"transaction_id", transactionID,
			"user_id", userID,
			"error", err)
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.metrics.IncrementCounter("transaction.updated", map[string]string{"type": transaction.TransactionType})

	slog.Info("transaction updated",
		"transaction_id", transactionID,
		"user_id", userID)

	return transaction, nil
}

func (s *transactionService) DeleteTransaction(userID string, transactionID uuid.UUID) error {
	if err := s.transactionRepo.DeleteForUser(transactionID, userID); err != nil {
		return err
	}

	s.metrics.IncrementCounter("transaction.deleted", nil)

	slog.Info("transaction deleted",
		"transaction_id", transactionID,
		"user_id", userID)

	return nil
}

// ListTransactions returns the requested page of the user's history.
// Page numbers below one are treated as the first page; pages past the
// end come back empty with the pagination metadata intact.
func (s *transactionService) ListTransactions(userID string, page int, filters models.TransactionFilters) (*dto.TransactionPage, error) {
	if page < 1 {
		page = 1
	}

	start := time.Now()
	defer func() {
		s.metrics.RecordProcessingTime("transaction.list", time.Since(start))
	}()

	offset := (page - 1) * DefaultPageSize

	transactions, total, err := s.transactionRepo.ListByUser(userID, filters, offset, DefaultPageSize)
	if err != nil {
		slog.Error("failed to list transactions",
			"user_id", userID,
			"page", page,
			"error", err)
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	if transactions == nil {
		transactions = []models.Transaction{}
	}

	totalPages := int((total + DefaultPageSize - 1) / DefaultPageSize)

	return &dto.TransactionPage{
		Transactions: transactions,
		Pagination: dto.PageInfo{
			Page:       page,
			PageSize:   DefaultPageSize,
			TotalPages: totalPages,
			TotalCount: total,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
		Filters: filters,
	}, nil
}
