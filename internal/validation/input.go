package validation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/bruxa61/financas/internal/models"
)

// Rejection reasons for raw transaction input. Callers match with
// errors.Is; the wrapped message names the offending field or value so
// a form can be re-rendered with context.
var (
	ErrMissingField  = errors.New("missing required field")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDate   = errors.New("invalid date")
)

// TransactionInput carries raw (string) field values as submitted by a
// client, before any normalization.
type TransactionInput struct {
	Title           string `json:"title" form:"title" validate:"required"`
	Amount          string `json:"amount" form:"amount" validate:"required"`
	TransactionType string `json:"transaction_type" form:"transaction_type" validate:"required,transaction_type"`
	Category        string `json:"category" form:"category" validate:"required"`
	Description     string `json:"description" form:"description"`
	TransactionDate string `json:"transaction_date" form:"transaction_date" validate:"omitempty,ledger_date"`
}

// TransactionDraft is a normalized, accepted payload ready for the
// ledger store. It carries no identity or audit fields; the store
// assigns those on create.
type TransactionDraft struct {
	Title           string
	Amount          decimal.Decimal
	TransactionType string
	Category        string
	Description     string
	TransactionDate time.Time
}

// ParseTransactionInput normalizes and validates raw transaction fields,
// defaulting an omitted date to today. The category text is accepted
// verbatim; it is deliberately not checked against the category table.
func ParseTransactionInput(input TransactionInput) (*TransactionDraft, error) {
	return ParseTransactionInputAt(input, time.Now())
}

// ParseTransactionInputAt is ParseTransactionInput with an explicit
// notion of "now" for the date default.
func ParseTransactionInputAt(input TransactionInput, now time.Time) (*TransactionDraft, error) {
	trimmed := TransactionInput{
		Title:           strings.TrimSpace(input.Title),
		Amount:          strings.TrimSpace(input.Amount),
		TransactionType: strings.TrimSpace(input.TransactionType),
		Category:        strings.TrimSpace(input.Category),
		Description:     strings.TrimSpace(input.Description),
		TransactionDate: strings.TrimSpace(input.TransactionDate),
	}

	if err := GetValidator().GetValidate().Struct(trimmed); err != nil {
		return nil, mapFieldErrors(err)
	}

	amount, err := decimal.NewFromString(trimmed.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, trimmed.Amount)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: must be greater than zero", ErrInvalidAmount)
	}

	transactionDate := models.DateOnly(now)
	if trimmed.TransactionDate != "" {
		parsed, err := time.Parse(DateLayout, trimmed.TransactionDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, trimmed.TransactionDate)
		}
		transactionDate = parsed
	}

	return &TransactionDraft{
		Title:           trimmed.Title,
		Amount:          amount,
		TransactionType: trimmed.TransactionType,
		Category:        trimmed.Category,
		Description:     trimmed.Description,
		TransactionDate: transactionDate,
	}, nil
}

// mapFieldErrors translates go-playground validation failures into the
// rejection taxonomy, keeping the first offending field in the message
func mapFieldErrors(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrMissingField, err)
	}

	first := fieldErrs[0]
	switch first.Tag() {
	case "ledger_date":
		return fmt.Errorf("%w: %q", ErrInvalidDate, first.Value())
	case "transaction_type":
		return fmt.Errorf("%w: %q", models.ErrInvalidTransactionType, first.Value())
	default:
		return fmt.Errorf("%w: %s", ErrMissingField, first.Field())
	}
}
