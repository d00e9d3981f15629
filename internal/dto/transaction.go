package dto

import (
	"github.com/bruxa61/financas/internal/models"
)

// Transaction Request DTOs

// ListTransactionsRequest represents query parameters for listing transactions
type ListTransactionsRequest struct {
	Page     int    `query:"page"`
	Category string `query:"category"`
	Type     string `query:"type"`
}

// Transaction Response DTOs

// TransactionPage represents one page of a user's transaction history
type TransactionPage struct {
	Transactions []models.Transaction      `json:"transactions"`
	Pagination   PageInfo                  `json:"pagination"`
	Filters      models.TransactionFilters `json:"filters"`
}

// PageInfo represents pagination metadata
type PageInfo struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
	TotalCount int64 `json:"totalCount"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
