package models

import "github.com/shopspring/decimal"

// CategoryTotal is one slice of a category breakdown: a category name
// and the summed amount of matching transactions. Categories with no
// matching transactions never appear in a breakdown.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}
