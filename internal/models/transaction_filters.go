package models

// TransactionFilters contains filtering options for ledger listings.
// Empty fields mean no filter; both matches are exact.
type TransactionFilters struct {
	Category        string `query:"category" json:"category,omitempty"`
	TransactionType string `query:"type" json:"transaction_type,omitempty"`
}

// IsZero reports whether no filter is active
func (f TransactionFilters) IsZero() bool {
	return f.Category == "" && f.TransactionType == ""
}
