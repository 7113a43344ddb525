package dto

// TransactionInput carries the five editable fields of a transaction. The
// same validated shape is used by both create and update. Amount is a
// pointer so a missing field can be told apart from a zero value.
type TransactionInput struct {
	Description string   `json:"description"`
	Amount      *float64 `json:"amount"`
	Category    string   `json:"category"`
	Date        string   `json:"date"`
	Type        string   `json:"type"`
}

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// Summary holds the current-month totals. MonthlyChange is always zero:
// prior-period comparison is a known stub.
type Summary struct {
	TotalExpenses    float64 `json:"totalExpenses"`
	TotalIncome      float64 `json:"totalIncome"`
	Balance          float64 `json:"balance"`
	TransactionCount int64   `json:"transactionCount"`
	MonthlyChange    float64 `json:"monthlyChange"`
}

// MonthlyPoint is one bucket of the trailing six-month expense trend.
type MonthlyPoint struct {
	Month    string  `json:"month"`
	Expenses float64 `json:"expenses"`
}

// CategoryTotal is one slice of the current-month category breakdown.
type CategoryTotal struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
