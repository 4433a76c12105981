package dto

type CreateExpenseRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// ManualExpenseRequest is the body of the non-classified insertion path.
// Category and UserID are optional; UserID is honored only for admin callers.
type ManualExpenseRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category,omitempty"`
	UserID      string  `json:"user_id,omitempty"`
}

type ExpenseResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	Amount         float64 `json:"amount"`
	Description    string  `json:"description"`
	Category       string  `json:"category"`
	Currency       string  `json:"currency"`
	CurrencySymbol string  `json:"currency_symbol"`
	CreatedAt      string  `json:"created_at"`
}

type CreateExpenseResponse struct {
	Message string          `json:"message"`
	Data    ExpenseResponse `json:"data"`
}

type ManualExpenseResponse struct {
	Success bool            `json:"success"`
	Data    ExpenseResponse `json:"data"`
}

type DeleteExpenseResponse struct {
	Message string `json:"message"`
}

type CategorySummaryResponse struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}
