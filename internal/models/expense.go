package models

import "time"

type Expense struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"category_id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

type ExpenseCategory struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateExpenseRequest represents the request body for recording an expense
type CreateExpenseRequest struct {
	CategoryID  string  `json:"category_id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"` // YYYY-MM-DD
}
