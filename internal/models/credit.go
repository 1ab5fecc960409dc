package models

import "time"

type CreditStatus string

const (
	CreditPending   CreditStatus = "pending"
	CreditPaid      CreditStatus = "paid"
	CreditCancelled CreditStatus = "cancelled"
)

// CreditItem has no per-item discount; discounts only exist on direct sales.
type CreditItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Credit is a store account-receivable. RemainingAmount always equals the
// total minus the sum of non-voided payments and never goes below zero.
type Credit struct {
	ID                 string       `json:"id"`
	InvoiceNumber      string       `json:"invoice_number"`
	CustomerID         string       `json:"customer_id"`
	Items              []CreditItem `json:"items"`
	Total              float64      `json:"total"`
	RemainingAmount    float64      `json:"remaining_amount"`
	DueDate            time.Time    `json:"due_date"`
	Status             CreditStatus `json:"status"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
	CancelledAt        *time.Time   `json:"cancelled_at,omitempty"`
	CancellationReason string       `json:"cancellation_reason,omitempty"`
}

// CreditPayment is append-only. Payments on a cancelled credit are kept with
// Voided set instead of being deleted, so the receipt trail survives.
type CreditPayment struct {
	ID            string        `json:"id"`
	CreditID      string        `json:"credit_id"`
	Amount        float64       `json:"amount"`
	Date          time.Time     `json:"date"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Voided        bool          `json:"voided,omitempty"`
}

// CreditCustomer is the full credit-context customer record.
type CreditCustomer struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCreditRequest represents the request body for opening a credit
type CreateCreditRequest struct {
	CustomerID string       `json:"customer_id"`
	Items      []CreditItem `json:"items"`
	DueDate    time.Time    `json:"due_date"`
}

// CreatePaymentRequest represents the request body for paying into a credit
type CreatePaymentRequest struct {
	Amount        float64       `json:"amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

// CancelCreditRequest represents the request body for cancelling a credit
type CancelCreditRequest struct {
	Reason string `json:"reason"`
}

// CreateCreditCustomerRequest represents the request body for registering a customer
type CreateCreditCustomerRequest struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
