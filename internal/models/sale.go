package models

import "time"

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}

type SaleStatus string

const (
	SaleCompleted SaleStatus = "completed"
	SaleCancelled SaleStatus = "cancelled"
)

type SaleItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Discount  float64 `json:"discount"`
}

// Sale is a completed point-of-sale transaction. A sale created by paying off
// a credit in full carries the originating credit's id in CreditID;
// VoidedByCredit marks a mirrored sale cancelled because that credit was
// later cancelled.
type Sale struct {
	ID                 string        `json:"id"`
	InvoiceNumber      string        `json:"invoice_number"`
	CustomerID         string        `json:"customer_id"`
	Items              []SaleItem    `json:"items"`
	Subtotal           float64       `json:"subtotal"`
	Discount           float64       `json:"discount"`
	Total              float64       `json:"total"`
	PaymentMethod      PaymentMethod `json:"payment_method"`
	Status             SaleStatus    `json:"status"`
	CreatedAt          time.Time     `json:"created_at"`
	CancelledAt        *time.Time    `json:"cancelled_at,omitempty"`
	CancellationReason string        `json:"cancellation_reason,omitempty"`
	CreditID           string        `json:"credit_id,omitempty"`
	VoidedByCredit     bool          `json:"voided_by_credit,omitempty"`
}

// SaleCustomer is the thin sales-context customer, auto-created per sale by
// name. It is a different record from the credit-context customer even when
// the names match.
type SaleCustomer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateSaleRequest represents the request body for recording a sale
type CreateSaleRequest struct {
	CustomerName  string        `json:"customer_name"`
	Items         []SaleItem    `json:"items"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

// CancelSaleRequest represents the request body for cancelling a sale
type CancelSaleRequest struct {
	Reason string `json:"reason"`
}
