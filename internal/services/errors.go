package services

import "errors"

var (
	// ErrInvalidPaymentMethod is returned when a payment method is not one
	// of cash, card or transfer.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrInvalidPaymentAmount covers payments that are zero, negative, or
	// larger than the credit's remaining balance.
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")

	// ErrCreditClosed is returned when a payment targets a cancelled credit.
	ErrCreditClosed = errors.New("credit is cancelled")

	// ErrCustomerHasPendingCredits blocks deletion of a credit customer
	// that still owes money.
	ErrCustomerHasPendingCredits = errors.New("customer has pending credits")

	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidDateRange is returned when a report range is malformed.
	ErrInvalidDateRange = errors.New("invalid date range")
)
