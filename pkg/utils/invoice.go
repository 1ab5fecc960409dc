package utils

import "fmt"

// NextInvoiceNumber formats the invoice number that follows lastNumber for a
// ledger, e.g. NextInvoiceNumber("V", 0) == "V000001". The caller owns the
// counter; numbers are never reused once issued, even after cancellation.
func NextInvoiceNumber(prefix string, lastNumber int) string {
	return fmt.Sprintf("%s%06d", prefix, lastNumber+1)
}
