package services

import "bridal_erp_backend/internal/models"

// Payment status constants
const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPartial = "partial"
	PaymentStatusDue     = "due"
)

// Payment method constants
const (
	PaymentMethodCash = "cash"
	PaymentMethodCard = "card"
	PaymentMethodBank = "bank"
)

// TotalPaid sums all payment entries against an order.
func TotalPaid(payments []models.PaymentEntry) float64 {
	var total float64
	for _, payment := range payments {
		total += payment.Amount
	}
	return total
}

// BalanceDue is the amount still owed on the order.
func BalanceDue(grandTotal float64, payments []models.PaymentEntry) float64 {
	return grandTotal - TotalPaid(payments)
}

// ClassifyPayment maps paid-to-date against the grand total onto the
// three-way payment status.
func ClassifyPayment(grandTotal float64, payments []models.PaymentEntry) string {
	paid := TotalPaid(payments)
	switch {
	case paid >= grandTotal:
		return PaymentStatusPaid
	case paid > 0:
		return PaymentStatusPartial
	default:
		return PaymentStatusDue
	}
}

// QuickPayAmount computes the suggested amount for a quick-pay shortcut
// (e.g. 50% button). It only prefills the amount field; an explicit add
// action is still required to append a payment entry.
func QuickPayAmount(grandTotal, percent float64) float64 {
	if grandTotal < 0 || percent < 0 {
		return 0
	}
	return grandTotal * percent / 100
}

// IsValidPaymentMethod reports whether the method is one the ledger accepts.
func IsValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodBank:
		return true
	default:
		return false
	}
}
