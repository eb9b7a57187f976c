package services

import (
	"testing"

	"bridal_erp_backend/internal/models"
)

func TestClassifyPayment(t *testing.T) {
	tests := []struct {
		name       string
		grandTotal float64
		payments   []models.PaymentEntry
		want       string
	}{
		{"No payments on a non-zero total is due", 500, nil, PaymentStatusDue},
		{"Partial payment", 500, []models.PaymentEntry{{Amount: 200}}, PaymentStatusPartial},
		{"Exact payment is paid", 500, []models.PaymentEntry{{Amount: 300}, {Amount: 200}}, PaymentStatusPaid},
		{"Overpayment is still paid", 500, []models.PaymentEntry{{Amount: 600}}, PaymentStatusPaid},
		{"Zero total with no payments is paid", 0, nil, PaymentStatusPaid},
		{"One unit short stays partial", 500, []models.PaymentEntry{{Amount: 499.99}}, PaymentStatusPartial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyPayment(tt.grandTotal, tt.payments); got != tt.want {
				t.Errorf("ClassifyPayment(%v, %v entries) = %q, want %q", tt.grandTotal, len(tt.payments), got, tt.want)
			}
		})
	}
}

func TestBalanceDue(t *testing.T) {
	payments := []models.PaymentEntry{{Amount: 120}, {Amount: 80}}
	if got := BalanceDue(500, payments); got != 300 {
		t.Errorf("BalanceDue(500, 200 paid) = %v, want 300", got)
	}
	if got := BalanceDue(150, payments); got != -50 {
		t.Errorf("BalanceDue(150, 200 paid) = %v, want -50", got)
	}
}

func TestQuickPayAmount(t *testing.T) {
	tests := []struct {
		name       string
		grandTotal float64
		percent    float64
		want       float64
	}{
		{"Half of the total", 840, 50, 420},
		{"Full total", 840, 100, 840},
		{"Negative total yields zero", -100, 50, 0},
		{"Negative percent yields zero", 100, -50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuickPayAmount(tt.grandTotal, tt.percent); got != tt.want {
				t.Errorf("QuickPayAmount(%v, %v) = %v, want %v", tt.grandTotal, tt.percent, got, tt.want)
			}
		})
	}
}

func TestIsValidPaymentMethod(t *testing.T) {
	for _, method := range []string{PaymentMethodCash, PaymentMethodCard, PaymentMethodBank} {
		if !IsValidPaymentMethod(method) {
			t.Errorf("IsValidPaymentMethod(%q) = false, want true", method)
		}
	}
	for _, method := range []string{"", "cheque", "CASH"} {
		if IsValidPaymentMethod(method) {
			t.Errorf("IsValidPaymentMethod(%q) = true, want false", method)
		}
	}
}
