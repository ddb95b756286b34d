package utils

import "testing"

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		code   string
		want   string
	}{
		{"inr with grouping", 125000, "INR", "₹125,000.00"},
		{"usd", 1234.5, "USD", "$1,234.50"},
		{"eur", 99.99, "EUR", "€99.99"},
		{"jpy no decimals", 15000, "JPY", "¥15,000"},
		{"vnd no decimals", 2500000, "VND", "₫2,500,000"},
		{"unknown code", 500, "XYZ", "XYZ 500.00"},
		{"empty code", 500, "", "500.00"},
		{"lowercase code", 100, "usd", "$100.00"},
		{"negative", -1234.56, "USD", "$-1,234.56"},
		{"zero", 0, "INR", "₹0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCurrency(tt.amount, tt.code); got != tt.want {
				t.Errorf("FormatCurrency(%v, %q) = %q, want %q", tt.amount, tt.code, got, tt.want)
			}
		})
	}
}
