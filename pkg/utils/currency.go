package utils

import (
	"fmt"
	"strings"
)

var currencySymbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"AED": "د.إ",
	"THB": "฿",
	"VND": "₫",
	"JPY": "¥",
}

// zeroDecimalCurrencies are rendered without a fractional part.
var zeroDecimalCurrencies = map[string]bool{
	"JPY": true,
	"VND": true,
}

// FormatCurrency renders an amount in the base currency for display.
// Unknown codes fall back to "CODE 1,234.00".
func FormatCurrency(amount float64, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))

	decimals := 2
	if zeroDecimalCurrencies[code] {
		decimals = 0
	}

	formatted := groupDigits(amount, decimals)

	symbol, ok := currencySymbols[code]
	if !ok {
		if code == "" {
			return formatted
		}
		return code + " " + formatted
	}
	return symbol + formatted
}

func groupDigits(amount float64, decimals int) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	s := fmt.Sprintf("%.*f", decimals, amount)
	intPart := s
	fracPart := ""
	if decimals > 0 {
		intPart = s[:len(s)-decimals-1]
		fracPart = s[len(s)-decimals-1:]
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString(fracPart)
	return b.String()
}
