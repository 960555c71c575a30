package currency

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/Softx0/web-cuentas-bancarias/internal/constants"
)

// Format renders an amount in minor units with its currency symbol,
// e.g. Format(2500000, "DOP") -> "$25,000.00".
func Format(cents int64, code string) string {
	m := money.New(cents, code)
	return m.Display()
}

// FormatSigned prefixes positive amounts with "+", used for transaction rows
// where the direction matters.
func FormatSigned(cents int64, code string) string {
	if cents > 0 {
		return "+" + Format(cents, code)
	}
	return Format(cents, code)
}

// ParseToCents converts a user-entered decimal amount ("150", "150.5",
// "150.50") into minor units without going through floats.
func ParseToCents(amountStr string) (int64, error) {
	amountStr = strings.TrimSpace(amountStr)
	if amountStr == "" {
		return 0, fmt.Errorf("amount is empty")
	}

	d, err := decimal.NewFromString(amountStr)
	if err != nil {
		return 0, fmt.Errorf("invalid amount format: %s", amountStr)
	}

	cents := d.Mul(decimal.NewFromInt(constants.CentsPerUnit))
	if !cents.IsInteger() {
		return 0, fmt.Errorf("amount %s has more than 2 decimal places", amountStr)
	}
	if !cents.BigInt().IsInt64() {
		return 0, fmt.Errorf("amount %s is out of range", amountStr)
	}

	return cents.IntPart(), nil
}

// ValidateCode checks a 3-letter ISO-style currency code.
func ValidateCode(code string) error {
	code = strings.TrimSpace(strings.ToUpper(code))

	if len(code) != 3 {
		return fmt.Errorf("currency code must be 3 characters (e.g. DOP)")
	}
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return fmt.Errorf("currency code must contain only letters")
		}
	}
	return nil
}
