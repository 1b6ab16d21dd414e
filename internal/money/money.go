// Package money formats amounts for display in a fixed locale and currency.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"shopwidget/internal/domain"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	DefaultLocale   = "nl-BE"
	DefaultCurrency = "EUR"
	DefaultSymbol   = "€"
)

// MaxCents is the largest amount ParseCents accepts (1 000 000 000.00).
const MaxCents int64 = 100_000_000_000

// Formatter renders minor-unit amounts as localized currency strings.
// It is immutable and safe for concurrent use.
type Formatter struct {
	printer  *message.Printer
	unit     currency.Unit
	symbol   string
	minorDiv float64
}

// New builds a Formatter for a BCP 47 locale and an ISO 4217 currency code.
// An empty symbol falls back to the currency code.
func New(locale, code, symbol string) (*Formatter, error) {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return nil, fmt.Errorf("parse currency %q: %w", code, err)
	}
	if symbol == "" {
		symbol = unit.String()
	}
	return &Formatter{
		printer:  message.NewPrinter(tag),
		unit:     unit,
		symbol:   symbol,
		minorDiv: 100,
	}, nil
}

// MustDefault returns the nl-BE / EUR formatter.
func MustDefault() *Formatter {
	f, err := New(DefaultLocale, DefaultCurrency, DefaultSymbol)
	if err != nil {
		panic(err)
	}
	return f
}

// Format renders cents with two decimals and the locale's separators, e.g. €1.234,50.
func (f *Formatter) Format(cents int64) string {
	amount := float64(cents) / f.minorDiv
	return f.symbol + f.printer.Sprint(number.Decimal(amount, number.Scale(2)))
}

// Currency returns the ISO code the formatter was built for.
func (f *Formatter) Currency() string {
	return f.unit.String()
}

// ParseCents converts a decimal amount such as "10.00" or "5,50" into cents.
// Empty, non-numeric, non-finite, negative and out-of-range inputs are rejected.
func ParseCents(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return 0, fmt.Errorf("%w: empty", domain.ErrInvalidPrice)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidPrice, s)
	}
	cents := math.Round(f * 100)
	if cents > float64(MaxCents) {
		return 0, fmt.Errorf("%w: %q exceeds maximum", domain.ErrInvalidPrice, s)
	}
	return int64(cents), nil
}
