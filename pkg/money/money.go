// Package money renders amounts as locale-aware currency strings.
package money

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders a numeric amount with a currency symbol, locale grouping
// and exactly two fractional digits. It never fails: NaN and infinite inputs
// render as the zero-amount string, because the formatter sits in a
// live-editing path where a transient invalid keystroke must not surface an
// error.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// New creates a Formatter for the given currency symbol and BCP 47 locale tag.
// An unparseable locale falls back to English.
func New(symbol, locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Formatter{
		symbol:  symbol,
		printer: message.NewPrinter(tag),
	}
}

// Format renders amount as e.g. "$1,234.50". Non-finite input renders the
// zero-amount string.
func (f *Formatter) Format(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	return f.symbol + f.printer.Sprint(number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Zero returns the zero-amount string in the formatter's locale.
func (f *Formatter) Zero() string {
	return f.Format(0)
}
