package provider

import (
	"math"
	"regexp"
	"strings"

	"github.com/lukman83/pricewise/internal/models"
	"github.com/shopspring/decimal"
)

// Upstream payloads name the same concept differently. Each field is resolved
// from an ordered list of attempts; the first present value wins.

// StringAttempt yields a candidate value for a text field.
type StringAttempt func() (string, bool)

// Str is present when s is non-blank.
func Str(s string) StringAttempt {
	return func() (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	}
}

// FirstString returns the first present attempt, or "".
func FirstString(attempts ...StringAttempt) string {
	for _, a := range attempts {
		if v, ok := a(); ok {
			return v
		}
	}
	return ""
}

// Price is an extracted numeric price with its display text.
type Price struct {
	Amount  float64
	Display string
}

// PriceAttempt yields a candidate price.
type PriceAttempt func() (Price, bool)

// Numeric is present when amount is finite and > 0. The display falls back to FormatPrice(amount).
func Numeric(amount float64, display string) PriceAttempt {
	return func() (Price, bool) {
		if !(amount > 0) || math.IsInf(amount, 1) {
			return Price{}, false
		}
		display = strings.TrimSpace(display)
		if display == "" {
			display = FormatPrice(amount)
		}
		return Price{Amount: amount, Display: display}, true
	}
}

// Text is present when raw contains a positive numeric token.
func Text(raw string) PriceAttempt {
	return func() (Price, bool) {
		amount, ok := ParsePrice(raw)
		if !ok {
			return Price{}, false
		}
		return Price{Amount: amount, Display: strings.TrimSpace(raw)}, true
	}
}

// FirstPrice returns the first present attempt. A zero Price means none matched.
func FirstPrice(attempts ...PriceAttempt) Price {
	for _, a := range attempts {
		if p, ok := a(); ok {
			return p
		}
	}
	return Price{}
}

var priceToken = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

// ParsePrice extracts the first numeric token, e.g. "$1,299.99 now" -> 1299.99.
func ParsePrice(raw string) (float64, bool) {
	tok := priceToken.FindString(raw)
	if tok == "" {
		return 0, false
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(tok, ",", ""))
	if err != nil {
		return 0, false
	}
	if !d.IsPositive() {
		return 0, false
	}
	return d.InexactFloat64(), true
}

// FormatPrice synthesizes a display price, e.g. 135 -> "$135", 139.99 -> "$139.99".
func FormatPrice(amount float64) string {
	return "$" + decimal.NewFromFloat(amount).String()
}

// Limit caps products to n priced records, in order. Unpriced records seen
// before the cap is reached are kept; the aggregator discards them.
func Limit(products []models.Product, n int) []models.Product {
	if n <= 0 {
		return products
	}
	out := make([]models.Product, 0, min(len(products), n))
	priced := 0
	for _, p := range products {
		if priced == n {
			break
		}
		if p.HasPrice() {
			priced++
		}
		out = append(out, p)
	}
	return out
}
