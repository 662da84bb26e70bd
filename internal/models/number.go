package models

import (
	"strconv"
	"strings"

	"github.com/salayglass/ledger/internal/money"
)

// Number is a loosely typed numeric input field. Callers send quantities and
// amounts either as JSON numbers or as numeric strings; Number keeps the raw
// text so each consumer can apply its own lenient coercion policy.
type Number struct {
	raw string
	set bool
}

// NumberFrom builds a Number from raw text. Intended for tests and internal callers.
func NumberFrom(s string) Number {
	s = strings.TrimSpace(s)
	return Number{raw: s, set: s != ""}
}

// IsSet reports whether a non-empty value was supplied.
func (n Number) IsSet() bool {
	return n.set
}

// UnmarshalJSON never fails on malformed numeric content: the bad value is kept
// as raw text and surfaces later as a coercion error, so that one garbage field
// does not reject the whole payload.
func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	if s == "" {
		return nil
	}
	n.raw = s
	n.set = true
	return nil
}

// Int coerces the value to an integer. Fractional numbers truncate toward
// zero; an unset value is 0.
func (n Number) Int() (int, error) {
	if !n.set {
		return 0, nil
	}
	if v, err := strconv.Atoi(n.raw); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(n.raw, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// Money coerces the value to a two-decimal amount. An unset value is 0.00.
func (n Number) Money() (money.Money, error) {
	if !n.set {
		return money.Zero(), nil
	}
	return money.Parse(n.raw)
}
