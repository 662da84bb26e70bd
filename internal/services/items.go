package services

import (
	"strings"

	"github.com/salayglass/ledger/internal/models"
	"github.com/salayglass/ledger/internal/money"
)

// buildLineItems turns raw item inputs into valid, priced line items,
// preserving input order. Items with a blank description, a quantity that is
// unparsable or not positive, or a unit price that is unparsable or negative
// are silently dropped rather than failing the whole request.
func buildLineItems(inputs []models.LineItemInput) []models.LineItem {
	items := make([]models.LineItem, 0, len(inputs))

	for _, in := range inputs {
		desc := strings.TrimSpace(in.ItemDescription)
		if desc == "" {
			continue
		}

		qty, err := in.Quantity.Int()
		if err != nil || qty <= 0 {
			continue
		}

		unitPrice, err := in.UnitPrice.Money()
		if err != nil || unitPrice.IsNegative() {
			continue
		}

		items = append(items, models.LineItem{
			ItemDescription: desc,
			Quantity:        qty,
			UnitPrice:       unitPrice,
			LineTotal:       unitPrice.MulQuantity(qty),
		})
	}

	return items
}

// amountPaidOrZero coerces the raw amount_paid field. Absent, unparsable, or
// negative values all collapse to zero instead of raising an error.
func amountPaidOrZero(raw models.Number) money.Money {
	paid, err := raw.Money()
	if err != nil || paid.IsNegative() {
		return money.Zero()
	}
	return paid
}
