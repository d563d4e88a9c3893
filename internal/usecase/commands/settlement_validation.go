package commands

import (
	"strconv"

	"github.com/leburgeon/ecom-backapi/internal/domain/order"
	"github.com/leburgeon/ecom-backapi/internal/pkg/errs"
)

// ValidatePurchaseUnit checks the gateway's view of an order against the
// server-side reservation record. The total, the item count and every item's
// name, unit price and quantity must match exactly; items are keyed by SKU,
// which carries the product id. Any drift between what the buyer approved at
// the gateway and what was reserved here rejects the capture.
func ValidatePurchaseUnit(pu *PurchaseUnit, pending *order.PendingOrder) error {
	reported, err := order.ParseAmount(pu.Amount.Value, pu.Amount.CurrencyCode)
	if err != nil {
		return errs.Newf("unparseable purchase amount %q", pu.Amount.Value)
	}
	if !reported.Equal(pending.Total) {
		return errs.Newf("amount mismatch: gateway reports %s %s, reservation holds %s %s",
			pu.Amount.Value, pu.Amount.CurrencyCode,
			pending.Total.Amount(), pending.Total.Currency())
	}

	if len(pu.Items) != len(pending.Items) {
		return errs.Newf("item count mismatch: gateway reports %d, reservation holds %d",
			len(pu.Items), len(pending.Items))
	}

	expected := make(map[string]order.Item, len(pending.Items))
	for _, it := range pending.Items {
		expected[it.ProductID.String()] = it
	}

	for _, gi := range pu.Items {
		want, ok := expected[gi.SKU]
		if !ok {
			return errs.Newf("unexpected item sku %q", gi.SKU)
		}
		// Re-checking against the map guards duplicate SKUs: two gateway
		// items with the same sku would both match one reservation item.
		delete(expected, gi.SKU)

		if gi.Name != want.Name {
			return errs.Newf("item %s name mismatch: gateway reports %q", gi.SKU, gi.Name)
		}

		quantity, err := strconv.ParseInt(gi.Quantity, 10, 32)
		if err != nil || int32(quantity) != want.Quantity {
			return errs.Newf("item %s quantity mismatch: gateway reports %q, reservation holds %d",
				gi.SKU, gi.Quantity, want.Quantity)
		}

		unit, err := order.ParseAmount(gi.UnitAmount.Value, gi.UnitAmount.CurrencyCode)
		if err != nil {
			return errs.Newf("item %s has unparseable unit amount %q", gi.SKU, gi.UnitAmount.Value)
		}
		wantUnit, err := order.NewMoney(want.UnitPriceCents, pending.Total.Currency())
		if err != nil {
			return errs.Wrap(err, "reservation item price")
		}
		if !unit.Equal(wantUnit) {
			return errs.Newf("item %s unit price mismatch: gateway reports %s %s",
				gi.SKU, gi.UnitAmount.Value, gi.UnitAmount.CurrencyCode)
		}
	}

	return nil
}
