package basket

import (
	"sort"

	"github.com/google/uuid"
)

// Snapshot is the ledger view Process prices against: one product's committed
// name, unit price and available stock at a single point in time.
type Snapshot struct {
	ProductID  uuid.UUID
	Name       string
	PriceCents int64
	Stock      int32
}

// Item is one priced, deduplicated line of a processed basket.
type Item struct {
	ProductID      uuid.UUID
	Name           string
	UnitPriceCents int64
	Quantity       int32
}

// Processed is the validated, priced form of a raw basket. It is ephemeral:
// checkout previews render it and checkout initiation freezes it into a
// pending order, but it is never persisted as-is.
type Processed struct {
	Items      []Item
	TotalCents int64
}

// Process validates and prices raw basket lines against a ledger snapshot.
// Duplicate product ids are merged by summing quantities before validation, so
// a basket holding the same product on two lines is checked against stock
// once, with the combined quantity. Totals are computed in integer cents; the
// currency-minor-unit precision required when the charge is later validated
// against the gateway falls out of that for free.
//
// Process is pure: calling it twice over the same snapshot yields identical
// results. Checkout previews and checkout initiation both go through here so
// the preview price is always the charged price.
func Process(lines []Line, products map[uuid.UUID]Snapshot) (*Processed, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyBasket
	}

	merged := make(map[uuid.UUID]int32, len(lines))
	ordered := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		if _, seen := merged[line.ProductID]; !seen {
			ordered = append(ordered, line.ProductID)
		}
		merged[line.ProductID] += line.Quantity
	}

	// Deterministic item order keeps the gateway payload and the stored
	// snapshot stable across retries.
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].String() < ordered[j].String()
	})

	processed := &Processed{
		Items: make([]Item, 0, len(ordered)),
	}

	for _, id := range ordered {
		quantity := merged[id]
		snap, ok := products[id]
		if !ok {
			return nil, &UnknownProductError{ProductID: id}
		}
		if quantity > snap.Stock {
			return nil, &InsufficientStockError{
				ProductID: id,
				Requested: quantity,
				Available: snap.Stock,
			}
		}

		processed.Items = append(processed.Items, Item{
			ProductID:      id,
			Name:           snap.Name,
			UnitPriceCents: snap.PriceCents,
			Quantity:       quantity,
		})
		processed.TotalCents += snap.PriceCents * int64(quantity)
	}

	return processed, nil
}
