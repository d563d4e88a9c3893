package shared

import (
	"context"
)

// UnitOfWork wraps multi-statement work in a single database transaction.
// Every multi-document mutation of the checkout protocol (ledger + pending
// order, order + pending-order delete + ledger) must go through Within so a
// failure anywhere rolls the whole phase back.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads.
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, r Reads) error) error
	// Reads: pool-backed command reads for validation outside transactions.
	Reads() Reads
}

// Tx exposes the write repositories bound to one open transaction.
type Tx interface {
	Products() ProductRepository
	PendingOrders() PendingOrderRepository
	Orders() OrderRepository
	Baskets() BasketRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() Reads
}
