package shared

import (
	"context"
	"time"

	"github.com/leburgeon/ecom-backapi/internal/domain/basket"
	"github.com/leburgeon/ecom-backapi/internal/domain/order"
	"github.com/leburgeon/ecom-backapi/internal/domain/user"

	"github.com/google/uuid"
)

// ReservedItem is one (product, quantity) pair of a ledger mutation.
type ReservedItem struct {
	ProductID uuid.UUID
	Quantity  int32
}

// ReservedItemsFromOrder projects an order item snapshot onto the ledger pairs
// used by Reserve/CommitSale/Release.
func ReservedItemsFromOrder(items []order.Item) []ReservedItem {
	out := make([]ReservedItem, len(items))
	for i, it := range items {
		out[i] = ReservedItem{ProductID: it.ProductID, Quantity: it.Quantity}
	}
	return out
}

// ProductRepository is the inventory ledger. Every method mutates the
// stock/reserved counters through conditional updates only; a failed condition
// surfaces as KindInsufficientStock (or KindConflict for release paths) and
// the caller aborts the surrounding transaction.
type ProductRepository interface {
	// Reserve moves quantity from stock to reserved for each item, only
	// where stock >= quantity holds at apply time.
	Reserve(ctx context.Context, items []ReservedItem) error
	// CommitSale decrements reserved only; stock was already decremented at
	// reservation time.
	CommitSale(ctx context.Context, items []ReservedItem) error
	// Release returns reserved quantity to stock, only where
	// reserved >= quantity holds.
	Release(ctx context.Context, items []ReservedItem) error
	// AddStock is the admin restock path; it never touches reserved.
	AddStock(ctx context.Context, productID uuid.UUID, quantity int32) error
	Create(ctx context.Context, p *ProductRecord) (uuid.UUID, error)
}

// ProductRecord is the write-side shape for catalog inserts.
type ProductRecord struct {
	Name        string
	Description string
	Categories  []string
	PriceCents  int64
	Stock       int32
	Seller      string
	FirstImage  string
	Gallery     []string
}

type PendingOrderRepository interface {
	Create(ctx context.Context, pending *order.PendingOrder) error
	// Delete removes the reservation record. KindNotFound means the record
	// was already consumed by the racing consumer (settlement or sweeper);
	// callers must abort without touching the ledger.
	Delete(ctx context.Context, id uuid.UUID) error
}

type OrderRepository interface {
	// Create inserts the permanent order; KindDuplicateKey reports an order
	// number collision so the caller can retry with a fresh number.
	Create(ctx context.Context, o *order.Order) error
}

type BasketRepository interface {
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int32) error
	ReduceItem(ctx context.Context, userID, productID uuid.UUID, quantity int32) error
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

// NotificationJob is one queued outbox row.
type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
	// DueJobs locks the returned rows for the polling worker so concurrent
	// instances never dispatch the same job twice.
	DueJobs(ctx context.Context, now time.Time, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	// MarkFailed records the error and reschedules, or dead-letters the job
	// once attempts reach the configured maximum.
	MarkFailed(ctx context.Context, id uuid.UUID, lastError string, nextRun time.Time, dead bool) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
}

// Reads are command-side snapshot lookups. They run outside or inside a
// transaction depending on where they were obtained.
type Reads interface {
	// ProductSnapshots resolves the pricing snapshot for a set of product
	// ids. Missing ids are simply absent from the map; basket.Process turns
	// absence into UnknownProductError.
	ProductSnapshots(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]basket.Snapshot, error)
	// PendingOrderByTransactionID scopes the lookup to the owning user so
	// one user cannot capture another's reservation.
	PendingOrderByTransactionID(ctx context.Context, userID uuid.UUID, transactionID string) (*order.PendingOrder, error)
	// ExpiredPendingOrders feeds the reclamation sweeper. Results are a
	// candidate list only; the authoritative expiry decision is the guarded
	// delete inside the per-record release transaction.
	ExpiredPendingOrders(ctx context.Context, now time.Time, limit int32) ([]*order.PendingOrder, error)
	BasketLines(ctx context.Context, userID uuid.UUID) ([]basket.Line, error)
	UserByEmail(ctx context.Context, email string) (*user.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}
