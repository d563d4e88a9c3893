package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/leburgeon/ecom-backapi/internal/domain/basket"
	"github.com/leburgeon/ecom-backapi/internal/domain/order"
	"github.com/leburgeon/ecom-backapi/internal/domain/user"
	"github.com/leburgeon/ecom-backapi/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	productSnapshotsQuery = `
		SELECT id, name, price_cents, stock
		FROM products
		WHERE id = ANY($1)`

	pendingOrderByTransactionQuery = `
		SELECT id, user_id, items, total_cents, currency,
		       payment_transaction_id, expires_at, created_at
		FROM pending_orders
		WHERE user_id = $1 AND payment_transaction_id = $2`

	expiredPendingOrdersQuery = `
		SELECT id, user_id, items, total_cents, currency,
		       payment_transaction_id, expires_at, created_at
		FROM pending_orders
		WHERE expires_at <= $1
		ORDER BY expires_at
		LIMIT $2`

	basketLinesQuery = `
		SELECT product_id, quantity
		FROM basket_items
		WHERE user_id = $1
		ORDER BY product_id`

	userByEmailQuery = `
		SELECT id, name, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE email = $1`

	userByIDQuery = `
		SELECT id, name, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE id = $1`
)

// CommandReads implements the command-side snapshot lookups over a pool or an
// open transaction.
type CommandReads struct {
	db DBTX
}

func NewCommandReads(db DBTX) *CommandReads {
	return &CommandReads{db: db}
}

func (r *CommandReads) ProductSnapshots(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]basket.Snapshot, error) {
	rows, err := r.db.Query(ctx, productSnapshotsQuery, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load product snapshots", err)
	}
	defer rows.Close()

	snapshots := make(map[uuid.UUID]basket.Snapshot, len(ids))
	for rows.Next() {
		var snap basket.Snapshot
		if err := rows.Scan(&snap.ProductID, &snap.Name, &snap.PriceCents, &snap.Stock); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product snapshot", err)
		}
		snapshots[snap.ProductID] = snap
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read product snapshots", err)
	}
	return snapshots, nil
}

func (r *CommandReads) PendingOrderByTransactionID(ctx context.Context, userID uuid.UUID, transactionID string) (*order.PendingOrder, error) {
	row := r.db.QueryRow(ctx, pendingOrderByTransactionQuery, userID, transactionID)
	pending, err := scanPendingOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, infra.WrapRepoErr("pending order not found", err, infra.KindNotFound)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find pending order", err)
	}
	return pending, nil
}

func (r *CommandReads) ExpiredPendingOrders(ctx context.Context, now time.Time, limit int32) ([]*order.PendingOrder, error) {
	rows, err := r.db.Query(ctx, expiredPendingOrdersQuery, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expired pending orders", err)
	}
	defer rows.Close()

	var expired []*order.PendingOrder
	for rows.Next() {
		pending, err := scanPendingOrder(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan pending order", err)
		}
		expired = append(expired, pending)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read expired pending orders", err)
	}
	return expired, nil
}

func (r *CommandReads) BasketLines(ctx context.Context, userID uuid.UUID) ([]basket.Line, error) {
	rows, err := r.db.Query(ctx, basketLinesQuery, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load basket lines", err)
	}
	defer rows.Close()

	var lines []basket.Line
	for rows.Next() {
		var line basket.Line
		if err := rows.Scan(&line.ProductID, &line.Quantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan basket line", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read basket lines", err)
	}
	return lines, nil
}

func (r *CommandReads) UserByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.scanUser(r.db.QueryRow(ctx, userByEmailQuery, email))
}

func (r *CommandReads) UserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.scanUser(r.db.QueryRow(ctx, userByIDQuery, id))
}

func (r *CommandReads) scanUser(row pgx.Row) (*user.User, error) {
	var (
		id           uuid.UUID
		name         string
		email        string
		passwordHash string
		role         string
		createdAt    time.Time
		updatedAt    time.Time
	)
	err := row.Scan(&id, &name, &email, &passwordHash, &role, &createdAt, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, infra.WrapRepoErr("stored email is invalid", err)
	}

	return user.ReconstructUser(id, name, emailVO, passwordHash, user.Role(role), createdAt, updatedAt), nil
}

func scanPendingOrder(row pgx.Row) (*order.PendingOrder, error) {
	var (
		pending    order.PendingOrder
		itemsJSON  []byte
		totalCents int64
		currency   string
	)
	err := row.Scan(&pending.ID, &pending.UserID, &itemsJSON, &totalCents, &currency,
		&pending.PaymentTransactionID, &pending.ExpiresAt, &pending.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(itemsJSON, &pending.Items); err != nil {
		return nil, err
	}

	total, err := order.NewMoney(totalCents, currency)
	if err != nil {
		return nil, err
	}
	pending.Total = total

	return &pending, nil
}
