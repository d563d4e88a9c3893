package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/leburgeon/ecom-backapi/internal/domain/basket"
	"github.com/leburgeon/ecom-backapi/internal/domain/order"
	"github.com/leburgeon/ecom-backapi/internal/infra"
	"github.com/leburgeon/ecom-backapi/internal/pkg/clock"
	"github.com/leburgeon/ecom-backapi/internal/pkg/errs"
	"github.com/leburgeon/ecom-backapi/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmptyBasket             = errs.New("basket is empty")
	ErrUnknownProduct          = errs.New("unknown product")
	ErrInsufficientStock       = errs.New("insufficient stock")
	ErrPaymentGateway          = errs.New("payment gateway error")
	ErrNoPendingOrder          = errs.New("no pending order found")
	ErrPurchaseUnitMismatch    = errs.New("purchase unit validation failed")
	ErrCaptureFailed           = errs.New("payment capture failed")
	ErrSettlementInconsistency = errs.New("settlement left the ledger inconsistent")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CheckoutPreview struct {
	Items []basket.Item
	Total order.Money
}

// CheckoutCommands is the settlement coordinator. Initiation reserves stock
// and writes the pending order in one transaction; capture validates the
// gateway's view against that record, captures payment, then promotes it to a
// permanent order while releasing the reservation in a second transaction.
type CheckoutCommands interface {
	PreviewCheckout(ctx context.Context, lines []basket.Line) (*CheckoutPreview, error)
	InitiateCheckout(ctx context.Context, userID uuid.UUID, lines []basket.Line) (*GatewayOrder, error)
	CaptureCheckout(ctx context.Context, userID uuid.UUID, transactionID string) (*GatewayCapture, error)
}

type checkoutCommandsImpl struct {
	uow            shared.UnitOfWork
	gateway        PaymentGateway
	clock          clock.Clock
	currency       string
	reservationTTL time.Duration
}

func NewCheckoutCommands(
	uow shared.UnitOfWork,
	gateway PaymentGateway,
	clk clock.Clock,
	currency string,
	reservationTTL time.Duration,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		uow:            uow,
		gateway:        gateway,
		clock:          clk,
		currency:       currency,
		reservationTTL: reservationTTL,
	}
}

// PreviewCheckout prices a raw basket without reserving anything. It shares
// the pricing path with InitiateCheckout so the preview total is always the
// total the gateway order is created with.
func (c *checkoutCommandsImpl) PreviewCheckout(ctx context.Context, lines []basket.Line) (*CheckoutPreview, error) {
	processed, total, err := c.priceBasket(ctx, c.uow.Reads(), lines)
	if err != nil {
		return nil, err
	}
	return &CheckoutPreview{Items: processed.Items, Total: total}, nil
}

// InitiateCheckout is phase 1 of settlement: price the basket, create the
// gateway order, then reserve stock and persist the pending order atomically.
// A failed reservation aborts the transaction, leaving the ledger untouched.
func (c *checkoutCommandsImpl) InitiateCheckout(ctx context.Context, userID uuid.UUID, lines []basket.Line) (*GatewayOrder, error) {
	processed, total, err := c.priceBasket(ctx, c.uow.Reads(), lines)
	if err != nil {
		return nil, err
	}

	gatewayOrder, err := c.gateway.CreateOrder(ctx, processed, total)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentGateway)
	}

	pending := &order.PendingOrder{
		ID:                   uuid.New(),
		UserID:               userID,
		Items:                itemsFromProcessed(processed),
		Total:                total,
		PaymentTransactionID: gatewayOrder.ID,
		ExpiresAt:            c.clock.Now().Add(c.reservationTTL),
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Products().Reserve(ctx, shared.ReservedItemsFromOrder(pending.Items)); err != nil {
			if infra.IsKind(err, infra.KindInsufficientStock) {
				return errs.Mark(err, ErrInsufficientStock)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.PendingOrders().Create(ctx, pending); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return gatewayOrder, nil
}

// CaptureCheckout is phase 2: validate the gateway's order detail against the
// pending order snapshot, capture payment, then settle. The pending-order
// delete inside the settlement transaction is what makes the release
// exactly-once: whichever of settlement and reclamation deletes the record
// first wins, and the loser aborts without touching the ledger.
func (c *checkoutCommandsImpl) CaptureCheckout(ctx context.Context, userID uuid.UUID, transactionID string) (*GatewayCapture, error) {
	pending, err := c.uow.Reads().PendingOrderByTransactionID(ctx, userID, transactionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Also the answer for a duplicate capture of an
			// already-settled order: the record is gone, nothing to do.
			return nil, errs.Mark(err, ErrNoPendingOrder)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	detail, err := c.gateway.GetOrder(ctx, transactionID)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentGateway)
	}
	if len(detail.PurchaseUnits) == 0 {
		return nil, errs.Mark(errs.New("gateway order carries no purchase units"), ErrPaymentGateway)
	}

	if err := ValidatePurchaseUnit(&detail.PurchaseUnits[0], pending); err != nil {
		// The mismatch detail stays server-side; clients get a generic
		// failure so a tampering attempt learns nothing about which
		// field gave it away.
		slog.Warn("purchase unit validation failed",
			"transaction_id", transactionID,
			"user_id", userID,
			"error", err.Error())
		return nil, errs.Mark(err, ErrPurchaseUnitMismatch)
	}

	capture, err := c.gateway.CaptureOrder(ctx, transactionID)
	if err != nil {
		return nil, errs.Mark(err, ErrCaptureFailed)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return c.settle(ctx, tx, pending, capture)
	})
	if err != nil {
		return nil, err
	}

	// Best-effort basket cleanup. Settlement already committed; a failure
	// here leaves a stale basket, which the user can clear themselves.
	go c.clearBasket(context.WithoutCancel(ctx), userID)

	return capture, nil
}

func (c *checkoutCommandsImpl) settle(ctx context.Context, tx shared.Tx, pending *order.PendingOrder, capture *GatewayCapture) error {
	payment := order.Payment{
		Method:         "PAYPAL",
		ProviderStatus: capture.Status,
		TransactionID:  capture.ID,
	}

	settled, err := c.createWithUniqueNumber(ctx, tx, pending, payment)
	if err != nil {
		return err
	}

	if err := tx.PendingOrders().Delete(ctx, pending.ID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Lost the race against the reclamation sweeper; it has
			// already released the hold, so settling now would
			// double-release.
			return errs.Mark(err, ErrNoPendingOrder)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Products().CommitSale(ctx, shared.ReservedItemsFromOrder(pending.Items)); err != nil {
		return errs.Mark(err, ErrSettlementInconsistency)
	}

	if err := c.enqueueConfirmation(ctx, tx, settled); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return nil
}

// createWithUniqueNumber retries order-number collisions a bounded number of
// times, then falls back to a uuid-suffixed number that cannot collide.
func (c *checkoutCommandsImpl) createWithUniqueNumber(ctx context.Context, tx shared.Tx, pending *order.PendingOrder, payment order.Payment) (*order.Order, error) {
	for attempt := 0; attempt < order.NumberAttempts; attempt++ {
		settled, err := order.NewSettled(order.NewNumber(c.clock.Now()), pending, payment)
		if err != nil {
			return nil, errs.Mark(err, ErrSettlementInconsistency)
		}
		err = tx.Orders().Create(ctx, settled)
		if err == nil {
			return settled, nil
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	settled, err := order.NewSettled(order.FallbackNumber(c.clock.Now()), pending, payment)
	if err != nil {
		return nil, errs.Mark(err, ErrSettlementInconsistency)
	}
	if err := tx.Orders().Create(ctx, settled); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return settled, nil
}

func (c *checkoutCommandsImpl) enqueueConfirmation(ctx context.Context, tx shared.Tx, settled *order.Order) error {
	buyer, err := tx.Reads().UserByID(ctx, settled.UserID())
	if err != nil {
		return err
	}

	payload, err := json.Marshal(map[string]any{
		"order_number": settled.Number(),
		"name":         buyer.Name(),
		"email":        buyer.Email().Value(),
	})
	if err != nil {
		return err
	}

	return tx.Notifications().CreateJob(ctx, "email", "order_confirmation", payload, c.clock.Now())
}

func (c *checkoutCommandsImpl) clearBasket(ctx context.Context, userID uuid.UUID) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Baskets().Clear(ctx, userID)
	})
	if err != nil {
		slog.Warn("post-settlement basket cleanup failed", "user_id", userID, "error", err.Error())
	}
}

func (c *checkoutCommandsImpl) priceBasket(ctx context.Context, reads shared.Reads, lines []basket.Line) (*basket.Processed, order.Money, error) {
	ids := make([]uuid.UUID, 0, len(lines))
	seen := make(map[uuid.UUID]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}
		seen[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}

	snapshots := map[uuid.UUID]basket.Snapshot{}
	if len(ids) > 0 {
		var err error
		snapshots, err = reads.ProductSnapshots(ctx, ids)
		if err != nil {
			return nil, order.Money{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	processed, err := basket.Process(lines, snapshots)
	if err != nil {
		return nil, order.Money{}, markBasketError(err)
	}

	total, err := order.NewMoney(processed.TotalCents, c.currency)
	if err != nil {
		return nil, order.Money{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return processed, total, nil
}

func markBasketError(err error) error {
	var unknown *basket.UnknownProductError
	var insufficient *basket.InsufficientStockError
	switch {
	case errors.Is(err, basket.ErrEmptyBasket):
		return errs.Mark(err, ErrEmptyBasket)
	case errors.As(err, &unknown):
		return errs.Mark(err, ErrUnknownProduct)
	case errors.As(err, &insufficient):
		return errs.Mark(err, ErrInsufficientStock)
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}

func itemsFromProcessed(processed *basket.Processed) []order.Item {
	items := make([]order.Item, len(processed.Items))
	for i, it := range processed.Items {
		items[i] = order.Item{
			ProductID:      it.ProductID,
			Name:           it.Name,
			UnitPriceCents: it.UnitPriceCents,
			Quantity:       it.Quantity,
		}
	}
	return items
}
