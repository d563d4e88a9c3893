// Package jobs holds the background loops: the reservation reclamation
// sweeper and the notification outbox dispatcher.
package jobs

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/leburgeon/ecom-backapi/internal/infra"
	"github.com/leburgeon/ecom-backapi/internal/pkg/clock"
	"github.com/leburgeon/ecom-backapi/internal/usecase/shared"
)

const sweepBatchSize = 100

// Sweeper reclaims stock held by expired pending orders. Each record is
// released in its own transaction, with the pending-order delete as the guard:
// a record that a concurrent settlement already consumed simply skips, so one
// sweep never releases a hold twice and one failure never blocks the rest of
// the batch.
type Sweeper struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	interval time.Duration
}

func NewSweeper(uow shared.UnitOfWork, clk clock.Clock, interval time.Duration) *Sweeper {
	return &Sweeper{uow: uow, clock: clk, interval: interval}
}

// Run loops until the context is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			released, skipped, failed := s.SweepOnce(ctx)
			if released+skipped+failed > 0 {
				slog.Info("reclamation sweep finished",
					"released", released,
					"skipped", skipped,
					"failed", failed)
			}
		}
	}
}

// SweepOnce releases every currently-expired reservation and reports counts:
// released holds, records skipped because settlement won the race, and
// records whose release transaction failed. Records are reclaimed
// concurrently, one transaction each, so a slow or stuck release never
// delays the rest of the batch.
func (s *Sweeper) SweepOnce(ctx context.Context) (released, skipped, failed int) {
	now := s.clock.Now()

	expired, err := s.uow.Reads().ExpiredPendingOrders(ctx, now, sweepBatchSize)
	if err != nil {
		slog.Error("failed to list expired pending orders", "error", err.Error())
		return 0, 0, 0
	}

	var releasedN, skippedN, failedN atomic.Int64
	var wg sync.WaitGroup
	for _, pending := range expired {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				if err := tx.PendingOrders().Delete(ctx, pending.ID); err != nil {
					return err
				}
				return tx.Products().Release(ctx, shared.ReservedItemsFromOrder(pending.Items))
			})
			switch {
			case err == nil:
				releasedN.Add(1)
			case infra.IsKind(err, infra.KindNotFound):
				// Settlement consumed the record between the listing and
				// the delete.
				skippedN.Add(1)
			default:
				failedN.Add(1)
				slog.Error("failed to reclaim expired reservation",
					"pending_order_id", pending.ID,
					"transaction_id", pending.PaymentTransactionID,
					"error", err.Error())
			}
		}()
	}
	wg.Wait()

	return int(releasedN.Load()), int(skippedN.Load()), int(failedN.Load())
}
