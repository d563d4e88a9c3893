package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/leburgeon/ecom-backapi/internal/mailer"
	"github.com/leburgeon/ecom-backapi/internal/pkg/clock"
	"github.com/leburgeon/ecom-backapi/internal/usecase/shared"
)

// OutboxWorker drains queued notification jobs. Jobs are claimed with
// row locks inside one transaction per batch, so delivery is at-least-once:
// a crash between send and mark re-dispatches the job on the next poll.
type OutboxWorker struct {
	uow         shared.UnitOfWork
	sender      mailer.Sender
	clock       clock.Clock
	interval    time.Duration
	batchSize   int32
	maxAttempts int32
}

func NewOutboxWorker(
	uow shared.UnitOfWork,
	sender mailer.Sender,
	clk clock.Clock,
	interval time.Duration,
	batchSize, maxAttempts int32,
) *OutboxWorker {
	return &OutboxWorker{
		uow:         uow,
		sender:      sender,
		clock:       clk,
		interval:    interval,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
	}
}

func (w *OutboxWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.DispatchOnce(ctx); err != nil {
				slog.Error("outbox dispatch failed", "error", err.Error())
			}
		}
	}
}

func (w *OutboxWorker) DispatchOnce(ctx context.Context) error {
	return w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := w.clock.Now()

		jobs, err := tx.Notifications().DueJobs(ctx, now, w.batchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			if sendErr := w.dispatch(ctx, job); sendErr != nil {
				attempts := job.Attempts + 1
				dead := attempts >= w.maxAttempts
				nextRun := now.Add(time.Duration(attempts) * time.Minute)
				if err := tx.Notifications().MarkFailed(ctx, job.ID, sendErr.Error(), nextRun, dead); err != nil {
					return err
				}
				slog.Warn("notification dispatch failed",
					"job_id", job.ID,
					"topic", job.Topic,
					"attempts", attempts,
					"dead", dead,
					"error", sendErr.Error())
				continue
			}
			if err := tx.Notifications().MarkSent(ctx, job.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

type confirmationPayload struct {
	OrderNumber string `json:"order_number"`
	Name        string `json:"name"`
	Email       string `json:"email"`
}

func (w *OutboxWorker) dispatch(ctx context.Context, job shared.NotificationJob) error {
	switch job.Topic {
	case "order_confirmation":
		var payload confirmationPayload
		if err := json.Unmarshal(job.Payload, &payload); err != nil {
			return err
		}
		subject := fmt.Sprintf("Order %s confirmed", payload.OrderNumber)
		body := fmt.Sprintf(
			"Hi %s,\n\nThanks for your order. Your order number is %s.\n",
			payload.Name, payload.OrderNumber)
		return w.sender.Send(ctx, payload.Email, subject, body)
	default:
		slog.Warn("dropping notification job with unknown topic",
			"job_id", job.ID, "topic", job.Topic)
		return nil
	}
}
