package bootstrap

import (
	"context"

	"github.com/leburgeon/ecom-backapi/internal/jobs"
	"github.com/leburgeon/ecom-backapi/internal/mailer"
	"github.com/leburgeon/ecom-backapi/internal/pkg/clock"
	"github.com/leburgeon/ecom-backapi/internal/pkg/config"
	"github.com/leburgeon/ecom-backapi/internal/usecase/shared"

	"go.uber.org/fx"
)

// JobsModule runs the reclamation sweeper and the notification outbox worker
// for the lifetime of the process.
var JobsModule = fx.Module("jobs",
	fx.Provide(
		func(cfg config.Config) mailer.Sender {
			return mailer.NewSMTPSender(cfg.SMTP)
		},
		func(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) *jobs.Sweeper {
			return jobs.NewSweeper(uow, clk, cfg.Jobs.SweepInterval)
		},
		func(uow shared.UnitOfWork, sender mailer.Sender, clk clock.Clock, cfg config.Config) *jobs.OutboxWorker {
			return jobs.NewOutboxWorker(uow, sender, clk,
				cfg.Jobs.OutboxPollInterval,
				int32(cfg.Jobs.OutboxBatchSize),
				int32(cfg.Jobs.OutboxMaxAttempts))
		},
	),
	fx.Invoke(startJobs),
)

func startJobs(lc fx.Lifecycle, sweeper *jobs.Sweeper, outbox *jobs.OutboxWorker) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go sweeper.Run(ctx)
			go outbox.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
