//go:build unit

package jobs_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/leburgeon/ecom-backapi/internal/domain/order"
	"github.com/leburgeon/ecom-backapi/internal/infra"
	"github.com/leburgeon/ecom-backapi/internal/jobs"
	"github.com/leburgeon/ecom-backapi/internal/pkg/clock"
	"github.com/leburgeon/ecom-backapi/internal/pkg/errs"
	"github.com/leburgeon/ecom-backapi/internal/usecase/shared"
	sharedmock "github.com/leburgeon/ecom-backapi/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SweeperTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockReads
	products *sharedmock.MockProductRepository
	pendings *sharedmock.MockPendingOrderRepository
	clock    *clock.MockClock
	sweeper  *jobs.Sweeper
}

func (s *SweeperTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.tx = sharedmock.NewMockTx(s.mockCtrl)
	s.reads = sharedmock.NewMockReads(s.mockCtrl)
	s.products = sharedmock.NewMockProductRepository(s.mockCtrl)
	s.pendings = sharedmock.NewMockPendingOrderRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC))

	s.uow.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().Products().Return(s.products).AnyTimes()
	s.tx.EXPECT().PendingOrders().Return(s.pendings).AnyTimes()

	s.sweeper = jobs.NewSweeper(s.uow, s.clock, time.Minute)
}

func (s *SweeperTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSweeperSuite(t *testing.T) {
	suite.Run(t, new(SweeperTestSuite))
}

func (s *SweeperTestSuite) expiredFixture() *order.PendingOrder {
	total, err := order.NewMoney(3000, "GBP")
	s.Require().NoError(err)
	return &order.PendingOrder{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Items: []order.Item{
			{ProductID: uuid.New(), Name: "Keyboard", UnitPriceCents: 1000, Quantity: 3},
		},
		Total:                total,
		PaymentTransactionID: "TX-" + uuid.NewString()[:8],
		ExpiresAt:            s.clock.Now().Add(-time.Minute),
	}
}

func (s *SweeperTestSuite) TestSweepOnce() {
	s.Run("releases expired reservations", func() {
		pending := s.expiredFixture()
		s.reads.EXPECT().ExpiredPendingOrders(gomock.Any(), s.clock.Now(), gomock.Any()).
			Return([]*order.PendingOrder{pending}, nil)
		s.pendings.EXPECT().Delete(gomock.Any(), pending.ID).Return(nil)
		s.products.EXPECT().Release(gomock.Any(), []shared.ReservedItem{
			{ProductID: pending.Items[0].ProductID, Quantity: 3},
		}).Return(nil)

		released, skipped, failed := s.sweeper.SweepOnce(context.Background())
		s.Equal(1, released)
		s.Equal(0, skipped)
		s.Equal(0, failed)
	})

	s.Run("skips records consumed by a racing settlement", func() {
		pending := s.expiredFixture()
		s.reads.EXPECT().ExpiredPendingOrders(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]*order.PendingOrder{pending}, nil)
		s.pendings.EXPECT().Delete(gomock.Any(), pending.ID).
			Return(infra.WrapRepoErr("pending order already consumed", nil, infra.KindNotFound))
		// Release must never run for a record settlement already consumed.

		released, skipped, failed := s.sweeper.SweepOnce(context.Background())
		s.Equal(0, released)
		s.Equal(1, skipped)
		s.Equal(0, failed)
	})

	s.Run("one failure does not block the rest of the batch", func() {
		bad := s.expiredFixture()
		good := s.expiredFixture()
		s.reads.EXPECT().ExpiredPendingOrders(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]*order.PendingOrder{bad, good}, nil)

		s.pendings.EXPECT().Delete(gomock.Any(), bad.ID).Return(errs.New("connection reset"))
		s.pendings.EXPECT().Delete(gomock.Any(), good.ID).Return(nil)
		s.products.EXPECT().Release(gomock.Any(), gomock.Any()).Return(nil)

		released, skipped, failed := s.sweeper.SweepOnce(context.Background())
		s.Equal(1, released)
		s.Equal(0, skipped)
		s.Equal(1, failed)
	})

	s.Run("reclaims all records concurrently", func() {
		expired := []*order.PendingOrder{
			s.expiredFixture(), s.expiredFixture(), s.expiredFixture(), s.expiredFixture(),
		}
		s.reads.EXPECT().ExpiredPendingOrders(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expired, nil)

		// Every delete blocks until all four transactions are in flight.
		// A sequential sweep never gets past the first record.
		var inFlight sync.WaitGroup
		inFlight.Add(len(expired))
		for _, pending := range expired {
			s.pendings.EXPECT().Delete(gomock.Any(), pending.ID).
				DoAndReturn(func(context.Context, uuid.UUID) error {
					inFlight.Done()
					inFlight.Wait()
					return nil
				})
		}
		s.products.EXPECT().Release(gomock.Any(), gomock.Any()).Return(nil).Times(len(expired))

		done := make(chan struct{})
		go func() {
			released, skipped, failed := s.sweeper.SweepOnce(context.Background())
			s.Equal(len(expired), released)
			s.Equal(0, skipped)
			s.Equal(0, failed)
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			s.Fail("sweep did not run the reclamations concurrently")
		}
	})

	s.Run("listing failure sweeps nothing", func() {
		s.reads.EXPECT().ExpiredPendingOrders(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.New("connection reset"))

		released, skipped, failed := s.sweeper.SweepOnce(context.Background())
		s.Equal(0, released)
		s.Equal(0, skipped)
		s.Equal(0, failed)
	})

	s.Run("empty sweep is a no-op", func() {
		s.reads.EXPECT().ExpiredPendingOrders(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		released, skipped, failed := s.sweeper.SweepOnce(context.Background())
		s.Equal(0, released+skipped+failed)
	})
}
