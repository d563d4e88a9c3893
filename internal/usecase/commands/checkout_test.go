//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/leburgeon/ecom-backapi/internal/domain/basket"
	"github.com/leburgeon/ecom-backapi/internal/domain/order"
	"github.com/leburgeon/ecom-backapi/internal/domain/user"
	"github.com/leburgeon/ecom-backapi/internal/infra"
	"github.com/leburgeon/ecom-backapi/internal/pkg/clock"
	"github.com/leburgeon/ecom-backapi/internal/usecase/commands"
	"github.com/leburgeon/ecom-backapi/internal/usecase/shared"
	commandsmock "github.com/leburgeon/ecom-backapi/tests/mock/commands"
	sharedmock "github.com/leburgeon/ecom-backapi/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	testCurrency = "GBP"
	testTTL      = 30 * time.Minute
)

type CheckoutCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockReads
	products      *sharedmock.MockProductRepository
	pendings      *sharedmock.MockPendingOrderRepository
	orders        *sharedmock.MockOrderRepository
	baskets       *sharedmock.MockBasketRepository
	notifications *sharedmock.MockNotificationRepository
	gateway       *commandsmock.MockPaymentGateway
	clock         *clock.MockClock
	checkout      commands.CheckoutCommands
}

func (s *CheckoutCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.tx = sharedmock.NewMockTx(s.mockCtrl)
	s.reads = sharedmock.NewMockReads(s.mockCtrl)
	s.products = sharedmock.NewMockProductRepository(s.mockCtrl)
	s.pendings = sharedmock.NewMockPendingOrderRepository(s.mockCtrl)
	s.orders = sharedmock.NewMockOrderRepository(s.mockCtrl)
	s.baskets = sharedmock.NewMockBasketRepository(s.mockCtrl)
	s.notifications = sharedmock.NewMockNotificationRepository(s.mockCtrl)
	s.gateway = commandsmock.NewMockPaymentGateway(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC))

	s.uow.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Products().Return(s.products).AnyTimes()
	s.tx.EXPECT().PendingOrders().Return(s.pendings).AnyTimes()
	s.tx.EXPECT().Orders().Return(s.orders).AnyTimes()
	s.tx.EXPECT().Baskets().Return(s.baskets).AnyTimes()
	s.tx.EXPECT().Notifications().Return(s.notifications).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()

	s.checkout = commands.NewCheckoutCommands(s.uow, s.gateway, s.clock, testCurrency, testTTL)
}

func (s *CheckoutCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutCommandsSuite(t *testing.T) {
	suite.Run(t, new(CheckoutCommandsTestSuite))
}

// expectWithin routes uow.Within callbacks through the suite's mock Tx.
func (s *CheckoutCommandsTestSuite) expectWithin(times int) {
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).Times(times)
}

func (s *CheckoutCommandsTestSuite) basketFixture() ([]basket.Line, map[uuid.UUID]basket.Snapshot) {
	productID := uuid.New()
	lines := []basket.Line{{ProductID: productID, Quantity: 2}}
	snaps := map[uuid.UUID]basket.Snapshot{
		productID: {ProductID: productID, Name: "Keyboard", PriceCents: 1000, Stock: 10},
	}
	return lines, snaps
}

func (s *CheckoutCommandsTestSuite) buyerFixture(id uuid.UUID) *user.User {
	email, err := user.NewEmail("jane@example.com")
	s.Require().NoError(err)
	now := s.clock.Now()
	return user.ReconstructUser(id, "Jane", email, "hash", user.RoleCustomer, now, now)
}

func (s *CheckoutCommandsTestSuite) TestPreviewCheckout() {
	s.Run("success: prices the basket without reserving", func() {
		lines, snaps := s.basketFixture()
		s.reads.EXPECT().ProductSnapshots(gomock.Any(), gomock.Any()).Return(snaps, nil)

		preview, err := s.checkout.PreviewCheckout(context.Background(), lines)
		s.Require().NoError(err)
		s.Equal(int64(2000), preview.Total.Cents())
		s.Equal(testCurrency, preview.Total.Currency())
		s.Len(preview.Items, 1)
	})

	s.Run("error: empty basket", func() {
		_, err := s.checkout.PreviewCheckout(context.Background(), nil)
		s.ErrorIs(err, commands.ErrEmptyBasket)
	})

	s.Run("error: unknown product", func() {
		lines, _ := s.basketFixture()
		s.reads.EXPECT().ProductSnapshots(gomock.Any(), gomock.Any()).
			Return(map[uuid.UUID]basket.Snapshot{}, nil)

		_, err := s.checkout.PreviewCheckout(context.Background(), lines)
		s.ErrorIs(err, commands.ErrUnknownProduct)
	})
}

func (s *CheckoutCommandsTestSuite) TestInitiateCheckout() {
	userID := uuid.New()

	s.Run("success: reserves stock and records the pending order", func() {
		lines, snaps := s.basketFixture()
		s.reads.EXPECT().ProductSnapshots(gomock.Any(), gomock.Any()).Return(snaps, nil)
		s.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.GatewayOrder{ID: "TX-1", Status: "CREATED", Raw: []byte(`{"id":"TX-1"}`)}, nil)
		s.expectWithin(1)
		s.products.EXPECT().Reserve(gomock.Any(), []shared.ReservedItem{
			{ProductID: lines[0].ProductID, Quantity: 2},
		}).Return(nil)
		s.pendings.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, pending *order.PendingOrder) error {
				s.Equal(userID, pending.UserID)
				s.Equal("TX-1", pending.PaymentTransactionID)
				s.Equal(int64(2000), pending.Total.Cents())
				s.Equal(s.clock.Now().Add(testTTL), pending.ExpiresAt)
				s.Len(pending.Items, 1)
				return nil
			})

		gatewayOrder, err := s.checkout.InitiateCheckout(context.Background(), userID, lines)
		s.Require().NoError(err)
		s.Equal("TX-1", gatewayOrder.ID)
	})

	s.Run("error: insufficient stock at pricing time", func() {
		lines, snaps := s.basketFixture()
		short := snaps[lines[0].ProductID]
		short.Stock = 1
		snaps[lines[0].ProductID] = short
		s.reads.EXPECT().ProductSnapshots(gomock.Any(), gomock.Any()).Return(snaps, nil)

		_, err := s.checkout.InitiateCheckout(context.Background(), userID, lines)
		s.ErrorIs(err, commands.ErrInsufficientStock)
	})

	s.Run("error: gateway create failure leaves the ledger untouched", func() {
		lines, snaps := s.basketFixture()
		s.reads.EXPECT().ProductSnapshots(gomock.Any(), gomock.Any()).Return(snaps, nil)
		s.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrPaymentGateway)

		_, err := s.checkout.InitiateCheckout(context.Background(), userID, lines)
		s.ErrorIs(err, commands.ErrPaymentGateway)
	})

	s.Run("error: concurrent reservation exhausts stock", func() {
		lines, snaps := s.basketFixture()
		s.reads.EXPECT().ProductSnapshots(gomock.Any(), gomock.Any()).Return(snaps, nil)
		s.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.GatewayOrder{ID: "TX-2"}, nil)
		s.expectWithin(1)
		s.products.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("insufficient stock", nil, infra.KindInsufficientStock))

		_, err := s.checkout.InitiateCheckout(context.Background(), userID, lines)
		s.ErrorIs(err, commands.ErrInsufficientStock)
	})
}

func (s *CheckoutCommandsTestSuite) capturePendingFixture(userID uuid.UUID) *order.PendingOrder {
	total, err := order.NewMoney(2000, testCurrency)
	s.Require().NoError(err)
	return &order.PendingOrder{
		ID:     uuid.New(),
		UserID: userID,
		Items: []order.Item{
			{ProductID: uuid.New(), Name: "Keyboard", UnitPriceCents: 1000, Quantity: 2},
		},
		Total:                total,
		PaymentTransactionID: "TX-1",
		ExpiresAt:            s.clock.Now().Add(testTTL),
	}
}

func (s *CheckoutCommandsTestSuite) matchingDetail(pending *order.PendingOrder) *commands.GatewayOrderDetail {
	return &commands.GatewayOrderDetail{
		ID:     pending.PaymentTransactionID,
		Status: "APPROVED",
		PurchaseUnits: []commands.PurchaseUnit{{
			Amount: commands.PurchaseAmount{Value: pending.Total.Amount(), CurrencyCode: testCurrency},
			Items: []commands.PurchaseUnitItem{{
				SKU:        pending.Items[0].ProductID.String(),
				Name:       "Keyboard",
				Quantity:   "2",
				UnitAmount: commands.PurchaseAmount{Value: "10.00", CurrencyCode: testCurrency},
			}},
		}},
	}
}

func (s *CheckoutCommandsTestSuite) TestCaptureCheckout() {
	s.Run("success: captures, settles and enqueues the confirmation", func() {
		userID := uuid.New()
		pending := s.capturePendingFixture(userID)

		s.reads.EXPECT().PendingOrderByTransactionID(gomock.Any(), userID, "TX-1").Return(pending, nil)
		s.gateway.EXPECT().GetOrder(gomock.Any(), "TX-1").Return(s.matchingDetail(pending), nil)
		s.gateway.EXPECT().CaptureOrder(gomock.Any(), "TX-1").
			Return(&commands.GatewayCapture{ID: "CAP-1", Status: "COMPLETED", Raw: []byte(`{"id":"CAP-1"}`)}, nil)

		// Settlement transaction plus the post-commit basket cleanup.
		s.expectWithin(2)
		s.orders.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, settled *order.Order) error {
				s.Equal(userID, settled.UserID())
				s.Equal(order.StatusPaid, settled.Status())
				s.Equal("PAYPAL", settled.Payment().Method)
				s.Equal("CAP-1", settled.Payment().TransactionID)
				s.True(strings.HasPrefix(settled.Number(), "ORD-20250314-"))
				return nil
			})
		s.pendings.EXPECT().Delete(gomock.Any(), pending.ID).Return(nil)
		s.products.EXPECT().CommitSale(gomock.Any(), []shared.ReservedItem{
			{ProductID: pending.Items[0].ProductID, Quantity: 2},
		}).Return(nil)
		s.reads.EXPECT().UserByID(gomock.Any(), userID).Return(s.buyerFixture(userID), nil)
		s.notifications.EXPECT().CreateJob(gomock.Any(), "email", "order_confirmation", gomock.Any(), s.clock.Now()).Return(nil)

		cleared := make(chan struct{})
		s.baskets.EXPECT().Clear(gomock.Any(), userID).
			DoAndReturn(func(context.Context, uuid.UUID) error {
				close(cleared)
				return nil
			})

		capture, err := s.checkout.CaptureCheckout(context.Background(), userID, "TX-1")
		s.Require().NoError(err)
		s.Equal("COMPLETED", capture.Status)

		select {
		case <-cleared:
		case <-time.After(time.Second):
			s.Fail("basket cleanup never ran")
		}
	})

	s.Run("error: no pending order, also the duplicate-capture answer", func() {
		userID := uuid.New()
		s.reads.EXPECT().PendingOrderByTransactionID(gomock.Any(), userID, "TX-9").
			Return(nil, infra.WrapRepoErr("pending order not found", nil, infra.KindNotFound))

		_, err := s.checkout.CaptureCheckout(context.Background(), userID, "TX-9")
		s.ErrorIs(err, commands.ErrNoPendingOrder)
	})

	s.Run("error: purchase unit mismatch blocks capture", func() {
		userID := uuid.New()
		pending := s.capturePendingFixture(userID)
		detail := s.matchingDetail(pending)
		detail.PurchaseUnits[0].Amount.Value = "15.00"

		s.reads.EXPECT().PendingOrderByTransactionID(gomock.Any(), userID, "TX-1").Return(pending, nil)
		s.gateway.EXPECT().GetOrder(gomock.Any(), "TX-1").Return(detail, nil)
		// CaptureOrder must never run for a tampered order.

		_, err := s.checkout.CaptureCheckout(context.Background(), userID, "TX-1")
		s.ErrorIs(err, commands.ErrPurchaseUnitMismatch)
	})

	s.Run("error: gateway reports no purchase units", func() {
		userID := uuid.New()
		pending := s.capturePendingFixture(userID)

		s.reads.EXPECT().PendingOrderByTransactionID(gomock.Any(), userID, "TX-1").Return(pending, nil)
		s.gateway.EXPECT().GetOrder(gomock.Any(), "TX-1").
			Return(&commands.GatewayOrderDetail{ID: "TX-1", Status: "APPROVED"}, nil)

		_, err := s.checkout.CaptureCheckout(context.Background(), userID, "TX-1")
		s.ErrorIs(err, commands.ErrPaymentGateway)
	})

	s.Run("error: capture failure at the gateway", func() {
		userID := uuid.New()
		pending := s.capturePendingFixture(userID)

		s.reads.EXPECT().PendingOrderByTransactionID(gomock.Any(), userID, "TX-1").Return(pending, nil)
		s.gateway.EXPECT().GetOrder(gomock.Any(), "TX-1").Return(s.matchingDetail(pending), nil)
		s.gateway.EXPECT().CaptureOrder(gomock.Any(), "TX-1").
			Return(nil, commands.ErrCaptureFailed)

		_, err := s.checkout.CaptureCheckout(context.Background(), userID, "TX-1")
		s.ErrorIs(err, commands.ErrCaptureFailed)
	})

	s.Run("error: settlement loses the race against the sweeper", func() {
		userID := uuid.New()
		pending := s.capturePendingFixture(userID)

		s.reads.EXPECT().PendingOrderByTransactionID(gomock.Any(), userID, "TX-1").Return(pending, nil)
		s.gateway.EXPECT().GetOrder(gomock.Any(), "TX-1").Return(s.matchingDetail(pending), nil)
		s.gateway.EXPECT().CaptureOrder(gomock.Any(), "TX-1").
			Return(&commands.GatewayCapture{ID: "CAP-1", Status: "COMPLETED"}, nil)

		s.expectWithin(1)
		s.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.pendings.EXPECT().Delete(gomock.Any(), pending.ID).
			Return(infra.WrapRepoErr("pending order already consumed", nil, infra.KindNotFound))
		// CommitSale must never run once the delete reports the record gone.

		_, err := s.checkout.CaptureCheckout(context.Background(), userID, "TX-1")
		s.ErrorIs(err, commands.ErrNoPendingOrder)
	})

	s.Run("success: order number collisions retry until insert lands", func() {
		userID := uuid.New()
		pending := s.capturePendingFixture(userID)

		s.reads.EXPECT().PendingOrderByTransactionID(gomock.Any(), userID, "TX-1").Return(pending, nil)
		s.gateway.EXPECT().GetOrder(gomock.Any(), "TX-1").Return(s.matchingDetail(pending), nil)
		s.gateway.EXPECT().CaptureOrder(gomock.Any(), "TX-1").
			Return(&commands.GatewayCapture{ID: "CAP-1", Status: "COMPLETED"}, nil)

		s.expectWithin(2)
		collision := infra.WrapRepoErr("order number collision", nil, infra.KindDuplicateKey)
		gomock.InOrder(
			s.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(collision),
			s.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(collision),
			s.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
		)
		s.pendings.EXPECT().Delete(gomock.Any(), pending.ID).Return(nil)
		s.products.EXPECT().CommitSale(gomock.Any(), gomock.Any()).Return(nil)
		s.reads.EXPECT().UserByID(gomock.Any(), userID).Return(s.buyerFixture(userID), nil)
		s.notifications.EXPECT().CreateJob(gomock.Any(), "email", "order_confirmation", gomock.Any(), gomock.Any()).Return(nil)

		cleared := make(chan struct{})
		s.baskets.EXPECT().Clear(gomock.Any(), userID).
			DoAndReturn(func(context.Context, uuid.UUID) error {
				close(cleared)
				return nil
			})

		_, err := s.checkout.CaptureCheckout(context.Background(), userID, "TX-1")
		s.Require().NoError(err)

		select {
		case <-cleared:
		case <-time.After(time.Second):
			s.Fail("basket cleanup never ran")
		}
	})
}
