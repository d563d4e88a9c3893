package commands

import (
	"context"

	"github.com/leburgeon/ecom-backapi/internal/infra"
	"github.com/leburgeon/ecom-backapi/internal/pkg/errs"
	"github.com/leburgeon/ecom-backapi/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidQuantity = errs.New("quantity must be positive")

// BasketCommands mutate the persisted basket. The basket is advisory: stock is
// never held by basket contents, only by checkout initiation, so additions are
// validated against the catalog but not against current stock.
type BasketCommands interface {
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int32) error
	ReduceItem(ctx context.Context, userID, productID uuid.UUID, quantity int32) error
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type basketCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewBasketCommands(uow shared.UnitOfWork) BasketCommands {
	return &basketCommandsImpl{uow: uow}
}

func (b *basketCommandsImpl) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int32) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snapshots, err := tx.Reads().ProductSnapshots(ctx, []uuid.UUID{productID})
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if _, ok := snapshots[productID]; !ok {
			return errs.Mark(errs.Newf("product %s not found", productID), ErrUnknownProduct)
		}
		if err := tx.Baskets().AddItem(ctx, userID, productID, quantity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (b *basketCommandsImpl) ReduceItem(ctx context.Context, userID, productID uuid.UUID, quantity int32) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Baskets().ReduceItem(ctx, userID, productID, quantity)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrUnknownProduct)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (b *basketCommandsImpl) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Baskets().RemoveItem(ctx, userID, productID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (b *basketCommandsImpl) Clear(ctx context.Context, userID uuid.UUID) error {
	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Baskets().Clear(ctx, userID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
