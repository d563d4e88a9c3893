package commands

import (
	"context"

	"github.com/leburgeon/ecom-backapi/internal/domain/product"
	"github.com/leburgeon/ecom-backapi/internal/infra"
	"github.com/leburgeon/ecom-backapi/internal/pkg/errs"
	"github.com/leburgeon/ecom-backapi/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateProductInput struct {
	Name        string
	Description string
	Categories  []string
	PriceCents  int64
	Stock       int32
	Seller      string
	FirstImage  string
	Gallery     []string
}

// ProductCommands are admin-only catalog mutations. Restocking goes through
// AddStock, which raises the stock counter without touching reserved, so it
// can never interfere with in-flight settlements.
type ProductCommands interface {
	Create(ctx context.Context, input CreateProductInput) (uuid.UUID, error)
	AddStock(ctx context.Context, productID uuid.UUID, quantity int32) error
}

type productCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewProductCommands(uow shared.UnitOfWork) ProductCommands {
	return &productCommandsImpl{uow: uow}
}

func (p *productCommandsImpl) Create(ctx context.Context, input CreateProductInput) (uuid.UUID, error) {
	// Run the entity constructor for its validation; persistence uses the
	// raw record shape.
	if _, err := product.NewProduct(
		input.Name, input.Description, input.Categories,
		input.PriceCents, input.Stock, input.Seller,
		input.FirstImage, input.Gallery,
	); err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidationFailed)
	}

	record := &shared.ProductRecord{
		Name:        input.Name,
		Description: input.Description,
		Categories:  input.Categories,
		PriceCents:  input.PriceCents,
		Stock:       input.Stock,
		Seller:      input.Seller,
		FirstImage:  input.FirstImage,
		Gallery:     input.Gallery,
	}

	var id uuid.UUID
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Products().Create(ctx, record)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (p *productCommandsImpl) AddStock(ctx context.Context, productID uuid.UUID, quantity int32) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Products().AddStock(ctx, productID, quantity)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrUnknownProduct)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
