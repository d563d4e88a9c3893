package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyProductName   = errors.New("product name cannot be empty")
	ErrProductNameTooLong = errors.New("product name is too long (max 255 characters)")
	ErrNegativePrice      = errors.New("price cannot be negative")
	ErrNegativeStock      = errors.New("stock cannot be negative")
)

const MaxProductNameLength = 255

// Product is the inventory ledger unit. The stock/reserved pair is the single
// source of truth for availability; both counters are mutated only through
// conditional updates in the repository layer, never by re-saving this entity.
type Product struct {
	id          uuid.UUID
	name        string
	description string
	categories  []string
	priceCents  int64
	stock       int32
	reserved    int32
	seller      string
	firstImage  string
	gallery     []string
	rating      Rating
	createdAt   time.Time
	updatedAt   time.Time
}

type Rating struct {
	Total int64
	Count int64
}

func NewProduct(name, description string, categories []string, priceCents int64, stock int32, seller, firstImage string, gallery []string) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyProductName
	}
	if len(name) > MaxProductNameLength {
		return nil, ErrProductNameTooLong
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}

	return &Product{
		id:          uuid.New(),
		name:        name,
		description: description,
		categories:  categories,
		priceCents:  priceCents,
		stock:       stock,
		seller:      seller,
		firstImage:  firstImage,
		gallery:     gallery,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	name, description string,
	categories []string,
	priceCents int64,
	stock, reserved int32,
	seller, firstImage string,
	gallery []string,
	rating Rating,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:          id,
		name:        name,
		description: description,
		categories:  categories,
		priceCents:  priceCents,
		stock:       stock,
		reserved:    reserved,
		seller:      seller,
		firstImage:  firstImage,
		gallery:     gallery,
		rating:      rating,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Product) ID() uuid.UUID        { return p.id }
func (p *Product) Name() string         { return p.name }
func (p *Product) Description() string  { return p.description }
func (p *Product) Categories() []string { return p.categories }
func (p *Product) PriceCents() int64    { return p.priceCents }
func (p *Product) Stock() int32         { return p.stock }
func (p *Product) Reserved() int32      { return p.reserved }
func (p *Product) Seller() string       { return p.seller }
func (p *Product) FirstImage() string   { return p.firstImage }
func (p *Product) Gallery() []string    { return p.gallery }
func (p *Product) Rating() Rating       { return p.rating }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }
