package request

import (
	"github.com/leburgeon/ecom-backapi/internal/usecase/commands"
)

type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
	PriceCents  int64    `json:"priceCents" binding:"required,min=0"`
	Stock       int32    `json:"stock" binding:"min=0"`
	Seller      string   `json:"seller" binding:"required"`
	FirstImage  string   `json:"firstImage"`
	Gallery     []string `json:"gallery"`
}

func (r CreateProductRequest) ToInput() commands.CreateProductInput {
	return commands.CreateProductInput{
		Name:        r.Name,
		Description: r.Description,
		Categories:  r.Categories,
		PriceCents:  r.PriceCents,
		Stock:       r.Stock,
		Seller:      r.Seller,
		FirstImage:  r.FirstImage,
		Gallery:     r.Gallery,
	}
}

type AddStockRequest struct {
	Quantity int32 `json:"quantity" binding:"required,min=1"`
}
