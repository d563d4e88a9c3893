package response

import (
	"time"

	"github.com/leburgeon/ecom-backapi/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductSummaryResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"priceCents"`
	Stock      int32     `json:"stock"`
	FirstImage string    `json:"firstImage,omitempty"`
	RatingAvg  float64   `json:"ratingAvg"`
}

type ProductListResponse struct {
	Products []ProductSummaryResponse `json:"products"`
	Total    int64                    `json:"total"`
}

type ProductDetailResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Categories  []string  `json:"categories"`
	PriceCents  int64     `json:"priceCents"`
	Stock       int32     `json:"stock"`
	Seller      string    `json:"seller"`
	FirstImage  string    `json:"firstImage,omitempty"`
	Gallery     []string  `json:"gallery,omitempty"`
	RatingAvg   float64   `json:"ratingAvg"`
	RatingCount int32     `json:"ratingCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromProductSummaries(summaries []queries.ProductSummary, total int64) ProductListResponse {
	out := ProductListResponse{
		Products: make([]ProductSummaryResponse, len(summaries)),
		Total:    total,
	}
	for i, s := range summaries {
		out.Products[i] = ProductSummaryResponse{
			ID:         s.ID,
			Name:       s.Name,
			PriceCents: s.PriceCents,
			Stock:      s.Stock,
			FirstImage: s.FirstImage,
			RatingAvg:  s.RatingAvg,
		}
	}
	return out
}

func FromProductDetail(d *queries.ProductDetail) *ProductDetailResponse {
	return &ProductDetailResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Categories:  d.Categories,
		PriceCents:  d.PriceCents,
		Stock:       d.Stock,
		Seller:      d.Seller,
		FirstImage:  d.FirstImage,
		Gallery:     d.Gallery,
		RatingAvg:   d.RatingAvg,
		RatingCount: d.RatingCount,
		CreatedAt:   d.CreatedAt,
	}
}
