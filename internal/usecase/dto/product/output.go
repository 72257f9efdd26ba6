package productdto

import (
	"time"

	"github.com/digimart/catalog-service/internal/domain"
)

type ProductResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Price          string    `json:"price"`
	Description    string    `json:"description"`
	Specifications string    `json:"specifications"`
	Condition      string    `json:"condition"`
	Category       string    `json:"category"`
	Negotiable     string    `json:"negotiable"`
	ImageURLs      []string  `json:"image_urls"`
	MerchantID     string    `json:"merchant_id"`
	BrandName      string    `json:"brand_name"`
	MerchantNo     string    `json:"merchant_no"`
	ContactLink    string    `json:"contact_link"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ToProductResponse(product *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:             product.ID,
		Name:           product.Name,
		Price:          product.Price,
		Description:    product.Description,
		Specifications: product.Specifications,
		Condition:      string(product.Condition),
		Category:       product.Category,
		Negotiable:     product.Negotiable,
		ImageURLs:      product.ImageURLs,
		MerchantID:     product.MerchantID,
		BrandName:      product.BrandName,
		MerchantNo:     product.MerchantNo,
		ContactLink:    domain.ContactLink(product),
		CreatedAt:      product.CreatedAt,
		UpdatedAt:      product.UpdatedAt,
	}
}

func ToProductListResponse(products []*domain.Product) []*ProductResponse {
	out := make([]*ProductResponse, len(products))
	for i, product := range products {
		out[i] = ToProductResponse(product)
	}
	return out
}
