package productdto

import "github.com/digimart/catalog-service/internal/domain"

type CreateProductInput struct {
	Name           string
	Price          string
	Description    string
	Specifications string
	Condition      string
	Category       string
	Negotiable     string
	Images         []domain.ImageFile

	// Denormalized onto the product document.
	MerchantID string
	BrandName  string
	MerchantNo string
}

type UpdateProductInput struct {
	Name           string
	Price          string
	Description    string
	Specifications string
	Condition      string
	Category       string
	Negotiable     string

	// KeepImageURLs are hosted URLs the merchant kept; NewImages are blobs
	// still to be uploaded. The stored set becomes kept followed by new.
	KeepImageURLs []string
	NewImages     []domain.ImageFile

	MerchantID string
	BrandName  string
	MerchantNo string
}
