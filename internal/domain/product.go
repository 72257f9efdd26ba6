package domain

import (
	"context"
	"strings"
	"time"
)

// MaxProductImages caps the image set a single product may own.
const MaxProductImages = 5

type Condition string

const (
	ConditionNew         Condition = "new"
	ConditionUsed        Condition = "used"
	ConditionRefurbished Condition = "refurbished"
)

// ParseCondition validates the free-form condition value coming off the wire.
func ParseCondition(s string) (Condition, bool) {
	switch Condition(s) {
	case ConditionNew, ConditionUsed, ConditionRefurbished:
		return Condition(s), true
	}
	return "", false
}

type Product struct {
	ID             string
	Name           string
	Price          string
	Description    string
	Specifications string
	Condition      Condition
	Category       string
	Negotiable     string
	ImageURLs      []string
	MerchantID     string
	BrandName      string
	MerchantNo     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ProductFilter narrows a fetched product list in process. Matching stays a
// substring predicate over the already-fetched list, not a server-side query.
type ProductFilter struct {
	Query    string
	Category string
}

func (f ProductFilter) Matches(p *Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Query != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Query)) {
		return false
	}
	return true
}

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *Product) error
	UpdateProduct(ctx context.Context, product *Product) error
	DeleteProduct(ctx context.Context, id string) error
	GetProductByID(ctx context.Context, id string) (*Product, error)
	GetProducts(ctx context.Context) ([]*Product, error)
	GetMerchantProducts(ctx context.Context, merchantID string) ([]*Product, error)
	CountProducts(ctx context.Context) (int64, error)
}
