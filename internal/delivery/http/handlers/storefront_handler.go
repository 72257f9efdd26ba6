package handlers

import (
	"github.com/digimart/catalog-service/internal/domain"
	catalogusecase "github.com/digimart/catalog-service/internal/usecase/catalog"
	productdto "github.com/digimart/catalog-service/internal/usecase/dto/product"
	"github.com/gofiber/fiber/v2"
)

// StorefrontHandler serves the public browse and search routes. No session
// is required on any of them.
type StorefrontHandler struct {
	Catalog catalogusecase.CatalogUsecase
}

func NewStorefrontHandler(catalog catalogusecase.CatalogUsecase) *StorefrontHandler {
	return &StorefrontHandler{Catalog: catalog}
}

// ListProducts - GET /api/products?q=...&category=...
func (h *StorefrontHandler) ListProducts(c *fiber.Ctx) error {
	filter := domain.ProductFilter{
		Query:    c.Query("q"),
		Category: c.Query("category"),
	}

	products, err := h.Catalog.GetProducts(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": productdto.ToProductListResponse(products)})
}

// GetProduct - GET /api/products/:id
func (h *StorefrontHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.Catalog.GetProductByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": productdto.ToProductResponse(product)})
}
