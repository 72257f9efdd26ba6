package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"path/filepath"

	"github.com/digimart/catalog-service/internal/delivery/http/middleware"
	"github.com/digimart/catalog-service/internal/domain"
	"github.com/digimart/catalog-service/internal/usecase"
	catalogusecase "github.com/digimart/catalog-service/internal/usecase/catalog"
	productdto "github.com/digimart/catalog-service/internal/usecase/dto/product"
	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves the merchant-facing catalog management routes.
type CatalogHandler struct {
	Catalog   catalogusecase.CatalogUsecase
	Merchants usecase.MerchantUsecase
}

func NewCatalogHandler(catalog catalogusecase.CatalogUsecase, merchants usecase.MerchantUsecase) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog, Merchants: merchants}
}

// MyProducts - GET /api/merchants/me/products
func (h *CatalogHandler) MyProducts(c *fiber.Ctx) error {
	merchant, err := h.currentMerchant(c)
	if err != nil {
		return respondError(c, err)
	}

	products, err := h.Catalog.GetMerchantProducts(c.UserContext(), merchant.ID, c.Query("category"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": productdto.ToProductListResponse(products)})
}

// CreateProduct - POST /api/merchants/me/products (multipart)
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	merchant, err := h.currentMerchant(c)
	if err != nil {
		return respondError(c, err)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "multipart form is required"})
	}

	images, err := readImages(form.File["images"])
	if err != nil {
		return respondError(c, err)
	}

	product, err := h.Catalog.CreateProduct(c.UserContext(), &productdto.CreateProductInput{
		Name:           formValue(form, "name"),
		Price:          formValue(form, "price"),
		Description:    formValue(form, "description"),
		Specifications: formValue(form, "specifications"),
		Condition:      formValue(form, "condition"),
		Category:       formValue(form, "category"),
		Negotiable:     formValue(form, "negotiable"),
		Images:         images,
		MerchantID:     merchant.ID,
		BrandName:      merchant.BrandName,
		MerchantNo:     merchant.WhatsappNo,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": productdto.ToProductResponse(product)})
}

// UpdateProduct - PUT /api/products/:id (multipart)
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	merchant, err := h.currentMerchant(c)
	if err != nil {
		return respondError(c, err)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "multipart form is required"})
	}

	images, err := readImages(form.File["images"])
	if err != nil {
		return respondError(c, err)
	}

	product, err := h.Catalog.UpdateProduct(c.UserContext(), c.Params("id"), &productdto.UpdateProductInput{
		Name:           formValue(form, "name"),
		Price:          formValue(form, "price"),
		Description:    formValue(form, "description"),
		Specifications: formValue(form, "specifications"),
		Condition:      formValue(form, "condition"),
		Category:       formValue(form, "category"),
		Negotiable:     formValue(form, "negotiable"),
		KeepImageURLs:  form.Value["keep_image_urls"],
		NewImages:      images,
		MerchantID:     merchant.ID,
		BrandName:      merchant.BrandName,
		MerchantNo:     merchant.WhatsappNo,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": productdto.ToProductResponse(product)})
}

// DeleteProduct - DELETE /api/products/:id
func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	merchant, err := h.currentMerchant(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.Catalog.DeleteProduct(c.UserContext(), c.Params("id"), merchant.ID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "product deleted"})
}

func (h *CatalogHandler) currentMerchant(c *fiber.Ctx) (*domain.Merchant, error) {
	session := middleware.CurrentSession(c)
	merchant, err := h.Merchants.GetMerchantByAccount(c.UserContext(), session.UserID)
	if errors.Is(err, domain.ErrMerchantNotFound) {
		return nil, domain.ErrNotMerchant
	}
	if err != nil {
		return nil, err
	}
	return merchant, nil
}

func formValue(form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}

// readImages loads the uploaded blobs into memory, whitelisting the same
// extensions the storefront has always accepted.
func readImages(headers []*multipart.FileHeader) ([]domain.ImageFile, error) {
	if len(headers) > domain.MaxProductImages {
		return nil, domain.ErrTooManyImages
	}

	images := make([]domain.ImageFile, 0, len(headers))
	for _, header := range headers {
		ext := filepath.Ext(header.Filename)
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
			return nil, domain.NewValidationError("images", "only .jpg, .jpeg, and .png files are allowed")
		}

		file, err := header.Open()
		if err != nil {
			return nil, domain.NewValidationError("images", "unreadable file "+header.Filename)
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, domain.NewValidationError("images", "unreadable file "+header.Filename)
		}

		images = append(images, domain.ImageFile{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return images, nil
}
