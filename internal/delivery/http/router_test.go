package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/digimart/catalog-service/internal/domain"
	merchantdto "github.com/digimart/catalog-service/internal/usecase/dto/merchant"
	productdto "github.com/digimart/catalog-service/internal/usecase/dto/product"
	sessiondto "github.com/digimart/catalog-service/internal/usecase/dto/session"
	"github.com/gofiber/fiber/v2"
)

type stubSessions struct {
	session *domain.Session
}

func (s *stubSessions) SignUp(ctx context.Context, email, password string) (*sessiondto.AuthOutput, error) {
	return nil, domain.ErrEmailInUse
}

func (s *stubSessions) LogIn(ctx context.Context, email, password string) (*sessiondto.AuthOutput, error) {
	return nil, domain.ErrInvalidCredentials
}

func (s *stubSessions) Current(ctx context.Context, token string) (*domain.Session, error) {
	if token == "good" && s.session != nil {
		return s.session, nil
	}
	return nil, domain.ErrSessionExpired
}

func (s *stubSessions) LogOut(ctx context.Context, token string) error { return nil }

func (s *stubSessions) ResendVerification(ctx context.Context, token string) error { return nil }

type stubMerchants struct {
	merchant *domain.Merchant
}

func (m *stubMerchants) RegisterMerchant(ctx context.Context, input *merchantdto.RegisterMerchantInput) (*domain.Merchant, error) {
	return nil, domain.ErrMerchantExists
}

func (m *stubMerchants) GetMerchantByAccount(ctx context.Context, userID string) (*domain.Merchant, error) {
	if m.merchant != nil && m.merchant.UserID == userID {
		return m.merchant, nil
	}
	return nil, domain.ErrMerchantNotFound
}

type stubCatalog struct {
	products []*domain.Product
}

func (c *stubCatalog) CreateProduct(ctx context.Context, input *productdto.CreateProductInput) (*domain.Product, error) {
	return nil, domain.ErrTooManyImages
}

func (c *stubCatalog) UpdateProduct(ctx context.Context, productID string, input *productdto.UpdateProductInput) (*domain.Product, error) {
	return nil, domain.ErrProductNotFound
}

func (c *stubCatalog) DeleteProduct(ctx context.Context, productID, merchantID string) error {
	return nil
}

func (c *stubCatalog) GetProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(c.products))
	for _, product := range c.products {
		if filter.Matches(product) {
			out = append(out, product)
		}
	}
	return out, nil
}

func (c *stubCatalog) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	for _, product := range c.products {
		if product.ID == id {
			return product, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (c *stubCatalog) GetMerchantProducts(ctx context.Context, merchantID string, category string) ([]*domain.Product, error) {
	return c.products, nil
}

func (c *stubCatalog) CountProducts(ctx context.Context) (int64, error) {
	return int64(len(c.products)), nil
}

func newTestApp(sessions *stubSessions, merchants *stubMerchants, catalog *stubCatalog) *fiber.App {
	app := fiber.New()
	RegisterRoutes(app, sessions, merchants, catalog)
	return app
}

func sampleProduct() *domain.Product {
	now := time.Now()
	return &domain.Product{
		ID:         "p-1",
		Name:       "Infinix Hot 12",
		Price:      "85000",
		Condition:  domain.ConditionUsed,
		Category:   "Phones",
		Negotiable: "yes",
		MerchantID: "m-1",
		BrandName:  "Okon Gadgets",
		MerchantNo: "2348012345678",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestStorefrontRoutesArePublic(t *testing.T) {
	app := newTestApp(&stubSessions{}, &stubMerchants{}, &stubCatalog{products: []*domain.Product{sampleProduct()}})

	response, err := app.Test(httptest.NewRequest(stdhttp.MethodGet, "/api/products", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if response.StatusCode != stdhttp.StatusOK {
		t.Fatalf("status = %d", response.StatusCode)
	}

	var body struct {
		Data []struct {
			ID          string `json:"id"`
			ContactLink string `json:"contact_link"`
		} `json:"data"`
	}
	if err := json.NewDecoder(response.Body).Decode(&body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(body.Data) != 1 {
		t.Fatalf("expected one product, got %d", len(body.Data))
	}
	if !strings.HasPrefix(body.Data[0].ContactLink, "https://wa.me/2348012345678?") {
		t.Errorf("contact_link = %q", body.Data[0].ContactLink)
	}
}

func TestStorefrontProductNotFound(t *testing.T) {
	app := newTestApp(&stubSessions{}, &stubMerchants{}, &stubCatalog{})

	response, err := app.Test(httptest.NewRequest(stdhttp.MethodGet, "/api/products/missing", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if response.StatusCode != stdhttp.StatusNotFound {
		t.Errorf("status = %d, want 404", response.StatusCode)
	}
}

func TestMerchantRoutesRequireSession(t *testing.T) {
	app := newTestApp(&stubSessions{}, &stubMerchants{}, &stubCatalog{})

	response, err := app.Test(httptest.NewRequest(stdhttp.MethodGet, "/api/merchants/me", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if response.StatusCode != stdhttp.StatusUnauthorized {
		t.Errorf("status without token = %d, want 401", response.StatusCode)
	}

	request := httptest.NewRequest(stdhttp.MethodGet, "/api/merchants/me", nil)
	request.Header.Set("Authorization", "Bearer stale")
	response, err = app.Test(request)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if response.StatusCode != stdhttp.StatusUnauthorized {
		t.Errorf("status with stale token = %d, want 401", response.StatusCode)
	}
}

func TestMerchantRoutesRequireVerifiedEmail(t *testing.T) {
	sessions := &stubSessions{session: &domain.Session{ID: "s1", UserID: "user-1", Email: "okon@example.com"}}
	app := newTestApp(sessions, &stubMerchants{}, &stubCatalog{})

	request := httptest.NewRequest(stdhttp.MethodGet, "/api/merchants/me", nil)
	request.Header.Set("Authorization", "Bearer good")
	response, err := app.Test(request)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if response.StatusCode != stdhttp.StatusForbidden {
		t.Errorf("unverified status = %d, want 403", response.StatusCode)
	}
}

func TestMerchantMe(t *testing.T) {
	sessions := &stubSessions{session: &domain.Session{ID: "s1", UserID: "user-1", Email: "okon@example.com", EmailVerified: true}}
	merchants := &stubMerchants{merchant: &domain.Merchant{ID: "m-1", UserID: "user-1", BrandName: "Okon Gadgets"}}
	app := newTestApp(sessions, merchants, &stubCatalog{})

	request := httptest.NewRequest(stdhttp.MethodGet, "/api/merchants/me", nil)
	request.Header.Set("Authorization", "Bearer good")
	response, err := app.Test(request)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if response.StatusCode != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", response.StatusCode)
	}

	// Without a merchant profile the same session gets a 404.
	merchants.merchant = nil
	request = httptest.NewRequest(stdhttp.MethodGet, "/api/merchants/me", nil)
	request.Header.Set("Authorization", "Bearer good")
	response, err = app.Test(request)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if response.StatusCode != stdhttp.StatusNotFound {
		t.Errorf("status without profile = %d, want 404", response.StatusCode)
	}
}
