package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/digimart/catalog-service/internal/domain"
	merchantdto "github.com/digimart/catalog-service/internal/usecase/dto/merchant"
)

type fakeMerchantRepo struct {
	byUserID map[string]*domain.Merchant
	created  []*domain.Merchant
	getErr   error
}

func newFakeMerchantRepo() *fakeMerchantRepo {
	return &fakeMerchantRepo{byUserID: make(map[string]*domain.Merchant)}
}

func (r *fakeMerchantRepo) CreateMerchant(ctx context.Context, merchant *domain.Merchant) error {
	merchant.ID = "m-1"
	r.byUserID[merchant.UserID] = merchant
	r.created = append(r.created, merchant)
	return nil
}

func (r *fakeMerchantRepo) GetMerchantByUserID(ctx context.Context, userID string) (*domain.Merchant, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	if merchant, ok := r.byUserID[userID]; ok {
		return merchant, nil
	}
	return nil, domain.ErrMerchantNotFound
}

func (r *fakeMerchantRepo) GetMerchantByID(ctx context.Context, id string) (*domain.Merchant, error) {
	for _, merchant := range r.byUserID {
		if merchant.ID == id {
			return merchant, nil
		}
	}
	return nil, domain.ErrMerchantNotFound
}

func validRegisterInput() *merchantdto.RegisterMerchantInput {
	return &merchantdto.RegisterMerchantInput{
		UserID:       "user-1",
		Email:        "okon@example.com",
		PrimaryPhone: "08012345678",
		WhatsappNo:   "2348012345678",
		BrandName:    "Okon Gadgets",
		Address:      "12 Allen Avenue",
		City:         "Ikeja",
		State:        "Lagos",
		PostalCode:   "100001",
		Country:      "Nigeria",
		Categories:   []string{"Phones", "Accessories"},
	}
}

func TestRegisterMerchant(t *testing.T) {
	repo := newFakeMerchantRepo()
	uc := NewDefaultMerchantUsecase(repo, nil, nil, "")

	merchant, err := uc.RegisterMerchant(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("RegisterMerchant() error = %v", err)
	}
	if merchant.ID == "" {
		t.Error("expected assigned merchant id")
	}
	if merchant.UserID != "user-1" || merchant.BrandName != "Okon Gadgets" {
		t.Errorf("unexpected merchant: %+v", merchant)
	}
	if merchant.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one insert, got %d", len(repo.created))
	}
}

func TestRegisterMerchantRequiredFields(t *testing.T) {
	mutations := map[string]func(*merchantdto.RegisterMerchantInput){
		"userId":       func(in *merchantdto.RegisterMerchantInput) { in.UserID = "" },
		"email":        func(in *merchantdto.RegisterMerchantInput) { in.Email = "" },
		"primaryPhone": func(in *merchantdto.RegisterMerchantInput) { in.PrimaryPhone = "" },
		"whatsappNo":   func(in *merchantdto.RegisterMerchantInput) { in.WhatsappNo = "" },
		"brandName":    func(in *merchantdto.RegisterMerchantInput) { in.BrandName = "" },
		"address":      func(in *merchantdto.RegisterMerchantInput) { in.Address = "" },
		"city":         func(in *merchantdto.RegisterMerchantInput) { in.City = "" },
		"state":        func(in *merchantdto.RegisterMerchantInput) { in.State = "" },
		"postalCode":   func(in *merchantdto.RegisterMerchantInput) { in.PostalCode = "" },
		"country":      func(in *merchantdto.RegisterMerchantInput) { in.Country = "" },
		"categories":   func(in *merchantdto.RegisterMerchantInput) { in.Categories = nil },
	}

	for field, mutate := range mutations {
		t.Run(field, func(t *testing.T) {
			repo := newFakeMerchantRepo()
			uc := NewDefaultMerchantUsecase(repo, nil, nil, "")

			input := validRegisterInput()
			mutate(input)

			_, err := uc.RegisterMerchant(context.Background(), input)
			if !domain.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if len(repo.created) != 0 {
				t.Error("no document should be written on validation failure")
			}
		})
	}
}

func TestRegisterMerchantDuplicateAccount(t *testing.T) {
	repo := newFakeMerchantRepo()
	uc := NewDefaultMerchantUsecase(repo, nil, nil, "")

	if _, err := uc.RegisterMerchant(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	_, err := uc.RegisterMerchant(context.Background(), validRegisterInput())
	if !errors.Is(err, domain.ErrMerchantExists) {
		t.Fatalf("expected ErrMerchantExists, got %v", err)
	}
	if len(repo.created) != 1 {
		t.Errorf("duplicate registration must not write, got %d inserts", len(repo.created))
	}
}

func TestRegisterMerchantExistenceCheckFailure(t *testing.T) {
	repo := newFakeMerchantRepo()
	repo.getErr = errors.New("connection reset")
	uc := NewDefaultMerchantUsecase(repo, nil, nil, "")

	_, err := uc.RegisterMerchant(context.Background(), validRegisterInput())
	if err == nil {
		t.Fatal("expected error when existence check fails")
	}
	if errors.Is(err, domain.ErrMerchantExists) {
		t.Error("a failed lookup must not be reported as a duplicate")
	}
	if len(repo.created) != 0 {
		t.Error("no document should be written when the existence check fails")
	}
}

func TestGetMerchantByAccount(t *testing.T) {
	repo := newFakeMerchantRepo()
	uc := NewDefaultMerchantUsecase(repo, nil, nil, "")

	if _, err := uc.GetMerchantByAccount(context.Background(), "nobody"); !errors.Is(err, domain.ErrMerchantNotFound) {
		t.Fatalf("expected ErrMerchantNotFound, got %v", err)
	}

	if _, err := uc.RegisterMerchant(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	merchant, err := uc.GetMerchantByAccount(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetMerchantByAccount() error = %v", err)
	}
	if merchant.BrandName != "Okon Gadgets" {
		t.Errorf("unexpected merchant: %+v", merchant)
	}
}
