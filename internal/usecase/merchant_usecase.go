package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/digimart/catalog-service/internal/domain"
	"github.com/digimart/catalog-service/internal/infrastructure/kafka"
	"github.com/digimart/catalog-service/internal/infrastructure/metrics"
	merchantdto "github.com/digimart/catalog-service/internal/usecase/dto/merchant"
	"github.com/google/uuid"
)

// requiredMerchantFields drives validation; every field must be non-empty
// and at least one category must be chosen.
var requiredMerchantFields = []string{
	"email",
	"primaryPhone",
	"whatsappNo",
	"brandName",
	"address",
	"city",
	"state",
	"postalCode",
	"country",
}

type MerchantUsecase interface {
	RegisterMerchant(ctx context.Context, input *merchantdto.RegisterMerchantInput) (*domain.Merchant, error)
	GetMerchantByAccount(ctx context.Context, userID string) (*domain.Merchant, error)
}

type DefaultMerchantUsecase struct {
	MerchantRepo domain.MerchantRepository
	Publisher    domain.PublisherPort
	Metrics      *metrics.CatalogMetrics
	Topic        string
}

func NewDefaultMerchantUsecase(
	merchantRepo domain.MerchantRepository,
	publisher domain.PublisherPort,
	catalogMetrics *metrics.CatalogMetrics,
	topic string,
) *DefaultMerchantUsecase {
	return &DefaultMerchantUsecase{
		MerchantRepo: merchantRepo,
		Publisher:    publisher,
		Metrics:      catalogMetrics,
		Topic:        topic,
	}
}

// RegisterMerchant validates the profile, enforces one merchant per account
// and inserts the new document. The existence check and the insert are not
// wrapped in a transaction.
func (uc *DefaultMerchantUsecase) RegisterMerchant(ctx context.Context, input *merchantdto.RegisterMerchantInput) (*domain.Merchant, error) {
	if input.UserID == "" {
		return nil, domain.NewValidationError("userId", "missing or empty field")
	}
	if err := validateMerchantInput(input); err != nil {
		return nil, err
	}

	_, err := uc.MerchantRepo.GetMerchantByUserID(ctx, input.UserID)
	if err == nil {
		return nil, domain.ErrMerchantExists
	}
	if !errors.Is(err, domain.ErrMerchantNotFound) {
		return nil, fmt.Errorf("failed to check existing merchant: %w", err)
	}

	merchant := &domain.Merchant{
		UserID:       input.UserID,
		Email:        input.Email,
		PrimaryPhone: input.PrimaryPhone,
		WhatsappNo:   input.WhatsappNo,
		BrandName:    input.BrandName,
		Address:      input.Address,
		City:         input.City,
		State:        input.State,
		PostalCode:   input.PostalCode,
		Country:      input.Country,
		Categories:   input.Categories,
		CreatedAt:    time.Now(),
	}

	if err := uc.MerchantRepo.CreateMerchant(ctx, merchant); err != nil {
		return nil, fmt.Errorf("failed to create merchant: %w", err)
	}

	if uc.Metrics != nil {
		uc.Metrics.MerchantsRegisteredTotal.Inc()
	}
	uc.publishEvent(merchant)

	return merchant, nil
}

func (uc *DefaultMerchantUsecase) GetMerchantByAccount(ctx context.Context, userID string) (*domain.Merchant, error) {
	return uc.MerchantRepo.GetMerchantByUserID(ctx, userID)
}

func validateMerchantInput(input *merchantdto.RegisterMerchantInput) error {
	values := map[string]string{
		"email":        input.Email,
		"primaryPhone": input.PrimaryPhone,
		"whatsappNo":   input.WhatsappNo,
		"brandName":    input.BrandName,
		"address":      input.Address,
		"city":         input.City,
		"state":        input.State,
		"postalCode":   input.PostalCode,
		"country":      input.Country,
	}
	for _, field := range requiredMerchantFields {
		if values[field] == "" {
			return domain.NewValidationError(field, "missing or empty field")
		}
	}
	if len(input.Categories) == 0 {
		return domain.NewValidationError("categories", "at least one category must be selected")
	}
	return nil
}

// publishEvent is best-effort; a broker failure never fails registration.
func (uc *DefaultMerchantUsecase) publishEvent(merchant *domain.Merchant) {
	if uc.Publisher == nil {
		return
	}
	event := kafka.CatalogEvent{
		EventID:    uuid.New().String(),
		Type:       kafka.EventMerchantRegistered,
		MerchantID: merchant.ID,
		Name:       merchant.BrandName,
		Timestamp:  time.Now(),
	}
	value, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal merchant event", "error", err.Error())
		return
	}
	if err := uc.Publisher.Publish(uc.Topic, domain.Message{Key: []byte(merchant.ID), Value: value}); err != nil {
		slog.Error("failed to publish merchant event", "error", err.Error())
	}
}
