package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/digimart/catalog-service/internal/domain"
	sessiondto "github.com/digimart/catalog-service/internal/usecase/dto/session"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionUsecase replaces ambient auth state with an app-level session
// store: sign-in mints a signed token, log-out tears the record down, and
// every request resolves its identity through Current.
type SessionUsecase interface {
	SignUp(ctx context.Context, email, password string) (*sessiondto.AuthOutput, error)
	LogIn(ctx context.Context, email, password string) (*sessiondto.AuthOutput, error)
	Current(ctx context.Context, token string) (*domain.Session, error)
	LogOut(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, token string) error
}

type DefaultSessionUsecase struct {
	Provider domain.IdentityProvider
	Store    domain.SessionStore
	Secret   []byte
	TTL      time.Duration
}

func NewDefaultSessionUsecase(
	provider domain.IdentityProvider,
	store domain.SessionStore,
	secret string,
	ttl time.Duration,
) *DefaultSessionUsecase {
	return &DefaultSessionUsecase{
		Provider: provider,
		Store:    store,
		Secret:   []byte(secret),
		TTL:      ttl,
	}
}

// SignUp registers the account with the hosted provider, sends the
// verification email and opens a (still unverified) session.
func (uc *DefaultSessionUsecase) SignUp(ctx context.Context, email, password string) (*sessiondto.AuthOutput, error) {
	account, err := uc.Provider.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := uc.Provider.SendVerificationEmail(ctx, account.IDToken); err != nil {
		return nil, fmt.Errorf("failed to send verification email: %w", err)
	}

	return uc.openSession(ctx, account)
}

func (uc *DefaultSessionUsecase) LogIn(ctx context.Context, email, password string) (*sessiondto.AuthOutput, error) {
	account, err := uc.Provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	return uc.openSession(ctx, account)
}

func (uc *DefaultSessionUsecase) Current(ctx context.Context, token string) (*domain.Session, error) {
	sessionID, err := uc.parseToken(token)
	if err != nil {
		return nil, err
	}

	session, err := uc.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (uc *DefaultSessionUsecase) LogOut(ctx context.Context, token string) error {
	sessionID, err := uc.parseToken(token)
	if err != nil {
		return err
	}
	return uc.Store.Delete(ctx, sessionID)
}

// ResendVerification re-sends the provider's verification email using the
// provider token retained in the session record.
func (uc *DefaultSessionUsecase) ResendVerification(ctx context.Context, token string) error {
	session, err := uc.Current(ctx, token)
	if err != nil {
		return err
	}
	if session.EmailVerified {
		return nil
	}
	return uc.Provider.SendVerificationEmail(ctx, session.ProviderToken)
}

func (uc *DefaultSessionUsecase) openSession(ctx context.Context, account *domain.ProviderAccount) (*sessiondto.AuthOutput, error) {
	now := time.Now()
	session := &domain.Session{
		ID:            uuid.New().String(),
		UserID:        account.UserID,
		Email:         account.Email,
		EmailVerified: account.EmailVerified,
		ProviderToken: account.IDToken,
		CreatedAt:     now,
		ExpiresAt:     now.Add(uc.TTL),
	}

	if err := uc.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	claims := jwt.MapClaims{
		"jti":   session.ID,
		"sub":   session.UserID,
		"email": session.Email,
		"iat":   now.Unix(),
		"exp":   session.ExpiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.Secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &sessiondto.AuthOutput{
		Token:         token,
		UserID:        session.UserID,
		Email:         session.Email,
		EmailVerified: session.EmailVerified,
		ExpiresAt:     session.ExpiresAt,
	}, nil
}

func (uc *DefaultSessionUsecase) parseToken(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return uc.Secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", domain.ErrSessionExpired
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.ErrSessionExpired
	}
	sessionID, ok := claims["jti"].(string)
	if !ok || sessionID == "" {
		return "", domain.ErrSessionExpired
	}
	return sessionID, nil
}
