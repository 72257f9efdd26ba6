package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/digimart/catalog-service/internal/config"
	"github.com/digimart/catalog-service/internal/domain"
)

// Client talks to the hosted auth provider's REST API. Session and token
// issuance, password rules and verification delivery all live on the
// provider side; this client only translates its responses.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg config.Identity) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type credentialsRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type accountResponse struct {
	LocalID       string `json:"localId"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"emailVerified"`
	IDToken       string `json:"idToken"`
}

type lookupResponse struct {
	Users []struct {
		LocalID       string `json:"localId"`
		Email         string `json:"email"`
		EmailVerified bool   `json:"emailVerified"`
	} `json:"users"`
}

type providerError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) SignUp(ctx context.Context, email, password string) (*domain.ProviderAccount, error) {
	var account accountResponse
	err := c.post(ctx, "accounts:signUp", credentialsRequest{Email: email, Password: password, ReturnSecureToken: true}, &account)
	if err != nil {
		return nil, err
	}
	return &domain.ProviderAccount{
		UserID:  account.LocalID,
		Email:   account.Email,
		IDToken: account.IDToken,
	}, nil
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*domain.ProviderAccount, error) {
	var account accountResponse
	err := c.post(ctx, "accounts:signInWithPassword", credentialsRequest{Email: email, Password: password, ReturnSecureToken: true}, &account)
	if err != nil {
		return nil, err
	}
	return &domain.ProviderAccount{
		UserID:        account.LocalID,
		Email:         account.Email,
		EmailVerified: account.EmailVerified,
		IDToken:       account.IDToken,
	}, nil
}

func (c *Client) SendVerificationEmail(ctx context.Context, idToken string) error {
	payload := map[string]string{"requestType": "VERIFY_EMAIL", "idToken": idToken}
	return c.post(ctx, "accounts:sendOobCode", payload, &struct{}{})
}

func (c *Client) Lookup(ctx context.Context, idToken string) (*domain.Identity, error) {
	var lookup lookupResponse
	if err := c.post(ctx, "accounts:lookup", map[string]string{"idToken": idToken}, &lookup); err != nil {
		return nil, err
	}
	if len(lookup.Users) == 0 {
		return nil, domain.ErrSessionExpired
	}
	user := lookup.Users[0]
	return &domain.Identity{
		UserID:        user.LocalID,
		Email:         user.Email,
		EmailVerified: user.EmailVerified,
	}, nil
}

func (c *Client) post(ctx context.Context, endpoint string, payload any, out any) error {
	requestBodyBytes, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s?key=%s", c.baseURL, endpoint, c.apiKey)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("auth provider unreachable: %w", err)
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("auth provider response unreadable: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return json.Unmarshal(responseBodyBytes, out)
	}

	var provErr providerError
	if err := json.Unmarshal(responseBodyBytes, &provErr); err != nil {
		return fmt.Errorf("auth provider error: status %d", response.StatusCode)
	}
	return translateProviderError(provErr.Error.Message)
}

// translateProviderError maps the provider's error codes onto the closed
// domain error set. Unrecognized codes pass through wrapped.
func translateProviderError(code string) error {
	switch {
	case strings.HasPrefix(code, "EMAIL_EXISTS"):
		return domain.ErrEmailInUse
	case strings.HasPrefix(code, "INVALID_EMAIL"):
		return domain.ErrInvalidEmail
	case strings.HasPrefix(code, "WEAK_PASSWORD"):
		return domain.ErrWeakPassword
	case strings.HasPrefix(code, "EMAIL_NOT_FOUND"),
		strings.HasPrefix(code, "INVALID_PASSWORD"),
		strings.HasPrefix(code, "INVALID_LOGIN_CREDENTIALS"):
		return domain.ErrInvalidCredentials
	case strings.HasPrefix(code, "INVALID_ID_TOKEN"),
		strings.HasPrefix(code, "TOKEN_EXPIRED"):
		return domain.ErrSessionExpired
	default:
		return fmt.Errorf("auth provider error: %s", code)
	}
}
