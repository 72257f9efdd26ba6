package cloudinary

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/digimart/catalog-service/internal/config"
	"github.com/digimart/catalog-service/internal/domain"
	"github.com/jaevor/go-nanoid"
)

const defaultBaseURL = "https://api.cloudinary.com/v1_1"

// Client talks to the hosted media API. It uploads binary blobs and gets
// back secure URLs; image bytes are never persisted locally.
type Client struct {
	baseURL    string
	cloudName  string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
	newID      func() string
}

func NewClient(cfg config.Cloudinary) (*Client, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, errors.New("cloudinary credentials are not configured")
	}

	newID, err := nanoid.Standard(21)
	if err != nil {
		return nil, fmt.Errorf("failed to init public id generator: %w", err)
	}

	return &Client{
		baseURL:    defaultBaseURL,
		cloudName:  cfg.CloudName,
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		newID:      newID,
	}, nil
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) Upload(ctx context.Context, file domain.ImageFile) (*domain.UploadedImage, error) {
	publicID := c.newID()
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", file.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}

	fields := map[string]string{
		"api_key":   c.apiKey,
		"public_id": publicID,
		"timestamp": timestamp,
		"signature": Sign(map[string]string{"public_id": publicID, "timestamp": timestamp}, c.apiSecret),
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("failed to build upload request: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/image/upload", c.baseURL, c.cloudName)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", writer.FormDataContentType())

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("image upload failed: %w", err)
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("image upload failed: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		var uploaded uploadResponse
		if err := json.Unmarshal(responseBodyBytes, &uploaded); err != nil {
			return nil, fmt.Errorf("image upload failed: %w", err)
		}
		return &domain.UploadedImage{URL: uploaded.SecureURL, PublicID: uploaded.PublicID}, nil
	}

	var errResp errorResponse
	if err := json.Unmarshal(responseBodyBytes, &errResp); err != nil {
		return nil, fmt.Errorf("image upload failed: status %d", response.StatusCode)
	}
	return nil, fmt.Errorf("image upload failed: %s", errResp.Error.Message)
}

func (c *Client) Delete(ctx context.Context, publicID string) error {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	form := url.Values{}
	form.Set("api_key", c.apiKey)
	form.Set("public_id", publicID)
	form.Set("timestamp", timestamp)
	form.Set("signature", Sign(map[string]string{"public_id": publicID, "timestamp": timestamp}, c.apiSecret))

	endpoint := fmt.Sprintf("%s/%s/image/destroy", c.baseURL, c.cloudName)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBufferString(form.Encode()))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("image delete failed: %w", err)
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("image delete failed: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return nil
	}

	var errResp errorResponse
	if err := json.Unmarshal(responseBodyBytes, &errResp); err != nil {
		return fmt.Errorf("image delete failed: status %d", response.StatusCode)
	}
	return fmt.Errorf("image delete failed: %s", errResp.Error.Message)
}

// Sign computes the API request signature: the sorted key=value pairs joined
// with "&", concatenated with the API secret, hashed with SHA-1.
func Sign(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var payload bytes.Buffer
	for i, key := range keys {
		if i > 0 {
			payload.WriteByte('&')
		}
		payload.WriteString(key)
		payload.WriteByte('=')
		payload.WriteString(params[key])
	}
	payload.WriteString(secret)

	sum := sha1.Sum(payload.Bytes())
	return hex.EncodeToString(sum[:])
}
