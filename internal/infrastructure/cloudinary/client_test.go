package cloudinary

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/digimart/catalog-service/internal/config"
	"github.com/digimart/catalog-service/internal/domain"
)

func TestSign(t *testing.T) {
	// Keys must be sorted before hashing, so insertion order is irrelevant.
	a := Sign(map[string]string{"timestamp": "1700000000", "public_id": "abc"}, "secret")
	b := Sign(map[string]string{"public_id": "abc", "timestamp": "1700000000"}, "secret")
	if a != b {
		t.Fatalf("signature depends on map order: %s vs %s", a, b)
	}
	if len(a) != 40 {
		t.Errorf("expected hex sha1 digest, got %q", a)
	}
	if a == Sign(map[string]string{"public_id": "abc", "timestamp": "1700000000"}, "other") {
		t.Error("secret must affect the signature")
	}
}

func TestNewClientRequiresCredentials(t *testing.T) {
	if _, err := NewClient(config.Cloudinary{CloudName: "demo", APIKey: "key"}); err == nil {
		t.Fatal("expected error for missing secret")
	}
}

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	client, err := NewClient(config.Cloudinary{CloudName: "demo", APIKey: "key", APISecret: "secret"})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	client.baseURL = serverURL
	return client
}

func TestUpload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/demo/image/upload") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("bad multipart form: %v", err)
		}

		publicID := r.FormValue("public_id")
		timestamp := r.FormValue("timestamp")
		wantSig := Sign(map[string]string{"public_id": publicID, "timestamp": timestamp}, "secret")
		if r.FormValue("signature") != wantSig {
			t.Errorf("signature mismatch: got %s want %s", r.FormValue("signature"), wantSig)
		}
		if r.FormValue("api_key") != "key" {
			t.Errorf("api_key = %q", r.FormValue("api_key"))
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("missing file part: %v", err)
		}
		file.Close()
		if header.Filename != "front.jpg" {
			t.Errorf("filename = %q", header.Filename)
		}

		json.NewEncoder(w).Encode(map[string]string{
			"secure_url": "https://res.cloudinary.com/demo/front.jpg",
			"public_id":  publicID,
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	uploaded, err := client.Upload(context.Background(), domain.ImageFile{
		Name:        "front.jpg",
		ContentType: "image/jpeg",
		Data:        []byte{0xff, 0xd8},
	})
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if uploaded.URL != "https://res.cloudinary.com/demo/front.jpg" {
		t.Errorf("URL = %q", uploaded.URL)
	}
	if uploaded.PublicID == "" {
		t.Error("expected a public id")
	}
}

func TestUploadErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "Invalid Signature"},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.Upload(context.Background(), domain.ImageFile{Name: "x.jpg", Data: []byte{1}})
	if err == nil || !strings.Contains(err.Error(), "Invalid Signature") {
		t.Fatalf("expected provider message in error, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/demo/image/destroy") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("bad form: %v", err)
		}
		if r.FormValue("public_id") != "pub-1" {
			t.Errorf("public_id = %q", r.FormValue("public_id"))
		}
		json.NewEncoder(w).Encode(map[string]string{"result": "ok"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	if err := client.Delete(context.Background(), "pub-1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
}
