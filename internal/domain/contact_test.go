package domain

import (
	"net/url"
	"strings"
	"testing"
)

func TestContactLinkTargetsMerchantNumber(t *testing.T) {
	product := &Product{
		Name:        "Infinix Hot 12",
		Price:       "85000",
		Description: "Clean phone, barely used",
		BrandName:   "Okon Gadgets",
		MerchantNo:  "2348012345678",
	}

	link := ContactLink(product)

	if !strings.HasPrefix(link, "https://wa.me/2348012345678?text=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	text := parsed.Query().Get("text")
	for _, want := range []string{"Hello Okon Gadgets", "*Infinix Hot 12*", "Price: 85000", "Clean phone, barely used"} {
		if !strings.Contains(text, want) {
			t.Errorf("message missing %q, got %q", want, text)
		}
	}
}

func TestContactLinkTruncatesDescription(t *testing.T) {
	product := &Product{
		Name:        "Generator",
		Price:       "120000",
		Description: strings.Repeat("x", 250),
		BrandName:   "PowerHouse",
		MerchantNo:  "2348098765432",
	}

	parsed, err := url.Parse(ContactLink(product))
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	text := parsed.Query().Get("text")
	if strings.Contains(text, strings.Repeat("x", 101)) {
		t.Errorf("description was not truncated: %q", text)
	}
	if !strings.Contains(text, strings.Repeat("x", 100)+"...") {
		t.Errorf("truncated description missing ellipsis: %q", text)
	}
}
