package domain

import (
	"fmt"
	"net/url"
)

const contactDescriptionLimit = 100

// ContactLink builds the wa.me deep link that opens the external messaging
// app with a pre-filled inquiry for the product.
func ContactLink(p *Product) string {
	desc := p.Description
	if runes := []rune(desc); len(runes) > contactDescriptionLimit {
		desc = string(runes[:contactDescriptionLimit])
	}
	message := fmt.Sprintf(
		"Hello %s,\n\nI'm interested in your product:\n\n*%s*\nPrice: %s\n\n%s...\n\nCould you provide more details?",
		p.BrandName, p.Name, p.Price, desc,
	)
	return fmt.Sprintf("https://wa.me/%s?text=%s", p.MerchantNo, url.QueryEscape(message))
}
