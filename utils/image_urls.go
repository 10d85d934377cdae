package utils

import (
	"strings"

	"github.com/Fletushka-Katalog/fletushka-gateway/models"
)

// ProxyImageURL rewrites a backend image path to the gateway's
// same-origin proxy route so the browser never loads images cross-origin.
// Absolute URLs (external CDNs) pass through untouched.
func ProxyImageURL(imagePath string) string {
	if imagePath == "" {
		return ""
	}
	if strings.HasPrefix(imagePath, "http://") || strings.HasPrefix(imagePath, "https://") {
		return imagePath
	}
	return "/api/images/" + strings.TrimPrefix(imagePath, "/")
}

// Every image reference leaving the gateway goes through the same
// translation, so <img> tags always hit the proxy route.

func RewriteFlyer(f *models.Flyer) {
	f.CoverImage = ProxyImageURL(f.CoverImage)
}

func RewriteFlyers(flyers []models.Flyer) {
	for i := range flyers {
		RewriteFlyer(&flyers[i])
	}
}

func RewriteProduct(p *models.Product) {
	p.Image = ProxyImageURL(p.Image)
}

func RewriteProducts(products []models.Product) {
	for i := range products {
		RewriteProduct(&products[i])
	}
}

func RewriteBrand(b *models.Brand) {
	b.Logo = ProxyImageURL(b.Logo)
}

func RewriteBrands(brands []models.Brand) {
	for i := range brands {
		RewriteBrand(&brands[i])
	}
}
