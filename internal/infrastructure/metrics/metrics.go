package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CatalogMetrics covers merchant onboarding, product lifecycle and the
// media upload path.
type CatalogMetrics struct {
	MerchantsRegisteredTotal prometheus.Counter
	ProductsCreatedTotal     prometheus.Counter
	ProductsUpdatedTotal     prometheus.Counter
	ProductsDeletedTotal     prometheus.Counter

	ImageUploadsTotal *prometheus.CounterVec

	ProductsGauge prometheus.Gauge
}

func NewCatalogMetrics() *CatalogMetrics {
	return &CatalogMetrics{
		MerchantsRegisteredTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "digimart_merchants_registered_total",
			Help: "Merchant stores registered",
		}),
		ProductsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "digimart_products_created_total",
			Help: "Products created",
		}),
		ProductsUpdatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "digimart_products_updated_total",
			Help: "Products updated",
		}),
		ProductsDeletedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "digimart_products_deleted_total",
			Help: "Products deleted",
		}),
		ImageUploadsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "digimart_image_uploads_total",
			Help: "Media API uploads by outcome",
		}, []string{"status"}),
		ProductsGauge: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "digimart_catalog_products",
			Help: "Products currently in the catalog",
		}),
	}
}
