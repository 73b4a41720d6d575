package seed

import (
	"context"
	"fmt"

	"tireshop/internal/domain"
	productrepo "tireshop/internal/repository/product"
)

// Apply inserts a small tire catalog for manual testing. It is idempotent:
// products upsert by SKU.
func Apply(ctx context.Context, repo productrepo.Repository) error {
	products := []domain.Product{
		{
			SKU:         "TIRE-HKPL-R5-20555R16",
			Name:        "Nokian Hakkapeliitta R5",
			Description: "Studless winter tire for icy roads",
			Season:      "winter",
			Size:        "205/55 R16",
			Type:        "studless",
			PriceCents:  1250000,
			Currency:    "rub",
		},
		{
			SKU:         "TIRE-ICEX-3-20555R16",
			Name:        "Michelin X-Ice Snow",
			Description: "Winter tire with long-lasting tread",
			Season:      "winter",
			Size:        "205/55 R16",
			Type:        "studless",
			PriceCents:  1180000,
			Currency:    "rub",
		},
		{
			SKU:         "TIRE-NORDMAN-7-19565R15",
			Name:        "Nordman 7",
			Description: "Studded winter tire",
			Season:      "winter",
			Size:        "195/65 R15",
			Type:        "studded",
			PriceCents:  640000,
			Currency:    "rub",
		},
		{
			SKU:         "TIRE-PRIMACY-4-20555R16",
			Name:        "Michelin Primacy 4",
			Description: "Comfort-focused summer tire",
			Season:      "summer",
			Size:        "205/55 R16",
			Type:        "touring",
			PriceCents:  890000,
			Currency:    "rub",
		},
		{
			SKU:         "TIRE-CROSSCLIMATE-2-22545R17",
			Name:        "Michelin CrossClimate 2",
			Description: "All-season tire rated for light snow",
			Season:      "all-season",
			Size:        "225/45 R17",
			Type:        "touring",
			PriceCents:  1420000,
			Currency:    "rub",
		},
	}

	for _, p := range products {
		if _, err := repo.Upsert(ctx, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.SKU, err)
		}
	}

	return nil
}
