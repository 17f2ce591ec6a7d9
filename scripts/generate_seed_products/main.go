package main

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"glamora/internal/model"
)

// generateSeedProducts creates a sample catalogue seed file for local
// development. The file is gzipped JSON lines, one product per line, in the
// format the catalogue loader expects.
func main() {
	dataDir := "data/catalog"

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	filePath := filepath.Join(dataDir, "products.gz")
	products := sampleProducts()

	if err := createSeedFile(filePath, products); err != nil {
		log.Fatalf("Failed to create %s: %v", filePath, err)
	}

	fmt.Printf("Created %s with %d products\n", filePath, len(products))
}

func sampleProducts() []model.Product {
	now := time.Now().UTC()
	serumOriginal := 36.00
	mistOriginal := 26.00
	deluxePrice := 42.00
	reviewTitle := "Glow for days"
	reviewComment := "Two weeks in and my skin has never looked brighter."

	return []model.Product{
		{
			ID:               "prod-radiance-serum",
			Name:             "Radiance Serum",
			Description:      "A lightweight vitamin C serum that brightens and evens skin tone with daily use.",
			ShortDescription: "Brightening vitamin C serum",
			Price:            28.00,
			OriginalPrice:    &serumOriginal,
			Images:           []string{"/images/radiance-serum-1.jpg", "/images/radiance-serum-2.jpg"},
			Category:         "Skincare",
			Rating:           4.7,
			ReviewCount:      1,
			InStock:          true,
			StockQuantity:    120,
			SKU:              "GLM-SKN-001",
			Tags:             []string{"vitamin-c", "brightening"},
			IsBestSeller:     true,
			Benefits:         []string{"Brightens dull skin", "Fades dark spots"},
			Reviews: []model.ProductReview{
				{
					ID:        "rev-radiance-001",
					ProductID: "prod-radiance-serum",
					UserID:    "seed-user-001",
					Rating:    5,
					Title:     &reviewTitle,
					Comment:   &reviewComment,
					Verified:  true,
					CreatedAt: now,
					UpdatedAt: now,
				},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:               "prod-velvet-lipstick",
			Name:             "Velvet Matte Lipstick",
			Description:      "A long-wearing matte lipstick with a weightless velvet finish.",
			ShortDescription: "Long-wear matte lipstick",
			Price:            19.50,
			Images:           []string{"/images/velvet-lipstick-1.jpg"},
			Category:         "Makeup",
			Rating:           4.4,
			InStock:          true,
			StockQuantity:    200,
			SKU:              "GLM-MKP-002",
			Tags:             []string{"matte", "long-wear"},
			IsNew:            true,
			Benefits:         []string{"Eight-hour wear", "Non-drying formula"},
			Variants: []model.ProductVariant{
				{ID: "var-velvet-ruby", ProductID: "prod-velvet-lipstick", Name: "Ruby", InStock: true, CreatedAt: now, UpdatedAt: now},
				{ID: "var-velvet-rosewood", ProductID: "prod-velvet-lipstick", Name: "Rosewood", InStock: true, CreatedAt: now, UpdatedAt: now},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:               "prod-hydra-night-cream",
			Name:             "Hydra Night Cream",
			Description:      "An overnight moisturiser with hyaluronic acid and ceramides for deep hydration.",
			ShortDescription: "Overnight hydrating cream",
			Price:            34.00,
			Images:           []string{"/images/hydra-night-cream-1.jpg"},
			Category:         "Skincare",
			Rating:           4.8,
			InStock:          true,
			StockQuantity:    80,
			SKU:              "GLM-SKN-003",
			Tags:             []string{"hydrating", "night-care"},
			Benefits:         []string{"Restores moisture overnight"},
			Variants: []model.ProductVariant{
				{ID: "var-hydra-deluxe", ProductID: "prod-hydra-night-cream", Name: "Deluxe 100ml", Price: &deluxePrice, InStock: true, CreatedAt: now, UpdatedAt: now},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:               "prod-silk-repair-shampoo",
			Name:             "Silk Repair Shampoo",
			Description:      "A sulphate-free shampoo that strengthens damaged hair with silk proteins.",
			ShortDescription: "Strengthening sulphate-free shampoo",
			Price:            16.00,
			Images:           []string{"/images/silk-repair-shampoo-1.jpg"},
			Category:         "Haircare",
			Rating:           4.2,
			InStock:          true,
			StockQuantity:    150,
			SKU:              "GLM-HRC-004",
			Tags:             []string{"sulphate-free", "repair"},
			Benefits:         []string{"Reduces breakage"},
			CreatedAt:        now,
			UpdatedAt:        now,
		},
		{
			ID:               "prod-rose-petal-mist",
			Name:             "Rose Petal Mist",
			Description:      "A refreshing rose water facial mist that soothes and preps skin.",
			ShortDescription: "Soothing rose facial mist",
			Price:            22.00,
			OriginalPrice:    &mistOriginal,
			Images:           []string{"/images/rose-petal-mist-1.jpg"},
			Category:         "Skincare",
			Rating:           4.5,
			InStock:          false,
			StockQuantity:    0,
			SKU:              "GLM-SKN-005",
			Tags:             []string{"soothing", "rose"},
			Benefits:         []string{"Calms redness", "Preps for makeup"},
			CreatedAt:        now,
			UpdatedAt:        now,
		},
	}
}

func createSeedFile(filePath string, products []model.Product) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	defer gzipWriter.Close()

	encoder := json.NewEncoder(gzipWriter)
	for _, p := range products {
		if err := encoder.Encode(p); err != nil {
			return fmt.Errorf("failed to write product %s: %w", p.ID, err)
		}
	}

	return nil
}
