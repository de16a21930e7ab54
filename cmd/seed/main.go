package main

import (
	"context"
	"fmt"
	"os"

	"chronokart/internal/config"
	"chronokart/internal/database"
	"chronokart/internal/model"
	"chronokart/internal/repository"
	"chronokart/internal/service"

	"github.com/joho/godotenv"
)

func intPtr(v int) *int { return &v }

func sampleProducts() []model.Product {
	return []model.Product{
		{
			ID:            "W001",
			Name:          "Rado Captain Cook Automatic",
			Description:   "37mm bronze case with a high-tech ceramic bezel.",
			Price:         2499,
			OriginalPrice: intPtr(2999),
			Category:      model.CategoryRado,
			Gender:        model.GenderMen,
			Badge:         model.BadgePremium,
			Colors: []model.ColorVariant{
				{Name: "Green", Color: "#1f5c42"},
				{Name: "Blue", Color: "#1b3a6b"},
			},
			Features: []string{"Automatic movement", "Sapphire crystal", "20 ATM"},
			Image:    "/images/w001.jpg",
		},
		{
			ID:          "W002",
			Name:        "Casio Vintage A168",
			Description: "Stainless steel digital classic with LED backlight.",
			Price:       1299,
			Category:    model.CategoryCasio,
			Gender:      model.GenderUnisex,
			Badge:       model.BadgeNew,
			Features:    []string{"Stopwatch", "Daily alarm", "7-year battery"},
			Image:       "/images/w002.jpg",
		},
		{
			ID:            "W003",
			Name:          "Fossil Gen 6 Wellness",
			Description:   "44mm smartwatch with heart rate and SpO2 tracking.",
			Price:         1899,
			OriginalPrice: intPtr(2199),
			Category:      model.CategoryFossil,
			Gender:        model.GenderWomen,
			Badge:         model.BadgeSale,
			Colors: []model.ColorVariant{
				{Name: "Rose Gold", Color: "#b76e79"},
				{Name: "Black", Color: "#111111"},
			},
			Image: "/images/w003.jpg",
		},
		{
			ID:          "W004",
			Name:        "Tissot PRX Powermatic 80",
			Description: "Integrated bracelet sports watch with 80h reserve.",
			Price:       3499,
			Category:    model.CategoryTissot,
			Gender:      model.GenderMen,
			Badge:       model.BadgeLimited,
			Colors: []model.ColorVariant{
				{Name: "Ice Blue", Color: "#a8c9d8"},
			},
			Image: "/images/w004.jpg",
		},
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	productRepo := repository.NewProductRepository(pool, logger)
	productService := service.NewProductService(productRepo, logger)

	seeded := 0
	for _, p := range sampleProducts() {
		existing, err := productRepo.GetByID(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("failed to check product %s: %w", p.ID, err)
		}
		if existing != nil {
			logger.Debug().Str("product_id", p.ID).Msg("product already seeded, skipping")
			continue
		}

		if err := productService.Create(ctx, &p); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.ID, err)
		}
		seeded++
	}

	logger.Info().Int("seeded", seeded).Msg("catalogue seed completed")
	return nil
}
