package model

import (
	"fmt"
	"time"
)

// Category is the closed set of watch brands carried by the store.
type Category string

const (
	CategoryRado    Category = "Rado"
	CategoryRolex   Category = "Rolex"
	CategoryFossil  Category = "Fossil"
	CategoryArmani  Category = "Armani"
	CategoryCasio   Category = "Casio"
	CategoryTissot  Category = "Tissot"
	CategoryGShock  Category = "G-Shock"
	CategoryHublot  Category = "Hublot"
	CategoryPatel   Category = "Patel"
	CategoryTag     Category = "Tag"
	CategoryCartier Category = "Cartier"
	CategoryTommy   Category = "Tommy"
)

var validCategories = map[Category]bool{
	CategoryRado: true, CategoryRolex: true, CategoryFossil: true,
	CategoryArmani: true, CategoryCasio: true, CategoryTissot: true,
	CategoryGShock: true, CategoryHublot: true, CategoryPatel: true,
	CategoryTag: true, CategoryCartier: true, CategoryTommy: true,
}

// Gender classifies a watch by intended wearer.
type Gender string

const (
	GenderMen    Gender = "Men"
	GenderWomen  Gender = "Women"
	GenderUnisex Gender = "Unisex"
)

// Badge is an optional marketing label shown on product cards.
type Badge string

const (
	BadgeNew     Badge = "new"
	BadgeSale    Badge = "sale"
	BadgePremium Badge = "premium"
	BadgeLimited Badge = "limited"
)

// ColorVariant is one selectable colour of a product, with optional
// variant-specific images.
type ColorVariant struct {
	Name   string   `json:"name" db:"name"`
	Color  string   `json:"color" db:"color"`
	Images []string `json:"images,omitempty" db:"images"`
}

// ColorSelection is the (name, colour value) pair a customer picked. It is
// part of the cart line-item identity together with the product ID.
type ColorSelection struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// DefaultColor is the sentinel selection used when a product has no variants.
func DefaultColor() ColorSelection {
	return ColorSelection{Name: "Default", Color: "#000000"}
}

// Product represents a watch in the catalogue. Prices are integer rupees.
//
// OriginalPrice, when present, is assumed to be >= Price so the discount badge
// renders sensibly; this is a documented assumption, not enforced here.
type Product struct {
	ID            string         `json:"id" db:"id"`
	Name          string         `json:"name" db:"name"`
	Description   string         `json:"description" db:"description"`
	Price         int            `json:"price" db:"price"`
	OriginalPrice *int           `json:"originalPrice,omitempty" db:"original_price"`
	Category      Category       `json:"category" db:"category"`
	Gender        Gender         `json:"gender" db:"gender"`
	Badge         Badge          `json:"badge,omitempty" db:"badge"`
	Colors        []ColorVariant `json:"colors,omitempty" db:"colors"`
	Features      []string       `json:"features,omitempty" db:"features"`
	Image         string         `json:"image" db:"image"`
	CreatedAt     time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time      `json:"updatedAt" db:"updated_at"`
}

// Validate checks the product at the system boundary so downstream code never
// sees an out-of-enum category, gender or badge.
func (p *Product) Validate() error {
	if p.ID == "" {
		return NewDomainError(ErrCodeMissingField, "product ID is required")
	}
	if p.Name == "" {
		return NewDomainError(ErrCodeMissingField, "product name is required")
	}
	if p.Price <= 0 {
		return NewDomainError(ErrCodeValidation, "product price must be positive")
	}
	if !validCategories[p.Category] {
		return NewDomainError(ErrCodeValidation, fmt.Sprintf("unknown category: %s", p.Category))
	}
	switch p.Gender {
	case GenderMen, GenderWomen, GenderUnisex:
	default:
		return NewDomainError(ErrCodeValidation, fmt.Sprintf("unknown gender: %s", p.Gender))
	}
	switch p.Badge {
	case "", BadgeNew, BadgeSale, BadgePremium, BadgeLimited:
	default:
		return NewDomainError(ErrCodeValidation, fmt.Sprintf("unknown badge: %s", p.Badge))
	}
	for i, c := range p.Colors {
		if c.Name == "" {
			return NewDomainError(ErrCodeValidation, fmt.Sprintf("color %d: name is required", i))
		}
	}
	return nil
}
