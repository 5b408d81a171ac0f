package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryClothes     Category = "Clothes"
	CategoryShoes       Category = "Shoes"
	CategoryBags        Category = "Bags"
	CategoryAccessories Category = "Accessories"
)

var categories = []Category{CategoryClothes, CategoryShoes, CategoryBags, CategoryAccessories}

// ParseCategory matches case-insensitively, so both "Clothes" and the
// backend token "CLOTHES" resolve to CategoryClothes.
func ParseCategory(s string) (Category, bool) {
	for _, c := range categories {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, true
		}
	}
	return Category(s), false
}

func IsValidCategory(c Category) bool {
	for _, known := range categories {
		if known == c {
			return true
		}
	}
	return false
}

type DisplaySize string

const (
	SizeSmall  DisplaySize = "small"
	SizeMedium DisplaySize = "medium"
	SizeLarge  DisplaySize = "large"
)

func ParseDisplaySize(s string) (DisplaySize, bool) {
	switch DisplaySize(strings.ToLower(strings.TrimSpace(s))) {
	case SizeSmall:
		return SizeSmall, true
	case SizeMedium:
		return SizeMedium, true
	case SizeLarge:
		return SizeLarge, true
	default:
		return DisplaySize(s), false
	}
}

type Product struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    Category        `json:"category"`
	Gradient    string          `json:"gradient,omitempty"`
	Size        DisplaySize     `json:"size"`
	Stock       int             `json:"stock"`
	Image       string          `json:"image,omitempty"`
}

// ProductPatch carries the fields an admin edit sets; nil fields stay untouched.
type ProductPatch struct {
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Category    *Category        `json:"category,omitempty"`
	Gradient    *string          `json:"gradient,omitempty"`
	Size        *DisplaySize     `json:"size,omitempty"`
	Stock       *int             `json:"stock,omitempty"`
	Image       *string          `json:"image,omitempty"`
}

func (p ProductPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Price == nil && p.Category == nil &&
		p.Gradient == nil && p.Size == nil && p.Stock == nil && p.Image == nil
}

// Apply returns a copy of product with the patch merged in.
func (p ProductPatch) Apply(product Product) Product {
	if p.Title != nil {
		product.Title = *p.Title
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.Category != nil {
		product.Category = *p.Category
	}
	if p.Gradient != nil {
		product.Gradient = *p.Gradient
	}
	if p.Size != nil {
		product.Size = *p.Size
	}
	if p.Stock != nil {
		product.Stock = *p.Stock
	}
	if p.Image != nil {
		product.Image = *p.Image
	}
	return product
}

// Validate checks the invariants shared by admin create and edit.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return validationError("product title cannot be empty")
	}
	if p.Price.IsNegative() {
		return validationError("product price cannot be negative")
	}
	if p.Stock < 0 {
		return ErrNegativeStock
	}
	if !IsValidCategory(p.Category) {
		return validationError("invalid product category '%s'", p.Category)
	}
	if _, ok := ParseDisplaySize(string(p.Size)); !ok {
		return validationError("invalid product size '%s'", p.Size)
	}
	return nil
}

// PatchOf sets every field of product, for overwriting a mirror entry with
// the version the backend confirmed.
func PatchOf(product Product) ProductPatch {
	return ProductPatch{
		Title:       &product.Title,
		Description: &product.Description,
		Price:       &product.Price,
		Category:    &product.Category,
		Gradient:    &product.Gradient,
		Size:        &product.Size,
		Stock:       &product.Stock,
		Image:       &product.Image,
	}
}

// Normalized maps category and size to their canonical casing when they
// name a known value, so "SHOES" and "Large" are accepted from forms.
func (p Product) Normalized() Product {
	if c, ok := ParseCategory(string(p.Category)); ok {
		p.Category = c
	}
	if s, ok := ParseDisplaySize(string(p.Size)); ok {
		p.Size = s
	}
	return p
}

func (p ProductPatch) Normalized() ProductPatch {
	if p.Category != nil {
		if c, ok := ParseCategory(string(*p.Category)); ok {
			p.Category = &c
		}
	}
	if p.Size != nil {
		if s, ok := ParseDisplaySize(string(*p.Size)); ok {
			p.Size = &s
		}
	}
	return p
}
