package domain

import "github.com/shopspring/decimal"

// CartLine snapshots the product at add time; later catalog edits do not
// reach lines already in the cart.
type CartLine struct {
	ProductID int             `json:"productId"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Category  Category        `json:"category"`
	Image     string          `json:"image,omitempty"`
	Quantity  int             `json:"quantity"`
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type ProductSnapshot struct {
	ProductID int
	Title     string
	Price     decimal.Decimal
	Category  Category
	Image     string
}

func SnapshotOf(p Product) ProductSnapshot {
	return ProductSnapshot{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Category:  p.Category,
		Image:     p.Image,
	}
}

type CartSummary struct {
	Lines      []CartLine      `json:"lines"`
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}
