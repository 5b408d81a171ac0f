package clients

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"storefront/internal/domain"
)

// wireID accepts ids sent either as JSON numbers or as strings.
type wireID string

func (id *wireID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = wireID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a number or a string, got %s", b)
	}
	*id = wireID(n.String())
	return nil
}

type wireInt int

func (v *wireInt) UnmarshalJSON(b []byte) error {
	var id wireID
	if err := id.UnmarshalJSON(b); err != nil {
		return err
	}
	if id == "" {
		*v = 0
		return nil
	}
	n, err := strconv.Atoi(string(id))
	if err != nil {
		return fmt.Errorf("expected an integer id, got %q", string(id))
	}
	*v = wireInt(n)
	return nil
}

// Category and size travel upper-cased ("CLOTHES", "MEDIUM").
func categoryToWire(c domain.Category) string {
	return strings.ToUpper(string(c))
}

func sizeToWire(s domain.DisplaySize) string {
	return strings.ToUpper(string(s))
}

type wireProduct struct {
	ID          wireInt         `json:"id"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Gradient    *string         `json:"gradient"`
	Size        string          `json:"size"`
	Stock       int             `json:"stock"`
	ImageURL    *string         `json:"imageUrl"`
}

func (w wireProduct) toDomain() (domain.Product, error) {
	category, ok := domain.ParseCategory(w.Category)
	if !ok {
		return domain.Product{}, fmt.Errorf("product %d has unknown category %q", w.ID, w.Category)
	}
	size, ok := domain.ParseDisplaySize(w.Size)
	if !ok {
		size = domain.SizeMedium
	}
	return domain.Product{
		ID:          int(w.ID),
		Title:       w.Title,
		Description: deref(w.Description),
		Price:       w.Price,
		Category:    category,
		Gradient:    deref(w.Gradient),
		Size:        size,
		Stock:       w.Stock,
		Image:       deref(w.ImageURL),
	}, nil
}

func productInput(p domain.Product) map[string]any {
	return map[string]any{
		"title":       p.Title,
		"description": p.Description,
		"price":       p.Price.InexactFloat64(),
		"category":    categoryToWire(p.Category),
		"gradient":    p.Gradient,
		"size":        sizeToWire(p.Size),
		"stock":       p.Stock,
		"imageUrl":    p.Image,
	}
}

// patchInput only carries the fields the patch sets.
func patchInput(p domain.ProductPatch) map[string]any {
	in := map[string]any{}
	if p.Title != nil {
		in["title"] = *p.Title
	}
	if p.Description != nil {
		in["description"] = *p.Description
	}
	if p.Price != nil {
		in["price"] = p.Price.InexactFloat64()
	}
	if p.Category != nil {
		in["category"] = categoryToWire(*p.Category)
	}
	if p.Gradient != nil {
		in["gradient"] = *p.Gradient
	}
	if p.Size != nil {
		in["size"] = sizeToWire(*p.Size)
	}
	if p.Stock != nil {
		in["stock"] = *p.Stock
	}
	if p.Image != nil {
		in["imageUrl"] = *p.Image
	}
	return in
}

type wireUser struct {
	ID       wireID  `json:"id"`
	Email    string  `json:"email"`
	Username string  `json:"username"`
	FullName *string `json:"fullName"`
	IsAdmin  bool    `json:"isAdmin"`
	IsActive *bool   `json:"isActive"`
}

func (w wireUser) toDomain() domain.User {
	active := true
	if w.IsActive != nil {
		active = *w.IsActive
	}
	return domain.User{
		ID:       string(w.ID),
		Email:    w.Email,
		Username: w.Username,
		FullName: deref(w.FullName),
		IsAdmin:  w.IsAdmin,
		IsActive: active,
	}
}

type wireProductRef struct {
	Title string `json:"title"`
}

type wireOrderItem struct {
	ID        wireID          `json:"id"`
	ProductID wireInt         `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Product   *wireProductRef `json:"product"`
}

type wireOrder struct {
	ID              wireID          `json:"id"`
	UserID          wireID          `json:"userId"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Status          string          `json:"status"`
	PaymentMethod   *string         `json:"paymentMethod"`
	ShippingAddress *string         `json:"shippingAddress"`
	CreatedAt       string          `json:"createdAt"`
	Items           []wireOrderItem `json:"items"`
}

func (w wireOrder) toDomain() domain.Order {
	items := make([]domain.OrderItem, 0, len(w.Items))
	for _, it := range w.Items {
		item := domain.OrderItem{
			ID:        string(it.ID),
			ProductID: int(it.ProductID),
			Quantity:  it.Quantity,
			Price:     it.Price,
		}
		if it.Product != nil {
			item.Title = it.Product.Title
		}
		items = append(items, item)
	}
	return domain.Order{
		ID:              string(w.ID),
		UserID:          string(w.UserID),
		Items:           items,
		TotalAmount:     w.TotalAmount,
		Status:          domain.ParseOrderStatus(w.Status),
		PaymentMethod:   domain.PaymentMethod(strings.ToLower(deref(w.PaymentMethod))),
		ShippingAddress: deref(w.ShippingAddress),
		CreatedAt:       parseTimestamp(w.CreatedAt),
	}
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999",
}

// parseTimestamp returns the zero time for values it cannot read; the
// backend emits both zoned and naive ISO timestamps.
func parseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

type wireAuthPayload struct {
	AccessToken string   `json:"accessToken"`
	User        wireUser `json:"user"`
}

func (w wireAuthPayload) toDomain() domain.AuthPayload {
	return domain.AuthPayload{AccessToken: w.AccessToken, User: w.User.toDomain()}
}

// numericOrString sends numeric ids as Int variables.
func numericOrString(id string) any {
	if n, err := strconv.Atoi(id); err == nil {
		return n
	}
	return id
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
