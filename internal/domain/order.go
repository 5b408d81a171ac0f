package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

func IsValidStatus(status OrderStatus) bool {
	switch status {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// ParseOrderStatus lower-cases the backend token ("PENDING" -> pending).
func ParseOrderStatus(s string) OrderStatus {
	return OrderStatus(strings.ToLower(strings.TrimSpace(s)))
}

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// IsAvailable reports whether checkout accepts the method. Card is shown
// to the buyer but not accepted yet.
func (m PaymentMethod) IsAvailable() bool {
	return m == PaymentCash
}

type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Items           []OrderItem     `json:"items"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Status          OrderStatus     `json:"status"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod,omitempty"`
	ShippingAddress string          `json:"shippingAddress,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type OrderItem struct {
	ID        string          `json:"id,omitempty"`
	ProductID int             `json:"productId"`
	Title     string          `json:"title"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type OrderLine struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// OrderRequest is the order draft sent once at checkout. Prices are not
// part of it; the backend prices the order itself.
type OrderRequest struct {
	UserID          string
	Items           []OrderLine
	ShippingAddress string
	PaymentMethod   PaymentMethod
}

type OrderReceipt struct {
	ID          string          `json:"id"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      OrderStatus     `json:"status"`
}

type ShippingForm struct {
	FullName   string `json:"fullName" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
}

func (f ShippingForm) ShippingAddress() string {
	return strings.TrimSpace(f.Address) + ", " + strings.TrimSpace(f.City) + ", " + strings.TrimSpace(f.PostalCode)
}
