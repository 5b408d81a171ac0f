package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DashboardStats struct {
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalOrders      int             `json:"totalOrders"`
	PendingOrders    int             `json:"pendingOrders"`
	ProcessingOrders int             `json:"processingOrders"`
	ShippedOrders    int             `json:"shippedOrders"`
	DeliveredOrders  int             `json:"deliveredOrders"`
	CancelledOrders  int             `json:"cancelledOrders"`
}

type Dashboard struct {
	Stats        DashboardStats `json:"stats"`
	RecentOrders []AdminOrder   `json:"recentOrders"`
}

// AdminOrder is an order joined with the user who placed it.
type AdminOrder struct {
	Order
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
}

type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "active"
	CustomerDisabled CustomerStatus = "disabled"
)

type Customer struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Status        CustomerStatus  `json:"status"`
	OrderCount    int             `json:"orderCount"`
	TotalSpent    decimal.Decimal `json:"totalSpent"`
	LastOrderDate *time.Time      `json:"lastOrderDate,omitempty"`
}

// AdminSnapshot is the combined orders + users read the admin pages share.
type AdminSnapshot struct {
	Orders []Order
	Users  []User
}

type OrderFilter struct {
	Status OrderStatus
	Search string
}
