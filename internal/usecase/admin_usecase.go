package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"storefront/internal/clients"
	"storefront/internal/domain"
)

const (
	recentOrdersLimit = 10
	unknownCustomer   = "Unknown Guest"
	unknownEmail      = "No Email"
)

var _ domain.AdminUseCase = (*adminUseCase)(nil)

type adminUseCase struct {
	api clients.StorefrontAPI
	log *logrus.Logger
}

func NewAdminUseCase(api clients.StorefrontAPI, logger *logrus.Logger) domain.AdminUseCase {
	return &adminUseCase{api: api, log: logger}
}

// snapshot tolerates GraphQL errors and works with whatever data came
// back; only a transport failure is returned as an error.
func (uc *adminUseCase) snapshot(ctx context.Context) (domain.AdminSnapshot, error) {
	snap, err := uc.api.AdminSnapshot(ctx)
	var gqlErr *clients.GraphQLError
	switch {
	case err == nil:
	case errors.As(err, &gqlErr):
		uc.log.Warnf("Use Case: Admin data is partial (%d orders, %d users): %v", len(snap.Orders), len(snap.Users), err)
	default:
		uc.log.Errorf("Use Case: Failed to load admin data: %v", err)
		return domain.AdminSnapshot{Orders: []domain.Order{}, Users: []domain.User{}}, fmt.Errorf("failed to load admin data: %w", err)
	}
	if snap.Orders == nil {
		snap.Orders = []domain.Order{}
	}
	if snap.Users == nil {
		snap.Users = []domain.User{}
	}
	return snap, nil
}

func (uc *adminUseCase) Dashboard(ctx context.Context) (domain.Dashboard, error) {
	snap, err := uc.snapshot(ctx)
	dashboard := domain.Dashboard{
		Stats:        dashboardStats(snap.Orders),
		RecentOrders: []domain.AdminOrder{},
	}
	if err != nil {
		return dashboard, err
	}

	orders := joinUsers(newestFirst(snap.Orders), snap.Users)
	if len(orders) > recentOrdersLimit {
		orders = orders[:recentOrdersLimit]
	}
	dashboard.RecentOrders = orders
	uc.log.Infof("Use Case: Dashboard built from %d orders and %d users", len(snap.Orders), len(snap.Users))
	return dashboard, nil
}

func (uc *adminUseCase) Orders(ctx context.Context, filter domain.OrderFilter) ([]domain.AdminOrder, error) {
	if filter.Status != "" && !domain.IsValidStatus(filter.Status) {
		return nil, fmt.Errorf("%w: unknown order status '%s'", domain.ErrValidation, filter.Status)
	}
	snap, err := uc.snapshot(ctx)
	if err != nil {
		return []domain.AdminOrder{}, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := []domain.AdminOrder{}
	for _, o := range joinUsers(newestFirst(snap.Orders), snap.Users) {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(o.ID), search) &&
			!strings.Contains(strings.ToLower(o.CustomerName), search) &&
			!strings.Contains(strings.ToLower(o.CustomerEmail), search) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (uc *adminUseCase) Customers(ctx context.Context) ([]domain.Customer, error) {
	snap, err := uc.snapshot(ctx)
	if err != nil {
		return []domain.Customer{}, err
	}

	byUser := make(map[string][]domain.Order)
	for _, o := range snap.Orders {
		byUser[o.UserID] = append(byUser[o.UserID], o)
	}

	customers := make([]domain.Customer, 0, len(snap.Users))
	for _, u := range snap.Users {
		c := domain.Customer{
			ID:         u.ID,
			Name:       u.DisplayName(),
			Email:      u.Email,
			Status:     domain.CustomerDisabled,
			TotalSpent: decimal.Zero,
		}
		if u.IsActive {
			c.Status = domain.CustomerActive
		}
		for _, o := range byUser[u.ID] {
			c.OrderCount++
			if o.Status != domain.StatusCancelled {
				c.TotalSpent = c.TotalSpent.Add(o.TotalAmount)
			}
			if !o.CreatedAt.IsZero() && (c.LastOrderDate == nil || o.CreatedAt.After(*c.LastOrderDate)) {
				created := o.CreatedAt
				c.LastOrderDate = &created
			}
		}
		customers = append(customers, c)
	}
	return customers, nil
}

// dashboardStats counts every order; cancelled orders do not add revenue.
func dashboardStats(orders []domain.Order) domain.DashboardStats {
	stats := domain.DashboardStats{TotalRevenue: decimal.Zero}
	for _, o := range orders {
		stats.TotalOrders++
		switch o.Status {
		case domain.StatusPending:
			stats.PendingOrders++
		case domain.StatusProcessing:
			stats.ProcessingOrders++
		case domain.StatusShipped:
			stats.ShippedOrders++
		case domain.StatusDelivered:
			stats.DeliveredOrders++
		case domain.StatusCancelled:
			stats.CancelledOrders++
			continue
		}
		stats.TotalRevenue = stats.TotalRevenue.Add(o.TotalAmount)
	}
	return stats
}

func newestFirst(orders []domain.Order) []domain.Order {
	sorted := make([]domain.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

func joinUsers(orders []domain.Order, users []domain.User) []domain.AdminOrder {
	byID := make(map[string]domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	out := make([]domain.AdminOrder, 0, len(orders))
	for _, o := range orders {
		ao := domain.AdminOrder{Order: o, CustomerName: unknownCustomer, CustomerEmail: unknownEmail}
		if u, ok := byID[o.UserID]; ok {
			if name := u.DisplayName(); name != "" {
				ao.CustomerName = name
			}
			if u.Email != "" {
				ao.CustomerEmail = u.Email
			}
		}
		out = append(out, ao)
	}
	return out
}
