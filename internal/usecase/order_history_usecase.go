package usecase

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"storefront/internal/clients"
	"storefront/internal/domain"
	"storefront/internal/state"
)

var _ domain.OrderHistoryUseCase = (*orderHistoryUseCase)(nil)

type orderHistoryUseCase struct {
	api      clients.StorefrontAPI
	sessions *state.SessionStore
	log      *logrus.Logger
}

func NewOrderHistoryUseCase(api clients.StorefrontAPI, sessions *state.SessionStore, logger *logrus.Logger) domain.OrderHistoryUseCase {
	return &orderHistoryUseCase{api: api, sessions: sessions, log: logger}
}

// MyOrders lists the session user's orders, newest first. A failed read
// still returns an empty, non-nil list.
func (uc *orderHistoryUseCase) MyOrders(ctx context.Context) ([]domain.Order, error) {
	session, ok := uc.sessions.Current()
	if !ok {
		return []domain.Order{}, domain.ErrNotAuthenticated
	}

	orders, err := uc.api.MyOrders(ctx, session.UserID)
	if err != nil {
		uc.log.Warnf("Use Case: Failed to load orders for user %s: %v", session.UserID, err)
		return []domain.Order{}, fmt.Errorf("failed to load orders: %w", err)
	}
	uc.log.Infof("Use Case: Loaded %d orders for user %s", len(orders), session.UserID)
	return newestFirst(orders), nil
}
