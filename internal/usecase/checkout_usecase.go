package usecase

import (
	"context"
	"fmt"
	"net/url"
	"sync/atomic"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"storefront/internal/clients"
	"storefront/internal/domain"
	"storefront/internal/state"
)

const (
	cartPath         = "/cart"
	checkoutPath     = "/checkout"
	orderSuccessPath = "/order-success"
)

// LoginRedirect is where a visitor without a session is sent, returning to
// next afterwards.
func LoginRedirect(next string) string {
	return "/login?next=" + url.QueryEscape(next)
}

var _ domain.CheckoutUseCase = (*checkoutUseCase)(nil)

type checkoutUseCase struct {
	api      clients.StorefrontAPI
	cart     *state.CartStore
	sessions *state.SessionStore
	validate *validator.Validate
	inFlight atomic.Bool
	log      *logrus.Logger
}

func NewCheckoutUseCase(api clients.StorefrontAPI, cart *state.CartStore, sessions *state.SessionStore, logger *logrus.Logger) domain.CheckoutUseCase {
	return &checkoutUseCase{
		api:      api,
		cart:     cart,
		sessions: sessions,
		validate: newFormValidator(),
		log:      logger,
	}
}

// PlaceOrder submits the cart as one order. The backend prices the order;
// only product ids and quantities are sent. On success exactly the ordered
// quantities leave the cart; on failure the cart is left as it was.
func (uc *checkoutUseCase) PlaceOrder(ctx context.Context, form domain.ShippingForm, method domain.PaymentMethod) (domain.CheckoutResult, error) {
	if uc.cart.IsEmpty() {
		uc.log.Info("Use Case: Checkout requested with an empty cart, redirecting to cart")
		return domain.CheckoutResult{Redirect: cartPath}, nil
	}
	session, ok := uc.sessions.Current()
	if !ok {
		uc.log.Info("Use Case: Checkout requested without a session, redirecting to login")
		return domain.CheckoutResult{Redirect: LoginRedirect(checkoutPath)}, nil
	}

	if err := validateForm(uc.validate, form); err != nil {
		uc.log.Warnf("Use Case: Rejected shipping form for user %s: %v", session.UserID, err)
		return domain.CheckoutResult{}, err
	}
	if method == "" {
		method = domain.PaymentCash
	}
	switch {
	case method == domain.PaymentCard:
		uc.log.Warnf("Use Case: User %s chose card payment, which is not available", session.UserID)
		return domain.CheckoutResult{}, domain.ErrPaymentMethodUnavailable
	case !method.IsAvailable():
		return domain.CheckoutResult{}, fmt.Errorf("%w: unknown payment method '%s'", domain.ErrValidation, method)
	}

	if !uc.inFlight.CompareAndSwap(false, true) {
		uc.log.Warnf("Use Case: Checkout for user %s rejected, an order is already being placed", session.UserID)
		return domain.CheckoutResult{}, domain.ErrCheckoutInProgress
	}
	defer uc.inFlight.Store(false)

	lines := uc.cart.Lines()
	if len(lines) == 0 {
		return domain.CheckoutResult{Redirect: cartPath}, nil
	}
	req := domain.OrderRequest{
		UserID:          session.UserID,
		Items:           make([]domain.OrderLine, 0, len(lines)),
		ShippingAddress: form.ShippingAddress(),
		PaymentMethod:   method,
	}
	for _, line := range lines {
		req.Items = append(req.Items, domain.OrderLine{ProductID: line.ProductID, Quantity: line.Quantity})
	}

	uc.log.Infof("Use Case: Placing order for user %s with %d line(s)", session.UserID, len(req.Items))
	receipt, err := uc.api.CreateOrder(ctx, req)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to place order for user %s, cart kept: %v", session.UserID, err)
		return domain.CheckoutResult{}, fmt.Errorf("failed to place order: %w", err)
	}

	uc.cart.RemoveOrdered(req.Items)
	uc.log.Infof("Use Case: Order %s placed for user %s (total %s, status %s)",
		receipt.ID, session.UserID, receipt.TotalAmount.StringFixed(2), receipt.Status)

	return domain.CheckoutResult{
		Redirect: orderSuccessPath + "?orderId=" + url.QueryEscape(receipt.ID),
		Receipt:  &receipt,
	}, nil
}
