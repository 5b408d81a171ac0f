package usecase

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"storefront/internal/domain"
	"storefront/internal/state"
)

var _ domain.CartUseCase = (*cartUseCase)(nil)

type cartUseCase struct {
	cart   *state.CartStore
	mirror *state.ProductMirror
	log    *logrus.Logger
}

func NewCartUseCase(cart *state.CartStore, mirror *state.ProductMirror, logger *logrus.Logger) domain.CartUseCase {
	return &cartUseCase{cart: cart, mirror: mirror, log: logger}
}

func (uc *cartUseCase) Summary() domain.CartSummary {
	return uc.cart.Summary()
}

func (uc *cartUseCase) AddProduct(productID int) (domain.CartLine, error) {
	product, ok := uc.mirror.Get(productID)
	if !ok {
		uc.log.Warnf("Use Case: Product with ID %d not found, not added to cart", productID)
		return domain.CartLine{}, fmt.Errorf("product with id %d: %w", productID, domain.ErrProductNotFound)
	}
	line := uc.cart.AddItem(domain.SnapshotOf(product))
	uc.log.Infof("Use Case: Product %d in cart, quantity now %d", productID, line.Quantity)
	return line, nil
}

// UpdateQuantity removes the line when quantity is zero or below.
func (uc *cartUseCase) UpdateQuantity(productID, quantity int) (domain.CartSummary, error) {
	if !uc.cart.UpdateQuantity(productID, quantity) {
		return uc.cart.Summary(), fmt.Errorf("product with id %d is not in the cart: %w", productID, domain.ErrProductNotFound)
	}
	return uc.cart.Summary(), nil
}

func (uc *cartUseCase) RemoveProduct(productID int) domain.CartSummary {
	uc.cart.RemoveItem(productID)
	return uc.cart.Summary()
}
