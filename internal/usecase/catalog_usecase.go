package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"storefront/internal/clients"
	"storefront/internal/domain"
	"storefront/internal/state"
)

var _ domain.CatalogUseCase = (*catalogUseCase)(nil)

type catalogUseCase struct {
	api    clients.StorefrontAPI
	mirror *state.ProductMirror
	log    *logrus.Logger
}

func NewCatalogUseCase(api clients.StorefrontAPI, mirror *state.ProductMirror, logger *logrus.Logger) domain.CatalogUseCase {
	return &catalogUseCase{
		api:    api,
		mirror: mirror,
		log:    logger,
	}
}

func (uc *catalogUseCase) ListProducts(category string) ([]domain.Product, error) {
	if category == "" {
		return uc.mirror.List(), nil
	}
	c, ok := domain.ParseCategory(category)
	if !ok {
		return nil, fmt.Errorf("%w: unknown category '%s'", domain.ErrValidation, category)
	}
	return uc.mirror.ListByCategory(c), nil
}

func (uc *catalogUseCase) GetProduct(id int) (domain.Product, error) {
	p, ok := uc.mirror.Get(id)
	if !ok {
		return domain.Product{}, fmt.Errorf("product with id %d: %w", id, domain.ErrProductNotFound)
	}
	return p, nil
}

// Refresh replaces the mirror with the backend catalog. On failure the
// mirror is kept and returned with the error.
func (uc *catalogUseCase) Refresh(ctx context.Context) ([]domain.Product, error) {
	ticket := uc.mirror.BeginRefresh()
	uc.log.Infof("Use Case: Refreshing catalog (refresh %d)", ticket.Seq)

	products, err := uc.api.AllProducts(ctx)
	if err != nil {
		uc.log.Warnf("Use Case: Catalog refresh failed, keeping %d mirrored products: %v", len(uc.mirror.List()), err)
		return uc.mirror.List(), fmt.Errorf("catalog refresh failed: %w", err)
	}
	if ctx.Err() != nil {
		uc.log.Warnf("Use Case: Catalog refresh cancelled before apply: %v", ctx.Err())
		return uc.mirror.List(), ctx.Err()
	}

	if uc.mirror.ReplaceAllAt(ticket, products) {
		uc.log.Infof("Use Case: Catalog refreshed with %d products", len(products))
	}
	return uc.mirror.List(), nil
}

func (uc *catalogUseCase) CreateProduct(ctx context.Context, product domain.Product) domain.Mutation[domain.Product] {
	m := domain.NewMutation[domain.Product]("createProduct")
	if err := product.Validate(); err != nil {
		uc.log.Warnf("Use Case: Rejected new product '%s': %v", product.Title, err)
		return m.Fail(err)
	}

	uc.log.Infof("Use Case: Creating product '%s'", product.Title)
	created, err := uc.api.CreateProduct(ctx, product)
	if err != nil {
		uc.log.Errorf("Use Case: Backend failed to create product '%s': %v", product.Title, err)
		return m.Fail(fmt.Errorf("failed to create product: %w", err))
	}

	stored := uc.mirror.Upsert(created)
	uc.log.Infof("Use Case: Product '%s' created with ID %d", stored.Title, stored.ID)
	return m.Commit(stored)
}

func (uc *catalogUseCase) UpdateProduct(ctx context.Context, id int, patch domain.ProductPatch) domain.Mutation[domain.Product] {
	m := domain.NewMutation[domain.Product]("updateProduct")
	if patch.IsEmpty() {
		return m.Fail(fmt.Errorf("%w: no fields to update", domain.ErrValidation))
	}
	current, ok := uc.mirror.Get(id)
	if !ok {
		uc.log.Warnf("Use Case: Product with ID %d not found for update", id)
		return m.Fail(fmt.Errorf("product with id %d: %w", id, domain.ErrProductNotFound))
	}
	if err := patch.Apply(current).Validate(); err != nil {
		uc.log.Warnf("Use Case: Rejected update for product ID %d: %v", id, err)
		return m.Fail(err)
	}

	uc.log.Infof("Use Case: Updating product ID %d", id)
	confirmed, err := uc.api.UpdateProduct(ctx, id, patch)
	if err != nil {
		uc.log.Errorf("Use Case: Backend failed to update product ID %d: %v", id, err)
		return m.Fail(fmt.Errorf("failed to update product %d: %w", id, err))
	}
	return m.Commit(uc.applyConfirmed(id, confirmed))
}

func (uc *catalogUseCase) SetStock(ctx context.Context, id, quantity int) domain.Mutation[domain.Product] {
	m := domain.NewMutation[domain.Product]("setStock")
	if quantity < 0 {
		uc.log.Warnf("Use Case: Attempted to set negative stock (%d) for product ID %d", quantity, id)
		return m.Fail(domain.ErrNegativeStock)
	}
	if _, ok := uc.mirror.Get(id); !ok {
		return m.Fail(fmt.Errorf("product with id %d: %w", id, domain.ErrProductNotFound))
	}

	uc.log.Infof("Use Case: Setting stock of product ID %d to %d", id, quantity)
	confirmed, err := uc.api.UpdateProduct(ctx, id, domain.ProductPatch{Stock: &quantity})
	if err != nil {
		uc.log.Errorf("Use Case: Backend failed to set stock for product ID %d: %v", id, err)
		return m.Fail(fmt.Errorf("failed to update stock for product %d: %w", id, err))
	}
	return m.Commit(uc.applyConfirmed(id, confirmed))
}

func (uc *catalogUseCase) DeleteProduct(ctx context.Context, id int) domain.Mutation[int] {
	m := domain.NewMutation[int]("deleteProduct")

	uc.log.Infof("Use Case: Deleting product ID %d", id)
	if err := uc.api.DeleteProduct(ctx, id); err != nil {
		uc.log.Errorf("Use Case: Backend failed to delete product ID %d: %v", id, err)
		return m.Fail(fmt.Errorf("failed to delete product %d: %w", id, err))
	}
	if !uc.mirror.Delete(id) {
		uc.log.Infof("Use Case: Product ID %d was already absent from the mirror", id)
	}
	return m.Commit(id)
}

// applyConfirmed overwrites the mirror entry with what the backend returned.
func (uc *catalogUseCase) applyConfirmed(id int, confirmed domain.Product) domain.Product {
	confirmed.ID = id
	stored, err := uc.mirror.Update(id, domain.PatchOf(confirmed))
	if errors.Is(err, domain.ErrProductNotFound) {
		uc.log.Warnf("Use Case: Product ID %d left the mirror during update, re-adding it", id)
		return uc.mirror.Upsert(confirmed)
	}
	uc.log.Infof("Use Case: Product ID %d updated", id)
	return stored
}
