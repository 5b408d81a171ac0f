package usecase

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"storefront/internal/domain"
)

// CatalogRefresher keeps the product mirror in step with the backend.
type CatalogRefresher struct {
	catalog  domain.CatalogUseCase
	interval time.Duration
	timeout  time.Duration
	log      *logrus.Logger
}

func NewCatalogRefresher(catalog domain.CatalogUseCase, interval, timeout time.Duration, logger *logrus.Logger) *CatalogRefresher {
	return &CatalogRefresher{
		catalog:  catalog,
		interval: interval,
		timeout:  timeout,
		log:      logger,
	}
}

// Run refreshes once at start and then every interval until ctx is done.
// A zero interval only does the initial refresh.
func (r *CatalogRefresher) Run(ctx context.Context) error {
	r.refresh(ctx)
	if r.interval <= 0 {
		r.log.Info("Use Case: Periodic catalog refresh disabled")
		return nil
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			r.log.Info("Use Case: Catalog refresher stopped")
			return nil
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *CatalogRefresher) refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	// failures are logged by the catalog use case; the mirror keeps its data
	_, _ = r.catalog.Refresh(ctx)
}
