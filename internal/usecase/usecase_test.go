package usecase_test

import (
	"io"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"storefront/internal/clients/mocks"
	"storefront/internal/domain"
	"storefront/internal/repository"
	"storefront/internal/state"
)

type fixture struct {
	api      *mocks.MockStorefrontAPI
	sessions *state.SessionStore
	cart     *state.CartStore
	mirror   *state.ProductMirror
	log      *logrus.Logger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	store := repository.NewMemoryStateRepository()

	return &fixture{
		api:      mocks.NewMockStorefrontAPI(ctrl),
		sessions: state.NewSessionStore(store, logger),
		cart:     state.NewCartStore(store, logger),
		mirror:   state.NewProductMirror(store, logger),
		log:      logger,
	}
}

func (f *fixture) loginAs(id string, admin bool) {
	f.sessions.Login(domain.Session{UserID: id, Email: "user" + id + "@cyber.com", Username: "user" + id, IsAdmin: admin})
}

func snapshot(id int, title, price string) domain.ProductSnapshot {
	return domain.ProductSnapshot{
		ProductID: id,
		Title:     title,
		Price:     decimal.RequireFromString(price),
		Category:  domain.CategoryClothes,
	}
}

func validShipping() domain.ShippingForm {
	return domain.ShippingForm{
		FullName:   "Ada Lovelace",
		Email:      "ada@example.com",
		Phone:      "+1 555 0100",
		Address:    "12 Analytical Way",
		City:       "London",
		PostalCode: "N1 9GU",
	}
}
