package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/clients"
	"storefront/internal/domain"
	"storefront/internal/usecase"
)

func TestPlaceOrder_Success(t *testing.T) {
	f := newFixture(t)
	f.loginAs("5", false)
	f.cart.AddItem(snapshot(1, "Neon Jacket", "100"))
	f.cart.AddItem(snapshot(1, "Neon Jacket", "100"))
	f.cart.AddItem(snapshot(2, "Glow Bag", "50"))
	require.Equal(t, 3, f.cart.TotalItems())
	require.True(t, decimal.NewFromInt(250).Equal(f.cart.TotalPrice()))

	f.api.EXPECT().
		CreateOrder(gomock.Any(), domain.OrderRequest{
			UserID:          "5",
			Items:           []domain.OrderLine{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 1}},
			ShippingAddress: "12 Analytical Way, London, N1 9GU",
			PaymentMethod:   domain.PaymentCash,
		}).
		Return(domain.OrderReceipt{ID: "77", TotalAmount: decimal.NewFromInt(250), Status: domain.StatusPending}, nil).
		Times(1)

	uc := usecase.NewCheckoutUseCase(f.api, f.cart, f.sessions, f.log)
	result, err := uc.PlaceOrder(context.Background(), validShipping(), domain.PaymentCash)

	require.NoError(t, err)
	assert.Equal(t, "/order-success?orderId=77", result.Redirect)
	require.NotNil(t, result.Receipt)
	assert.Equal(t, "77", result.Receipt.ID)
	assert.True(t, f.cart.IsEmpty())
}

func TestPlaceOrder_EmptyCartRedirectsWithoutCall(t *testing.T) {
	f := newFixture(t)
	f.loginAs("5", false)

	uc := usecase.NewCheckoutUseCase(f.api, f.cart, f.sessions, f.log)
	result, err := uc.PlaceOrder(context.Background(), validShipping(), domain.PaymentCash)

	require.NoError(t, err)
	assert.Equal(t, "/cart", result.Redirect)
	assert.Nil(t, result.Receipt)
}

func TestPlaceOrder_NoSessionRedirectsToLoginAndKeepsCart(t *testing.T) {
	f := newFixture(t)
	f.cart.AddItem(snapshot(1, "Neon Jacket", "100"))

	uc := usecase.NewCheckoutUseCase(f.api, f.cart, f.sessions, f.log)
	result, err := uc.PlaceOrder(context.Background(), validShipping(), domain.PaymentCash)

	require.NoError(t, err)
	assert.Equal(t, "/login?next=%2Fcheckout", result.Redirect)
	assert.Equal(t, 1, f.cart.TotalItems())
}

func TestPlaceOrder_RejectedBeforeAnyCall(t *testing.T) {
	incomplete := validShipping()
	incomplete.City = ""
	badEmail := validShipping()
	badEmail.Email = "not-an-email"

	cases := []struct {
		name   string
		form   domain.ShippingForm
		method domain.PaymentMethod
		want   error
	}{
		{"missing city", incomplete, domain.PaymentCash, domain.ErrValidation},
		{"bad email", badEmail, domain.PaymentCash, domain.ErrValidation},
		{"card payment", validShipping(), domain.PaymentCard, domain.ErrPaymentMethodUnavailable},
		{"unknown method", validShipping(), domain.PaymentMethod("crypto"), domain.ErrValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.loginAs("5", false)
			f.cart.AddItem(snapshot(1, "Neon Jacket", "100"))

			uc := usecase.NewCheckoutUseCase(f.api, f.cart, f.sessions, f.log)
			_, err := uc.PlaceOrder(context.Background(), tc.form, tc.method)

			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, 1, f.cart.TotalItems())
		})
	}
}

func TestPlaceOrder_FailureKeepsCart(t *testing.T) {
	f := newFixture(t)
	f.loginAs("5", false)
	f.cart.AddItem(snapshot(1, "Neon Jacket", "100"))
	f.cart.AddItem(snapshot(2, "Glow Bag", "50"))
	before := f.cart.Lines()

	f.api.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		Return(domain.OrderReceipt{}, &clients.GraphQLError{Operation: "createOrder", Messages: []string{"Insufficient stock"}}).
		Times(1)

	uc := usecase.NewCheckoutUseCase(f.api, f.cart, f.sessions, f.log)
	result, err := uc.PlaceOrder(context.Background(), validShipping(), "")

	var gqlErr *clients.GraphQLError
	require.True(t, errors.As(err, &gqlErr))
	assert.Equal(t, "Insufficient stock", gqlErr.Message())
	assert.Empty(t, result.Redirect)
	assert.Equal(t, len(before), len(f.cart.Lines()))
	assert.Equal(t, 2, f.cart.TotalItems())
}

func TestPlaceOrder_SecondCheckoutWhileInFlight(t *testing.T) {
	f := newFixture(t)
	f.loginAs("5", false)
	f.cart.AddItem(snapshot(1, "Neon Jacket", "100"))

	entered := make(chan struct{})
	release := make(chan struct{})
	f.api.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req domain.OrderRequest) (domain.OrderReceipt, error) {
			close(entered)
			<-release
			return domain.OrderReceipt{ID: "1", Status: domain.StatusPending}, nil
		}).
		Times(1)

	uc := usecase.NewCheckoutUseCase(f.api, f.cart, f.sessions, f.log)

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = uc.PlaceOrder(context.Background(), validShipping(), domain.PaymentCash)
	}()

	<-entered
	_, err := uc.PlaceOrder(context.Background(), validShipping(), domain.PaymentCash)
	assert.ErrorIs(t, err, domain.ErrCheckoutInProgress)

	close(release)
	wg.Wait()
	assert.NoError(t, firstErr)
	assert.True(t, f.cart.IsEmpty())
}

func TestPlaceOrder_LineAddedDuringOrderStaysInCart(t *testing.T) {
	f := newFixture(t)
	f.loginAs("5", false)
	f.cart.AddItem(snapshot(1, "Neon Jacket", "100"))

	f.api.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req domain.OrderRequest) (domain.OrderReceipt, error) {
			f.cart.AddItem(snapshot(2, "Glow Bag", "50"))
			f.cart.AddItem(snapshot(1, "Neon Jacket", "100"))
			return domain.OrderReceipt{ID: "8", Status: domain.StatusPending}, nil
		})

	uc := usecase.NewCheckoutUseCase(f.api, f.cart, f.sessions, f.log)
	result, err := uc.PlaceOrder(context.Background(), validShipping(), domain.PaymentCash)

	require.NoError(t, err)
	assert.Equal(t, "/order-success?orderId=8", result.Redirect)
	lines := f.cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].ProductID)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, 2, lines[1].ProductID)
	assert.Equal(t, 1, lines[1].Quantity)
}
