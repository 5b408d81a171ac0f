package clients

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
)

func newTestAPI(t *testing.T, status int, body string) (StorefrontAPI, *[]capturedRequest) {
	t.Helper()
	srv, seen := backend(t, status, body)
	gql := NewGraphQLClient(srv.URL, time.Second, nil, testLogger())
	return NewStorefrontAPI(gql, testLogger()), seen
}

func TestAllProducts_TranslatesEnumCasing(t *testing.T) {
	api, _ := newTestAPI(t, http.StatusOK, `{"data":{"allProducts":[
		{"id":1,"title":"Neon Jacket","description":null,"price":499,"category":"CLOTHES","gradient":"from-pink-500","size":"LARGE","stock":3,"imageUrl":"/a.png"},
		{"id":"2","title":"Boots","price":"349.50","category":"shoes","size":"medium","stock":0},
		{"id":3,"title":"Hat","price":10,"category":"HATS","size":"SMALL","stock":1}
	]}}`)

	products, err := api.AllProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, domain.CategoryClothes, products[0].Category)
	assert.Equal(t, domain.SizeLarge, products[0].Size)
	assert.Equal(t, "/a.png", products[0].Image)
	assert.Empty(t, products[0].Description)

	assert.Equal(t, 2, products[1].ID)
	assert.Equal(t, domain.CategoryShoes, products[1].Category)
	assert.True(t, decimal.RequireFromString("349.50").Equal(products[1].Price))
}

func TestCreateProduct_SendsUpperCaseEnums(t *testing.T) {
	api, seen := newTestAPI(t, http.StatusOK, `{"data":{"createProduct":
		{"id":42,"title":"Bag","price":99.9,"category":"BAGS","size":"SMALL","stock":4}}}`)

	created, err := api.CreateProduct(context.Background(), domain.Product{
		Title:    "Bag",
		Price:    decimal.RequireFromString("99.9"),
		Category: domain.CategoryBags,
		Size:     domain.SizeSmall,
		Stock:    4,
	})
	require.NoError(t, err)
	assert.Equal(t, 42, created.ID)
	assert.Equal(t, domain.CategoryBags, created.Category)

	input := (*seen)[0].Body.Variables["input"].(map[string]any)
	assert.Equal(t, "BAGS", input["category"])
	assert.Equal(t, "SMALL", input["size"])
	assert.EqualValues(t, 99.9, input["price"])
}

func TestUpdateProduct_SendsOnlyPatchedFields(t *testing.T) {
	api, seen := newTestAPI(t, http.StatusOK, `{"data":{"updateProduct":
		{"id":7,"title":"Bag","price":10,"category":"ACCESSORIES","size":"MEDIUM","stock":5}}}`)

	stock := 5
	category := domain.CategoryAccessories
	_, err := api.UpdateProduct(context.Background(), 7, domain.ProductPatch{Stock: &stock, Category: &category})
	require.NoError(t, err)

	vars := (*seen)[0].Body.Variables
	assert.EqualValues(t, 7, vars["productId"])
	input := vars["input"].(map[string]any)
	assert.Len(t, input, 2)
	assert.Equal(t, "ACCESSORIES", input["category"])
	assert.EqualValues(t, 5, input["stock"])
}

func TestCreateOrder_SendsLinesWithoutPrices(t *testing.T) {
	api, seen := newTestAPI(t, http.StatusOK, `{"data":{"createOrder":{"id":17,"totalAmount":250,"status":"PENDING"}}}`)

	receipt, err := api.CreateOrder(context.Background(), domain.OrderRequest{
		UserID:          "5",
		Items:           []domain.OrderLine{{ProductID: 1, Quantity: 2}, {ProductID: 3, Quantity: 1}},
		ShippingAddress: "1 Main St, Springfield, 12345",
		PaymentMethod:   domain.PaymentCash,
	})
	require.NoError(t, err)
	assert.Equal(t, "17", receipt.ID)
	assert.Equal(t, domain.StatusPending, receipt.Status)
	assert.True(t, decimal.NewFromInt(250).Equal(receipt.TotalAmount))

	vars := (*seen)[0].Body.Variables
	assert.EqualValues(t, 5, vars["userId"])
	input := vars["input"].(map[string]any)
	assert.Equal(t, "cash", input["paymentMethod"])
	assert.Equal(t, "1 Main St, Springfield, 12345", input["shippingAddress"])
	items := input["items"].([]any)
	require.Len(t, items, 2)
	first := items[0].(map[string]any)
	assert.Len(t, first, 2)
	assert.EqualValues(t, 1, first["productId"])
	assert.EqualValues(t, 2, first["quantity"])
}

func TestCreateOrder_ServerErrorMessage(t *testing.T) {
	api, _ := newTestAPI(t, http.StatusOK, `{"data":null,"errors":[{"message":"Insufficient stock for Neon Jacket"}]}`)

	_, err := api.CreateOrder(context.Background(), domain.OrderRequest{UserID: "1"})
	var gqlErr *GraphQLError
	require.ErrorAs(t, err, &gqlErr)
	assert.Equal(t, "Insufficient stock for Neon Jacket", gqlErr.Message())
}

func TestAdminSnapshot_PartialData(t *testing.T) {
	api, _ := newTestAPI(t, http.StatusOK, `{
		"data":{"allOrders":[{"id":"9","userId":2,"totalAmount":"120.5","status":"SHIPPED","createdAt":"2025-11-02T10:15:00.123456"}],"allUsers":null},
		"errors":[{"message":"not authorized to list users"}]}`)

	snapshot, err := api.AdminSnapshot(context.Background())
	var gqlErr *GraphQLError
	require.ErrorAs(t, err, &gqlErr)

	require.Len(t, snapshot.Orders, 1)
	order := snapshot.Orders[0]
	assert.Equal(t, "9", order.ID)
	assert.Equal(t, "2", order.UserID)
	assert.Equal(t, domain.StatusShipped, order.Status)
	assert.Equal(t, time.Date(2025, 11, 2, 10, 15, 0, 123456000, time.UTC), order.CreatedAt)
	assert.Empty(t, snapshot.Users)
}

func TestLogin_MapsSession(t *testing.T) {
	api, seen := newTestAPI(t, http.StatusOK, `{"data":{"login":{"accessToken":"jwt","user":
		{"id":1,"email":"admin@cyber.com","username":"admin","fullName":null,"isAdmin":true,"isActive":true}}}}`)

	payload, err := api.Login(context.Background(), domain.Credentials{Email: "admin@cyber.com", Password: "pw"})
	require.NoError(t, err)

	session := payload.Session()
	assert.Equal(t, "1", session.UserID)
	assert.True(t, session.IsAdmin)
	assert.Equal(t, "jwt", session.AccessToken)

	input := (*seen)[0].Body.Variables["input"].(map[string]any)
	assert.Equal(t, "admin@cyber.com", input["email"])
}

func TestDeleteProduct_FalseIsAnError(t *testing.T) {
	api, _ := newTestAPI(t, http.StatusOK, `{"data":{"deleteProduct":false}}`)
	assert.Error(t, api.DeleteProduct(context.Background(), 3))

	api, _ = newTestAPI(t, http.StatusOK, `{"data":{"deleteProduct":true}}`)
	assert.NoError(t, api.DeleteProduct(context.Background(), 3))
}
