package clients

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"storefront/internal/domain"
)

//go:generate mockgen -destination=mocks/mock_storefront_api.go -package=mocks storefront/internal/clients StorefrontAPI

// StorefrontAPI is the typed view of the remote GraphQL backend.
type StorefrontAPI interface {
	Login(ctx context.Context, creds domain.Credentials) (domain.AuthPayload, error)
	Register(ctx context.Context, reg domain.Registration) (domain.AuthPayload, error)
	VerifyEmail(ctx context.Context, token string) (domain.User, error)
	AllProducts(ctx context.Context) ([]domain.Product, error)
	MyOrders(ctx context.Context, userID string) ([]domain.Order, error)
	// AdminSnapshot reads all orders and all users in one round trip. On a
	// *GraphQLError the collections that did decode are still returned.
	AdminSnapshot(ctx context.Context) (domain.AdminSnapshot, error)
	CreateOrder(ctx context.Context, req domain.OrderRequest) (domain.OrderReceipt, error)
	CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	UpdateProduct(ctx context.Context, id int, patch domain.ProductPatch) (domain.Product, error)
	DeleteProduct(ctx context.Context, id int) error
}

const (
	userFields    = `id email username fullName isAdmin isActive`
	productFields = `id title description price category gradient size stock imageUrl`
	orderFields   = `id userId totalAmount status paymentMethod shippingAddress createdAt items { id productId quantity price product { title } }`
)

var (
	loginMutation = `mutation Login($input: LoginInput!) {
  login(input: $input) { accessToken user { ` + userFields + ` } }
}`
	registerMutation = `mutation Register($input: UserInput!) {
  register(input: $input) { accessToken user { ` + userFields + ` } }
}`
	verifyEmailMutation = `mutation VerifyEmail($token: String!) {
  verifyEmail(token: $token) { ` + userFields + ` }
}`
	allProductsQuery = `query AllProducts {
  allProducts { ` + productFields + ` }
}`
	myOrdersQuery = `query MyOrders($userId: Int!) {
  myOrders(userId: $userId) { ` + orderFields + ` }
}`
	adminDataQuery = `query AdminData {
  allOrders { ` + orderFields + ` }
  allUsers { ` + userFields + ` }
}`
	createOrderMutation = `mutation CreateOrder($userId: Int!, $input: OrderInput!) {
  createOrder(userId: $userId, input: $input) { id totalAmount status }
}`
	createProductMutation = `mutation CreateProduct($input: ProductInput!) {
  createProduct(input: $input) { ` + productFields + ` }
}`
	updateProductMutation = `mutation UpdateProduct($productId: Int!, $input: ProductUpdateInput!) {
  updateProduct(productId: $productId, input: $input) { ` + productFields + ` }
}`
	deleteProductMutation = `mutation DeleteProduct($productId: Int!) {
  deleteProduct(productId: $productId)
}`
)

type graphQLStorefront struct {
	gql *GraphQLClient
	log *logrus.Logger
}

func NewStorefrontAPI(gql *GraphQLClient, logger *logrus.Logger) StorefrontAPI {
	return &graphQLStorefront{gql: gql, log: logger}
}

func (s *graphQLStorefront) Login(ctx context.Context, creds domain.Credentials) (domain.AuthPayload, error) {
	var data struct {
		Login *wireAuthPayload `json:"login"`
	}
	vars := map[string]any{"input": map[string]any{"email": creds.Email, "password": creds.Password}}
	if err := s.gql.Do(ctx, "login", loginMutation, vars, &data); err != nil {
		return domain.AuthPayload{}, err
	}
	if data.Login == nil {
		return domain.AuthPayload{}, &GraphQLError{Operation: "login", Messages: []string{"empty login response"}}
	}
	return data.Login.toDomain(), nil
}

func (s *graphQLStorefront) Register(ctx context.Context, reg domain.Registration) (domain.AuthPayload, error) {
	var data struct {
		Register *wireAuthPayload `json:"register"`
	}
	vars := map[string]any{"input": map[string]any{
		"email":    reg.Email,
		"username": reg.Username,
		"password": reg.Password,
		"fullName": reg.FullName,
	}}
	if err := s.gql.Do(ctx, "register", registerMutation, vars, &data); err != nil {
		return domain.AuthPayload{}, err
	}
	if data.Register == nil {
		return domain.AuthPayload{}, &GraphQLError{Operation: "register", Messages: []string{"empty register response"}}
	}
	return data.Register.toDomain(), nil
}

func (s *graphQLStorefront) VerifyEmail(ctx context.Context, token string) (domain.User, error) {
	var data struct {
		VerifyEmail *wireUser `json:"verifyEmail"`
	}
	if err := s.gql.Do(ctx, "verifyEmail", verifyEmailMutation, map[string]any{"token": token}, &data); err != nil {
		return domain.User{}, err
	}
	if data.VerifyEmail == nil {
		return domain.User{}, &GraphQLError{Operation: "verifyEmail", Messages: []string{"verification returned no user"}}
	}
	return data.VerifyEmail.toDomain(), nil
}

func (s *graphQLStorefront) AllProducts(ctx context.Context) ([]domain.Product, error) {
	var data struct {
		AllProducts []wireProduct `json:"allProducts"`
	}
	if err := s.gql.Do(ctx, "allProducts", allProductsQuery, nil, &data); err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(data.AllProducts))
	for _, w := range data.AllProducts {
		p, err := w.toDomain()
		if err != nil {
			s.log.Warnf("GraphQLClient: Skipping product from allProducts: %v", err)
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

func (s *graphQLStorefront) MyOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	var data struct {
		MyOrders []wireOrder `json:"myOrders"`
	}
	err := s.gql.Do(ctx, "myOrders", myOrdersQuery, map[string]any{"userId": numericOrString(userID)}, &data)
	return toOrders(data.MyOrders), err
}

func (s *graphQLStorefront) AdminSnapshot(ctx context.Context) (domain.AdminSnapshot, error) {
	var data struct {
		AllOrders []wireOrder `json:"allOrders"`
		AllUsers  []wireUser  `json:"allUsers"`
	}
	err := s.gql.Do(ctx, "adminData", adminDataQuery, nil, &data)

	snapshot := domain.AdminSnapshot{
		Orders: toOrders(data.AllOrders),
		Users:  make([]domain.User, 0, len(data.AllUsers)),
	}
	for _, u := range data.AllUsers {
		snapshot.Users = append(snapshot.Users, u.toDomain())
	}
	return snapshot, err
}

func (s *graphQLStorefront) CreateOrder(ctx context.Context, req domain.OrderRequest) (domain.OrderReceipt, error) {
	items := make([]map[string]any, 0, len(req.Items))
	for _, line := range req.Items {
		items = append(items, map[string]any{"productId": line.ProductID, "quantity": line.Quantity})
	}
	vars := map[string]any{
		"userId": numericOrString(req.UserID),
		"input": map[string]any{
			"items":           items,
			"shippingAddress": req.ShippingAddress,
			"paymentMethod":   string(req.PaymentMethod),
		},
	}

	var data struct {
		CreateOrder *wireOrder `json:"createOrder"`
	}
	if err := s.gql.Do(ctx, "createOrder", createOrderMutation, vars, &data); err != nil {
		return domain.OrderReceipt{}, err
	}
	if data.CreateOrder == nil || data.CreateOrder.ID == "" {
		return domain.OrderReceipt{}, &GraphQLError{Operation: "createOrder", Messages: []string{"order was not created"}}
	}
	return domain.OrderReceipt{
		ID:          string(data.CreateOrder.ID),
		TotalAmount: data.CreateOrder.TotalAmount,
		Status:      domain.ParseOrderStatus(data.CreateOrder.Status),
	}, nil
}

func (s *graphQLStorefront) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	var data struct {
		CreateProduct *wireProduct `json:"createProduct"`
	}
	vars := map[string]any{"input": productInput(product)}
	if err := s.gql.Do(ctx, "createProduct", createProductMutation, vars, &data); err != nil {
		return domain.Product{}, err
	}
	return s.confirmedProduct("createProduct", data.CreateProduct)
}

func (s *graphQLStorefront) UpdateProduct(ctx context.Context, id int, patch domain.ProductPatch) (domain.Product, error) {
	var data struct {
		UpdateProduct *wireProduct `json:"updateProduct"`
	}
	vars := map[string]any{"productId": id, "input": patchInput(patch)}
	if err := s.gql.Do(ctx, "updateProduct", updateProductMutation, vars, &data); err != nil {
		return domain.Product{}, err
	}
	return s.confirmedProduct("updateProduct", data.UpdateProduct)
}

func (s *graphQLStorefront) DeleteProduct(ctx context.Context, id int) error {
	var data struct {
		DeleteProduct *bool `json:"deleteProduct"`
	}
	if err := s.gql.Do(ctx, "deleteProduct", deleteProductMutation, map[string]any{"productId": id}, &data); err != nil {
		return err
	}
	if data.DeleteProduct != nil && !*data.DeleteProduct {
		return &GraphQLError{Operation: "deleteProduct", Messages: []string{fmt.Sprintf("product %d was not deleted", id)}}
	}
	return nil
}

func (s *graphQLStorefront) confirmedProduct(operation string, w *wireProduct) (domain.Product, error) {
	if w == nil {
		return domain.Product{}, &GraphQLError{Operation: operation, Messages: []string{"no product returned"}}
	}
	p, err := w.toDomain()
	if err != nil {
		return domain.Product{}, &GraphQLError{Operation: operation, Messages: []string{err.Error()}}
	}
	return p, nil
}

func toOrders(wire []wireOrder) []domain.Order {
	orders := make([]domain.Order, 0, len(wire))
	for _, w := range wire {
		orders = append(orders, w.toDomain())
	}
	return orders
}
