package domain

import "context"

// CheckoutResult tells the caller where to go next. Receipt is only set
// when an order was placed.
type CheckoutResult struct {
	Redirect string        `json:"redirect"`
	Receipt  *OrderReceipt `json:"receipt,omitempty"`
}

type AuthUseCase interface {
	Login(ctx context.Context, creds Credentials) (Session, error)
	Register(ctx context.Context, reg Registration) (Session, error)
	VerifyEmail(ctx context.Context, token string) (User, error)
	Logout()
	CurrentSession() (Session, bool)
}

// CatalogUseCase reads the product mirror and runs admin product changes.
// Admin changes are server-confirmed: the mirror is only written once the
// backend accepted the change, and every change reports a Mutation.
type CatalogUseCase interface {
	ListProducts(category string) ([]Product, error)
	GetProduct(id int) (Product, error)
	Refresh(ctx context.Context) ([]Product, error)
	CreateProduct(ctx context.Context, product Product) Mutation[Product]
	UpdateProduct(ctx context.Context, id int, patch ProductPatch) Mutation[Product]
	SetStock(ctx context.Context, id, quantity int) Mutation[Product]
	DeleteProduct(ctx context.Context, id int) Mutation[int]
}

// CartUseCase puts mirrored products into the cart. Lines keep the product
// data from the moment they were added.
type CartUseCase interface {
	Summary() CartSummary
	AddProduct(productID int) (CartLine, error)
	UpdateQuantity(productID, quantity int) (CartSummary, error)
	RemoveProduct(productID int) CartSummary
}

type CheckoutUseCase interface {
	PlaceOrder(ctx context.Context, form ShippingForm, method PaymentMethod) (CheckoutResult, error)
}

type OrderHistoryUseCase interface {
	MyOrders(ctx context.Context) ([]Order, error)
}

type AdminUseCase interface {
	Dashboard(ctx context.Context) (Dashboard, error)
	Orders(ctx context.Context, filter OrderFilter) ([]AdminOrder, error)
	Customers(ctx context.Context) ([]Customer, error)
}
