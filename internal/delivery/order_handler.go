package delivery

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront/internal/domain"
	"storefront/internal/middleware"
)

type OrderHandler struct {
	checkout domain.CheckoutUseCase
	history  domain.OrderHistoryUseCase
	log      *logrus.Logger
}

func NewOrderHandler(checkout domain.CheckoutUseCase, history domain.OrderHistoryUseCase, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{
		checkout: checkout,
		history:  history,
		log:      logger,
	}
}

// RegisterRoutes mounts checkout openly, since the checkout flow does its
// own redirects, and the order history behind sessionGate.
func (h *OrderHandler) RegisterRoutes(router gin.IRouter, sessionGate gin.HandlerFunc) {
	router.POST("/checkout", h.Checkout)
	router.GET("/orders", sessionGate, h.MyOrders)
}

type checkoutRequest struct {
	domain.ShippingForm
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
}

func (h *OrderHandler) Checkout(c *gin.Context) {
	var req checkoutRequest
	// an empty body still reaches PlaceOrder, which may answer with a redirect
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.log.Warnf("Failed to bind JSON for checkout: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.checkout.PlaceOrder(c.Request.Context(), req.ShippingForm, req.PaymentMethod)
	if err != nil {
		ErrorResponse(c, mapErrorToStatus(err), userMessage(err))
		return
	}
	if result.Receipt == nil {
		RedirectResponse(c, "Checkout cannot continue yet", result.Redirect, nil)
		return
	}

	h.log.Infof("Order %s placed, redirecting to %s", result.Receipt.ID, result.Redirect)
	RedirectResponse(c, "Order placed successfully", result.Redirect, gin.H{"receipt": result.Receipt})
}

func (h *OrderHandler) MyOrders(c *gin.Context) {
	if session, ok := middleware.SessionFrom(c); ok {
		h.log.Debugf("Fetching order history for user %s", session.UserID)
	}
	orders, err := h.history.MyOrders(c.Request.Context())
	if err != nil {
		FailWithData(c, mapErrorToStatus(err), userMessage(err), orders)
		return
	}
	SuccessResponse(c, http.StatusOK, "Orders retrieved successfully", orders)
}
