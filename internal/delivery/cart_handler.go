package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront/internal/domain"
)

type CartHandler struct {
	useCase domain.CartUseCase
	log     *logrus.Logger
}

func NewCartHandler(uc domain.CartUseCase, logger *logrus.Logger) *CartHandler {
	return &CartHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *CartHandler) RegisterRoutes(router gin.IRouter) {
	cart := router.Group("/cart")
	{
		cart.GET("", h.GetCart)
		cart.POST("/items", h.AddItem)
		cart.PATCH("/items/:productId", h.UpdateQuantity)
		cart.DELETE("/items/:productId", h.RemoveItem)
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "Cart retrieved successfully", h.useCase.Summary())
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var body struct {
		ProductID int `json:"productId" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.log.Warnf("Failed to bind JSON for add to cart: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if _, err := h.useCase.AddProduct(body.ProductID); err != nil {
		ErrorResponse(c, mapErrorToStatus(err), userMessage(err))
		return
	}
	SuccessResponse(c, http.StatusOK, "Added to cart", h.useCase.Summary())
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	id, ok := parseID(c, "productId")
	if !ok {
		return
	}
	var body struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	summary, err := h.useCase.UpdateQuantity(id, *body.Quantity)
	if err != nil {
		FailWithData(c, mapErrorToStatus(err), userMessage(err), summary)
		return
	}
	SuccessResponse(c, http.StatusOK, "Cart updated", summary)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, ok := parseID(c, "productId")
	if !ok {
		return
	}
	SuccessResponse(c, http.StatusOK, "Removed from cart", h.useCase.RemoveProduct(id))
}
