package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront/internal/domain"
)

type ProductHandler struct {
	useCase domain.CatalogUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc domain.CatalogUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	products := router.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProduct)
		products.POST("/refresh", h.Refresh)
	}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.useCase.ListProducts(c.Query("category"))
	if err != nil {
		ErrorResponse(c, mapErrorToStatus(err), userMessage(err))
		return
	}
	SuccessResponse(c, http.StatusOK, "Products retrieved successfully", products)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	product, err := h.useCase.GetProduct(id)
	if err != nil {
		ErrorResponse(c, mapErrorToStatus(err), userMessage(err))
		return
	}
	SuccessResponse(c, http.StatusOK, "Product retrieved successfully", product)
}

// Refresh answers with the mirror even when the backend could not be read.
func (h *ProductHandler) Refresh(c *gin.Context) {
	products, err := h.useCase.Refresh(c.Request.Context())
	if err != nil {
		FailWithData(c, mapErrorToStatus(err), userMessage(err), products)
		return
	}
	SuccessResponse(c, http.StatusOK, "Products refreshed", products)
}

func parseID(c *gin.Context, param string) (int, bool) {
	raw := c.Param(param)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		ErrorResponse(c, http.StatusBadRequest, "Invalid ID format: "+raw)
		return 0, false
	}
	return id, true
}
