package delivery

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront/internal/domain"
)

type AdminHandler struct {
	admin   domain.AdminUseCase
	catalog domain.CatalogUseCase
	log     *logrus.Logger
}

func NewAdminHandler(admin domain.AdminUseCase, catalog domain.CatalogUseCase, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{
		admin:   admin,
		catalog: catalog,
		log:     logger,
	}
}

func (h *AdminHandler) RegisterRoutes(router gin.IRouter, adminGate gin.HandlerFunc) {
	admin := router.Group("/admin", adminGate)
	{
		admin.GET("/dashboard", h.Dashboard)
		admin.GET("/orders", h.Orders)
		admin.GET("/customers", h.Customers)

		admin.POST("/products", h.CreateProduct)
		admin.GET("/products/export", h.ExportProducts)
		admin.PATCH("/products/:id", h.UpdateProduct)
		admin.PATCH("/products/:id/stock", h.SetStock)
		admin.DELETE("/products/:id", h.DeleteProduct)
	}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.admin.Dashboard(c.Request.Context())
	if err != nil {
		FailWithData(c, mapErrorToStatus(err), userMessage(err), dashboard)
		return
	}
	SuccessResponse(c, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

func (h *AdminHandler) Orders(c *gin.Context) {
	filter := domain.OrderFilter{Search: c.Query("q")}
	if status := c.Query("status"); status != "" && status != "all" {
		filter.Status = domain.ParseOrderStatus(status)
	}

	orders, err := h.admin.Orders(c.Request.Context(), filter)
	if err != nil {
		FailWithData(c, mapErrorToStatus(err), userMessage(err), orders)
		return
	}
	SuccessResponse(c, http.StatusOK, "Orders retrieved successfully", orders)
}

func (h *AdminHandler) Customers(c *gin.Context) {
	customers, err := h.admin.Customers(c.Request.Context())
	if err != nil {
		FailWithData(c, mapErrorToStatus(err), userMessage(err), customers)
		return
	}
	SuccessResponse(c, http.StatusOK, "Customers retrieved successfully", customers)
}

func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var product domain.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		h.log.Warnf("Failed to bind JSON for create product: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if product.Size == "" {
		product.Size = domain.SizeMedium
	}
	product.ID = 0
	product = product.Normalized()

	respondMutation(c, h.catalog.CreateProduct(c.Request.Context(), product), http.StatusCreated, "Product created successfully")
}

func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var patch domain.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	respondMutation(c, h.catalog.UpdateProduct(c.Request.Context(), id, patch.Normalized()), http.StatusOK, "Product updated successfully")
}

func (h *AdminHandler) SetStock(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var body struct {
		Stock *int `json:"stock" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	respondMutation(c, h.catalog.SetStock(c.Request.Context(), id, *body.Stock), http.StatusOK, "Stock updated successfully")
}

func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	respondMutation(c, h.catalog.DeleteProduct(c.Request.Context(), id), http.StatusOK, "Product deleted successfully")
}

func (h *AdminHandler) ExportProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts("")
	if err != nil {
		ErrorResponse(c, mapErrorToStatus(err), userMessage(err))
		return
	}

	var buf bytes.Buffer
	if err := writeProductsXLSX(&buf, products); err != nil {
		h.log.Errorf("Failed to export products: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to export products")
		return
	}

	filename := fmt.Sprintf("products-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func respondMutation[T any](c *gin.Context, m domain.Mutation[T], okStatus int, message string) {
	if !m.Committed() {
		FailWithData(c, mapErrorToStatus(m.Err), userMessage(m.Err), m)
		return
	}
	SuccessResponse(c, okStatus, message, m)
}
