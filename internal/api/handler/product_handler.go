package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/playgroundhq/playground-api/internal/core/domain"
	"github.com/playgroundhq/playground-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	products ports.ProductService
}

func NewProductHandler(products ports.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

type productRequest struct {
	Name  string  `json:"name"  validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}

// List handles GET /v1/products.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Product
// @Failure      401  {object}  errorResponse
// @Router       /v1/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.products.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /v1/products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  errorResponse
// @Router       /v1/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	product, err := h.products.GetProduct(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create handles POST /v1/products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      422   {object}  errorResponse
// @Router       /v1/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.products.CreateProduct(c.Request().Context(), req.Name, req.Price)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// Update handles PUT /v1/products/:id.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int             true  "Product ID"
// @Param        body  body  productRequest  true  "Product details"
// @Success      204
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	ok, err := h.products.UpdateProduct(c.Request().Context(), id, req.Name, req.Price)
	if err != nil {
		return err
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/products/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Security     BearerAuth
// @Param        id  path  int  true  "Product ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	ok, err := h.products.DeleteProduct(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	return c.NoContent(http.StatusNoContent)
}
