package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NatePombi/inventory-management-system-api/internal/api/metrics"
	"github.com/NatePombi/inventory-management-system-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for product operations.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// Create handles POST /product.
//
// @Summary      Create a new product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /product [post]
func (h *ProductHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Create(c.Request().Context(), principal, ports.CreateProductInput{
		Name:     req.Name,
		Quantity: req.Quantity,
		Price:    req.Price,
	})
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, product)
}

// Get handles GET /product/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /product/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	product, err := h.service.Get(c.Request().Context(), principal, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Update handles PATCH /product/:id.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Updated fields"
// @Success      200   {object}  domain.Product
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /product/{id} [patch]
func (h *ProductHandler) Update(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Update(c.Request().Context(), principal, c.Param("id"), ports.UpdateProductInput{
		Name:     req.Name,
		Quantity: req.Quantity,
		Price:    req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /product/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  deleteResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /product/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), principal, c.Param("id")); err != nil {
		return err
	}

	metrics.ProductsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, deleteResponse{Deleted: true})
}

// List handles GET /product. Non-admins see only their own products; admins
// see every product. The optional search parameter narrows the listing by
// case-insensitive name substring within that scope.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        page       query     int     false  "0-based page index"  default(0)
// @Param        size       query     int     false  "Items per page"      default(5)
// @Param        sortBy     query     string  false  "Sort field"          default(name)
// @Param        direction  query     string  false  "asc or desc"         default(asc)
// @Param        search     query     string  false  "Name substring filter"
// @Success      200  {object}  paginatedResponse
// @Failure      400  {object}  map[string]string
// @Router       /product [get]
func (h *ProductHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	page, err := pageRequest(c, "name", false)
	if err != nil {
		return err
	}

	result, err := h.service.List(c.Request().Context(), ports.ListProductsInput{
		Principal: principal,
		Search:    c.QueryParam("search"),
		Page:      page,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newPaginatedResponse(result.Items, result.Page, result.TotalPages, result.Total))
}
