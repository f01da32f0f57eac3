package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/concierge_backoffice/internal/core/ports/services"
	"github.com/SscSPs/concierge_backoffice/internal/dto"
	"github.com/SscSPs/concierge_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// catalogHandler handles HTTP requests for categories, prestations and products.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

func newCatalogHandler(cs portssvc.CatalogSvcFacade) *catalogHandler {
	return &catalogHandler{catalogService: cs}
}

// registerCatalogRoutes registers the two category trees and the catalog entries.
func registerCatalogRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := newCatalogHandler(catalogService)

	for path, kind := range map[string]domain.CategoryKind{
		"/prestation-categories": domain.PrestationCategory,
		"/product-categories":    domain.ProductCategory,
	} {
		categories := rg.Group(path)
		categories.POST("", h.createCategory(kind))
		categories.GET("", h.listCategories(kind))
		categories.GET("/:categoryID", h.getCategory(kind))
		categories.PUT("/:categoryID", h.updateCategory(kind))
		categories.DELETE("/:categoryID", h.deleteCategory(kind))
	}

	prestations := rg.Group("/prestations")
	{
		prestations.POST("", h.createPrestation)
		prestations.GET("", h.listPrestations)
		prestations.GET("/:prestationID", h.getPrestation)
		prestations.PUT("/:prestationID", h.updatePrestation)
		prestations.DELETE("/:prestationID", h.deletePrestation)
	}

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/:productID", h.getProduct)
		products.PUT("/:productID", h.updateProduct)
		products.DELETE("/:productID", h.deleteProduct)
	}
}

// createCategory godoc
// @Summary Create a catalog category
// @Description Same contract on /prestation-categories and /product-categories
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   category body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /prestation-categories [post]
// @Router /product-categories [post]
func (h *catalogHandler) createCategory(kind domain.CategoryKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("kind", string(kind)))
		var req dto.CreateCategoryRequest
		if !bindJSON(c, logger, &req) {
			return
		}
		creatorID, ok := adminFromContext(c, logger)
		if !ok {
			return
		}

		category, err := h.catalogService.CreateCategory(c.Request.Context(), kind, req, creatorID)
		if err != nil {
			respondServiceError(c, logger, err, "Category", "create category")
			return
		}

		logger.Info("Category created", slog.String("category_id", category.CategoryID))
		c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
	}
}

// listCategories godoc
// @Summary List catalog categories
// @Tags catalog
// @Produce  json
// @Success 200 {array} dto.CategoryResponse
// @Security BearerAuth
// @Router /prestation-categories [get]
// @Router /product-categories [get]
func (h *catalogHandler) listCategories(kind domain.CategoryKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("kind", string(kind)))

		categories, err := h.catalogService.ListCategories(c.Request.Context(), kind)
		if err != nil {
			respondServiceError(c, logger, err, "Category", "list categories")
			return
		}
		c.JSON(http.StatusOK, dto.ToListCategoryResponse(categories))
	}
}

// getCategory godoc
// @Summary Get a catalog category
// @Tags catalog
// @Produce  json
// @Param   categoryID path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /prestation-categories/{categoryID} [get]
// @Router /product-categories/{categoryID} [get]
func (h *catalogHandler) getCategory(kind domain.CategoryKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID := c.Param("categoryID")
		logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("category_id", categoryID))

		category, err := h.catalogService.GetCategoryByID(c.Request.Context(), kind, categoryID)
		if err != nil {
			respondServiceError(c, logger, err, "Category", "retrieve category")
			return
		}
		c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
	}
}

// updateCategory godoc
// @Summary Rename a catalog category or change its icon
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   categoryID path string true "Category ID"
// @Param   category body dto.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /prestation-categories/{categoryID} [put]
// @Router /product-categories/{categoryID} [put]
func (h *catalogHandler) updateCategory(kind domain.CategoryKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID := c.Param("categoryID")
		logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("category_id", categoryID))
		var req dto.UpdateCategoryRequest
		if !bindJSON(c, logger, &req) {
			return
		}
		updaterID, ok := adminFromContext(c, logger)
		if !ok {
			return
		}

		category, err := h.catalogService.UpdateCategory(c.Request.Context(), kind, categoryID, req, updaterID)
		if err != nil {
			respondServiceError(c, logger, err, "Category", "update category")
			return
		}
		c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
	}
}

// deleteCategory godoc
// @Summary Delete a catalog category
// @Description Refused with 409 while a prestation or product still belongs to the category
// @Tags catalog
// @Param   categoryID path string true "Category ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Category in use"
// @Security BearerAuth
// @Router /prestation-categories/{categoryID} [delete]
// @Router /product-categories/{categoryID} [delete]
func (h *catalogHandler) deleteCategory(kind domain.CategoryKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID := c.Param("categoryID")
		logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("category_id", categoryID))

		if err := h.catalogService.DeleteCategory(c.Request.Context(), kind, categoryID); err != nil {
			respondServiceError(c, logger, err, "Category", "delete category")
			return
		}

		logger.Info("Category deleted")
		c.Status(http.StatusNoContent)
	}
}

// bindCatalogQuery reads the optional categoryId filter.
func bindCatalogQuery(c *gin.Context, logger *slog.Logger) (dto.ListCatalogParams, bool) {
	var params dto.ListCatalogParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return params, false
	}
	return params, true
}

// createPrestation godoc
// @Summary Add a prestation to the catalog
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   prestation body dto.CreatePrestationRequest true "Prestation"
// @Success 201 {object} dto.PrestationResponse
// @Failure 400 {object} ErrorResponse "Invalid input or unknown category"
// @Security BearerAuth
// @Router /prestations [post]
func (h *catalogHandler) createPrestation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePrestationRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	creatorID, ok := adminFromContext(c, logger)
	if !ok {
		return
	}

	prestation, err := h.catalogService.CreatePrestation(c.Request.Context(), req, creatorID)
	if err != nil {
		respondServiceError(c, logger, err, "Prestation", "create prestation")
		return
	}

	logger.Info("Prestation created", slog.String("prestation_id", prestation.PrestationID))
	c.JSON(http.StatusCreated, dto.ToPrestationResponse(prestation))
}

// listPrestations godoc
// @Summary List prestations
// @Tags catalog
// @Produce  json
// @Param   categoryId query string false "Only prestations of this category"
// @Success 200 {array} dto.PrestationResponse
// @Security BearerAuth
// @Router /prestations [get]
func (h *catalogHandler) listPrestations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := bindCatalogQuery(c, logger)
	if !ok {
		return
	}

	prestations, err := h.catalogService.ListPrestations(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Prestation", "list prestations")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPrestationResponse(prestations))
}

// getPrestation godoc
// @Summary Get a prestation
// @Tags catalog
// @Produce  json
// @Param   prestationID path string true "Prestation ID"
// @Success 200 {object} dto.PrestationResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /prestations/{prestationID} [get]
func (h *catalogHandler) getPrestation(c *gin.Context) {
	prestationID := c.Param("prestationID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("prestation_id", prestationID))

	prestation, err := h.catalogService.GetPrestationByID(c.Request.Context(), prestationID)
	if err != nil {
		respondServiceError(c, logger, err, "Prestation", "retrieve prestation")
		return
	}
	c.JSON(http.StatusOK, dto.ToPrestationResponse(prestation))
}

// updatePrestation godoc
// @Summary Update a prestation
// @Description Documents already issued keep their snapshot of the prestation
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   prestationID path string true "Prestation ID"
// @Param   prestation body dto.UpdatePrestationRequest true "Fields to update"
// @Success 200 {object} dto.PrestationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /prestations/{prestationID} [put]
func (h *catalogHandler) updatePrestation(c *gin.Context) {
	prestationID := c.Param("prestationID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("prestation_id", prestationID))
	var req dto.UpdatePrestationRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	updaterID, ok := adminFromContext(c, logger)
	if !ok {
		return
	}

	prestation, err := h.catalogService.UpdatePrestation(c.Request.Context(), prestationID, req, updaterID)
	if err != nil {
		respondServiceError(c, logger, err, "Prestation", "update prestation")
		return
	}
	c.JSON(http.StatusOK, dto.ToPrestationResponse(prestation))
}

// deletePrestation godoc
// @Summary Delete a prestation
// @Tags catalog
// @Param   prestationID path string true "Prestation ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /prestations/{prestationID} [delete]
func (h *catalogHandler) deletePrestation(c *gin.Context) {
	prestationID := c.Param("prestationID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("prestation_id", prestationID))

	if err := h.catalogService.DeletePrestation(c.Request.Context(), prestationID); err != nil {
		respondServiceError(c, logger, err, "Prestation", "delete prestation")
		return
	}
	c.Status(http.StatusNoContent)
}

// createProduct godoc
// @Summary Add a product to the catalog
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   product body dto.CreateProductRequest true "Product"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse "Invalid input or unknown category"
// @Security BearerAuth
// @Router /products [post]
func (h *catalogHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProductRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	creatorID, ok := adminFromContext(c, logger)
	if !ok {
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), req, creatorID)
	if err != nil {
		respondServiceError(c, logger, err, "Product", "create product")
		return
	}

	logger.Info("Product created", slog.String("product_id", product.ProductID))
	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// listProducts godoc
// @Summary List products
// @Tags catalog
// @Produce  json
// @Param   categoryId query string false "Only products of this category"
// @Success 200 {array} dto.ProductResponse
// @Security BearerAuth
// @Router /products [get]
func (h *catalogHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := bindCatalogQuery(c, logger)
	if !ok {
		return
	}

	products, err := h.catalogService.ListProducts(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Product", "list products")
		return
	}
	c.JSON(http.StatusOK, dto.ToListProductResponse(products))
}

// getProduct godoc
// @Summary Get a product
// @Tags catalog
// @Produce  json
// @Param   productID path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{productID} [get]
func (h *catalogHandler) getProduct(c *gin.Context) {
	productID := c.Param("productID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("product_id", productID))

	product, err := h.catalogService.GetProductByID(c.Request.Context(), productID)
	if err != nil {
		respondServiceError(c, logger, err, "Product", "retrieve product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// updateProduct godoc
// @Summary Update a product
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   productID path string true "Product ID"
// @Param   product body dto.UpdateProductRequest true "Fields to update"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{productID} [put]
func (h *catalogHandler) updateProduct(c *gin.Context) {
	productID := c.Param("productID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("product_id", productID))
	var req dto.UpdateProductRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	updaterID, ok := adminFromContext(c, logger)
	if !ok {
		return
	}

	product, err := h.catalogService.UpdateProduct(c.Request.Context(), productID, req, updaterID)
	if err != nil {
		respondServiceError(c, logger, err, "Product", "update product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// deleteProduct godoc
// @Summary Delete a product
// @Tags catalog
// @Param   productID path string true "Product ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{productID} [delete]
func (h *catalogHandler) deleteProduct(c *gin.Context) {
	productID := c.Param("productID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("product_id", productID))

	if err := h.catalogService.DeleteProduct(c.Request.Context(), productID); err != nil {
		respondServiceError(c, logger, err, "Product", "delete product")
		return
	}
	c.Status(http.StatusNoContent)
}
