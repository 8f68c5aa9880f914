package products

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atompoint/storefront/internal/domain"
	"github.com/atompoint/storefront/internal/dto"
	"github.com/atompoint/storefront/internal/service/productservice"
	"github.com/atompoint/storefront/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	ListAvailable(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type ProductHandler struct {
	productService Service
}

func New(productService Service) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// GetProducts godoc
//
//	@Summary		List available products
//	@Description	Catalog of available products grouped by operator, then category
//	@Tags			Products
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.GroupedProductsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/products [get]
func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.ListAvailable(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GroupedProductsResponseDTO{Products: dto.GroupProducts(products)})
}

// GetProduct godoc
//
//	@Summary		Get a product by ID
//	@Tags			Products
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Product ID"
//	@Success		200	{object}	dto.ProductResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Product not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/products/{id} [get]
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.productService.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, productservice.ErrProductNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Product not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch product")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProductResponseDTO{Product: dto.NewProductDTO(*product)})
}

// CreateProduct godoc
//
//	@Summary		Create a product
//	@Description	Admin only. Product IDs are stable catalog keys and must be unique.
//	@Tags			Products
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ProductRequestDTO	true	"Product payload"
//	@Success		201		{object}	dto.ProductResponseDTO
//	@Failure		400		{object}	utils.Response	"Product ID already exists"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/products [post]
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.ProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ID == "" || req.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Product ID and name are required")
		return
	}

	product, err := h.productService.CreateProduct(r.Context(), &domain.Product{
		ID:       req.ID,
		Operator: req.Operator,
		Category: req.Category,
		Name:     req.Name,
		PriceMMK: req.PriceMMK,
		PriceCr:  req.PriceCr,
	})
	if err != nil {
		if errors.Is(err, productservice.ErrProductExists) {
			utils.RespondWithError(w, http.StatusBadRequest, "Product ID already exists")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create product")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.ProductResponseDTO{Product: dto.NewProductDTO(*product)})
}

// UpdateProduct godoc
//
//	@Summary		Update a product
//	@Description	Admin only. Requires the persistent backend.
//	@Tags			Products
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Product ID"
//	@Param			request	body		dto.ProductRequestDTO	true	"Product payload"
//	@Success		200		{object}	dto.ProductResponseDTO
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		404		{object}	utils.Response	"Product not found"
//	@Failure		500		{object}	utils.Response	"Database connection not available"
//	@Router			/api/products/{id} [put]
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.ProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.productService.UpdateProduct(r.Context(), &domain.Product{
		ID:        chi.URLParam(r, "id"),
		Operator:  req.Operator,
		Category:  req.Category,
		Name:      req.Name,
		PriceMMK:  req.PriceMMK,
		PriceCr:   req.PriceCr,
		Available: req.Available,
	})
	if err != nil {
		switch {
		case errors.Is(err, productservice.ErrProductNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		case errors.Is(err, domain.ErrStorageUnavailable):
			utils.RespondWithError(w, http.StatusInternalServerError, "Database connection not available")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update product")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProductResponseDTO{Product: dto.NewProductDTO(*product)})
}

// DeleteProduct godoc
//
//	@Summary		Delete a product
//	@Description	Admin only. Requires the persistent backend.
//	@Tags			Products
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Product ID"
//	@Success		200	{object}	dto.MessageResponseDTO
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Database connection not available"
//	@Router			/api/products/{id} [delete]
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.productService.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, domain.ErrStorageUnavailable) {
			utils.RespondWithError(w, http.StatusInternalServerError, "Database connection not available")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Product deleted successfully"})
}
