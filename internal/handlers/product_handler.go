package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"petstore/internal/models"
	"petstore/internal/services"
)

type ProductHandler struct {
	productService *services.ProductService
	logger         zerolog.Logger
}

func NewProductHandler(productService *services.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.ListProducts(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err, "Error fetching products")
		return
	}

	respondWithJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var in models.ProductInput
	if err := decodeBody(r, &in); err != nil {
		respondWithError(w, h.logger, err, "Error adding product")
		return
	}

	product, err := h.productService.CreateProduct(r.Context(), in)
	if err != nil {
		respondWithError(w, h.logger, err, "Error adding product")
		return
	}

	respondWithJSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var in models.ProductInput
	if err := decodeBody(r, &in); err != nil {
		respondWithError(w, h.logger, err, "Error updating product")
		return
	}

	product, err := h.productService.UpdateProduct(r.Context(), id, in)
	if err != nil {
		respondWithError(w, h.logger, err, "Error updating product")
		return
	}

	respondWithJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.productService.DeleteProduct(r.Context(), id)
	if err != nil {
		respondWithError(w, h.logger, err, "Error deleting product")
		return
	}

	respondWithJSON(w, http.StatusOK, models.DeleteProductResponse{
		Message:        "Product deleted successfully",
		DeletedProduct: product,
	})
}
