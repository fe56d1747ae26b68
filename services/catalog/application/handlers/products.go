package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/cotadorplus/cotador/pkg/auth"
	"github.com/cotadorplus/cotador/pkg/errhttp"
	"github.com/cotadorplus/cotador/pkg/httpx"
	pkgvalidator "github.com/cotadorplus/cotador/pkg/validator"
	appsvcs "github.com/cotadorplus/cotador/services/catalog/application/services"
)

// CreateProductRequest is the request body for POST /products.
type CreateProductRequest struct {
	Title    string          `json:"title"    validate:"required,max=255" example:"Instalação de tomada"`
	Price    decimal.Decimal `json:"price"    swaggertype:"number"        example:"90"`
	Category string          `json:"category" validate:"max=64"           example:"elétrica"`
} // @name CreateProductRequest

// SearchProductsResponse wraps autocomplete results.
type SearchProductsResponse struct {
	Products []ProductResponse `json:"products"`
} // @name SearchProductsResponse

// ProductsHandler serves /products.
type ProductsHandler struct {
	svc *appsvcs.Services
}

func NewProductsHandler(svc *appsvcs.Services) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// Search returns products whose title contains q.
//
//	@Summary	Search products
//	@Tags		catalog
//	@Produce	json
//	@Param		X-Tenant-ID	header		string	true	"Tenant id"
//	@Param		q			query		string	false	"Title fragment"
//	@Success	200			{object}	SearchProductsResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	500			{object}	ErrorResponse
//	@Router		/products [get]
func (h *ProductsHandler) Search(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	products, err := h.svc.Catalog.SearchProducts(r.Context(), tenantID, r.URL.Query().Get("q"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := SearchProductsResponse{Products: make([]ProductResponse, len(products))}
	for i, p := range products {
		resp.Products[i] = toProductResponse(p)
	}
	httpx.JSON(w, http.StatusOK, resp)
}

// Create saves a product.
//
//	@Summary	Create product
//	@Tags		catalog
//	@Accept		json
//	@Produce	json
//	@Param		X-Tenant-ID	header		string					true	"Tenant id"
//	@Param		request		body		CreateProductRequest	true	"Product"
//	@Success	201			{object}	ProductResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	409			{object}	ErrorResponse
//	@Failure	422			{object}	ErrorResponse
//	@Failure	500			{object}	ErrorResponse
//	@Router		/products [post]
func (h *ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateProductRequest](w, r)
	if !ok {
		return
	}

	product, err := h.svc.Catalog.CreateProduct(r.Context(), tenantID, req.Title, req.Price, req.Category)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toProductResponse(product))
}
