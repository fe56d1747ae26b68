package handlers

import (
	"net/http"

	"github.com/cotadorplus/cotador/pkg/auth"
	"github.com/cotadorplus/cotador/pkg/errhttp"
	"github.com/cotadorplus/cotador/pkg/httpx"
	pkgvalidator "github.com/cotadorplus/cotador/pkg/validator"
	appsvcs "github.com/cotadorplus/cotador/services/catalog/application/services"
)

// CreateClientRequest is the request body for POST /clients.
type CreateClientRequest struct {
	Name    string `json:"name"    validate:"required,max=255" example:"João Silva"`
	Phone   string `json:"phone"   validate:"max=32"           example:"(11) 98765-4321"`
	Email   string `json:"email"   validate:"omitempty,email"  example:"joao@example.com"`
	Address string `json:"address" validate:"max=512"          example:"Rua das Flores, 10"`
} // @name CreateClientRequest

// SearchClientsResponse wraps autocomplete results.
type SearchClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
} // @name SearchClientsResponse

// ClientsHandler serves /clients.
type ClientsHandler struct {
	svc *appsvcs.Services
}

func NewClientsHandler(svc *appsvcs.Services) *ClientsHandler {
	return &ClientsHandler{svc: svc}
}

// Search returns clients whose name contains q.
//
//	@Summary	Search clients
//	@Tags		catalog
//	@Produce	json
//	@Param		X-Tenant-ID	header		string	true	"Tenant id"
//	@Param		q			query		string	false	"Name fragment"
//	@Success	200			{object}	SearchClientsResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	500			{object}	ErrorResponse
//	@Router		/clients [get]
func (h *ClientsHandler) Search(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	clients, err := h.svc.Catalog.SearchClients(r.Context(), tenantID, r.URL.Query().Get("q"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := SearchClientsResponse{Clients: make([]ClientResponse, len(clients))}
	for i, c := range clients {
		resp.Clients[i] = toClientResponse(c)
	}
	httpx.JSON(w, http.StatusOK, resp)
}

// Create saves a client.
//
//	@Summary	Create client
//	@Tags		catalog
//	@Accept		json
//	@Produce	json
//	@Param		X-Tenant-ID	header		string				true	"Tenant id"
//	@Param		request		body		CreateClientRequest	true	"Client"
//	@Success	201			{object}	ClientResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	409			{object}	ErrorResponse
//	@Failure	422			{object}	ErrorResponse
//	@Failure	500			{object}	ErrorResponse
//	@Router		/clients [post]
func (h *ClientsHandler) Create(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateClientRequest](w, r)
	if !ok {
		return
	}

	client, err := h.svc.Catalog.CreateClient(r.Context(), tenantID, req.Name, req.Phone, req.Email, req.Address)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toClientResponse(client))
}
