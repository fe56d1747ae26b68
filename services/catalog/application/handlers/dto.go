package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/cotadorplus/cotador/services/catalog/domain/models"
)

// ClientResponse is the JSON representation of a catalog client.
type ClientResponse struct {
	ID        uuid.UUID `json:"id"        example:"5d0c3c4e-1f7e-4a8f-9f4a-2b7d6c1e0a11"`
	Name      string    `json:"name"      example:"João Silva"`
	Phone     string    `json:"phone"     example:"(11) 98765-4321"`
	Email     string    `json:"email"     example:"joao@example.com"`
	Address   string    `json:"address"   example:"Rua das Flores, 10"`
	CreatedAt time.Time `json:"createdAt" example:"2025-03-10T14:30:00Z"`
} // @name ClientResponse

// ProductResponse is the JSON representation of a catalog product.
type ProductResponse struct {
	ID        uuid.UUID `json:"id"        example:"9a4e0b7c-3c1d-4d2e-8f6a-7b5c4d3e2f10"`
	Title     string    `json:"title"     example:"Instalação de tomada"`
	Price     float64   `json:"price"     example:"90"`
	Category  string    `json:"category"  example:"elétrica"`
	CreatedAt time.Time `json:"createdAt" example:"2025-03-10T14:30:00Z"`
} // @name ProductResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid client"`
	Code  string `json:"code,omitempty" example:"invalid_client"`
} // @name CatalogErrorResponse

func toClientResponse(c *models.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}

func toProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Title:     p.Title,
		Price:     p.Price.InexactFloat64(),
		Category:  p.Category,
		CreatedAt: p.CreatedAt,
	}
}
