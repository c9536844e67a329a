package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSweetRequest entrada para crear un dulce.
type CreateSweetRequest struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// UpdateSweetRequest entrada para actualizar un dulce. Sobrescribe los
// cuatro campos; la URL de imagen se maneja en una operación aparte y
// se preserva.
type UpdateSweetRequest struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// QuantityRequest entrada para compra y reposición de stock.
type QuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SearchSweetRequest filtros de búsqueda; los campos vacíos no restringen.
type SearchSweetRequest struct {
	Name     string           `query:"name"`
	Category string           `query:"category"`
	MinPrice *decimal.Decimal `query:"minPrice"`
	MaxPrice *decimal.Decimal `query:"maxPrice"`
}

// SweetResponse salida de un dulce.
type SweetResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	ImageURL  string          `json:"imageUrl,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
