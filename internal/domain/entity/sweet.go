package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sweet representa un dulce del catálogo. Quantity nunca baja de cero:
// las compras que lo dejarían negativo se rechazan en la capa de aplicación
// y la restricción CHECK de la tabla lo garantiza frente a carreras.
type Sweet struct {
	ID        string
	Name      string
	Category  string
	Price     decimal.Decimal // precio unitario, no negativo
	Quantity  int             // stock disponible
	ImageURL  string          // vacío hasta que un admin sube imagen
	CreatedAt time.Time
	UpdatedAt time.Time
}
