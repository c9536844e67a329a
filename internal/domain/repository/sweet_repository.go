package repository

import (
	"github.com/shopspring/decimal"
	"github.com/jcastellanos/sweetshop-api/internal/domain/entity"
)

// SweetFilter filtros combinables de búsqueda. Un puntero nil significa
// "sin restricción" para ese campo.
type SweetFilter struct {
	Name     *string          // substring, case-insensitive
	Category *string          // igualdad exacta, case-insensitive
	MinPrice *decimal.Decimal // inclusivo
	MaxPrice *decimal.Decimal // inclusivo
}

// SweetRepository define el puerto de persistencia para Sweet (DIP).
type SweetRepository interface {
	Create(sweet *entity.Sweet) error
	GetByID(id string) (*entity.Sweet, error)
	// GetByIDForUpdate bloquea la fila (SELECT ... FOR UPDATE); solo tiene
	// sentido dentro de una transacción del TxRunner.
	GetByIDForUpdate(id string) (*entity.Sweet, error)
	List() ([]*entity.Sweet, error)
	Search(filter SweetFilter) ([]*entity.Sweet, error)
	Update(sweet *entity.Sweet) error
	UpdateImageURL(id, imageURL string) error
	Delete(id string) error
}
