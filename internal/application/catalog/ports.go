package catalog

import (
	"context"

	"github.com/jcastellanos/sweetshop-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con el repo de
// dulces atado a la tx. Compra y reposición dependen de esto para que la
// secuencia leer-validar-escribir sea atómica frente a compras concurrentes.
type TxRunner interface {
	Run(ctx context.Context, fn func(sweetRepo repository.SweetRepository) error) error
}

// ImageUploader sube bytes de imagen a un hosting externo y devuelve la URL
// pública. Un solo intento; el error se propaga al caller.
type ImageUploader interface {
	Upload(ctx context.Context, data []byte, filename string) (string, error)
}
