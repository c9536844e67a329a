package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// OrderGateway es el puerto hacia la pasarela de pagos externa.
type OrderGateway interface {
	// CreateOrder crea la orden remota y devuelve su id más el cuerpo crudo
	// de la pasarela (el frontend lo necesita completo para abrir el checkout).
	CreateOrder(ctx context.Context, amount decimal.Decimal, currency, receipt string) (orderID string, raw map[string]interface{}, err error)
	// VerifySignature valida en el servidor la firma HMAC que la pasarela
	// entrega al frontend, usando el secreto compartido.
	VerifySignature(orderID, paymentID, signature string) bool
}
