package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest entrada para crear una orden en la pasarela.
type CreateOrderRequest struct {
	SweetID  string          `json:"sweetId"`
	Quantity int             `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`   // monto total en la moneda dada
	Currency string          `json:"currency"` // ej. INR
}

// VerifyPaymentRequest datos que la pasarela entrega al frontend tras el pago.
type VerifyPaymentRequest struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}

// PaymentResponse salida del registro local de pago.
type PaymentResponse struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"orderId"`
	PaymentID string          `json:"paymentId,omitempty"`
	SweetID   string          `json:"sweetId"`
	Quantity  int             `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}
