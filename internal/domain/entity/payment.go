package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un pago.
const (
	PaymentStatusCreated = "CREATED"
	PaymentStatusPaid    = "PAID"
	PaymentStatusFailed  = "FAILED"
)

// Payment registra una orden creada en la pasarela externa y su verificación.
// OrderID es el id asignado por la pasarela; PaymentID y Signature se
// adjuntan una sola vez cuando la verificación completa (CREATED → PAID).
type Payment struct {
	ID        string
	OrderID   string // id de la orden en la pasarela
	PaymentID string // id del pago en la pasarela (vacío hasta verificar)
	Signature string // firma reportada por la pasarela (vacía hasta verificar)
	SweetID   string
	Quantity  int
	Amount    decimal.Decimal
	Currency  string
	Status    string // CREATED | PAID | FAILED
	CreatedAt time.Time
	UpdatedAt time.Time
}
