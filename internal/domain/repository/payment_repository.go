package repository

import "github.com/jcastellanos/sweetshop-api/internal/domain/entity"

// PaymentRepository define el puerto de persistencia para Payment (DIP).
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByOrderID(orderID string) (*entity.Payment, error)
	// UpdateStatus registra la transición de estado y adjunta paymentID y
	// signature reportados por la pasarela.
	UpdateStatus(orderID, status, paymentID, signature string) error
	ListBySweet(sweetID string) ([]*entity.Payment, error)
}
