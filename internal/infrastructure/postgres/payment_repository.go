package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastellanos/sweetshop-api/internal/domain"
	"github.com/jcastellanos/sweetshop-api/internal/domain/entity"
	"github.com/jcastellanos/sweetshop-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

const paymentColumns = `id, order_id, payment_id, signature, sweet_id, quantity, amount, currency, status, created_at, updated_at`

// PaymentRepo implementación del puerto PaymentRepository sobre PostgreSQL (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador de persistencia para pagos. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste el registro local de una orden recién creada en la pasarela.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, order_id, payment_id, signature, sweet_id, quantity, amount, currency, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.OrderID, payment.PaymentID, payment.Signature, payment.SweetID,
		payment.Quantity, payment.Amount, payment.Currency, payment.Status,
		payment.CreatedAt, payment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByOrderID obtiene un pago por el order id de la pasarela.
func (r *PaymentRepo) GetByOrderID(orderID string) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE order_id = $1`
	var p entity.Payment
	err := r.q.QueryRow(context.Background(), query, orderID).Scan(
		&p.ID, &p.OrderID, &p.PaymentID, &p.Signature, &p.SweetID, &p.Quantity,
		&p.Amount, &p.Currency, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// UpdateStatus registra la transición de estado con los datos de la pasarela.
func (r *PaymentRepo) UpdateStatus(orderID, status, paymentID, signature string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE payments SET status = $2, payment_id = $3, signature = $4, updated_at = now() WHERE order_id = $1`,
		orderID, status, paymentID, signature,
	)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// ListBySweet lista los pagos asociados a un dulce.
func (r *PaymentRepo) ListBySweet(sweetID string) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE sweet_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, sweetID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.OrderID, &p.PaymentID, &p.Signature, &p.SweetID, &p.Quantity,
			&p.Amount, &p.Currency, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
