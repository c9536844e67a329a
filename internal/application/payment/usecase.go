package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jcastellanos/sweetshop-api/internal/application/dto"
	"github.com/jcastellanos/sweetshop-api/internal/domain"
	"github.com/jcastellanos/sweetshop-api/internal/domain/entity"
	"github.com/jcastellanos/sweetshop-api/internal/domain/repository"
)

// PaymentUseCase crea órdenes en la pasarela y registra su verificación.
type PaymentUseCase struct {
	repo    repository.PaymentRepository
	gateway OrderGateway
	now     func() time.Time
}

// NewPaymentUseCase construye el caso de uso de pagos.
func NewPaymentUseCase(repo repository.PaymentRepository, gateway OrderGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, gateway: gateway, now: time.Now}
}

// CreateOrder crea la orden remota y solo entonces persiste el registro
// local en estado CREATED, clavado al order id de la pasarela. Si la
// llamada remota falla no se escribe nada y el error se propaga.
func (uc *PaymentUseCase) CreateOrder(ctx context.Context, in dto.CreateOrderRequest) (map[string]interface{}, error) {
	if in.SweetID == "" || in.Quantity <= 0 || !in.Amount.IsPositive() || in.Currency == "" {
		return nil, domain.ErrInvalidInput
	}
	receipt := fmt.Sprintf("txn_%d", uc.now().UnixMilli())
	orderID, raw, err := uc.gateway.CreateOrder(ctx, in.Amount, in.Currency, receipt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGateway, err)
	}
	now := uc.now()
	record := &entity.Payment{
		ID:        uuid.New().String(),
		OrderID:   orderID,
		SweetID:   in.SweetID,
		Quantity:  in.Quantity,
		Amount:    in.Amount,
		Currency:  in.Currency,
		Status:    entity.PaymentStatusCreated,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(record); err != nil {
		return nil, err
	}
	return raw, nil
}

// VerifyPayment resuelve la orden local y valida la firma en el servidor
// contra el secreto compartido de la pasarela. Firma válida → PAID con
// paymentID y signature adjuntos; inválida → FAILED y error al caller.
// Re-verificar una orden ya PAID es idempotente.
func (uc *PaymentUseCase) VerifyPayment(in dto.VerifyPaymentRequest) (*dto.PaymentResponse, error) {
	record, err := uc.repo.GetByOrderID(in.OrderID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrOrderNotFound
	}
	if record.Status == entity.PaymentStatusPaid {
		return toPaymentResponse(record), nil
	}
	if !uc.gateway.VerifySignature(in.OrderID, in.PaymentID, in.Signature) {
		if err := uc.repo.UpdateStatus(in.OrderID, entity.PaymentStatusFailed, in.PaymentID, in.Signature); err != nil {
			return nil, err
		}
		return nil, domain.ErrInvalidSignature
	}
	if err := uc.repo.UpdateStatus(in.OrderID, entity.PaymentStatusPaid, in.PaymentID, in.Signature); err != nil {
		return nil, err
	}
	record.Status = entity.PaymentStatusPaid
	record.PaymentID = in.PaymentID
	record.Signature = in.Signature
	return toPaymentResponse(record), nil
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:        p.ID,
		OrderID:   p.OrderID,
		PaymentID: p.PaymentID,
		SweetID:   p.SweetID,
		Quantity:  p.Quantity,
		Amount:    p.Amount,
		Currency:  p.Currency,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
	}
}
