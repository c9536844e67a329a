package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastellanos/sweetshop-api/internal/application/dto"
	"github.com/jcastellanos/sweetshop-api/internal/application/payment"
	"github.com/jcastellanos/sweetshop-api/internal/domain"
)

// PaymentHandler maneja la creación y verificación de órdenes de pago.
type PaymentHandler struct {
	uc *payment.PaymentUseCase
}

// NewPaymentHandler construye el handler de pagos.
func NewPaymentHandler(uc *payment.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// CreateOrder godoc
// @Summary      Crear orden en la pasarela y registrarla localmente
// @Tags         payment
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "sweetId, quantity, amount, currency"
// @Success      200   {object}  map[string]interface{}  "Orden cruda de la pasarela"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/payment/create-order [post]
func (h *PaymentHandler) CreateOrder(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.CreateOrder(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sweetId, quantity, amount y currency son requeridos"})
		case errors.Is(err, domain.ErrGateway):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "GATEWAY", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	// El frontend necesita el cuerpo completo de la pasarela para el checkout.
	return c.JSON(order)
}

// VerifyPayment godoc
// @Summary      Verificar un pago (firma validada en el servidor)
// @Tags         payment
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerifyPaymentRequest  true  "orderId, paymentId, signature"
// @Success      200   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/payment/verify-payment [post]
func (h *PaymentHandler) VerifyPayment(c *fiber.Ctx) error {
	var in dto.VerifyPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.OrderID == "" || in.PaymentID == "" || in.Signature == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "orderId, paymentId y signature son requeridos"})
	}
	out, err := h.uc.VerifyPayment(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ORDER_NOT_FOUND", Message: "orden de pago no encontrada"})
		case errors.Is(err, domain.ErrInvalidSignature):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_SIGNATURE", Message: "firma de pago inválida"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}
