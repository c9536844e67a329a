package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrAdminAlreadyExists = errors.New("el primer admin ya fue creado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrOrderNotFound      = errors.New("orden de pago no encontrada")
	ErrInvalidSignature   = errors.New("firma de pago inválida")
	ErrGateway            = errors.New("error de la pasarela de pago")
	ErrUploadFailed       = errors.New("error subiendo la imagen")
)
