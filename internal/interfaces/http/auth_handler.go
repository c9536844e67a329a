package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastellanos/sweetshop-api/internal/application/auth"
	"github.com/jcastellanos/sweetshop-api/internal/application/dto"
	"github.com/jcastellanos/sweetshop-api/internal/domain"
)

// AuthHandler maneja registro, login y creación de admins.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "firstname, lastname, email, password"
// @Success      200   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	in, ok := parseRegister(c)
	if !ok {
		return nil
	}
	out, err := h.uc.Register(in)
	if err != nil {
		return mapAuthError(c, err)
	}
	return c.JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.AuthResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		// Mensajes separados a propósito (UX del frontend, no hardening).
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_EMAIL", Message: "email inválido"})
		}
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_PASSWORD", Message: "contraseña incorrecta"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CreateFirstAdmin godoc
// @Summary      Crear el admin de bootstrap (ruta pública, deshabilitar tras el primer uso)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "firstname, lastname, email, password"
// @Success      200   {object}  dto.AuthResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/create-first-admin [post]
func (h *AuthHandler) CreateFirstAdmin(c *fiber.Ctx) error {
	in, ok := parseRegister(c)
	if !ok {
		return nil
	}
	out, err := h.uc.CreateFirstAdmin(in)
	if err != nil {
		return mapAuthError(c, err)
	}
	return c.JSON(out)
}

// CreateAdmin godoc
// @Summary      Crear otro admin (solo admins; no emite token)
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "firstname, lastname, email, password"
// @Success      200   {object}  dto.AuthResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/create-admin [post]
func (h *AuthHandler) CreateAdmin(c *fiber.Ctx) error {
	in, ok := parseRegister(c)
	if !ok {
		return nil
	}
	out, err := h.uc.CreateAdmin(in)
	if err != nil {
		return mapAuthError(c, err)
	}
	return c.JSON(out)
}

// parseRegister decodifica y valida el cuerpo. Si devuelve ok=false la
// respuesta de error ya quedó escrita en el contexto.
func parseRegister(c *fiber.Ctx) (dto.RegisterRequest, bool) {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		return in, false
	}
	if in.Email == "" || in.Password == "" {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
		return in, false
	}
	return in, true
}

func mapAuthError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrAdminAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ADMIN_EXISTS", Message: "el primer admin ya fue creado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
