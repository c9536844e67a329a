package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jcastellanos/sweetshop-api/internal/application/catalog"
	"github.com/jcastellanos/sweetshop-api/internal/application/dto"
	"github.com/jcastellanos/sweetshop-api/internal/domain"
)

// SweetHandler maneja las peticiones HTTP del catálogo de dulces.
type SweetHandler struct {
	uc *catalog.SweetUseCase
}

// NewSweetHandler construye el handler.
func NewSweetHandler(uc *catalog.SweetUseCase) *SweetHandler {
	return &SweetHandler{uc: uc}
}

// Create godoc
// @Summary      Crear dulce
// @Tags         sweets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSweetRequest  true  "Datos del dulce"
// @Success      200   {object}  dto.SweetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sweets [post]
func (h *SweetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSweetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return mapSweetError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar todo el catálogo
// @Tags         sweets
// @Produce      json
// @Success      200  {array}  dto.SweetResponse
// @Router       /api/sweets [get]
func (h *SweetHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar dulces por nombre, categoría y rango de precio
// @Tags         sweets
// @Produce      json
// @Param        name      query  string  false  "Substring del nombre (case-insensitive)"
// @Param        category  query  string  false  "Categoría exacta (case-insensitive)"
// @Param        minPrice  query  number  false  "Precio mínimo inclusivo"
// @Param        maxPrice  query  number  false  "Precio máximo inclusivo"
// @Success      200  {array}  dto.SweetResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sweets/search [get]
func (h *SweetHandler) Search(c *fiber.Ctx) error {
	in := dto.SearchSweetRequest{
		Name:     c.Query("name"),
		Category: c.Query("category"),
	}
	var ok bool
	if in.MinPrice, ok = parsePriceQuery(c, "minPrice"); !ok {
		return nil
	}
	if in.MaxPrice, ok = parsePriceQuery(c, "maxPrice"); !ok {
		return nil
	}
	out, err := h.uc.Search(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar dulce (la imagen se preserva)
// @Tags         sweets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del dulce"
// @Param        body  body  dto.UpdateSweetRequest  true  "Datos a sobrescribir"
// @Success      200   {object}  dto.SweetResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sweets/{id} [put]
func (h *SweetHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSweetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return mapSweetError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar dulce
// @Tags         sweets
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del dulce"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sweets/{id} [delete]
func (h *SweetHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return mapSweetError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "dulce eliminado exitosamente"})
}

// Purchase godoc
// @Summary      Comprar (descuenta stock)
// @Tags         sweets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del dulce"
// @Param        body  body  dto.QuantityRequest  true  "Cantidad a comprar"
// @Success      200   {object}  dto.SweetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sweets/{id}/purchase [post]
func (h *SweetHandler) Purchase(c *fiber.Ctx) error {
	var in dto.QuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Purchase(c.Context(), c.Params("id"), in.Quantity)
	if err != nil {
		return mapSweetError(c, err)
	}
	return c.JSON(out)
}

// Restock godoc
// @Summary      Reponer stock
// @Tags         sweets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del dulce"
// @Param        body  body  dto.QuantityRequest  true  "Cantidad a reponer"
// @Success      200   {object}  dto.SweetResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sweets/{id}/restock [post]
func (h *SweetHandler) Restock(c *fiber.Ctx) error {
	var in dto.QuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Restock(c.Context(), c.Params("id"), in.Quantity)
	if err != nil {
		return mapSweetError(c, err)
	}
	return c.JSON(out)
}

// UploadImage godoc
// @Summary      Subir imagen del dulce (multipart, campo "file")
// @Tags         sweets
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path  string  true  "ID del dulce"
// @Param        file  formData  file  true  "Imagen"
// @Success      200   {object}  dto.SweetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sweets/{id}/upload-image [post]
func (h *SweetHandler) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "se requiere el campo multipart 'file'"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	out, err := h.uc.AttachImage(c.Context(), c.Params("id"), data, fileHeader.Filename)
	if err != nil {
		return mapSweetError(c, err)
	}
	return c.JSON(out)
}

// parsePriceQuery decodifica un query param decimal opcional. Si devuelve
// ok=false la respuesta de error ya quedó escrita.
func parsePriceQuery(c *fiber.Ctx, key string) (*decimal.Decimal, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: key + " debe ser numérico"})
		return nil, false
	}
	return &d, true
}

func mapSweetError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "dulce no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrUploadFailed):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UPLOAD_FAILED", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
