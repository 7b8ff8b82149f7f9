package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/asistec/taller-api/internal/application/dto"
	"github.com/asistec/taller-api/internal/application/sales"
)

// SaleHandler maneja las ventas de productos y de servicios (protegido).
type SaleHandler struct {
	uc       *sales.UseCase
	validate *validator.Validate
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.UseCase) *SaleHandler {
	return &SaleHandler{uc: uc, validate: validator.New()}
}

// Create godoc
// @Summary      Registrar venta de productos
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "client_id y líneas válidas son requeridos"})
	}
	out, err := h.uc.RecordSale(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas de productos
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SaleListResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListSales()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateServiceSale godoc
// @Summary      Registrar venta de servicio
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateServiceSaleRequest  true  "Venta de servicio"
// @Success      201   {object}  dto.ServiceSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/service-sales [post]
func (h *SaleHandler) CreateServiceSale(c *fiber.Ctx) error {
	var in dto.CreateServiceSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "client_id, service_id y quantity positivo son requeridos"})
	}
	out, err := h.uc.RecordServiceSale(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListServiceSales godoc
// @Summary      Listar ventas de servicios
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ServiceSaleListResponse
// @Router       /api/service-sales [get]
func (h *SaleHandler) ListServiceSales(c *fiber.Ctx) error {
	out, err := h.uc.ListServiceSales()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
