package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/asistec/taller-api/internal/application/usecase"
)

// ServiceHandler expone el catálogo fijo de servicios (protegido, solo lectura).
type ServiceHandler struct {
	uc *usecase.ServiceUseCase
}

// NewServiceHandler construye el handler.
func NewServiceHandler(uc *usecase.ServiceUseCase) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

// List godoc
// @Summary      Listar catálogo de servicios
// @Tags         services
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ServiceListResponse
// @Router       /api/services [get]
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
