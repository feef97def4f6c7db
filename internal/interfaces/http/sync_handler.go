package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-lugares/internal/application/dto"
	appsync "github.com/jhoicas/inventario-lugares/internal/application/sync"
)

// SyncHandler recarga manual de ambos slices contra la pasarela. No hay
// reintentos automáticos: este endpoint es el camino de recuperación tras un
// fallo de carga.
type SyncHandler struct {
	controller *appsync.Controller
}

// NewSyncHandler construye el handler.
func NewSyncHandler(controller *appsync.Controller) *SyncHandler {
	return &SyncHandler{controller: controller}
}

// Refresh godoc
// @Summary      Recargar lugares e inventario desde la pasarela
// @Tags         sync
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RefreshResponse
// @Failure      502  {object}  dto.RefreshResponse
// @Router       /api/sync/refresh [post]
func (h *SyncHandler) Refresh(c *fiber.Ctx) error {
	out := dto.RefreshResponse{}
	if err := h.controller.FetchPlaces(c.Context()); err != nil {
		out.PlacesError = err.Error()
	}
	if err := h.controller.FetchInventory(c.Context()); err != nil {
		out.InventoryError = err.Error()
	}
	status := fiber.StatusOK
	if out.PlacesError != "" || out.InventoryError != "" {
		status = fiber.StatusBadGateway
	}
	return c.Status(status).JSON(out)
}
