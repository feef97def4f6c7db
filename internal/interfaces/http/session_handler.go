package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-lugares/internal/application/dto"
	"github.com/jhoicas/inventario-lugares/internal/application/state"
)

// SessionHandler selección del lugar activo de la sesión.
type SessionHandler struct {
	store *state.Store
}

// NewSessionHandler construye el handler.
func NewSessionHandler(store *state.Store) *SessionHandler {
	return &SessionHandler{store: store}
}

// GetActivePlace godoc
// @Summary      Lugar activo de la sesión
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionPlaceResponse
// @Router       /api/session/place [get]
func (h *SessionHandler) GetActivePlace(c *fiber.Ctx) error {
	return c.JSON(dto.SessionPlaceResponse{PlaceID: h.store.Snapshot().ActivePlaceID})
}

// SetActivePlace godoc
// @Summary      Seleccionar lugar activo
// @Tags         session
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SessionPlaceRequest  true  "Lugar a seleccionar"
// @Success      200   {object}  dto.SessionPlaceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/session/place [put]
func (h *SessionHandler) SetActivePlace(c *fiber.Ctx) error {
	var in dto.SessionPlaceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.PlaceID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "placeId es requerido"})
	}
	// Sobrescritura incondicional, independiente del estado de carga.
	h.store.SetActivePlaceID(in.PlaceID)
	return c.JSON(dto.SessionPlaceResponse{PlaceID: in.PlaceID})
}
