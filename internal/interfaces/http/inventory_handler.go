package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-lugares/internal/application/dto"
	appsync "github.com/jhoicas/inventario-lugares/internal/application/sync"
	"github.com/jhoicas/inventario-lugares/internal/domain"
	"github.com/jhoicas/inventario-lugares/internal/domain/entity"
)

// InventoryHandler mutaciones de inventario (crear, editar, eliminar),
// siempre a través del controlador de sincronización.
type InventoryHandler struct {
	controller *appsync.Controller
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(controller *appsync.Controller) *InventoryHandler {
	return &InventoryHandler{controller: controller}
}

// Create godoc
// @Summary      Crear item de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Borrador del item"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.controller.CreateItem(c.Context(), entity.ItemDraft{
		Name:    in.Name,
		Count:   in.Count,
		PlaceID: in.PlaceID,
	})
	if err != nil {
		return mapMutationError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToItemResponse(item))
}

// Update godoc
// @Summary      Editar item de inventario (name y count; placeId es inmutable)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        placeId  path  string  true  "ID del lugar del item"
// @Param        id       path  string  true  "ID del item"
// @Param        body     body  dto.UpdateItemRequest  true  "Campos editables"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/places/{placeId}/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	placeID := c.Params("placeId")
	id := c.Params("id")
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.controller.UpdateItem(c.Context(), placeID, id, entity.ItemFields{
		Name:  in.Name,
		Count: in.Count,
	})
	if err != nil {
		return mapMutationError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar item de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        placeId  path  string  true  "ID del lugar del item"
// @Param        id       path  string  true  "ID del item"
// @Success      204
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/places/{placeId}/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	placeID := c.Params("placeId")
	id := c.Params("id")
	if err := h.controller.DeleteItem(c.Context(), placeID, id); err != nil {
		return mapMutationError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// mapMutationError traduce la taxonomía de errores a HTTP: validación y lugar
// desconocido son 400 (nunca tocaron la pasarela); el resto son fallos de
// pasarela ya registrados en el slice.
func mapMutationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name no vacío y count positivo son requeridos"})
	case errors.Is(err, domain.ErrPlaceNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PLACE_NOT_FOUND", Message: domain.ErrPlaceNotFound.Error()})
	default:
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "GATEWAY", Message: err.Error()})
	}
}
