package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-lugares/internal/application/dto"
	"github.com/jhoicas/inventario-lugares/internal/application/state"
	"github.com/jhoicas/inventario-lugares/internal/domain/hierarchy"
)

// PlacesHandler lecturas sobre la jerarquía de lugares: listado, árbol con
// totales acumulados y tabla plana de inventario por lugar. Solo lee
// snapshots del almacén; el agregador recalcula en cada lectura.
type PlacesHandler struct {
	store *state.Store
}

// NewPlacesHandler construye el handler.
func NewPlacesHandler(store *state.Store) *PlacesHandler {
	return &PlacesHandler{store: store}
}

// List godoc
// @Summary      Listar lugares
// @Tags         places
// @Produce      json
// @Success      200  {object}  dto.PlaceListResponse
// @Router       /api/places [get]
func (h *PlacesHandler) List(c *fiber.Ctx) error {
	snap := h.store.Snapshot()
	items := make([]dto.PlaceResponse, 0, len(snap.PlaceOrder))
	for _, id := range snap.PlaceOrder {
		p := snap.PlacesByID[id]
		items = append(items, dto.PlaceResponse{ID: p.ID, Name: p.Name, Parts: p.Parts})
	}
	return c.JSON(dto.PlaceListResponse{
		Items:     items,
		IsLoading: snap.PlacesLoading,
		Error:     snap.PlacesError,
	})
}

// Tree godoc
// @Summary      Árbol de lugares con totales acumulados
// @Tags         places
// @Produce      json
// @Success      200  {object}  dto.TreeResponse
// @Router       /api/places/tree [get]
func (h *PlacesHandler) Tree(c *fiber.Ctx) error {
	snap := h.store.Snapshot()
	roots := hierarchy.BuildDisplayForest(snap.PlaceOrder, snap.PlacesByID, snap.InventoryByPlaceID)
	return c.JSON(dto.TreeResponse{
		Roots:     roots,
		IsLoading: snap.PlacesLoading || snap.InventoryLoading,
		Error:     firstNonEmpty(snap.PlacesError, snap.InventoryError),
	})
}

// InventoryTable godoc
// @Summary      Tabla plana de inventario de un lugar y sus descendientes
// @Tags         places
// @Produce      json
// @Param        id   path  string  true  "ID del lugar"
// @Success      200  {object}  dto.InventoryTableResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/places/{id}/inventory [get]
func (h *PlacesHandler) InventoryTable(c *fiber.Ctx) error {
	id := c.Params("id")
	snap := h.store.Snapshot()
	place, ok := snap.PlacesByID[id]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el lugar no existe"})
	}
	collected := hierarchy.CollectInventory(id, snap.PlacesByID, snap.InventoryByPlaceID)
	items := make([]dto.ItemResponse, 0, len(collected))
	for _, item := range collected {
		items = append(items, dto.ToItemResponse(item))
	}
	return c.JSON(dto.InventoryTableResponse{
		PlaceID:   id,
		PlaceName: place.Name,
		Items:     items,
		IsLoading: snap.InventoryLoading,
		Error:     snap.InventoryError,
	})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
