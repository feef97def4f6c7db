package dto

import "github.com/jhoicas/inventario-lugares/internal/domain/entity"

// CreateItemRequest borrador de item para crear.
type CreateItemRequest struct {
	Name    string `json:"name"`
	Count   int    `json:"count"`
	PlaceID string `json:"placeId"`
}

// UpdateItemRequest campos editables de un item (placeId nunca viaja en una edición).
type UpdateItemRequest struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ItemResponse item de inventario en respuestas.
type ItemResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Count   int    `json:"count"`
	PlaceID string `json:"placeId"`
}

// InventoryTableResponse tabla plana editable de un lugar: sus items y los de
// todos sus descendientes, más el estado de petición del slice.
type InventoryTableResponse struct {
	PlaceID   string         `json:"placeId"`
	PlaceName string         `json:"placeName"`
	Items     []ItemResponse `json:"items"`
	IsLoading bool           `json:"isLoading"`
	Error     string         `json:"error,omitempty"`
}

// ToItemResponse convierte la entidad en su representación HTTP.
func ToItemResponse(item entity.InventoryItem) ItemResponse {
	return ItemResponse{
		ID:      item.ID,
		Name:    item.Name,
		Count:   item.Count,
		PlaceID: item.PlaceID,
	}
}
