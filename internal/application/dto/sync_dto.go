package dto

// RefreshResponse resultado de una recarga manual: el error por slice queda
// vacío si la carga correspondiente terminó bien.
type RefreshResponse struct {
	PlacesError    string `json:"placesError,omitempty"`
	InventoryError string `json:"inventoryError,omitempty"`
}
