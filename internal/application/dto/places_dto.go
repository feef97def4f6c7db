package dto

import "github.com/jhoicas/inventario-lugares/internal/domain/hierarchy"

// PlaceResponse lugar en respuestas; parts se omite para hojas.
type PlaceResponse struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Parts []string `json:"parts,omitempty"`
}

// PlaceListResponse listado de lugares con el estado de petición del slice.
type PlaceListResponse struct {
	Items     []PlaceResponse `json:"items"`
	IsLoading bool            `json:"isLoading"`
	Error     string          `json:"error,omitempty"`
}

// TreeResponse bosque renderizable con totales acumulados por nodo.
type TreeResponse struct {
	Roots     []hierarchy.PlaceNode `json:"roots"`
	IsLoading bool                  `json:"isLoading"`
	Error     string                `json:"error,omitempty"`
}

// SessionPlaceRequest selección del lugar activo.
type SessionPlaceRequest struct {
	PlaceID string `json:"placeId"`
}

// SessionPlaceResponse lugar activo de la sesión; vacío si no hay selección.
type SessionPlaceResponse struct {
	PlaceID string `json:"placeId"`
}
