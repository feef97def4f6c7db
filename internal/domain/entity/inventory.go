package entity

import "github.com/jhoicas/inventario-lugares/internal/domain"

// InventoryItem representa un objeto de inventario asignado a exactamente un lugar.
// PlaceID es inmutable después de la creación.
type InventoryItem struct {
	ID      string
	Name    string
	Count   int
	PlaceID string
}

// ItemDraft datos para crear un item de inventario (el ID lo genera la pasarela).
type ItemDraft struct {
	Name    string
	Count   int
	PlaceID string
}

// ItemFields campos editables de un item (PlaceID nunca se actualiza).
type ItemFields struct {
	Name  string
	Count int
}

// Validate verifica las reglas del borrador antes de tocar la pasarela:
// nombre no vacío y cantidad estrictamente positiva.
func (d ItemDraft) Validate() error {
	if d.Name == "" {
		return domain.ErrValidation
	}
	if d.Count <= 0 {
		return domain.ErrValidation
	}
	return nil
}

// Validate verifica las mismas reglas para una edición.
func (f ItemFields) Validate() error {
	if f.Name == "" {
		return domain.ErrValidation
	}
	if f.Count <= 0 {
		return domain.ErrValidation
	}
	return nil
}
