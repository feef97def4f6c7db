package places

import "github.com/jhoicas/inventario-lugares/internal/domain/entity"

// DefaultForest bosque de lugares sembrado por defecto. Los IDs coinciden
// con DefaultIDs; un lugar sin Parts es hoja y no puede contener otros.
func DefaultForest() []entity.Place {
	return []entity.Place{
		{ID: "main", Name: "Edificio principal", Parts: []string{"main-101", "main-102", "main-103"}},
		{ID: "main-101", Name: "Sala 101", Parts: []string{"main-101-1", "main-101-2"}},
		{ID: "main-101-1", Name: "Estante A"},
		{ID: "main-101-2", Name: "Estante B"},
		{ID: "main-102", Name: "Sala 102"},
		{ID: "main-103", Name: "Bodega 103", Parts: []string{}},
		{ID: "annex", Name: "Anexo", Parts: []string{"annex-201"}},
		{ID: "annex-201", Name: "Sala 201"},
	}
}
