// Package places define la lista estática de lugares conocidos (allowlist).
// La consumen tanto el controlador de sincronización (validación previa al
// POST) como el filtro de ingestión de la pasarela de persistencia: un item
// cuyo place.id no esté aquí se rechaza o se descarta.
package places

import "strings"

// Allowlist conjunto de IDs de lugares válidos.
type Allowlist struct {
	ids map[string]struct{}
}

// DefaultIDs IDs del bosque sembrado por defecto (cmd/seed).
var DefaultIDs = []string{
	"main",
	"main-101",
	"main-102",
	"main-103",
	"main-101-1",
	"main-101-2",
	"annex",
	"annex-201",
}

// NewAllowlist construye la allowlist a partir de una lista de IDs.
func NewAllowlist(ids []string) Allowlist {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		set[id] = struct{}{}
	}
	return Allowlist{ids: set}
}

// ParseAllowlist construye la allowlist desde una cadena separada por comas
// (formato de la variable PLACES_IDS). Una cadena vacía produce la lista por
// defecto.
func ParseAllowlist(csv string) Allowlist {
	if strings.TrimSpace(csv) == "" {
		return NewAllowlist(DefaultIDs)
	}
	parts := strings.Split(csv, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		ids = append(ids, strings.TrimSpace(p))
	}
	return NewAllowlist(ids)
}

// Contains indica si el ID pertenece a los lugares conocidos.
func (a Allowlist) Contains(id string) bool {
	_, ok := a.ids[id]
	return ok
}

// Len cantidad de lugares conocidos.
func (a Allowlist) Len() int {
	return len(a.ids)
}
