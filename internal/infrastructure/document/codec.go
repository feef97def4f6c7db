// Package document codifica y valida los documentos JSON de las colecciones
// `places` e `inventory`. Todo documento de origen externo se trata como
// entrada no confiable: se decodifica a una forma laxa y se valida contra las
// formas estrictas del dominio, con semántica de descarte para los registros
// corruptos. Lo comparten el adaptador PostgreSQL y el adaptador en memoria.
package document

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/inventario-lugares/internal/domain/entity"
	"github.com/jhoicas/inventario-lugares/internal/domain/places"
)

// placeDoc forma laxa del documento de lugar: {"name": ..., "parts": [{"id": ...}, ...]}.
// parts ausente indica hoja; presente (aun vacío) indica nodo interior.
type placeDoc struct {
	Name  string     `json:"name"`
	Parts *[]partRef `json:"parts,omitempty"`
}

type partRef struct {
	ID string `json:"id"`
}

// inventoryDoc forma laxa del documento de inventario:
// {"name": ..., "count": ..., "place": {"id": ...}}. Los campos son any
// porque la colección admite escrituras externas con tipos arbitrarios.
type inventoryDoc struct {
	Name  any `json:"name"`
	Count any `json:"count"`
	Place *struct {
		ID any `json:"id"`
	} `json:"place"`
}

// DecodePlace decodifica un documento de lugar. Cada referencia de sub-lugar
// se mapea a su ID; las referencias sin ID se ignoran. La distinción
// parts-ausente (hoja) / parts-vacío (interior) se conserva.
func DecodePlace(id string, data []byte) (entity.Place, error) {
	var doc placeDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return entity.Place{}, fmt.Errorf("decodificar lugar %s: %w", id, err)
	}
	place := entity.Place{ID: id, Name: doc.Name}
	if doc.Parts != nil {
		ids := make([]string, 0, len(*doc.Parts))
		for _, ref := range *doc.Parts {
			if ref.ID == "" {
				continue
			}
			ids = append(ids, ref.ID)
		}
		place.Parts = ids
	}
	return place, nil
}

// DecodeInventory aplica el cortafuegos de integridad a un documento de
// inventario. Devuelve ok=false (descartar, nunca error de usuario) cuando:
// place.id falta o no está en la allowlist, name falta o no es string no
// vacío, o count falta, no es numérico (un string "5" no lo es), no es
// entero o no es positivo. Función pura del documento: filtrar dos veces la
// misma entrada produce el mismo resultado.
func DecodeInventory(id string, data []byte, known places.Allowlist) (entity.InventoryItem, bool) {
	var doc inventoryDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return entity.InventoryItem{}, false
	}

	if doc.Place == nil {
		return entity.InventoryItem{}, false
	}
	placeID, ok := doc.Place.ID.(string)
	if !ok || placeID == "" || !known.Contains(placeID) {
		return entity.InventoryItem{}, false
	}

	name, ok := doc.Name.(string)
	if !ok || name == "" {
		return entity.InventoryItem{}, false
	}

	count, ok := doc.Count.(float64)
	if !ok || count <= 0 || count != float64(int(count)) {
		return entity.InventoryItem{}, false
	}

	return entity.InventoryItem{
		ID:      id,
		Name:    name,
		Count:   int(count),
		PlaceID: placeID,
	}, true
}

// EncodeInventory produce el documento persistente de un borrador de item.
func EncodeInventory(draft entity.ItemDraft) ([]byte, error) {
	doc := map[string]any{
		"name":  draft.Name,
		"count": draft.Count,
		"place": map[string]any{"id": draft.PlaceID},
	}
	return json.Marshal(doc)
}

// EncodePlace produce el documento persistente de un lugar (cmd/seed).
func EncodePlace(place entity.Place) ([]byte, error) {
	doc := map[string]any{"name": place.Name}
	if place.Parts != nil {
		refs := make([]map[string]string, 0, len(place.Parts))
		for _, id := range place.Parts {
			refs = append(refs, map[string]string{"id": id})
		}
		doc["parts"] = refs
	}
	return json.Marshal(doc)
}
