// Package memory implementa la pasarela de persistencia sobre documentos en
// memoria. Sirve como doble de pruebas del almacén remoto y como backend de
// desarrollo (DB_DRIVER=memory). Conserva la misma semántica que el
// adaptador PostgreSQL: documentos crudos no confiables pasados por el
// cortafuegos de integridad en cada lectura.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-lugares/internal/domain"
	"github.com/jhoicas/inventario-lugares/internal/domain/entity"
	"github.com/jhoicas/inventario-lugares/internal/domain/places"
	"github.com/jhoicas/inventario-lugares/internal/domain/repository"
	"github.com/jhoicas/inventario-lugares/internal/infrastructure/document"
)

// DocStore colecciones de documentos crudos compartidas por los adaptadores.
type DocStore struct {
	mu    sync.Mutex
	known places.Allowlist

	placeDocs     map[string][]byte
	placeOrder    []string
	inventoryDocs map[string][]byte
	itemOrder     []string
}

// NewDocStore construye las colecciones vacías.
func NewDocStore(known places.Allowlist) *DocStore {
	return &DocStore{
		known:         known,
		placeDocs:     make(map[string][]byte),
		inventoryDocs: make(map[string][]byte),
	}
}

// SeedPlaces inserta el bosque de lugares (creación fuera de banda).
func (s *DocStore) SeedPlaces(forest []entity.Place) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, place := range forest {
		data, err := document.EncodePlace(place)
		if err != nil {
			return fmt.Errorf("sembrar lugar %s: %w", place.ID, err)
		}
		if _, known := s.placeDocs[place.ID]; !known {
			s.placeOrder = append(s.placeOrder, place.ID)
		}
		s.placeDocs[place.ID] = data
	}
	return nil
}

// PutRawInventoryDoc inserta un documento crudo sin validar, como haría un
// escritor externo con otro esquema. Los tests lo usan para ejercitar el
// cortafuegos.
func (s *DocStore) PutRawInventoryDoc(id string, doc []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, known := s.inventoryDocs[id]; !known {
		s.itemOrder = append(s.itemOrder, id)
	}
	s.inventoryDocs[id] = append([]byte(nil), doc...)
}

var _ repository.PlaceRepository = (*PlaceRepo)(nil)

// PlaceRepo adaptador del puerto PlaceRepository sobre el DocStore.
type PlaceRepo struct {
	s *DocStore
}

// NewPlaceRepository construye el adaptador de lectura de lugares.
func NewPlaceRepository(s *DocStore) *PlaceRepo {
	return &PlaceRepo{s: s}
}

// ListAll lee todos los documentos de lugar en orden de inserción.
func (r *PlaceRepo) ListAll(ctx context.Context) ([]entity.Place, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]entity.Place, 0, len(r.s.placeOrder))
	for _, id := range r.s.placeOrder {
		place, err := document.DecodePlace(id, r.s.placeDocs[id])
		if err != nil {
			return nil, err
		}
		list = append(list, place)
	}
	return list, nil
}

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo adaptador del puerto InventoryRepository sobre el DocStore.
type InventoryRepo struct {
	s *DocStore
}

// NewInventoryRepository construye el adaptador de persistencia de inventario.
func NewInventoryRepository(s *DocStore) *InventoryRepo {
	return &InventoryRepo{s: s}
}

// ListAll lee todos los documentos de inventario aplicando el cortafuegos:
// los corruptos se descartan en silencio.
func (r *InventoryRepo) ListAll(ctx context.Context) ([]entity.InventoryItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]entity.InventoryItem, 0, len(r.s.itemOrder))
	for _, id := range r.s.itemOrder {
		if item, ok := document.DecodeInventory(id, r.s.inventoryDocs[id], r.s.known); ok {
			list = append(list, item)
		}
	}
	return list, nil
}

// Create valida la allowlist, genera el ID y persiste el documento.
func (r *InventoryRepo) Create(ctx context.Context, draft entity.ItemDraft) (string, error) {
	if !r.s.known.Contains(draft.PlaceID) {
		return "", domain.ErrPlaceNotFound
	}
	data, err := document.EncodeInventory(draft)
	if err != nil {
		return "", fmt.Errorf("codificar item: %w", err)
	}
	id := uuid.New().String()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.itemOrder = append(r.s.itemOrder, id)
	r.s.inventoryDocs[id] = data
	return id, nil
}

// Update parchea exactamente name y count del documento; el resto (place
// incluido) queda intacto.
func (r *InventoryRepo) Update(ctx context.Context, id string, fields entity.ItemFields) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	data, ok := r.s.inventoryDocs[id]
	if !ok {
		return domain.ErrNotFound
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decodificar item %s: %w", id, err)
	}
	doc["name"] = fields.Name
	doc["count"] = fields.Count
	patched, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("codificar item %s: %w", id, err)
	}
	r.s.inventoryDocs[id] = patched
	return nil
}

// Delete elimina el documento; eliminar un ID ausente no es error (la
// operación es idempotente, como en el almacén remoto original).
func (r *InventoryRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.inventoryDocs[id]; !ok {
		return nil
	}
	delete(r.s.inventoryDocs, id)
	for i, oid := range r.s.itemOrder {
		if oid == id {
			r.s.itemOrder = append(r.s.itemOrder[:i], r.s.itemOrder[i+1:]...)
			break
		}
	}
	return nil
}
