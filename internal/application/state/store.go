// Package state contiene el almacén normalizado: el snapshot canónico en
// memoria de lugares e inventario, mutado únicamente a través de un conjunto
// fijo de transiciones con nombre. El controlador de sincronización es el
// único escritor; el agregador y la capa HTTP solo leen snapshots.
package state

import (
	"sync"

	"github.com/jhoicas/inventario-lugares/internal/domain/entity"
)

// Snapshot copia profunda del estado normalizado para lectores.
type Snapshot struct {
	PlacesByID         map[string]entity.Place
	PlaceOrder         []string
	InventoryByPlaceID map[string][]entity.InventoryItem
	ActivePlaceID      string
	PlacesLoading      bool
	PlacesError        string
	InventoryLoading   bool
	InventoryError     string
}

// Store almacén normalizado con dos slices independientes (places e
// inventory), cada uno con su ciclo de petición Idle → Loading →
// (Succeeded | Failed). Cada transición se aplica atómicamente bajo el mutex:
// ningún lector observa actualizaciones parciales.
type Store struct {
	mu sync.RWMutex

	placesByID map[string]entity.Place
	placeOrder []string

	inventoryByID      map[string]entity.InventoryItem
	itemOrder          []string
	inventoryByPlaceID map[string][]entity.InventoryItem

	activePlaceID string

	placesLoading bool
	placesError   string

	inventoryLoading bool
	inventoryError   string
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		placesByID:         make(map[string]entity.Place),
		inventoryByID:      make(map[string]entity.InventoryItem),
		inventoryByPlaceID: make(map[string][]entity.InventoryItem),
	}
}

// ── Slice places ──────────────────────────────────────────────────────────────

// StartPlacesRequest marca el slice de lugares como cargando.
func (s *Store) StartPlacesRequest() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.placesLoading = true
}

// PlacesSucceeded fusiona los lugares recibidos por ID y registra el orden de
// llegada de los nuevos; limpia loading y error. Recibir dos veces el mismo
// lugar no duplica su entrada en el orden.
func (s *Store) PlacesSucceeded(places []entity.Place) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.placesLoading = false
	s.placesError = ""
	for _, p := range places {
		if _, known := s.placesByID[p.ID]; !known {
			s.placeOrder = append(s.placeOrder, p.ID)
		}
		s.placesByID[p.ID] = p.Clone()
	}
}

// PlacesFailed registra el mensaje de fallo y limpia loading.
func (s *Store) PlacesFailed(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.placesLoading = false
	s.placesError = msg
}

// SetActivePlaceID sobrescribe el lugar seleccionado, sin condiciones e
// independiente del estado de carga.
func (s *Store) SetActivePlaceID(placeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activePlaceID = placeID
}

// ── Slice inventory ───────────────────────────────────────────────────────────

// StartInventoryRequest marca el slice de inventario como cargando.
func (s *Store) StartInventoryRequest() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventoryLoading = true
}

// InventoryLoaded fusiona los items recibidos por ID y reconstruye los buckets
// por lugar en orden de primera llegada; limpia loading y error. Recargar el
// mismo inventario es idempotente: la política de fusión es por ID, no un
// append ciego.
func (s *Store) InventoryLoaded(items []entity.InventoryItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventoryLoading = false
	s.inventoryError = ""
	for _, item := range items {
		if _, known := s.inventoryByID[item.ID]; !known {
			s.itemOrder = append(s.itemOrder, item.ID)
		}
		s.inventoryByID[item.ID] = item
	}
	s.rebuildBuckets()
}

// ItemCreated agrega el item recién confirmado por la pasarela al final de su
// bucket; limpia loading y error.
func (s *Store) ItemCreated(item entity.InventoryItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventoryLoading = false
	s.inventoryError = ""
	if _, known := s.inventoryByID[item.ID]; !known {
		s.itemOrder = append(s.itemOrder, item.ID)
	}
	s.inventoryByID[item.ID] = item
	s.rebuildBuckets()
}

// ItemUpdated sobrescribe name y count del item dentro del bucket del lugar;
// no-op silencioso si el item no está. Limpia loading y error.
func (s *Store) ItemUpdated(placeID, id string, fields entity.ItemFields) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventoryLoading = false
	s.inventoryError = ""
	item, ok := s.inventoryByID[id]
	if !ok || item.PlaceID != placeID {
		return
	}
	item.Name = fields.Name
	item.Count = fields.Count
	s.inventoryByID[id] = item
	bucket := s.inventoryByPlaceID[placeID]
	for i := range bucket {
		if bucket[i].ID == id {
			bucket[i] = item
			break
		}
	}
}

// ItemDeleted elimina el item del bucket del lugar; no-op si no está. Limpia
// loading y error.
func (s *Store) ItemDeleted(placeID, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventoryLoading = false
	s.inventoryError = ""
	item, ok := s.inventoryByID[id]
	if !ok || item.PlaceID != placeID {
		return
	}
	delete(s.inventoryByID, id)
	for i, oid := range s.itemOrder {
		if oid == id {
			s.itemOrder = append(s.itemOrder[:i], s.itemOrder[i+1:]...)
			break
		}
	}
	s.rebuildBuckets()
}

// InventoryFailed registra el mensaje de fallo y limpia loading.
func (s *Store) InventoryFailed(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventoryLoading = false
	s.inventoryError = msg
}

// rebuildBuckets reconstruye inventoryByPlaceID desde la tabla por ID en el
// orden de llegada registrado. Se llama con el mutex tomado.
func (s *Store) rebuildBuckets() {
	buckets := make(map[string][]entity.InventoryItem, len(s.inventoryByPlaceID))
	for _, id := range s.itemOrder {
		item, ok := s.inventoryByID[id]
		if !ok {
			continue
		}
		buckets[item.PlaceID] = append(buckets[item.PlaceID], item)
	}
	s.inventoryByPlaceID = buckets
}

// ── Lectura ───────────────────────────────────────────────────────────────────

// Snapshot devuelve una copia profunda del estado para el agregador y la capa
// de presentación. Mutar el resultado nunca toca el almacén.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	placesByID := make(map[string]entity.Place, len(s.placesByID))
	for id, p := range s.placesByID {
		placesByID[id] = p.Clone()
	}
	placeOrder := make([]string, len(s.placeOrder))
	copy(placeOrder, s.placeOrder)

	inventoryByPlaceID := make(map[string][]entity.InventoryItem, len(s.inventoryByPlaceID))
	for placeID, bucket := range s.inventoryByPlaceID {
		items := make([]entity.InventoryItem, len(bucket))
		copy(items, bucket)
		inventoryByPlaceID[placeID] = items
	}

	return Snapshot{
		PlacesByID:         placesByID,
		PlaceOrder:         placeOrder,
		InventoryByPlaceID: inventoryByPlaceID,
		ActivePlaceID:      s.activePlaceID,
		PlacesLoading:      s.placesLoading,
		PlacesError:        s.placesError,
		InventoryLoading:   s.inventoryLoading,
		InventoryError:     s.inventoryError,
	}
}

// KnowsPlace indica si el lugar ya está en la tabla normalizada.
func (s *Store) KnowsPlace(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.placesByID[id]
	return ok
}
