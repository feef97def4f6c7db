// Package hierarchy implementa el agregador de la jerarquía de lugares:
// funciones puras sobre un snapshot en memoria (lugares + inventario) que
// calculan el total acumulado por nodo y producen el bosque renderizable.
// Sin I/O; determinista con entradas idénticas.
package hierarchy

import "github.com/jhoicas/inventario-lugares/internal/domain/entity"

// MaxTreeDepth profundidad máxima tolerada en un recorrido. Un bosque bien
// formado nunca se acerca; una entrada cíclica o corrupta corta aquí en vez
// de recorrer sin fin (el comportamiento con ciclos es indefinido, pero
// siempre termina).
const MaxTreeDepth = 64

// PlaceNode nodo renderizable del bosque: nombre, total acumulado y la marca
// de total-cero para que la capa de presentación distinga "Nombre" de
// "Nombre: N" sin recalcular nada.
type PlaceNode struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Total        int         `json:"total"`
	HasInventory bool        `json:"hasInventory"`
	Children     []PlaceNode `json:"children,omitempty"`
}

// SubtreeTotal calcula el total de inventario de un lugar: cantidad de items
// directamente en él más, recursivamente, los de todos sus descendientes.
// Cuenta entradas de inventario, no suma el campo Count. Cada llamada usa su
// propio conjunto de visitados: un lugar alcanzable por dos padres aporta una
// sola vez y un ciclo verdadero no cuelga el recorrido.
func SubtreeTotal(placeID string, placesByID map[string]entity.Place, inventoryByPlaceID map[string][]entity.InventoryItem) int {
	visited := make(map[string]struct{})
	return subtreeTotal(placeID, placesByID, inventoryByPlaceID, visited, 0)
}

// PartsTotal calcula solo la contribución de los descendientes (sin los items
// directos del lugar). Con parts nil (hoja) devuelve 0.
func PartsTotal(parts []string, placesByID map[string]entity.Place, inventoryByPlaceID map[string][]entity.InventoryItem) int {
	if parts == nil {
		return 0
	}
	visited := make(map[string]struct{})
	total := 0
	for _, partID := range parts {
		total += subtreeTotal(partID, placesByID, inventoryByPlaceID, visited, 1)
	}
	return total
}

func subtreeTotal(placeID string, placesByID map[string]entity.Place, inventoryByPlaceID map[string][]entity.InventoryItem, visited map[string]struct{}, depth int) int {
	if depth > MaxTreeDepth {
		return 0
	}
	if _, seen := visited[placeID]; seen {
		return 0
	}
	visited[placeID] = struct{}{}

	place, ok := placesByID[placeID]
	if !ok {
		return 0
	}
	total := len(inventoryByPlaceID[placeID])
	for _, partID := range place.Parts {
		total += subtreeTotal(partID, placesByID, inventoryByPlaceID, visited, depth+1)
	}
	return total
}

// BuildDisplayForest produce los nodos renderizables del bosque. Las raíces
// son exactamente los lugares con Parts definido, enumerados en el orden de
// llegada (order); los hijos siguen el orden listado en Parts. Un conjunto de
// visitados compartido por todo el bosque garantiza que un lugar alcanzable
// desde dos padres se emite solo en su primera posición (regla de
// idempotencia del render original, no un error).
func BuildDisplayForest(order []string, placesByID map[string]entity.Place, inventoryByPlaceID map[string][]entity.InventoryItem) []PlaceNode {
	visited := make(map[string]struct{})
	forest := make([]PlaceNode, 0)
	for _, id := range order {
		place, ok := placesByID[id]
		if !ok || place.Parts == nil {
			continue
		}
		if node, emitted := buildNode(place, placesByID, inventoryByPlaceID, visited, 0); emitted {
			forest = append(forest, node)
		}
	}
	return forest
}

func buildNode(place entity.Place, placesByID map[string]entity.Place, inventoryByPlaceID map[string][]entity.InventoryItem, visited map[string]struct{}, depth int) (PlaceNode, bool) {
	if depth > MaxTreeDepth {
		return PlaceNode{}, false
	}
	if _, seen := visited[place.ID]; seen {
		return PlaceNode{}, false
	}
	visited[place.ID] = struct{}{}

	total := len(inventoryByPlaceID[place.ID]) + PartsTotal(place.Parts, placesByID, inventoryByPlaceID)
	node := PlaceNode{
		ID:           place.ID,
		Name:         place.Name,
		Total:        total,
		HasInventory: total > 0,
	}
	for _, partID := range place.Parts {
		child, ok := placesByID[partID]
		if !ok {
			continue
		}
		if childNode, emitted := buildNode(child, placesByID, inventoryByPlaceID, visited, depth+1); emitted {
			node.Children = append(node.Children, childNode)
		}
	}
	return node, true
}

// CollectInventory devuelve la lista plana editable para un lugar
// seleccionado: sus items directos seguidos, en profundidad y en el orden de
// Parts, por los de cada descendiente. Devuelve copias, nunca referencias al
// snapshot.
func CollectInventory(placeID string, placesByID map[string]entity.Place, inventoryByPlaceID map[string][]entity.InventoryItem) []entity.InventoryItem {
	visited := make(map[string]struct{})
	return collectInventory(placeID, placesByID, inventoryByPlaceID, visited, 0)
}

func collectInventory(placeID string, placesByID map[string]entity.Place, inventoryByPlaceID map[string][]entity.InventoryItem, visited map[string]struct{}, depth int) []entity.InventoryItem {
	if depth > MaxTreeDepth {
		return nil
	}
	if _, seen := visited[placeID]; seen {
		return nil
	}
	visited[placeID] = struct{}{}

	place, ok := placesByID[placeID]
	if !ok {
		return nil
	}
	items := make([]entity.InventoryItem, 0, len(inventoryByPlaceID[placeID]))
	items = append(items, inventoryByPlaceID[placeID]...)
	for _, partID := range place.Parts {
		items = append(items, collectInventory(partID, placesByID, inventoryByPlaceID, visited, depth+1)...)
	}
	return items
}
