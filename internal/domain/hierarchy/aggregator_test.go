package hierarchy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-lugares/internal/domain/entity"
	"github.com/jhoicas/inventario-lugares/internal/domain/hierarchy"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: bosque root -> [A, B], A -> [C]; inventario: 2 items en A, 1 en C,
// 0 en root y en B. Totales esperados: C=1, A=3, root=3, B=0.
// ──────────────────────────────────────────────────────────────────────────────

func buildFixture() (map[string]entity.Place, map[string][]entity.InventoryItem) {
	placesByID := map[string]entity.Place{
		"root": {ID: "root", Name: "Bodega principal", Parts: []string{"A", "B"}},
		"A":    {ID: "A", Name: "Pasillo A", Parts: []string{"C"}},
		"B":    {ID: "B", Name: "Pasillo B", Parts: []string{}},
		"C":    {ID: "C", Name: "Estante C"}, // hoja: Parts nil
	}
	inventoryByPlaceID := map[string][]entity.InventoryItem{
		"A": {
			{ID: "i1", Name: "Taladro", Count: 3, PlaceID: "A"},
			{ID: "i2", Name: "Martillo", Count: 1, PlaceID: "A"},
		},
		"C": {
			{ID: "i3", Name: "Tornillos", Count: 500, PlaceID: "C"},
		},
	}
	return placesByID, inventoryByPlaceID
}

func TestSubtreeTotal_Escenario(t *testing.T) {
	placesByID, inv := buildFixture()

	assert.Equal(t, 1, hierarchy.SubtreeTotal("C", placesByID, inv),
		"la hoja C tiene un item directo: total 1")
	assert.Equal(t, 3, hierarchy.SubtreeTotal("A", placesByID, inv),
		"A: 2 directos + 1 de C")
	assert.Equal(t, 3, hierarchy.SubtreeTotal("root", placesByID, inv),
		"root: 0 directos + 3 de A + 0 de B")
	assert.Equal(t, 0, hierarchy.SubtreeTotal("B", placesByID, inv),
		"B no tiene items ni descendientes con items")
}

func TestSubtreeTotal_CuentaEntradasNoCantidades(t *testing.T) {
	placesByID, inv := buildFixture()

	// C tiene un item con Count=500; el total acumulado cuenta entradas.
	assert.Equal(t, 1, hierarchy.SubtreeTotal("C", placesByID, inv))
}

func TestSubtreeTotal_LugarDesconocido(t *testing.T) {
	placesByID, inv := buildFixture()
	assert.Equal(t, 0, hierarchy.SubtreeTotal("no-existe", placesByID, inv))
}

func TestPartsTotal_HojaSinPartsEsCero(t *testing.T) {
	placesByID, inv := buildFixture()

	// La contribución de descendientes de una hoja (Parts nil) es siempre 0,
	// aunque la hoja tenga items directos.
	assert.Equal(t, 0, hierarchy.PartsTotal(nil, placesByID, inv))
}

func TestSubtreeTotal_Determinista(t *testing.T) {
	placesByID, inv := buildFixture()

	t1 := hierarchy.SubtreeTotal("root", placesByID, inv)
	t2 := hierarchy.SubtreeTotal("root", placesByID, inv)
	assert.Equal(t, t1, t2, "el mismo snapshot siempre produce el mismo total")
}

// TestSubtreeTotal_CicloTermina verifica que una entrada cíclica (violación de
// integridad de datos) no cuelga el recorrido: cada nodo aporta una sola vez.
func TestSubtreeTotal_CicloTermina(t *testing.T) {
	placesByID := map[string]entity.Place{
		"x": {ID: "x", Name: "X", Parts: []string{"y"}},
		"y": {ID: "y", Name: "Y", Parts: []string{"x"}},
	}
	inv := map[string][]entity.InventoryItem{
		"x": {{ID: "i1", Name: "Caja", Count: 1, PlaceID: "x"}},
		"y": {{ID: "i2", Name: "Bolsa", Count: 2, PlaceID: "y"}},
	}

	assert.Equal(t, 2, hierarchy.SubtreeTotal("x", placesByID, inv))
}

// TestSubtreeTotal_CadenaMuyProfunda verifica el corte por profundidad máxima.
func TestSubtreeTotal_CadenaMuyProfunda(t *testing.T) {
	placesByID := make(map[string]entity.Place)
	inv := make(map[string][]entity.InventoryItem)
	// Cadena lineal de 200 nodos, un item en el último.
	for i := 0; i < 200; i++ {
		id := nodeID(i)
		place := entity.Place{ID: id, Name: id}
		if i < 199 {
			place.Parts = []string{nodeID(i + 1)}
		}
		placesByID[id] = place
	}
	inv[nodeID(199)] = []entity.InventoryItem{{ID: "i", Name: "Perdido", Count: 1, PlaceID: nodeID(199)}}

	// El item está más allá del límite de profundidad: no se cuenta, pero el
	// recorrido termina.
	assert.Equal(t, 0, hierarchy.SubtreeTotal(nodeID(0), placesByID, inv))
}

func nodeID(i int) string {
	return "n" + string(rune('a'+i/26)) + string(rune('a'+i%26))
}

// ──────────────────────────────────────────────────────────────────────────────
// BuildDisplayForest
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildDisplayForest_RaicesYTotales(t *testing.T) {
	placesByID, inv := buildFixture()
	order := []string{"root", "A", "B", "C"}

	forest := hierarchy.BuildDisplayForest(order, placesByID, inv)

	// root es la única raíz no emitida como hijo de otra: A y B ya aparecen
	// dentro de root cuando root se enumera primero.
	require.Len(t, forest, 1, "solo root debe quedar como raíz del bosque")
	root := forest[0]
	assert.Equal(t, "root", root.ID)
	assert.Equal(t, 3, root.Total)
	assert.True(t, root.HasInventory)

	require.Len(t, root.Children, 2)
	a, b := root.Children[0], root.Children[1]
	assert.Equal(t, "A", a.ID)
	assert.Equal(t, 3, a.Total)
	assert.True(t, a.HasInventory)
	assert.Equal(t, "B", b.ID)
	assert.Equal(t, 0, b.Total)
	assert.False(t, b.HasInventory, "total cero: la presentación muestra solo el nombre")

	require.Len(t, a.Children, 1)
	assert.Equal(t, "C", a.Children[0].ID)
	assert.Equal(t, 1, a.Children[0].Total)
}

func TestBuildDisplayForest_HojaNoEsRaiz(t *testing.T) {
	placesByID, inv := buildFixture()

	// C (Parts nil) enumerado primero no puede ser raíz.
	forest := hierarchy.BuildDisplayForest([]string{"C", "root"}, placesByID, inv)
	require.Len(t, forest, 1)
	assert.Equal(t, "root", forest[0].ID)
}

// TestBuildDisplayForest_GuardiaDeDuplicados verifica que un lugar alcanzable
// desde dos padres se renderiza solo en su primera posición.
func TestBuildDisplayForest_GuardiaDeDuplicados(t *testing.T) {
	placesByID := map[string]entity.Place{
		"r1":    {ID: "r1", Name: "Raíz 1", Parts: []string{"comun"}},
		"r2":    {ID: "r2", Name: "Raíz 2", Parts: []string{"comun"}},
		"comun": {ID: "comun", Name: "Compartido", Parts: []string{}},
	}
	inv := map[string][]entity.InventoryItem{
		"comun": {{ID: "i1", Name: "Llave", Count: 1, PlaceID: "comun"}},
	}

	forest := hierarchy.BuildDisplayForest([]string{"r1", "r2"}, placesByID, inv)
	require.Len(t, forest, 2)

	var emitted []string
	var walk func(nodes []hierarchy.PlaceNode)
	walk = func(nodes []hierarchy.PlaceNode) {
		for _, n := range nodes {
			emitted = append(emitted, n.ID)
			walk(n.Children)
		}
	}
	walk(forest)

	seen := make(map[string]int)
	for _, id := range emitted {
		seen[id]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "el lugar %s nunca debe emitirse dos veces", id)
	}
	// "comun" cuelga de r1 (primera posición encontrada), no de r2.
	require.Len(t, forest[0].Children, 1)
	assert.Equal(t, "comun", forest[0].Children[0].ID)
	assert.Empty(t, forest[1].Children)
}

func TestBuildDisplayForest_OrdenDeLlegada(t *testing.T) {
	placesByID := map[string]entity.Place{
		"r1": {ID: "r1", Name: "Uno", Parts: []string{}},
		"r2": {ID: "r2", Name: "Dos", Parts: []string{}},
	}
	inv := map[string][]entity.InventoryItem{}

	forest := hierarchy.BuildDisplayForest([]string{"r2", "r1"}, placesByID, inv)
	require.Len(t, forest, 2)
	assert.Equal(t, "r2", forest[0].ID, "las raíces salen en orden de llegada, sin ordenar")
	assert.Equal(t, "r1", forest[1].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// CollectInventory
// ──────────────────────────────────────────────────────────────────────────────

func TestCollectInventory_SubarbolEnProfundidad(t *testing.T) {
	placesByID, inv := buildFixture()

	items := hierarchy.CollectInventory("root", placesByID, inv)
	require.Len(t, items, 3)
	// Primero los directos (root no tiene), luego A en profundidad y su hija C.
	assert.Equal(t, "i1", items[0].ID)
	assert.Equal(t, "i2", items[1].ID)
	assert.Equal(t, "i3", items[2].ID)
}

func TestCollectInventory_DevuelveCopias(t *testing.T) {
	placesByID, inv := buildFixture()

	items := hierarchy.CollectInventory("A", placesByID, inv)
	require.NotEmpty(t, items)
	items[0].Name = "mutado"
	assert.Equal(t, "Taladro", inv["A"][0].Name,
		"mutar el resultado no debe tocar el snapshot")
}

func TestCollectInventory_LugarDesconocido(t *testing.T) {
	placesByID, inv := buildFixture()
	assert.Empty(t, hierarchy.CollectInventory("nope", placesByID, inv))
}
