package entity

// Place representa un nodo de la jerarquía de lugares (bosque).
// Parts es la lista ordenada de IDs de sub-lugares; nil indica hoja.
// Un Parts definido pero vacío sigue siendo nodo interior: la distinción
// nil/vacío es significativa y debe sobrevivir la persistencia.
type Place struct {
	ID    string
	Name  string
	Parts []string
}

// IsLeaf indica si el lugar no tiene sub-lugares (Parts ausente).
func (p Place) IsLeaf() bool {
	return p.Parts == nil
}

// Clone devuelve una copia profunda (Parts incluido) para snapshots.
func (p Place) Clone() Place {
	c := p
	if p.Parts != nil {
		c.Parts = make([]string, len(p.Parts))
		copy(c.Parts, p.Parts)
	}
	return c
}
