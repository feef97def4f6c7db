package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/inventario-lugares/internal/domain/entity"
	"github.com/jhoicas/inventario-lugares/internal/domain/repository"
	"github.com/jhoicas/inventario-lugares/internal/infrastructure/document"
)

var _ repository.PlaceRepository = (*PlaceRepo)(nil)

// PlaceRepo implementación del puerto PlaceRepository sobre la colección
// JSONB `places`.
type PlaceRepo struct {
	pool *pgxpool.Pool
}

// NewPlaceRepository construye el adaptador de lectura de lugares.
func NewPlaceRepository(pool *pgxpool.Pool) *PlaceRepo {
	return &PlaceRepo{pool: pool}
}

// ListAll lee todos los documentos de lugar en orden de inserción. Cada
// documento externo se decodifica como entrada no confiable; un documento de
// lugar ilegible sí es error (los lugares los siembra cmd/seed, no terceros).
func (r *PlaceRepo) ListAll(ctx context.Context) ([]entity.Place, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, doc FROM places ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}
	defer rows.Close()

	var list []entity.Place
	for rows.Next() {
		var id string
		var doc []byte
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("scan place: %w", err)
		}
		place, err := document.DecodePlace(id, doc)
		if err != nil {
			return nil, err
		}
		list = append(list, place)
	}
	return list, rows.Err()
}
