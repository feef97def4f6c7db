package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/inventario-lugares/internal/domain"
	"github.com/jhoicas/inventario-lugares/internal/domain/entity"
	"github.com/jhoicas/inventario-lugares/internal/domain/places"
	"github.com/jhoicas/inventario-lugares/internal/domain/repository"
	"github.com/jhoicas/inventario-lugares/internal/infrastructure/document"
	"github.com/jhoicas/inventario-lugares/pkg/logger"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre la
// colección JSONB `inventory`.
type InventoryRepo struct {
	pool  *pgxpool.Pool
	known places.Allowlist
	log   *logger.Logger
}

// NewInventoryRepository construye el adaptador de persistencia de inventario.
func NewInventoryRepository(pool *pgxpool.Pool, known places.Allowlist, log *logger.Logger) *InventoryRepo {
	return &InventoryRepo{pool: pool, known: known, log: log}
}

// ListAll lee todos los documentos de inventario aplicando el cortafuegos de
// integridad: los registros malformados o con lugar desconocido se descartan
// y se anotan en el log de depuración, nunca llegan al usuario.
func (r *InventoryRepo) ListAll(ctx context.Context) ([]entity.InventoryItem, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, doc FROM inventory ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	list := make([]entity.InventoryItem, 0)
	for rows.Next() {
		var id string
		var doc []byte
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		item, ok := document.DecodeInventory(id, doc, r.known)
		if !ok {
			r.log.Debug().Str("item_id", id).Msg("documento de inventario descartado por el cortafuegos")
			continue
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// Create rechaza de inmediato un lugar fuera de la allowlist, genera el ID y
// persiste el documento {name, count, place:{id}}.
func (r *InventoryRepo) Create(ctx context.Context, draft entity.ItemDraft) (string, error) {
	if !r.known.Contains(draft.PlaceID) {
		return "", domain.ErrPlaceNotFound
	}
	doc, err := document.EncodeInventory(draft)
	if err != nil {
		return "", fmt.Errorf("codificar item: %w", err)
	}
	id := uuid.New().String()
	_, err = r.pool.Exec(ctx, `INSERT INTO inventory (id, doc) VALUES ($1, $2)`, id, doc)
	if err != nil {
		return "", fmt.Errorf("insert inventory: %w", err)
	}
	return id, nil
}

// Update parchea exactamente las claves name y count dentro del documento;
// place queda intacto (PlaceID es inmutable).
func (r *InventoryRepo) Update(ctx context.Context, id string, fields entity.ItemFields) error {
	cmd, err := r.pool.Exec(ctx, `
		UPDATE inventory
		SET doc = doc || jsonb_build_object('name', $2::text, 'count', $3::int)
		WHERE id = $1`,
		id, fields.Name, fields.Count,
	)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el documento; un ID ausente no es error.
func (r *InventoryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	return nil
}
