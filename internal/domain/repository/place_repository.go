package repository

import (
	"context"

	"github.com/jhoicas/inventario-lugares/internal/domain/entity"
)

// PlaceRepository define el puerto de lectura de la colección `places` (DIP).
// Los lugares se crean fuera de banda (cmd/seed) y son de solo lectura para
// la aplicación; cada referencia a sub-lugar se mapea a su ID, nunca a un
// objeto anidado.
type PlaceRepository interface {
	ListAll(ctx context.Context) ([]entity.Place, error)
}
