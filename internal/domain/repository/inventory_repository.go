package repository

import (
	"context"

	"github.com/jhoicas/inventario-lugares/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia para la colección
// `inventory` (DIP).
//
// ListAll aplica el cortafuegos de integridad: descarta todo documento cuyo
// place.id falte o no esté en la allowlist, cuyo name falte o no sea string,
// o cuyo count falte, no sea numérico o no sea positivo. Los descartes se
// registran en el log, nunca llegan al usuario.
//
// Create genera el ID y falla con domain.ErrPlaceNotFound si el lugar
// destino no pertenece a la allowlist. Update modifica exactamente name y
// count (PlaceID es inmutable); Delete elimina el documento.
type InventoryRepository interface {
	ListAll(ctx context.Context) ([]entity.InventoryItem, error)
	Create(ctx context.Context, draft entity.ItemDraft) (string, error)
	Update(ctx context.Context, id string, fields entity.ItemFields) error
	Delete(ctx context.Context, id string) error
}
