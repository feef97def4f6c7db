// Package sync contiene el controlador de sincronización: orquesta una
// operación de red contra la pasarela de persistencia por intención de
// usuario y traduce su resultado en exactamente una transición terminal del
// almacén normalizado. Ningún fallo de pasarela escapa como error sin
// capturar: todos terminan como mensaje en el slice afectado.
package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventario-lugares/internal/application/state"
	"github.com/jhoicas/inventario-lugares/internal/domain"
	"github.com/jhoicas/inventario-lugares/internal/domain/entity"
	"github.com/jhoicas/inventario-lugares/internal/domain/places"
	"github.com/jhoicas/inventario-lugares/internal/domain/repository"
	"github.com/jhoicas/inventario-lugares/pkg/logger"
	"github.com/jhoicas/inventario-lugares/pkg/metrics"
)

// Controller único escritor del almacén normalizado. Actualización
// pesimista: el almacén solo cambia después de que la pasarela confirma;
// ante fallo conserva el último estado bueno más el mensaje de error.
type Controller struct {
	store         *state.Store
	placeRepo     repository.PlaceRepository
	inventoryRepo repository.InventoryRepository
	known         places.Allowlist
	log           *logger.Logger
	metrics       *metrics.GatewayMetrics
}

// NewController construye el controlador de sincronización.
func NewController(
	store *state.Store,
	placeRepo repository.PlaceRepository,
	inventoryRepo repository.InventoryRepository,
	known places.Allowlist,
	log *logger.Logger,
	gm *metrics.GatewayMetrics,
) *Controller {
	return &Controller{
		store:         store,
		placeRepo:     placeRepo,
		inventoryRepo: inventoryRepo,
		known:         known,
		log:           log,
		metrics:       gm,
	}
}

// FetchPlaces carga todos los lugares al almacén. Se invoca al inicio de la
// sesión; sin reintentos: un fallo queda en el slice hasta la próxima
// recarga manual.
func (c *Controller) FetchPlaces(ctx context.Context) error {
	c.store.StartPlacesRequest()

	start := time.Now()
	fetched, err := c.placeRepo.ListAll(ctx)
	c.metrics.ObserveOperation("list_places", start, err)
	if err != nil {
		c.store.PlacesFailed(err.Error())
		c.log.Error().Err(err).Msg("cargar lugares")
		return fmt.Errorf("cargar lugares: %w", err)
	}
	c.store.PlacesSucceeded(fetched)
	c.log.Debug().Int("lugares", len(fetched)).Msg("lugares cargados")
	return nil
}

// FetchInventory carga todo el inventario (ya filtrado por el cortafuegos de
// la pasarela) al almacén.
func (c *Controller) FetchInventory(ctx context.Context) error {
	c.store.StartInventoryRequest()

	start := time.Now()
	fetched, err := c.inventoryRepo.ListAll(ctx)
	c.metrics.ObserveOperation("list_inventory", start, err)
	if err != nil {
		c.store.InventoryFailed(err.Error())
		c.log.Error().Err(err).Msg("cargar inventario")
		return fmt.Errorf("cargar inventario: %w", err)
	}
	c.store.InventoryLoaded(fetched)
	c.log.Debug().Int("items", len(fetched)).Msg("inventario cargado")
	return nil
}

// CreateItem valida el borrador ANTES de tocar la pasarela: nombre no vacío,
// cantidad positiva y lugar destino dentro de la allowlist. Un error de
// validación no dispara ninguna transición Loading ni llamada de red. Con la
// confirmación de la pasarela (que devuelve el ID generado) agrega el item
// completo al almacén.
func (c *Controller) CreateItem(ctx context.Context, draft entity.ItemDraft) (entity.InventoryItem, error) {
	if err := draft.Validate(); err != nil {
		return entity.InventoryItem{}, err
	}
	if !c.known.Contains(draft.PlaceID) {
		return entity.InventoryItem{}, domain.ErrPlaceNotFound
	}

	c.store.StartInventoryRequest()

	start := time.Now()
	id, err := c.inventoryRepo.Create(ctx, draft)
	c.metrics.ObserveOperation("create_inventory", start, err)
	if err != nil {
		c.store.InventoryFailed(err.Error())
		c.log.Error().Err(err).Str("place_id", draft.PlaceID).Msg("crear item")
		return entity.InventoryItem{}, fmt.Errorf("crear item: %w", err)
	}

	item := entity.InventoryItem{
		ID:      id,
		Name:    draft.Name,
		Count:   draft.Count,
		PlaceID: draft.PlaceID,
	}
	c.store.ItemCreated(item)
	return item, nil
}

// UpdateItem reenvía exactamente {name, count} a la pasarela (PlaceID es
// inmutable y nunca viaja en una edición) y parchea el almacén tras la
// confirmación. Dos ediciones concurrentes sobre el mismo item se resuelven
// por orden de llegada de las respuestas: la última aplicada gana.
func (c *Controller) UpdateItem(ctx context.Context, placeID, id string, fields entity.ItemFields) error {
	if err := fields.Validate(); err != nil {
		return err
	}

	c.store.StartInventoryRequest()

	start := time.Now()
	err := c.inventoryRepo.Update(ctx, id, fields)
	c.metrics.ObserveOperation("update_inventory", start, err)
	if err != nil {
		c.store.InventoryFailed(err.Error())
		c.log.Error().Err(err).Str("item_id", id).Msg("editar item")
		return fmt.Errorf("editar item: %w", err)
	}
	c.store.ItemUpdated(placeID, id, fields)
	return nil
}

// DeleteItem reenvía la eliminación y retira el item del almacén tras la
// confirmación.
func (c *Controller) DeleteItem(ctx context.Context, placeID, id string) error {
	c.store.StartInventoryRequest()

	start := time.Now()
	err := c.inventoryRepo.Delete(ctx, id)
	c.metrics.ObserveOperation("delete_inventory", start, err)
	if err != nil {
		c.store.InventoryFailed(err.Error())
		c.log.Error().Err(err).Str("item_id", id).Msg("eliminar item")
		return fmt.Errorf("eliminar item: %w", err)
	}
	c.store.ItemDeleted(placeID, id)
	return nil
}
