package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-lugares/internal/application/auth"
	"github.com/jhoicas/inventario-lugares/internal/application/state"
	appsync "github.com/jhoicas/inventario-lugares/internal/application/sync"
	"github.com/jhoicas/inventario-lugares/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store      *state.Store
	Controller *appsync.Controller
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Las lecturas son públicas; toda
// mutación requiere Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Lugares (lectura pública)
	placesHandler := NewPlacesHandler(deps.Store)
	placesGroup := api.Group("/places")
	placesGroup.Get("/", placesHandler.List)
	placesGroup.Get("/tree", placesHandler.Tree)
	placesGroup.Get("/:id/inventory", placesHandler.InventoryTable)

	// Sesión: lectura pública, selección protegida
	sessionHandler := NewSessionHandler(deps.Store)
	api.Get("/session/place", sessionHandler.GetActivePlace)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin, entity.RoleEditor))

	protected.Put("/session/place", sessionHandler.SetActivePlace)

	// Mutaciones de inventario (protegido)
	inventoryHandler := NewInventoryHandler(deps.Controller)
	protected.Post("/inventory", inventoryHandler.Create)
	protected.Put("/places/:placeId/inventory/:id", inventoryHandler.Update)
	protected.Delete("/places/:placeId/inventory/:id", inventoryHandler.Delete)

	// Recarga manual (protegido)
	syncHandler := NewSyncHandler(deps.Controller)
	protected.Post("/sync/refresh", syncHandler.Refresh)
}
