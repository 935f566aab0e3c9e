package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ims-api/internal/application/auth"
	"github.com/jhoicas/ims-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC      *usecase.ProductUseCase
	SupplierUC     *usecase.SupplierUseCase
	NotificationUC *usecase.NotificationUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra las rutas de la API. Todas pasan por PrincipalMiddleware
// (que tolera peticiones anónimas); RequireAuth solo en las que exigen login.
// La autorización fina por recurso/acción vive en los casos de uso.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", PrincipalMiddleware(deps.JWTSecret))

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Put("/password", RequireAuth(), authHandler.ChangePassword)

	// Products: lectura pública, mutaciones con login
	productHandler := NewProductHandler(deps.ProductUC)
	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", RequireAuth(), productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", RequireAuth(), productHandler.Update)
	products.Delete("/:id", RequireAuth(), productHandler.Delete)

	// Low stock (ruta propia por compatibilidad con el cliente)
	api.Get("/lowstock", productHandler.ListLowStock)

	// Suppliers: lectura pública, mutaciones solo owner (decidido en el usecase)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers := api.Group("/suppliers")
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", RequireAuth(), supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", RequireAuth(), supplierHandler.Update)
	suppliers.Delete("/:id", RequireAuth(), supplierHandler.Delete)

	// Notifications (login requerido)
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications := api.Group("/notifications", RequireAuth())
	notifications.Get("/", notificationHandler.List)
	notifications.Put("/:id/read", notificationHandler.MarkRead)
}
