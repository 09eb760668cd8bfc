package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dashboard-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	UserUC      *usecase.UserUseCase
	SettingsUC  *usecase.SettingsUseCase
	CampaignUC  *usecase.CampaignUseCase
	DashboardUC *usecase.DashboardUseCase
}

// Router registra las rutas de la API. Los métodos no registrados sobre
// una ruta existente responden 405 con la cabecera Allow.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)

	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)

	settings := api.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Save)

	campaigns := api.Group("/campaigns")
	campaignHandler := NewCampaignHandler(deps.CampaignUC)
	campaigns.Get("/", campaignHandler.List)

	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/", dashboardHandler.Summary)
}
