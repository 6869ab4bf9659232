package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/user-directory/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC   *usecase.UserUseCase
	EditUC   *usecase.EditUseCase
	RosterUC *usecase.RosterUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Users: las rutas fijas van antes de /:id
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, deps.EditUC, deps.RosterUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Post("/reload", userHandler.Reload)
	users.Get("/export.pdf", userHandler.ExportPDF)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", RequireConfirmation(), userHandler.Delete)

	// Edit sessions
	editHandler := NewEditHandler(deps.EditUC)
	users.Post("/:id/edits", editHandler.Begin)
	edits := api.Group("/edits")
	edits.Patch("/:session", editHandler.Draft)
	edits.Post("/:session/commit", editHandler.Commit)
	edits.Delete("/:session", editHandler.Cancel)
}
