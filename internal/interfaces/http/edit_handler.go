package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/user-directory/internal/application/dto"
	"github.com/jhoicas/user-directory/internal/application/usecase"
)

// EditHandler expone las sesiones de edición (Idle → Editing → Saved | Cancelled).
type EditHandler struct {
	uc *usecase.EditUseCase
}

// NewEditHandler construye el handler.
func NewEditHandler(uc *usecase.EditUseCase) *EditHandler {
	return &EditHandler{uc: uc}
}

// Begin godoc
// @Summary      Abrir sesión de edición
// @Tags         edits
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      201  {object}  dto.EditSessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/edits [post]
func (h *EditHandler) Begin(c *fiber.Ctx) error {
	out, err := h.uc.Begin(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Draft godoc
// @Summary      Actualizar borrador
// @Tags         edits
// @Accept       json
// @Produce      json
// @Param        session  path  string                true  "ID de la sesión"
// @Param        body     body  dto.EditDraftRequest  true  "Borrador"
// @Success      200      {object}  dto.EditSessionResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /api/edits/{session} [patch]
func (h *EditHandler) Draft(c *fiber.Ctx) error {
	var in dto.EditDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Draft(c.Params("session"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Commit godoc
// @Summary      Guardar borrador
// @Tags         edits
// @Produce      json
// @Param        session  path  string  true  "ID de la sesión"
// @Success      200      {object}  dto.UserResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/edits/{session}/commit [post]
func (h *EditHandler) Commit(c *fiber.Ctx) error {
	out, err := h.uc.Commit(c.Params("session"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar sesión de edición
// @Tags         edits
// @Param        session  path  string  true  "ID de la sesión"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/edits/{session} [delete]
func (h *EditHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(c.Params("session")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
