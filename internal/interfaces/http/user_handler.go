package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/user-directory/internal/application/dto"
	"github.com/jhoicas/user-directory/internal/application/usecase"
)

// UserHandler maneja las peticiones HTTP del directorio de usuarios.
type UserHandler struct {
	uc     *usecase.UserUseCase
	edits  *usecase.EditUseCase
	roster *usecase.RosterUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, edits *usecase.EditUseCase, roster *usecase.RosterUseCase) *UserHandler {
	return &UserHandler{uc: uc, edits: edits, roster: roster}
}

// List godoc
// @Summary      Listar usuarios (vista proyectada)
// @Description  Filtra por nombre/email, ordena los usuarios remotos y pone primero los creados en la sesión.
// @Tags         users
// @Produce      json
// @Param        search  query  string  false  "Texto a buscar en nombre o email"
// @Param        sort    query  string  false  "name-asc | name-desc | email-asc | email-desc | company-asc | company-desc"
// @Success      200     {object}  dto.UserListResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	var q dto.UserListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	return c.JSON(h.uc.List(q))
}

// Create godoc
// @Summary      Crear usuario local
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Reload godoc
// @Summary      Recargar la colección remota
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.StatusResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/users/reload [post]
func (h *UserHandler) Reload(c *fiber.Ctx) error {
	if err := h.uc.Reload(c.Context()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.uc.Status())
}

// ExportPDF godoc
// @Summary      Exportar la vista a PDF
// @Tags         users
// @Produce      application/pdf
// @Param        search  query  string  false  "Texto a buscar"
// @Param        sort    query  string  false  "Orden"
// @Success      200
// @Router       /api/users/export.pdf [get]
func (h *UserHandler) ExportPDF(c *fiber.Ctx) error {
	var q dto.UserListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.roster.ExportPDF(c.Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="usuarios.pdf"`)
	return c.Send(out)
}

// GetByID godoc
// @Summary      Detalle de usuario
// @Description  Busca en el almacén y, si el id es numérico, en el origen remoto (sin guardarlo).
// @Tags         users
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UserDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetDetail(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar usuario (nombre y email)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID del usuario"
// @Param        body  body  dto.EditDraftRequest  true  "Campos editados"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.EditDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.edits.Apply(id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar usuario
// @Description  Requiere confirmación: ?confirm=true o cabecera X-Confirm: yes. Sin ella no se modifica nada.
// @Tags         users
// @Produce      json
// @Param        id       path    string  true   "ID del usuario"
// @Param        confirm  query   bool    false  "Confirmar el borrado"
// @Success      200      {object}  dto.DeleteUserResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Context(), c.Params("id"), GetConfirmer(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
