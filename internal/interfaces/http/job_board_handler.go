package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Portal-empleo-api/internal/application/dto"
	"github.com/jhoicas/Portal-empleo-api/internal/application/usecase"
)

// JobBoardHandler maneja las peticiones HTTP para bolsas de empleo (protegido).
type JobBoardHandler struct {
	uc *usecase.JobBoardUseCase
}

// NewJobBoardHandler construye el handler.
func NewJobBoardHandler(uc *usecase.JobBoardUseCase) *JobBoardHandler {
	return &JobBoardHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar bolsa de empleo
// @Tags         job-boards
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateJobBoardRequest  true  "Datos de la bolsa"
// @Success      201   {object}  dto.JobBoardResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/job-boards [post]
func (h *JobBoardHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateJobBoardRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener bolsa por ID
// @Tags         job-boards
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la bolsa"
// @Success      200  {object}  dto.JobBoardResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/job-boards/{id} [get]
func (h *JobBoardHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(c.UserContext(), GetActor(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar bolsas visibles
// @Tags         job-boards
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.JobBoardListResponse
// @Router       /api/job-boards [get]
func (h *JobBoardHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(c.UserContext(), GetActor(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar bolsa de empleo
// @Tags         job-boards
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la bolsa"
// @Param        body  body  dto.UpdateJobBoardRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.JobBoardResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/job-boards/{id} [put]
func (h *JobBoardHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateJobBoardRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), GetActor(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
