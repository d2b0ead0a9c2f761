package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Portal-empleo-api/internal/application/approval"
	"github.com/jhoicas/Portal-empleo-api/internal/application/dto"
	"github.com/jhoicas/Portal-empleo-api/internal/domain/entity"
)

// ApprovalHandler maneja la cola de aprobación (protegido, solo aprobadores).
type ApprovalHandler struct {
	uc *approval.UseCase
}

// NewApprovalHandler construye el handler.
func NewApprovalHandler(uc *approval.UseCase) *ApprovalHandler {
	return &ApprovalHandler{uc: uc}
}

// ListPending godoc
// @Summary      Listar registros pendientes de aprobación
// @Tags         approvals
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite por kind"  default(20)
// @Param        offset  query  int  false  "Offset"           default(0)
// @Success      200     {object}  dto.PendingListResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Router       /api/approvals/pending [get]
func (h *ApprovalHandler) ListPending(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	list, err := h.uc.ListPending(c.UserContext(), GetActor(c), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.PendingRecordResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.PendingRecordResponse{
			Kind:      string(p.Kind),
			ID:        p.ID,
			Name:      p.Name,
			CreatedBy: p.CreatedBy,
			CreatedAt: p.CreatedAt,
		})
	}
	return c.JSON(dto.PendingListResponse{Items: items})
}

// Approve godoc
// @Summary      Aprobar un registro pendiente
// @Tags         approvals
// @Security     Bearer
// @Produce      json
// @Param        kind  path  string  true  "Tipo de registro"  Enums(empresa, agente_territorial, bolsa_empleo, reportero, usuario)
// @Param        id    path  string  true  "ID del registro"
// @Success      200   {object}  dto.ApprovalResultResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/approvals/{kind}/{id}/approve [post]
func (h *ApprovalHandler) Approve(c *fiber.Ctx) error {
	kind := entity.RecordKind(c.Params("kind"))
	if !kind.IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo de registro desconocido: " + c.Params("kind")})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Approve(c.UserContext(), GetActor(c), kind, id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ApprovalResultResponse{Kind: string(kind), ID: id, Status: "aprobado"})
}

// Reject godoc
// @Summary      Rechazar un registro pendiente (lo elimina)
// @Tags         approvals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        kind  path  string  true  "Tipo de registro"  Enums(empresa, agente_territorial, bolsa_empleo, reportero, usuario)
// @Param        id    path  string  true  "ID del registro"
// @Param        body  body  dto.RejectRequest  false  "Motivo opcional"
// @Success      200   {object}  dto.ApprovalResultResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/approvals/{kind}/{id}/reject [post]
func (h *ApprovalHandler) Reject(c *fiber.Ctx) error {
	kind := entity.RecordKind(c.Params("kind"))
	if !kind.IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo de registro desconocido: " + c.Params("kind")})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.RejectRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	if err := h.uc.Reject(c.UserContext(), GetActor(c), kind, id, in.Reason); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ApprovalResultResponse{Kind: string(kind), ID: id, Status: "rechazado"})
}
