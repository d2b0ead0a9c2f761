package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Portal-empleo-api/internal/application/dto"
	"github.com/jhoicas/Portal-empleo-api/internal/application/notification"
	"github.com/jhoicas/Portal-empleo-api/internal/domain/authz"
	"github.com/jhoicas/Portal-empleo-api/internal/domain/entity"
)

// NotificationHandler maneja las peticiones HTTP de notificaciones (protegido).
type NotificationHandler struct {
	uc *notification.UseCase
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *notification.UseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// ListUnread godoc
// @Summary      Listar notificaciones no leídas del usuario autenticado
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.NotificationListResponse
// @Router       /api/notifications/unread [get]
func (h *NotificationHandler) ListUnread(c *fiber.Ctx) error {
	list, err := h.uc.ListUnread(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, dto.NotificationResponse{
			ID:            n.ID,
			Type:          string(n.Type),
			Title:         n.Title,
			Message:       n.Message,
			EntityID:      n.EntityID,
			EntityName:    n.EntityName,
			CreatedBy:     n.CreatedBy,
			CreatedByName: n.CreatedByName,
			CreatedAt:     n.CreatedAt,
		})
	}
	return c.JSON(dto.NotificationListResponse{Items: items})
}

// MarkRead godoc
// @Summary      Marcar una notificación como leída
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la notificación"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.MarkRead(c.UserContext(), id, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MarkAllRead godoc
// @Summary      Marcar todas las notificaciones como leídas
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MarkAllReadResponse
// @Router       /api/notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	marked, err := h.uc.MarkAllRead(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MarkAllReadResponse{Marked: marked})
}

// Stats godoc
// @Summary      Estadísticas de notificaciones (solo aprobadores)
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.NotificationStatsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/notifications/stats [get]
func (h *NotificationHandler) Stats(c *fiber.Ctx) error {
	if d := authz.CanApproveOrReject(GetActor(c)); !d.Allowed {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: d.Reason})
	}
	res, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	byType := make([]dto.NotificationTypeStatResponse, 0, len(res.ByType))
	for _, s := range res.ByType {
		byType = append(byType, dto.NotificationTypeStatResponse{
			Type:     string(s.Type),
			Count:    s.Count,
			LatestAt: s.LatestAt,
		})
	}
	return c.JSON(dto.NotificationStatsResponse{Total: res.Total, ByType: byType})
}

// Purge godoc
// @Summary      Purgar notificaciones antiguas (solo super_admin)
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "Días de retención"  default(30)
// @Success      200   {object}  dto.PurgeResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/notifications/purge [delete]
func (h *NotificationHandler) Purge(c *fiber.Ctx) error {
	if actor := GetActor(c); actor == nil || actor.Role != entity.RoleSuperAdmin {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la purga de notificaciones es exclusiva del super administrador"})
	}
	days := c.QueryInt("days", 0)
	deleted, err := h.uc.PurgeOlderThan(c.UserContext(), days)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.PurgeResponse{Deleted: deleted})
}
