package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ims-api/internal/application/dto"
	"github.com/jhoicas/ims-api/internal/application/usecase"
)

// NotificationHandler maneja las peticiones HTTP para Notification.
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List lista notificaciones del principal (scoping por proveedor).
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetPrincipal(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// MarkRead marca una notificación como leída. Inexistente y ajena responden
// igual (404), a propósito.
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.MarkRead(GetPrincipal(c), id); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
