package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/erp-api/internal/application/bootstrap"
	"github.com/jhoicas/erp-api/internal/application/dto"
	"github.com/jhoicas/erp-api/internal/domain"
)

// HealthHandler expone liveness y readiness.
type HealthHandler struct {
	service string
	status  *bootstrap.Status
}

// NewHealthHandler construye el handler. status es el resultado de la carga inicial.
func NewHealthHandler(service string, status *bootstrap.Status) *HealthHandler {
	return &HealthHandler{service: service, status: status}
}

// Health responde 200 mientras el proceso esté vivo.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: "ok", Service: h.service})
}

// Ready responde 200 si la base quedó utilizable tras la carga inicial y 503 si no
// (carga fallida o aún no ejecutada).
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	res, ok := h.status.Last()
	out := dto.ReadyResponse{Ready: h.status.Ready()}
	if ok {
		out.Outcome = string(res.Outcome)
		out.Policy = string(res.Policy)
		out.Created = res.Created
		out.Error = res.Error
	}
	if !out.Ready {
		if out.Error == "" {
			out.Error = domain.ErrNotReady.Error()
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(out)
	}
	return c.JSON(out)
}
