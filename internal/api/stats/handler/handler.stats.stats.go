// Package statshdl chứa HTTP handler cho domain thống kê.
package statshdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "panier_commerce/internal/api/base/handler"
	statssvc "panier_commerce/internal/api/stats/service"
)

// StatsHandler xử lý các request liên quan đến thống kê
type StatsHandler struct {
	StatsService *statssvc.StatsService
}

// NewStatsHandler tạo StatsHandler mới
func NewStatsHandler() (*StatsHandler, error) {
	service, err := statssvc.NewStatsService()
	if err != nil {
		return nil, fmt.Errorf("failed to create stats service: %v", err)
	}
	return &StatsHandler{StatsService: service}, nil
}

// HandleGet xử lý GET /stats?annee=YYYY[&mois=YYYY-MM] - rebuild wholesale từ dữ liệu live
func (h *StatsHandler) HandleGet(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		result, err := h.StatsService.Compute(c.Context(), c.Query("annee"), c.Query("mois"))
		basehdl.HandleResponse(c, result, err)
		return nil
	})
}

// HandleUpdate xử lý POST /stats/update - kích hoạt recompute phía backend
func (h *StatsHandler) HandleUpdate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		result, err := h.StatsService.TriggerUpdate(c.Context(), c.Query("annee"), c.Query("mois"))
		basehdl.HandleResponse(c, result, err)
		return nil
	})
}
