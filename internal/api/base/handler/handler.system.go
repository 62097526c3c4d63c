package basehdl

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"panier_commerce/internal/global"
)

// SystemHandler xử lý các endpoint hệ thống (health check)
type SystemHandler struct {
	startTime time.Time
}

// NewSystemHandler tạo instance mới của SystemHandler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{startTime: time.Now()}
}

// HandleHealth kiểm tra tình trạng service và kết nối MongoDB.
// Trả về 200 khi mọi thứ ổn, 503 khi database không phản hồi.
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		dbStatus := "ok"
		statusCode := fiber.StatusOK
		if global.MongoDB_Session != nil {
			if err := global.MongoDB_Session.Ping(ctx, nil); err != nil {
				dbStatus = "unavailable"
				statusCode = fiber.StatusServiceUnavailable
			}
		} else {
			dbStatus = "not_initialized"
			statusCode = fiber.StatusServiceUnavailable
		}

		return JSONResponse(c, statusCode, fiber.Map{
			"status":   "ok",
			"database": dbStatus,
			"uptime":   time.Since(h.startTime).String(),
			"time":     time.Now().UTC().Format(time.RFC3339),
		})
	})
}
