// Package router đăng ký các route thuộc domain thống kê.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "panier_commerce/internal/api/router"
	statshdl "panier_commerce/internal/api/stats/handler"
)

// Register đăng ký tất cả route thống kê lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	statsHandler, err := statshdl.NewStatsHandler()
	if err != nil {
		return fmt.Errorf("create stats handler: %w", err)
	}

	apirouter.RegisterRouteWithMiddleware(v1, "/stats", "GET", "/", nil, statsHandler.HandleGet)
	apirouter.RegisterRouteWithMiddleware(v1, "/stats", "POST", "/update", nil, statsHandler.HandleUpdate)
	return nil
}
