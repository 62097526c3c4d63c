// Package router đăng ký các route thuộc domain đơn hàng.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	orderhdl "panier_commerce/internal/api/order/handler"
	apirouter "panier_commerce/internal/api/router"
)

// Register đăng ký tất cả route đơn hàng lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	orderHandler, err := orderhdl.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("create order handler: %w", err)
	}

	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/", nil, orderHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "POST", "/", nil, orderHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "PUT", "/:id", nil, orderHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "DELETE", "/:id", nil, orderHandler.HandleDelete)
	return nil
}
