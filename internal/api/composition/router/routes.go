// Package router đăng ký các route thuộc domain composition.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	compositionhdl "panier_commerce/internal/api/composition/handler"
	apirouter "panier_commerce/internal/api/router"
)

// Register đăng ký tất cả route composition lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	compositionHandler, err := compositionhdl.NewCompositionHandler()
	if err != nil {
		return fmt.Errorf("create composition handler: %w", err)
	}

	apirouter.RegisterRouteWithMiddleware(v1, "/compositions", "GET", "/", nil, compositionHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, "/compositions", "POST", "/", nil, compositionHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/compositions", "PUT", "/:id", nil, compositionHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/compositions", "DELETE", "/:id", nil, compositionHandler.HandleDelete)
	return nil
}
