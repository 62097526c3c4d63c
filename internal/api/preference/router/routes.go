// Package router đăng ký các route thuộc domain preference.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	preferencehdl "panier_commerce/internal/api/preference/handler"
	apirouter "panier_commerce/internal/api/router"
)

// Register đăng ký tất cả route preference lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	preferenceHandler, err := preferencehdl.NewPreferenceHandler()
	if err != nil {
		return fmt.Errorf("create preference handler: %w", err)
	}

	apirouter.RegisterRouteWithMiddleware(v1, "/preferences", "GET", "/filters", nil, preferenceHandler.HandleGetFilters)
	apirouter.RegisterRouteWithMiddleware(v1, "/preferences", "PUT", "/filters", nil, preferenceHandler.HandlePutFilters)
	apirouter.RegisterRouteWithMiddleware(v1, "/preferences", "GET", "/theme", nil, preferenceHandler.HandleGetTheme)
	apirouter.RegisterRouteWithMiddleware(v1, "/preferences", "PUT", "/theme", nil, preferenceHandler.HandlePutTheme)
	return nil
}
