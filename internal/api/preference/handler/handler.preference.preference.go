// Package preferencehdl chứa HTTP handler cho domain preference.
package preferencehdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "panier_commerce/internal/api/base/handler"
	preferencedto "panier_commerce/internal/api/preference/dto"
	preferencesvc "panier_commerce/internal/api/preference/service"
	"panier_commerce/internal/global"
)

// PreferenceHandler xử lý các request liên quan đến preference
type PreferenceHandler struct {
	PreferenceService *preferencesvc.PreferenceService
}

// NewPreferenceHandler tạo PreferenceHandler mới
func NewPreferenceHandler() (*PreferenceHandler, error) {
	service, err := preferencesvc.NewPreferenceService()
	if err != nil {
		return nil, fmt.Errorf("failed to create preference service: %v", err)
	}
	return &PreferenceHandler{PreferenceService: service}, nil
}

// HandleGetFilters xử lý GET /preferences/filters
func (h *PreferenceHandler) HandleGetFilters(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		filters, err := h.PreferenceService.GetFilters(c.Context())
		basehdl.HandleResponse(c, filters, err)
		return nil
	})
}

// HandlePutFilters xử lý PUT /preferences/filters
func (h *PreferenceHandler) HandlePutFilters(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input preferencedto.FilterPreferenceInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(global.Validate, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, nil, h.PreferenceService.PutFilters(c.Context(), &input))
		return nil
	})
}

// HandleGetTheme xử lý GET /preferences/theme
func (h *PreferenceHandler) HandleGetTheme(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		theme, err := h.PreferenceService.GetTheme(c.Context())
		basehdl.HandleResponse(c, fiber.Map{"theme": theme}, err)
		return nil
	})
}

// HandlePutTheme xử lý PUT /preferences/theme
func (h *PreferenceHandler) HandlePutTheme(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input preferencedto.ThemePreferenceInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(global.Validate, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, nil, h.PreferenceService.PutTheme(c.Context(), &input))
		return nil
	})
}
