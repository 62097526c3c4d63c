// Package compositionhdl chứa HTTP handler cho domain composition.
package compositionhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "panier_commerce/internal/api/base/handler"
	compositiondto "panier_commerce/internal/api/composition/dto"
	compositionsvc "panier_commerce/internal/api/composition/service"
	"panier_commerce/internal/global"
	"panier_commerce/internal/logger"
)

// CompositionHandler xử lý các request liên quan đến composition
type CompositionHandler struct {
	CompositionService *compositionsvc.CompositionService
}

// NewCompositionHandler tạo CompositionHandler mới
func NewCompositionHandler() (*CompositionHandler, error) {
	service, err := compositionsvc.NewCompositionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create composition service: %v", err)
	}
	return &CompositionHandler{CompositionService: service}, nil
}

// HandleList xử lý GET /compositions
func (h *CompositionHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		views, err := h.CompositionService.List(c.Context())
		basehdl.HandleResponse(c, views, err)
		return nil
	})
}

// HandleCreate xử lý POST /compositions - identifier derive tự động từ nom
func (h *CompositionHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input compositiondto.CompositionCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(global.Validate, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		id, err := h.CompositionService.Create(c.Context(), &input)
		if err == nil {
			logger.LogWrite("create", "composition", id, c, map[string]interface{}{"nom": input.Nom})
			basehdl.HandleResponse(c, fiber.Map{"id_compo": id}, nil)
			return nil
		}
		basehdl.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleUpdate xử lý PUT /compositions/:id
func (h *CompositionHandler) HandleUpdate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id := c.Params("id")

		var input compositiondto.CompositionUpdateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(global.Validate, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		err := h.CompositionService.Update(c.Context(), id, &input)
		if err == nil {
			logger.LogWrite("update", "composition", id, c, nil)
		}
		basehdl.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleDelete xử lý DELETE /compositions/:id - composition đang dùng trả 409
func (h *CompositionHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id := c.Params("id")

		err := h.CompositionService.Delete(c.Context(), id)
		if err == nil {
			logger.LogWrite("delete", "composition", id, c, nil)
		}
		basehdl.HandleResponse(c, nil, err)
		return nil
	})
}
