// Package orderhdl chứa HTTP handler cho domain đơn hàng.
package orderhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "panier_commerce/internal/api/base/handler"
	orderdto "panier_commerce/internal/api/order/dto"
	ordersvc "panier_commerce/internal/api/order/service"
	"panier_commerce/internal/global"
	"panier_commerce/internal/logger"
)

// OrderHandler xử lý các request liên quan đến đơn hàng
type OrderHandler struct {
	OrderService *ordersvc.OrderService
}

// NewOrderHandler tạo OrderHandler mới
func NewOrderHandler() (*OrderHandler, error) {
	service, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}
	return &OrderHandler{OrderService: service}, nil
}

// HandleList xử lý GET /orders - danh sách đơn hàng đã filter/sort
func (h *OrderHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		query := orderdto.OrderListQuery{
			Status: c.Query("status"),
			Search: c.Query("search"),
			Sort:   c.Query("sort"),
		}

		result, err := h.OrderService.List(c.Context(), query)
		basehdl.HandleResponse(c, result, err)
		return nil
	})
}

// HandleCreate xử lý POST /orders - tạo đơn hàng mới
func (h *OrderHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input orderdto.OrderCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(global.Validate, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		err := h.OrderService.Create(c.Context(), &input)
		if err == nil {
			logger.LogWrite("create", "order", input.Nom, c, map[string]interface{}{
				"nombre_paniers": input.NombrePaniers,
			})
		}
		basehdl.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleUpdate xử lý PUT /orders/:id - cập nhật đơn hàng (full-field resend)
func (h *OrderHandler) HandleUpdate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id := c.Params("id")

		var input orderdto.OrderUpdateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(global.Validate, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		err := h.OrderService.Update(c.Context(), id, &input)
		if err == nil {
			logger.LogWrite("update", "order", id, c, nil)
		}
		basehdl.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleDelete xử lý DELETE /orders/:id - xóa đơn hàng
func (h *OrderHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id := c.Params("id")

		err := h.OrderService.Delete(c.Context(), id)
		if err == nil {
			logger.LogWrite("delete", "order", id, c, nil)
		}
		basehdl.HandleResponse(c, nil, err)
		return nil
	})
}
