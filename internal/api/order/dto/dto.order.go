package orderdto

import (
	ordermodels "panier_commerce/internal/api/order/models"
)

// OrderCreateInput là input tạo đơn hàng mới.
// Validation tĩnh qua validator tags; các rule động (ngày lấy hàng ≥ hôm nay,
// trạng thái thuộc tập chuẩn) kiểm tra ở service.
type OrderCreateInput struct {
	Prenom           string  `json:"prenom" validate:"required,min=2,max=50,nom_fr"`
	Nom              string  `json:"nom" validate:"required,min=2,max=50,nom_fr"`
	Email            string  `json:"email" validate:"required,email"`
	Telephone        string  `json:"telephone" validate:"required,telephone_fr"`
	DateRecuperation string  `json:"date_recuperation" validate:"required,date_fr"`
	NombrePaniers    int64   `json:"nombre_paniers" validate:"required,min=1,max=50"`
	CompositionID    *string `json:"composition_id" validate:"omitempty,comp_slug"`
}

// OrderUpdateInput là input cập nhật đơn hàng.
// Webhook không hỗ trợ partial patch nên input phải mang ĐẦY ĐỦ field -
// field thiếu sẽ bị phía backend âm thầm xóa.
type OrderUpdateInput struct {
	Prenom           string  `json:"prenom" validate:"required,min=2,max=50,nom_fr"`
	Nom              string  `json:"nom" validate:"required,min=2,max=50,nom_fr"`
	Email            string  `json:"email" validate:"required,email"`
	Telephone        string  `json:"telephone" validate:"required,telephone_fr"`
	DateRecuperation string  `json:"date_recuperation" validate:"required,date_fr"`
	NombrePaniers    int64   `json:"nombre_paniers" validate:"required,min=1,max=50"`
	Etat             string  `json:"etat" validate:"required"`
	CompositionID    *string `json:"composition_id" validate:"omitempty,comp_slug"`
}

// OrderListQuery là query params của GET /orders
type OrderListQuery struct {
	Status string `query:"status"`
	Search string `query:"search"`
	Sort   string `query:"sort"`
}

// OrderListResult là data trả về của GET /orders, kèm nguồn dữ liệu (live/cache)
type OrderListResult struct {
	Orders []ordermodels.Order `json:"orders"`
	Source string              `json:"source"`
	Total  int                 `json:"total"`
}
