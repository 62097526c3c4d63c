package compositiondto

import (
	compositionmodels "panier_commerce/internal/api/composition/models"
)

// CompositionCreateInput là input tạo composition mới.
// Identifier KHÔNG nằm trong input - nó được derive tự động từ nom và
// bất biến sau khi tạo. Range check số lượng (0 < qty ≤ 100) làm ở service
// vì Quantity là union type.
type CompositionCreateInput struct {
	Nom       string                                `json:"nom" validate:"required,min=3,max=50"`
	DateDebut string                                `json:"date_debut" validate:"required,date_fr"`
	DateFin   string                                `json:"date_fin" validate:"required,date_fr"`
	Active    bool                                  `json:"active"`
	Fruits    map[string]compositionmodels.Quantity `json:"fruits" validate:"required,min=1"`
}

// CompositionUpdateInput là input cập nhật composition - cùng rule với create,
// identifier lấy từ path và không đổi được
type CompositionUpdateInput struct {
	Nom       string                                `json:"nom" validate:"required,min=3,max=50"`
	DateDebut string                                `json:"date_debut" validate:"required,date_fr"`
	DateFin   string                                `json:"date_fin" validate:"required,date_fr"`
	Active    bool                                  `json:"active"`
	Fruits    map[string]compositionmodels.Quantity `json:"fruits" validate:"required,min=1"`
}

// CompositionView là một composition trả về cho client, kèm chuỗi hiển thị
// per-fruit đã format sẵn theo luật đơn vị (kg một chữ số thập phân,
// piece làm tròn khi hiển thị)
type CompositionView struct {
	compositionmodels.Composition
	RecipeAffiche map[string]string `json:"recipe_affiche"`
}

// NewCompositionView tạo view từ model, format sẵn chuỗi hiển thị
func NewCompositionView(comp compositionmodels.Composition) CompositionView {
	display := make(map[string]string, len(comp.Recipe))
	for fruit, qty := range comp.Recipe {
		display[fruit] = qty.Display()
	}
	return CompositionView{Composition: comp, RecipeAffiche: display}
}
