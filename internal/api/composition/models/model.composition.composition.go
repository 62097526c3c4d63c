package compositionmodels

import (
	"encoding/json"
	"strings"
	"time"

	"panier_commerce/internal/logger"
	"panier_commerce/internal/utility"
)

// StatsRowPrefix đánh dấu các row thống kê được backend lưu chung bảng với
// composition (id dạng "stats-YYYY-MM") - phải lọc khỏi danh sách composition.
const StatsRowPrefix = "stats-"

// Composition là một recipe panier trái cây có hiệu lực trong một khoảng ngày.
// Identifier là slug do người vận hành đặt (comp-...), bất biến sau khi tạo,
// khác với row id nội bộ mà storage có thể tự gán.
type Composition struct {
	IDCompo   string              `json:"id_compo" bson:"id_compo"`
	Nom       string              `json:"nom" bson:"nom"`
	DateDebut string              `json:"date_debut" bson:"date_debut"`
	DateFin   string              `json:"date_fin" bson:"date_fin"`
	Active    bool                `json:"active" bson:"active"`
	Recipe    map[string]Quantity `json:"recipe" bson:"recipe"`
	CreatedAt string              `json:"created_at" bson:"created_at"`
	UpdatedAt string              `json:"updated_at" bson:"updated_at"`
}

var (
	aliasIDCompo   = []string{"id_compo", "idCompo", "id"}
	aliasNom       = []string{"nom", "Nom", "name"}
	aliasDateDebut = []string{"date_debut", "dateDebut", "Date_Debut"}
	aliasDateFin   = []string{"date_fin", "dateFin", "Date_Fin"}
	aliasActive    = []string{"active", "actif", "Active"}
	aliasRecipe    = []string{"composition_json", "compositionJson", "composition"}
	aliasCreatedAt = []string{"createdAt", "created_at"}
	aliasUpdatedAt = []string{"updatedAt", "updated_at"}
)

// BuildComposition chuyển một record thô từ normalizer thành Composition.
// Record không có identifier nào trả về ok=false.
func BuildComposition(record map[string]interface{}) (Composition, bool) {
	id := strings.TrimSpace(utility.ResolveString(record, aliasIDCompo...))
	if id == "" {
		return Composition{}, false
	}

	comp := Composition{
		IDCompo:   id,
		Nom:       strings.TrimSpace(utility.ResolveString(record, aliasNom...)),
		DateDebut: strings.TrimSpace(utility.ResolveString(record, aliasDateDebut...)),
		DateFin:   strings.TrimSpace(utility.ResolveString(record, aliasDateFin...)),
		CreatedAt: strings.TrimSpace(utility.ResolveString(record, aliasCreatedAt...)),
		UpdatedAt: strings.TrimSpace(utility.ResolveString(record, aliasUpdatedAt...)),
	}

	if value, ok := utility.ResolveValue(record, aliasActive...); ok {
		comp.Active = isActiveValue(value)
	}

	recipeValue, _ := utility.ResolveValue(record, aliasRecipe...)
	comp.Recipe = ParseRecipe(id, recipeValue)

	return comp, true
}

// IsStatsRow kiểm tra record có phải row thống kê lưu chung bảng hay không
func (c *Composition) IsStatsRow() bool {
	return strings.HasPrefix(c.IDCompo, StatsRowPrefix)
}

// ModTime trả về timestamp sửa đổi để so recency khi trùng id_compo:
// updatedAt, fallback createdAt, fallback zero time (luôn thua).
// Parse phải giữ giờ-phút-giây: hai bản sửa cùng ngày vẫn phân biệt được.
func (c *Composition) ModTime() time.Time {
	if parsed, ok := utility.ParseTimestamp(c.UpdatedAt); ok {
		return parsed
	}
	if parsed, ok := utility.ParseTimestamp(c.CreatedAt); ok {
		return parsed
	}
	return time.Time{}
}

// ParseRecipe parse composition_json về recipe chuẩn.
//
// Giá trị có thể là chuỗi JSON-encoded hoặc object đã parse sẵn.
// Parse thất bại fallback về recipe RỖNG (composition không có trái cây)
// kèm warn log - KHÔNG propagate lỗi.
func ParseRecipe(id string, value interface{}) map[string]Quantity {
	empty := map[string]Quantity{}
	if value == nil {
		return empty
	}

	var raw []byte
	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return empty
		}
		raw = []byte(v)
	case map[string]interface{}:
		encoded, err := json.Marshal(v)
		if err != nil {
			logger.GetAppLogger().WithField("id_compo", id).WithError(err).
				Warn("🧺 [COMPOSITION] composition_json không encode lại được, dùng recipe rỗng")
			return empty
		}
		raw = encoded
	default:
		logger.GetAppLogger().WithField("id_compo", id).
			Warnf("🧺 [COMPOSITION] composition_json kiểu %T không hỗ trợ, dùng recipe rỗng", value)
		return empty
	}

	var recipe map[string]Quantity
	if err := json.Unmarshal(raw, &recipe); err != nil {
		logger.GetAppLogger().WithField("id_compo", id).WithError(err).
			Warn("🧺 [COMPOSITION] composition_json không parse được, dùng recipe rỗng")
		return empty
	}
	if recipe == nil {
		return empty
	}
	return recipe
}

func isActiveValue(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		return s == "true" || s == "1" || s == "oui"
	default:
		return false
	}
}
