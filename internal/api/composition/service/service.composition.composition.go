// Package compositionsvc xử lý nghiệp vụ composition (recipe panier trái cây).
package compositionsvc

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	compositiondto "panier_commerce/internal/api/composition/dto"
	compositionmodels "panier_commerce/internal/api/composition/models"
	n8nsvc "panier_commerce/internal/api/n8n/service"
	ordersvc "panier_commerce/internal/api/order/service"
	"panier_commerce/internal/common"
	"panier_commerce/internal/global"
	"panier_commerce/internal/logger"
	"panier_commerce/internal/utility"
)

// lookupCacheKey là khóa memoize lookup composition trong cache in-memory
const lookupCacheKey = "composition-lookup"

// lookupMemo memoize lookup identifier → composition ngắn hạn.
// Cache ở mức package, CHIA SẺ cho mọi instance của CompositionService:
// invalidation sau create/update/delete phải thấy được từ cả stats path,
// không chỉ từ instance đã thực hiện thao tác ghi.
var lookupMemo = utility.NewCache(5*time.Minute, time.Minute)

// CompositionService xử lý nghiệp vụ composition qua webhook n8n.
// Lookup identifier → composition được memoize ngắn hạn (lookupMemo)
// để stats aggregator và in-use check không gọi webhook lặp lại.
type CompositionService struct {
	n8n    *n8nsvc.Client
	orders *ordersvc.OrderService
}

// NewCompositionService tạo instance mới của CompositionService
func NewCompositionService() (*CompositionService, error) {
	orderService, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}

	cfg := global.ServerConfig
	return &CompositionService{
		n8n:    n8nsvc.NewClient(cfg.N8N_BaseURL, time.Duration(cfg.N8N_TimeoutSeconds)*time.Second),
		orders: orderService,
	}, nil
}

// List đọc danh sách composition từ webhook (đã gỡ double-wrap, dedup theo recency)
func (s *CompositionService) List(ctx context.Context) ([]compositiondto.CompositionView, error) {
	comps, err := s.fetchCompositions(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]compositiondto.CompositionView, 0, len(comps))
	for _, comp := range comps {
		views = append(views, compositiondto.NewCompositionView(comp))
	}
	return views, nil
}

// Lookup trả về map identifier → composition (memoized ngắn hạn)
func (s *CompositionService) Lookup(ctx context.Context) (map[string]compositionmodels.Composition, error) {
	if cached, ok := lookupMemo.Get(lookupCacheKey); ok {
		if lookup, ok := cached.(map[string]compositionmodels.Composition); ok {
			return lookup, nil
		}
	}

	comps, err := s.fetchCompositions(ctx)
	if err != nil {
		return nil, err
	}

	lookup := compositionmodels.BuildLookup(comps)
	lookupMemo.Set(lookupCacheKey, lookup)
	return lookup, nil
}

// invalidateLookup xóa memo lookup sau một thao tác ghi.
// Memo là package-level nên lần đọc tiếp theo ở BẤT KỲ instance nào
// (kể cả stats path) đều fetch lại dữ liệu mới.
func (s *CompositionService) invalidateLookup() {
	lookupMemo.Delete(lookupCacheKey)
}

func (s *CompositionService) fetchCompositions(ctx context.Context) ([]compositionmodels.Composition, error) {
	payload, err := s.n8n.GetJSON(ctx, n8nsvc.PathCompositions, nil)
	if err != nil {
		return nil, err
	}

	records := n8nsvc.UnwrapCompositionPayload(payload)
	return compositionmodels.Deduplicate(compositionmodels.BuildCompositions(records)), nil
}

// Create tạo composition mới. Identifier derive từ nom (slug comp-...),
// bất biến sau khi tạo; trùng identifier đã tồn tại là lỗi.
func (s *CompositionService) Create(ctx context.Context, input *compositiondto.CompositionCreateInput) (string, error) {
	if err := validateRules(input.DateDebut, input.DateFin, input.Fruits); err != nil {
		return "", err
	}

	id := utility.SlugifyCompositionID(input.Nom)
	if err := global.Validate.Var(id, "comp_slug"); err != nil {
		return "", common.NewError(common.ErrCodeValidationFormat,
			fmt.Sprintf("Tên không sinh được identifier hợp lệ: %s", id), common.StatusBadRequest, nil)
	}

	lookup, err := s.Lookup(ctx)
	if err != nil {
		return "", err
	}
	if _, exists := lookup[id]; exists {
		return "", common.NewError(common.ErrCodeBusinessOperation,
			fmt.Sprintf("Composition với identifier %s đã tồn tại", id), common.StatusConflict, nil)
	}

	if _, err := s.n8n.PostJSON(ctx, n8nsvc.PathCompositionCreate, s.writePayload(id, input.Nom, input.DateDebut, input.DateFin, input.Active, input.Fruits)); err != nil {
		return "", err
	}

	s.invalidateLookup()
	logger.GetAppLogger().WithField("id_compo", id).Info("🧺 [COMPOSITION] Đã tạo composition mới")
	return id, nil
}

// Update cập nhật composition - identifier từ path, không đổi được
func (s *CompositionService) Update(ctx context.Context, id string, input *compositiondto.CompositionUpdateInput) error {
	if err := global.Validate.Var(id, "comp_slug"); err != nil {
		return common.ErrInvalidInput
	}
	if err := validateRules(input.DateDebut, input.DateFin, input.Fruits); err != nil {
		return err
	}

	lookup, err := s.Lookup(ctx)
	if err != nil {
		return err
	}
	if _, exists := lookup[id]; !exists {
		return common.ErrNotFound
	}

	if _, err := s.n8n.PostJSON(ctx, n8nsvc.PathCompositionUpdate, s.writePayload(id, input.Nom, input.DateDebut, input.DateFin, input.Active, input.Fruits)); err != nil {
		return err
	}

	s.invalidateLookup()
	logger.GetAppLogger().WithField("id_compo", id).Info("🧺 [COMPOSITION] Đã cập nhật composition")
	return nil
}

// Delete xóa composition.
//
// Composition đang được tham chiếu bởi bất kỳ đơn hàng nào là "in use" và
// KHÔNG xóa được - conflict 409 có message riêng, không phải lỗi chung chung.
// Check cục bộ trước để tránh round-trip; upstream trả 409 cũng map về cùng lỗi.
func (s *CompositionService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return common.ErrInvalidInput
	}

	orders, err := s.orders.FetchAll(ctx)
	if err != nil {
		return err
	}
	for _, order := range orders {
		if order.CompositionID != nil && *order.CompositionID == id {
			return common.ErrCompositionInUse
		}
	}

	if _, err := s.n8n.PostJSON(ctx, n8nsvc.PathCompositionDelete, map[string]interface{}{"id_compo": id}); err != nil {
		if n8nsvc.UpstreamStatus(err) == common.StatusConflict {
			return common.ErrCompositionInUse
		}
		return err
	}

	s.invalidateLookup()
	logger.GetAppLogger().WithField("id_compo", id).Info("🧺 [COMPOSITION] Đã xóa composition")
	return nil
}

// writePayload build body ghi theo wire contract của webhook:
// composition_json là CHUỖI JSON-encoded, không phải object lồng
func (s *CompositionService) writePayload(id, nom, dateDebut, dateFin string, active bool, fruits map[string]compositionmodels.Quantity) map[string]interface{} {
	recipeJSON, _ := json.Marshal(fruits)
	return map[string]interface{}{
		"id_compo":         id,
		"nom":              nom,
		"date_debut":       dateDebut,
		"date_fin":         dateFin,
		"active":           active,
		"composition_json": string(recipeJSON),
	}
}

// validateRules check các rule động không diễn đạt được bằng validator tag:
// date_fin phải SAU date_debut (strict), mỗi fruit có 0 < qty ≤ 100 và đơn vị hợp lệ
func validateRules(dateDebut, dateFin string, fruits map[string]compositionmodels.Quantity) error {
	debut, ok := utility.ParseDateFR(dateDebut)
	if !ok {
		return common.NewError(common.ErrCodeValidationFormat, "Ngày bắt đầu không đúng định dạng DD/MM/YYYY", common.StatusBadRequest, nil)
	}
	fin, ok := utility.ParseDateFR(dateFin)
	if !ok {
		return common.NewError(common.ErrCodeValidationFormat, "Ngày kết thúc không đúng định dạng DD/MM/YYYY", common.StatusBadRequest, nil)
	}
	if !fin.After(debut) {
		return common.NewError(common.ErrCodeValidationInput, "Ngày kết thúc phải sau ngày bắt đầu", common.StatusBadRequest, nil)
	}

	for fruit, qty := range fruits {
		if strings.TrimSpace(fruit) == "" {
			return common.NewError(common.ErrCodeValidationInput, "Tên trái cây không được rỗng", common.StatusBadRequest, nil)
		}
		if qty.Qty <= 0 || qty.Qty > 100 {
			return common.NewError(common.ErrCodeValidationInput,
				fmt.Sprintf("Số lượng của %s phải trong khoảng (0, 100]", fruit), common.StatusBadRequest, nil)
		}
		if qty.Unit != compositionmodels.UnitPiece && qty.Unit != compositionmodels.UnitKg {
			return common.NewError(common.ErrCodeValidationInput,
				fmt.Sprintf("Đơn vị của %s phải là piece hoặc kg", fruit), common.StatusBadRequest, nil)
		}
	}
	return nil
}
