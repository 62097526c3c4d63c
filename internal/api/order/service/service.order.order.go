package ordersvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "panier_commerce/internal/api/base/service"
	n8nsvc "panier_commerce/internal/api/n8n/service"
	orderdto "panier_commerce/internal/api/order/dto"
	ordermodels "panier_commerce/internal/api/order/models"
	"panier_commerce/internal/common"
	"panier_commerce/internal/global"
	"panier_commerce/internal/logger"
	"panier_commerce/internal/utility"
)

// Nguồn dữ liệu của một lần đọc danh sách đơn hàng
const (
	SourceLive  = "live"
	SourceCache = "cache"
)

// OrderService xử lý nghiệp vụ đơn hàng: đọc/ghi qua webhook n8n,
// fallback cache MongoDB khi webhook không phản hồi.
type OrderService struct {
	n8n      *n8nsvc.Client
	cacheSvc *basesvc.BaseServiceMongoImpl[ordermodels.OrderCache]
	cacheTTL time.Duration
}

// NewOrderService tạo instance mới của OrderService
func NewOrderService() (*OrderService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.OrderCache)
	if !exist {
		return nil, fmt.Errorf("failed to get %s collection: %v", global.MongoDB_ColNames.OrderCache, common.ErrNotFound)
	}

	cfg := global.ServerConfig
	return &OrderService{
		n8n:      n8nsvc.NewClient(cfg.N8N_BaseURL, time.Duration(cfg.N8N_TimeoutSeconds)*time.Second),
		cacheSvc: basesvc.NewBaseServiceMongo[ordermodels.OrderCache](collection),
		cacheTTL: time.Duration(cfg.CacheTTLMinutes) * time.Minute,
	}, nil
}

// List đọc danh sách đơn hàng rồi áp filter/sort.
//
// Luôn thử live fetch trước; cache CHỈ là fallback khi live fetch thất bại
// và cache còn trong cửa sổ freshness. Live fetch thành công sẽ refresh cache.
func (s *OrderService) List(ctx context.Context, query orderdto.OrderListQuery) (*orderdto.OrderListResult, error) {
	orders, source, err := s.fetchOrders(ctx)
	if err != nil {
		return nil, err
	}

	sortKey := query.Sort
	if sortKey == "" {
		sortKey = SortDateAsc
	}
	filtered := FilterAndSort(orders, query.Status, query.Search, sortKey)

	return &orderdto.OrderListResult{
		Orders: filtered,
		Source: source,
		Total:  len(filtered),
	}, nil
}

// fetchOrders fetch live từ webhook, fallback cache khi thất bại
func (s *OrderService) fetchOrders(ctx context.Context) ([]ordermodels.Order, string, error) {
	payload, err := s.n8n.GetJSON(ctx, n8nsvc.PathOrders, nil)
	if err != nil {
		logger.GetAppLogger().WithError(err).Warn("📦 [ORDER] Live fetch thất bại, thử đọc cache")
		if cached, ok := s.readCache(ctx); ok {
			return cached, SourceCache, nil
		}
		return nil, "", err
	}

	orders := ordermodels.BuildOrders(n8nsvc.NormalizeRecords(payload))
	s.refreshCache(ctx, orders)
	return orders, SourceLive, nil
}

// readCache đọc cache; trả về ok=false khi không có, sai version hoặc quá hạn
func (s *OrderService) readCache(ctx context.Context) ([]ordermodels.Order, bool) {
	cache, err := s.cacheSvc.FindOne(ctx, bson.M{"key": ordermodels.CacheKeyOrders})
	if err != nil {
		return nil, false
	}
	if !cache.IsFresh(s.cacheTTL) {
		logger.GetAppLogger().WithField("timestamp", cache.Timestamp).
			Info("📦 [ORDER] Cache quá hạn, coi như miss")
		return nil, false
	}
	return cache.Orders, true
}

// refreshCache ghi đè cache sau một live fetch thành công (best effort)
func (s *OrderService) refreshCache(ctx context.Context, orders []ordermodels.Order) {
	cache := ordermodels.OrderCache{
		Key:       ordermodels.CacheKeyOrders,
		Orders:    orders,
		Timestamp: time.Now(),
		Version:   ordermodels.CacheVersion,
	}
	if _, err := s.cacheSvc.Upsert(ctx, bson.M{"key": ordermodels.CacheKeyOrders}, cache); err != nil {
		logger.GetAppLogger().WithError(err).Warn("📦 [ORDER] Không ghi được cache, bỏ qua")
	}
}

// invalidateCache xóa cache sau một thao tác ghi để lần đọc sau không thấy dữ liệu cũ
func (s *OrderService) invalidateCache(ctx context.Context) {
	if err := s.cacheSvc.DeleteOne(ctx, bson.M{"key": ordermodels.CacheKeyOrders}); err != nil && err != common.ErrNotFound {
		logger.GetAppLogger().WithError(err).Warn("📦 [ORDER] Không xóa được cache, bỏ qua")
	}
}

// Create tạo đơn hàng mới qua webhook.
// Ngày lấy hàng phải từ hôm nay trở đi; ngày tạo gán tại thời điểm submit.
func (s *OrderService) Create(ctx context.Context, input *orderdto.OrderCreateInput) error {
	pickupDate, ok := utility.ParseDateFR(input.DateRecuperation)
	if !ok {
		return common.NewError(common.ErrCodeValidationFormat, "Ngày lấy hàng không đúng định dạng DD/MM/YYYY", common.StatusBadRequest, nil)
	}
	if beforeToday(pickupDate, time.Now()) {
		return common.NewError(common.ErrCodeValidationFormat, "Ngày lấy hàng phải từ hôm nay trở đi", common.StatusBadRequest, nil)
	}

	payload := map[string]interface{}{
		"prenom":           input.Prenom,
		"nom":              input.Nom,
		"email":            input.Email,
		"telephone":        input.Telephone,
		"dateRecuperation": utility.FormatDateFR(pickupDate),
		"nombrePaniers":    input.NombrePaniers,
		"composition_id":   compositionIDOrNil(input.CompositionID),
		"dateCreation":     utility.FormatDateFR(time.Now()),
		"etat":             ordermodels.StatusPending,
	}

	if _, err := s.n8n.PostJSON(ctx, n8nsvc.PathOrderCreate, payload); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	logger.GetAppLogger().WithField("nom", input.Nom).Info("📦 [ORDER] Đã tạo đơn hàng mới")
	return nil
}

// Update cập nhật đơn hàng qua webhook.
//
// Webhook không hỗ trợ partial patch: payload PHẢI mang đầy đủ field đã biết,
// field thiếu sẽ bị phía backend âm thầm xóa. Trạng thái gửi đi giữ verbatim
// giá trị client cung cấp.
func (s *OrderService) Update(ctx context.Context, id string, input *orderdto.OrderUpdateInput) error {
	if id == "" {
		return common.ErrInvalidInput
	}

	pickupDate, ok := utility.ParseDateFR(input.DateRecuperation)
	if !ok {
		return common.NewError(common.ErrCodeValidationFormat, "Ngày lấy hàng không đúng định dạng DD/MM/YYYY", common.StatusBadRequest, nil)
	}

	payload := map[string]interface{}{
		"id":               id,
		"prenom":           input.Prenom,
		"nom":              input.Nom,
		"email":            input.Email,
		"telephone":        input.Telephone,
		"dateRecuperation": utility.FormatDateFR(pickupDate),
		"nombrePaniers":    input.NombrePaniers,
		"composition_id":   compositionIDOrNil(input.CompositionID),
		"etat":             input.Etat,
	}

	if _, err := s.n8n.PostJSON(ctx, n8nsvc.PathOrderUpdate, payload); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	logger.GetAppLogger().WithField("id", id).Info("📦 [ORDER] Đã cập nhật đơn hàng")
	return nil
}

// Delete xóa đơn hàng qua webhook - payload chỉ mang identifier
func (s *OrderService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return common.ErrInvalidInput
	}

	if _, err := s.n8n.PostJSON(ctx, n8nsvc.PathOrderDelete, map[string]interface{}{"id": id}); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	logger.GetAppLogger().WithField("id", id).Info("📦 [ORDER] Đã xóa đơn hàng")
	return nil
}

// FetchAll trả về toàn bộ đơn hàng (dùng bởi stats aggregator và composition "in use" check)
func (s *OrderService) FetchAll(ctx context.Context) ([]ordermodels.Order, error) {
	orders, _, err := s.fetchOrders(ctx)
	return orders, err
}

// beforeToday kiểm tra ngày lấy hàng có trước hôm nay không.
//
// "Hôm nay" tính theo NGÀY LỊCH của now (múi giờ của now), không truncate
// thời gian tuyệt đối: truncate theo UTC sẽ lệch một ngày quanh nửa đêm
// ở các múi giờ khác UTC. pickupDate do ParseDateFR trả về luôn là nửa đêm UTC
// của ngày đã nhập nên so sánh với nửa đêm UTC của ngày lịch hiện tại.
func beforeToday(pickupDate, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return pickupDate.Before(today)
}

// compositionIDOrNil giữ ngữ nghĩa null của composition_id trên wire:
// thiếu hoặc rỗng gửi null, KHÔNG BAO GIỜ gửi chuỗi rỗng
func compositionIDOrNil(id *string) interface{} {
	if id == nil || *id == "" {
		return nil
	}
	return *id
}
