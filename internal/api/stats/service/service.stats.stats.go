// Package statssvc xử lý nghiệp vụ thống kê theo tháng.
package statssvc

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	compositionsvc "panier_commerce/internal/api/composition/service"
	n8nsvc "panier_commerce/internal/api/n8n/service"
	ordersvc "panier_commerce/internal/api/order/service"
	statsmodels "panier_commerce/internal/api/stats/models"
	"panier_commerce/internal/common"
	"panier_commerce/internal/global"
	"panier_commerce/internal/logger"
	"panier_commerce/internal/utility"
)

var (
	anneePattern = regexp.MustCompile(`^\d{4}$`)
	moisPattern  = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// StatsResult là data trả về của các endpoint thống kê
type StatsResult struct {
	Stats []statsmodels.MonthlyStat `json:"stats"`
	KPIs  statsmodels.KPIs          `json:"kpis"`
	Annee string                    `json:"annee"`
	Mois  string                    `json:"mois,omitempty"`
}

// StatsService tính thống kê wholesale từ tập đơn hàng và composition hiện tại.
// Không tính incremental - mỗi lần xem là một lần rebuild toàn bộ.
type StatsService struct {
	n8n          *n8nsvc.Client
	orders       *ordersvc.OrderService
	compositions *compositionsvc.CompositionService
}

// NewStatsService tạo instance mới của StatsService
func NewStatsService() (*StatsService, error) {
	orderService, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}
	compositionService, err := compositionsvc.NewCompositionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create composition service: %v", err)
	}

	cfg := global.ServerConfig
	return &StatsService{
		n8n:          n8nsvc.NewClient(cfg.N8N_BaseURL, time.Duration(cfg.N8N_TimeoutSeconds)*time.Second),
		orders:       orderService,
		compositions: compositionService,
	}, nil
}

// Compute rebuild toàn bộ thống kê từ dữ liệu live rồi lọc theo khoảng thời gian.
// annee rỗng mặc định là năm hiện tại; mois (YYYY-MM) tùy chọn thu hẹp về một tháng.
func (s *StatsService) Compute(ctx context.Context, annee, mois string) (*StatsResult, error) {
	annee, mois, err := normalizePeriod(annee, mois)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	lookup, err := s.compositions.Lookup(ctx)
	if err != nil {
		return nil, err
	}

	stats := statsmodels.Aggregate(orders, lookup, time.Now())
	filtered := statsmodels.FilterByPeriod(stats, annee, mois)

	return &StatsResult{
		Stats: filtered,
		KPIs:  statsmodels.ComputeKPIs(filtered),
		Annee: annee,
		Mois:  mois,
	}, nil
}

// TriggerUpdate kích hoạt recompute phía backend rồi đọc lại các row đã persist.
// Rows upstream không đọc được thì fallback về rebuild cục bộ.
func (s *StatsService) TriggerUpdate(ctx context.Context, annee, mois string) (*StatsResult, error) {
	annee, mois, err := normalizePeriod(annee, mois)
	if err != nil {
		return nil, err
	}

	if _, err := s.n8n.PostJSON(ctx, n8nsvc.PathStatsUpdate, map[string]interface{}{}); err != nil {
		return nil, err
	}
	logger.GetAppLogger().Info("📊 [STATS] Đã kích hoạt recompute phía backend")

	payload, err := s.n8n.GetJSON(ctx, n8nsvc.PathStats, nil)
	if err != nil {
		logger.GetAppLogger().WithError(err).
			Warn("📊 [STATS] Không đọc được rows đã persist, rebuild cục bộ")
		return s.Compute(ctx, annee, mois)
	}

	stats := buildMonthlyStats(n8nsvc.NormalizeRecords(payload))
	filtered := statsmodels.FilterByPeriod(stats, annee, mois)
	return &StatsResult{
		Stats: filtered,
		KPIs:  statsmodels.ComputeKPIs(filtered),
		Annee: annee,
		Mois:  mois,
	}, nil
}

// buildMonthlyStats chuyển records thô từ webhook stats thành MonthlyStat
func buildMonthlyStats(records []map[string]interface{}) []statsmodels.MonthlyStat {
	stats := make([]statsmodels.MonthlyStat, 0, len(records))
	for _, record := range records {
		mois := strings.TrimSpace(utility.ResolveString(record, "mois", "Mois", "month"))
		if mois == "" {
			continue
		}
		paniers, _ := utility.ResolveInt64(record, "paniers_total", "paniersTotal")
		stats = append(stats, statsmodels.MonthlyStat{
			CompositionID: utility.ResolveString(record, "composition_id", "compositionId"),
			Mois:          mois,
			PaniersTotal:  paniers,
			StatsJSON:     utility.ResolveString(record, "stats_json", "statsJson"),
			UpdatedAt:     utility.ResolveString(record, "updatedAt", "updated_at"),
		})
	}
	return stats
}

// normalizePeriod validate và chuẩn hóa cặp (annee, mois).
// annee rỗng mặc định năm hiện tại; mois nếu có phải thuộc annee.
func normalizePeriod(annee, mois string) (string, string, error) {
	annee = strings.TrimSpace(annee)
	mois = strings.TrimSpace(mois)

	if annee == "" {
		annee = time.Now().Format("2006")
	}
	if !anneePattern.MatchString(annee) {
		return "", "", common.NewError(common.ErrCodeValidationFormat, "Tham số annee phải có dạng YYYY", common.StatusBadRequest, nil)
	}
	if mois != "" {
		if !moisPattern.MatchString(mois) {
			return "", "", common.NewError(common.ErrCodeValidationFormat, "Tham số mois phải có dạng YYYY-MM", common.StatusBadRequest, nil)
		}
		if !strings.HasPrefix(mois, annee+"-") {
			return "", "", common.NewError(common.ErrCodeValidationInput, "Tham số mois phải thuộc năm annee", common.StatusBadRequest, nil)
		}
	}
	return annee, mois, nil
}
