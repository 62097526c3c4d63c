package statsmodels

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
	"time"

	compositionmodels "panier_commerce/internal/api/composition/models"
	ordermodels "panier_commerce/internal/api/order/models"
	"panier_commerce/internal/logger"
	"panier_commerce/internal/utility"
)

// Aggregator thống kê theo tháng.
//
// Thuần túy là hàm của (orders, lookup composition, now) - không đọc state ẩn,
// không gọi mạng. Chạy hai lần trên cùng input cho ra stats_json BYTE-IDENTICAL
// (fruit keys sort tăng dần, không phụ thuộc thứ tự xử lý).

// monthLedger là sổ cái tích lũy của một tháng
type monthLedger struct {
	paniers int64
	fruits  map[string]compositionmodels.Quantity
}

// Aggregate tính MonthlyStat cho mỗi tháng lấy hàng xuất hiện trong tập đơn hàng.
//
// Luật loại trừ (một chính sách nhất quán, áp dụng cho CẢ panier lẫn trái cây):
//   - đơn hàng có ngày lấy hàng thiếu/không parse được → loại hoàn toàn;
//   - đơn hàng có composition_id không resolve về composition nào đã biết
//     → loại hoàn toàn khỏi tháng đó (panier của nó cũng KHÔNG được đếm).
//
// Tên trái cây lowercase + trim trước khi tích lũy để "Pomme" và "pomme"
// không thành hai entry. Tích lũy full precision; làm tròn chỉ khi hiển thị.
func Aggregate(orders []ordermodels.Order, lookup map[string]compositionmodels.Composition, now time.Time) []MonthlyStat {
	ledgers := make(map[string]*monthLedger)

	for _, order := range orders {
		month, ok := utility.MonthKeyFromDateString(order.DateRecuperation)
		if !ok {
			logger.GetAppLogger().WithField("id", order.ID).
				Debug("📊 [STATS] Đơn hàng không có ngày lấy hàng hợp lệ, loại khỏi thống kê")
			continue
		}

		if order.CompositionID == nil {
			continue
		}
		comp, found := lookup[*order.CompositionID]
		if !found {
			logger.GetAppLogger().WithFields(map[string]interface{}{
				"id":             order.ID,
				"composition_id": *order.CompositionID,
			}).Warn("📊 [STATS] composition_id không resolve được, loại đơn hàng khỏi tháng")
			continue
		}

		ledger := ledgers[month]
		if ledger == nil {
			ledger = &monthLedger{fruits: make(map[string]compositionmodels.Quantity)}
			ledgers[month] = ledger
		}

		ledger.paniers += order.NombrePaniers
		for fruit, qty := range comp.Recipe {
			name := strings.ToLower(strings.TrimSpace(fruit))
			if name == "" {
				continue
			}
			total := ledger.fruits[name]
			total.Qty += qty.Qty * float64(order.NombrePaniers)
			// kg "thắng" khi cùng một trái cây xuất hiện với hai đơn vị
			if total.Unit != compositionmodels.UnitKg {
				total.Unit = qty.Unit
			}
			ledger.fruits[name] = total
		}
	}

	months := make([]string, 0, len(ledgers))
	for month := range ledgers {
		months = append(months, month)
	}
	sort.Strings(months)

	updatedAt := now.UTC().Format(time.RFC3339)
	stats := make([]MonthlyStat, 0, len(months))
	for _, month := range months {
		ledger := ledgers[month]
		stats = append(stats, MonthlyStat{
			CompositionID: compositionmodels.StatsRowPrefix + month,
			Mois:          month,
			PaniersTotal:  ledger.paniers,
			StatsJSON:     encodeLedger(ledger.fruits),
			UpdatedAt:     updatedAt,
		})
	}
	return stats
}

// encodeLedger encode sổ cái trái cây thành chuỗi JSON với keys sort tăng dần.
// Sort + marshal từng value một để output byte-identical giữa các lần tính.
func encodeLedger(fruits map[string]compositionmodels.Quantity) string {
	names := make([]string, 0, len(fruits))
	for name := range fruits {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(name)
		buf.Write(key)
		buf.WriteByte(':')
		value, _ := json.Marshal(fruits[name])
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.String()
}

// DecodeLedger parse lại stats_json về sổ cái trái cây (dùng khi tính KPI).
// Chuỗi hỏng trả về sổ cái rỗng.
func DecodeLedger(statsJSON string) map[string]compositionmodels.Quantity {
	ledger := map[string]compositionmodels.Quantity{}
	if strings.TrimSpace(statsJSON) == "" {
		return ledger
	}
	if err := json.Unmarshal([]byte(statsJSON), &ledger); err != nil {
		logger.GetAppLogger().WithError(err).Warn("📊 [STATS] stats_json không parse được, dùng sổ cái rỗng")
		return map[string]compositionmodels.Quantity{}
	}
	return ledger
}

// ComputeKPIs tính KPI trên tập MonthlyStat đã lọc theo khoảng thời gian.
//
// topFruit là trái cây có tổng lớn nhất trên cả khoảng; khi hòa, chọn theo
// thứ tự alphabet để kết quả deterministic.
func ComputeKPIs(stats []MonthlyStat) KPIs {
	kpis := KPIs{}
	totals := make(map[string]float64)

	for _, stat := range stats {
		kpis.TotalPaniers += stat.PaniersTotal
		for fruit, qty := range DecodeLedger(stat.StatsJSON) {
			totals[fruit] += qty.Qty
			kpis.TotalFruits += qty.Qty
		}
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	best := 0.0
	for _, name := range names {
		if totals[name] > best {
			best = totals[name]
			kpis.TopFruit = name
		}
	}
	return kpis
}

// FilterByPeriod lọc stats theo năm (YYYY) và tùy chọn một tháng (YYYY-MM)
func FilterByPeriod(stats []MonthlyStat, annee, mois string) []MonthlyStat {
	filtered := make([]MonthlyStat, 0, len(stats))
	for _, stat := range stats {
		if annee != "" && !strings.HasPrefix(stat.Mois, annee+"-") {
			continue
		}
		if mois != "" && stat.Mois != mois {
			continue
		}
		filtered = append(filtered, stat)
	}
	return filtered
}
