package ordersvc

import (
	"sort"
	"strings"
	"time"

	ordermodels "panier_commerce/internal/api/order/models"
	"panier_commerce/internal/utility"
)

// Filter/sort engine cho danh sách đơn hàng.
//
// Thuần túy là hàm của input (orders, status, query, sortKey) - không đọc/ghi
// state ẩn nào. Việc persist bộ filter đang active là việc của preference store,
// không phải của engine này.

// Các sort key chấp nhận
const (
	SortDateAsc  = "date-asc"
	SortDateDesc = "date-desc"
	SortNomAsc   = "nom-asc"
	SortNomDesc  = "nom-desc"
)

// FilterAndSort lọc và sắp xếp danh sách đơn hàng theo tiêu chí.
//
//   - status: khớp chính xác với nhãn trạng thái chuẩn; "all"/"tous"/"" bỏ qua filter.
//   - query: chỉ áp dụng khi độ dài sau trim ≥ 2 (ngắn hơn = không filter, KHÔNG phải
//     match rỗng); substring không phân biệt hoa thường trên prenom/nom/email/telephone, OR.
//   - sortKey: date-asc (mặc định), date-desc, nom-asc, nom-desc. Sort ổn định -
//     phần tử bằng nhau giữ nguyên thứ tự input.
func FilterAndSort(orders []ordermodels.Order, status, query, sortKey string) []ordermodels.Order {
	result := filterByStatus(orders, status)
	result = filterByQuery(result, query)
	return sortOrders(result, sortKey)
}

func filterByStatus(orders []ordermodels.Order, status string) []ordermodels.Order {
	status = strings.TrimSpace(status)
	if status == "" || strings.EqualFold(status, "all") || strings.EqualFold(status, "tous") {
		return orders
	}

	filtered := make([]ordermodels.Order, 0, len(orders))
	for _, order := range orders {
		if order.EtatAffiche == status {
			filtered = append(filtered, order)
		}
	}
	return filtered
}

func filterByQuery(orders []ordermodels.Order, query string) []ordermodels.Order {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < 2 {
		return orders
	}

	needle := strings.ToLower(query)
	filtered := make([]ordermodels.Order, 0, len(orders))
	for _, order := range orders {
		if matchesQuery(order, needle) {
			filtered = append(filtered, order)
		}
	}
	return filtered
}

func matchesQuery(order ordermodels.Order, needle string) bool {
	for _, field := range []string{order.Prenom, order.Nom, order.Email, order.Telephone} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// sortOrders sắp xếp bản copy của danh sách, không mutate input
func sortOrders(orders []ordermodels.Order, sortKey string) []ordermodels.Order {
	sorted := make([]ordermodels.Order, len(orders))
	copy(sorted, orders)

	switch sortKey {
	case SortDateDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return pickupTime(sorted[i]).After(pickupTime(sorted[j]))
		})
	case SortNomAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Nom) < strings.ToLower(sorted[j].Nom)
		})
	case SortNomDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Nom) > strings.ToLower(sorted[j].Nom)
		})
	default: // SortDateAsc
		sort.SliceStable(sorted, func(i, j int) bool {
			return pickupTime(sorted[i]).Before(pickupTime(sorted[j]))
		})
	}
	return sorted
}

// pickupTime parse ngày lấy hàng để so sánh; ngày không parse được xếp về zero time (đứng đầu khi asc)
func pickupTime(order ordermodels.Order) time.Time {
	parsed, ok := utility.ParseDateFR(order.DateRecuperation)
	if !ok {
		return time.Time{}
	}
	return parsed
}
