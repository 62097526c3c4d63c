package compositionmodels

import (
	"panier_commerce/internal/logger"
)

// BuildCompositions chạy BuildComposition trên cả danh sách record,
// loại record không có identifier và các row thống kê lưu chung bảng.
func BuildCompositions(records []map[string]interface{}) []Composition {
	comps := make([]Composition, 0, len(records))
	for _, record := range records {
		comp, ok := BuildComposition(record)
		if !ok || comp.IsStatsRow() {
			continue
		}
		comps = append(comps, comp)
	}
	return comps
}

// BuildLookup xây lookup identifier → composition cho resolver.
//
// Khi hai record cùng claim một id_compo, giữ record có timestamp sửa đổi
// muộn hơn - log warn, KHÔNG phải lỗi. Kết quả deterministic với mọi thứ tự input.
func BuildLookup(comps []Composition) map[string]Composition {
	lookup := make(map[string]Composition, len(comps))
	for _, comp := range comps {
		existing, found := lookup[comp.IDCompo]
		if !found {
			lookup[comp.IDCompo] = comp
			continue
		}

		logger.GetAppLogger().WithField("id_compo", comp.IDCompo).
			Warn("🧺 [COMPOSITION] Hai record trùng id_compo, giữ record sửa đổi muộn hơn")
		if comp.ModTime().After(existing.ModTime()) {
			lookup[comp.IDCompo] = comp
		}
	}
	return lookup
}

// Deduplicate giữ thứ tự input nhưng loại record trùng id_compo theo luật recency
// của BuildLookup (dùng cho danh sách hiển thị)
func Deduplicate(comps []Composition) []Composition {
	lookup := BuildLookup(comps)

	result := make([]Composition, 0, len(lookup))
	seen := make(map[string]bool, len(lookup))
	for _, comp := range comps {
		if seen[comp.IDCompo] {
			continue
		}
		seen[comp.IDCompo] = true
		result = append(result, lookup[comp.IDCompo])
	}
	return result
}
