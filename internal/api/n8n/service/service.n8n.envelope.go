package n8nsvc

import (
	"sort"

	"panier_commerce/internal/logger"
)

// Normalizer cho các envelope shape mà webhook n8n có thể trả về.
//
// Cùng một webhook có thể trả về records trần, bọc trong {data: [...]},
// bọc trong mảng một phần tử, hoặc dạng map id → record tùy phiên bản workflow.
// NormalizeRecords thử lần lượt các shape theo thứ tự ưu tiên cố định;
// không shape nào khớp thì trả về danh sách rỗng kèm log cảnh báo,
// KHÔNG BAO GIỜ là hard error - caller phải chịu được kết quả rỗng.

// NormalizeRecords trích danh sách record phẳng từ một payload JSON shape bất kỳ.
//
// Các shape nhận diện, theo thứ tự ưu tiên:
//  1. Mảng mà phần tử đầu có property "data" là mảng → dùng mảng lồng đó
//     (wrapper mảng-một-phần-tử của n8n).
//  2. Mảng → dùng trực tiếp.
//  3. Object có property "data" là mảng → dùng nó.
//  4. Object có flag "success" truthy và property "data" → dùng data nếu là mảng, không thì rỗng.
//  5. Object có property khác mang giá trị mảng → dùng property đầu tiên tìm thấy
//     (duyệt theo thứ tự key đã sort để kết quả deterministic).
//  6. Object không có property mảng nhưng các entry trông như id → record
//     → convert entries thành records, ưu tiên field "id" bên trong record hơn map key.
func NormalizeRecords(payload interface{}) []map[string]interface{} {
	if payload == nil {
		return []map[string]interface{}{}
	}

	switch v := payload.(type) {
	case []interface{}:
		// Shape 1: wrapper mảng-một-phần-tử với data lồng bên trong
		if len(v) > 0 {
			if first, ok := v[0].(map[string]interface{}); ok {
				if nested, ok := first["data"].([]interface{}); ok {
					return toRecords(nested)
				}
			}
		}
		// Shape 2: mảng records trần
		return toRecords(v)

	case map[string]interface{}:
		// Shape 3: {data: [...]}
		if data, ok := v["data"].([]interface{}); ok {
			return toRecords(data)
		}

		// Shape 4: {success: true, data: ...} - data không phải mảng thì rỗng
		if success, ok := v["success"]; ok && isTruthy(success) {
			if _, hasData := v["data"]; hasData {
				return []map[string]interface{}{}
			}
		}

		// Shape 5: property đầu tiên (theo key sort) có giá trị mảng
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if arr, ok := v[k].([]interface{}); ok {
				return toRecords(arr)
			}
		}

		// Shape 6: map id → record (tất cả values là object)
		if records, ok := recordsFromIDMap(v, keys); ok {
			return records
		}

		logger.GetAppLogger().WithField("keys", keys).
			Warn("🌐 [N8N] Payload object không khớp shape nào, trả về danh sách rỗng")
		return []map[string]interface{}{}

	default:
		logger.GetAppLogger().Warnf("🌐 [N8N] Payload kiểu %T không khớp shape nào, trả về danh sách rỗng", payload)
		return []map[string]interface{}{}
	}
}

// UnwrapCompositionPayload gỡ thêm một lớp double-wrap đặc thù của endpoint composition
// ({compositions: {compositions: [...]}}) trước khi áp dụng NormalizeRecords.
func UnwrapCompositionPayload(payload interface{}) []map[string]interface{} {
	if obj, ok := payload.(map[string]interface{}); ok {
		if inner, ok := obj["compositions"].(map[string]interface{}); ok {
			if _, ok := inner["compositions"].([]interface{}); ok {
				return NormalizeRecords(inner)
			}
		}
	}
	return NormalizeRecords(payload)
}

// toRecords lọc các phần tử object từ mảng; phần tử không phải object bị bỏ qua
func toRecords(items []interface{}) []map[string]interface{} {
	records := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		if record, ok := item.(map[string]interface{}); ok {
			records = append(records, record)
		}
	}
	return records
}

// recordsFromIDMap convert map id → record thành danh sách records.
// Chỉ áp dụng khi TẤT CẢ values là object. Map key trở thành "id" của record
// trừ khi record đã có field "id" riêng (ưu tiên id bên trong).
func recordsFromIDMap(obj map[string]interface{}, sortedKeys []string) ([]map[string]interface{}, bool) {
	if len(obj) == 0 {
		return nil, false
	}

	for _, v := range obj {
		if _, ok := v.(map[string]interface{}); !ok {
			return nil, false
		}
	}

	records := make([]map[string]interface{}, 0, len(obj))
	for _, key := range sortedKeys {
		entry := obj[key].(map[string]interface{})
		record := make(map[string]interface{}, len(entry)+1)
		for k, v := range entry {
			record[k] = v
		}
		if _, hasID := record["id"]; !hasID {
			record["id"] = key
		}
		records = append(records, record)
	}
	return records, true
}

// isTruthy đánh giá một giá trị JSON theo ngữ nghĩa truthy (bool true, số khác 0, chuỗi khác rỗng)
func isTruthy(v interface{}) bool {
	switch val := v.(type) {
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		return val != "" && val != "false" && val != "0"
	default:
		return v != nil
	}
}
