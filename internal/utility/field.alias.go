package utility

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Package utility - alias resolution cho các record thô từ webhook.
//
// Webhook n8n trả về field names không nhất quán (Date_Recuperation / date_recuperation /
// DateRecuperation...). Mỗi field logic có một danh sách alias theo thứ tự ưu tiên cố định;
// giá trị đầu tiên tồn tại và khác nil sẽ được lấy. Danh sách alias khai báo ở model
// của từng domain để có thể review như một bảng dữ liệu.

// ResolveValue lấy giá trị đầu tiên tồn tại và khác nil theo thứ tự alias.
// Trả về (value, true) nếu tìm thấy; (nil, false) nếu không alias nào có giá trị.
func ResolveValue(record map[string]interface{}, aliases ...string) (interface{}, bool) {
	for _, key := range aliases {
		if value, exists := record[key]; exists && value != nil {
			return value, true
		}
	}
	return nil, false
}

// ResolveString lấy giá trị string đầu tiên theo thứ tự alias.
// Giá trị không phải string được convert qua ConvertString. Không tìm thấy trả về "".
func ResolveString(record map[string]interface{}, aliases ...string) string {
	value, ok := ResolveValue(record, aliases...)
	if !ok {
		return ""
	}
	s, err := ConvertString(value)
	if err != nil {
		return ""
	}
	return s
}

// ResolveInt64 lấy giá trị số đầu tiên theo thứ tự alias, convert về int64.
// Trả về (0, false) nếu không tìm thấy hoặc không convert được.
func ResolveInt64(record map[string]interface{}, aliases ...string) (int64, bool) {
	value, ok := ResolveValue(record, aliases...)
	if !ok {
		return 0, false
	}
	n, err := ConvertInt64(value)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ConvertInt64 convert giá trị bất kỳ từ JSON → int64
func ConvertInt64(value interface{}) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case float32:
		return int64(v), nil
	case json.Number:
		// json.Number có thể là số nguyên hoặc số thập phân
		if intVal, err := v.Int64(); err == nil {
			return intVal, nil
		}
		if floatVal, err := v.Float64(); err == nil {
			return int64(floatVal), nil
		}
		return 0, fmt.Errorf("không thể convert json.Number '%s' sang int64", v)
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("không thể convert %T sang int64", value)
	}
}

// ConvertFloat64 convert giá trị bất kỳ từ JSON → float64
func ConvertFloat64(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case int:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	case string:
		return strconv.ParseFloat(v, 64)
	default:
		return 0, fmt.Errorf("không thể convert %T sang float64", value)
	}
}

// ConvertString convert giá trị bất kỳ → string
func ConvertString(value interface{}) (string, error) {
	if value == nil {
		return "", nil
	}
	switch v := value.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case float64:
		// ID dạng số từ JSON: bỏ phần thập phân nếu là số nguyên
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10), nil
		}
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return fmt.Sprintf("%v", value), nil
	}
}
