package preferencemodels

import "time"

// Khóa cố định của các preference document (1 document per key)
const (
	PrefKeyFilters = "order-filters"
	PrefKeyTheme   = "theme"
)

// FilterPreference là bộ ba filter/search/sort đang active của màn hình đơn hàng.
// Được persist để seed lại filter engine ở lần load sau - engine tự nó
// không bao giờ đọc/ghi persistence.
type FilterPreference struct {
	Status string `json:"status" bson:"status"`
	Search string `json:"search" bson:"search"`
	Sort   string `json:"sort" bson:"sort"`
}

// Preference là một document key-value trong collection preferences
type Preference struct {
	Key       string            `json:"key" bson:"key"`
	Filters   *FilterPreference `json:"filters,omitempty" bson:"filters,omitempty"`
	Theme     string            `json:"theme,omitempty" bson:"theme,omitempty"`
	UpdatedAt time.Time         `json:"updated_at" bson:"updated_at"`
}

// DefaultFilters là bộ filter khi chưa có preference nào được lưu
func DefaultFilters() FilterPreference {
	return FilterPreference{
		Status: "all",
		Search: "",
		Sort:   "date-asc",
	}
}
