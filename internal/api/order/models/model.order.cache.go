package ordermodels

import "time"

// CacheKeyOrders là khóa cố định của document cache danh sách đơn hàng
const CacheKeyOrders = "orders"

// CacheVersion tăng khi format Orders trong cache đổi - đọc cache version cũ coi như miss
const CacheVersion = 1

// OrderCache là bản chụp danh sách đơn hàng lưu trong MongoDB.
//
// Cache này là fallback khi webhook không phản hồi, KHÔNG BAO GIỜ thay thế
// một live fetch thành công. Quá cửa sổ freshness thì coi như miss.
type OrderCache struct {
	Key       string    `json:"key" bson:"key"`
	Orders    []Order   `json:"orders" bson:"orders"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
	Version   int       `json:"version" bson:"version"`
}

// IsFresh kiểm tra cache còn trong cửa sổ freshness và đúng version
func (c *OrderCache) IsFresh(maxAge time.Duration) bool {
	if c.Version != CacheVersion {
		return false
	}
	return time.Since(c.Timestamp) <= maxAge
}
