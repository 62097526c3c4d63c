// Package global chứa các biến toàn cục của ứng dụng: cấu hình server,
// session MongoDB, validator singleton và registry các collection.
package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"panier_commerce/config"
	"panier_commerce/internal/registry"
)

// ColNames chứa tên các collection trong database.
// MongoDB chỉ lưu artifacts local (cache đơn hàng, preferences) - webhook n8n là source of truth.
type ColNames struct {
	OrderCache  string // Cache danh sách đơn hàng {orders, timestamp, version}
	Preferences string // Preferences (bộ lọc đang chọn, theme)
}

var (
	// ServerConfig chứa cấu hình server đọc từ env
	ServerConfig *config.Configuration

	// MongoDB_Session là client MongoDB dùng chung
	MongoDB_Session *mongo.Client

	// MongoDB_ColNames chứa tên các collection
	MongoDB_ColNames ColNames

	// Validate là validator singleton, đăng ký custom validators qua InitValidator
	Validate *validator.Validate

	// RegistryCollections quản lý các collection đã khởi tạo theo tên
	RegistryCollections = registry.NewRegistry[*mongo.Collection]()
)
