package basesvc

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"panier_commerce/internal/common"
)

// BaseServiceMongoImpl triển khai các thao tác chung trên một collection MongoDB.
// Các collection ở đây đều là key-value (cache, preferences) nên bề mặt chỉ gồm
// đọc một document, upsert và xóa theo key.
type BaseServiceMongoImpl[T any] struct {
	collection *mongo.Collection
}

// NewBaseServiceMongo tạo base service mới gắn với một collection
func NewBaseServiceMongo[T any](collection *mongo.Collection) *BaseServiceMongoImpl[T] {
	return &BaseServiceMongoImpl[T]{collection: collection}
}

// FindOne tìm một document theo filter. Không tìm thấy trả về lỗi DB_001.
func (s *BaseServiceMongoImpl[T]) FindOne(ctx context.Context, filter interface{}) (T, error) {
	var result T
	err := s.collection.FindOne(ctx, filter).Decode(&result)
	if err != nil {
		var zero T
		if err == mongo.ErrNoDocuments {
			return zero, common.ErrNotFound
		}
		return zero, common.ConvertMongoError(err)
	}
	return result, nil
}

// Upsert thay thế document khớp filter bằng data, tạo mới nếu chưa tồn tại.
// Đây là thao tác ghi chính của các collection key-value (cache, preferences).
func (s *BaseServiceMongoImpl[T]) Upsert(ctx context.Context, filter interface{}, data T) (T, error) {
	var zero T
	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, filter, data, opts); err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return data, nil
}

// DeleteOne xóa một document theo filter. Không tìm thấy trả về lỗi DB_001.
func (s *BaseServiceMongoImpl[T]) DeleteOne(ctx context.Context, filter interface{}) error {
	result, err := s.collection.DeleteOne(ctx, filter)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}
