package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"panier_commerce/config"
	"panier_commerce/internal/logger"
)

// GetInstance khởi tạo và trả về *mongo.Client.
// Dùng URL kết nối từ cấu hình được cung cấp.
func GetInstance(c *config.Configuration) (*mongo.Client, error) {
	if c.MongoDB_ConnectionURI == "" {
		return nil, fmt.Errorf("database connection URL is empty")
	}

	// Cài đặt các options cho client
	clientOptions := options.Client().ApplyURI(c.MongoDB_ConnectionURI).
		SetMaxPoolSize(50).                 // Giới hạn tối đa 50 connections
		SetMinPoolSize(10).                 // Giữ tối thiểu 10 connections trong pool
		SetConnectTimeout(5 * time.Second). // Timeout khi kết nối
		SetSocketTimeout(10 * time.Second)  // Timeout khi gửi nhận dữ liệu

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Kiểm tra kết nối
	ctxPing, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancelPing()

	err = client.Ping(ctxPing, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.GetAppLogger().Info("Successfully connected to MongoDB")
	return client, nil
}

// CloseInstance đóng kết nối MongoDB client
func CloseInstance(client *mongo.Client) error {
	if err := client.Disconnect(context.TODO()); err != nil {
		logger.GetAppLogger().WithError(err).Error("Failed to disconnect MongoDB client")
		return err
	}
	logger.GetAppLogger().Info("Successfully disconnected from MongoDB")
	return nil
}

// EnsureCollections tạo các collection local nếu chưa tồn tại.
// Collection đã tồn tại thì bỏ qua (Mongo tự tạo khi ghi, nhưng tạo trước để đánh index sớm).
func EnsureCollections(client *mongo.Client, dbName string, colNames []string) {
	log := logger.GetAppLogger()
	db := client.Database(dbName)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		log.WithError(err).Warn("Không liệt kê được collections, bỏ qua bước ensure")
		return
	}

	existingSet := make(map[string]bool, len(existing))
	for _, name := range existing {
		existingSet[name] = true
	}

	for _, name := range colNames {
		if existingSet[name] {
			continue
		}
		if err := db.CreateCollection(ctx, name); err != nil {
			log.WithError(err).Warnf("Không tạo được collection %s", name)
			continue
		}
		log.Infof("Đã tạo collection %s", name)
	}
}

// CreateKeyIndex tạo unique index trên field key của một collection.
// Dùng cho các collection dạng key-value (preferences, cache) - mỗi key một document.
func CreateKeyIndex(ctx context.Context, collection *mongo.Collection, field string) {
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		logger.GetAppLogger().WithError(err).Warnf("Không tạo được index %s cho collection %s", field, collection.Name())
	}
}
