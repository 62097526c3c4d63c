package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"panier_commerce/config"
	"panier_commerce/internal/database"
	"panier_commerce/internal/global"
)

// InitGlobal khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// initColNames khởi tạo tên các collection trong database.
// Chỉ có hai collection: cache danh sách đơn hàng và preferences -
// cả hai đều là artifact disposable, source of truth là webhook.
func initColNames() {
	global.MongoDB_ColNames.OrderCache = "order_cache"
	global.MongoDB_ColNames.Preferences = "preferences"

	logrus.Info("Initialized collection names")
}

// initValidator khởi tạo validator (đăng ký custom validators: telephone_fr, nom_fr, date_fr, comp_slug, no_xss)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// initConfig khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// initDatabase_MongoDB khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	dbName := global.ServerConfig.MongoDB_DBName
	colNames := []string{
		global.MongoDB_ColNames.OrderCache,
		global.MongoDB_ColNames.Preferences,
	}
	database.EnsureCollections(global.MongoDB_Session, dbName, colNames)
	logrus.Info("Ensured database and collections")

	// Cả hai collection đều là key-value (1 document per key) - index unique trên "key"
	db := global.MongoDB_Session.Database(dbName)
	for _, name := range colNames {
		database.CreateKeyIndex(context.TODO(), db.Collection(name), "key")
	}
	logrus.Info("Created collection indexes")
}
