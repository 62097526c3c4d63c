package logger

import (
	"os"
	"strconv"
	"strings"
)

// LogConfig chứa cấu hình hệ thống logging.
// Các giá trị đọc từ environment variables (LOG_LEVEL, LOG_FORMAT, LOG_OUTPUT, ...)
// để có thể đổi cấu hình mà không cần build lại.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // text hoặc json
	Output string // stdout, file, both
	// Đường dẫn thư mục logs (tương đối so với root project hoặc tuyệt đối)
	LogPath string
	// Tên file cho từng logger
	AppFile   string
	AuditFile string
	ErrorFile string
	// Cấu hình rotation (lumberjack)
	MaxSize    int  // MB
	MaxBackups int  // Số file cũ giữ lại
	MaxAge     int  // Số ngày
	Compress   bool // Nén file cũ
	// Danh sách substring để lọc bỏ log entry (phân cách bởi dấu phẩy)
	FilterPatterns []string
}

// DefaultConfig trả về cấu hình logging mặc định, override bằng env nếu có
func DefaultConfig() *LogConfig {
	cfg := &LogConfig{
		Level:      "info",
		Format:     "text",
		Output:     "both",
		LogPath:    "logs",
		AppFile:    "app.log",
		AuditFile:  "audit.log",
		ErrorFile:  "error.log",
		MaxSize:    100,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("LOG_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("LOG_PATH"); v != "" {
		cfg.LogPath = v
	}
	if v := os.Getenv("LOG_MAX_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxSize = n
		}
	}
	if v := os.Getenv("LOG_MAX_BACKUPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxBackups = n
		}
	}
	if v := os.Getenv("LOG_MAX_AGE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxAge = n
		}
	}
	if v := os.Getenv("LOG_FILTER"); v != "" {
		for _, p := range strings.Split(v, ",") {
			p = strings.TrimSpace(p)
			if p != "" {
				cfg.FilterPatterns = append(cfg.FilterPatterns, p)
			}
		}
	}

	return cfg
}
