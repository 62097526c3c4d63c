// Package n8nsvc chứa client gọi webhook n8n - source of truth duy nhất của hệ thống.
// Webhook không ổn định về shape trả về, mọi payload đọc đều đi qua normalizer
// (service.n8n.envelope.go) trước khi tới domain service.
package n8nsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"panier_commerce/internal/common"
	"panier_commerce/internal/logger"
)

// Các path webhook theo resource. Path là contract với n8n workflow, đổi phải migrate đồng bộ.
const (
	PathOrders             = "/commandes"
	PathOrderCreate        = "/commandes/create"
	PathOrderUpdate        = "/commandes/update"
	PathOrderDelete        = "/commandes/delete"
	PathCompositions       = "/compositions"
	PathCompositionCreate  = "/compositions/create"
	PathCompositionUpdate  = "/compositions/update"
	PathCompositionDelete  = "/compositions/delete"
	PathStats              = "/stats"
	PathStatsUpdate        = "/stats/update"
)

// Client gọi webhook n8n qua HTTP với timeout cố định.
// Không retry tự động - caller quyết định fallback (cache) hoặc trả lỗi cho người dùng.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient tạo client mới với base URL và timeout từ cấu hình
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetJSON gọi GET đến webhook và parse body JSON thành giá trị động.
// Query parameters optional (nil = không có).
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values) (interface{}, error) {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, common.NewError(common.ErrCodeWebhook, fmt.Sprintf("Lỗi tạo request: %v", err), common.StatusInternalServerError, nil)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.transportError(err, fullURL)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, common.ErrWebhookPayload
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.GetAppLogger().WithFields(map[string]interface{}{
			"url":        fullURL,
			"statusCode": resp.StatusCode,
		}).Error("🌐 [N8N] Webhook trả về HTTP status lỗi")
		return nil, statusError(resp.StatusCode, body)
	}

	// Body rỗng hoặc không phải JSON trên GET → coi như kết quả rỗng, không phải hard error
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var payload interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		logger.GetAppLogger().WithFields(map[string]interface{}{
			"url":  fullURL,
			"body": truncate(string(body), 200),
		}).Warn("🌐 [N8N] Body không phải JSON hợp lệ, coi như kết quả rỗng")
		return nil, nil
	}

	return payload, nil
}

// PostJSON gọi POST với body JSON đến webhook.
//
// Ngữ nghĩa write với n8n: status 2xx là thành công, kể cả khi body rỗng.
// Body 2xx khác rỗng nhưng không parse được JSON → success-with-warning
// (thao tác được coi là đã thành công phía server).
func (c *Client) PostJSON(ctx context.Context, path string, payload interface{}) (interface{}, error) {
	fullURL := c.baseURL + path

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("Lỗi serialize payload: %v", err), common.StatusInternalServerError, nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, common.NewError(common.ErrCodeWebhook, fmt.Sprintf("Lỗi tạo request: %v", err), common.StatusInternalServerError, nil)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.transportError(err, fullURL)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, common.ErrWebhookPayload
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.GetAppLogger().WithFields(map[string]interface{}{
			"url":        fullURL,
			"statusCode": resp.StatusCode,
			"response":   truncate(string(body), 200),
		}).Error("🌐 [N8N] Webhook write trả về HTTP status lỗi")
		return nil, statusError(resp.StatusCode, body)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var result interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		logger.GetAppLogger().WithFields(map[string]interface{}{
			"url":  fullURL,
			"body": truncate(string(body), 200),
		}).Warn("🌐 [N8N] Write thành công nhưng body không parse được, coi như success")
		return nil, nil
	}

	return result, nil
}

// transportError phân biệt timeout với lỗi mạng - hai trường hợp hiển thị message khác nhau
func (c *Client) transportError(err error, fullURL string) error {
	log := logger.GetAppLogger().WithFields(map[string]interface{}{"url": fullURL})

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		log.WithError(err).Error("🌐 [N8N] Webhook timeout")
		return common.ErrWebhookTimeout
	}

	log.WithError(err).Error("🌐 [N8N] Không kết nối được đến webhook")
	return common.ErrWebhookNetwork
}

// statusError tạo lỗi WHK_003 kèm upstream status trong Details để caller phân biệt (ví dụ 409)
func statusError(statusCode int, body []byte) error {
	return common.NewError(
		common.ErrCodeWebhookStatus,
		fmt.Sprintf("Máy chủ trả về lỗi (HTTP %d)", statusCode),
		common.StatusBadGateway,
		map[string]interface{}{
			"upstreamStatus": statusCode,
			"body":           truncate(string(body), 200),
		},
	)
}

// UpstreamStatus trả về HTTP status của upstream nếu err là lỗi WHK_003, ngược lại 0
func UpstreamStatus(err error) int {
	var customErr *common.Error
	if !errors.As(err, &customErr) {
		return 0
	}
	if customErr.Code.Code != common.ErrCodeWebhookStatus.Code {
		return 0
	}
	details, ok := customErr.Details.(map[string]interface{})
	if !ok {
		return 0
	}
	status, ok := details["upstreamStatus"].(int)
	if !ok {
		return 0
	}
	return status
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
