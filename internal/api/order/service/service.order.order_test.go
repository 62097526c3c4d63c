package ordersvc

import (
	"testing"
	"time"

	"panier_commerce/internal/utility"
)

func mustParseDateFR(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, ok := utility.ParseDateFR(s)
	if !ok {
		t.Fatalf("%s: phải parse được", s)
	}
	return parsed
}

func TestBeforeToday_TheoNgayLich(t *testing.T) {
	now := time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)

	if beforeToday(mustParseDateFR(t, "15/07/2025"), now) {
		t.Error("hôm nay không được coi là quá khứ")
	}
	if !beforeToday(mustParseDateFR(t, "14/07/2025"), now) {
		t.Error("hôm qua phải bị từ chối")
	}
	if beforeToday(mustParseDateFR(t, "16/07/2025"), now) {
		t.Error("ngày mai phải được chấp nhận")
	}
}

func TestBeforeToday_MuiGioKhacUTC(t *testing.T) {
	// 20h ngày 15/07 ở UTC-10 đã là 06h ngày 16/07 theo UTC:
	// ngày lịch local vẫn là 15 nên "15/07/2025" KHÔNG phải quá khứ
	now := time.Date(2025, time.July, 15, 20, 0, 0, 0, time.FixedZone("UTC-10", -10*3600))
	if beforeToday(mustParseDateFR(t, "15/07/2025"), now) {
		t.Error("hôm nay theo giờ local không được bị từ chối")
	}

	// 00h30 ngày 16/07 ở UTC+13 vẫn là 11h30 ngày 15/07 theo UTC:
	// ngày lịch local đã sang 16 nên "15/07/2025" là hôm qua
	now = time.Date(2025, time.July, 16, 0, 30, 0, 0, time.FixedZone("UTC+13", 13*3600))
	if !beforeToday(mustParseDateFR(t, "15/07/2025"), now) {
		t.Error("hôm qua theo giờ local phải bị từ chối")
	}
}
