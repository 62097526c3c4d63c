package utility

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	dateFrPattern  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	dateISOPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
	nonSlugPattern = regexp.MustCompile(`[^a-z0-9]+`)
)

// ParseDateFR parse chuỗi ngày theo hai định dạng chấp nhận: DD/MM/YYYY và ISO 8601.
//
//   - DD/MM/YYYY: parse positional (ngày, tháng, năm) - KHÔNG dùng parser locale
//     để tránh nhầm lẫn ngày/tháng.
//   - YYYY-MM-DD (ISO date-only, kể cả có giờ phía sau): đổi thứ tự field trực tiếp.
//   - Chuỗi khác: thử lần lượt các layout chung; thất bại trả về ok=false,
//     caller phải coi ngày của record là "không xác định" thay vì crash.
func ParseDateFR(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if m := dateFrPattern.FindStringSubmatch(s); m != nil {
		t, err := time.Parse("2/1/2006", fmt.Sprintf("%s/%s/%s", m[1], m[2], m[3]))
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	if m := dateISOPattern.FindStringSubmatch(s); m != nil {
		t, err := time.Parse("2006-01-02", fmt.Sprintf("%s-%s-%s", m[1], m[2], m[3]))
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	// Generic fallback cho các định dạng khác
	for _, layout := range []string{
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// ParseTimestamp parse chuỗi timestamp GIỮ NGUYÊN giờ-phút-giây.
//
// Khác với ParseDateFR (chuẩn hóa về ngày), hàm này dành cho so sánh recency:
// hai bản ghi sửa cùng ngày vẫn phải phân biệt được bằng giờ. Chuỗi chỉ có
// ngày fallback về ParseDateFR.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range []string{
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return ParseDateFR(s)
}

// FormatDateFR format ngày về DD/MM/YYYY zero-padded.
// Đây là wire format cố định với webhook - không được đổi nếu chưa migrate phía backend.
func FormatDateFR(t time.Time) string {
	return t.Format("02/01/2006")
}

// MonthKey trả về khóa tháng YYYY-MM từ một ngày
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// MonthKeyFromDateString parse chuỗi ngày rồi trả về khóa tháng YYYY-MM.
// Trả về ("", false) nếu ngày không parse được.
func MonthKeyFromDateString(s string) (string, bool) {
	t, ok := ParseDateFR(s)
	if !ok {
		return "", false
	}
	return MonthKey(t), true
}

// FormatTelephone format số điện thoại để hiển thị: bỏ hết khoảng trắng
// rồi chèn khoảng trắng sau mỗi 2 chữ số ("0612345678" → "06 12 34 56 78").
func FormatTelephone(phone string) string {
	compact := strings.Join(strings.Fields(phone), "")
	if compact == "" {
		return ""
	}

	var b strings.Builder
	for i, r := range compact {
		if i > 0 && i%2 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// accentReplacer bỏ dấu tiếng Pháp khi sinh slug
var accentReplacer = strings.NewReplacer(
	"à", "a", "â", "a", "ä", "a",
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"ï", "i", "î", "i",
	"ô", "o", "ö", "o",
	"ù", "u", "û", "u", "ü", "u",
	"ç", "c",
	"œ", "oe", "æ", "ae",
)

// SlugifyCompositionID sinh identifier composition từ tên hiển thị:
// "comp-" + tên chữ thường bỏ dấu, ký tự không phải chữ/số thay bằng gạch ngang,
// cắt tối đa 30 ký tự. Identifier bất biến sau khi tạo.
func SlugifyCompositionID(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = accentReplacer.Replace(s)
	s = nonSlugPattern.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > 30 {
		s = s[:30]
		s = strings.Trim(s, "-")
	}
	return "comp-" + s
}
