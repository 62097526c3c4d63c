package utility

import (
	"testing"
	"time"
)

func TestParseDateFR_DinhDangPhap(t *testing.T) {
	cases := []struct {
		input string
		day   int
		month time.Month
		year  int
	}{
		{"15/07/2025", 15, time.July, 2025},
		{"1/2/2025", 1, time.February, 2025}, // không zero-pad vẫn parse được
		{"31/12/2024", 31, time.December, 2024},
	}

	for _, c := range cases {
		parsed, ok := ParseDateFR(c.input)
		if !ok {
			t.Fatalf("%s: phải parse được", c.input)
		}
		if parsed.Day() != c.day || parsed.Month() != c.month || parsed.Year() != c.year {
			t.Errorf("%s: parse sai, nhận %v", c.input, parsed)
		}
	}
}

func TestParseDateFR_KhongNhamNgayThang(t *testing.T) {
	// 03/07 là ngày 3 tháng 7, KHÔNG phải ngày 7 tháng 3
	parsed, ok := ParseDateFR("03/07/2025")
	if !ok {
		t.Fatal("phải parse được")
	}
	if parsed.Day() != 3 || parsed.Month() != time.July {
		t.Errorf("parse positional sai: nhận ngày %d tháng %d", parsed.Day(), parsed.Month())
	}
}

func TestParseDateFR_ISO(t *testing.T) {
	for _, input := range []string{"2025-07-15", "2025-07-15T10:30:00Z", "2025-07-15 10:30:00"} {
		parsed, ok := ParseDateFR(input)
		if !ok {
			t.Fatalf("%s: phải parse được", input)
		}
		if parsed.Day() != 15 || parsed.Month() != time.July || parsed.Year() != 2025 {
			t.Errorf("%s: parse sai, nhận %v", input, parsed)
		}
	}
}

func TestParseDateFR_ChuoiHong(t *testing.T) {
	for _, input := range []string{"", "không phải ngày", "32/13/2025", "99/99/9999"} {
		if _, ok := ParseDateFR(input); ok {
			t.Errorf("%q: không được parse thành công", input)
		}
	}
}

func TestParseTimestamp_GiuGioPhutGiay(t *testing.T) {
	// Hai timestamp cùng ngày khác giờ phải phân biệt được khi so recency
	morning, ok := ParseTimestamp("2025-07-03T08:00:00Z")
	if !ok {
		t.Fatal("phải parse được")
	}
	evening, ok := ParseTimestamp("2025-07-03T18:00:00Z")
	if !ok {
		t.Fatal("phải parse được")
	}
	if !evening.After(morning) {
		t.Errorf("18h phải sau 8h cùng ngày: %v vs %v", evening, morning)
	}
	if morning.Hour() != 8 {
		t.Errorf("giờ phải được giữ nguyên, nhận %d", morning.Hour())
	}
}

func TestParseTimestamp_FallbackNgay(t *testing.T) {
	// Chuỗi chỉ có ngày vẫn parse được (fallback ParseDateFR)
	for _, input := range []string{"15/07/2025", "2025-07-15"} {
		parsed, ok := ParseTimestamp(input)
		if !ok {
			t.Fatalf("%s: phải parse được", input)
		}
		if parsed.Day() != 15 || parsed.Month() != time.July {
			t.Errorf("%s: parse sai, nhận %v", input, parsed)
		}
	}

	if _, ok := ParseTimestamp("rác"); ok {
		t.Error("chuỗi hỏng không được parse thành công")
	}
}

func TestFormatDateFR_RoundTrip(t *testing.T) {
	// Format rồi parse lại phải ra cùng ngày (độ chính xác ngày)
	for _, input := range []string{"5/1/2025", "15/07/2025", "2024-02-29"} {
		parsed, ok := ParseDateFR(input)
		if !ok {
			t.Fatalf("%s: phải parse được", input)
		}
		formatted := FormatDateFR(parsed)
		reparsed, ok := ParseDateFR(formatted)
		if !ok {
			t.Fatalf("%s: output %s phải parse lại được", input, formatted)
		}
		if !parsed.Equal(reparsed) {
			t.Errorf("%s: round-trip sai, %v != %v", input, parsed, reparsed)
		}
	}
}

func TestFormatDateFR_ZeroPad(t *testing.T) {
	parsed, _ := ParseDateFR("5/1/2025")
	if got := FormatDateFR(parsed); got != "05/01/2025" {
		t.Errorf("wire format phải zero-pad, nhận %s", got)
	}
}

func TestMonthKey(t *testing.T) {
	key, ok := MonthKeyFromDateString("15/07/2025")
	if !ok || key != "2025-07" {
		t.Errorf("muốn 2025-07, nhận %s (ok=%v)", key, ok)
	}
	if _, ok := MonthKeyFromDateString("rác"); ok {
		t.Error("chuỗi hỏng không được cho ra month key")
	}
}

func TestFormatTelephone(t *testing.T) {
	cases := map[string]string{
		"0612345678":     "06 12 34 56 78",
		"06 12 345 678":  "06 12 34 56 78", // khoảng trắng cũ bị bỏ trước khi nhóm lại
		"":               "",
	}
	for input, expected := range cases {
		if got := FormatTelephone(input); got != expected {
			t.Errorf("%q: muốn %q, nhận %q", input, expected, got)
		}
	}
}

func TestSlugifyCompositionID(t *testing.T) {
	cases := map[string]string{
		"Panier d'Été":    "comp-panier-d-ete",
		"Noël & Fêtes":    "comp-noel-fetes",
		"  Printemps  ":   "comp-printemps",
		"Pommes/Poires":   "comp-pommes-poires",
	}
	for input, expected := range cases {
		if got := SlugifyCompositionID(input); got != expected {
			t.Errorf("%q: muốn %q, nhận %q", input, expected, got)
		}
	}
}

func TestSlugifyCompositionID_GioiHanDoDai(t *testing.T) {
	got := SlugifyCompositionID("Une composition avec un nom vraiment très très long")
	if len(got) > len("comp-")+30 {
		t.Errorf("slug vượt quá giới hạn 30 ký tự: %q (%d)", got, len(got))
	}
}
