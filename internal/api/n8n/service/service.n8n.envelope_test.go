package n8nsvc

import (
	"encoding/json"
	"reflect"
	"testing"
)

// mustParse parse chuỗi JSON thành giá trị động cho test
func mustParse(t *testing.T, raw string) interface{} {
	t.Helper()
	var payload interface{}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("JSON test không hợp lệ: %v", err)
	}
	return payload
}

func TestNormalizeRecords_CacShapeTuongDuong(t *testing.T) {
	// Các shape bọc cùng một records phải cho ra cùng một kết quả
	variants := map[string]string{
		"mảng trần":         `[{"id":"1","Prenom":"Alice"},{"id":"2","Prenom":"Bob"}]`,
		"object data":       `{"data":[{"id":"1","Prenom":"Alice"},{"id":"2","Prenom":"Bob"}]}`,
		"property mảng khác": `{"commandes":[{"id":"1","Prenom":"Alice"},{"id":"2","Prenom":"Bob"}]}`,
	}

	var expected []map[string]interface{}
	for name, raw := range variants {
		records := NormalizeRecords(mustParse(t, raw))
		if len(records) != 2 {
			t.Fatalf("shape %s: muốn 2 records, nhận %d", name, len(records))
		}
		if expected == nil {
			expected = records
			continue
		}
		if !reflect.DeepEqual(records, expected) {
			t.Errorf("shape %s: kết quả khác với shape chuẩn", name)
		}
	}
}

func TestNormalizeRecords_WrapperMangMotPhanTu(t *testing.T) {
	// Wrapper mảng-một-phần-tử với data lồng bên trong phải thắng mảng trần
	payload := mustParse(t, `[{"success":true,"count":1,"data":[{"id":1,"Prenom":"A","Nom":"B"}]}]`)

	records := NormalizeRecords(payload)
	if len(records) != 1 {
		t.Fatalf("muốn 1 record, nhận %d", len(records))
	}
	if records[0]["Prenom"] != "A" {
		t.Errorf("muốn Prenom=A, nhận %v", records[0]["Prenom"])
	}
}

func TestNormalizeRecords_SuccessDataKhongPhaiMang(t *testing.T) {
	payload := mustParse(t, `{"success":true,"data":{"message":"ok"}}`)

	records := NormalizeRecords(payload)
	if len(records) != 0 {
		t.Errorf("success với data không phải mảng phải cho kết quả rỗng, nhận %d records", len(records))
	}
}

func TestNormalizeRecords_MapIdRecord(t *testing.T) {
	payload := mustParse(t, `{"7":{"Prenom":"Alice"},"3":{"id":"abc","Prenom":"Bob"}}`)

	records := NormalizeRecords(payload)
	if len(records) != 2 {
		t.Fatalf("muốn 2 records, nhận %d", len(records))
	}

	// Duyệt theo key sort: "3" trước "7". Record có field id riêng giữ id đó.
	if records[0]["id"] != "abc" {
		t.Errorf("record có id riêng phải giữ id đó, nhận %v", records[0]["id"])
	}
	if records[1]["id"] != "7" {
		t.Errorf("record không có id riêng phải lấy map key làm id, nhận %v", records[1]["id"])
	}
}

func TestNormalizeRecords_ShapeKhongNhanDien(t *testing.T) {
	cases := []string{
		`"một chuỗi"`,
		`42`,
		`{"success":false}`,
		`null`,
	}
	for _, raw := range cases {
		records := NormalizeRecords(mustParse(t, raw))
		if records == nil {
			t.Errorf("payload %s: kết quả phải là slice rỗng, không phải nil", raw)
		}
		if len(records) != 0 {
			t.Errorf("payload %s: muốn 0 records, nhận %d", raw, len(records))
		}
	}
}

func TestNormalizeRecords_PhanTuKhongPhaiObjectBiLoai(t *testing.T) {
	payload := mustParse(t, `[{"id":"1"},"rác",42,{"id":"2"}]`)

	records := NormalizeRecords(payload)
	if len(records) != 2 {
		t.Errorf("phần tử không phải object phải bị loại, muốn 2 records, nhận %d", len(records))
	}
}

func TestUnwrapCompositionPayload_DoubleWrap(t *testing.T) {
	payload := mustParse(t, `{"compositions":{"compositions":[{"id_compo":"comp-ete","nom":"Été"}]}}`)

	records := UnwrapCompositionPayload(payload)
	if len(records) != 1 {
		t.Fatalf("double-wrap phải được gỡ, muốn 1 record, nhận %d", len(records))
	}
	if records[0]["id_compo"] != "comp-ete" {
		t.Errorf("muốn id_compo=comp-ete, nhận %v", records[0]["id_compo"])
	}
}

func TestUnwrapCompositionPayload_ShapeThuong(t *testing.T) {
	// Payload không double-wrap vẫn phải đi qua normalizer bình thường
	payload := mustParse(t, `{"data":[{"id_compo":"comp-hiver"}]}`)

	records := UnwrapCompositionPayload(payload)
	if len(records) != 1 || records[0]["id_compo"] != "comp-hiver" {
		t.Errorf("payload thường phải normalize bình thường, nhận %v", records)
	}
}
