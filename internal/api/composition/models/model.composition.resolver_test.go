package compositionmodels

import (
	"testing"
)

func TestParseRecipe_ChuoiVaObject(t *testing.T) {
	// composition_json dạng chuỗi JSON-encoded
	recipe := ParseRecipe("comp-x", `{"pomme":3,"banane":{"qty":2.5,"unite":"kg"}}`)
	if len(recipe) != 2 {
		t.Fatalf("muốn 2 entries, nhận %d", len(recipe))
	}
	if recipe["pomme"].Qty != 3 || recipe["pomme"].Unit != UnitPiece {
		t.Errorf("pomme sai: %+v", recipe["pomme"])
	}
	if recipe["banane"].Qty != 2.5 || recipe["banane"].Unit != UnitKg {
		t.Errorf("banane sai: %+v", recipe["banane"])
	}

	// composition_json dạng object đã parse sẵn
	recipe = ParseRecipe("comp-x", map[string]interface{}{"pomme": float64(3)})
	if recipe["pomme"].Qty != 3 {
		t.Errorf("object đã parse sẵn phải cho cùng kết quả: %+v", recipe["pomme"])
	}
}

func TestParseRecipe_HongFallbackRong(t *testing.T) {
	// Parse thất bại → recipe rỗng, KHÔNG propagate lỗi
	for _, value := range []interface{}{"{rác json", "null", float64(42), ""} {
		recipe := ParseRecipe("comp-x", value)
		if recipe == nil {
			t.Errorf("%v: phải trả về map rỗng, không phải nil", value)
		}
		if len(recipe) != 0 {
			t.Errorf("%v: muốn recipe rỗng, nhận %d entries", value, len(recipe))
		}
	}
}

func TestBuildComposition_RecordThieuID(t *testing.T) {
	if _, ok := BuildComposition(map[string]interface{}{"nom": "Sans ID"}); ok {
		t.Error("record không có identifier phải bị loại")
	}
}

func TestBuildComposition_UuTienIdCompo(t *testing.T) {
	comp, ok := BuildComposition(map[string]interface{}{
		"id":       float64(99),
		"id_compo": "comp-ete-2025",
		"nom":      "Été",
	})
	if !ok {
		t.Fatal("phải build được")
	}
	if comp.IDCompo != "comp-ete-2025" {
		t.Errorf("id_compo phải thắng id: nhận %q", comp.IDCompo)
	}
}

func TestBuildCompositions_LocStatsRow(t *testing.T) {
	records := []map[string]interface{}{
		{"id_compo": "comp-ete-2025", "nom": "Été"},
		{"id_compo": "stats-2025-07", "mois": "2025-07"},
	}
	comps := BuildCompositions(records)
	if len(comps) != 1 || comps[0].IDCompo != "comp-ete-2025" {
		t.Errorf("row thống kê phải bị lọc khỏi danh sách composition, nhận %v", comps)
	}
}

func TestBuildLookup_TrungIDGiuBanMoiHon(t *testing.T) {
	older := Composition{IDCompo: "comp-ete", Nom: "Cũ", UpdatedAt: "2025-01-01T00:00:00Z"}
	newer := Composition{IDCompo: "comp-ete", Nom: "Mới", UpdatedAt: "2025-06-01T00:00:00Z"}

	// Deterministic với cả hai thứ tự input
	for _, comps := range [][]Composition{{older, newer}, {newer, older}} {
		lookup := BuildLookup(comps)
		if len(lookup) != 1 {
			t.Fatalf("muốn 1 entry, nhận %d", len(lookup))
		}
		if lookup["comp-ete"].Nom != "Mới" {
			t.Errorf("bản có updatedAt muộn hơn phải thắng, nhận %q", lookup["comp-ete"].Nom)
		}
	}
}

func TestBuildLookup_TrungIDCungNgayKhacGio(t *testing.T) {
	// updatedAt cùng ngày: bản sửa lúc 18h phải thắng bản 8h,
	// bất kể thứ tự input
	older := Composition{IDCompo: "comp-ete", Nom: "Sáng", UpdatedAt: "2025-07-03T08:00:00Z"}
	newer := Composition{IDCompo: "comp-ete", Nom: "Chiều", UpdatedAt: "2025-07-03T18:00:00Z"}

	for _, comps := range [][]Composition{{older, newer}, {newer, older}} {
		lookup := BuildLookup(comps)
		if lookup["comp-ete"].Nom != "Chiều" {
			t.Errorf("bản sửa muộn hơn trong cùng ngày phải thắng, nhận %q", lookup["comp-ete"].Nom)
		}
	}
}

func TestBuildLookup_FallbackCreatedAt(t *testing.T) {
	noUpdated := Composition{IDCompo: "comp-x", Nom: "A", CreatedAt: "2025-06-01T00:00:00Z"}
	older := Composition{IDCompo: "comp-x", Nom: "B", UpdatedAt: "2025-01-01T00:00:00Z"}

	lookup := BuildLookup([]Composition{older, noUpdated})
	if lookup["comp-x"].Nom != "A" {
		t.Errorf("thiếu updatedAt phải fallback createdAt để so recency, nhận %q", lookup["comp-x"].Nom)
	}
}

func TestDeduplicate_GiuThuTuInput(t *testing.T) {
	comps := []Composition{
		{IDCompo: "comp-a", Nom: "A"},
		{IDCompo: "comp-b", Nom: "B cũ", UpdatedAt: "2025-01-01T00:00:00Z"},
		{IDCompo: "comp-b", Nom: "B mới", UpdatedAt: "2025-06-01T00:00:00Z"},
		{IDCompo: "comp-c", Nom: "C"},
	}
	result := Deduplicate(comps)
	if len(result) != 3 {
		t.Fatalf("muốn 3 compositions, nhận %d", len(result))
	}
	if result[0].IDCompo != "comp-a" || result[1].IDCompo != "comp-b" || result[2].IDCompo != "comp-c" {
		t.Errorf("thứ tự input phải được giữ: %v", result)
	}
	if result[1].Nom != "B mới" {
		t.Errorf("bản mới hơn phải thắng trong dedup, nhận %q", result[1].Nom)
	}
}
