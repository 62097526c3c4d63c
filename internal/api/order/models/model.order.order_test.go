package ordermodels

import (
	"testing"
)

func TestBuildOrder_RecordHongBiLoai(t *testing.T) {
	corrupt := []map[string]interface{}{
		{"id": "1", "Email": "x@y.fr"},
		{"id": "2", "Prenom": "", "Nom": ""},
		{"id": "3", "Prenom": nil, "Nom": nil},
	}
	for _, record := range corrupt {
		if _, ok := BuildOrder(record); ok {
			t.Errorf("record %v thiếu cả prenom lẫn nom phải bị loại", record["id"])
		}
	}

	// Chỉ cần MỘT trong hai tên là đủ
	if _, ok := BuildOrder(map[string]interface{}{"Nom": "Dupont"}); !ok {
		t.Error("record chỉ có nom vẫn phải được giữ")
	}
	if _, ok := BuildOrder(map[string]interface{}{"prenom": "Alice"}); !ok {
		t.Error("record chỉ có prenom vẫn phải được giữ")
	}
}

func TestBuildOrders_SoLuongSauLoc(t *testing.T) {
	records := []map[string]interface{}{
		{"Prenom": "Alice", "Nom": "Dupont"},
		{"Email": "fantome@y.fr"}, // hỏng
		{"Nom": "Martin"},
	}
	orders := BuildOrders(records)
	if len(orders) != 2 {
		t.Errorf("muốn 2 orders sau khi loại record hỏng, nhận %d", len(orders))
	}
}

func TestBuildOrder_AliasNgayLayHang(t *testing.T) {
	cases := []map[string]interface{}{
		{"Nom": "A", "Date_Recuperation": "15/07/2025"},
		{"Nom": "A", "date_recuperation": "15/07/2025"},
		{"Nom": "A", "DateRecuperation": "2025-07-15"},
		{"Nom": "A", "dateRecuperation": "15/7/2025"},
	}
	for i, record := range cases {
		order, ok := BuildOrder(record)
		if !ok {
			t.Fatalf("case %d: phải build được", i)
		}
		if order.DateRecuperation != "15/07/2025" {
			t.Errorf("case %d: muốn 15/07/2025 (chuẩn hóa zero-pad), nhận %s", i, order.DateRecuperation)
		}
	}
}

func TestBuildOrder_UuTienAlias(t *testing.T) {
	// Alias đứng trước trong bảng phải thắng
	order, _ := BuildOrder(map[string]interface{}{
		"Nom":               "A",
		"Date_Recuperation": "01/01/2025",
		"date_recuperation": "02/02/2025",
	})
	if order.DateRecuperation != "01/01/2025" {
		t.Errorf("Date_Recuperation phải thắng date_recuperation, nhận %s", order.DateRecuperation)
	}
}

func TestBuildOrder_CompositionIDNullSemantics(t *testing.T) {
	// Thiếu field → nil, không phải ""
	order, _ := BuildOrder(map[string]interface{}{"Nom": "A"})
	if order.CompositionID != nil {
		t.Errorf("thiếu composition_id phải là nil, nhận %v", *order.CompositionID)
	}

	// null tường minh → nil
	order, _ = BuildOrder(map[string]interface{}{"Nom": "A", "composition_id": nil})
	if order.CompositionID != nil {
		t.Error("composition_id null phải là nil")
	}

	// Có giá trị → giữ verbatim
	order, _ = BuildOrder(map[string]interface{}{"Nom": "A", "compositionId": "comp-ete-2025"})
	if order.CompositionID == nil || *order.CompositionID != "comp-ete-2025" {
		t.Errorf("composition_id phải giữ verbatim, nhận %v", order.CompositionID)
	}
}

func TestBuildOrder_NombrePaniersMacDinh(t *testing.T) {
	cases := []map[string]interface{}{
		{"Nom": "A"},                               // thiếu
		{"Nom": "A", "nombrePaniers": "rác"},       // không parse được
		{"Nom": "A", "Nombre_Paniers": float64(0)}, // không dương
	}
	for i, record := range cases {
		order, _ := BuildOrder(record)
		if order.NombrePaniers != 1 {
			t.Errorf("case %d: số panier mặc định phải là 1, nhận %d", i, order.NombrePaniers)
		}
	}

	order, _ := BuildOrder(map[string]interface{}{"Nom": "A", "nombrePaniers": float64(4)})
	if order.NombrePaniers != 4 {
		t.Errorf("muốn 4 paniers, nhận %d", order.NombrePaniers)
	}
}

func TestCanonicalStatus(t *testing.T) {
	cases := map[string]string{
		"Prêt":       StatusReady,
		"pret":       StatusReady,
		"PRÊT":       StatusReady,
		"Livré":      StatusDelivered,
		"livre":      StatusDelivered,
		"En attente": StatusPending,
		"en attente": StatusPending,
		"":           StatusPending,
		"giá trị lạ": StatusPending, // giá trị lạ hiển thị là En attente
	}
	for input, expected := range cases {
		if got := CanonicalStatus(input); got != expected {
			t.Errorf("%q: muốn %q, nhận %q", input, expected, got)
		}
	}
}

func TestBuildOrder_EtatGiuVerbatim(t *testing.T) {
	order, _ := BuildOrder(map[string]interface{}{"Nom": "A", "etat": "Expédié"})
	if order.Etat != "Expédié" {
		t.Errorf("etat thô phải giữ verbatim, nhận %q", order.Etat)
	}
	if order.EtatAffiche != StatusPending {
		t.Errorf("etat lạ phải hiển thị En attente, nhận %q", order.EtatAffiche)
	}
}

func TestBuildOrder_TelephoneAffiche(t *testing.T) {
	order, _ := BuildOrder(map[string]interface{}{"Nom": "A", "telephone": "0612345678"})
	if order.TelephoneAffiche != "06 12 34 56 78" {
		t.Errorf("muốn '06 12 34 56 78', nhận %q", order.TelephoneAffiche)
	}
}

func TestBuildOrder_IDDangSo(t *testing.T) {
	// ID số từ JSON (float64) phải thành chuỗi không có phần thập phân
	order, _ := BuildOrder(map[string]interface{}{"Nom": "A", "id": float64(42)})
	if order.ID != "42" {
		t.Errorf("muốn ID '42', nhận %q", order.ID)
	}
}
