package compositionmodels

import (
	"encoding/json"
	"testing"
)

func TestQuantity_DecodeSoTran(t *testing.T) {
	var q Quantity
	if err := json.Unmarshal([]byte(`3`), &q); err != nil {
		t.Fatalf("số trần phải decode được: %v", err)
	}
	if q.Qty != 3 || q.Unit != UnitPiece {
		t.Errorf("số trần phải có đơn vị ngầm piece, nhận %+v", q)
	}
}

func TestQuantity_DecodeObject(t *testing.T) {
	var q Quantity
	if err := json.Unmarshal([]byte(`{"qty":2.5,"unite":"kg"}`), &q); err != nil {
		t.Fatalf("object phải decode được: %v", err)
	}
	if q.Qty != 2.5 || q.Unit != UnitKg {
		t.Errorf("muốn 2.5 kg, nhận %+v", q)
	}

	// Object thiếu unite mặc định piece
	if err := json.Unmarshal([]byte(`{"qty":4}`), &q); err != nil {
		t.Fatalf("object thiếu unite phải decode được: %v", err)
	}
	if q.Unit != UnitPiece {
		t.Errorf("unite thiếu phải mặc định piece, nhận %q", q.Unit)
	}
}

func TestQuantity_Display(t *testing.T) {
	cases := []struct {
		q        Quantity
		expected string
	}{
		{Quantity{Qty: 2.5, Unit: UnitKg}, "2.5 kg"}, // không bao giờ làm tròn thành 3 kg hay 2 kg
		{Quantity{Qty: 2, Unit: UnitKg}, "2.0 kg"},
		{Quantity{Qty: 3, Unit: UnitPiece}, "3"},
		{Quantity{Qty: 2.6, Unit: UnitPiece}, "3"}, // piece làm tròn CHỈ khi hiển thị
		{Quantity{Qty: 2.4, Unit: UnitPiece}, "2"},
	}
	for _, c := range cases {
		if got := c.q.Display(); got != c.expected {
			t.Errorf("%+v: muốn %q, nhận %q", c.q, c.expected, got)
		}
	}
}

func TestQuantity_MarshalRoundTrip(t *testing.T) {
	// piece encode thành số trần
	data, err := json.Marshal(Quantity{Qty: 3, Unit: UnitPiece})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "3" {
		t.Errorf("piece phải encode thành số trần, nhận %s", data)
	}

	// kg encode thành object giữ đơn vị
	data, err = json.Marshal(Quantity{Qty: 2.5, Unit: UnitKg})
	if err != nil {
		t.Fatal(err)
	}
	var back Quantity
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Qty != 2.5 || back.Unit != UnitKg {
		t.Errorf("kg round-trip sai: %+v", back)
	}
}
