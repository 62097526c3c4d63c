package compositionmodels

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Đơn vị của một entry trái cây trong recipe
const (
	UnitPiece = "piece"
	UnitKg    = "kg"
)

// Quantity là tagged union cho số lượng trái cây trong recipe.
//
// Trên wire một entry có thể là số trần (đơn vị ngầm "piece") hoặc object
// {qty, unite}. Decode MỘT LẦN tại model boundary; mọi consumer phía sau
// đọc Qty/Unit thống nhất, không cần biết dạng lưu trữ gốc.
type Quantity struct {
	Qty  float64
	Unit string
}

// UnmarshalJSON decode cả hai dạng: số trần và object {qty, unite}
func (q *Quantity) UnmarshalJSON(data []byte) error {
	var bare float64
	if err := json.Unmarshal(data, &bare); err == nil {
		q.Qty = bare
		q.Unit = UnitPiece
		return nil
	}

	var obj struct {
		Qty  float64 `json:"qty"`
		Unit string  `json:"unite"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("quantity không phải số trần cũng không phải object {qty, unite}: %w", err)
	}
	q.Qty = obj.Qty
	q.Unit = obj.Unit
	if q.Unit == "" {
		q.Unit = UnitPiece
	}
	return nil
}

// MarshalJSON giữ dạng wire gọn nhất: piece encode thành số trần,
// kg encode thành object {qty, unite} để không mất đơn vị
func (q Quantity) MarshalJSON() ([]byte, error) {
	if q.Unit == UnitKg {
		return json.Marshal(struct {
			Qty  float64 `json:"qty"`
			Unit string  `json:"unite"`
		}{Qty: q.Qty, Unit: q.Unit})
	}
	return json.Marshal(q.Qty)
}

// Display format số lượng để hiển thị.
// kg giữ một chữ số thập phân ("2.5 kg" - không bao giờ làm tròn thành "3 kg");
// piece làm tròn về số nguyên gần nhất - CHỈ khi hiển thị, tích lũy vẫn full precision.
func (q Quantity) Display() string {
	if q.Unit == UnitKg {
		return strconv.FormatFloat(q.Qty, 'f', 1, 64) + " kg"
	}
	return strconv.FormatInt(int64(math.Round(q.Qty)), 10)
}
