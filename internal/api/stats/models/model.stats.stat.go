package statsmodels

// MonthlyStat là aggregate theo tháng, DERIVED thuần túy từ tập đơn hàng và
// tập composition tại thời điểm tính - không có source of truth riêng,
// luôn rebuild được bằng cách chạy lại aggregator.
//
// Row được persist phía backend chung bảng với composition, identifier
// dạng "stats-YYYY-MM".
type MonthlyStat struct {
	CompositionID string `json:"composition_id" bson:"composition_id"`
	Mois          string `json:"mois" bson:"mois"`
	PaniersTotal  int64  `json:"paniers_total" bson:"paniers_total"`
	StatsJSON     string `json:"stats_json" bson:"stats_json"`
	UpdatedAt     string `json:"updatedAt" bson:"updatedAt"`
}

// KPIs là các chỉ số tổng hợp trên một khoảng thời gian chọn (năm, hoặc một tháng)
type KPIs struct {
	TotalPaniers int64   `json:"total_paniers"`
	TotalFruits  float64 `json:"total_fruits"`
	TopFruit     string  `json:"top_fruit"`
}
