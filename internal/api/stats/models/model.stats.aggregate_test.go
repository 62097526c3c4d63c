package statsmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	compositionmodels "panier_commerce/internal/api/composition/models"
	ordermodels "panier_commerce/internal/api/order/models"
)

func strPtr(s string) *string { return &s }

func eteLookup() map[string]compositionmodels.Composition {
	return map[string]compositionmodels.Composition{
		"comp-ete-2025": {
			IDCompo: "comp-ete-2025",
			Nom:     "Été 2025",
			Recipe: map[string]compositionmodels.Quantity{
				"pomme":  {Qty: 3, Unit: compositionmodels.UnitPiece},
				"banane": {Qty: 2, Unit: compositionmodels.UnitPiece},
			},
		},
	}
}

func TestAggregate_ScenarioEte2025(t *testing.T) {
	// Recipe {pomme: 3, banane: 2}, 4 paniers trong 2025-07
	// → paniers_total = 4, stats_json = {banane: 8, pomme: 12}
	orders := []ordermodels.Order{
		{ID: "1", Nom: "Dupont", DateRecuperation: "15/07/2025", NombrePaniers: 4, CompositionID: strPtr("comp-ete-2025")},
	}

	stats := Aggregate(orders, eteLookup(), time.Now())
	require.Len(t, stats, 1, "muốn đúng 1 tháng")

	stat := stats[0]
	assert.Equal(t, "2025-07", stat.Mois)
	assert.Equal(t, "stats-2025-07", stat.CompositionID)
	assert.Equal(t, int64(4), stat.PaniersTotal)
	assert.Equal(t, `{"banane":8,"pomme":12}`, stat.StatsJSON, "keys phải sort tăng dần")
}

func TestAggregate_Idempotence(t *testing.T) {
	// Hai lần tính trên cùng input phải cho stats_json byte-identical
	orders := []ordermodels.Order{
		{ID: "1", Nom: "A", DateRecuperation: "15/07/2025", NombrePaniers: 4, CompositionID: strPtr("comp-ete-2025")},
		{ID: "2", Nom: "B", DateRecuperation: "20/07/2025", NombrePaniers: 2, CompositionID: strPtr("comp-ete-2025")},
		{ID: "3", Nom: "C", DateRecuperation: "01/08/2025", NombrePaniers: 1, CompositionID: strPtr("comp-ete-2025")},
	}

	first := Aggregate(orders, eteLookup(), time.Now())
	second := Aggregate(orders, eteLookup(), time.Now())
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].StatsJSON, second[i].StatsJSON, "tháng %s", first[i].Mois)
		assert.Equal(t, first[i].PaniersTotal, second[i].PaniersTotal)
	}
}

func TestAggregate_NgayKhongParseDuocLoaiHoanToan(t *testing.T) {
	orders := []ordermodels.Order{
		{ID: "1", Nom: "A", DateRecuperation: "rác", NombrePaniers: 4, CompositionID: strPtr("comp-ete-2025")},
		{ID: "2", Nom: "B", DateRecuperation: "", NombrePaniers: 2, CompositionID: strPtr("comp-ete-2025")},
	}
	stats := Aggregate(orders, eteLookup(), time.Now())
	assert.Empty(t, stats, "đơn hàng không có ngày hợp lệ không được gán vào tháng nào")
}

func TestAggregate_CompositionKhongResolveLoaiCaDonHang(t *testing.T) {
	// Chính sách nhất quán: composition_id không resolve được
	// → loại đơn hàng khỏi tháng hoàn toàn, panier CŨNG KHÔNG đếm
	orders := []ordermodels.Order{
		{ID: "1", Nom: "A", DateRecuperation: "15/07/2025", NombrePaniers: 4, CompositionID: strPtr("comp-ete-2025")},
		{ID: "2", Nom: "B", DateRecuperation: "16/07/2025", NombrePaniers: 10, CompositionID: strPtr("comp-inconnu")},
		{ID: "3", Nom: "C", DateRecuperation: "17/07/2025", NombrePaniers: 7, CompositionID: nil},
	}

	stats := Aggregate(orders, eteLookup(), time.Now())
	require.Len(t, stats, 1)
	assert.Equal(t, int64(4), stats[0].PaniersTotal, "chỉ đơn hàng resolve được mới đếm panier")
}

func TestAggregate_TenTraiCayChuanHoa(t *testing.T) {
	// "Pomme" và "pomme " phải tích lũy vào CÙNG một entry
	lookup := map[string]compositionmodels.Composition{
		"comp-a": {IDCompo: "comp-a", Recipe: map[string]compositionmodels.Quantity{
			"Pomme": {Qty: 1, Unit: compositionmodels.UnitPiece},
		}},
		"comp-b": {IDCompo: "comp-b", Recipe: map[string]compositionmodels.Quantity{
			"pomme ": {Qty: 2, Unit: compositionmodels.UnitPiece},
		}},
	}
	orders := []ordermodels.Order{
		{ID: "1", Nom: "A", DateRecuperation: "15/07/2025", NombrePaniers: 1, CompositionID: strPtr("comp-a")},
		{ID: "2", Nom: "B", DateRecuperation: "16/07/2025", NombrePaniers: 1, CompositionID: strPtr("comp-b")},
	}

	stats := Aggregate(orders, lookup, time.Now())
	require.Len(t, stats, 1)
	assert.Equal(t, `{"pomme":3}`, stats[0].StatsJSON)
}

func TestAggregate_KgGiuPhanThapPhan(t *testing.T) {
	lookup := map[string]compositionmodels.Composition{
		"comp-kg": {IDCompo: "comp-kg", Recipe: map[string]compositionmodels.Quantity{
			"fraise": {Qty: 2.5, Unit: compositionmodels.UnitKg},
		}},
	}
	orders := []ordermodels.Order{
		{ID: "1", Nom: "A", DateRecuperation: "15/07/2025", NombrePaniers: 3, CompositionID: strPtr("comp-kg")},
	}

	stats := Aggregate(orders, lookup, time.Now())
	require.Len(t, stats, 1)
	assert.Equal(t, `{"fraise":{"qty":7.5,"unite":"kg"}}`, stats[0].StatsJSON, "kg giữ full precision và đơn vị")
}

func TestComputeKPIs(t *testing.T) {
	stats := []MonthlyStat{
		{Mois: "2025-07", PaniersTotal: 4, StatsJSON: `{"banane":8,"pomme":12}`},
		{Mois: "2025-08", PaniersTotal: 2, StatsJSON: `{"pomme":6}`},
	}

	kpis := ComputeKPIs(stats)
	assert.Equal(t, int64(6), kpis.TotalPaniers)
	assert.Equal(t, 26.0, kpis.TotalFruits)
	assert.Equal(t, "pomme", kpis.TopFruit)
}

func TestComputeKPIs_HoaChonTheoAlphabet(t *testing.T) {
	stats := []MonthlyStat{
		{Mois: "2025-07", PaniersTotal: 1, StatsJSON: `{"poire":5,"abricot":5}`},
	}
	kpis := ComputeKPIs(stats)
	assert.Equal(t, "abricot", kpis.TopFruit, "hòa phải chọn theo thứ tự alphabet")
}

func TestComputeKPIs_Rong(t *testing.T) {
	kpis := ComputeKPIs(nil)
	assert.Equal(t, int64(0), kpis.TotalPaniers)
	assert.Equal(t, "", kpis.TopFruit)
}

func TestFilterByPeriod(t *testing.T) {
	stats := []MonthlyStat{
		{Mois: "2024-12"},
		{Mois: "2025-07"},
		{Mois: "2025-08"},
	}

	assert.Len(t, FilterByPeriod(stats, "2025", ""), 2)
	assert.Len(t, FilterByPeriod(stats, "2025", "2025-07"), 1)
	assert.Len(t, FilterByPeriod(stats, "2023", ""), 0)
}
