package ordersvc

import (
	"testing"

	ordermodels "panier_commerce/internal/api/order/models"
)

func sampleOrders() []ordermodels.Order {
	return []ordermodels.Order{
		{ID: "1", Prenom: "Alice", Nom: "Dupont", Email: "alice@ex.fr", Telephone: "0612345678", DateRecuperation: "15/07/2025", EtatAffiche: ordermodels.StatusPending},
		{ID: "2", Prenom: "Bob", Nom: "Martin", Email: "bob@ex.fr", Telephone: "0698765432", DateRecuperation: "10/07/2025", EtatAffiche: ordermodels.StatusReady},
		{ID: "3", Prenom: "Chloé", Nom: "Bernard", Email: "chloe@ex.fr", Telephone: "0711223344", DateRecuperation: "15/07/2025", EtatAffiche: ordermodels.StatusPending},
		{ID: "4", Prenom: "David", Nom: "Dupont", Email: "david@ex.fr", Telephone: "0755667788", DateRecuperation: "01/08/2025", EtatAffiche: ordermodels.StatusDelivered},
	}
}

func ids(orders []ordermodels.Order) []string {
	result := make([]string, len(orders))
	for i, o := range orders {
		result[i] = o.ID
	}
	return result
}

func assertIDs(t *testing.T, got []ordermodels.Order, expected ...string) {
	t.Helper()
	actual := ids(got)
	if len(actual) != len(expected) {
		t.Fatalf("muốn %v, nhận %v", expected, actual)
	}
	for i := range expected {
		if actual[i] != expected[i] {
			t.Fatalf("muốn %v, nhận %v", expected, actual)
		}
	}
}

func TestFilterAndSort_StatusChinhXac(t *testing.T) {
	got := FilterAndSort(sampleOrders(), ordermodels.StatusPending, "", SortDateAsc)
	assertIDs(t, got, "1", "3")
}

func TestFilterAndSort_AllVaTousBoQuaFilter(t *testing.T) {
	for _, status := range []string{"all", "tous", "ALL", ""} {
		got := FilterAndSort(sampleOrders(), status, "", SortDateAsc)
		if len(got) != 4 {
			t.Errorf("status %q phải bỏ qua filter, nhận %d orders", status, len(got))
		}
	}
}

func TestFilterAndSort_QueryMotKyTuKhongLoc(t *testing.T) {
	// Query độ dài 1 = không filter, KHÔNG phải match rỗng
	all := FilterAndSort(sampleOrders(), "all", "", SortDateAsc)
	short := FilterAndSort(sampleOrders(), "all", "a", SortDateAsc)
	if len(short) != len(all) {
		t.Errorf("query 1 ký tự phải cho cùng tập với không query: %d != %d", len(short), len(all))
	}

	// Chỉ toàn khoảng trắng cũng là không filter
	spaces := FilterAndSort(sampleOrders(), "all", "  a ", SortDateAsc)
	if len(spaces) != len(all) {
		t.Errorf("query trim còn 1 ký tự phải cho cùng tập, nhận %d", len(spaces))
	}
}

func TestFilterAndSort_QueryThuHep(t *testing.T) {
	got := FilterAndSort(sampleOrders(), "all", "dupont", SortDateAsc)
	if len(got) != 2 {
		t.Fatalf("muốn 2 kết quả cho 'dupont', nhận %d", len(got))
	}

	// OR trên cả email và telephone, không phân biệt hoa thường
	got = FilterAndSort(sampleOrders(), "all", "BOB@", SortDateAsc)
	assertIDs(t, got, "2")

	got = FilterAndSort(sampleOrders(), "all", "0711", SortDateAsc)
	assertIDs(t, got, "3")
}

func TestFilterAndSort_SortOnDinh(t *testing.T) {
	// Hai order cùng ngày 15/07 phải giữ thứ tự input (1 trước 3)
	got := FilterAndSort(sampleOrders(), "all", "", SortDateAsc)
	assertIDs(t, got, "2", "1", "3", "4")

	got = FilterAndSort(sampleOrders(), "all", "", SortDateDesc)
	assertIDs(t, got, "4", "1", "3", "2")
}

func TestFilterAndSort_SortTheoNom(t *testing.T) {
	got := FilterAndSort(sampleOrders(), "all", "", SortNomAsc)
	assertIDs(t, got, "3", "1", "4", "2")

	// Hai Dupont giữ thứ tự input khi sort theo nom
	got = FilterAndSort(sampleOrders(), "all", "", SortNomDesc)
	assertIDs(t, got, "2", "1", "4", "3")
}

func TestFilterAndSort_KhongMutateInput(t *testing.T) {
	orders := sampleOrders()
	FilterAndSort(orders, "all", "", SortDateDesc)
	if orders[0].ID != "1" {
		t.Error("input không được bị mutate bởi sort")
	}
}
