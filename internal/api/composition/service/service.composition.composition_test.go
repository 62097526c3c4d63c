package compositionsvc

import (
	"context"
	"testing"

	compositionmodels "panier_commerce/internal/api/composition/models"
)

func TestLookup_MemoChiaSeGiuaCacInstance(t *testing.T) {
	lookupMemo.Delete(lookupCacheKey)
	defer lookupMemo.Delete(lookupCacheKey)

	memoized := map[string]compositionmodels.Composition{
		"comp-ete-2025": {IDCompo: "comp-ete-2025", Nom: "Été 2025"},
	}
	lookupMemo.Set(lookupCacheKey, memoized)

	// Hit path không gọi webhook nên instance rỗng vẫn đọc được memo
	reader := &CompositionService{}
	lookup, err := reader.Lookup(context.Background())
	if err != nil {
		t.Fatalf("hit path không được trả lỗi: %v", err)
	}
	if lookup["comp-ete-2025"].Nom != "Été 2025" {
		t.Errorf("memo phải đọc được từ instance khác, nhận %+v", lookup)
	}
}

func TestInvalidateLookup_ThayDuocTuMoiInstance(t *testing.T) {
	lookupMemo.Delete(lookupCacheKey)
	defer lookupMemo.Delete(lookupCacheKey)

	lookupMemo.Set(lookupCacheKey, map[string]compositionmodels.Composition{
		"comp-ete-2025": {IDCompo: "comp-ete-2025"},
	})

	// Instance thực hiện thao tác ghi khác instance đang giữ memo:
	// invalidation vẫn phải có hiệu lực với mọi reader (kể cả stats path)
	writer := &CompositionService{}
	writer.invalidateLookup()

	if _, ok := lookupMemo.Get(lookupCacheKey); ok {
		t.Error("sau invalidation, memo phải miss ở mọi instance")
	}
}
