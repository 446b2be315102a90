//go:build unit

package order_test

import (
	"testing"

	"arttoy-storefront/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestClampQuantity(t *testing.T) {
	t.Run("在庫とシーリング内のステップはそのまま通る", func(t *testing.T) {
		assert.Equal(t, 2, order.ClampQuantity(1, 1, 10, order.PolicyCeiling))
		assert.Equal(t, 1, order.ClampQuantity(2, -1, 10, order.PolicyCeiling))
	})

	t.Run("シーリングで頭打ちになる", func(t *testing.T) {
		assert.Equal(t, 5, order.ClampQuantity(5, 1, 10, order.PolicyCeiling))
	})

	t.Run("在庫が少ないときは在庫で頭打ちになる", func(t *testing.T) {
		// quota 3: stepping up from 3 stays at 3
		assert.Equal(t, 3, order.ClampQuantity(3, 1, 3, order.PolicyCeiling))
	})

	t.Run("下限は常に1", func(t *testing.T) {
		assert.Equal(t, 1, order.ClampQuantity(1, -1, 10, order.PolicyCeiling))
		assert.Equal(t, 1, order.ClampQuantity(1, -1, 0, order.PolicyCeiling))
	})

	t.Run("delta 0 は再クランプとして働く", func(t *testing.T) {
		// quantity 4 was legal against an older snapshot; quota dropped to 2
		assert.Equal(t, 2, order.ClampQuantity(4, 0, 2, order.PolicyCeiling))
		// still legal: unchanged
		assert.Equal(t, 3, order.ClampQuantity(3, 0, 10, order.PolicyCeiling))
	})

	t.Run("結果は常に範囲内に収まる", func(t *testing.T) {
		for current := 1; current <= 7; current++ {
			for delta := -1; delta <= 1; delta++ {
				for quota := 0; quota <= 7; quota++ {
					got := order.ClampQuantity(current, delta, quota, order.PolicyCeiling)
					assert.GreaterOrEqual(t, got, 1)
					assert.LessOrEqual(t, got, order.PolicyCeiling)
					if quota >= 1 {
						assert.LessOrEqual(t, got, quota)
					}
				}
			}
		}
	})
}

func TestCanSubmit(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		quota    int
		want     bool
	}{
		{"quantity within quota", 3, 5, true},
		{"quantity equals quota", 5, 5, true},
		{"quantity exceeds quota", 6, 5, false},
		{"zero quota never admits", 1, 0, false},
		{"zero quantity never admits", 0, 5, false},
		{"negative quantity never admits", -1, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, order.CanSubmit(tt.quantity, tt.quota))
		})
	}
}

func TestDraftStep(t *testing.T) {
	t.Run("初期数量は1", func(t *testing.T) {
		d := order.NewDraft(uuid.New())
		assert.Equal(t, 1, d.Quantity())
	})

	t.Run("quota 3 での増加は3で止まる", func(t *testing.T) {
		d := order.NewDraft(uuid.New())
		d = d.Step(1, 3)
		d = d.Step(1, 3)
		assert.Equal(t, 3, d.Quantity())
		d = d.Step(1, 3)
		assert.Equal(t, 3, d.Quantity())
	})

	t.Run("quota 低下後の再クランプ", func(t *testing.T) {
		d := order.NewDraft(uuid.New())
		d = d.Step(1, 5)
		d = d.Step(1, 5)
		d = d.Step(1, 5)
		assert.Equal(t, 4, d.Quantity())

		// snapshot refresh reports only 2 left
		d = d.Step(0, 2)
		assert.Equal(t, 2, d.Quantity())
	})
}

func TestResumeDraft(t *testing.T) {
	t.Run("クライアント申告の数量から再開する", func(t *testing.T) {
		toyID := uuid.New()
		d := order.ResumeDraft(toyID, 3)
		assert.Equal(t, toyID, d.ToyID())
		assert.Equal(t, 3, d.Quantity())
	})

	t.Run("1未満の申告は床に揃える", func(t *testing.T) {
		d := order.ResumeDraft(uuid.New(), 0)
		assert.Equal(t, 1, d.Quantity())
	})

	t.Run("再開後のStepはクランプが効く", func(t *testing.T) {
		d := order.ResumeDraft(uuid.New(), 4).Step(1, 3)
		assert.Equal(t, 3, d.Quantity())
	})
}
