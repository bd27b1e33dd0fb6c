package entities

import "testing"

func TestCostBreakdown_Recalculate(t *testing.T) {
	t.Run("sums the five components", func(t *testing.T) {
		c := CostBreakdown{
			DiagnosticFee: 25,
			PartsCost:     75,
			LaborCost:     40,
			PriorityFee:   50,
			ShippingFee:   10,
		}
		c.Recalculate()
		if c.TotalEstimated != 200 {
			t.Fatalf("expected estimated 200, got %.2f", c.TotalEstimated)
		}
	})

	t.Run("final defaults to estimated while zero", func(t *testing.T) {
		c := CostBreakdown{DiagnosticFee: 25, PriorityFee: 50}
		c.Recalculate()
		if c.TotalFinal != 75 {
			t.Fatalf("expected final 75, got %.2f", c.TotalFinal)
		}
	})

	t.Run("non-zero final is never overwritten", func(t *testing.T) {
		c := CostBreakdown{DiagnosticFee: 25, TotalFinal: 120}
		c.Recalculate()
		if c.TotalFinal != 120 {
			t.Fatalf("expected final to stay 120, got %.2f", c.TotalFinal)
		}
		c.PartsCost = 300
		c.Recalculate()
		if c.TotalEstimated != 325 {
			t.Fatalf("expected estimated 325, got %.2f", c.TotalEstimated)
		}
		if c.TotalFinal != 120 {
			t.Fatalf("expected final to stay 120, got %.2f", c.TotalFinal)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		c := CostBreakdown{DiagnosticFee: 25, LaborCost: 40}
		c.Recalculate()
		first := c
		c.Recalculate()
		if c != first {
			t.Fatalf("expected recalculate to be idempotent, got %+v then %+v", first, c)
		}
	})
}
