package floatutils

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMaxSlice(t *testing.T) {
	tests := []struct {
		values  []float64
		max     float64
		indices []int
	}{
		{[]float64{0}, 0, []int{0}},
		{[]float64{0, 0, 0, 0}, 0, []int{0, 1, 2, 3}},
		{[]float64{-1, 3, 2, 3}, 3, []int{1, 3}},
		{[]float64{5, 1, 1}, 5, []int{0}},
		{[]float64{-2, -1, -3}, -1, []int{1}},
	}

	for _, test := range tests {
		max, indices := MaxSlice(test.values)
		if max != test.max {
			t.Errorf("maxSlice %v: want max %v, have %v", test.values,
				test.max, max)
		}
		if diff := cmp.Diff(test.indices, indices); diff != "" {
			t.Errorf("maxSlice %v: indices mismatch (-want +have):\n%s",
				test.values, diff)
		}
	}
}

func TestMax(t *testing.T) {
	if have := Max(0.01, 0.5*0.995, 0.2); have != 0.4975 {
		t.Errorf("max: want 0.4975, have %v", have)
	}
}

func TestMin(t *testing.T) {
	if min := Min(3, -1, 2); min != -1 {
		t.Errorf("min: want -1, have %v", min)
	}
}
