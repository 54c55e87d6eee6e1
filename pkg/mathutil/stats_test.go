package mathutil

import (
	"math"
	"reflect"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSum(t *testing.T) {
	if got := Sum([]int{1, 2, 3, 4}); got != 10 {
		t.Errorf("Sum(1..4) = %d, want 10", got)
	}
	if got := Sum([]float64{1.5, 2.5}); got != 4.0 {
		t.Errorf("Sum(1.5, 2.5) = %v, want 4", got)
	}
	if got := Sum([]int{}); got != 0 {
		t.Errorf("Sum(empty) = %d, want 0", got)
	}
	if got := Sum([]int{-3, 3}); got != 0 {
		t.Errorf("Sum(-3, 3) = %d, want 0", got)
	}
}

func TestMean(t *testing.T) {
	testCases := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"simple", []float64{1, 2, 3, 4}, 2.5},
		{"single", []float64{7}, 7},
		{"empty", []float64{}, 0},
		{"negative", []float64{-2, 2}, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Mean(tc.values); !almostEqual(got, tc.want) {
				t.Errorf("Mean(%v) = %v, want %v", tc.values, got, tc.want)
			}
		})
	}
}

func TestMedian(t *testing.T) {
	testCases := []struct {
		name   string
		values []int
		want   float64
	}{
		{"even length", []int{1, 2, 3, 4}, 2.5},
		{"odd length", []int{3, 1, 2}, 2},
		{"unsorted even", []int{9, 1, 5, 3}, 4},
		{"single", []int{42}, 42},
		{"empty", []int{}, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Median(tc.values); !almostEqual(got, tc.want) {
				t.Errorf("Median(%v) = %v, want %v", tc.values, got, tc.want)
			}
		})
	}
}

func TestMedian_DoesNotMutateInput(t *testing.T) {
	values := []int{3, 1, 2}
	Median(values)
	if !reflect.DeepEqual(values, []int{3, 1, 2}) {
		t.Errorf("Median mutated its input: %v", values)
	}
}

func TestMode(t *testing.T) {
	testCases := []struct {
		name   string
		values []int
		want   []int
	}{
		{"single mode", []int{1, 2, 2, 3}, []int{2}},
		{"tie returns all", []int{1, 1, 2, 2, 3}, []int{1, 2}},
		{"uniform", []int{3, 1, 2}, []int{1, 2, 3}},
		{"empty", []int{}, []int{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Mode(tc.values); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Mode(%v) = %v, want %v", tc.values, got, tc.want)
			}
		})
	}
}

func TestVarianceAndStdDev(t *testing.T) {
	// Classic textbook sample: mean 5, population variance 4.
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	if got := Variance(values); !almostEqual(got, 4) {
		t.Errorf("Variance = %v, want 4", got)
	}
	if got := StdDev(values); !almostEqual(got, 2) {
		t.Errorf("StdDev = %v, want 2", got)
	}

	if got := Variance([]float64{}); got != 0 {
		t.Errorf("Variance(empty) = %v, want 0", got)
	}
	if got := StdDev([]float64{5}); got != 0 {
		t.Errorf("StdDev(single) = %v, want 0", got)
	}
}
