package normalize

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/ukaji3/stackpct-go/pkg/stackpct/models"
)

const epsilon = 1e-9

func sampleSet() models.SeriesSet {
	return models.SeriesSet{
		{Label: "A", Values: []*float64{models.Num(30), models.Num(0), nil}},
		{Label: "B", Values: []*float64{models.Num(70), models.Num(0), models.Num(10)}},
	}
}

func assertValues(t *testing.T, got models.PercentSet, expected [][]float64) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("Expected %d series, got %d", len(expected), len(got))
	}
	for s := range expected {
		if len(got[s].Values) != len(expected[s]) {
			t.Fatalf("series %d: expected %d values, got %d", s, len(expected[s]), len(got[s].Values))
		}
		for i, want := range expected[s] {
			if math.Abs(got[s].Values[i]-want) > epsilon {
				t.Errorf("series %d category %d = %v, expected %v", s, i, got[s].Values[i], want)
			}
		}
	}
}

func TestNormalizeAllVisible(t *testing.T) {
	got := Normalize(sampleSet(), models.AllVisible())
	assertValues(t, got, [][]float64{
		{30, 0, 0},
		{70, 0, 100},
	})
	if got[0].Label != "A" || got[1].Label != "B" {
		t.Errorf("labels not preserved: %q, %q", got[0].Label, got[1].Label)
	}
}

func TestNormalizeHiddenSeries(t *testing.T) {
	got := Normalize(sampleSet(), models.VisibleOnly(2, 0))
	assertValues(t, got, [][]float64{
		{100, 0, 0},
		{0, 0, 0},
	})
}

func TestNormalizeNegativeValuesUseMagnitude(t *testing.T) {
	set := models.SeriesSet{
		{Label: "loss", Values: models.Nums(-25)},
		{Label: "gain", Values: models.Nums(75)},
	}
	assertValues(t, Normalize(set, models.AllVisible()), [][]float64{{25}, {75}})
}

func TestNormalizeNonFiniteValues(t *testing.T) {
	set := models.SeriesSet{
		{Label: "nan", Values: []*float64{models.Num(math.NaN()), models.Num(5)}},
		{Label: "inf", Values: []*float64{models.Num(math.Inf(1)), models.Num(math.Inf(-1))}},
		{Label: "ok", Values: models.Nums(4, 15)},
	}
	got := Normalize(set, models.AllVisible())
	assertValues(t, got, [][]float64{
		{0, 25},
		{0, 0},
		{100, 75},
	})
}

func TestNormalizeHugeValues(t *testing.T) {
	set := models.SeriesSet{
		{Label: "a", Values: models.Nums(1e308, math.MaxFloat64, 1e-320)},
		{Label: "b", Values: models.Nums(1e308, -math.MaxFloat64, 3e-320)},
		{Label: "c", Values: models.Nums(0, math.MaxFloat64, 0)},
	}
	got := Normalize(set, models.AllVisible())
	assertValues(t, got, [][]float64{
		{50, 100.0 / 3, 25},
		{50, 100.0 / 3, 75},
		{0, 100.0 / 3, 0},
	})

	// The unscaled total overflows, the shares do not
	if totals := Totals(set, models.AllVisible(), 1); !math.IsInf(totals[0], 1) {
		t.Errorf("Expected +Inf raw total, got %v", totals[0])
	}
}

func TestNormalizeMismatchedLengths(t *testing.T) {
	set := models.SeriesSet{
		{Label: "short", Values: models.Nums(1)},
		{Label: "long", Values: models.Nums(1, 2, 3)},
		{Label: "empty"},
	}
	got := Normalize(set, models.AllVisible())
	assertValues(t, got, [][]float64{
		{50},
		{50, 100, 100},
		{},
	})
}

func TestNormalizeCategoriesTruncatesTotals(t *testing.T) {
	set := models.SeriesSet{
		{Label: "A", Values: models.Nums(1, 1, 1)},
		{Label: "B", Values: models.Nums(3, 3, 3)},
	}
	got := NormalizeCategories(set, models.AllVisible(), 2)
	assertValues(t, got, [][]float64{
		{25, 25, 0},
		{75, 75, 0},
	})
}

func TestNormalizeEmptyInputs(t *testing.T) {
	if got := Normalize(nil, models.AllVisible()); len(got) != 0 {
		t.Errorf("Normalize(nil) = %v, expected empty", got)
	}
	got := Normalize(models.SeriesSet{{Label: "x"}}, models.HiddenMask(0))
	if len(got) != 1 || len(got[0].Values) != 0 {
		t.Errorf("Normalize of empty series = %v", got)
	}
}

func TestNormalizeDoesNotMutateOriginal(t *testing.T) {
	original := sampleSet()
	snapshot := original.Clone()

	first := Normalize(original, models.HiddenMask(1))
	second := Normalize(original, models.HiddenMask(1))

	if !reflect.DeepEqual(original, snapshot) {
		t.Errorf("original mutated: %v", original)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Normalize is not deterministic: %v vs %v", first, second)
	}
}

func TestTotals(t *testing.T) {
	tests := []struct {
		name     string
		mask     models.VisibilityMask
		n        int
		expected []float64
	}{
		{"all visible", models.AllVisible(), 3, []float64{100, 0, 10}},
		{"B hidden", models.HiddenMask(1), 3, []float64{30, 0, 0}},
		{"all hidden", models.HiddenMask(0, 1), 3, []float64{0, 0, 0}},
		{"fewer categories", models.AllVisible(), 1, []float64{100}},
		{"negative count", models.AllVisible(), -1, []float64{}},
	}

	for _, tt := range tests {
		got := Totals(sampleSet(), tt.mask, tt.n)
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("%s: Totals = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}

func TestToggleVisibility(t *testing.T) {
	mask := ToggleVisibility(models.AllVisible(), 1)
	if mask.IsVisible(1) {
		t.Fatalf("series 1 should be hidden after toggle")
	}
	if !ToggleVisibility(mask, 1).IsVisible(1) {
		t.Errorf("series 1 should be visible after second toggle")
	}
	if mask.IsVisible(1) {
		t.Errorf("toggle modified the source mask")
	}
}

// randomSet builds a set mixing positive, negative, zero and missing values.
func randomSet(r *rand.Rand) models.SeriesSet {
	seriesCount := 1 + r.Intn(6)
	n := r.Intn(8)
	set := make(models.SeriesSet, seriesCount)
	for s := range set {
		values := make([]*float64, n)
		for i := range values {
			switch r.Intn(5) {
			case 0:
				values[i] = nil
			case 1:
				values[i] = models.Num(0)
			default:
				values[i] = models.Num((r.Float64() - 0.3) * 1000)
			}
		}
		set[s] = models.Series{Label: "s", Values: values}
	}
	return set
}

func TestNormalizeProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for iter := 0; iter < 500; iter++ {
		set := randomSet(r)
		var hidden []int
		for s := range set {
			if r.Intn(3) == 0 {
				hidden = append(hidden, s)
			}
		}
		mask := models.HiddenMask(hidden...)
		got := Normalize(set, mask)
		totals := Totals(set, mask, set.Len())

		for i, total := range totals {
			sum := 0.0
			for s := range set {
				v := got[s].Values[i]
				if math.IsNaN(v) || v < 0 || v > 100+epsilon {
					t.Fatalf("iteration %d: value %v out of range at series %d category %d", iter, v, s, i)
				}
				if !mask.IsVisible(s) && v != 0 {
					t.Fatalf("iteration %d: hidden series %d has %v at category %d", iter, s, v, i)
				}
				sum += v
			}
			if total > 0 && math.Abs(sum-100) > epsilon {
				t.Fatalf("iteration %d: category %d sums to %v", iter, i, sum)
			}
			if total == 0 && sum != 0 {
				t.Fatalf("iteration %d: zero-total category %d sums to %v", iter, i, sum)
			}
		}
	}
}
