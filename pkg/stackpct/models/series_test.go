package models

import (
	"math"
	"testing"
)

func TestSeriesSetLen(t *testing.T) {
	set := SeriesSet{
		{Label: "a", Values: Nums(1, 2)},
		{Label: "b", Values: Nums(1, 2, 3, 4)},
		{Label: "c"},
	}
	if got := set.Len(); got != 4 {
		t.Errorf("Len() = %d, expected 4", got)
	}
	if got := (SeriesSet{}).Len(); got != 0 {
		t.Errorf("empty Len() = %d, expected 0", got)
	}
}

func TestSeriesSetClone(t *testing.T) {
	set := SeriesSet{{Label: "a", Values: []*float64{Num(1), nil}}}
	clone := set.Clone()

	*clone[0].Values[0] = 99
	clone[0].Label = "changed"

	if *set[0].Values[0] != 1 {
		t.Errorf("Clone shares value pointers with the source")
	}
	if set[0].Label != "a" {
		t.Errorf("Clone shares series with the source")
	}
	if clone[0].Values[1] != nil {
		t.Errorf("nil value not preserved: %v", clone[0].Values[1])
	}
	if SeriesSet(nil).Clone() != nil {
		t.Errorf("Clone of nil should be nil")
	}
}

func TestNums(t *testing.T) {
	got := Nums(1, math.NaN(), 3)
	if got[0] == nil || *got[0] != 1 {
		t.Errorf("Nums[0] = %v, expected 1", got[0])
	}
	if got[1] != nil {
		t.Errorf("Nums[1] = %v, expected nil", *got[1])
	}
}

func TestChartDataClone(t *testing.T) {
	data := ChartData{
		Labels:   []string{"x", "y"},
		Datasets: SeriesSet{{Label: "a", Values: Nums(1, 2)}},
	}
	clone := data.Clone()
	clone.Labels[0] = "changed"
	*clone.Datasets[0].Values[1] = 5

	if data.Labels[0] != "x" || *data.Datasets[0].Values[1] != 2 {
		t.Errorf("ChartData.Clone shares state with the source: %+v", data)
	}
}
