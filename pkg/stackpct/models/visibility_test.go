package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestVisibilityMaskZeroValue(t *testing.T) {
	var m VisibilityMask
	for i := 0; i < 5; i++ {
		if !m.IsVisible(i) {
			t.Errorf("zero mask hides series %d", i)
		}
	}
	if got := m.HiddenIndices(); len(got) != 0 {
		t.Errorf("HiddenIndices() = %v, expected empty", got)
	}
}

func TestVisibilityMaskToggle(t *testing.T) {
	m := AllVisible().Toggle(2)
	if m.IsVisible(2) {
		t.Fatalf("series 2 should be hidden")
	}
	back := m.Toggle(2)
	if !back.IsVisible(2) {
		t.Errorf("series 2 should be visible again")
	}
	if !back.Equal(AllVisible()) {
		t.Errorf("double toggle = %v, expected all visible", back.HiddenIndices())
	}
	if m.IsVisible(2) {
		t.Errorf("Toggle modified its receiver")
	}
	if !m.Toggle(-1).Equal(m) {
		t.Errorf("negative toggle should be a no-op")
	}
}

func TestVisibleOnly(t *testing.T) {
	tests := []struct {
		n        int
		visible  []int
		expected []int
	}{
		{3, []int{0, 2}, []int{1}},
		{3, nil, []int{0, 1, 2}},
		{3, []int{0, 1, 2, 7, -1}, []int{}},
		{0, []int{0}, []int{}},
	}

	for _, tt := range tests {
		got := VisibleOnly(tt.n, tt.visible...).HiddenIndices()
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("VisibleOnly(%d, %v).HiddenIndices() = %v, expected %v",
				tt.n, tt.visible, got, tt.expected)
		}
	}
}

func TestVisibleIndices(t *testing.T) {
	m := HiddenMask(1, 3)
	got := m.VisibleIndices(5)
	expected := []int{0, 2, 4}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("VisibleIndices(5) = %v, expected %v", got, expected)
	}
	if !m.Show(1, 3).Equal(AllVisible()) {
		t.Errorf("Show should clear hidden indices")
	}
}

func TestVisibilityMaskJSON(t *testing.T) {
	data, err := json.Marshal(HiddenMask(4, 1))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "[1,4]" {
		t.Errorf("Marshal = %s, expected [1,4]", data)
	}

	var m VisibilityMask
	if err := json.Unmarshal([]byte("[0, 2]"), &m); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if m.IsVisible(0) || m.IsVisible(2) || !m.IsVisible(1) {
		t.Errorf("Unmarshal produced %v", m.HiddenIndices())
	}
}
