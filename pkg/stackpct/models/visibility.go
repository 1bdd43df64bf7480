package models

import (
	"encoding/json"
	"sort"
)

// VisibilityMask records which series currently contribute to percentage totals.
// The zero value treats every series as visible. A mask is never modified in place;
// every mutating method returns a new mask.
type VisibilityMask struct {
	hidden map[int]struct{}
}

// AllVisible returns a mask with no hidden series.
func AllVisible() VisibilityMask {
	return VisibilityMask{}
}

// HiddenMask returns a mask hiding the given series indices. Negative indices are ignored.
func HiddenMask(indices ...int) VisibilityMask {
	return VisibilityMask{}.Hide(indices...)
}

// VisibleOnly returns a mask for n series where only the listed indices are visible.
// Indices outside [0, n) are ignored.
func VisibleOnly(n int, indices ...int) VisibilityMask {
	keep := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		if i >= 0 && i < n {
			keep[i] = struct{}{}
		}
	}
	var hidden []int
	for i := 0; i < n; i++ {
		if _, ok := keep[i]; !ok {
			hidden = append(hidden, i)
		}
	}
	return HiddenMask(hidden...)
}

// IsVisible reports whether series i contributes to totals and receives a percentage.
func (m VisibilityMask) IsVisible(i int) bool {
	_, hidden := m.hidden[i]
	return !hidden
}

// Toggle flips the visibility of series i.
func (m VisibilityMask) Toggle(i int) VisibilityMask {
	if i < 0 {
		return m.clone()
	}
	if m.IsVisible(i) {
		return m.Hide(i)
	}
	return m.Show(i)
}

// Hide returns a mask with the given indices hidden in addition to those already hidden.
func (m VisibilityMask) Hide(indices ...int) VisibilityMask {
	out := m.clone()
	for _, i := range indices {
		if i < 0 {
			continue
		}
		if out.hidden == nil {
			out.hidden = make(map[int]struct{})
		}
		out.hidden[i] = struct{}{}
	}
	return out
}

// Show returns a mask with the given indices made visible.
func (m VisibilityMask) Show(indices ...int) VisibilityMask {
	out := m.clone()
	for _, i := range indices {
		delete(out.hidden, i)
	}
	if len(out.hidden) == 0 {
		out.hidden = nil
	}
	return out
}

// HiddenIndices returns the hidden series indices in ascending order.
func (m VisibilityMask) HiddenIndices() []int {
	out := make([]int, 0, len(m.hidden))
	for i := range m.hidden {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// VisibleIndices returns the visible indices among n series in ascending order.
func (m VisibilityMask) VisibleIndices(n int) []int {
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if m.IsVisible(i) {
			out = append(out, i)
		}
	}
	return out
}

// Equal reports whether both masks hide the same indices.
func (m VisibilityMask) Equal(other VisibilityMask) bool {
	if len(m.hidden) != len(other.hidden) {
		return false
	}
	for i := range m.hidden {
		if _, ok := other.hidden[i]; !ok {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the mask as the sorted list of hidden indices.
func (m VisibilityMask) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.HiddenIndices())
}

// UnmarshalJSON decodes a list of hidden indices.
func (m *VisibilityMask) UnmarshalJSON(data []byte) error {
	var indices []int
	if err := json.Unmarshal(data, &indices); err != nil {
		return err
	}
	*m = HiddenMask(indices...)
	return nil
}

func (m VisibilityMask) clone() VisibilityMask {
	if len(m.hidden) == 0 {
		return VisibilityMask{}
	}
	out := VisibilityMask{hidden: make(map[int]struct{}, len(m.hidden))}
	for i := range m.hidden {
		out.hidden[i] = struct{}{}
	}
	return out
}
