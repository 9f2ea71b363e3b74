// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package selection tracks which item indices are selected,
// independently of how the user navigated to them. A [Controller] is
// either single-select (at most one index, Toggle replaces) or
// multi-select (Toggle flips membership; bulk operations apply).
//
// Selection indices refer to the widget's underlying item list. When
// that list shrinks (filtering, live reloads), ConstrainTo drops the
// indices that fell off the end.
package selection

import "sort"

// Controller holds selection state for one prompt invocation.
type Controller struct {
	multi    bool
	selected map[int]struct{}
}

// Single returns a single-select controller: the selected set never
// holds more than one index.
func Single() *Controller {
	return &Controller{selected: make(map[int]struct{})}
}

// Multi returns a multi-select controller.
func Multi() *Controller {
	return &Controller{multi: true, selected: make(map[int]struct{})}
}

// MultiSelect reports whether this controller allows more than one
// selected index.
func (controller *Controller) MultiSelect() bool { return controller.multi }

// Toggle flips membership of index i in multi-select mode. In
// single-select mode it replaces the entire selection with {i}.
func (controller *Controller) Toggle(i int) {
	if !controller.multi {
		clear(controller.selected)
		controller.selected[i] = struct{}{}
		return
	}
	if _, exists := controller.selected[i]; exists {
		delete(controller.selected, i)
	} else {
		controller.selected[i] = struct{}{}
	}
}

// SelectAll selects indices [0, n). No-op in single-select mode.
func (controller *Controller) SelectAll(n int) {
	if !controller.multi {
		return
	}
	for i := range n {
		controller.selected[i] = struct{}{}
	}
}

// ToggleAll selects all of [0, n) unless all n are already selected,
// in which case it clears the selection.
func (controller *Controller) ToggleAll(n int) {
	if !controller.multi {
		return
	}
	allSelected := true
	for i := range n {
		if _, exists := controller.selected[i]; !exists {
			allSelected = false
			break
		}
	}
	if allSelected {
		clear(controller.selected)
		return
	}
	controller.SelectAll(n)
}

// Invert flips membership of every index in [0, n). No-op in
// single-select mode.
func (controller *Controller) Invert(n int) {
	if !controller.multi {
		return
	}
	for i := range n {
		controller.Toggle(i)
	}
}

// Clear empties the selection.
func (controller *Controller) Clear() {
	clear(controller.selected)
}

// ConstrainTo drops selected indices ≥ n. Called after the underlying
// item list shrinks so the selection never points past the end.
func (controller *Controller) ConstrainTo(n int) {
	for i := range controller.selected {
		if i >= n {
			delete(controller.selected, i)
		}
	}
}

// IsSelected reports whether index i is selected.
func (controller *Controller) IsSelected(i int) bool {
	_, exists := controller.selected[i]
	return exists
}

// IsEmpty reports whether nothing is selected.
func (controller *Controller) IsEmpty() bool {
	return len(controller.selected) == 0
}

// Count returns the number of selected indices.
func (controller *Controller) Count() int {
	return len(controller.selected)
}

// Indices returns the selected indices in ascending order.
func (controller *Controller) Indices() []int {
	indices := make([]int, 0, len(controller.selected))
	for i := range controller.selected {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}

// SelectedItems returns the items at the sorted selected indices.
// When the selection is empty and fallbackIndex is valid, it returns
// just the item at fallbackIndex: at confirmation time, "nothing
// explicitly toggled" means "the focused row is the selection". Pass
// a negative fallbackIndex to disable the fallback.
func SelectedItems[T any](controller *Controller, items []T, fallbackIndex int) []T {
	if controller.IsEmpty() {
		if fallbackIndex >= 0 && fallbackIndex < len(items) {
			return []T{items[fallbackIndex]}
		}
		return nil
	}
	var result []T
	for _, i := range controller.Indices() {
		if i < len(items) {
			result = append(result, items[i])
		}
	}
	return result
}
