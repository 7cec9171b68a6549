// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package thinking

// Category groups steps by the kind of work they pretend to do. It selects
// the base delay and the icon.
type Category string

const (
	CategoryResearch   Category = "research"
	CategoryAnalysis   Category = "analysis"
	CategoryGeneration Category = "generation"
)

// String returns the category name.
func (c Category) String() string {
	return string(c)
}

// Step is one entry of a thinking plan. Completed only ever flips from
// false to true.
type Step struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Category  Category `json:"type"`
	Completed bool     `json:"completed"`
}

// Template is a step before it has been numbered.
type Template struct {
	Text     string
	Category Category
}

// CloneSteps returns an independent copy of steps.
func CloneSteps(steps []Step) []Step {
	if steps == nil {
		return nil
	}
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}
