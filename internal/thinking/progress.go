// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package thinking

import (
	"fmt"
	"math"
)

// Progress summarizes how far a plan has advanced.
type Progress struct {
	Completed int
	Total     int
}

// ProgressOf counts the completed steps.
func ProgressOf(steps []Step) Progress {
	p := Progress{Total: len(steps)}
	for _, s := range steps {
		if s.Completed {
			p.Completed++
		}
	}
	return p
}

// Fraction returns completion in [0, 1]. An empty plan reports 0.
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Completed) / float64(p.Total)
}

// Percent returns the rounded completion percentage.
func (p Progress) Percent() int {
	return int(math.Round(p.Fraction() * 100))
}

// StepsText renders "N of M steps completed".
func (p Progress) StepsText() string {
	return fmt.Sprintf("%d of %d steps completed", p.Completed, p.Total)
}

// PercentText renders "X% complete".
func (p Progress) PercentText() string {
	return fmt.Sprintf("%d%% complete", p.Percent())
}
