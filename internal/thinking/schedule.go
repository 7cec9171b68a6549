// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package thinking

import (
	"time"

	"github.com/jeranaias/algaeverse-tui/internal/config"
)

// Schedule holds the base delay for each category. A step at zero-based
// position i completes (i+1)*base after the run starts.
type Schedule struct {
	Research   time.Duration
	Analysis   time.Duration
	Generation time.Duration
	// Default applies to categories the schedule does not know.
	Default time.Duration
}

// DefaultSchedule returns the stock 1200/1000/600ms bases.
func DefaultSchedule() Schedule {
	return Schedule{
		Research:   1200 * time.Millisecond,
		Analysis:   1000 * time.Millisecond,
		Generation: 600 * time.Millisecond,
		Default:    800 * time.Millisecond,
	}
}

// ScheduleFromConfig builds a schedule from the [thinking] config section.
func ScheduleFromConfig(cfg config.ThinkingConfig) Schedule {
	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }
	return Schedule{
		Research:   ms(cfg.ResearchDelayMs),
		Analysis:   ms(cfg.AnalysisDelayMs),
		Generation: ms(cfg.GenerationDelayMs),
		Default:    ms(cfg.DefaultDelayMs),
	}
}

// Base returns the base delay for a category.
func (s Schedule) Base(c Category) time.Duration {
	switch c {
	case CategoryResearch:
		return s.Research
	case CategoryAnalysis:
		return s.Analysis
	case CategoryGeneration:
		return s.Generation
	default:
		return s.Default
	}
}

// Delay returns when the step at index completes, relative to run start.
func (s Schedule) Delay(index int, c Category) time.Duration {
	return time.Duration(index+1) * s.Base(c)
}
