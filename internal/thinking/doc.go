// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package thinking plans and animates the "AI is thinking..." panel shown
// while a chat request is outstanding.
//
// The steps are cosmetic. They are derived purely from the outgoing message
// text and the target country, and have no relationship to what the backend
// actually does.
//
// # Key Types
//
//   - Planner: Ordered keyword rules that pick the branch-specific steps
//   - Step: One labeled pseudo-progress entry
//   - Schedule: Per-category base delays
//   - Run: Cancellable timer group that marks steps completed
//   - Progress: Completed/total summary for the progress bar
//
// # Usage
//
//	steps := thinking.DefaultPlanner().Plan(text, country)
//	run := thinking.Start(ctx, steps, thinking.DefaultSchedule(), func(i int) {
//	    // mark steps[i] completed in the UI
//	})
//	defer run.Stop()
package thinking
