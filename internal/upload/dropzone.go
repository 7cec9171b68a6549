// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package upload

import "sync/atomic"

// Drop zone labels.
const (
	LabelIdle  = "Upload file"
	LabelArmed = "Drop file here"
	LabelHint  = "PDF, DOCX, or images"
)

// DropZone holds the drop-armed flag. It only affects presentation.
type DropZone struct {
	armed atomic.Bool
}

// Arm marks a drop as incoming.
func (d *DropZone) Arm() {
	d.armed.Store(true)
}

// Disarm clears the flag.
func (d *DropZone) Disarm() {
	d.armed.Store(false)
}

// Armed reports whether a drop is incoming.
func (d *DropZone) Armed() bool {
	return d.armed.Load()
}

// Label returns the headline for the current state.
func (d *DropZone) Label() string {
	if d.Armed() {
		return LabelArmed
	}
	return LabelIdle
}
