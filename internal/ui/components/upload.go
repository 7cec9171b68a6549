// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/jeranaias/algaeverse-tui/internal/ui/styles"
	"github.com/jeranaias/algaeverse-tui/internal/upload"
	"github.com/jeranaias/algaeverse-tui/internal/util"
)

// UploadLine is the attach row under the composer.
type UploadLine struct {
	Armed     bool
	Uploading bool
	// Attached is the file name of the live file context, if any.
	Attached string
	Width    int
	theme    *styles.Theme
}

// NewUploadLine creates an upload line.
func NewUploadLine(theme *styles.Theme) *UploadLine {
	return &UploadLine{Width: 80, theme: theme}
}

// View renders the row.
func (u *UploadLine) View() string {
	t := u.theme
	width := maxInt(u.Width, 30)

	style := t.UploadLine
	label := upload.LabelIdle
	if u.Armed {
		style = t.UploadArmed
		label = upload.LabelArmed
	}

	text := "📄 " + label + "  " + t.UploadHint.Render(upload.LabelHint+" · ctrl+o to browse")
	if u.Uploading {
		text += "  " + t.UploadHint.Render("Uploading...")
	} else if u.Attached != "" {
		text += "  " + t.FileChip.Render("✓ "+util.TruncateWidth(u.Attached, 32))
	}
	return style.Width(width - style.GetHorizontalBorderSize()).Render(text)
}
