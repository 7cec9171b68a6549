// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package mockapi

import (
	"fmt"
	"strings"

	"github.com/jeranaias/algaeverse-tui/internal/model"
)

var replyBodies = map[string]string{
	"cost": "## Cost Analysis\n\n" +
		"| Item | Estimate |\n|---|---|\n" +
		"| Rooftop module (20 m²) | $18,000 |\n" +
		"| Installation | $4,500 |\n" +
		"| Annual maintenance | $1,200 |\n\n" +
		"Projected payback is **4 to 6 years**, driven by cooling savings and carbon credits.",
	"technical": "## Technical Overview\n\n" +
		"- Photobioreactor panels circulate microalgae across the facade\n" +
		"- IoT sensors track temperature, pH and light in real time\n" +
		"- Evaporative cooling lowers surface temperature by up to 5°C",
	"environmental": "## Environmental Impact\n\n" +
		"- Each module absorbs roughly **1.8 t of CO2** per year\n" +
		"- Oxygen output comparable to a small urban forest\n" +
		"- Harvested biomass feeds biofuel and fertilizer streams",
	"proposal": "## Investment Proposal\n\n" +
		"1. **Executive summary**: AlgaeVerse turns idle urban surfaces into cooling, carbon-capturing assets.\n" +
		"2. **Market opportunity**: growing demand for green building retrofits.\n" +
		"3. **Financials**: modular pricing with a 4 to 6 year payback.\n" +
		"4. **Timeline**: pilot in 3 months, scale-out in 12.",
	"general": "AlgaeVerse is a smart algae farming system that transforms urban spaces into sustainable cooling solutions. " +
		"Ask me about costs, technical features, environmental impact or a full investment proposal.",
}

// composeReply builds the canned markdown for a classified question.
func composeReply(branch, country string, file *model.FileContext) string {
	body, ok := replyBodies[branch]
	if !ok {
		body = replyBodies["general"]
	}

	var b strings.Builder
	if c := strings.TrimSpace(country); c != "" {
		fmt.Fprintf(&b, "_Tailored for %s._\n\n", c)
	}
	b.WriteString(body)
	if file != nil && file.FileName != "" {
		fmt.Fprintf(&b, "\n\n> Based on the requirements in **%s**.", file.FileName)
	}
	return b.String()
}
