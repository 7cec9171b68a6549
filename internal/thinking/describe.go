// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package thinking

import "strings"

// FallbackDescription is shown for steps without a table entry.
const FallbackDescription = "Processing your request..."

// descriptions maps literal step text to the italic sub-line in the panel.
var descriptions = map[string]string{
	"Analyzing your question and intent...":              "Understanding what you're asking and determining the best approach",
	"Identifying relevant data sources...":               "Finding the most accurate and up-to-date information",
	"Analyzing labor costs and material prices...":       "Calculating installation and operational costs",
	"Calculating installation and maintenance costs...":  "Estimating setup costs and ongoing requirements",
	"Comparing with project baseline data...":            "Cross-referencing with established project estimates",
	"Factoring in local market conditions...":            "Adjusting estimates based on regional factors",
	"Reviewing technical specifications...":              "Examining system components and capabilities",
	"Analyzing system components and innovations...":     "Evaluating technological advantages",
	"Evaluating performance metrics...":                  "Assessing efficiency and operational benefits",
	"Assessing technical advantages...":                  "Identifying competitive advantages",
	"Calculating CO2 absorption rates...":                "Measuring environmental impact",
	"Analyzing oxygen generation efficiency...":          "Evaluating air purification capabilities",
	"Comparing with traditional solutions...":            "Benchmarking against conventional solutions",
	"Evaluating energy savings potential...":             "Calculating reduced energy consumption",
	"Assessing space efficiency benefits...":             "Analyzing urban space optimization",
	"Gathering comprehensive project data...":            "Collecting all relevant information",
	"Analyzing market opportunities...":                  "Identifying target markets and potential",
	"Structuring investment proposal...":                 "Organizing into professional document",
	"Including financial projections...":                 "Adding cost-benefit analysis",
	"Adding risk assessment and timeline...":             "Evaluating risks and timeline",
	"Searching relevant information...":                  "Finding appropriate data",
	"Analyzing context and requirements...":              "Understanding your specific needs",
	"Structuring response with key insights...":          "Organizing clear response",
	"Finalizing answer with recommendations...":          "Adding actionable advice",
}

// prefixDescriptions covers steps whose text embeds user input.
var prefixDescriptions = []struct {
	prefix string
	text   string
}{
	{marketResearchPrefix, "Gathering real-time market information and local conditions"},
}

// Describe returns the sub-description for a step text.
func Describe(text string) string {
	if d, ok := descriptions[text]; ok {
		return d
	}
	for _, p := range prefixDescriptions {
		if strings.HasPrefix(text, p.prefix) {
			return p.text
		}
	}
	return FallbackDescription
}
