// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package thinking

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// =============================================================================
// KEYWORD SETS
// =============================================================================

var (
	costKeywords = []string{
		"cost", "price", "pricing", "budget", "investment", "roi",
		"return", "money", "expensive", "cheap", "afford",
	}
	technicalKeywords = []string{
		"technical", "feature", "innovation", "system", "how", "work", "function",
	}
	environmentalKeywords = []string{
		"environment", "impact", "co2", "oxygen", "green", "sustainable", "climate",
	}
	proposalKeywords = []string{
		"proposal", "investment", "business", "plan", "comprehensive",
	}
)

// containsAny reports whether folded contains any keyword as a substring.
// Keywords are already lower case.
func containsAny(folded string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(folded, kw) {
			return true
		}
	}
	return false
}

// =============================================================================
// RULES
// =============================================================================

// Query is the classifier input. Text is already case folded.
type Query struct {
	Text    string
	Country string
}

// Rule pairs a predicate with the steps it contributes. Rules are evaluated
// in order and the first match wins, even when later rules would also match.
type Rule struct {
	Name  string
	Match func(q Query) bool
	Steps func(q Query) []Template
}

var (
	openingSteps = []Template{
		{"Analyzing your question and intent...", CategoryAnalysis},
		{"Identifying relevant data sources...", CategoryResearch},
	}
	closingSteps = []Template{
		{"Structuring response with key insights...", CategoryGeneration},
		{"Finalizing answer with recommendations...", CategoryGeneration},
	}
)

// marketResearchPrefix starts the only step whose text depends on input.
const marketResearchPrefix = "Researching current market data for"

func fixed(steps ...Template) func(Query) []Template {
	return func(Query) []Template { return steps }
}

// DefaultRules returns the branch rules in priority order: cost (only when a
// country is known), technical, environmental, proposal.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name: "cost",
			Match: func(q Query) bool {
				return q.Country != "" && containsAny(q.Text, costKeywords)
			},
			Steps: func(q Query) []Template {
				return []Template{
					{marketResearchPrefix + " " + q.Country + "...", CategoryResearch},
					{"Analyzing labor costs and material prices...", CategoryAnalysis},
					{"Calculating installation and maintenance costs...", CategoryAnalysis},
					{"Comparing with project baseline data...", CategoryAnalysis},
					{"Factoring in local market conditions...", CategoryAnalysis},
				}
			},
		},
		{
			Name:  "technical",
			Match: func(q Query) bool { return containsAny(q.Text, technicalKeywords) },
			Steps: fixed(
				Template{"Reviewing technical specifications...", CategoryAnalysis},
				Template{"Analyzing system components and innovations...", CategoryAnalysis},
				Template{"Evaluating performance metrics...", CategoryAnalysis},
				Template{"Assessing technical advantages...", CategoryAnalysis},
			),
		},
		{
			Name:  "environmental",
			Match: func(q Query) bool { return containsAny(q.Text, environmentalKeywords) },
			Steps: fixed(
				Template{"Calculating CO2 absorption rates...", CategoryAnalysis},
				Template{"Analyzing oxygen generation efficiency...", CategoryAnalysis},
				Template{"Comparing with traditional solutions...", CategoryAnalysis},
				Template{"Evaluating energy savings potential...", CategoryAnalysis},
				Template{"Assessing space efficiency benefits...", CategoryAnalysis},
			),
		},
		{
			Name:  "proposal",
			Match: func(q Query) bool { return containsAny(q.Text, proposalKeywords) },
			Steps: fixed(
				Template{"Gathering comprehensive project data...", CategoryResearch},
				Template{"Analyzing market opportunities...", CategoryAnalysis},
				Template{"Structuring investment proposal...", CategoryAnalysis},
				Template{"Including financial projections...", CategoryAnalysis},
				Template{"Adding risk assessment and timeline...", CategoryAnalysis},
			),
		},
	}
}

// GeneralRule is used when no other rule matches.
var GeneralRule = Rule{
	Name:  "general",
	Match: func(Query) bool { return true },
	Steps: fixed(
		Template{"Searching relevant information...", CategoryResearch},
		Template{"Analyzing context and requirements...", CategoryAnalysis},
	),
}

// =============================================================================
// PLANNER
// =============================================================================

// Planner turns an outgoing message into a thinking plan.
type Planner struct {
	rules    []Rule
	fallback Rule
}

// NewPlanner creates a planner with the given rules, evaluated in order.
func NewPlanner(rules []Rule, fallback Rule) *Planner {
	return &Planner{rules: rules, fallback: fallback}
}

// DefaultPlanner returns the planner used by the assistant.
func DefaultPlanner() *Planner {
	return NewPlanner(DefaultRules(), GeneralRule)
}

// Classify returns the first rule matching text and country.
func (p *Planner) Classify(text, country string) Rule {
	return p.pick(newQuery(text, country))
}

func newQuery(text, country string) Query {
	return Query{
		Text:    cases.Fold().String(text),
		Country: strings.TrimSpace(country),
	}
}

func (p *Planner) pick(q Query) Rule {
	for _, r := range p.rules {
		if r.Match(q) {
			return r
		}
	}
	return p.fallback
}

// Plan returns the ordered steps for text. The result always starts with the
// two opening steps and ends with the two closing steps. IDs run from "1"
// to the plan length, so they are unique within the plan.
func (p *Planner) Plan(text, country string) []Step {
	q := newQuery(text, country)
	branch := p.pick(q).Steps(q)
	templates := make([]Template, 0, len(openingSteps)+len(branch)+len(closingSteps))
	templates = append(templates, openingSteps...)
	templates = append(templates, branch...)
	templates = append(templates, closingSteps...)

	steps := make([]Step, len(templates))
	for i, t := range templates {
		steps[i] = Step{
			ID:       strconv.Itoa(i + 1),
			Text:     t.Text,
			Category: t.Category,
		}
	}
	return steps
}
