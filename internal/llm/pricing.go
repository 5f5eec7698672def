package llm

import (
	"sort"
	"strings"
)

// ModelCost is list pricing in USD per million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost returns the USD cost of one usage total.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return (float64(inputTokens)*c.InputPerMTok + float64(outputTokens)*c.OutputPerMTok) / 1e6
}

// LookupCost finds the price for a model ID as reported in responses.
// Dated snapshots ("claude-haiku-4-5-20251001") and vendor-qualified
// OpenRouter IDs ("google/gemini-2.5-flash") resolve to their family.
func LookupCost(modelID string) (ModelCost, bool) {
	if _, name, ok := strings.Cut(modelID, "/"); ok {
		modelID = name
	}
	for _, family := range costFamilies {
		if modelID == family || strings.HasPrefix(modelID, family+"-") {
			return modelCosts[family], true
		}
	}
	return ModelCost{}, false
}

// modelCosts lists the models worth running worksheet generation on.
// Prices as published by each vendor, October 2026.
var modelCosts = map[string]ModelCost{
	"claude-haiku-4-5":  {1, 5},
	"claude-sonnet-4-5": {3, 15},
	"claude-sonnet-4":   {3, 15},
	"claude-opus-4-1":   {15, 75},
	"claude-3-5-haiku":  {0.8, 4},

	"gpt-4.1":      {2, 8},
	"gpt-4.1-mini": {0.4, 1.6},
	"gpt-4.1-nano": {0.1, 0.4},
	"gpt-4o":       {2.5, 10},
	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-5":        {1.25, 10},
	"gpt-5-mini":   {0.25, 2},
	"gpt-5-nano":   {0.05, 0.4},

	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.0-flash-lite": {0.075, 0.3},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-flash-lite": {0.1, 0.4},
	"gemini-2.5-pro":        {1.25, 10},
}

// costFamilies holds the keys of modelCosts, longest first, so that
// "gpt-4.1-mini" wins over "gpt-4.1".
var costFamilies = func() []string {
	keys := make([]string, 0, len(modelCosts))
	for k := range modelCosts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()
