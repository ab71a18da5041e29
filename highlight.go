package main

import (
	"fmt"
	"html/template"
	"strings"
)

// categoryColors is the fixed category→background-color table used for
// both highlighting and the legend.
var categoryColors = map[Category]string{
	CategoryGrammar:    "#ffcccc", // red
	CategorySpelling:   "#cce5ff", // blue
	CategoryTone:       "#fff3cd", // yellow
	CategoryFormatting: "#d5f5e3", // green
	CategoryOther:      "#e8d4f8", // purple
}

var categoryLabels = map[Category]string{
	CategoryGrammar:    "Grammar fixes",
	CategorySpelling:   "Spelling fixes",
	CategoryTone:       "Tone/style adjustments",
	CategoryFormatting: "Formatting fixes",
	CategoryOther:      "Other fixes",
}

type LegendEntry struct {
	Category Category
	Color    string
	Label    string
}

// Legend returns the highlight legend rows in fixed category order.
func Legend() []LegendEntry {
	entries := make([]LegendEntry, 0, len(Categories))
	for _, c := range Categories {
		entries = append(entries, LegendEntry{Category: c, Color: categoryColors[c], Label: categoryLabels[c]})
	}
	return entries
}

// HighlightSentences renders the polished sentences as HTML, wrapping each
// position present in categories in a span carrying that category's
// background color. Sentence text is escaped before wrapping, so
// markup-special characters in a draft cannot inject markup. Sentences are
// joined with a single space; the draft's original inter-sentence
// whitespace is not reconstructed.
func HighlightSentences(sentences []string, categories map[int]Category) template.HTML {
	parts := make([]string, 0, len(sentences))
	for i, sentence := range sentences {
		escaped := template.HTMLEscapeString(sentence)
		if category, ok := categories[i]; ok {
			parts = append(parts, fmt.Sprintf("<span style='background-color:%s;'>%s</span>", categoryColors[category], escaped))
		} else {
			parts = append(parts, escaped)
		}
	}
	return template.HTML(strings.Join(parts, " "))
}
