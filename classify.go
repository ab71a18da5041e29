package main

import (
	"context"
	"fmt"
	"log"
	"strings"
)

type Category string

const (
	CategoryGrammar    Category = "grammar"
	CategorySpelling   Category = "spelling"
	CategoryTone       Category = "tone"
	CategoryFormatting Category = "formatting"
	CategoryOther      Category = "other"
)

// Categories lists the fix categories in legend order.
var Categories = []Category{
	CategoryGrammar,
	CategorySpelling,
	CategoryTone,
	CategoryFormatting,
	CategoryOther,
}

// ParseCategory normalizes a model response to one of the five fix
// categories. Anything outside the closed set, including empty, multi-word
// or otherwise malformed output, falls back to CategoryOther; an invalid
// category never leaves this function.
func ParseCategory(s string) Category {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories {
		if string(c) == s {
			return c
		}
	}
	return CategoryOther
}

func buildClassifyPrompt(sentence string) string {
	return fmt.Sprintf(`Classify the type of fix made to this sentence compared to the original draft.

Sentence: "%s"

Categories: grammar, spelling, tone, formatting, other
Return only one category name.`, sentence)
}

// classifyChanges assigns a fix category to every changed sentence
// position. One classification call is issued per distinct trimmed
// sentence text, strictly sequentially, and the result is fanned out to
// every position carrying that text. Keying the returned map by position
// keeps repeated sentence text from colliding.
func (a *Assistant) classifyChanges(ctx context.Context, changes []Change) (map[int]Category, LLMUsage, error) {
	categories := make(map[int]Category, len(changes))
	byText := make(map[string]Category)
	totalUsage := LLMUsage{}

	for _, change := range changes {
		key := strings.TrimSpace(change.Text)
		category, seen := byText[key]
		if !seen {
			response, usage, err := a.llm.Generate(ctx, buildClassifyPrompt(change.Text), a.cfg.ClassifyMaxTokens)
			totalUsage.Add(usage)
			if err != nil {
				return nil, totalUsage, fmt.Errorf("classifying sentence %d: %w", change.Index, err)
			}
			category = ParseCategory(response)
			if raw := strings.TrimSpace(response); string(category) != strings.ToLower(raw) {
				log.Printf("llm classify fallback sentence=%d raw=%q category=%s", change.Index, raw, category)
			}
			byText[key] = category
		}
		categories[change.Index] = category
	}
	return categories, totalUsage, nil
}
