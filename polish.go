package main

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"regexp"
	"strings"
)

// Assistant runs the polish pipeline: one polish call, a sentence-level
// diff, one classification call per distinct changed sentence, then
// highlight rendering. Everything is recomputed per request; nothing is
// kept between calls.
type Assistant struct {
	llm LLMClient
	cfg Config
}

func NewAssistant(cfg Config, llm LLMClient) *Assistant {
	return &Assistant{llm: llm, cfg: cfg}
}

type PolishResult struct {
	PolishedText string
	Sentences    []string
	Changes      []Change
	Categories   map[int]Category
	HTML         template.HTML
	Usage        LLMUsage
}

// markerTagRE matches the category marker tags the polish prompt asks the
// model to wrap changed sentences in. Only the tags are removed; the
// sentence text between them stays.
var markerTagRE = regexp.MustCompile(`</?(?:grammar|spelling|tone|formatting|other)>`)

func stripMarkerTags(text string) string {
	return markerTagRE.ReplaceAllString(text, "")
}

func buildPolishPrompt(style Style, draft string) string {
	return fmt.Sprintf(`Instructions:
1. Rewrite the draft in the style the user selected (%s).
2. Only change or polish sentences from the original draft that have grammar, spelling, tone, formatting, or other issues.
3. Wrap the entire original sentence that was changed with:
   <grammar>...</grammar>, <spelling>...</spelling>, <tone>...</tone>, <formatting>...</formatting>, or <other>...</other> as appropriate.
4. Do NOT add new sentences, repeat sentences, extra commentary, or explanations.
Draft:
%s`, style, draft)
}

// Polish runs the full pipeline for one draft. N+1 LLM calls total, where
// N is the count of distinct changed sentences; all calls are sequential
// and provider failures propagate to the caller untouched.
func (a *Assistant) Polish(ctx context.Context, draft string, style Style) (*PolishResult, error) {
	polishedRaw, usage, err := a.llm.Generate(ctx, buildPolishPrompt(style, draft), a.cfg.PolishMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("polishing draft: %w", err)
	}
	totalUsage := usage

	// The marker tags sharpen the diff signal but must not leak into the
	// escaped rendering, so the downstream stages see tag-free text.
	polished := strings.TrimSpace(stripMarkerTags(strings.TrimSpace(polishedRaw)))

	originalSentences := SplitSentences(draft)
	polishedSentences := SplitSentences(polished)
	changes := ChangedSentences(originalSentences, polishedSentences)

	categories, classifyUsage, err := a.classifyChanges(ctx, changes)
	totalUsage.Add(classifyUsage)
	if err != nil {
		return nil, err
	}

	log.Printf("polish style=%s sentences=%d changed=%d tokens=%d", style, len(polishedSentences), len(changes), totalUsage.TotalTokens())

	return &PolishResult{
		PolishedText: polished,
		Sentences:    polishedSentences,
		Changes:      changes,
		Categories:   categories,
		HTML:         HighlightSentences(polishedSentences, categories),
		Usage:        totalUsage,
	}, nil
}
