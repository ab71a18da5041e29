package main

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

func TestStripMarkerTags(t *testing.T) {
	input := "Fine. <grammar>It has errors.</grammar> <tone>Cheers!</tone>"
	got := stripMarkerTags(input)
	want := "Fine. It has errors. Cheers!"
	if got != want {
		t.Fatalf("unexpected stripped text: %q", got)
	}
}

func TestStripMarkerTagsLeavesOtherMarkupAlone(t *testing.T) {
	input := "Keep <b>this</b> and <grammar>fix this.</grammar>"
	got := stripMarkerTags(input)
	if got != "Keep <b>this</b> and fix this." {
		t.Fatalf("unexpected stripped text: %q", got)
	}
}

func TestBuildPolishPromptEmbedsStyleAndDraft(t *testing.T) {
	prompt := buildPolishPrompt(StyleFriendly, "Hello world.")
	if !strings.Contains(prompt, "(Friendly)") {
		t.Fatalf("prompt missing style: %q", prompt)
	}
	if !strings.Contains(prompt, "Draft:\nHello world.") {
		t.Fatalf("prompt missing draft: %q", prompt)
	}
	if !strings.Contains(prompt, "<grammar>...</grammar>") {
		t.Fatalf("prompt missing marker tag instructions: %q", prompt)
	}
}

func TestPolishEndToEnd(t *testing.T) {
	llm := &fakeLLM{responses: []string{
		"This is a test. <grammar>It has errors.</grammar>",
		"grammar",
	}}
	assistant := newTestAssistant(llm)

	result, err := assistant.Polish(context.Background(), "This is a test. It have errors.", StyleFriendly)
	if err != nil {
		t.Fatalf("Polish: %v", err)
	}

	if result.PolishedText != "This is a test. It has errors." {
		t.Fatalf("unexpected polished text: %q", result.PolishedText)
	}
	if len(result.Changes) != 1 || result.Changes[0].Index != 1 || result.Changes[0].Text != "It has errors." {
		t.Fatalf("unexpected change set: %#v", result.Changes)
	}
	if result.Categories[1] != CategoryGrammar {
		t.Fatalf("unexpected categories: %#v", result.Categories)
	}

	html := string(result.HTML)
	if !strings.Contains(html, "<span style='background-color:#ffcccc;'>It has errors.</span>") {
		t.Fatalf("expected red span around changed sentence, got %q", html)
	}
	if !strings.HasPrefix(html, "This is a test. ") {
		t.Fatalf("expected first sentence unwrapped, got %q", html)
	}

	// N+1 sequential calls: one polish plus one per distinct changed sentence.
	if len(llm.prompts) != 2 {
		t.Fatalf("expected 2 LLM calls, got %d", len(llm.prompts))
	}
	if !strings.Contains(llm.prompts[0], "It have errors.") {
		t.Fatalf("polish prompt missing draft: %q", llm.prompts[0])
	}
	if !strings.Contains(llm.prompts[1], `Sentence: "It has errors."`) {
		t.Fatalf("classify prompt missing changed sentence: %q", llm.prompts[1])
	}
	if result.Usage.TotalTokens() != 24 {
		t.Fatalf("expected usage summed across both calls, got %d", result.Usage.TotalTokens())
	}
}

func TestPolishNoChangesSkipsClassification(t *testing.T) {
	llm := &fakeLLM{responses: []string{"Already perfect. Nothing to fix."}}
	assistant := newTestAssistant(llm)

	result, err := assistant.Polish(context.Background(), "Already perfect. Nothing to fix.", StyleProfessional)
	if err != nil {
		t.Fatalf("Polish: %v", err)
	}
	if len(result.Changes) != 0 || len(result.Categories) != 0 {
		t.Fatalf("expected empty change set, got %#v", result.Changes)
	}
	if len(llm.prompts) != 1 {
		t.Fatalf("expected only the polish call, got %d", len(llm.prompts))
	}
	if string(result.HTML) != "Already perfect. Nothing to fix." {
		t.Fatalf("expected unhighlighted rendering, got %q", result.HTML)
	}
}

func TestPolishDuplicateChangedSentencesShareOneCall(t *testing.T) {
	llm := &fakeLLM{responses: []string{
		"<tone>Cheers!</tone> Keep this one. <tone>Cheers!</tone>",
		"tone",
	}}
	assistant := newTestAssistant(llm)

	result, err := assistant.Polish(context.Background(), "Bye. Keep this one. Bye.", StyleFriendly)
	if err != nil {
		t.Fatalf("Polish: %v", err)
	}
	if len(llm.prompts) != 2 {
		t.Fatalf("expected polish call plus one classify call for duplicate text, got %d", len(llm.prompts))
	}
	if result.Categories[0] != CategoryTone || result.Categories[2] != CategoryTone {
		t.Fatalf("expected both duplicate positions highlighted, got %#v", result.Categories)
	}
}

func TestPolishProviderErrorPropagates(t *testing.T) {
	llm := &fakeLLM{err: fmt.Errorf("connection refused")}
	assistant := newTestAssistant(llm)

	_, err := assistant.Polish(context.Background(), "Some draft.", StyleConcise)
	if err == nil || !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("expected provider error to propagate, got %v", err)
	}
}

func TestPolishMalformedClassifierResponseRendersPurple(t *testing.T) {
	llm := &fakeLLM{responses: []string{
		"<grammar>It has errors.</grammar>",
		"Grammar!!",
	}}
	assistant := newTestAssistant(llm)

	result, err := assistant.Polish(context.Background(), "It have errors.", StyleProfessional)
	if err != nil {
		t.Fatalf("Polish: %v", err)
	}
	if result.Categories[0] != CategoryOther {
		t.Fatalf("expected malformed response to land in other, got %#v", result.Categories)
	}
	if !strings.Contains(string(result.HTML), "background-color:#e8d4f8;") {
		t.Fatalf("expected purple highlight, got %q", result.HTML)
	}
}
