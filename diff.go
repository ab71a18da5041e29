package main

import "github.com/pmezard/go-difflib/difflib"

// ChangedSentences aligns the original and polished sentence sequences and
// returns every polished sentence not covered by an equal opcode span, in
// polished order. Replace, insert and delete spans all count as changed;
// the matcher's own tie-breaking (longest equal runs first) is accepted
// as-is.
func ChangedSentences(original, polished []string) []Change {
	matcher := difflib.NewMatcher(original, polished)

	var changes []Change
	for _, op := range matcher.GetOpCodes() {
		if op.Tag == 'e' {
			continue
		}
		for j := op.J1; j < op.J2; j++ {
			changes = append(changes, Change{Index: j, Text: polished[j]})
		}
	}
	return changes
}
