package main

import "strings"

// Style is the polishing style the user picks for a request.
type Style string

const (
	StyleProfessional Style = "Professional"
	StyleFriendly     Style = "Friendly"
	StyleLighthearted Style = "Light-hearted"
	StyleConcise      Style = "Concise"
	StyleEmpathetic   Style = "Empathetic"
)

// Styles lists the selectable polishing styles in dropdown order.
var Styles = []Style{
	StyleProfessional,
	StyleFriendly,
	StyleLighthearted,
	StyleConcise,
	StyleEmpathetic,
}

// ParseStyle resolves a form value to a known style. Unknown values fall
// back to Professional so a tampered form can't inject arbitrary text into
// the polish prompt.
func ParseStyle(s string) Style {
	s = strings.TrimSpace(s)
	for _, style := range Styles {
		if strings.EqualFold(string(style), s) {
			return style
		}
	}
	return StyleProfessional
}

// Change is one polished sentence the change detector flagged as differing
// from the original draft. Index is the sentence's position in the polished
// sequence, so repeated sentence text stays distinguishable downstream.
type Change struct {
	Index int
	Text  string
}
