package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"log"
	"net/http"

	"github.com/yuin/goldmark"
)

//go:embed templates/help.md
var helpMarkdown []byte

const helpPageShell = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Help - Professional Communication Assistant</title>
<style>body{font-family:sans-serif;max-width:48rem;margin:2rem auto;padding:0 1rem;line-height:1.5;}</style>
</head>
<body>
%s
<p><a href="/">Back to the assistant</a></p>
</body>
</html>`

func (s *Server) handleHelp(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var buf bytes.Buffer
	if err := goldmark.Convert(helpMarkdown, &buf); err != nil {
		log.Printf("http help render error: %v", err)
		http.Error(w, "failed to render help page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, helpPageShell, buf.String())
}
