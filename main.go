package main

import (
	"log"
	"net/http"
)

func main() {
	cfg := LoadConfig()

	llm := NewLLMClient(cfg)
	assistant := NewAssistant(cfg, llm)
	srv := NewServer(assistant)

	log.Printf("Starting Professional Communication Assistant on %s (provider=%s)", cfg.ListenAddr, cfg.LLMProvider)
	if err := http.ListenAndServe(cfg.ListenAddr, srv.Routes()); err != nil {
		log.Fatalf("HTTP server error: %v", err)
	}
}
