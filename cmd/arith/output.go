package main

import (
	"encoding/json"
	"fmt"
	"os"

	"arith/internal/token"
)

// ---- output helpers ----

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "error: JSON encoding failed: %v\n", err)
		os.Exit(1)
	}
}

// ---- token output helpers ----

func printTokensText(tokens []token.Token) {
	for _, tok := range tokens {
		fmt.Printf("%-8s %-22s %s\n", tok.Value.Kind, tok.Value.Text(), tok.Span)
	}
}

func printTokensJSON(tokens []token.Token) {
	type tokenJSON struct {
		Kind  string `json:"kind"`
		Text  string `json:"text"`
		Start int    `json:"start"`
		End   int    `json:"end"`
	}

	toks := make([]tokenJSON, 0, len(tokens))
	for _, tok := range tokens {
		toks = append(toks, tokenJSON{
			Kind:  tok.Value.Kind.String(),
			Text:  tok.Value.Text(),
			Start: tok.Span.Start,
			End:   tok.Span.End,
		})
	}
	printJSON(map[string]interface{}{"tokens": toks})
}
