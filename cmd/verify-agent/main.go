// verify-agent is a manual smoke test for the search assistant. It sends
// one natural-language question through the live OpenAI API and prints
// the interpreted query parameters.
//
// Usage: go run ./cmd/verify-agent ["question"]
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"supplychain-console/internal/ai"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load() // Load .env if present

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY not set")
	}

	agent := ai.NewAgent(apiKey)
	ctx := context.Background()

	question := "which acme parts are running low, worst first?"
	if len(os.Args) > 1 {
		question = strings.Join(os.Args[1:], " ")
	}

	fmt.Printf("INTERPRETING QUESTION: %s\n", question)
	proposal, err := agent.InterpretSearch(ctx, question)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	fmt.Printf("\n--- PROPOSAL ---\n")
	fmt.Printf("Search:     %q\n", proposal.Search)
	fmt.Printf("Status:     %s\n", proposal.Status)
	fmt.Printf("Sort:       %s %s\n", proposal.SortKey, proposal.Direction)
	fmt.Printf("Confidence: %.2f\n", proposal.Confidence)
	fmt.Printf("Reasoning:  %s\n", proposal.Reasoning)
}
