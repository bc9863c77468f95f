package ai

import "fmt"

const instructionTemplate = `You are the assistant for this blog. Answer the reader's question using only the blog content provided below. If the content does not cover the question, say so briefly instead of inventing an answer.

Question: %s`

// buildPrompt concatenates the fixed instruction template, the reader's
// question, and the context block into the single prompt string handed to
// the generation backend.
func buildPrompt(question, contextBlock string) string {
	return fmt.Sprintf(instructionTemplate, question) + "\n\n" + contextBlock
}
