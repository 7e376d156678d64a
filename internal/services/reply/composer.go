// File: internal/services/reply/composer.go
package reply

import (
	"fmt"
	"strings"

	"github.com/bizchat-labs/bizchat/internal/domain"
	"github.com/bizchat-labs/bizchat/internal/services/retrieval"
)

// BuildSystemPrompt assembles the grounding prompt: business identity as the
// authoritative fallback, the style directive, the grounding policy, and the
// retrieved context. When no chunks were retrieved the context block is
// omitted entirely and the model answers from the business record alone.
func BuildSystemPrompt(business *domain.Business, chunks []retrieval.ScoredChunk) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("You are the assistant for %q.", business.Name))
	if business.Description != "" {
		b.WriteString(" " + business.Description)
	}
	b.WriteString("\n\n")

	b.WriteString("BUSINESS RECORD (authoritative fallback):\n")
	writeField(&b, "Name", business.Name)
	writeField(&b, "Phone", business.Phone)
	writeField(&b, "Email", business.Email)
	writeField(&b, "Address", business.Address)
	writeField(&b, "Website", business.Website)
	writeField(&b, "Hours", business.Hours)
	b.WriteString("\n")

	if len(chunks) > 0 {
		b.WriteString("CONTEXT (from the business's uploaded documents):\n")
		for i, sc := range chunks {
			b.WriteString(fmt.Sprintf("[%d] %s\n\n", i+1, strings.TrimSpace(sc.Chunk.Text)))
		}
	}

	b.WriteString(`RULES:
- Answer from the CONTEXT first. Use the BUSINESS RECORD only for fields the context does not cover.
- Copy phone numbers, email addresses and URLs verbatim. Never paraphrase them.
- Never invent prices, dates or details that appear in neither source. If the information is in neither, say so plainly.
- Be friendly and concise. Offer to connect the customer with the team when you cannot help.`)

	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	if value != "" {
		b.WriteString(label + ": " + value + "\n")
	}
}
