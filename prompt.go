package goident

import (
	"fmt"
	"strings"
)

// BuildPrompt composes a single oracle request covering every phrase in the
// batch. The prompt states the output convention with a worked example, the
// maximum length constraint, and the JSON-object-only response requirement,
// folds in the context bundle when present, and enumerates the phrases with
// a stable 1-based index in input order.
func BuildPrompt(phrases []string, f OutputFormat, maxLength int, context string) string {
	var b strings.Builder

	b.WriteString("Translate the following Chinese phrases into short English identifiers.\n\n")
	b.WriteString("Requirements:\n")
	fmt.Fprintf(&b, "- Use %s, e.g. %s\n", GetFormatDescription(f), GetFormatExample(f))
	fmt.Fprintf(&b, "- Each translation must be at most %d characters\n", maxLength)
	b.WriteString("- Translations should be concise and descriptive\n")
	b.WriteString("- Respond with a single JSON object whose keys are the original phrases and whose values are the English translations\n")
	b.WriteString("- Output only the JSON object, no other text\n")

	if context != "" {
		b.WriteString("\nBackground (use this context to disambiguate domain terms):\n")
		b.WriteString("---\n")
		b.WriteString(context)
		b.WriteString("\n---\n")
	}

	b.WriteString("\nPhrases to translate:\n")
	for i, p := range phrases {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p)
	}

	return b.String()
}
