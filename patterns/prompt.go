package patterns

import (
	"fmt"
	"strings"
)

// ToPromptContext renders the registry as a reference card for inclusion in
// an LLM prompt: one line per pattern naming the function, its template and
// complexity.
func ToPromptContext() string {
	var b strings.Builder

	b.WriteString("Known FL function patterns:\n")

	for _, p := range ListPatterns() {
		fmt.Fprintf(&b, "- %s (%s): %s -> %s\n", p.FLFunction, p.Complexity, p.Description, p.SQLTemplate)
	}

	return b.String()
}
