package schemacontext

import (
	"fmt"
	"sort"
	"strings"
)

// ToPromptContext renders a plain-text description of the schema suitable
// for inclusion in an LLM prompt (§4.5, consumed by the §4.8 hook).
func (c *Context) ToPromptContext() string {
	var b strings.Builder

	b.WriteString("Schema:\n")

	for _, key := range c.sortedKeys() {
		t := c.tables[key]

		fmt.Fprintf(&b, "- Table %s (sql: %s)\n", t.FLName, t.SQLName)

		names := make([]string, 0, len(t.Columns))
		for _, col := range t.Columns {
			names = append(names, fmt.Sprintf("%s -> %s", col.FLName, col.SQLName))
		}

		for _, n := range sortedStrings(names) {
			fmt.Fprintf(&b, "    %s\n", n)
		}
	}

	if len(c.relationships) > 0 {
		b.WriteString("Relationships:\n")

		for _, r := range c.relationships {
			status := "inactive"
			if r.Active {
				status = "active"
			}

			fmt.Fprintf(&b, "- %s[%s] -> %s[%s] (%s, %s)\n",
				r.FromTable, r.FromCol, r.ToTable, r.ToCol, r.Cardinality, status)
		}
	}

	return b.String()
}

// Equal reports whether c and other are structurally equal, per §8's
// round-trip invariant: FromJSON(c.ToJSON()) == c.
func (c *Context) Equal(other *Context) bool {
	a, errA := c.ToJSON()
	b, errB := other.ToJSON()

	if errA != nil || errB != nil {
		return false
	}

	return string(a) == string(b)
}

func sortedStrings(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)

	return out
}
