package generator

import "strings"

// snakeCase converts an FL identifier to the fallback SQL spelling used when
// no Schema Context mapping exists: surrounding single quotes are stripped,
// then an underscore is inserted before every uppercase letter that is not
// at position 0, and the whole thing is lowercased.
//
// This intentionally does not special-case acronym runs: CustomerID becomes
// customer_i_d, not customer_id. Treating consecutive uppercase letters as a
// single unit would require guessing at word boundaries the input doesn't
// actually mark; the mechanical rule is the one the conversion documents.
func snakeCase(name string) string {
	name = strings.TrimPrefix(name, "'")
	name = strings.TrimSuffix(name, "'")

	var b strings.Builder

	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
		}

		b.WriteRune(r)
	}

	return strings.ToLower(b.String())
}

// quoteString renders an FL string literal as a single-quoted SQL literal,
// doubling any embedded single quotes.
func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
