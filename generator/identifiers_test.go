package generator

import "testing"

func TestSnakeCasePreservesAcronymQuirk(t *testing.T) {
	got := snakeCase("CustomerID")
	want := "customer_i_d"

	if got != want {
		t.Fatalf("snakeCase(CustomerID) = %q, want %q", got, want)
	}
}

func TestSnakeCaseStripsQuotes(t *testing.T) {
	got := snakeCase("'Date Table'")
	want := "date _table"

	if got != want {
		t.Fatalf("snakeCase('Date Table') = %q, want %q", got, want)
	}
}

func TestQuoteStringDoublesEmbeddedQuote(t *testing.T) {
	got := quoteString(`O'Brien`)
	want := `'O''Brien'`

	if got != want {
		t.Fatalf("quoteString = %q, want %q", got, want)
	}
}
