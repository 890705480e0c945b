// Package schemacontext holds the mapping from FL table/column names to
// their warehouse (DW) equivalents, the relationship graph between tables,
// and JOIN planning over that graph.
package schemacontext

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisnowflakedev/snowflow"
)

// Column is a single FL→DW column mapping.
type Column struct {
	FLName   string `json:"fl_name" yaml:"fl_name"`
	SQLName  string `json:"sql_name" yaml:"sql_name"`
	DataType string `json:"data_type,omitempty" yaml:"data_type,omitempty"`
}

// Table is a single FL→DW table mapping, with its column mappings keyed by
// canonical (case-folded) FL column name.
type Table struct {
	FLName     string `json:"fl_name" yaml:"fl_name"`
	SQLName    string `json:"sql_name" yaml:"sql_name"`
	Columns    map[string]Column `json:"-" yaml:"-"`
	PrimaryKey string `json:"primary_key,omitempty" yaml:"primary_key,omitempty"`
}

// Cardinality enumerates the relationship cardinalities the Schema Context
// understands. JOIN planning does not read the cardinality; it is retained
// on the struct for callers that report it.
type Cardinality string

const (
	OneToMany  Cardinality = "ONE_TO_MANY"
	ManyToOne  Cardinality = "MANY_TO_ONE"
	OneToOne   Cardinality = "ONE_TO_ONE"
)

// Relationship is a single edge between two tables.
type Relationship struct {
	FromTable   string      `json:"from_table" yaml:"from_table"`
	FromCol     string      `json:"from_col" yaml:"from_col"`
	ToTable     string      `json:"to_table" yaml:"to_table"`
	ToCol       string      `json:"to_col" yaml:"to_col"`
	Cardinality Cardinality `json:"cardinality" yaml:"cardinality"`
	Active      bool        `json:"active" yaml:"active"`
}

// Context is the FL→DW mapping plus relationship graph for a single model.
// Once built it is immutable from the translator's point of view: it is
// constructed once and shared across every call to a translator.
type Context struct {
	tables        map[string]*Table // canonical FL name -> table
	order         []string          // canonical FL names, insertion order
	relationships []Relationship
}

// Canonical folds an FL identifier for case-insensitive lookup: surrounding
// single quotes are stripped and the result is uppercased. The as-declared
// spelling is always preserved separately on the stored value.
func Canonical(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimPrefix(name, "'")
	name = strings.TrimSuffix(name, "'")

	return strings.ToUpper(name)
}

// New creates an empty Schema Context.
func New() *Context {
	return &Context{tables: make(map[string]*Table)}
}

// AddTable registers a table mapping. Calling AddTable again with the same
// FL name (case-insensitively) replaces the previous mapping.
func (c *Context) AddTable(t Table) {
	key := Canonical(t.FLName)
	if _, exists := c.tables[key]; !exists {
		c.order = append(c.order, key)
	}

	if t.Columns == nil {
		t.Columns = make(map[string]Column)
	}

	stored := t
	c.tables[key] = &stored
}

// AddColumn registers a column mapping on an already-added table.
func (c *Context) AddColumn(flTable string, col Column) error {
	t, ok := c.tables[Canonical(flTable)]
	if !ok {
		return fmt.Errorf("%w: %s", snowflow.ErrUnknownTable, flTable)
	}

	t.Columns[Canonical(col.FLName)] = col

	return nil
}

// AddRelationship registers a relationship edge, validating that both
// endpoints name tables already present in the context and that at most one
// ACTIVE relationship exists between any unordered pair of tables.
func (c *Context) AddRelationship(r Relationship) error {
	if _, ok := c.tables[Canonical(r.FromTable)]; !ok {
		return fmt.Errorf("%w: from_table %s", snowflow.ErrDanglingRelationship, r.FromTable)
	}

	if _, ok := c.tables[Canonical(r.ToTable)]; !ok {
		return fmt.Errorf("%w: to_table %s", snowflow.ErrDanglingRelationship, r.ToTable)
	}

	if r.Active {
		a, b := Canonical(r.FromTable), Canonical(r.ToTable)

		for _, existing := range c.relationships {
			if !existing.Active {
				continue
			}

			ea, eb := Canonical(existing.FromTable), Canonical(existing.ToTable)
			if samePair(a, b, ea, eb) {
				return fmt.Errorf("%w: %s <-> %s", snowflow.ErrDuplicateActiveRelationship, r.FromTable, r.ToTable)
			}
		}
	}

	c.relationships = append(c.relationships, r)

	return nil
}

func samePair(a, b, c, d string) bool {
	return (a == c && b == d) || (a == d && b == c)
}

// GetSQLTableName returns the DW table name mapped from an FL table name.
func (c *Context) GetSQLTableName(flTable string) (string, bool) {
	t, ok := c.tables[Canonical(flTable)]
	if !ok {
		return "", false
	}

	return t.SQLName, true
}

// GetSQLColumnName returns the DW column name mapped from an FL
// table/column pair.
func (c *Context) GetSQLColumnName(flTable, flCol string) (string, bool) {
	t, ok := c.tables[Canonical(flTable)]
	if !ok {
		return "", false
	}

	col, ok := t.Columns[Canonical(flCol)]
	if !ok {
		return "", false
	}

	return col.SQLName, true
}

// Tables returns the registered tables in insertion order.
func (c *Context) Tables() []Table {
	out := make([]Table, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, *c.tables[key])
	}

	return out
}

// Relationships returns the registered relationships in insertion order.
func (c *Context) Relationships() []Relationship {
	return append([]Relationship(nil), c.relationships...)
}

// HasTable reports whether flTable is a known table.
func (c *Context) HasTable(flTable string) bool {
	_, ok := c.tables[Canonical(flTable)]
	return ok
}

// sortedKeys is used only by ToPromptContext to produce deterministic output.
func (c *Context) sortedKeys() []string {
	out := append([]string(nil), c.order...)
	sort.Strings(out)

	return out
}
