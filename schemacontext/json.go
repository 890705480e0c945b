package schemacontext

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/abhisnowflakedev/snowflow"
)

type jsonColumn struct {
	FLName   string `json:"fl_name"`
	SQLName  string `json:"sql_name"`
	DataType string `json:"data_type,omitempty"`
}

type jsonTable struct {
	FLName     string       `json:"fl_name"`
	SQLName    string       `json:"sql_name"`
	Columns    []jsonColumn `json:"columns"`
	PrimaryKey string       `json:"primary_key,omitempty"`
}

type jsonRelationship struct {
	FromTable   string      `json:"from_table"`
	FromCol     string      `json:"from_col"`
	ToTable     string      `json:"to_table"`
	ToCol       string      `json:"to_col"`
	Cardinality Cardinality `json:"cardinality"`
	Active      bool        `json:"active"`
}

type jsonContext struct {
	Tables        []jsonTable        `json:"tables"`
	Relationships []jsonRelationship `json:"relationships"`
}

// ToJSON serializes the context in the wire shape described in §3/§6.
func (c *Context) ToJSON() ([]byte, error) {
	doc := jsonContext{}

	for _, t := range c.Tables() {
		jt := jsonTable{FLName: t.FLName, SQLName: t.SQLName, PrimaryKey: t.PrimaryKey}

		// Deterministic column order: iterate the table's own insertion
		// order isn't tracked per-column, so we sort by FL name for a
		// stable, reproducible round trip.
		cols := make([]jsonColumn, 0, len(t.Columns))
		for _, col := range t.Columns {
			cols = append(cols, jsonColumn{FLName: col.FLName, SQLName: col.SQLName, DataType: col.DataType})
		}

		sortColumns(cols)
		jt.Columns = cols
		doc.Tables = append(doc.Tables, jt)
	}

	for _, r := range c.relationships {
		doc.Relationships = append(doc.Relationships, jsonRelationship{
			FromTable: r.FromTable, FromCol: r.FromCol,
			ToTable: r.ToTable, ToCol: r.ToCol,
			Cardinality: r.Cardinality, Active: r.Active,
		})
	}

	return json.Marshal(doc)
}

// FromJSON parses the wire shape described in §3/§6 into a new Context,
// validating relationship endpoints and the at-most-one-active-edge
// invariant as it goes.
func FromJSON(data []byte) (*Context, error) {
	var doc jsonContext

	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", snowflow.ErrContextMalformed, err)
	}

	c := New()

	for _, t := range doc.Tables {
		tbl := Table{FLName: t.FLName, SQLName: t.SQLName, PrimaryKey: t.PrimaryKey, Columns: make(map[string]Column)}
		c.AddTable(tbl)

		for _, col := range t.Columns {
			if err := c.AddColumn(t.FLName, Column{FLName: col.FLName, SQLName: col.SQLName, DataType: col.DataType}); err != nil {
				return nil, fmt.Errorf("%w: %v", snowflow.ErrContextMalformed, err)
			}
		}
	}

	for _, r := range doc.Relationships {
		rel := Relationship{
			FromTable: r.FromTable, FromCol: r.FromCol,
			ToTable: r.ToTable, ToCol: r.ToCol,
			Cardinality: r.Cardinality, Active: r.Active,
		}
		if err := c.AddRelationship(rel); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func sortColumns(cols []jsonColumn) {
	sort.Slice(cols, func(i, j int) bool { return cols[i].FLName < cols[j].FLName })
}
