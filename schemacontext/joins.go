package schemacontext

import (
	"fmt"
	"strings"

	"github.com/abhisnowflakedev/snowflow"
)

type edge struct {
	from, to         string // canonical table names
	fromCol, toCol   string // SQL column names, oriented from -> to
}

// adjacency builds an undirected adjacency list over active relationships
// only, with each edge emitted in both directions (and once per
// relationship, as required by §4.5: "each edge emitted at most once").
func (c *Context) adjacency() map[string][]edge {
	adj := make(map[string][]edge)

	for _, r := range c.relationships {
		if !r.Active {
			continue
		}

		from, to := Canonical(r.FromTable), Canonical(r.ToTable)

		fromSQL, _ := c.GetSQLColumnName(r.FromTable, r.FromCol)
		toSQL, _ := c.GetSQLColumnName(r.ToTable, r.ToCol)

		adj[from] = append(adj[from], edge{from: from, to: to, fromCol: fromSQL, toCol: toSQL})
		adj[to] = append(adj[to], edge{from: to, to: from, fromCol: toSQL, toCol: fromSQL})
	}

	return adj
}

// GenerateJoins builds a SQL JOIN clause connecting flTables using active
// relationships, starting a breadth-first spanning walk from the
// first-listed table. If the induced subgraph is disconnected, it falls
// back to a best-effort join list and returns a warning describing the gap.
func (c *Context) GenerateJoins(flTables []string) (string, []string, error) {
	if len(flTables) < 2 {
		return "", nil, snowflow.ErrNeedAtLeastTwoTables
	}

	want := make(map[string]string) // canonical -> as-given
	order := make([]string, 0, len(flTables))

	for _, t := range flTables {
		key := Canonical(t)
		if _, ok := want[key]; !ok {
			want[key] = t
			order = append(order, key)
		}
	}

	adj := c.adjacency()

	visited := map[string]bool{order[0]: true}
	queue := []string{order[0]}

	var clauses []string

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for _, e := range adj[u] {
			if _, inSet := want[e.to]; !inSet || visited[e.to] {
				continue
			}

			visited[e.to] = true
			queue = append(queue, e.to)

			toSQLTable, _ := c.GetSQLTableName(want[e.to])
			clauses = append(clauses, fmt.Sprintf("INNER JOIN %s ON %s.%s = %s.%s",
				toSQLTable, sqlTableOrFallback(c, want[e.from]), e.fromCol, toSQLTable, e.toCol))
		}
	}

	var warnings []string

	for _, key := range order {
		if !visited[key] {
			sqlName, _ := c.GetSQLTableName(want[key])
			clauses = append(clauses, fmt.Sprintf("INNER JOIN %s /* no active relationship found */", sqlName))
		}
	}

	if missing := missingTables(order, visited, want); len(missing) > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"tables %s are not connected to the rest by an active relationship; join is best-effort",
			strings.Join(missing, ", ")))
	}

	return strings.Join(clauses, "\n"), warnings, nil
}

func missingTables(order []string, visited map[string]bool, want map[string]string) []string {
	var out []string

	for _, key := range order {
		if !visited[key] {
			out = append(out, want[key])
		}
	}

	return out
}

func sqlTableOrFallback(c *Context, flTable string) string {
	if name, ok := c.GetSQLTableName(flTable); ok {
		return name
	}

	return Canonical(flTable)
}
