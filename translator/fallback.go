package translator

import (
	"regexp"
	"sort"
	"strings"
)

var (
	tableColumnRef = regexp.MustCompile(`(?i)(\w+)\[(\w+)\]`)
	sumCall        = regexp.MustCompile(`(?i)SUM\s*\(\s*(\w+)\[(\w+)\]`)
	distinctCall   = regexp.MustCompile(`(?i)DISTINCTCOUNT\s*\(\s*(\w+)\[(\w+)\]`)
)

const maxFallbackAggregations = 5

// generateComplexFallback builds a best-effort SQL skeleton for a VAR/RETURN
// expression the Pratt parser doesn't attempt: a line-oriented heuristic
// that never fails, extracting table references and a handful of
// recognizable aggregation calls.
func generateComplexFallback(source string) string {
	var aggregations []string

	tablesFound := make(map[string]bool)

	for _, rawLine := range strings.Split(strings.TrimSpace(source), "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		for _, m := range tableColumnRef.FindAllStringSubmatch(line, -1) {
			tablesFound[strings.ToLower(m[1])] = true
		}

		upper := strings.ToUpper(line)

		if strings.Contains(upper, "SUM(") {
			if m := sumCall.FindStringSubmatch(line); m != nil {
				aggregations = append(aggregations, "SUM("+strings.ToLower(m[1])+"."+strings.ToLower(m[2])+")")
			}
		}

		if strings.Contains(upper, "CALCULATE(") {
			aggregations = append(aggregations, "-- CALCULATE with filter context")
		}

		if strings.Contains(upper, "DIVIDE(") {
			aggregations = append(aggregations, "-- Division operation")
		}

		if strings.Contains(upper, "DISTINCTCOUNT(") {
			if m := distinctCall.FindStringSubmatch(line); m != nil {
				aggregations = append(aggregations, "COUNT(DISTINCT "+strings.ToLower(m[1])+"."+strings.ToLower(m[2])+")")
			}
		}
	}

	selectClause := "/* Complex multi-measure calculation */"
	if len(aggregations) > 0 {
		if len(aggregations) > maxFallbackAggregations {
			aggregations = aggregations[:maxFallbackAggregations]
		}

		selectClause = strings.Join(aggregations, ",\n  ")
	}

	fromClause := "/* tables */"
	if len(tablesFound) > 0 {
		names := make([]string, 0, len(tablesFound))
		for t := range tablesFound {
			names = append(names, t)
		}

		sort.Strings(names)
		fromClause = strings.Join(names, ", ")
	}

	return "-- Translated from complex FL VAR/RETURN expression\n" +
		"-- Original contains multiple variable definitions with CALCULATE filters\n" +
		"SELECT\n  " + selectClause + "\nFROM " + fromClause + "\n" +
		"/* Note: Full filter context requires additional analysis */"
}

var (
	hasVarWord    = regexp.MustCompile(`(?i)\bVAR\b`)
	hasReturnWord = regexp.MustCompile(`(?i)\bRETURN\b`)
)

// looksLikeVarReturn reports whether source contains both the word VAR and
// the word RETURN, case-insensitively and on word boundaries — the trigger
// for routing a parse failure through the fallback synthesizer instead of
// failing outright.
func looksLikeVarReturn(source string) bool {
	return hasVarWord.MatchString(source) && hasReturnWord.MatchString(source)
}
