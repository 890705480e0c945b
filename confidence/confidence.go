// Package confidence implements the Confidence Assessor: a small, strictly
// ordered decision table that grades a translation as HIGH, MEDIUM or LOW
// based on how much of it the Pattern Library actually covered. The UNKNOWN
// level is defined here too, but Assess never returns it; the translator
// assigns it when parsing fails.
package confidence

import (
	"github.com/abhisnowflakedev/snowflow/analyzer"
	"github.com/abhisnowflakedev/snowflow/patterns"
)

// Level is one of the four confidence grades a translation can carry.
type Level string

const (
	High    Level = "HIGH"
	Medium  Level = "MEDIUM"
	Low     Level = "LOW"
	Unknown Level = "UNKNOWN"
)

// Assess grades a translation. warningCount is the number of warnings the
// generator raised while producing it.
func Assess(result analyzer.Result, warningCount int) Level {
	total := len(result.Functions)

	patterned := 0
	for _, fn := range result.Functions {
		if patterns.HasPattern(fn) {
			patterned++
		}
	}

	allPatterned := total == 0 || patterned == total

	if allPatterned && !result.HasTimeIntel && !result.HasFilterMod {
		switch {
		case warningCount == 0:
			return High
		case warningCount <= 2:
			return Medium
		}
	}

	if total > 0 && patterned*2 > total {
		return Medium
	}

	return Low
}
