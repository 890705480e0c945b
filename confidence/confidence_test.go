package confidence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhisnowflakedev/snowflow/analyzer"
	"github.com/abhisnowflakedev/snowflow/confidence"
)

func TestAssessHighWhenFullyPatternedAndNoWarnings(t *testing.T) {
	r := analyzer.Result{Functions: []string{"SUM", "AVERAGE"}}
	require.Equal(t, confidence.High, confidence.Assess(r, 0))
}

func TestAssessMediumWhenFullyPatternedWithFewWarnings(t *testing.T) {
	r := analyzer.Result{Functions: []string{"SUM"}}
	require.Equal(t, confidence.Medium, confidence.Assess(r, 2))
}

func TestAssessFallsThroughWhenWarningsExceedThreshold(t *testing.T) {
	r := analyzer.Result{Functions: []string{"SUM", "AVERAGE"}}
	require.Equal(t, confidence.Medium, confidence.Assess(r, 5))
}

func TestAssessMediumWhenTimeIntelBypassesHighTier(t *testing.T) {
	r := analyzer.Result{Functions: []string{"DATEADD"}, HasTimeIntel: true}
	require.Equal(t, confidence.Medium, confidence.Assess(r, 0))
}

func TestAssessMediumWhenMajorityPatterned(t *testing.T) {
	r := analyzer.Result{Functions: []string{"SUM", "AVERAGE", "NOTAPATTERN"}, HasFilterMod: true}
	require.Equal(t, confidence.Medium, confidence.Assess(r, 0))
}

func TestAssessLowWhenMostlyUnpatterned(t *testing.T) {
	r := analyzer.Result{Functions: []string{"NOTAPATTERN1", "NOTAPATTERN2", "SUM"}}
	require.Equal(t, confidence.Low, confidence.Assess(r, 0))
}

func TestAssessHighWithNoFunctionsAtAll(t *testing.T) {
	r := analyzer.Result{}
	require.Equal(t, confidence.High, confidence.Assess(r, 0))
}
