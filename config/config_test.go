package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/mweagle/keygen/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePlan = `
key_type: uint32
seed: 7
workers: 2
output_dir: out
format: text
histogram: true
runs:
  - name: gaussian
    distribution: GAUSSIAN
    count: 1000
  - distribution: UNIQUE
    count: 500
    matching_rate: 0.25
`

func TestParse(t *testing.T) {
	plan, err := Parse([]byte(samplePlan))
	require.NoError(t, err)

	assert.Equal(t, KeyTypeUint32, plan.KeyType)
	assert.Equal(t, uint64(7), plan.Seed)
	assert.Equal(t, generator.DefaultMultiplicity, plan.Multiplicity)
	assert.Equal(t, 2, plan.Workers)
	assert.Equal(t, DefaultPercentiles, plan.Percentiles)
	assert.Equal(t, "text", plan.Format)
	assert.True(t, plan.Histogram)
	require.Len(t, plan.Runs, 2)
	assert.Equal(t, "gaussian", plan.Runs[0].Name)
	assert.Nil(t, plan.Runs[0].MatchingRate)
	assert.Equal(t, "UNIQUE-1", plan.Runs[1].Name)
	require.NotNil(t, plan.Runs[1].MatchingRate)
	assert.Equal(t, 0.25, *plan.Runs[1].MatchingRate)
}

func TestParseDefaults(t *testing.T) {
	plan, err := Parse([]byte("runs: [{distribution: SAME, count: 3}]"))
	require.NoError(t, err)
	assert.Equal(t, KeyTypeInt64, plan.KeyType)
	assert.Equal(t, runtime.NumCPU(), plan.Workers)
	assert.Equal(t, "binary", plan.Format)
}

func TestValidateRejects(t *testing.T) {
	testCases := map[string]string{
		"key type":      "key_type: int128\nruns: [{distribution: SAME, count: 1}]",
		"distribution":  "runs: [{distribution: same, count: 1}]",
		"count":         "runs: [{distribution: SAME, count: -1}]",
		"matching rate": "runs: [{distribution: UNIQUE, count: 1, matching_rate: 1.5}]",
		"format":        "format: csv\nruns: [{distribution: SAME, count: 1}]",
		"percentile":    "percentiles: [101]\nruns: [{distribution: SAME, count: 1}]",
		"multiplicity":  "multiplicity: -2\nruns: [{distribution: SAME, count: 1}]",
		"no runs":       "key_type: int64",
		"duplicate":     "runs: [{name: a, distribution: SAME, count: 1}, {name: a, distribution: SAME, count: 1}]",
	}
	for eachName, eachPlan := range testCases {
		_, err := Parse([]byte(eachPlan))
		assert.Error(t, err, eachName)
	}
}

func TestValidateNamesRun(t *testing.T) {
	_, err := Parse([]byte("runs: [{name: probe, distribution: BOGUS, count: 1}]"))
	require.Error(t, err)
	assert.ErrorIs(t, err, generator.ErrUnknownDistribution)
	assert.Contains(t, err.Error(), "run probe")
}

func TestLoad(t *testing.T) {
	planPath := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(planPath, []byte(samplePlan), 0600))

	plan, err := Load(planPath)
	require.NoError(t, err)
	assert.Len(t, plan.Runs, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
