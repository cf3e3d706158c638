package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaths(t *testing.T) {
	paths := NewPaths("/base")

	assert.Equal(t, filepath.Join("/base", "data"), paths.DataDir)
	assert.Equal(t, filepath.Join("/base", "results"), paths.ResultsDir)
	assert.Equal(t, filepath.Join("/base", "logs"), paths.LogsDir)
	assert.Equal(t, filepath.Join("/base", "results", "bank_portfolios.csv"), paths.BankPortfoliosCSV)
	assert.Equal(t, filepath.Join("/base", "results", "temporal_evolution.csv"), paths.TemporalEvolutionCSV)
}

func TestEnsureDirectories(t *testing.T) {
	paths := NewPaths(t.TempDir())

	require.NoError(t, paths.EnsureDirectories())

	for _, dir := range []string{paths.ResultsDir, paths.LogsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// The data directory is input; its absence must stay visible.
	_, err := os.Stat(paths.DataDir)
	assert.True(t, os.IsNotExist(err))
}

func TestGetDataPath(t *testing.T) {
	paths := NewPaths("/base")

	assert.Equal(t, filepath.Join("/base", "data", "bonds.csv"), paths.GetDataPath("bonds.csv"))
	assert.Equal(t, "/elsewhere/bonds.csv", paths.GetDataPath("/elsewhere/bonds.csv"))
}

func TestGetResultPath(t *testing.T) {
	paths := NewPaths("/base")

	assert.Equal(t, filepath.Join("/base", "results", "out.csv"), paths.GetResultPath("out.csv"))
	assert.Equal(t, "/abs/out.csv", paths.GetResultPath("/abs/out.csv"))
}
