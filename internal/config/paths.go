package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for file locations: raw exports live
// under DataDir, generated CSV summaries under ResultsDir, logs under
// LogsDir.
type Paths struct {
	BaseDir    string
	DataDir    string
	ResultsDir string
	LogsDir    string

	// Well-known output files inside ResultsDir.
	BankPortfoliosCSV    string
	TemporalEvolutionCSV string
}

// GetPaths returns the application paths relative to the executable
// location, so the tool behaves the same regardless of the working directory
// it is launched from.
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}

	return NewPaths(filepath.Dir(exe)), nil
}

// NewPaths builds the path set rooted at baseDir. Used directly by tests and
// by the -data/-results flag overrides.
func NewPaths(baseDir string) *Paths {
	dataDir := filepath.Join(baseDir, "data")
	resultsDir := filepath.Join(baseDir, "results")

	return &Paths{
		BaseDir:    baseDir,
		DataDir:    dataDir,
		ResultsDir: resultsDir,
		LogsDir:    filepath.Join(baseDir, "logs"),

		BankPortfoliosCSV:    filepath.Join(resultsDir, "bank_portfolios.csv"),
		TemporalEvolutionCSV: filepath.Join(resultsDir, "temporal_evolution.csv"),
	}
}

// EnsureDirectories creates the results and logs directories if absent. The
// data directory is deliberately not created: its absence is a fatal input
// error reported by the loader, not something to paper over.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.ResultsDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetDataPath resolves a data file name against the data directory. Absolute
// names pass through unchanged.
func (p *Paths) GetDataPath(filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(p.DataDir, filename)
}

// GetResultPath resolves an output file name against the results directory.
func (p *Paths) GetResultPath(filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(p.ResultsDir, filename)
}

// GetLogPath resolves a log file name against the logs directory.
func (p *Paths) GetLogPath(filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(p.LogsDir, filename)
}
