package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// InputValidator performs pre-flight checks on the raw export files before
// the pipeline starts loading, so a misconfigured data directory fails with
// one clear message instead of a mid-run parse error.
type InputValidator struct {
	logger *slog.Logger
}

// NewInputValidator creates a new input validator.
func NewInputValidator(logger *slog.Logger) *InputValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &InputValidator{logger: logger}
}

// ValidateDataDirectory validates that the data directory exists and is a
// directory.
func (v *InputValidator) ValidateDataDirectory(dir string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		v.logger.Error("Data directory does not exist",
			slog.String("directory", dir))
		return fmt.Errorf("data directory %s does not exist", dir)
	}
	if err != nil {
		return fmt.Errorf("failed to stat directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}

// ValidateRequiredFile validates that a required export exists, is a regular
// file, and carries one of the allowed extensions. Used for the bond and
// loan exports, whose absence is fatal.
func (v *InputValidator) ValidateRequiredFile(path string, allowedExts ...string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("Required input file does not exist",
			slog.String("path", path))
		return fmt.Errorf("required input file %s does not exist", path)
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, expected a file", path)
	}

	if len(allowedExts) > 0 {
		ext := strings.ToLower(filepath.Ext(path))
		for _, allowed := range allowedExts {
			if ext == strings.ToLower(allowed) {
				return nil
			}
		}
		return fmt.Errorf("%s has extension %q, expected one of %s",
			path, ext, strings.Join(allowedExts, ", "))
	}

	return nil
}
