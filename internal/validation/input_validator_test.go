package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDataDirectory(t *testing.T) {
	v := NewInputValidator(nil)

	dir := t.TempDir()
	assert.NoError(t, v.ValidateDataDirectory(dir))

	assert.Error(t, v.ValidateDataDirectory(filepath.Join(dir, "absent")))

	file := filepath.Join(dir, "file.csv")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	assert.Error(t, v.ValidateDataDirectory(file), "a file is not a directory")
}

func TestValidateRequiredFile(t *testing.T) {
	v := NewInputValidator(nil)
	dir := t.TempDir()

	path := filepath.Join(dir, "bonds.csv")
	require.NoError(t, os.WriteFile(path, []byte("header\n"), 0644))

	assert.NoError(t, v.ValidateRequiredFile(path, ".csv"))
	assert.NoError(t, v.ValidateRequiredFile(path), "no extension constraint")
	assert.Error(t, v.ValidateRequiredFile(path, ".xlsx"), "wrong extension")
	assert.Error(t, v.ValidateRequiredFile(filepath.Join(dir, "absent.csv"), ".csv"))
	assert.Error(t, v.ValidateRequiredFile(dir, ".csv"), "directory is not a file")
}

func TestValidateRequiredFileExtensionCase(t *testing.T) {
	v := NewInputValidator(nil)
	dir := t.TempDir()

	path := filepath.Join(dir, "BONDS.CSV")
	require.NoError(t, os.WriteFile(path, []byte("header\n"), 0644))

	assert.NoError(t, v.ValidateRequiredFile(path, ".csv"))
}
