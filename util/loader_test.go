package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSequence(t *testing.T) {
	values, err := ParseSequence("0 1000 2000\n")
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1000, 2000}, values)

	values, err = ParseSequence("\n")
	require.NoError(t, err)
	assert.Empty(t, values)

	_, err = ParseSequence("1 two 3\n")
	assert.Error(t, err)
}

func TestLoadSequence(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "normal_totals.txt")
	require.NoError(t, os.WriteFile(filename, []byte("15 240 -1\n"), 0o644))

	values, err := LoadSequence(filename)
	require.NoError(t, err)
	assert.Equal(t, []int64{15, 240, -1}, values)

	_, err = LoadSequence(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestLoadResultDirectory(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	write("wide_sizes.txt", "0 1\n")
	write("wide_totals.txt", "3 4\n")
	write("normal_sizes.txt", "0 1\n")
	write("normal_totals.txt", "5 6\n")
	write("notes.md", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	results, err := LoadResultDirectory(dir)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, ResultFiles{Stem: "normal", Sizes: []int64{0, 1}, Totals: []int64{5, 6}}, results[0])
	assert.Equal(t, ResultFiles{Stem: "wide", Sizes: []int64{0, 1}, Totals: []int64{3, 4}}, results[1])
}

func TestLoadResultDirectoryMissingTotals(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "narrow_sizes.txt"), []byte("0\n"), 0o644))

	_, err := LoadResultDirectory(dir)
	assert.Error(t, err)
}
