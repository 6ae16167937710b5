package util

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ResultFiles is one exported sizes/totals pair.
type ResultFiles struct {
	// Stem is the shared file name prefix, e.g. "normal".
	Stem string
	// Sizes is the parsed content of <stem>_sizes.txt.
	Sizes []int64
	// Totals is the parsed content of <stem>_totals.txt.
	Totals []int64
}

// ParseSequence splits data on whitespace and parses every field as a base-10 integer.
func ParseSequence(data string) ([]int64, error) {
	fields := strings.Fields(data)
	values := make([]int64, 0, len(fields))
	for i, field := range fields {
		value, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "field %d", i)
		}
		values = append(values, value)
	}
	return values, nil
}

// LoadSequence reads an exported sequence file.
//
// Arguments:
// - filename: Path to a file holding space separated integers.
//
// Returns:
// - []int64: The parsed values, in file order.
// - error: Error if reading or parsing fails.
func LoadSequence(filename string) ([]int64, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", filename)
	}

	values, err := ParseSequence(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", filename)
	}
	return values, nil
}

// LoadResultDirectory reads every sizes/totals pair from a directory.
//
// Arguments:
// - dir: Directory path containing exported result files.
//
// Returns:
// - []ResultFiles: One entry per stem that has a sizes file, sorted by stem.
// - error: Error if loading fails or a totals file is missing.
func LoadResultDirectory(dir string) ([]ResultFiles, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var results []ResultFiles
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		stem, ok := strings.CutSuffix(file.Name(), "_sizes.txt")
		if !ok {
			continue
		}

		sizes, err := LoadSequence(filepath.Join(dir, file.Name()))
		if err != nil {
			return nil, err
		}
		totals, err := LoadSequence(filepath.Join(dir, stem+"_totals.txt"))
		if err != nil {
			return nil, err
		}

		results = append(results, ResultFiles{
			Stem:   stem,
			Sizes:  sizes,
			Totals: totals,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Stem < results[j].Stem
	})

	return results, nil
}
