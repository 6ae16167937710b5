package benchmark

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// FormatSequence renders values as decimal numbers joined by single spaces, followed by a newline.
func FormatSequence[T ~int | ~int64](values []T) string {
	var sb strings.Builder
	for i, value := range values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatInt(int64(value), 10))
	}
	sb.WriteByte('\n')
	return sb.String()
}

// Exporter writes sweep results to an output stream and to flat text files.
type Exporter struct {
	outputDir string
	stdout    io.Writer
}

// NewExporter creates an exporter writing files under outputDir and echoing them to stdout.
func NewExporter(outputDir string, stdout io.Writer) *Exporter {
	return &Exporter{
		outputDir: outputDir,
		stdout:    stdout,
	}
}

// ResultPaths returns the sizes and totals file paths for a distribution.
func (e *Exporter) ResultPaths(dist Distribution) (sizesPath, totalsPath string) {
	return filepath.Join(e.outputDir, dist.String()+"_sizes.txt"),
		filepath.Join(e.outputDir, dist.String()+"_totals.txt")
}

// SaveResult exports a sweep to the files named after its distribution.
func (e *Exporter) SaveResult(result *SweepResult) error {
	sizesPath, totalsPath := e.ResultPaths(result.Distribution)
	return e.Save(result.Sizes, result.Totals, sizesPath, totalsPath)
}

// Save prints both sequences and writes each to its own file, replacing existing files.
//
// The output directory must already exist.
func (e *Exporter) Save(sizes []int, totals []int64, sizesPath, totalsPath string) error {
	sizesLine := FormatSequence(sizes)
	totalsLine := FormatSequence(totals)

	if _, err := io.WriteString(e.stdout, sizesLine); err != nil {
		return errors.Wrap(err, "print sizes")
	}
	if _, err := io.WriteString(e.stdout, totalsLine); err != nil {
		return errors.Wrap(err, "print totals")
	}

	if err := writeLine(sizesPath, sizesLine); err != nil {
		return err
	}
	if err := writeLine(totalsPath, totalsLine); err != nil {
		return err
	}

	log.Debug().Str("sizes", sizesPath).Str("totals", totalsPath).Msg("results exported")
	return nil
}

func writeLine(filename, line string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "create %s", filename)
	}
	defer file.Close()

	if _, err := file.WriteString(line); err != nil {
		return errors.Wrapf(err, "write %s", filename)
	}

	return errors.Wrapf(file.Close(), "close %s", filename)
}
