package domain

import (
	"fmt"
	"regexp"
	"sort"

	m "github.com/mouse-blink/doxycov/internal/model"
)

// Summarize computes per-file and global coverage for a completed index.
// Files are ordered by descending coverage with ascending path as the
// tie-break. The global percentage truncates the fractional remainder;
// per-file percentages keep real division.
func Summarize(index m.CoverageIndex, threshold int) m.Summary {
	files := make([]m.FileCoverage, 0, len(index))

	totalYes := 0
	totalNo := 0

	for path, record := range index {
		fc := m.FileCoverage{
			Path:       path,
			Documented: record.DocumentedCount(),
			Total:      len(record),
			Percent:    record.Coverage(),
		}

		for id, entry := range record {
			if !entry.Documented {
				fc.Undocumented = append(fc.Undocumented, m.UndocumentedDef{Line: entry.Line, ID: id})
			}
		}

		sort.Slice(fc.Undocumented, func(i, j int) bool {
			return fc.Undocumented[i].ID < fc.Undocumented[j].ID
		})

		totalYes += fc.Documented
		totalNo += fc.Total - fc.Documented

		files = append(files, fc)
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].Percent != files[j].Percent {
			return files[i].Percent > files[j].Percent
		}

		return files[i].Path < files[j].Path
	})

	percent := 100
	if total := totalYes + totalNo; total > 0 {
		percent = totalYes * 100 / total
	}

	return m.Summary{
		Files:             files,
		TotalDocumented:   totalYes,
		TotalUndocumented: totalNo,
		Percent:           percent,
		Threshold:         threshold,
		Passed:            percent > threshold,
	}
}

// Filter returns a copy of index without the files whose resolved path
// matches any of the exclude patterns. An empty pattern list returns the
// index unchanged.
func Filter(index m.CoverageIndex, exclude []string) (m.CoverageIndex, error) {
	if len(exclude) == 0 {
		return index, nil
	}

	patterns := make([]*regexp.Regexp, 0, len(exclude))

	for _, expr := range exclude {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", expr, err)
		}

		patterns = append(patterns, re)
	}

	filtered := m.CoverageIndex{}

	for path, record := range index {
		if matchesAny(patterns, string(path)) {
			continue
		}

		filtered[path] = record
	}

	return filtered, nil
}

func matchesAny(patterns []*regexp.Regexp, path string) bool {
	for _, re := range patterns {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}

// ThresholdError reports a coverage shortfall relative to the configured
// threshold.
type ThresholdError struct {
	Percent   int
	Threshold int
}

func (e *ThresholdError) Error() string {
	return fmt.Sprintf("documentation coverage %d%% is below the %d%% threshold", e.Percent, e.Threshold)
}

// ExitCode returns how far coverage sits below the threshold, which is
// also the process exit code on failure.
func (e *ThresholdError) ExitCode() int {
	return e.Threshold - e.Percent
}
