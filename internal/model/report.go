package model

// UndocumentedDef identifies one definition that lacks documentation.
type UndocumentedDef struct {
	Line int
	ID   DefinitionID
}

// FileCoverage holds the computed coverage figures for a single source file.
type FileCoverage struct {
	Path       Path
	Documented int
	Total      int
	Percent    float64 // real division, rounded only for display
	// Undocumented lists the definitions without documentation, sorted by ID.
	Undocumented []UndocumentedDef
}

// Summary is the complete coverage report for one scan.
type Summary struct {
	// Files is sorted by descending coverage, ties broken by ascending path.
	Files             []FileCoverage
	TotalDocumented   int
	TotalUndocumented int
	// Percent is the global coverage with the fractional remainder
	// truncated, matching the gating arithmetic.
	Percent   int
	Threshold int
	// Passed reports whether Percent strictly exceeds Threshold.
	Passed bool
}

// Shortfall returns how far the global percentage sits below the threshold,
// or zero when the threshold is met.
func (s Summary) Shortfall() int {
	if s.Percent >= s.Threshold {
		return 0
	}

	return s.Threshold - s.Percent
}
