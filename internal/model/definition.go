// Package model defines the data structures for documentation coverage.
package model

// Path represents a file system path.
type Path string

// Kind identifies the Doxygen kind of a compound or member definition
// (class, function, typedef, namespace, ...).
type Kind string

// Kinds with special handling during classification.
const (
	// KindNamespace marks namespace compounds, which are containers rather
	// than documentable units.
	KindNamespace Kind = "namespace"

	// KindFunction marks function members; static functions have internal
	// linkage and are excluded from the public API count.
	KindFunction Kind = "function"

	// KindDir and KindGroup mark index entries that carry no source file.
	KindDir   Kind = "dir"
	KindGroup Kind = "group"
)

// DefinitionID is the identity key used to deduplicate definitions within
// a file. Overloaded functions are disambiguated by their argument string;
// unrelated definitions sharing a bare name collapse into a single entry
// (last write wins).
type DefinitionID string

// NewDefinitionID builds the identity key from a resolved name and an
// optional argument string.
func NewDefinitionID(name, argsString string) DefinitionID {
	if argsString == "" {
		return DefinitionID(name)
	}

	return DefinitionID(name + argsString)
}

// Definition is one documentable unit extracted from Doxygen XML, after
// name and location resolution.
type Definition struct {
	ID         DefinitionID
	File       Path // resolved real path of the declaring source file
	Line       int
	Documented bool
}

// Entry records the declared line and documentation state kept per
// DefinitionID in a FileRecord.
type Entry struct {
	Line       int
	Documented bool
}

// FileRecord maps definition identities to their entries for one resolved
// source file. A later entry under an existing identity overwrites the
// earlier one.
type FileRecord map[DefinitionID]Entry

// DocumentedCount returns the number of documented definitions in the record.
func (r FileRecord) DocumentedCount() int {
	count := 0

	for _, entry := range r {
		if entry.Documented {
			count++
		}
	}

	return count
}

// Coverage returns the documentation coverage percentage for the record.
// A record with no definitions is vacuously fully covered.
func (r FileRecord) Coverage() float64 {
	if len(r) == 0 {
		return 100
	}

	return float64(r.DocumentedCount()) * 100 / float64(len(r))
}

// CoverageIndex maps resolved source file paths to their definition
// records. It accumulates across a whole scan; lifetime is one run.
type CoverageIndex map[Path]FileRecord

// Merge stores def in the record for its file, creating the record when the
// file has not been seen yet.
func (ci CoverageIndex) Merge(def Definition) {
	record, ok := ci[def.File]
	if !ok {
		record = FileRecord{}
		ci[def.File] = record
	}

	record[def.ID] = Entry{Line: def.Line, Documented: def.Documented}
}
