package domain

import (
	"strconv"

	"github.com/mouse-blink/doxycov/internal/adapter"
	m "github.com/mouse-blink/doxycov/internal/model"
)

const staticYes = "yes"

// classify applies the inclusion rules to one definition node and merges
// the result into the coverage index. Every anomaly short of a missing
// source file is a silent pass-through; a source file absent from the
// filesystem is reported through the UI and then skipped as well.
func (w *workflow) classify(coverage m.CoverageIndex, node adapter.XMLDefinition) {
	// Namespaces are containers, not documentable units.
	if m.Kind(node.Kind) == m.KindNamespace {
		return
	}

	// Static functions have internal linkage and are not public API.
	if m.Kind(node.Kind) == m.KindFunction && node.Static == staticYes {
		return
	}

	documented := node.Documented()

	loc := node.Location
	if loc == nil || loc.File == "" || loc.Line == "" {
		// Cannot attribute the definition to a source file.
		return
	}

	line, err := strconv.Atoi(loc.Line)
	if err != nil {
		return
	}

	file := m.Path(loc.File)
	if !w.fsAdapter.IsFile(file) {
		// Stale Doxygen output can reference paths that no longer exist.
		w.ui.DisplaySkippedDefinition(node.String())

		return
	}

	real, err := w.fsAdapter.Realpath(file)
	if err != nil {
		return
	}

	coverage.Merge(m.Definition{
		ID:         m.NewDefinitionID(node.Ref(), node.ArgsString),
		File:       real,
		Line:       line,
		Documented: documented,
	})
}
