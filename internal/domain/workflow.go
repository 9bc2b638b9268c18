// Package domain implements the documentation coverage pipeline: scanning
// Doxygen XML output, classifying definitions, and summarizing coverage.
package domain

import (
	"fmt"
	"os"

	"github.com/mouse-blink/doxycov/internal/adapter"
	"github.com/mouse-blink/doxycov/internal/controller"
	m "github.com/mouse-blink/doxycov/internal/model"
)

const compoundFileExt = ".xml"

// Workflow defines the interface for documentation coverage operations.
type Workflow interface {
	// Scan walks a Doxygen XML output directory and folds every
	// documentable definition into a coverage index.
	Scan(dir m.Path) (m.CoverageIndex, error)
}

type workflow struct {
	xmlAdapter adapter.DoxygenXMLAdapter
	fsAdapter  adapter.SourceFSAdapter
	ui         controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(xmlAdapter adapter.DoxygenXMLAdapter, fsAdapter adapter.SourceFSAdapter, ui controller.UI) Workflow {
	return &workflow{
		xmlAdapter: xmlAdapter,
		fsAdapter:  fsAdapter,
		ui:         ui,
	}
}

// Scan loads index.xml, visits each file-bearing compound entry, and folds
// the classified definitions of every compound document into one index.
// A missing index is fatal; a missing compound document is skipped.
func (w *workflow) Scan(dir m.Path) (m.CoverageIndex, error) {
	index, err := w.xmlAdapter.LoadIndex(dir)
	if err != nil {
		if os.IsNotExist(err) {
			indexPath := w.fsAdapter.JoinPath(string(dir), adapter.IndexFileName)

			return nil, fmt.Errorf("documentation not present: %s", indexPath)
		}

		return nil, err
	}

	coverage := m.CoverageIndex{}

	for _, entry := range index.Compounds {
		kind := m.Kind(entry.Kind)
		if kind == m.KindDir || kind == m.KindGroup {
			continue
		}

		compoundPath := w.fsAdapter.JoinPath(string(dir), entry.RefID+compoundFileExt)
		if !w.fsAdapter.IsFile(compoundPath) {
			continue
		}

		doc, err := w.xmlAdapter.LoadCompound(compoundPath)
		if err != nil {
			return nil, err
		}

		w.parseCompounds(coverage, doc)
	}

	return coverage, nil
}

// parseCompounds classifies each compound definition and all member
// definitions nested in its sections.
func (w *workflow) parseCompounds(coverage m.CoverageIndex, doc *adapter.XMLDoc) {
	for _, compound := range doc.Compounds {
		w.classify(coverage, compound.XMLDefinition)

		for _, section := range compound.Sections {
			for _, member := range section.Members {
				w.classify(coverage, member)
			}
		}
	}
}
