// Package adapter contains infrastructure adapters for the doxycov CLI.
package adapter

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/doxycov/internal/model"
)

// IndexFileName is the entry point document of a Doxygen XML output directory.
const IndexFileName = "index.xml"

// XMLIndex is the decoded form of index.xml.
type XMLIndex struct {
	XMLName   xml.Name           `xml:"doxygenindex"`
	Compounds []XMLIndexCompound `xml:"compound"`
}

// XMLIndexCompound is one compound entry in the index. Its refid names the
// per-compound document (<refid>.xml) next to the index.
type XMLIndexCompound struct {
	RefID string `xml:"refid,attr"`
	Kind  string `xml:"kind,attr"`
	Name  string `xml:"name"`
}

// XMLDoc is one decoded compound document.
type XMLDoc struct {
	XMLName   xml.Name         `xml:"doxygen"`
	Compounds []XMLCompoundDef `xml:"compounddef"`
}

// XMLCompoundDef is a top-level compound definition (class, file,
// namespace, ...) together with its member sections.
type XMLCompoundDef struct {
	XMLDefinition
	Sections []XMLSection `xml:"sectiondef"`
}

// XMLSection groups the member definitions of a compound.
type XMLSection struct {
	Members []XMLDefinition `xml:"memberdef"`
}

// XMLDefinition carries the attributes and child elements shared by
// compounddef and memberdef nodes that classification reads. All children
// are optional in the schema; absent ones decode to zero values.
type XMLDefinition struct {
	ID         string         `xml:"id,attr"`
	Kind       string         `xml:"kind,attr"`
	Static     string         `xml:"static,attr"`
	Name       string         `xml:"name"`
	Definition string         `xml:"definition"`
	ArgsString string         `xml:"argsstring"`
	Brief      XMLDescription `xml:"briefdescription"`
	Detailed   XMLDescription `xml:"detaileddescription"`
	InBody     XMLDescription `xml:"inbodydescription"`
	Location   *XMLLocation   `xml:"location"`
}

// Documented reports whether any of the description blocks carries content.
func (d XMLDefinition) Documented() bool {
	return d.Brief.HasContent() || d.Detailed.HasContent() || d.InBody.HasContent()
}

// Ref returns the most specific identity text available for diagnostics.
func (d XMLDefinition) Ref() string {
	switch {
	case d.Definition != "":
		return d.Definition
	case d.Name != "":
		return d.Name
	default:
		return d.ID
	}
}

// String renders the node for skip diagnostics.
func (d XMLDefinition) String() string {
	return fmt.Sprintf("<%s %s>", d.Kind, d.Ref())
}

// XMLDescription is a briefdescription/detaileddescription/inbodydescription
// block. Doxygen wraps prose in child elements such as <para>, so presence
// of any child element counts as content.
type XMLDescription struct {
	Text     string       `xml:",chardata"`
	Children []XMLAnyNode `xml:",any"`
}

// XMLAnyNode records a child element without interpreting it.
type XMLAnyNode struct {
	XMLName xml.Name
}

// HasContent reports whether the description has any child element or
// non-blank character data.
func (d XMLDescription) HasContent() bool {
	if len(d.Children) > 0 {
		return true
	}

	return strings.TrimSpace(d.Text) != ""
}

// XMLLocation is the location child of a definition node. Line stays a
// string so a missing attribute is distinguishable from line zero.
type XMLLocation struct {
	File string `xml:"file,attr"`
	Line string `xml:"line,attr"`
}

// DoxygenXMLAdapter loads Doxygen XML documents from an output directory.
// It hides direct disk and decoder access so the scan workflow can be
// tested against in-memory documents.
type DoxygenXMLAdapter interface {
	// LoadIndex reads and decodes index.xml inside dir.
	LoadIndex(dir m.Path) (*XMLIndex, error)

	// LoadCompound reads and decodes a single compound document.
	LoadCompound(path m.Path) (*XMLDoc, error)
}

// LocalDoxygenXMLAdapter decodes documents from the local filesystem.
type LocalDoxygenXMLAdapter struct{}

// NewLocalDoxygenXMLAdapter constructs a LocalDoxygenXMLAdapter ready to be
// wired into the scan workflow.
func NewLocalDoxygenXMLAdapter() *LocalDoxygenXMLAdapter {
	return &LocalDoxygenXMLAdapter{}
}

// LoadIndex reads and decodes index.xml inside dir.
func (a *LocalDoxygenXMLAdapter) LoadIndex(dir m.Path) (*XMLIndex, error) {
	path := filepath.Join(string(dir), IndexFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var index XMLIndex
	if err := xml.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return &index, nil
}

// LoadCompound reads and decodes a single compound document.
func (a *LocalDoxygenXMLAdapter) LoadCompound(path m.Path) (*XMLDoc, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, err
	}

	var doc XMLDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return &doc, nil
}
