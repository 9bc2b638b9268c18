package domain

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/doxycov/internal/adapter"
	"github.com/mouse-blink/doxycov/internal/controller"
	m "github.com/mouse-blink/doxycov/internal/model"
)

// scanFixture builds a Doxygen XML directory plus a real source file and
// returns the workflow wired with local adapters and a buffer-backed UI.
type scanFixture struct {
	workflow Workflow
	xmlDir   string
	srcFile  string
	realSrc  m.Path
	out      *bytes.Buffer
	errOut   *bytes.Buffer
}

func newScanFixture(t *testing.T) *scanFixture {
	t.Helper()

	srcDir := t.TempDir()
	srcFile := filepath.Join(srcDir, "util.h")
	require.NoError(t, os.WriteFile(srcFile, []byte("int clamp(int v);\n"), 0o600))

	fs := adapter.NewLocalSourceFSAdapter()
	realSrc, err := fs.Realpath(m.Path(srcFile))
	require.NoError(t, err)

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	return &scanFixture{
		workflow: NewWorkflow(adapter.NewLocalDoxygenXMLAdapter(), fs, controller.NewSimpleUI(cmd)),
		xmlDir:   t.TempDir(),
		srcFile:  srcFile,
		realSrc:  realSrc,
		out:      out,
		errOut:   errOut,
	}
}

func (f *scanFixture) write(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(f.xmlDir, name), []byte(content), 0o600))
}

func memberXML(id, kind, static, name, args, brief, file, line string) string {
	return fmt.Sprintf(`<memberdef kind=%q id=%q static=%q>
  <name>%s</name>
  <argsstring>%s</argsstring>
  <briefdescription>%s</briefdescription>
  <detaileddescription></detaileddescription>
  <inbodydescription></inbodydescription>
  <location file=%q line=%q/>
</memberdef>`, kind, id, static, name, args, brief, file, line)
}

func compoundXML(id, kind string, members ...string) string {
	doc := fmt.Sprintf("<doxygen><compounddef id=%q kind=%q><sectiondef>", id, kind)
	for _, member := range members {
		doc += member
	}

	return doc + "</sectiondef></compounddef></doxygen>"
}

func indexXML(compounds ...string) string {
	doc := `<?xml version='1.0' encoding='UTF-8' standalone='no'?><doxygenindex>`
	for _, compound := range compounds {
		doc += compound
	}

	return doc + "</doxygenindex>"
}

func indexEntry(refid, kind string) string {
	return fmt.Sprintf("<compound refid=%q kind=%q><name>%s</name></compound>", refid, kind, refid)
}

func TestWorkflow_Scan(t *testing.T) {
	f := newScanFixture(t)

	f.write(t, "index.xml", indexXML(indexEntry("util_8h", "file")))
	f.write(t, "util_8h.xml", compoundXML("util_8h", "file",
		memberXML("u1", "function", "no", "clamp", "(int v)", "<para>Clamps.</para>", f.srcFile, "10"),
		memberXML("u2", "function", "no", "grow", "(int v)", "", f.srcFile, "20"),
	))

	coverage, err := f.workflow.Scan(m.Path(f.xmlDir))
	require.NoError(t, err)

	require.Len(t, coverage, 1)
	record := coverage[f.realSrc]
	require.Len(t, record, 2)
	assert.Equal(t, m.Entry{Line: 10, Documented: true}, record["clamp(int v)"])
	assert.Equal(t, m.Entry{Line: 20, Documented: false}, record["grow(int v)"])
}

func TestWorkflow_ScanSkipsDirAndGroupCompounds(t *testing.T) {
	f := newScanFixture(t)

	f.write(t, "index.xml", indexXML(
		indexEntry("dir_123", "dir"),
		indexEntry("group__core", "group"),
		indexEntry("util_8h", "file"),
	))
	// Only the file compound gets a document; dir/group entries must not
	// even be looked up.
	f.write(t, "util_8h.xml", compoundXML("util_8h", "file",
		memberXML("u1", "function", "no", "clamp", "", "<para>Clamps.</para>", f.srcFile, "10"),
	))

	coverage, err := f.workflow.Scan(m.Path(f.xmlDir))
	require.NoError(t, err)

	assert.Len(t, coverage[f.realSrc], 1)
}

func TestWorkflow_ScanSkipsMissingCompoundDocuments(t *testing.T) {
	f := newScanFixture(t)

	f.write(t, "index.xml", indexXML(
		indexEntry("ghost_8h", "file"),
		indexEntry("util_8h", "file"),
	))
	f.write(t, "util_8h.xml", compoundXML("util_8h", "file",
		memberXML("u1", "function", "no", "clamp", "", "<para>Clamps.</para>", f.srcFile, "10"),
	))

	coverage, err := f.workflow.Scan(m.Path(f.xmlDir))
	require.NoError(t, err)

	assert.Len(t, coverage, 1)
}

func TestWorkflow_ScanExcludesStaticFunctionsAndNamespaces(t *testing.T) {
	f := newScanFixture(t)

	f.write(t, "index.xml", indexXML(
		indexEntry("util_8h", "file"),
		indexEntry("namespaceutil", "namespace"),
	))
	f.write(t, "util_8h.xml", compoundXML("util_8h", "file",
		memberXML("u1", "function", "yes", "internal_helper", "(void)", "", f.srcFile, "5"),
		memberXML("u2", "function", "no", "clamp", "(int v)", "<para>Clamps.</para>", f.srcFile, "10"),
	))
	f.write(t, "namespaceutil.xml", compoundXML("namespaceutil", "namespace"))

	coverage, err := f.workflow.Scan(m.Path(f.xmlDir))
	require.NoError(t, err)

	record := coverage[f.realSrc]
	require.Len(t, record, 1)
	assert.Contains(t, record, m.DefinitionID("clamp(int v)"))
}

func TestWorkflow_ScanReportsStaleSourceReferences(t *testing.T) {
	f := newScanFixture(t)

	missing := filepath.Join(f.xmlDir, "relocated.h")
	f.write(t, "index.xml", indexXML(indexEntry("util_8h", "file")))
	f.write(t, "util_8h.xml", compoundXML("util_8h", "file",
		memberXML("u1", "function", "no", "moved", "(void)", "", missing, "5"),
		memberXML("u2", "function", "no", "clamp", "(int v)", "<para>Clamps.</para>", f.srcFile, "10"),
	))

	coverage, err := f.workflow.Scan(m.Path(f.xmlDir))
	require.NoError(t, err, "a stale reference must not abort the scan")

	assert.Len(t, coverage[f.realSrc], 1)
	assert.Contains(t, f.errOut.String(), "skip")
	assert.Contains(t, f.errOut.String(), "moved")
}

func TestWorkflow_ScanMissingIndexIsFatal(t *testing.T) {
	f := newScanFixture(t)

	_, err := f.workflow.Scan(m.Path(f.xmlDir))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "documentation not present")
	assert.Contains(t, err.Error(), filepath.Join(f.xmlDir, "index.xml"))
}

func TestWorkflow_ScanCorruptCompoundPropagates(t *testing.T) {
	f := newScanFixture(t)

	f.write(t, "index.xml", indexXML(indexEntry("util_8h", "file")))
	f.write(t, "util_8h.xml", "<doxygen><compounddef")

	_, err := f.workflow.Scan(m.Path(f.xmlDir))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}
