package cmd

const rootLongDescription = `Doxycov computes API documentation coverage from Doxygen-generated XML
output. It walks index.xml, extracts documentable definitions (functions,
classes, members) from each compound document, and aggregates per-file and
total coverage percentages.

The command prints a per-file report followed by the global coverage line,
and exits non-zero when coverage falls below the threshold, which makes it
usable as a CI gate:

  doxycov build/doxygen/xml --threshold 90

The exit code on failure is the distance below the threshold. Use
--noerror to always exit 0 regardless of the result.

Settings can also be read from a .doxycov.yml file inside the scanned
directory (threshold, noerror, exclude); explicit flags take precedence.`

const listLongDescription = `List documented and total definition counts per source file as a table,
without gating on a threshold.

Supports the same exclude patterns and config file as the root command:

  doxycov list build/doxygen/xml -x 'third_party/.*'`
