// Package cli implements the command-line interface for broadway-grosses.
//
// The cli package provides the Cobra-based CLI that runs the one-shot
// pipeline: fetch the grosses page, extract and assemble weekly records,
// and write them to a spreadsheet. It formats the run summary as text or
// JSON and maps the three run outcomes (data written, error, nothing
// extracted) to distinct exit codes for scripting use.
package cli
