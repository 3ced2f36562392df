// Package capture writes diagnostic snapshots of fetched page text to disk.
//
// When the extractor finds no matches at all, the first slice of the page's
// flattened text is saved to debug_html.txt so the patterns can be checked
// offline against what the site actually served. The capture is a side
// effect of an empty result, not a failure.
package capture
