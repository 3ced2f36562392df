package main

import (
	"fmt"
	"os"

	"github.com/pfrederiksen/broadway-grosses/internal/extract"
)

// Manual helper: flatten a saved HTML page and show what the extraction
// patterns would match, for checking pattern drift against a fresh capture.
//
//	go run scripts/dump-text.go debug_html.txt
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: dump-text <page.html>")
		os.Exit(1)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	text, err := extract.FlattenHTML(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing HTML: %v\n", err)
		os.Exit(1)
	}

	series := extract.FindSeries(text)
	fmt.Printf("Found %d weeks, %d shows, %d gross, %d attendance\n",
		len(series.Weeks), len(series.Shows), len(series.Gross), len(series.Attendance))

	for i := 0; i < series.Min(); i++ {
		fmt.Printf("  %s  shows=%s  gross=%s  attendance=%s\n",
			series.Weeks[i], series.Shows[i], series.Gross[i], series.Attendance[i])
	}
}
