// Package report renders the differential expression report.
//
// The layout is fixed: a title block, the table of differentially expressed
// genes, and the table of functional annotations, separated by rules of '='.
// Lines are joined with '\n' and the document has no trailing newline.
package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"rnaseqde/internal/gene"
)

// Fixed text of the report.
const (
	Title          = "RNA-Seq Differential Expression Analysis Report"
	SummaryHeading = "Summary of Analysis:"
	Summary        = "The analysis was conducted to identify differentially expressed genes between two conditions using RNA-Seq data."
	GenesHeading   = "Differentially Expressed Genes:"
	NoGenes        = "No genes were found to be differentially expressed."
	AnnotHeading   = "Functional Annotations:"
	NoAnnotations  = "No functional annotations available."
)

// DefaultPath is where the report goes unless configured otherwise.
const DefaultPath = "RNA_SEQ_ANALYSIS.txt"

var (
	sectionRule = strings.Repeat("=", 50)
	geneRule    = strings.Repeat("=", 60)
	annotRule   = strings.Repeat("=", 40)
)

// Lines returns the report as individual lines. A line ending in "\n" yields
// a blank line once joined.
func Lines(diff gene.Table) []string {
	lines := []string{
		Title + "\n",
		sectionRule,
		SummaryHeading + "\n",
		Summary + "\n",
		sectionRule,
		GenesHeading + "\n",
	}
	if len(diff) > 0 {
		lines = append(lines,
			fmt.Sprintf("%-10s %15s %15s %20s", "Gene", "Mean Sample1", "Mean Sample2", "Adj. P-Value"),
			geneRule,
		)
		for _, r := range diff {
			lines = append(lines, fmt.Sprintf("%-10s %15.2f %15.2f %20.4f", r.ID, r.MeanA, r.MeanB, r.AdjPValue))
		}
	} else {
		lines = append(lines, NoGenes+"\n")
	}

	lines = append(lines, sectionRule, AnnotHeading+"\n")
	if len(diff) > 0 {
		lines = append(lines, fmt.Sprintf("%-10s %-30s", "Gene", "GO Annotations"), annotRule)
		for _, r := range diff {
			lines = append(lines, fmt.Sprintf("%-10s %-30s", r.ID, r.Annotation))
		}
	} else {
		lines = append(lines, NoAnnotations+"\n")
	}
	return lines
}

// Bytes renders the full document.
func Bytes(diff gene.Table) []byte {
	return []byte(strings.Join(Lines(diff), "\n"))
}

// Render writes the document to w.
func Render(w io.Writer, diff gene.Table) error {
	_, err := io.Copy(w, bytes.NewReader(Bytes(diff)))
	return err
}

// WriteFile renders the report to path, replacing any existing file.
func WriteFile(path string, diff gene.Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("write report %s: %w", path, cerr)
		}
	}()
	if err := Render(f, diff); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

// Confirmation is the line printed on stdout after a successful write.
func Confirmation(path string) string {
	return fmt.Sprintf("Analysis report generated as '%s'.", path)
}
