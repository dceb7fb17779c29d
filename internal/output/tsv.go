// internal/output/tsv.go
package output

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"rnaseqde/internal/gene"
)

// IntsCSV joins counts with commas.
func IntsCSV(a []int) string {
	if len(a) == 0 {
		return ""
	}
	ss := make([]string, len(a))
	for i, v := range a {
		ss[i] = strconv.Itoa(v)
	}
	return strings.Join(ss, ",")
}

// FormatFloat prints v at full precision, or NA when undefined.
func FormatFloat(v float64) string {
	if math.IsNaN(v) {
		return NA
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatRowTSV returns one table row (no trailing newline).
func FormatRowTSV(r gene.Record) string {
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s",
		r.ID,
		FormatFloat(r.MeanA), FormatFloat(r.MeanB),
		FormatFloat(r.PValue), FormatFloat(r.AdjPValue),
		r.Annotation,
		IntsCSV(r.CountsA), IntsCSV(r.CountsB),
	)
}

// WriteTSV writes the table as tab-delimited rows in table order.
func WriteTSV(w io.Writer, t gene.Table, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range t {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}
