package output

// Table export formats.
const (
	FormatTSV  = "tsv"
	FormatJSON = "json"
)

// TSVHeader is the canonical header row for the TSV table export.
const TSVHeader = "gene\tmean_a\tmean_b\tp_value\tadj_p_value\tannotation\tcounts_a\tcounts_b"

// NA stands in for undefined statistics in text outputs.
const NA = "NA"
