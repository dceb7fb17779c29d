package output

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rnaseqde/internal/gene"
	"rnaseqde/pkg/api"
)

func sample() gene.Table {
	return gene.Table{
		{ID: "Gene1", CountsA: []int{101, 99}, CountsB: []int{80, 82}, MeanA: 100, MeanB: 81, PValue: 0.001, AdjPValue: 0.002, Annotation: "GO:0001234"},
		{ID: "Gene2", CountsA: []int{5, 5}, CountsB: []int{5, 5}, MeanA: 5, MeanB: 5, PValue: math.NaN(), AdjPValue: math.NaN()},
	}
}

func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTSV(&buf, sample(), true); err != nil {
		t.Fatalf("tsv: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("want header + 2 rows, got %d:\n%s", len(lines), buf.String())
	}
	if lines[0] != TSVHeader {
		t.Fatalf("header: %q", lines[0])
	}
	if want := "Gene1\t100\t81\t0.001\t0.002\tGO:0001234\t101,99\t80,82"; lines[1] != want {
		t.Fatalf("row1:\n got:  %q\n want: %q", lines[1], want)
	}
	if want := "Gene2\t5\t5\tNA\tNA\t\t5,5\t5,5"; lines[2] != want {
		t.Fatalf("row2:\n got:  %q\n want: %q", lines[2], want)
	}
}

func TestWriteTSV_NoHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTSV(&buf, sample()[:1], false); err != nil {
		t.Fatal(err)
	}
	if strings.HasPrefix(buf.String(), "gene\t") {
		t.Fatalf("header should be suppressed")
	}
}

func TestWriteJSON_NaNIsNull(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sample()); err != nil {
		t.Fatalf("json: %v", err)
	}
	var got []api.GeneV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len=%d", len(got))
	}
	if got[0].AdjPValue == nil || *got[0].AdjPValue != 0.002 {
		t.Fatalf("gene1 adj p: %v", got[0].AdjPValue)
	}
	if got[1].PValue != nil || got[1].AdjPValue != nil {
		t.Fatalf("NaN statistics should encode as null")
	}
}

func TestWriteTableFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.tsv")
	if err := WriteTableFile(path, FormatTSV, sample()); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(b), TSVHeader+"\n") {
		t.Fatalf("missing header")
	}
	if err := WriteTableFile(filepath.Join(dir, "t.xml"), "xml", sample()); err == nil {
		t.Fatalf("expected unknown format error")
	}
	if _, err := os.Stat(filepath.Join(dir, "t.xml")); !os.IsNotExist(err) {
		t.Fatalf("unknown format must not create a file")
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if IsBrokenPipe(nil) {
		t.Fatalf("nil is not a broken pipe")
	}
	if !IsBrokenPipe(io.ErrClosedPipe) {
		t.Fatalf("closed pipe should count")
	}
}
