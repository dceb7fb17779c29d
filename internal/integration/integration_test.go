// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"rnaseqde/internal/app"
	"rnaseqde/internal/report"
)

var rowRE = regexp.MustCompile(`^(Gene\d)\s+(\d+\.\d{2})\s+(\d+\.\d{2})\s+(\d\.\d{4})$`)

func TestEndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), report.DefaultPath)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--output", path, "--quiet"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	if want := fmt.Sprintf("Analysis report generated as '%s'.\n", path); out.String() != want {
		t.Fatalf("stdout:\n got:  %q\n want: %q", out.String(), want)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	lines := strings.Split(string(b), "\n")
	if lines[0] != "RNA-Seq Differential Expression Analysis Report" {
		t.Fatalf("first line: %q", lines[0])
	}
	rows := 0
	for _, l := range lines {
		if rowRE.MatchString(l) {
			rows++
		}
	}
	if rows == 0 {
		t.Fatalf("expected at least one differentially expressed gene row:\n%s", b)
	}
}

func TestEmptyResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), report.DefaultPath)
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--output", path, "--quiet", "--rate-b", "100", "--alpha", "1e-12"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(b), "No genes were found to be differentially expressed.") {
		t.Fatalf("missing empty-result sentence:\n%s", b)
	}
	for _, l := range strings.Split(string(b), "\n") {
		if rowRE.MatchString(l) {
			t.Fatalf("unexpected table row %q", l)
		}
	}
}

func TestStudentAndWelchBothRun(t *testing.T) {
	dir := t.TempDir()
	render := func(extra ...string) string {
		path := filepath.Join(dir, fmt.Sprintf("r%d.txt", len(extra)))
		var out, errB bytes.Buffer
		args := append([]string{"--output", path, "--quiet"}, extra...)
		if code := app.Run(args, &out, &errB); code != 0 {
			t.Fatalf("exit %d err %s", code, errB.String())
		}
		b, _ := os.ReadFile(path)
		return string(b)
	}
	welch := render()
	student := render("--equal-var")
	if !strings.HasPrefix(welch, report.Title) || !strings.HasPrefix(student, report.Title) {
		t.Fatalf("both variants should render a report")
	}
}
