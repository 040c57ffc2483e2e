package main

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/cwbudde/orfanidis-biquad/dsp/filter/biquad"
	"github.com/cwbudde/orfanidis-biquad/measure/response"
)

func TestDesign(t *testing.T) {
	r, err := design(48000, 1000, 2, 6)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(r.centerDB-6) > 1e-6 {
		t.Fatalf("center = %v dB, want 6", r.centerDB)
	}
	if math.Abs(r.edgeDB-3) > 1e-6 {
		t.Fatalf("edge = %v dB, want 3", r.edgeDB)
	}
	if !(r.edgesHz[0] < 1000 && 1000 < r.edgesHz[1]) {
		t.Fatalf("edges %v do not bracket the center", r.edgesHz)
	}
	if r.poleRadius >= 1 {
		t.Fatalf("pole radius %v", r.poleRadius)
	}
}

func TestDesign_RejectsNyquist(t *testing.T) {
	if _, err := design(48000, 24000, 1, 6); err == nil {
		t.Fatal("expected error at Nyquist")
	}
}

func TestParseFrequencies(t *testing.T) {
	f, err := parseFrequencies(nil)
	if err != nil || len(f) != len(octaves) {
		t.Fatalf("defaults: %v, %v", f, err)
	}

	f, err = parseFrequencies([]string{"100", "2.5e3"})
	if err != nil || len(f) != 2 || f[1] != 2500 {
		t.Fatalf("got %v, %v", f, err)
	}

	if _, err := parseFrequencies([]string{"1k"}); err == nil {
		t.Fatal("expected error for 1k")
	}
}

func TestPrintTable(t *testing.T) {
	r, err := design(48000, 1000, 1, -6)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := printTable(&buf, []row{r}, biquad.DirectFormI, response.NewAnalyzer(48000, 8192)); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "Measured [dB]") {
		t.Fatalf("header without measurement column: %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "1000.00") || !strings.Contains(lines[2], "-6.000") {
		t.Fatalf("unexpected row: %q", lines[2])
	}
}
