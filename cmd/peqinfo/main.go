// Command peqinfo prints design details of Orfanidis peaking sections.
//
// Usage:
//
//	peqinfo [flags] [frequency-hz ...]
//
// Without arguments it prints one row per octave from 31.25 Hz to 16 kHz.
//
// Examples:
//
//	peqinfo -gain 6 1000
//	peqinfo -rate 44100 -q 10 -gain -12 100 1000 10000
//	peqinfo -measure -fft 16384 1000
//	peqinfo -impulse 8 -topology df1 1000
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/orfanidis-biquad/dsp/filter/biquad"
	"github.com/cwbudde/orfanidis-biquad/measure/response"
)

var octaves = []float64{31.25, 62.5, 125, 250, 500, 1000, 2000, 4000, 8000, 16000}

func main() {
	rate := flag.Float64("rate", 48000, "sample rate in Hz")
	q := flag.Float64("q", 1, "resonance (Q)")
	gain := flag.Float64("gain", 6, "gain at the center frequency in dB")
	measure := flag.Bool("measure", false, "add the FFT-measured center gain")
	fftSize := flag.Int("fft", 8192, "FFT length for -measure")
	impulse := flag.Int("impulse", 0, "print the first N impulse response samples per design")
	topology := flag.String("topology", biquad.DirectFormIITransposed.String(), "topology used for -impulse and -measure")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: peqinfo [flags] [frequency-hz ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints scalars, coefficients, poles and gains of peaking designs.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints one row per octave.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  peqinfo -gain 6 1000\n")
		fmt.Fprintf(os.Stderr, "  peqinfo -rate 44100 -q 10 -gain -12 100 1000 10000\n")
		fmt.Fprintf(os.Stderr, "  peqinfo -measure -fft 16384 1000\n")
	}
	flag.Parse()

	topo, err := biquad.ParseTopology(*topology)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	freqs, err := parseFrequencies(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	rows := make([]row, 0, len(freqs))
	for _, f := range freqs {
		r, err := design(*rate, f, *q, *gain)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping %g Hz: %v\n", f, err)
			continue
		}
		rows = append(rows, r)
	}
	if len(rows) == 0 {
		fmt.Fprintf(os.Stderr, "error: no valid designs\n")
		os.Exit(1)
	}

	var analyzer *response.Analyzer
	if *measure {
		analyzer = response.NewAnalyzer(*rate, *fftSize)
	}

	if err := printTable(os.Stdout, rows, topo, analyzer); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *impulse > 0 {
		printImpulses(os.Stdout, rows, topo, *impulse)
	}
}

func parseFrequencies(args []string) ([]float64, error) {
	if len(args) == 0 {
		return octaves, nil
	}

	out := make([]float64, 0, len(args))
	for _, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid frequency %q: %w", a, err)
		}
		out = append(out, f)
	}
	return out, nil
}

func printTable(w io.Writer, rows []row, topo biquad.Topology, analyzer *response.Analyzer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := "Freq [Hz]\tQ\tGain [dB]\tW0\tDW\tb0\tb1\tb2\ta1\ta2\tPole r\tEdges [Hz]\tCenter [dB]\tEdge [dB]"
	rule := "---------\t-\t---------\t--\t--\t--\t--\t--\t--\t--\t------\t----------\t-----------\t---------"
	if analyzer != nil {
		header += "\tMeasured [dB]"
		rule += "\t-------------"
	}
	if _, err := fmt.Fprintln(tw, header); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, rule); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, r := range rows {
		line := r.format()
		if analyzer != nil {
			line += "\t" + measureCenter(analyzer, r, topo)
		}
		if _, err := fmt.Fprintln(tw, line); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func measureCenter(a *response.Analyzer, r row, topo biquad.Topology) string {
	e := biquad.NewEngine()
	e.SetTopology(topo)
	e.SetCoefficients(r.coeffs)

	res, err := a.Measure(e)
	if err != nil {
		return "n/a"
	}
	return fmt.Sprintf("%+.3f", res.AtDB(r.freq))
}

func printImpulses(w io.Writer, rows []row, topo biquad.Topology, n int) {
	for _, r := range rows {
		e := biquad.NewEngine()
		e.SetTopology(topo)
		e.SetCoefficients(r.coeffs)

		fmt.Fprintf(w, "\n%g Hz (%s):", r.freq, topo)
		for _, v := range e.ImpulseResponse(n) {
			fmt.Fprintf(w, " %.6g", v)
		}
		fmt.Fprintln(w)
	}
}

