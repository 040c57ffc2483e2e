// Command peqwav runs a WAV file through a single-band Orfanidis peaking EQ.
//
// Usage:
//
//	peqwav [flags] input.wav output.wav
//
// Examples:
//
//	peqwav -freq 1000 -gain 6 in.wav out.wav
//	peqwav -freq 80 -q 4 -gain -9 -topology df1 in.wav out.wav
//	peqwav -freq 3000 -gain 12 -mix 50 -output -6 in.wav out.wav
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/cwbudde/orfanidis-biquad/dsp/peq"
)

const minRequiredArgs = 2

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	def := peq.DefaultSnapshot()

	var cfg settings
	flag.Float64Var(&cfg.frequency, "freq", def.Frequency, "center frequency in Hz")
	flag.Float64Var(&cfg.resonance, "q", def.Resonance, "resonance (Q)")
	flag.Float64Var(&cfg.gainDB, "gain", def.GainDB, "gain at the center frequency in dB")
	flag.StringVar(&cfg.topology, "topology", def.Transform.String(), "filter topology: df1, df2, df1t, df2t")
	flag.Float64Var(&cfg.outputDB, "output", def.OutputDB, "output gain in dB")
	flag.Float64Var(&cfg.mix, "mix", def.Mix, "dry/wet mix in percent")
	flag.BoolVar(&cfg.bypass, "bypass", false, "copy the input unfiltered")
	flag.IntVar(&cfg.blockSize, "block", defaultBlockSize, "processing block size in frames")
	flag.BoolVar(&cfg.verbose, "v", false, "verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -freq 1000 -gain 6 in.wav out.wav\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -freq 80 -q 4 -gain -9 -topology df1 in.wav out.wav\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}

	inputPath, outputPath := args[0], args[1]
	if cfg.verbose {
		log.Printf("Input: %s", inputPath)
		log.Printf("Output: %s", outputPath)
	}

	start := time.Now()
	stats, err := filterFile(inputPath, outputPath, cfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Filtered %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %d Hz, %d channels, %d-bit, %d frames\n",
		stats.sampleRate, stats.channels, stats.bitDepth, stats.frames)
	fmt.Printf("  %.1f Hz, Q %.3g, %+.2f dB, %s\n",
		stats.snapshot.Frequency, stats.snapshot.Resonance, stats.snapshot.GainDB, stats.snapshot.Transform)
	if elapsed > 0 && stats.sampleRate > 0 {
		fmt.Printf("  Duration: %.2fs, Speed: %.1fx realtime\n",
			elapsed.Seconds(),
			float64(stats.frames)/float64(stats.sampleRate)/elapsed.Seconds())
	}

	return nil
}
