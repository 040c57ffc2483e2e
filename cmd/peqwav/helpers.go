package main

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/cwbudde/orfanidis-biquad/dsp/core"
	"github.com/cwbudde/orfanidis-biquad/dsp/filter/biquad"
	"github.com/cwbudde/orfanidis-biquad/dsp/peq"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tphakala/simd/f64"
)

const (
	defaultBlockSize = 512

	stereoChannels = 2
	pcmFormat      = 1

	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0
)

var errUnsupportedFormat = errors.New("unsupported WAV format")

// settings are the command-line parameters of one run.
type settings struct {
	frequency float64
	resonance float64
	gainDB    float64
	topology  string
	outputDB  float64
	mix       float64
	bypass    bool
	blockSize int
	verbose   bool
}

// snapshot turns the settings into processor parameters, clamped to the
// declared ranges and below Nyquist.
func (s settings) snapshot(sampleRate float64) (peq.Snapshot, error) {
	topo, err := biquad.ParseTopology(s.topology)
	if err != nil {
		return peq.Snapshot{}, fmt.Errorf("invalid -topology: %w", err)
	}

	in := peq.Snapshot{
		Frequency: s.frequency,
		Resonance: s.resonance,
		GainDB:    s.gainDB,
		Transform: topo,
		Bypassed:  s.bypass,
		OutputDB:  s.outputDB,
		Mix:       s.mix,
	}
	out := peq.DefaultLayout().Clamp(in, sampleRate)

	if s.verbose && out != in {
		log.Printf("Parameters clamped: %+v -> %+v", in, out)
	}
	return out, nil
}

// wavInput holds a decoded input file.
type wavInput struct {
	sampleRate int
	channels   int
	bitDepth   int
	data       []int
}

// readWAV decodes a whole PCM WAV file.
func readWAV(path string, verbose bool) (*wavInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}
	if decoder.WavAudioFormat != pcmFormat {
		return nil, fmt.Errorf("%w: audio format %d (only integer PCM)", errUnsupportedFormat, decoder.WavAudioFormat)
	}

	format := decoder.Format()
	bitDepth := int(decoder.BitDepth)
	if maxValue(bitDepth) == 0 {
		return nil, fmt.Errorf("%w: %d-bit", errUnsupportedFormat, bitDepth)
	}

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", format.SampleRate, format.NumChannels, bitDepth)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}

	return &wavInput{
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		bitDepth:   bitDepth,
		data:       buf.Data,
	}, nil
}

// writeWAV encodes interleaved integer samples.
func writeWAV(path string, sampleRate, bitDepth, channels int, data []int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, channels, pcmFormat)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}

// maxValue returns the full-scale value of a signed PCM bit depth, or 0 if
// unsupported. 8-bit WAV is unsigned and not handled.
func maxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return 0
	}
}

// toPlanar converts interleaved integer samples to normalized planar channels.
func toPlanar(data []int, channels int, scale float64) [][]float64 {
	frames := len(data) / channels
	interleaved := make([]float64, frames*channels)
	for i := range interleaved {
		interleaved[i] = float64(data[i]) / scale
	}

	planar := make([][]float64, channels)
	for ch := range planar {
		planar[ch] = make([]float64, frames)
	}
	core.Deinterleave(planar, interleaved)
	return planar
}

// toInterleaved converts planar channels back to clipped integer samples.
func toInterleaved(planar [][]float64, scale float64) []int {
	if len(planar) == 0 {
		return nil
	}

	frames := len(planar[0])
	interleaved := make([]float64, frames*len(planar))
	if len(planar) == stereoChannels {
		f64.Interleave2(interleaved, planar[0], planar[1])
	} else {
		core.Interleave(interleaved, planar)
	}

	out := make([]int, len(interleaved))
	for i, v := range interleaved {
		out[i] = int(math.Round(core.Clamp(v, -1, 1) * scale))
	}
	return out
}

// filterStats summarizes one processed file.
type filterStats struct {
	sampleRate int
	channels   int
	bitDepth   int
	frames     int
	snapshot   peq.Snapshot
}

// filterPlanar runs planar audio through p one host block at a time.
func filterPlanar(p *peq.Processor, planar [][]float64, s peq.Snapshot) {
	if len(planar) == 0 {
		return
	}

	block := p.Spec().BlockSize
	chunk := make([][]float64, len(planar))
	for start := 0; start < len(planar[0]); start += block {
		end := min(start+block, len(planar[0]))
		for ch := range planar {
			chunk[ch] = planar[ch][start:end]
		}
		p.Process(chunk, s)
	}
}

// filterFile reads inputPath, filters it and writes outputPath with the
// same rate, channel count and bit depth.
func filterFile(inputPath, outputPath string, cfg settings) (*filterStats, error) {
	if cfg.blockSize <= 0 {
		return nil, fmt.Errorf("invalid -block %d: must be positive", cfg.blockSize)
	}

	in, err := readWAV(inputPath, cfg.verbose)
	if err != nil {
		return nil, err
	}
	if in.channels <= 0 || in.sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d channels at %d Hz", errUnsupportedFormat, in.channels, in.sampleRate)
	}

	snap, err := cfg.snapshot(float64(in.sampleRate))
	if err != nil {
		return nil, err
	}

	p := peq.New(
		core.WithSampleRate(float64(in.sampleRate)),
		core.WithBlockSize(cfg.blockSize),
		core.WithChannels(in.channels),
	)

	scale := maxValue(in.bitDepth)
	planar := toPlanar(in.data, in.channels, scale)
	filterPlanar(p, planar, snap)

	if cfg.verbose {
		c := p.Coefficients().Normalized()
		log.Printf("Coefficients: b=[%.9g %.9g %.9g] a=[1 %.9g %.9g]", c.B0, c.B1, c.B2, c.A1, c.A2)
	}

	if err := writeWAV(outputPath, in.sampleRate, in.bitDepth, in.channels, toInterleaved(planar, scale)); err != nil {
		return nil, err
	}

	frames := 0
	if len(planar) > 0 {
		frames = len(planar[0])
	}
	return &filterStats{
		sampleRate: in.sampleRate,
		channels:   in.channels,
		bitDepth:   in.bitDepth,
		frames:     frames,
		snapshot:   snap,
	}, nil
}
