package peq

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/orfanidis-biquad/dsp/core"
	"github.com/cwbudde/orfanidis-biquad/dsp/filter/biquad"
	"github.com/cwbudde/orfanidis-biquad/dsp/filter/design/orfanidis"
	"github.com/tphakala/simd/f32"
)

// Processor is one equalizer instance.
//
// Process, ProcessFloat32 and ProcessInterleaved must be called from a
// single goroutine. They never allocate.
type Processor struct {
	spec core.ProcessorConfig

	conv    orfanidis.Converter
	calc    orfanidis.Calculator
	engines []*biquad.Engine

	// post-filter stages of the current block
	wetGain float64
	dryGain float64
	bypass  bool

	wet    []float64   // filtered block
	dry    []float64   // scaled dry block
	wet32  []float32   // filtered block, 32-bit path
	planar [][]float64 // deinterleaved frames
}

// New returns a processor prepared for the configuration built from opts
// (48 kHz, 512 frames, 2 channels unless overridden).
func New(opts ...core.ProcessorOption) *Processor {
	cfg := core.ApplyProcessorOptions(opts...)

	p := &Processor{}
	p.Prepare(cfg.SampleRate, cfg.BlockSize, cfg.NumChannels)

	return p
}

// Prepare sizes the processor for a sample rate, a maximum block size and a
// channel count, then resets it. Non-positive values panic.
func (p *Processor) Prepare(sampleRate float64, blockSize, numChannels int) {
	spec := core.ProcessorConfig{SampleRate: sampleRate, BlockSize: blockSize, NumChannels: numChannels}
	if !spec.Valid() {
		panic(fmt.Sprintf("peq: invalid prepare spec (sampleRate=%v blockSize=%d channels=%d)",
			sampleRate, blockSize, numChannels))
	}

	p.spec = spec
	p.conv.Prepare(sampleRate)

	p.engines = make([]*biquad.Engine, numChannels)
	for ch := range p.engines {
		p.engines[ch] = biquad.NewEngine()
	}

	p.wet = make([]float64, blockSize)
	p.dry = make([]float64, blockSize)
	p.wet32 = make([]float32, blockSize)
	p.planar = make([][]float64, numChannels)
	for ch := range p.planar {
		p.planar[ch] = make([]float64, blockSize)
	}

	p.wetGain, p.dryGain = 1, 0
	p.Reset()
}

// Reset clears the converter and the registers of every channel.
func (p *Processor) Reset() {
	p.conv.Reset()
	for _, e := range p.engines {
		e.Reset()
	}
}

// Spec returns the prepared configuration.
func (p *Processor) Spec() core.ProcessorConfig { return p.spec }

// Scalars returns the design scalars of the last processed block.
func (p *Processor) Scalars() orfanidis.Scalars { return p.conv.Scalars() }

// Coefficients returns the section designed for the last processed block.
func (p *Processor) Coefficients() biquad.Coefficients { return p.calc.Coefficients() }

// update redesigns the section from s and configures every engine.
func (p *Processor) update(s Snapshot) {
	c := p.calc.Design(p.conv.Calculate(s.GainDB, s.Frequency, s.Resonance))

	for _, e := range p.engines {
		e.SetBypassed(s.Bypassed)
		if s.Bypassed {
			continue
		}
		e.SetTopology(s.Transform)
		e.SetCoefficients(c)
	}

	mix := core.Clamp(s.Mix/100, 0, 1)
	out := core.DBToLinear(s.OutputDB)
	p.wetGain = out * mix
	p.dryGain = out * (1 - mix)
	p.bypass = s.Bypassed
}

func (p *Processor) passthroughGains() bool {
	return p.wetGain == 1 && p.dryGain == 0
}

// Process filters planar channels in place with the parameters in s.
// Channels beyond the prepared count are left untouched. Blocks longer than
// the prepared block size are processed in prepared-size chunks.
// A bypassed snapshot leaves both the buffer and the engines alone; a
// topology change made while bypassed takes effect with the first block
// processed afterwards.
func (p *Processor) Process(buf [][]float64, s Snapshot) {
	p.update(s)
	if p.bypass {
		return
	}

	for ch := range min(len(buf), len(p.engines)) {
		plane := buf[ch]
		for start := 0; start < len(plane); start += p.spec.BlockSize {
			p.processChunk(p.engines[ch], plane[start:min(start+p.spec.BlockSize, len(plane))])
		}
	}
}

func (p *Processor) processChunk(e *biquad.Engine, chunk []float64) {
	if p.passthroughGains() {
		e.ProcessBlock(chunk)
		return
	}

	wet := p.wet[:len(chunk)]
	e.ProcessBlockTo(wet, chunk)

	if p.dryGain == 0 {
		vecmath.ScaleBlock(chunk, wet, p.wetGain)
		return
	}

	dry := p.dry[:len(chunk)]
	vecmath.ScaleBlock(dry, chunk, p.dryGain)
	vecmath.ScaleBlock(chunk, wet, p.wetGain)
	vecmath.AddBlockInPlace(chunk, dry)
}

// ProcessFloat32 is Process for 32-bit samples. Filtering runs in float64.
func (p *Processor) ProcessFloat32(buf [][]float32, s Snapshot) {
	p.update(s)
	if p.bypass {
		return
	}

	for ch := range min(len(buf), len(p.engines)) {
		plane := buf[ch]
		for start := 0; start < len(plane); start += p.spec.BlockSize {
			p.processChunk32(p.engines[ch], plane[start:min(start+p.spec.BlockSize, len(plane))])
		}
	}
}

func (p *Processor) processChunk32(e *biquad.Engine, chunk []float32) {
	wet := p.wet[:len(chunk)]
	for i, x := range chunk {
		wet[i] = float64(x)
	}
	e.ProcessBlock(wet)

	if p.dryGain == 0 {
		for i, y := range wet {
			chunk[i] = float32(y)
		}
		if p.wetGain != 1 {
			f32.Scale(chunk, chunk, float32(p.wetGain))
		}
		return
	}

	wet32 := p.wet32[:len(chunk)]
	for i, y := range wet {
		wet32[i] = float32(y)
	}
	f32.Scale(chunk, chunk, float32(p.dryGain))
	f32.Scale(wet32, wet32, float32(p.wetGain))
	f32.Add(chunk, chunk, wet32)
}

// ProcessInterleaved filters interleaved frames in place. The channel count
// is the prepared one; a trailing partial frame is left untouched.
func (p *Processor) ProcessInterleaved(buf []float64, s Snapshot) {
	p.update(s)
	if p.bypass {
		return
	}

	channels := p.spec.NumChannels
	frameLen := p.spec.BlockSize * channels
	for start := 0; start+channels <= len(buf); start += frameLen {
		end := min(start+frameLen, len(buf))
		end -= (end - start) % channels
		block := buf[start:end]

		frames := core.Deinterleave(p.planar, block)
		for ch, e := range p.engines {
			p.processChunk(e, p.planar[ch][:frames])
		}
		core.Interleave(block, p.planar)
	}
}
